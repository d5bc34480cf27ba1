package dto

import (
	"encoding/json"
	"time"

	"github.com/fadilmartias/mentor-match/internal/model"
	"github.com/google/uuid"
)

type MatchTaskDTO struct {
	ID         uuid.UUID       `json:"id"`
	MenteeID   uuid.UUID       `json:"mentee_id"`
	Status     string          `json:"status"` // e.g. "processing", "completed", "failed"
	MaxResults int             `json:"max_results"`
	Criteria   json.RawMessage `json:"criteria"`
	Results    json.RawMessage `json:"results"`
	Summary    string          `json:"summary,omitempty"`
	Error      string          `json:"error,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

func NewMatchTaskDTO(task *model.MatchTask) MatchTaskDTO {
	return MatchTaskDTO{
		ID:         task.ID,
		MenteeID:   task.MenteeID,
		Status:     task.Status,
		MaxResults: task.MaxResults,
		Criteria:   rawOrNull(task.Criteria),
		Results:    rawOrNull(task.Results),
		Summary:    task.Summary,
		Error:      task.Error,
		CreatedAt:  task.CreatedAt,
		UpdatedAt:  task.UpdatedAt,
	}
}

func rawOrNull(s string) json.RawMessage {
	if s == "" {
		return json.RawMessage("null")
	}
	return json.RawMessage(s)
}
