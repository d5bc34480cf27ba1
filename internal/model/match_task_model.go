package model

import (
	"time"

	"github.com/google/uuid"
)

type MatchTask struct {
	ID         uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	MenteeID   uuid.UUID `gorm:"type:uuid;index" json:"mentee_id"`
	Status     string    `gorm:"type:varchar(50)" json:"status"` // e.g. "processing", "completed", "failed"
	MaxResults int       `json:"max_results"`
	Criteria   string    `gorm:"type:jsonb" json:"criteria"` // weight overrides used for this run
	Results    string    `gorm:"type:jsonb" json:"results"`  // serialized MatchResult list
	Summary    string    `gorm:"type:text" json:"summary"`   // AI-generated free text, fallback string on failure
	Error      string    `gorm:"type:text" json:"error"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (t *MatchTask) TableName() string {
	return "match_tasks"
}
