package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
)

type TimeSlot struct {
	Day       string `json:"day"`        // monday .. sunday
	StartTime string `json:"start_time"` // "09:00"
	EndTime   string `json:"end_time"`   // "17:00"
	Timezone  string `json:"timezone"`
}

type Availability struct {
	Slots              []TimeSlot `json:"slots"`
	MaxSessionsPerWeek int        `json:"max_sessions_per_week"`
	SessionDuration    int        `json:"session_duration"` // minutes
}

type Pricing struct {
	HourlyRate   float64 `json:"hourly_rate"`
	Currency     string  `json:"currency"`
	FreeSessions int     `json:"free_sessions"` // free sessions per month
}

type MentorStats struct {
	TotalSessions    int     `json:"total_sessions"`
	TotalHours       float64 `json:"total_hours"`
	AverageRating    float64 `json:"average_rating"` // 0-5
	ReviewCount      int     `json:"review_count"`
	CompletionRate   float64 `json:"completion_rate"`
	AvgResponseHours float64 `json:"avg_response_hours"`
}

type MentorPreferences struct {
	MenteeTypes          []string `json:"mentee_types"`  // accepted mentee communication-frequency types
	SessionTypes         []string `json:"session_types"` // video | in-person | chat | email
	MaxConcurrentMentees int      `json:"max_concurrent_mentees"`
}

type MentorProfile struct {
	ID              uuid.UUID         `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name            string            `gorm:"type:varchar(255)" json:"name"`
	Location        string            `gorm:"type:varchar(255)" json:"location"`
	Timezone        string            `gorm:"type:varchar(50)" json:"timezone"`
	Bio             string            `gorm:"type:text" json:"bio"`
	Role            string            `gorm:"type:varchar(255)" json:"role"`
	Company         string            `gorm:"type:varchar(255)" json:"company"`
	Industry        string            `gorm:"type:varchar(255)" json:"industry"`
	YearsExperience int               `json:"years_experience"`
	ExperienceLevel string            `gorm:"type:varchar(50)" json:"experience_level"` // beginner | intermediate | advanced | expert
	Skills          []string          `gorm:"serializer:json;type:jsonb" json:"skills"`
	Specializations []string          `gorm:"serializer:json;type:jsonb" json:"specializations"`
	ExpertiseAreas  []string          `gorm:"serializer:json;type:jsonb" json:"expertise_areas"`
	Availability    Availability      `gorm:"serializer:json;type:jsonb" json:"availability"`
	Pricing         Pricing           `gorm:"serializer:json;type:jsonb" json:"pricing"`
	Languages       []string          `gorm:"serializer:json;type:jsonb" json:"languages"`
	CommMethods     []string          `gorm:"serializer:json;type:jsonb" json:"comm_methods"`
	Stats           MentorStats       `gorm:"serializer:json;type:jsonb" json:"stats"`
	Preferences     MentorPreferences `gorm:"serializer:json;type:jsonb" json:"preferences"`
	Embedding       pgvector.Vector   `gorm:"type:vector(3072)" json:"-"` // bio embedding for similar-mentor search
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

func (m *MentorProfile) TableName() string {
	return "mentors"
}
