package model

import (
	"time"

	"github.com/google/uuid"
)

// Enum-ish string fields are validated upstream; the matching engine
// degrades to neutral scores on values it does not recognize.

type BudgetRange struct {
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Currency string  `json:"currency"` // e.g. "USD", "EUR"
}

type LearningPreferences struct {
	Pace          string `json:"pace"`           // slow | moderate | fast
	Format        string `json:"format"`         // visual | text | hands-on | mixed
	PreferredTime string `json:"preferred_time"` // morning | afternoon | evening | flexible
	SessionLength string `json:"session_length"` // short | medium | long
}

type MentoringNeeds struct {
	AreasOfFocus []string    `json:"areas_of_focus"`
	SessionTypes []string    `json:"session_types"`
	Frequency    string      `json:"frequency"` // weekly | bi-weekly | monthly | as-needed
	Budget       BudgetRange `json:"budget"`
	WeeklyHours  float64     `json:"weekly_hours"`
}

type CommunicationStyle struct {
	PreferredMethods []string `json:"preferred_methods"` // e.g. video, chat, email, phone
	ResponseTime     string   `json:"response_time"`     // immediate | within-hours | within-days
	Frequency        string   `json:"frequency"`         // high | medium | low
}

type LearningStats struct {
	CompletedCourses int `json:"completed_courses"`
	LearningStreak   int `json:"learning_streak"` // consecutive active days
}

type MenteeProfile struct {
	ID              uuid.UUID           `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name            string              `gorm:"type:varchar(255)" json:"name"`
	Location        string              `gorm:"type:varchar(255)" json:"location"`
	Timezone        string              `gorm:"type:varchar(50)" json:"timezone"`
	Bio             string              `gorm:"type:text" json:"bio"`
	CurrentRole     string              `gorm:"type:varchar(255)" json:"current_role"`
	Industry        string              `gorm:"type:varchar(255)" json:"industry"`
	ExperienceLevel string              `gorm:"type:varchar(50)" json:"experience_level"` // beginner | intermediate | advanced
	Skills          []string            `gorm:"serializer:json;type:jsonb" json:"skills"`
	Goals           []string            `gorm:"serializer:json;type:jsonb" json:"goals"`
	Interests       []string            `gorm:"serializer:json;type:jsonb" json:"interests"`
	Learning        LearningPreferences `gorm:"serializer:json;type:jsonb" json:"learning"`
	Needs           MentoringNeeds      `gorm:"serializer:json;type:jsonb" json:"needs"`
	Communication   CommunicationStyle  `gorm:"serializer:json;type:jsonb" json:"communication"`
	Personality     []string            `gorm:"serializer:json;type:jsonb" json:"personality"`
	Stats           LearningStats       `gorm:"serializer:json;type:jsonb" json:"stats"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

func (m *MenteeProfile) TableName() string {
	return "mentees"
}
