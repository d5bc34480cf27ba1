package matching

import "github.com/fadilmartias/mentor-match/internal/model"

// ==========================
// Test Helper Functions
// ==========================

func testMentee() *model.MenteeProfile {
	return &model.MenteeProfile{
		Name:            "Ana",
		Location:        "Austin, USA",
		Timezone:        "EST",
		ExperienceLevel: "beginner",
		Skills:          []string{"JavaScript", "React"},
		Goals:           []string{"frontend architecture", "career growth"},
		Learning: model.LearningPreferences{
			Pace:          "moderate",
			Format:        "visual",
			PreferredTime: "morning",
			SessionLength: "medium",
		},
		Needs: model.MentoringNeeds{
			AreasOfFocus: []string{"frontend"},
			SessionTypes: []string{"video"},
			Frequency:    "weekly",
			Budget:       model.BudgetRange{Min: 20, Max: 100, Currency: "USD"},
			WeeklyHours:  2,
		},
		Communication: model.CommunicationStyle{
			PreferredMethods: []string{"video", "chat"},
			ResponseTime:     "within-days",
			Frequency:        "medium",
		},
	}
}

func testMentor() *model.MentorProfile {
	return &model.MentorProfile{
		Name:            "Maya",
		Location:        "Austin, USA",
		Timezone:        "EST",
		Role:            "Staff Engineer",
		Company:         "Acme",
		YearsExperience: 12,
		ExperienceLevel: "advanced",
		Skills:          []string{"JavaScript", "React", "TypeScript"},
		Specializations: []string{"frontend"},
		ExpertiseAreas:  []string{"frontend architecture", "career growth"},
		Availability: model.Availability{
			Slots: []model.TimeSlot{
				{Day: "monday", StartTime: "09:00", EndTime: "12:00", Timezone: "EST"},
			},
			MaxSessionsPerWeek: 3,
			SessionDuration:    60,
		},
		Pricing:     model.Pricing{HourlyRate: 80, Currency: "USD", FreeSessions: 1},
		CommMethods: []string{"video", "chat", "email"},
		Stats: model.MentorStats{
			TotalSessions:    200,
			AverageRating:    4.8,
			ReviewCount:      40,
			CompletionRate:   0.97,
			AvgResponseHours: 3,
		},
		Preferences: model.MentorPreferences{
			MenteeTypes:          []string{"high", "medium"},
			SessionTypes:         []string{"video", "in-person"},
			MaxConcurrentMentees: 5,
		},
	}
}

// testMismatchedMentor scores poorly on every dimension against testMentee.
func testMismatchedMentor() *model.MentorProfile {
	return &model.MentorProfile{
		Name:            "Ben",
		Location:        "Tokyo, Japan",
		Timezone:        "JST",
		ExperienceLevel: "beginner",
		Skills:          []string{"COBOL"},
		Availability: model.Availability{
			Slots:              []model.TimeSlot{{Day: "monday", StartTime: "22:00", EndTime: "23:00", Timezone: "JST"}},
			MaxSessionsPerWeek: 1,
			SessionDuration:    30,
		},
		Pricing:     model.Pricing{HourlyRate: 400, Currency: "USD"},
		CommMethods: []string{"email"},
		Stats:       model.MentorStats{AvgResponseHours: 120},
		Preferences: model.MentorPreferences{
			MenteeTypes:  []string{"low"},
			SessionTypes: []string{"email"},
		},
	}
}
