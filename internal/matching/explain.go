package matching

import (
	"fmt"
	"strings"

	"github.com/fadilmartias/mentor-match/internal/model"
)

// Recommendations carries actionable suggestions for running the mentorship.
type Recommendations struct {
	SessionFrequency      string   `json:"session_frequency"`
	SessionDuration       string   `json:"session_duration"`
	FocusAreas            []string `json:"focus_areas"`
	CommunicationStrategy string   `json:"communication_strategy"`
}

// maxReasons caps the match-reason list. The value is inherited behavior, not
// a meaningful boundary; tune via WithMaxReasons on the engine.
const maxReasons = 5

// explainer turns a breakdown plus raw profile fields into human-facing text.
// Output is deterministic: same inputs, same strings, same order.
type explainer struct {
	skills     SkillMatcher
	maxReasons int
}

func (ex *explainer) reasons(mentee *model.MenteeProfile, mentor *model.MentorProfile, b Breakdown) []string {
	reasons := make([]string, 0, ex.maxReasons)

	if b.Skills > 0.8 {
		shared := ex.sharedSkills(mentee, mentor, 3)
		if len(shared) > 0 {
			reasons = append(reasons, fmt.Sprintf("Strong skill alignment in %s", strings.Join(shared, ", ")))
		} else {
			reasons = append(reasons, "Strong alignment between your skills and the mentor's expertise")
		}
	}
	if b.Experience > 0.8 {
		reasons = append(reasons, fmt.Sprintf("Mentor's %s level is a good fit for your current stage", mentor.ExperienceLevel))
	}
	if b.Availability > 0.8 {
		reasons = append(reasons, "Your schedules line up well for regular sessions")
	}
	if b.Communication > 0.8 {
		reasons = append(reasons, "Communication preferences are highly compatible")
	}
	if mentor.Stats.AverageRating >= 4.5 {
		reasons = append(reasons, fmt.Sprintf("Highly rated mentor (%.1f/5 across %d reviews)", mentor.Stats.AverageRating, mentor.Stats.ReviewCount))
	}
	if mentor.YearsExperience >= 10 {
		reasons = append(reasons, fmt.Sprintf("%d years of industry experience", mentor.YearsExperience))
	}
	if mentor.Pricing.FreeSessions > 0 {
		reasons = append(reasons, fmt.Sprintf("Offers %d free sessions per month", mentor.Pricing.FreeSessions))
	}

	if len(reasons) > ex.maxReasons {
		reasons = reasons[:ex.maxReasons]
	}
	return reasons
}

func (ex *explainer) sharedSkills(mentee *model.MenteeProfile, mentor *model.MentorProfile, limit int) []string {
	shared := make([]string, 0, limit)
	for _, skill := range mentee.Skills {
		if matchesAny(ex.skills, skill, mentor.Skills) || matchesAny(ex.skills, skill, mentor.Specializations) {
			shared = append(shared, skill)
			if len(shared) == limit {
				break
			}
		}
	}
	return shared
}

func (ex *explainer) challenges(mentee *model.MenteeProfile, mentor *model.MentorProfile) []string {
	challenges := []string{}

	if mentee.Timezone != mentor.Timezone {
		challenges = append(challenges, "Different time zones will require coordinating session times")
	}

	rate := convertRate(mentor.Pricing.HourlyRate, mentor.Pricing.Currency, mentee.Needs.Budget.Currency)
	if mentee.Needs.Budget.Max > 0 && rate > mentee.Needs.Budget.Max {
		challenges = append(challenges, "Mentor's hourly rate is above your stated budget")
	}

	if mentee.Communication.Frequency == "high" && mentor.Stats.AvgResponseHours > 24 {
		challenges = append(challenges, "You prefer frequent communication but this mentor typically responds in over a day")
	}

	if mentee.Learning.Format == "hands-on" && !containsFold(mentor.Preferences.SessionTypes, "in-person") {
		challenges = append(challenges, "You prefer hands-on learning but this mentor does not offer in-person sessions")
	}

	return challenges
}

func (ex *explainer) recommendations(mentee *model.MenteeProfile, mentor *model.MentorProfile) Recommendations {
	return Recommendations{
		SessionFrequency:      suggestFrequency(mentee.Needs.Frequency, mentor.Availability.MaxSessionsPerWeek),
		SessionDuration:       suggestDuration(mentor.Availability.SessionDuration),
		FocusAreas:            ex.focusAreas(mentee, mentor, 3),
		CommunicationStrategy: suggestCommunication(mentee.Communication.PreferredMethods, mentor.CommMethods),
	}
}

func suggestFrequency(desired string, maxSessionsPerWeek int) string {
	switch {
	case desired == "weekly" && maxSessionsPerWeek >= 1:
		return "weekly"
	case desired == "bi-weekly" && maxSessionsPerWeek >= 2:
		return "bi-weekly"
	case desired == "monthly":
		return "monthly"
	default:
		return "flexible scheduling based on availability"
	}
}

func suggestDuration(durationMinutes int) string {
	switch {
	case durationMinutes >= 60:
		return "60-minute sessions"
	case durationMinutes >= 30:
		return "45-minute sessions"
	default:
		return "30-minute sessions"
	}
}

func (ex *explainer) focusAreas(mentee *model.MenteeProfile, mentor *model.MentorProfile, limit int) []string {
	areas := make([]string, 0, limit)
	for _, goal := range mentee.Goals {
		if matchesAny(ex.skills, goal, mentor.ExpertiseAreas) {
			areas = append(areas, goal)
			if len(areas) == limit {
				break
			}
		}
	}
	return areas
}

// Preferred channels in priority order when both sides support them.
var channelPriority = []string{"video", "phone", "chat"}

func suggestCommunication(preferred, offered []string) string {
	for _, channel := range channelPriority {
		if containsFold(preferred, channel) && containsFold(offered, channel) {
			return fmt.Sprintf("Start with %s sessions to build rapport", channel)
		}
	}
	return "Agree on a primary communication channel during your first session"
}

// confidence classifies match strength from the aggregate and the plain
// average of the eight sub-scores.
func confidence(overall float64, b Breakdown) string {
	avg := b.Average()
	switch {
	case overall >= 0.8 && avg >= 0.8:
		return "high"
	case overall >= 0.6 && avg >= 0.6:
		return "medium"
	default:
		return "low"
	}
}

func containsFold(list []string, s string) bool {
	for _, item := range list {
		if strings.EqualFold(item, s) {
			return true
		}
	}
	return false
}
