package matching

import "github.com/fadilmartias/mentor-match/internal/model"

// ProfileAnalysis is a heuristic readiness report for a mentee, independent
// of any mentor pool.
type ProfileAnalysis struct {
	Strengths              []string `json:"strengths"`
	AreasForImprovement    []string `json:"areas_for_improvement"`
	RecommendedMentorTypes []string `json:"recommended_mentor_types"`
}

// AnalyzeMenteeProfile derives strengths, gaps and suggested mentor types
// from the mentee profile alone.
func AnalyzeMenteeProfile(mentee *model.MenteeProfile) ProfileAnalysis {
	analysis := ProfileAnalysis{
		Strengths:           []string{},
		AreasForImprovement: []string{},
	}

	if len(mentee.Skills) >= 5 {
		analysis.Strengths = append(analysis.Strengths, "Broad skill base to build on")
	} else {
		analysis.AreasForImprovement = append(analysis.AreasForImprovement, "Add more skills to your profile so mentors can see where you stand")
	}

	if len(mentee.Goals) >= 3 {
		analysis.Strengths = append(analysis.Strengths, "Clear goals make it easier to find a focused mentor")
	} else {
		analysis.AreasForImprovement = append(analysis.AreasForImprovement, "Define more concrete goals for your mentorship")
	}

	if mentee.Stats.CompletedCourses >= 5 {
		analysis.Strengths = append(analysis.Strengths, "Consistent track record of completing courses")
	}
	if mentee.Stats.LearningStreak >= 30 {
		analysis.Strengths = append(analysis.Strengths, "Strong learning habit with a 30+ day streak")
	}

	switch mentee.ExperienceLevel {
	case "beginner":
		analysis.RecommendedMentorTypes = []string{
			"Patient mentors with teaching experience",
			"Mentors who enjoy working with beginners",
		}
	case "intermediate":
		analysis.RecommendedMentorTypes = []string{
			"Industry experts",
			"Technical leads",
		}
	case "advanced":
		analysis.RecommendedMentorTypes = []string{
			"Senior executives",
			"Strategic advisors",
		}
	default:
		analysis.RecommendedMentorTypes = []string{
			"Mentors with broad industry experience",
		}
	}

	return analysis
}
