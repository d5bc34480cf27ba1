package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/fadilmartias/mentor-match/internal/config"
	"github.com/fadilmartias/mentor-match/internal/matching"
	"github.com/fadilmartias/mentor-match/internal/model"
	"github.com/fadilmartias/mentor-match/internal/repository"
	"github.com/fadilmartias/mentor-match/internal/service"
	"github.com/pgvector/pgvector-go"
)

// fallbackSummary is used whenever text generation fails. Match results are
// computed deterministically either way; the summary is decoration.
const fallbackSummary = "Here are your top mentor matches, ranked by skills, availability, communication fit and goals. Review each profile and reach out to the mentor that feels right."

type MatchingUsecase struct {
	menteeRepo *repository.MenteeRepository
	mentorRepo *repository.MentorRepository
	taskRepo   *repository.MatchTaskRepository
	gemini     service.GeminiServiceInterface
	openRouter service.OpenRouterServiceInterface
	engine     *matching.Engine

	// Default weights served by the criteria endpoints. Guarded because
	// criteria updates may race with ranking requests.
	mu       sync.RWMutex
	criteria matching.Criteria
}

func NewMatchingUsecase(menteeRepo *repository.MenteeRepository, mentorRepo *repository.MentorRepository, taskRepo *repository.MatchTaskRepository, gemini service.GeminiServiceInterface, openRouter service.OpenRouterServiceInterface) *MatchingUsecase {
	return &MatchingUsecase{
		menteeRepo: menteeRepo,
		mentorRepo: mentorRepo,
		taskRepo:   taskRepo,
		gemini:     gemini,
		openRouter: openRouter,
		engine:     matching.NewEngine(),
		criteria:   matching.DefaultCriteria(),
	}
}

// Criteria returns a copy of the current default weights.
func (uc *MatchingUsecase) Criteria() matching.Criteria {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.criteria
}

// UpdateCriteria merges the patch over the current defaults and returns the
// new weight set.
func (uc *MatchingUsecase) UpdateCriteria(patch matching.CriteriaPatch) matching.Criteria {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.criteria = uc.criteria.Apply(patch)
	return uc.criteria
}

// effectiveCriteria snapshots the defaults and applies an optional per-call
// override, so ranking always works on an immutable value.
func (uc *MatchingUsecase) effectiveCriteria(patch *matching.CriteriaPatch) matching.Criteria {
	criteria := uc.Criteria()
	if patch != nil {
		criteria = criteria.Apply(*patch)
	}
	return criteria
}

// FindMatches ranks the whole mentor pool against one mentee synchronously.
func (uc *MatchingUsecase) FindMatches(menteeID string, patch *matching.CriteriaPatch, limit int) ([]matching.MatchResult, error) {
	mentee, err := uc.menteeRepo.FindByID(menteeID)
	if err != nil {
		return nil, fmt.Errorf("mentee %s: %w", menteeID, err)
	}
	mentors, err := uc.mentorRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("load mentor pool: %w", err)
	}

	return uc.engine.FindBestMatches(mentee, mentors, uc.effectiveCriteria(patch), limit), nil
}

// AnalyzeMentee builds the heuristic profile report.
func (uc *MatchingUsecase) AnalyzeMentee(menteeID string) (matching.ProfileAnalysis, error) {
	mentee, err := uc.menteeRepo.FindByID(menteeID)
	if err != nil {
		return matching.ProfileAnalysis{}, fmt.Errorf("mentee %s: %w", menteeID, err)
	}
	return matching.AnalyzeMenteeProfile(mentee), nil
}

// SubmitMatchTask persists a processing task and runs the matching in the
// background, mirroring the async evaluation flow.
func (uc *MatchingUsecase) SubmitMatchTask(menteeID string, patch *matching.CriteriaPatch, limit int) (string, error) {
	mentee, err := uc.menteeRepo.FindByID(menteeID)
	if err != nil {
		return "", fmt.Errorf("mentee %s: %w", menteeID, err)
	}

	criteria := uc.effectiveCriteria(patch)
	criteriaJSON, _ := json.Marshal(criteria)

	task := model.MatchTask{
		MenteeID:   mentee.ID,
		Status:     "processing",
		MaxResults: limit,
		Criteria:   string(criteriaJSON),
		Results:    "[]",
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
	if err := uc.taskRepo.CreateTask(&task); err != nil {
		return "", err
	}

	go uc.RunTask(&task, mentee, criteria)

	return task.ID.String(), nil
}

// RunTask executes one match task end to end and stores the outcome. Data
// quality issues cannot fail a task; only the mentor-pool load can.
func (uc *MatchingUsecase) RunTask(task *model.MatchTask, mentee *model.MenteeProfile, criteria matching.Criteria) error {
	ctx := context.Background()

	mentors, err := uc.mentorRepo.GetAll()
	if err != nil {
		task.Status = "failed"
		task.Error = err.Error()
		_ = uc.taskRepo.UpdateTask(task)
		return err
	}

	results := uc.engine.FindBestMatches(mentee, mentors, criteria, task.MaxResults)

	resultsJSON, err := json.Marshal(results)
	if err != nil {
		task.Status = "failed"
		task.Error = err.Error()
		_ = uc.taskRepo.UpdateTask(task)
		return err
	}

	task.Results = string(resultsJSON)
	task.Summary = uc.summarize(ctx, mentee, results)
	task.Status = "completed"
	return uc.taskRepo.UpdateTask(task)
}

// summarize asks the primary model for a short free-text summary of the
// recommendations, falls back to OpenRouter, then to a static string. It
// never returns an error; a summary is always available.
func (uc *MatchingUsecase) summarize(ctx context.Context, mentee *model.MenteeProfile, results []matching.MatchResult) string {
	if len(results) == 0 {
		return "No mentors cleared the match threshold. Try broadening your skills, goals or budget."
	}

	prompt := buildSummaryPrompt(mentee, results)

	if uc.gemini != nil {
		summary, err := uc.gemini.GenerateText(ctx, config.LoadGeminiConfig().TextModel, prompt)
		if err == nil && strings.TrimSpace(summary) != "" {
			return summary
		}
		log.Printf("Gemini summary failed, trying fallback: %v", err)
	}

	if uc.openRouter != nil {
		summary, err := uc.openRouter.Summarize(prompt)
		if err == nil && strings.TrimSpace(summary) != "" {
			return summary
		}
		log.Printf("OpenRouter summary failed, using static fallback: %v", err)
	}

	return fallbackSummary
}

func buildSummaryPrompt(mentee *model.MenteeProfile, results []matching.MatchResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Write a short (max 120 words) encouraging summary of these mentor recommendations for a mentee with goals: %s.\n\n", strings.Join(mentee.Goals, ", "))
	for i, r := range results {
		if i == 3 {
			break
		}
		fmt.Fprintf(&b, "Mentor %d: %s (%s at %s), match score %d/100, reasons: %s\n",
			i+1, r.Mentor.Name, r.Mentor.Role, r.Mentor.Company, r.MatchScore, strings.Join(r.MatchReasons, "; "))
	}
	b.WriteString("\nPlain text only, no markdown.")
	return b.String()
}

// GetResult fetches a match task by id.
func (uc *MatchingUsecase) GetResult(id string) (*model.MatchTask, error) {
	return uc.taskRepo.FindTaskByID(id)
}

// CreateMentorEmbedding (re)computes the bio embedding used by the
// similar-mentor search.
func (uc *MatchingUsecase) CreateMentorEmbedding(ctx context.Context, mentorID string) error {
	mentor, err := uc.mentorRepo.FindByID(mentorID)
	if err != nil {
		return fmt.Errorf("mentor %s: %w", mentorID, err)
	}

	text := mentor.Bio + "\nSkills: " + strings.Join(mentor.Skills, ", ") +
		"\nExpertise: " + strings.Join(mentor.ExpertiseAreas, ", ")
	embedding, err := uc.gemini.GenerateEmbedding(ctx, text)
	if err != nil {
		return err
	}

	mentor.Embedding = pgvector.NewVector(embedding)
	return uc.mentorRepo.Update(mentor)
}

// SimilarMentors returns the topK mentors nearest to the given mentor's bio
// embedding. This is a discovery aid, separate from compatibility scoring.
func (uc *MatchingUsecase) SimilarMentors(ctx context.Context, mentorID string, topK int) ([]model.MentorProfile, error) {
	if topK < 1 || topK > 50 {
		topK = 5
	}
	mentor, err := uc.mentorRepo.FindByID(mentorID)
	if err != nil {
		return nil, fmt.Errorf("mentor %s: %w", mentorID, err)
	}
	if len(mentor.Embedding.Slice()) == 0 {
		return nil, fmt.Errorf("mentor %s has no embedding yet", mentorID)
	}
	return uc.mentorRepo.SearchByEmbedding(mentor.Embedding, topK, mentorID)
}
