package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/fadilmartias/mentor-match/internal/matching"
	"github.com/fadilmartias/mentor-match/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGemini struct {
	text string
	err  error
}

func (f *fakeGemini) GenerateText(ctx context.Context, model string, prompt string) (string, error) {
	return f.text, f.err
}

func (f *fakeGemini) GenerateEmbedding(ctx context.Context, text string) ([]float32, error) {
	return nil, errors.New("not used in these tests")
}

type fakeOpenRouter struct {
	text string
	err  error
}

func (f *fakeOpenRouter) Summarize(prompt string) (string, error) {
	return f.text, f.err
}

func summaryMentee() *model.MenteeProfile {
	return &model.MenteeProfile{
		Name:  "Ana",
		Goals: []string{"frontend architecture", "career growth"},
	}
}

func summaryResults() []matching.MatchResult {
	return []matching.MatchResult{
		{
			Mentor:       model.MentorProfile{Name: "Maya", Role: "Staff Engineer", Company: "Acme"},
			MatchScore:   95,
			MatchReasons: []string{"Strong skill alignment in JavaScript"},
		},
	}
}

func TestSummarize_FallbackChain(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		gemini     *fakeGemini
		openRouter *fakeOpenRouter
		expected   string
	}{
		{
			name:       "primary model wins",
			gemini:     &fakeGemini{text: "Maya looks like a great fit."},
			openRouter: &fakeOpenRouter{text: "should not be used"},
			expected:   "Maya looks like a great fit.",
		},
		{
			name:       "primary error falls back to OpenRouter",
			gemini:     &fakeGemini{err: errors.New("quota exceeded")},
			openRouter: &fakeOpenRouter{text: "OpenRouter summary"},
			expected:   "OpenRouter summary",
		},
		{
			name:       "blank primary output counts as failure",
			gemini:     &fakeGemini{text: "   "},
			openRouter: &fakeOpenRouter{text: "OpenRouter summary"},
			expected:   "OpenRouter summary",
		},
		{
			name:       "both failing yields the static fallback",
			gemini:     &fakeGemini{err: errors.New("quota exceeded")},
			openRouter: &fakeOpenRouter{err: errors.New("bad gateway")},
			expected:   fallbackSummary,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &MatchingUsecase{gemini: tt.gemini, openRouter: tt.openRouter}

			got := uc.summarize(ctx, summaryMentee(), summaryResults())

			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestSummarize_NilServices(t *testing.T) {
	uc := &MatchingUsecase{}

	got := uc.summarize(context.Background(), summaryMentee(), summaryResults())

	assert.Equal(t, fallbackSummary, got)
}

func TestSummarize_EmptyResults(t *testing.T) {
	// An empty result set never reaches the models.
	uc := &MatchingUsecase{
		gemini: &fakeGemini{text: "should not be used"},
	}

	got := uc.summarize(context.Background(), summaryMentee(), nil)

	assert.Contains(t, got, "No mentors cleared the match threshold")
}

func TestBuildSummaryPrompt(t *testing.T) {
	results := []matching.MatchResult{
		{Mentor: model.MentorProfile{Name: "Maya", Role: "Staff Engineer", Company: "Acme"}, MatchScore: 95},
		{Mentor: model.MentorProfile{Name: "Noor", Role: "EM", Company: "Beta"}, MatchScore: 89},
		{Mentor: model.MentorProfile{Name: "Ben", Role: "Dev", Company: "Gamma"}, MatchScore: 70},
		{Mentor: model.MentorProfile{Name: "Omitted", Role: "Dev", Company: "Delta"}, MatchScore: 65},
	}

	prompt := buildSummaryPrompt(summaryMentee(), results)

	assert.Contains(t, prompt, "frontend architecture, career growth")
	assert.Contains(t, prompt, "Maya")
	assert.Contains(t, prompt, "95/100")
	assert.Contains(t, prompt, "Ben")
	assert.NotContains(t, prompt, "Omitted", "prompt only covers the top three mentors")
	assert.Equal(t, 3, strings.Count(prompt, "Mentor "))
}

func TestCriteriaStore(t *testing.T) {
	uc := &MatchingUsecase{criteria: matching.DefaultCriteria()}

	assert.Equal(t, matching.DefaultCriteria(), uc.Criteria())

	skills := 0.9
	updated := uc.UpdateCriteria(matching.CriteriaPatch{Skills: &skills})

	assert.Equal(t, 0.9, updated.Skills)
	assert.Equal(t, 0.20, updated.Availability, "unpatched weights survive the merge")
	assert.Equal(t, updated, uc.Criteria(), "update persists as the new default")

	// Updates stack on top of earlier ones.
	location := 0.5
	stacked := uc.UpdateCriteria(matching.CriteriaPatch{Location: &location})
	assert.Equal(t, 0.9, stacked.Skills)
	assert.Equal(t, 0.5, stacked.Location)
}

func TestEffectiveCriteria(t *testing.T) {
	uc := &MatchingUsecase{criteria: matching.DefaultCriteria()}

	t.Run("nil patch returns the stored defaults", func(t *testing.T) {
		assert.Equal(t, matching.DefaultCriteria(), uc.effectiveCriteria(nil))
	})

	t.Run("per-call patch does not touch the stored defaults", func(t *testing.T) {
		budget := 0.4
		got := uc.effectiveCriteria(&matching.CriteriaPatch{Budget: &budget})

		require.Equal(t, 0.4, got.Budget)
		assert.Equal(t, matching.DefaultCriteria(), uc.Criteria())
	})
}
