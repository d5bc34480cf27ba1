// Package matching ranks mentors against a mentee profile using weighted
// multi-criteria compatibility scoring. It is pure computation: no I/O, no
// shared mutable state, deterministic for identical inputs.
package matching

import (
	"math"
	"sort"

	"github.com/fadilmartias/mentor-match/internal/model"
)

// MatchResult is one ranked recommendation. It is a transient value; nothing
// here is persisted by the engine.
type MatchResult struct {
	Mentor              model.MentorProfile `json:"mentor"`
	MatchScore          int                 `json:"match_score"` // 0-100
	Compatibility       Breakdown           `json:"compatibility"`
	MatchReasons        []string            `json:"match_reasons"`
	PotentialChallenges []string            `json:"potential_challenges"`
	Recommendations     Recommendations     `json:"recommendations"`
	Confidence          string              `json:"confidence"` // low | medium | high
}

const (
	// Mentors whose aggregate score does not exceed this are dropped before
	// any explanation work. Inherited value; tunable, not meaningful.
	defaultScoreThreshold = 0.3

	defaultMaxResults = 10
)

type Engine struct {
	evaluator  *Evaluator
	threshold  float64
	maxReasons int
}

type EngineOption func(*Engine)

func WithEvaluator(e *Evaluator) EngineOption {
	return func(eng *Engine) {
		eng.evaluator = e
	}
}

func WithScoreThreshold(t float64) EngineOption {
	return func(eng *Engine) {
		eng.threshold = t
	}
}

func WithMaxReasons(n int) EngineOption {
	return func(eng *Engine) {
		eng.maxReasons = n
	}
}

func NewEngine(options ...EngineOption) *Engine {
	eng := &Engine{
		evaluator:  NewEvaluator(),
		threshold:  defaultScoreThreshold,
		maxReasons: maxReasons,
	}
	for _, opt := range options {
		opt(eng)
	}
	return eng
}

// FindBestMatches scores every mentor against the mentee, drops those at or
// below the threshold, and returns at most limit results sorted by descending
// match score. Equal scores keep the input order (stable sort). A limit <= 0
// means the default of 10.
func (eng *Engine) FindBestMatches(mentee *model.MenteeProfile, mentors []model.MentorProfile, criteria Criteria, limit int) []MatchResult {
	if limit <= 0 {
		limit = defaultMaxResults
	}

	results := make([]MatchResult, 0, len(mentors))
	for i := range mentors {
		mentor := &mentors[i]
		breakdown := eng.evaluator.Evaluate(mentee, mentor)
		overall := Aggregate(breakdown, criteria)
		if overall <= eng.threshold {
			continue
		}
		// Explanations are built only for mentors that survive the filter.
		ex := &explainer{skills: eng.evaluator.skills, maxReasons: eng.maxReasons}
		results = append(results, MatchResult{
			Mentor:              *mentor,
			MatchScore:          int(math.Round(overall * 100)),
			Compatibility:       breakdown,
			MatchReasons:        ex.reasons(mentee, mentor, breakdown),
			PotentialChallenges: ex.challenges(mentee, mentor),
			Recommendations:     ex.recommendations(mentee, mentor),
			Confidence:          confidence(overall, breakdown),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].MatchScore > results[j].MatchScore
	})

	if len(results) > limit {
		results = results[:limit]
	}
	return results
}
