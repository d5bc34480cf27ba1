package matching

import (
	"fmt"
	"testing"

	"github.com/fadilmartias/mentor-match/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindBestMatches_RanksAndFilters(t *testing.T) {
	eng := NewEngine()
	mentee := testMentee()

	strong := testMentor()
	weak := testMismatchedMentor()

	// A middling mentor: same profile as strong but pricier and slower.
	middling := testMentor()
	middling.Name = "Noor"
	middling.Pricing.HourlyRate = 140
	middling.Stats.AvgResponseHours = 60
	middling.Timezone = "PST"

	results := eng.FindBestMatches(mentee, []model.MentorProfile{*weak, *middling, *strong}, DefaultCriteria(), 10)

	require.Len(t, results, 2, "the mismatched mentor must be filtered out")
	assert.Equal(t, "Maya", results[0].Mentor.Name)
	assert.Equal(t, "Noor", results[1].Mentor.Name)
	assert.Greater(t, results[0].MatchScore, results[1].MatchScore)

	for _, r := range results {
		assert.GreaterOrEqual(t, r.MatchScore, 0)
		assert.LessOrEqual(t, r.MatchScore, 100)
		assert.Greater(t, Aggregate(r.Compatibility, DefaultCriteria()), 0.3)
		assert.Contains(t, []string{"low", "medium", "high"}, r.Confidence)
	}
}

func TestFindBestMatches_StrongMatchDetail(t *testing.T) {
	eng := NewEngine()

	results := eng.FindBestMatches(testMentee(), []model.MentorProfile{*testMentor()}, DefaultCriteria(), 10)

	require.Len(t, results, 1)
	r := results[0]
	assert.Equal(t, 95, r.MatchScore)
	assert.Equal(t, "high", r.Confidence)
	assert.NotEmpty(t, r.MatchReasons)
	assert.LessOrEqual(t, len(r.MatchReasons), 5)
	assert.Empty(t, r.PotentialChallenges)
	assert.Equal(t, "weekly", r.Recommendations.SessionFrequency)
	assert.Equal(t, "60-minute sessions", r.Recommendations.SessionDuration)
}

func TestFindBestMatches_TieBreakIsStable(t *testing.T) {
	eng := NewEngine()
	mentee := testMentee()

	pool := make([]model.MentorProfile, 4)
	for i := range pool {
		m := testMentor()
		m.Name = fmt.Sprintf("Mentor %d", i)
		pool[i] = *m
	}

	results := eng.FindBestMatches(mentee, pool, DefaultCriteria(), 10)

	require.Len(t, results, 4)
	for i, r := range results {
		assert.Equal(t, fmt.Sprintf("Mentor %d", i), r.Mentor.Name, "equal scores must keep input order")
	}
}

func TestFindBestMatches_LimitAndDefault(t *testing.T) {
	eng := NewEngine()
	mentee := testMentee()

	pool := make([]model.MentorProfile, 12)
	for i := range pool {
		pool[i] = *testMentor()
	}

	assert.Len(t, eng.FindBestMatches(mentee, pool, DefaultCriteria(), 0), 10, "limit <= 0 defaults to 10")
	assert.Len(t, eng.FindBestMatches(mentee, pool, DefaultCriteria(), 3), 3)
	assert.Len(t, eng.FindBestMatches(mentee, pool[:2], DefaultCriteria(), 10), 2)
}

func TestFindBestMatches_Deterministic(t *testing.T) {
	eng := NewEngine()
	mentee := testMentee()
	pool := []model.MentorProfile{*testMentor(), *testMismatchedMentor(), *testMentor()}

	first := eng.FindBestMatches(mentee, pool, DefaultCriteria(), 10)
	second := eng.FindBestMatches(mentee, pool, DefaultCriteria(), 10)

	assert.Equal(t, first, second)
}

func TestFindBestMatches_EmptyPool(t *testing.T) {
	eng := NewEngine()

	results := eng.FindBestMatches(testMentee(), nil, DefaultCriteria(), 10)

	assert.Empty(t, results)
}

func TestFindBestMatches_CustomWeightsChangeRanking(t *testing.T) {
	eng := NewEngine()
	mentee := testMentee()

	// Make location the only thing that matters.
	criteria := Criteria{Location: 1.0}

	local := testMismatchedMentor()
	local.Name = "Local"
	local.Location = mentee.Location

	sameCountry := testMentor()
	sameCountry.Name = "Same country"
	sameCountry.Location = "Seattle, USA"

	// Location score 0.3 makes the aggregate land exactly on the threshold,
	// and the filter is strict.
	overseas := testMentor()
	overseas.Name = "Overseas"
	overseas.Location = "Tokyo, Japan"

	results := eng.FindBestMatches(mentee, []model.MentorProfile{*sameCountry, *local, *overseas}, criteria, 10)

	require.Len(t, results, 2)
	assert.Equal(t, "Local", results[0].Mentor.Name)
	assert.Equal(t, 100, results[0].MatchScore)
	assert.Equal(t, "Same country", results[1].Mentor.Name)
	assert.Equal(t, 80, results[1].MatchScore)
}

func TestFindBestMatches_ThresholdOption(t *testing.T) {
	// With the threshold lifted to 0.99 even the strong mentor drops out.
	eng := NewEngine(WithScoreThreshold(0.99))

	results := eng.FindBestMatches(testMentee(), []model.MentorProfile{*testMentor()}, DefaultCriteria(), 10)

	assert.Empty(t, results)
}
