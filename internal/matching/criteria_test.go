package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func floatPtr(f float64) *float64 { return &f }

func TestDefaultCriteria_Weights(t *testing.T) {
	c := DefaultCriteria()

	assert.InDelta(t, 1.0, c.TotalWeight(), 1e-9)
	assert.Equal(t, 0.25, c.Skills)
	assert.Equal(t, 0.20, c.Availability)
	assert.Equal(t, 0.15, c.Communication)
	assert.Equal(t, 0.15, c.Experience)
	assert.Equal(t, 0.10, c.Personality)
	assert.Equal(t, 0.10, c.Learning)
	assert.Equal(t, 0.03, c.Budget)
	assert.Equal(t, 0.02, c.Location)
}

func TestCriteria_Apply(t *testing.T) {
	tests := []struct {
		name     string
		patch    CriteriaPatch
		expected func(c Criteria) Criteria
	}{
		{
			name:     "empty patch keeps everything",
			patch:    CriteriaPatch{},
			expected: func(c Criteria) Criteria { return c },
		},
		{
			name:  "single field override keeps the rest",
			patch: CriteriaPatch{Skills: floatPtr(0.9)},
			expected: func(c Criteria) Criteria {
				c.Skills = 0.9
				return c
			},
		},
		{
			name: "multiple overrides",
			patch: CriteriaPatch{
				Availability: floatPtr(0.5),
				Location:     floatPtr(0),
			},
			expected: func(c Criteria) Criteria {
				c.Availability = 0.5
				c.Location = 0
				return c
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := DefaultCriteria()
			assert.Equal(t, tt.expected(DefaultCriteria()), base.Apply(tt.patch))
			// Apply must not mutate the receiver.
			assert.Equal(t, DefaultCriteria(), base)
		})
	}
}

func TestAggregate(t *testing.T) {
	uniform := Breakdown{
		Skills: 0.5, Availability: 0.5, Communication: 0.5, Experience: 0.5,
		Personality: 0.5, Learning: 0.5, Budget: 0.5, Location: 0.5,
	}

	tests := []struct {
		name      string
		breakdown Breakdown
		criteria  Criteria
		expected  float64
	}{
		{
			name:      "uniform scores yield that score",
			breakdown: uniform,
			criteria:  DefaultCriteria(),
			expected:  0.5,
		},
		{
			name:      "partial weight set divides by actual total",
			breakdown: Breakdown{Skills: 1.0, Experience: 0.5},
			criteria:  Criteria{Skills: 0.3, Experience: 0.1},
			expected:  (1.0*0.3 + 0.5*0.1) / 0.4,
		},
		{
			name:      "zero weights yield zero",
			breakdown: uniform,
			criteria:  Criteria{},
			expected:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Aggregate(tt.breakdown, tt.criteria)
			assert.InDelta(t, tt.expected, got, 1e-9)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.LessOrEqual(t, got, 1.0)
		})
	}
}
