package matching

// Criteria holds the weight of each compatibility dimension. Weights are
// expected to roughly sum to 1.0 but aggregation divides by the actual total,
// so partial or rescaled sets stay valid.
type Criteria struct {
	Skills        float64 `json:"skills"`
	Availability  float64 `json:"availability"`
	Communication float64 `json:"communication"`
	Experience    float64 `json:"experience"`
	Personality   float64 `json:"personality"`
	Learning      float64 `json:"learning"`
	Budget        float64 `json:"budget"`
	Location      float64 `json:"location"`
}

// CriteriaPatch is a partial weight override; nil fields keep the current value.
type CriteriaPatch struct {
	Skills        *float64 `json:"skills"`
	Availability  *float64 `json:"availability"`
	Communication *float64 `json:"communication"`
	Experience    *float64 `json:"experience"`
	Personality   *float64 `json:"personality"`
	Learning      *float64 `json:"learning"`
	Budget        *float64 `json:"budget"`
	Location      *float64 `json:"location"`
}

func DefaultCriteria() Criteria {
	return Criteria{
		Skills:        0.25,
		Availability:  0.20,
		Communication: 0.15,
		Experience:    0.15,
		Personality:   0.10,
		Learning:      0.10,
		Budget:        0.03,
		Location:      0.02,
	}
}

// Apply merges non-nil patch fields over c and returns the result.
func (c Criteria) Apply(p CriteriaPatch) Criteria {
	if p.Skills != nil {
		c.Skills = *p.Skills
	}
	if p.Availability != nil {
		c.Availability = *p.Availability
	}
	if p.Communication != nil {
		c.Communication = *p.Communication
	}
	if p.Experience != nil {
		c.Experience = *p.Experience
	}
	if p.Personality != nil {
		c.Personality = *p.Personality
	}
	if p.Learning != nil {
		c.Learning = *p.Learning
	}
	if p.Budget != nil {
		c.Budget = *p.Budget
	}
	if p.Location != nil {
		c.Location = *p.Location
	}
	return c
}

func (c Criteria) TotalWeight() float64 {
	return c.Skills + c.Availability + c.Communication + c.Experience +
		c.Personality + c.Learning + c.Budget + c.Location
}

// Aggregate computes the weighted average of the eight dimension scores.
// Returns a value in [0,1]; zero total weight yields 0.
func Aggregate(b Breakdown, c Criteria) float64 {
	total := c.TotalWeight()
	if total <= 0 {
		return 0
	}
	sum := b.Skills*c.Skills +
		b.Availability*c.Availability +
		b.Communication*c.Communication +
		b.Experience*c.Experience +
		b.Personality*c.Personality +
		b.Learning*c.Learning +
		b.Budget*c.Budget +
		b.Location*c.Location
	return sum / total
}
