package matching

import (
	"math"
	"strings"

	"github.com/fadilmartias/mentor-match/internal/model"
)

// Breakdown is the per-dimension compatibility vector; every field is in [0,1].
type Breakdown struct {
	Skills        float64 `json:"skills"`
	Availability  float64 `json:"availability"`
	Communication float64 `json:"communication"`
	Experience    float64 `json:"experience"`
	Personality   float64 `json:"personality"`
	Learning      float64 `json:"learning"`
	Budget        float64 `json:"budget"`
	Location      float64 `json:"location"`
}

func (b Breakdown) Average() float64 {
	return (b.Skills + b.Availability + b.Communication + b.Experience +
		b.Personality + b.Learning + b.Budget + b.Location) / 8
}

// neutral is the fallback score when an input is too sparse to judge.
// Sub-scores never fail on missing data; they degrade to this instead.
const neutral = 0.5

// Evaluator computes the compatibility breakdown for one (mentee, mentor)
// pair. It is stateless apart from the injected skill matcher and safe for
// concurrent use.
type Evaluator struct {
	skills SkillMatcher
}

type EvaluatorOption func(*Evaluator)

func WithSkillMatcher(m SkillMatcher) EvaluatorOption {
	return func(e *Evaluator) {
		e.skills = m
	}
}

func NewEvaluator(options ...EvaluatorOption) *Evaluator {
	e := &Evaluator{skills: NewSynonymMatcher()}
	for _, opt := range options {
		opt(e)
	}
	return e
}

func (e *Evaluator) Evaluate(mentee *model.MenteeProfile, mentor *model.MentorProfile) Breakdown {
	return Breakdown{
		Skills:        e.skillScore(mentee, mentor),
		Availability:  e.availabilityScore(mentee, mentor),
		Communication: e.communicationScore(mentee, mentor),
		Experience:    e.experienceScore(mentee, mentor),
		Personality:   e.personalityScore(mentee, mentor),
		Learning:      e.learningScore(mentee, mentor),
		Budget:        e.budgetScore(mentee, mentor),
		Location:      e.locationScore(mentee, mentor),
	}
}

// skillScore weighs direct skill matches at 1.0, specialization matches at
// 0.8 and expertise-area matches against the mentee's goals at 0.6, then
// normalizes by skill count + goal count.
func (e *Evaluator) skillScore(mentee *model.MenteeProfile, mentor *model.MentorProfile) float64 {
	if len(mentee.Skills) == 0 {
		return neutral
	}

	weighted := 0.0
	for _, skill := range mentee.Skills {
		switch {
		case matchesAny(e.skills, skill, mentor.Skills):
			weighted += 1.0
		case matchesAny(e.skills, skill, mentor.Specializations):
			weighted += 0.8
		}
	}
	for _, goal := range mentee.Goals {
		if matchesAny(e.skills, goal, mentor.ExpertiseAreas) {
			weighted += 0.6
		}
	}

	score := weighted / float64(len(mentee.Skills)+len(mentee.Goals))
	return math.Min(score, 1.0)
}

func (e *Evaluator) availabilityScore(mentee *model.MenteeProfile, mentor *model.MentorProfile) float64 {
	capacity := 0.5
	weeklyCapacity := float64(mentor.Availability.MaxSessionsPerWeek) * float64(mentor.Availability.SessionDuration) / 60
	if weeklyCapacity >= mentee.Needs.WeeklyHours {
		capacity = 1.0
	}

	tz := timezoneCompatibility(mentee.Timezone, mentor.Timezone)
	slots := e.slotOverlap(mentee.Learning.PreferredTime, mentor.Availability.Slots)

	return 0.4*capacity + 0.3*tz + 0.3*slots
}

// Fixed UTC offsets; unknown zones fall back to 0 so scoring never fails on
// an unrecognized timezone string.
var timezoneOffsets = map[string]int{
	"UTC": 0,
	"GMT": 0,
	"EST": -5,
	"PST": -8,
	"CET": 1,
	"JST": 9,
}

func timezoneCompatibility(menteeTZ, mentorTZ string) float64 {
	if menteeTZ == mentorTZ {
		return 1.0
	}
	diff := math.Abs(float64(timezoneOffsets[menteeTZ] - timezoneOffsets[mentorTZ]))
	switch {
	case diff <= 2:
		return 0.9
	case diff <= 4:
		return 0.7
	case diff <= 6:
		return 0.5
	case diff <= 8:
		return 0.3
	default:
		return 0.1
	}
}

// Canonical slot-start hours per time-of-day preference; "flexible" covers all.
var timeOfDayHours = map[string][]string{
	"morning":   {"09:00", "10:00", "11:00"},
	"afternoon": {"12:00", "13:00", "14:00", "15:00", "16:00"},
	"evening":   {"17:00", "18:00", "19:00", "20:00"},
}

func (e *Evaluator) slotOverlap(preferredTime string, slots []model.TimeSlot) float64 {
	if len(slots) == 0 {
		return neutral
	}
	hours, ok := timeOfDayHours[preferredTime]
	if preferredTime == "flexible" {
		for _, h := range timeOfDayHours {
			hours = append(hours, h...)
		}
		ok = true
	}
	if !ok {
		return neutral
	}
	for _, slot := range slots {
		for _, hour := range hours {
			if slot.StartTime == hour {
				return 1.0
			}
		}
	}
	return neutral
}

var expectedResponseHours = map[string]float64{
	"immediate":    0.5,
	"within-hours": 4,
	"within-days":  24,
}

func (e *Evaluator) communicationScore(mentee *model.MenteeProfile, mentor *model.MentorProfile) float64 {
	preferred := mentee.Communication.PreferredMethods
	if len(preferred) == 0 {
		return neutral
	}

	matched := 0
	for _, method := range preferred {
		for _, offered := range mentor.CommMethods {
			if strings.EqualFold(method, offered) {
				matched++
				break
			}
		}
	}
	overlap := float64(matched) / float64(len(preferred))

	expected, ok := expectedResponseHours[mentee.Communication.ResponseTime]
	if !ok {
		expected = 24
	}
	actual := mentor.Stats.AvgResponseHours
	var response float64
	switch {
	case actual <= expected:
		response = 1.0
	case actual <= expected*2:
		response = 0.7
	case actual <= expected*4:
		response = 0.4
	default:
		response = 0.1
	}

	return 0.7*overlap + 0.3*response
}

var experienceOrdinals = map[string]int{
	"beginner":     0,
	"intermediate": 1,
	"advanced":     2,
	"expert":       3,
}

// experienceScore rewards a mentor one or two levels above the mentee; a
// mentor below the mentee's level scores poorly.
func (e *Evaluator) experienceScore(mentee *model.MenteeProfile, mentor *model.MentorProfile) float64 {
	menteeOrd, okMentee := experienceOrdinals[mentee.ExperienceLevel]
	mentorOrd, okMentor := experienceOrdinals[mentor.ExperienceLevel]
	if !okMentee || !okMentor {
		return neutral
	}
	diff := mentorOrd - menteeOrd
	switch {
	case diff == 1 || diff == 2:
		return 1.0
	case diff == 0:
		return 0.8
	case diff == 3:
		return 0.6
	case diff < 0:
		return 0.3
	default:
		return 0.5
	}
}

// personalityScore is a simplified proxy: does the mentor accept mentees with
// this communication frequency.
func (e *Evaluator) personalityScore(mentee *model.MenteeProfile, mentor *model.MentorProfile) float64 {
	if len(mentor.Preferences.MenteeTypes) == 0 {
		return neutral
	}
	for _, accepted := range mentor.Preferences.MenteeTypes {
		if strings.EqualFold(accepted, mentee.Communication.Frequency) {
			return 1.0
		}
	}
	return 0.3
}

var formatSessionTypes = map[string][]string{
	"visual":   {"video", "in-person"},
	"text":     {"chat", "email"},
	"hands-on": {"in-person", "video"},
	"mixed":    {"video", "in-person", "chat", "email"},
}

func (e *Evaluator) learningScore(mentee *model.MenteeProfile, mentor *model.MentorProfile) float64 {
	compatible, ok := formatSessionTypes[mentee.Learning.Format]
	if !ok {
		return neutral
	}
	for _, sessionType := range mentor.Preferences.SessionTypes {
		for _, want := range compatible {
			if strings.EqualFold(sessionType, want) {
				return 1.0
			}
		}
	}
	return neutral
}

// Fixed exchange rates relative to USD; unknown currencies convert 1:1.
var currencyRates = map[string]float64{
	"USD": 1,
	"EUR": 0.85,
	"GBP": 0.73,
	"JPY": 110,
}

func convertRate(rate float64, from, to string) float64 {
	fromRate, ok := currencyRates[from]
	if !ok {
		fromRate = 1
	}
	toRate, ok := currencyRates[to]
	if !ok {
		toRate = 1
	}
	return rate / fromRate * toRate
}

func (e *Evaluator) budgetScore(mentee *model.MenteeProfile, mentor *model.MentorProfile) float64 {
	budget := mentee.Needs.Budget
	if budget.Max <= 0 {
		return neutral
	}
	rate := convertRate(mentor.Pricing.HourlyRate, mentor.Pricing.Currency, budget.Currency)
	switch {
	case rate >= budget.Min && rate <= budget.Max:
		return 1.0
	case rate <= budget.Max*1.2:
		return 0.8
	case rate <= budget.Max*1.5:
		return 0.5
	default:
		return 0.2
	}
}

var countryContinents = map[string]string{
	"usa":            "north america",
	"united states":  "north america",
	"canada":         "north america",
	"mexico":         "north america",
	"uk":             "europe",
	"united kingdom": "europe",
	"germany":        "europe",
	"france":         "europe",
	"spain":          "europe",
	"italy":          "europe",
	"netherlands":    "europe",
	"poland":         "europe",
	"japan":          "asia",
	"china":          "asia",
	"india":          "asia",
	"singapore":      "asia",
	"south korea":    "asia",
	"australia":      "oceania",
	"new zealand":    "oceania",
	"brazil":         "south america",
	"argentina":      "south america",
}

func (e *Evaluator) locationScore(mentee *model.MenteeProfile, mentor *model.MentorProfile) float64 {
	a := strings.TrimSpace(mentee.Location)
	b := strings.TrimSpace(mentor.Location)
	if a == "" || b == "" {
		return 0.3
	}
	if strings.EqualFold(a, b) {
		return 1.0
	}
	countryA := inferCountry(a)
	countryB := inferCountry(b)
	if countryA == countryB {
		return 0.8
	}
	if continentOf(countryA) != "unknown" && continentOf(countryA) == continentOf(countryB) {
		return 0.6
	}
	return 0.3
}

// inferCountry takes the last comma-separated token, e.g. "Berlin, Germany".
func inferCountry(location string) string {
	parts := strings.Split(location, ",")
	return strings.ToLower(strings.TrimSpace(parts[len(parts)-1]))
}

func continentOf(country string) string {
	if continent, ok := countryContinents[country]; ok {
		return continent
	}
	return "unknown"
}
