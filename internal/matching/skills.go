package matching

import "strings"

// SkillMatcher decides whether two skill strings should be treated as
// equivalent. The scoring code only depends on this interface, so the
// synonym-table default can be swapped for something smarter (an
// embedding-based matcher, for example) without touching the evaluator.
type SkillMatcher interface {
	Match(a, b string) bool
}

// SynonymMatcher matches case-insensitive substrings in either direction and
// members of the same synonym group.
type SynonymMatcher struct {
	groupIndex map[string]int
}

var defaultSynonymGroups = [][]string{
	{"javascript", "js", "ecmascript"},
	{"typescript", "ts"},
	{"python", "py"},
	{"golang", "go"},
	{"react", "reactjs", "react.js"},
	{"node", "nodejs", "node.js"},
	{"postgresql", "postgres"},
	{"kubernetes", "k8s"},
	{"machine learning", "ml"},
	{"artificial intelligence", "ai"},
	{"user experience", "ux"},
	{"user interface", "ui"},
	{"product management", "pm"},
}

func NewSynonymMatcher(groups ...[]string) *SynonymMatcher {
	if len(groups) == 0 {
		groups = defaultSynonymGroups
	}
	idx := make(map[string]int)
	for i, group := range groups {
		for _, term := range group {
			idx[strings.ToLower(term)] = i
		}
	}
	return &SynonymMatcher{groupIndex: idx}
}

func (m *SynonymMatcher) Match(a, b string) bool {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == "" || b == "" {
		return false
	}
	if strings.Contains(a, b) || strings.Contains(b, a) {
		return true
	}
	ga, okA := m.groupIndex[a]
	gb, okB := m.groupIndex[b]
	return okA && okB && ga == gb
}

// matchesAny reports whether s matches any element of list.
func matchesAny(m SkillMatcher, s string, list []string) bool {
	for _, candidate := range list {
		if m.Match(s, candidate) {
			return true
		}
	}
	return false
}
