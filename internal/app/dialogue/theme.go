package dialogue

import (
	"strings"

	"github.com/BuddhiniJ/Mindplus/internal/domain"
)

var studiesTerms = []string{
	"exam",
	"assignment",
	"lecture",
	"school",
	"university",
	"college",
	"gpa",
	"grade",
	"project",
	"thesis",
	"study",
	"studying",
}

var relationshipTerms = []string{
	"friend",
	"friends",
	"relationship",
	"partner",
	"boyfriend",
	"girlfriend",
	"family",
	"parents",
	"mom",
	"dad",
}

var workTerms = []string{"job", "work", "shift", "boss", "office"}

// ClassifyTheme roughly classifies what the user is talking about across
// the whole session: all prior user turns plus the latest text, checked
// against the term groups in order. Only reflective phrasing depends on
// the result.
func ClassifyTheme(history []domain.Turn, latest string) domain.Theme {
	var b strings.Builder
	for _, turn := range history {
		if turn.Role == domain.RoleUser {
			b.WriteString(turn.Message)
			b.WriteString(" ")
		}
	}
	b.WriteString(latest)
	t := strings.ToLower(b.String())

	if containsAny(t, studiesTerms) {
		return domain.ThemeStudies
	}
	if containsAny(t, relationshipTerms) {
		return domain.ThemeRelationships
	}
	if containsAny(t, workTerms) {
		return domain.ThemeWork
	}
	return domain.ThemeGeneral
}

func containsAny(lower string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}
