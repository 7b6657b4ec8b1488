package screening

import "strings"

// Keyword tables for the lexical detectors. Matching is lowercase
// substring matching, not token matching: a fragment inside a larger
// word counts as a hit. Detectors check the tables in a strict priority
// order, so crisis language always dominates.

// crisisKeywords mark acute overwhelm regardless of emotion.
var crisisKeywords = []string{
	"overwhelmed",
	"can't handle",
	"hopeless",
	"panic",
	"breakdown",
	"giving up",
	"end it",
	"crisis",
}

var burnoutKeywords = []string{
	"burnout",
	"burnt out",
	"exhausted",
	"drained",
	"no energy",
	"fatigued",
	"done with everything",
}

var moderateStressKeywords = []string{
	"stressed",
	"pressure",
	"anxious",
	"worried",
	"tired",
	"frustrated",
	"behind",
	"can't focus",
	"cant focus",
	"procrastinating",
	"procrastination",
}

// academicKeywords only establish academic context; the resulting tier
// depends on the detected emotion.
var academicKeywords = []string{
	"exam",
	"exams",
	"midterm",
	"final",
	"quiz",
	"assignment",
	"assignments",
	"deadline",
	"due",
	"project",
	"thesis",
	"dissertation",
	"university",
	"college",
	"school",
	"lectures",
	"lecture",
	"coursework",
	"gpa",
	"grades",
	"mark",
	"marks",
	"study",
	"studies",
	"studying",
}

var highRiskPhrases = []string{
	"suicide",
	"kill myself",
	"end my life",
	"i want to die",
	"no reason to live",
	"end it all",
}

var moderateRiskPhrases = []string{
	"hopeless",
	"worthless",
	"nothing matters",
	"empty inside",
}

// containsAny reports whether any phrase occurs as a substring of the
// already-lowercased text.
func containsAny(lower string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}
