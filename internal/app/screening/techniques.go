package screening

import "github.com/BuddhiniJ/Mindplus/internal/domain"

const maxTechniques = 4

// fallbackTechnique is suggested when nothing more specific matched.
const fallbackTechnique = "Mindful breathing"

// SuggestTechniques returns a small set of concrete coping techniques.
// The names are interpreted on the frontend, where more detailed
// instructions can be shown. Conditions append in a fixed order, the
// list is deduplicated preserving first occurrence, and at most four
// entries are returned.
func SuggestTechniques(emotion domain.Emotion, academic domain.AcademicCategory) []string {
	var techniques []string

	if emotion == domain.EmotionFear || emotion == domain.EmotionSurprise {
		techniques = append(techniques, "5-4-3-2-1 grounding", "Box breathing (4-4-4-4)")
	}
	if emotion == domain.EmotionSadness {
		techniques = append(techniques, "Self-compassion check-in", "Small activation task")
	}
	if emotion == domain.EmotionAnger {
		techniques = append(techniques, "4-7-8 breathing", "Cognitive defusion")
	}
	if academic == domain.Burnout {
		techniques = append(techniques, "5-minute micro-break", "Energy audit")
	}
	if isAcademicLadder(academic) {
		techniques = append(techniques, "Task chunking (25/5 Pomodoro)", "Two-minute small start")
	}

	if len(techniques) == 0 {
		techniques = []string{fallbackTechnique}
	}

	deduped := make([]string, 0, len(techniques))
	seen := make(map[string]struct{}, len(techniques))
	for _, t := range techniques {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		deduped = append(deduped, t)
	}

	if len(deduped) > maxTechniques {
		deduped = deduped[:maxTechniques]
	}
	return deduped
}
