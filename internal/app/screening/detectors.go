package screening

import (
	"strings"

	"github.com/BuddhiniJ/Mindplus/internal/domain"
)

// EmotionToStress maps the detected emotion to a coarse stress tier.
func EmotionToStress(emotion domain.Emotion) domain.StressTier {
	switch emotion {
	case domain.EmotionFear, domain.EmotionSadness, domain.EmotionAnger, domain.EmotionDisgust:
		return domain.StressHigh
	case domain.EmotionSurprise:
		return domain.StressMedium
	default:
		return domain.StressLow
	}
}

// ClassifyAcademicStress combines keyword spotting with the detected
// emotion. Tiers are tested in strict priority order and only the first
// match applies: crisis phrases dominate burnout phrases, which dominate
// moderate-stress phrases, which dominate plain academic context.
func ClassifyAcademicStress(text string, emotion domain.Emotion) domain.AcademicCategory {
	t := strings.ToLower(text)

	switch {
	case containsAny(t, crisisKeywords):
		return domain.AcademicStressHigh
	case containsAny(t, burnoutKeywords):
		return domain.Burnout
	case containsAny(t, moderateStressKeywords):
		return domain.AcademicStressMedium
	}

	if containsAny(t, academicKeywords) {
		switch emotion {
		case domain.EmotionFear, domain.EmotionSadness, domain.EmotionAnger:
			return domain.AcademicStressHigh
		case domain.EmotionSurprise:
			return domain.AcademicStressMedium
		default:
			return domain.AcademicStressLow
		}
	}

	switch emotion {
	case domain.EmotionFear, domain.EmotionSadness, domain.EmotionAnger:
		return domain.AcademicStressMedium
	default:
		return domain.AcademicStressLow
	}
}

// DetectRisk screens for self-harm language. It is independent of the
// emotion label and of the academic classifier.
func DetectRisk(text string) domain.RiskTier {
	t := strings.ToLower(text)

	if containsAny(t, highRiskPhrases) {
		return domain.RiskHigh
	}
	if containsAny(t, moderateRiskPhrases) {
		return domain.RiskModerate
	}
	return domain.RiskSafe
}
