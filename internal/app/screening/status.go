package screening

import (
	"strings"

	"github.com/BuddhiniJ/Mindplus/internal/domain"
)

// Signals is the full set of per-call classification results. It is
// derived statelessly from one piece of text plus its emotion label.
type Signals struct {
	Emotion  domain.Emotion
	Stress   domain.StressTier
	Academic domain.AcademicCategory
	Risk     domain.RiskTier
	Overall  domain.OverallStatus
}

// statusRule is one branch of the fusion decision list.
type statusRule struct {
	when func(s Signals) bool
	then domain.OverallStatus
}

// statusRules fuse the detector outputs into one overall status. The
// list is evaluated in order and the first true branch wins, so risk
// always outranks academic stress, which outranks the emotion-derived
// tier.
var statusRules = []statusRule{
	{
		when: func(s Signals) bool { return s.Risk == domain.RiskHigh },
		then: domain.StatusCritical,
	},
	{
		when: func(s Signals) bool { return s.Risk == domain.RiskModerate },
		then: domain.StatusHighStress,
	},
	{
		when: func(s Signals) bool {
			return s.Academic == domain.AcademicStressHigh || s.Academic == domain.Burnout
		},
		then: domain.StatusHighStress,
	},
	{
		when: func(s Signals) bool {
			return s.Academic == domain.AcademicStressMedium || s.Stress == domain.StressMedium
		},
		then: domain.StatusModerateStress,
	},
	{
		when: func(s Signals) bool {
			return s.Stress == domain.StressLow && s.Academic == domain.AcademicStressLow
		},
		then: domain.StatusLowStress,
	},
}

// OverallStatus is a pure, total function of the signal tuple.
func OverallStatus(s Signals) domain.OverallStatus {
	for _, r := range statusRules {
		if r.when(s) {
			return r.then
		}
	}
	return domain.StatusNormal
}

// Screen runs every detector over one piece of text and fuses the
// results. Pure and reentrant.
func Screen(text string, emotion domain.Emotion) Signals {
	s := Signals{
		Emotion:  emotion,
		Stress:   EmotionToStress(emotion),
		Academic: ClassifyAcademicStress(text, emotion),
		Risk:     DetectRisk(text),
	}
	s.Overall = OverallStatus(s)
	return s
}

// isAcademicLadder reports whether the category sits on the
// academic_stress_* ladder (burnout is deliberately outside it).
func isAcademicLadder(cat domain.AcademicCategory) bool {
	return strings.HasPrefix(string(cat), "academic_stress_")
}
