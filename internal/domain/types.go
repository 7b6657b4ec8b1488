package domain

type SessionID string
type UserID string

// Emotion is the label produced by the external emotion classifier.
// The rule engine only branches on the labels below; any other label
// falls through the "else" branches of every detector, which is
// defined behavior.
type Emotion string

const (
	EmotionJoy      Emotion = "joy"
	EmotionSadness  Emotion = "sadness"
	EmotionFear     Emotion = "fear"
	EmotionAnger    Emotion = "anger"
	EmotionSurprise Emotion = "surprise"
	EmotionDisgust  Emotion = "disgust"
	EmotionNeutral  Emotion = "neutral"
)

// StressTier is the coarse stress bucket derived from the emotion label.
type StressTier string

const (
	StressLow    StressTier = "low"
	StressMedium StressTier = "medium"
	StressHigh   StressTier = "high"
)

// AcademicCategory describes study-related pressure, with burnout as a
// distinct tag outside the academic_stress_* ladder.
type AcademicCategory string

const (
	AcademicStressLow    AcademicCategory = "academic_stress_low"
	AcademicStressMedium AcademicCategory = "academic_stress_medium"
	AcademicStressHigh   AcademicCategory = "academic_stress_high"
	Burnout              AcademicCategory = "burnout"
)

// RiskTier is the safety-screening bucket based on self-harm language.
type RiskTier string

const (
	RiskSafe     RiskTier = "safe"
	RiskModerate RiskTier = "moderate_risk"
	RiskHigh     RiskTier = "high_risk"
)

// OverallStatus is the single fused severity label driving reply tone.
type OverallStatus string

const (
	StatusCritical       OverallStatus = "critical"
	StatusHighStress     OverallStatus = "high_stress"
	StatusModerateStress OverallStatus = "moderate_stress"
	StatusLowStress      OverallStatus = "low_stress"
	StatusNormal         OverallStatus = "normal"
)

// Theme is the inferred conversation topic, used only for reflective
// phrasing. It never affects status or risk.
type Theme string

const (
	ThemeStudies       Theme = "studies"
	ThemeRelationships Theme = "relationships"
	ThemeWork          Theme = "work"
	ThemeGeneral       Theme = "general"
)

// SeverityTier bands the classifier confidence for the coping-strategy
// lookup.
type SeverityTier string

const (
	SeverityLow    SeverityTier = "low"
	SeverityMedium SeverityTier = "medium"
	SeverityHigh   SeverityTier = "high"
)

// SeverityFromConfidence maps a classifier confidence in [0,1] to a
// severity band.
func SeverityFromConfidence(confidence float64) SeverityTier {
	switch {
	case confidence >= 0.75:
		return SeverityHigh
	case confidence >= 0.45:
		return SeverityMedium
	default:
		return SeverityLow
	}
}

type Role string

const (
	RoleUser Role = "user"
	RoleBot  Role = "bot"
)

// Turn is one message (user or bot) within a session's ordered history.
type Turn struct {
	Role    Role
	Message string
}

// Reply is the composed bot message plus the techniques suggested in it.
type Reply struct {
	BotMessage string
	Techniques []string
}
