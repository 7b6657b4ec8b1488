package dialogue

import (
	"fmt"
	"strings"

	"github.com/BuddhiniJ/Mindplus/internal/app/screening"
	"github.com/BuddhiniJ/Mindplus/internal/domain"
)

// SafetyMessage is the fixed reply for high-risk input. It bypasses all
// other composition: no greeting, no reflection, no techniques beyond
// the two below.
const SafetyMessage = "I'm really glad you shared this with me. Your safety matters more than anything. " +
	"I'm an AI and I can't provide emergency help, but I care about your wellbeing. " +
	"If you feel like you might harm yourself or are in immediate danger, please contact " +
	"emergency services or a crisis hotline in your country right now. " +
	"You don't have to face this alone."

// SafetyTechniques returns the fixed technique pair attached to the
// safety message.
func SafetyTechniques() []string {
	return []string{
		"Call emergency services",
		"Contact someone you trust",
	}
}

// firstTurnGreeting opens the very first exchange of a session.
const firstTurnGreeting = "Hi, I'm MindPlus, an AI companion focused on stress, emotions, and academic pressure. " +
	"I can't replace a human professional, but I can help you explore what you're feeling and suggest coping ideas. "

// Compose builds the multi-turn therapeutic reply from the screening
// signals and the session history so far. It is intentionally
// conservative: it offers validation, coping ideas and gentle
// reflection, and defers to real-world help for any high-risk input.
// Pure: the history is a read-only snapshot.
func Compose(text string, sig screening.Signals, history []domain.Turn) domain.Reply {
	if sig.Risk == domain.RiskHigh {
		return domain.Reply{
			BotMessage: SafetyMessage,
			Techniques: SafetyTechniques(),
		}
	}

	turns := userTurns(history)
	theme := ClassifyTheme(history, text)

	greeting := ""
	if turns == 0 {
		greeting = firstTurnGreeting
	}

	reflection := reflectionSentence(theme, sig.Academic, sig.Emotion)
	tone := toneSentence(sig.Stress, sig.Academic)
	explanation := statusExplanation(sig.Overall, sig.Academic)

	cbtLine, _ := screening.DetectThinkingPattern(text)

	techniques := screening.SuggestTechniques(sig.Emotion, sig.Academic)
	techniqueLine := "Here are a couple of gentle things you could try: " +
		strings.Join(techniques, ", ") + ". "

	followUp := followUpQuestion(turns, sig.Risk, sig.Academic)

	return domain.Reply{
		BotMessage: greeting + reflection + tone + explanation + cbtLine + techniqueLine + followUp,
		Techniques: techniques,
	}
}

func userTurns(history []domain.Turn) int {
	n := 0
	for _, turn := range history {
		if turn.Role == domain.RoleUser {
			n++
		}
	}
	return n
}

func reflectionSentence(theme domain.Theme, academic domain.AcademicCategory, emotion domain.Emotion) string {
	base := "Thank you for trusting me with this. "

	var context string
	switch theme {
	case domain.ThemeStudies:
		context = "It sounds like your studies and academic workload are really weighing on you. "
	case domain.ThemeRelationships:
		context = "It sounds like the people around you and your relationships are on your mind a lot. "
	case domain.ThemeWork:
		context = "It sounds like work and responsibilities are feeling heavy right now. "
	default:
		context = "It sounds like a lot is happening inside your head and heart. "
	}

	var stressLine string
	switch academic {
	case domain.Burnout:
		stressLine = "Feeling burnt out is a sign you've been carrying too much for too long. "
	case domain.AcademicStressHigh:
		stressLine = "This level of pressure would be intense for anyone in your position. "
	case domain.AcademicStressMedium:
		stressLine = "It's understandable that you're feeling stressed about this. "
	default:
		stressLine = "Even when stress is lower, your feelings still matter. "
	}

	var emotionLine string
	switch emotion {
	case domain.EmotionSadness, domain.EmotionFear:
		emotionLine = "It's okay to feel this way, and you're not weak for feeling it. "
	case domain.EmotionAnger:
		emotionLine = "Feeling angry can be a sign that something important to you feels threatened or unfair. "
	default:
		emotionLine = "Whatever you're feeling right now is valid. "
	}

	return base + context + stressLine + emotionLine
}

func toneSentence(stress domain.StressTier, academic domain.AcademicCategory) string {
	switch {
	case stress == domain.StressHigh || academic == domain.AcademicStressHigh || academic == domain.Burnout:
		return "Right now your nervous system is trying to cope with a lot. "
	case stress == domain.StressMedium:
		return "Your reaction makes sense given what you're dealing with. "
	default:
		return "Even if things seem okay from the outside, it's valid to want support. "
	}
}

func statusExplanation(overall domain.OverallStatus, academic domain.AcademicCategory) string {
	return fmt.Sprintf(
		"From a stress-screening point of view, this looks like '%s' overall with '%s' related to your studies. "+
			"This is just an automated approximation, not a diagnosis. ",
		overall, academic,
	)
}

func followUpQuestion(turns int, risk domain.RiskTier, academic domain.AcademicCategory) string {
	if risk == domain.RiskModerate {
		return " If you can, please also consider telling a trusted person how you feel, " +
			"or reaching out to a professional or emergency service in your area."
	}

	if turns <= 1 {
		return " What part of this feels the heaviest right now?"
	}

	if academic == domain.AcademicStressHigh || academic == domain.Burnout {
		return " Of everything you've shared, which study-related pressure feels most urgent to ease, even a little?"
	}

	return " What is one small change that, if it happened, would make this even slightly easier to carry?"
}
