package screening

import "github.com/BuddhiniJ/Mindplus/internal/domain"

// statusResponses are the single-shot supportive messages used by the
// stateless analyze capability.
var statusResponses = map[domain.OverallStatus]string{
	domain.StatusCritical: "I'm really sorry you're feeling this way. Your feelings matter, " +
		"and you're not alone. If you're in immediate danger or feel you " +
		"might harm yourself, please contact emergency services or a suicide hotline right now.",
	domain.StatusHighStress: "It sounds like you're under a lot of pressure right now. " +
		"Thank you for opening up — that takes courage. " +
		"Let’s take one step at a time. What feels hardest for you right now?",
	domain.StatusModerateStress: "I hear that things are tough for you. " +
		"It's okay to feel overwhelmed. I'm here to support you. " +
		"What part of this feels the most stressful?",
	domain.StatusLowStress: "It seems like you're dealing with some stress, but you're holding up. " +
		"How can I help you with what you're experiencing?",
}

const defaultResponse = "Thank you for sharing. How can I support you today?"

// StatusResponse maps an overall status to its fixed supportive message.
func StatusResponse(status domain.OverallStatus) string {
	if msg, ok := statusResponses[status]; ok {
		return msg
	}
	return defaultResponse
}
