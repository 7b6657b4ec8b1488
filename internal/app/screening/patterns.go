package screening

import "strings"

// thinkingPattern pairs a keyword group with the reframe sentence it
// triggers. Groups are evaluated in order; the first hit wins.
type thinkingPattern struct {
	name    string
	phrases []string
	reframe string
}

var thinkingPatterns = []thinkingPattern{
	{
		name: "self-criticism",
		phrases: []string{
			"i'm useless", "i am useless",
			"i'm stupid", "i am stupid",
			"i'm a failure", "i am a failure",
		},
		reframe: "I also notice some very harsh thoughts about yourself. In CBT we might gently question " +
			"those thoughts and ask: if a close friend were in your situation, would you judge them as harshly? ",
	},
	{
		name:    "all-or-nothing",
		phrases: []string{"always", "never", "completely fail", "ruined everything"},
		reframe: "It sounds like your mind is pulling things into all-or-nothing terms. A small CBT step is to look for " +
			"examples that don't fully fit the 'always/never' story, even if they feel small. ",
	},
	{
		name:    "catastrophizing",
		phrases: []string{"disaster", "ruined", "no way out", "everything will go wrong"},
		reframe: "Some of what you wrote sounds like your mind is jumping to the worst-case scenario. " +
			"A CBT-style question here is: what is the most realistic outcome, and what evidence supports it? ",
	},
	{
		name:    "mind-reading",
		phrases: []string{"everyone thinks", "they all think", "people will think"},
		reframe: "You mentioned worrying about what others think. In CBT this is sometimes called 'mind-reading'— " +
			"assuming we know others' thoughts without clear evidence. It can help to pause and ask what you actually know for sure. ",
	},
}

// DetectThinkingPattern looks for common unhelpful thinking patterns and
// returns a gentle reframe sentence when one is found. This is a
// conversational aid, not a clinical tool.
func DetectThinkingPattern(text string) (string, bool) {
	t := strings.ToLower(text)

	for _, p := range thinkingPatterns {
		if containsAny(t, p.phrases) {
			return p.reframe, true
		}
	}
	return "", false
}
