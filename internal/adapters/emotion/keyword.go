package emotion

import (
	"context"
	"strings"

	"github.com/BuddhiniJ/Mindplus/internal/domain"
)

// KeywordClassifier is an offline stand-in for the transformer service:
// deterministic keyword spotting over the same label vocabulary. Used
// in dev mode and in tests.
type KeywordClassifier struct{}

func NewKeywordClassifier() *KeywordClassifier {
	return &KeywordClassifier{}
}

type emotionGroup struct {
	label    domain.Emotion
	keywords []string
}

// Groups are checked in order; the first hit wins.
var emotionGroups = []emotionGroup{
	{domain.EmotionFear, []string{"scared", "afraid", "terrified", "anxious", "worried", "nervous", "panic"}},
	{domain.EmotionSadness, []string{"sad", "depressed", "miserable", "crying", "cry", "lonely", "miss"}},
	{domain.EmotionAnger, []string{"angry", "furious", "mad at", "annoyed", "frustrated", "unfair"}},
	{domain.EmotionDisgust, []string{"disgust", "gross", "sick of", "fed up"}},
	{domain.EmotionSurprise, []string{"surprised", "shocked", "can't believe", "cant believe", "unexpected"}},
	{domain.EmotionJoy, []string{"happy", "glad", "excited", "great", "wonderful", "grateful"}},
}

const (
	matchedConfidence = 0.65
	neutralConfidence = 0.35
)

func (k *KeywordClassifier) Classify(_ context.Context, text string) (domain.EmotionResult, error) {
	t := strings.ToLower(text)

	for _, g := range emotionGroups {
		for _, w := range g.keywords {
			if strings.Contains(t, w) {
				return domain.EmotionResult{Label: g.label, Confidence: matchedConfidence}, nil
			}
		}
	}

	return domain.EmotionResult{Label: domain.EmotionNeutral, Confidence: neutralConfidence}, nil
}
