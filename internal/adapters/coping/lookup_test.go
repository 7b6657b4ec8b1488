package coping

import (
	"testing"

	"github.com/BuddhiniJ/Mindplus/internal/domain"
)

func TestLookupCoversEveryEmotionAndSeverity(t *testing.T) {
	lookup, err := NewLookup()
	if err != nil {
		t.Fatalf("NewLookup failed: %v", err)
	}

	emotions := []domain.Emotion{
		domain.EmotionJoy, domain.EmotionSadness, domain.EmotionFear, domain.EmotionAnger,
		domain.EmotionSurprise, domain.EmotionDisgust, domain.EmotionNeutral,
	}
	severities := []domain.SeverityTier{domain.SeverityLow, domain.SeverityMedium, domain.SeverityHigh}

	for _, e := range emotions {
		for _, s := range severities {
			text, ok := lookup.Strategy(e, s)
			if !ok || text == "" {
				t.Fatalf("missing strategy for %s/%s", e, s)
			}
		}
	}
}

func TestLookupUnknownKeys(t *testing.T) {
	lookup, err := NewLookup()
	if err != nil {
		t.Fatalf("NewLookup failed: %v", err)
	}

	if _, ok := lookup.Strategy(domain.Emotion("boredom"), domain.SeverityLow); ok {
		t.Fatal("expected no strategy for unknown emotion")
	}
	if _, ok := lookup.Strategy(domain.EmotionJoy, domain.SeverityTier("extreme")); ok {
		t.Fatal("expected no strategy for unknown severity")
	}
}

func TestLookupIsCaseInsensitive(t *testing.T) {
	lookup, err := NewLookup()
	if err != nil {
		t.Fatalf("NewLookup failed: %v", err)
	}

	lower, _ := lookup.Strategy(domain.EmotionFear, domain.SeverityHigh)
	upper, ok := lookup.Strategy(domain.Emotion("FEAR"), domain.SeverityTier("High"))
	if !ok || upper != lower {
		t.Fatalf("case-insensitive lookup mismatch: %q vs %q", lower, upper)
	}
}
