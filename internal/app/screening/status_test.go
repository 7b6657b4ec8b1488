package screening

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BuddhiniJ/Mindplus/internal/domain"
)

func TestOverallStatusDecisionList(t *testing.T) {
	tests := []struct {
		name string
		sig  Signals
		want domain.OverallStatus
	}{
		{
			name: "high risk always critical",
			sig:  Signals{Emotion: domain.EmotionJoy, Stress: domain.StressLow, Academic: domain.AcademicStressLow, Risk: domain.RiskHigh},
			want: domain.StatusCritical,
		},
		{
			name: "moderate risk outranks academic",
			sig:  Signals{Emotion: domain.EmotionNeutral, Stress: domain.StressLow, Academic: domain.AcademicStressLow, Risk: domain.RiskModerate},
			want: domain.StatusHighStress,
		},
		{
			name: "academic high",
			sig:  Signals{Emotion: domain.EmotionNeutral, Stress: domain.StressLow, Academic: domain.AcademicStressHigh, Risk: domain.RiskSafe},
			want: domain.StatusHighStress,
		},
		{
			name: "burnout",
			sig:  Signals{Emotion: domain.EmotionJoy, Stress: domain.StressLow, Academic: domain.Burnout, Risk: domain.RiskSafe},
			want: domain.StatusHighStress,
		},
		{
			name: "academic medium",
			sig:  Signals{Emotion: domain.EmotionNeutral, Stress: domain.StressLow, Academic: domain.AcademicStressMedium, Risk: domain.RiskSafe},
			want: domain.StatusModerateStress,
		},
		{
			name: "stress medium",
			sig:  Signals{Emotion: domain.EmotionSurprise, Stress: domain.StressMedium, Academic: domain.AcademicStressLow, Risk: domain.RiskSafe},
			want: domain.StatusModerateStress,
		},
		{
			name: "low stress and low academic",
			sig:  Signals{Emotion: domain.EmotionNeutral, Stress: domain.StressLow, Academic: domain.AcademicStressLow, Risk: domain.RiskSafe},
			want: domain.StatusLowStress,
		},
		{
			name: "high stress with low academic falls through to normal",
			sig:  Signals{Emotion: domain.EmotionDisgust, Stress: domain.StressHigh, Academic: domain.AcademicStressLow, Risk: domain.RiskSafe},
			want: domain.StatusNormal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OverallStatus(tt.sig))
		})
	}
}

// The fusion must be a pure, total function of the signal tuple: every
// combination yields exactly one status, stable across calls.
func TestOverallStatusTotalAndPure(t *testing.T) {
	stresses := []domain.StressTier{domain.StressLow, domain.StressMedium, domain.StressHigh}
	academics := []domain.AcademicCategory{
		domain.AcademicStressLow, domain.AcademicStressMedium, domain.AcademicStressHigh, domain.Burnout,
	}
	risks := []domain.RiskTier{domain.RiskSafe, domain.RiskModerate, domain.RiskHigh}

	valid := map[domain.OverallStatus]bool{
		domain.StatusCritical:       true,
		domain.StatusHighStress:     true,
		domain.StatusModerateStress: true,
		domain.StatusLowStress:      true,
		domain.StatusNormal:         true,
	}

	for _, st := range stresses {
		for _, ac := range academics {
			for _, rk := range risks {
				sig := Signals{Emotion: domain.EmotionNeutral, Stress: st, Academic: ac, Risk: rk}
				first := OverallStatus(sig)
				require.True(t, valid[first], "unexpected status %q for %+v", first, sig)
				require.Equal(t, first, OverallStatus(sig), "fusion not stable for %+v", sig)
			}
		}
	}
}

func TestScreenKeywordFreeNeutralText(t *testing.T) {
	sig := Screen("just wanted to say hello", domain.EmotionNeutral)

	assert.Equal(t, domain.AcademicStressLow, sig.Academic)
	assert.Equal(t, domain.RiskSafe, sig.Risk)
	assert.Equal(t, domain.StressLow, sig.Stress)
	assert.Equal(t, domain.StatusLowStress, sig.Overall)
}

func TestSuggestTechniques(t *testing.T) {
	t.Run("fear plus academic caps at four", func(t *testing.T) {
		got := SuggestTechniques(domain.EmotionFear, domain.AcademicStressHigh)
		assert.Equal(t, []string{
			"5-4-3-2-1 grounding",
			"Box breathing (4-4-4-4)",
			"Task chunking (25/5 Pomodoro)",
			"Two-minute small start",
		}, got)
	})

	t.Run("sadness with burnout", func(t *testing.T) {
		got := SuggestTechniques(domain.EmotionSadness, domain.Burnout)
		assert.Equal(t, []string{
			"Self-compassion check-in",
			"Small activation task",
			"5-minute micro-break",
			"Energy audit",
		}, got)
	})

	t.Run("nothing matched falls back", func(t *testing.T) {
		got := SuggestTechniques(domain.EmotionNeutral, domain.Burnout)
		assert.Equal(t, []string{"5-minute micro-break", "Energy audit"}, got)

		got = SuggestTechniques(domain.EmotionNeutral, domain.AcademicCategory("unknown"))
		assert.Equal(t, []string{"Mindful breathing"}, got)
	})

	t.Run("bounded and unique for every pair", func(t *testing.T) {
		emotions := []domain.Emotion{
			domain.EmotionJoy, domain.EmotionSadness, domain.EmotionFear, domain.EmotionAnger,
			domain.EmotionSurprise, domain.EmotionDisgust, domain.EmotionNeutral,
		}
		academics := []domain.AcademicCategory{
			domain.AcademicStressLow, domain.AcademicStressMedium, domain.AcademicStressHigh, domain.Burnout,
		}

		for _, e := range emotions {
			for _, ac := range academics {
				got := SuggestTechniques(e, ac)
				require.NotEmpty(t, got, "emotion=%s academic=%s", e, ac)
				require.LessOrEqual(t, len(got), 4, "emotion=%s academic=%s", e, ac)

				seen := map[string]bool{}
				for _, tech := range got {
					require.False(t, seen[tech], "duplicate %q for emotion=%s academic=%s", tech, e, ac)
					seen[tech] = true
				}
			}
		}
	})
}

func TestStatusResponse(t *testing.T) {
	assert.Contains(t, StatusResponse(domain.StatusCritical), "emergency services")
	assert.Contains(t, StatusResponse(domain.StatusHighStress), "a lot of pressure")
	assert.Contains(t, StatusResponse(domain.StatusModerateStress), "the most stressful")
	assert.Contains(t, StatusResponse(domain.StatusLowStress), "holding up")
	assert.Equal(t, "Thank you for sharing. How can I support you today?", StatusResponse(domain.StatusNormal))
	assert.Equal(t, StatusResponse(domain.StatusNormal), StatusResponse(domain.OverallStatus("unknown")))
}
