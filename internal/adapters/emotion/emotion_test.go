package emotion

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/BuddhiniJ/Mindplus/internal/domain"
)

func TestKeywordClassifier(t *testing.T) {
	tests := []struct {
		text string
		want domain.Emotion
	}{
		{"I'm so worried about tomorrow", domain.EmotionFear},
		{"I've been crying all day", domain.EmotionSadness},
		{"this is so unfair, I'm furious", domain.EmotionAnger},
		{"I'm completely fed up with this", domain.EmotionDisgust},
		{"I can't believe this happened", domain.EmotionSurprise},
		{"feeling grateful and happy today", domain.EmotionJoy},
		{"the weather is fine", domain.EmotionNeutral},
	}

	c := NewKeywordClassifier()
	for _, tt := range tests {
		got, err := c.Classify(context.Background(), tt.text)
		if err != nil {
			t.Fatalf("Classify(%q) failed: %v", tt.text, err)
		}
		if got.Label != tt.want {
			t.Errorf("Classify(%q) = %s, want %s", tt.text, got.Label, tt.want)
		}
		if got.Confidence <= 0 || got.Confidence > 1 {
			t.Errorf("Classify(%q) confidence out of range: %f", tt.text, got.Confidence)
		}
	}
}

func TestKeywordClassifierIsDeterministic(t *testing.T) {
	c := NewKeywordClassifier()

	first, _ := c.Classify(context.Background(), "worried and sad about exams")
	second, _ := c.Classify(context.Background(), "worried and sad about exams")
	if first != second {
		t.Fatalf("classifier not deterministic: %+v vs %+v", first, second)
	}
	// Fear group is checked before sadness, so "worried" wins.
	if first.Label != domain.EmotionFear {
		t.Fatalf("expected fear to win ordering, got %s", first.Label)
	}
}

func TestHTTPClient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/predict" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var req struct {
			Text string `json:"text"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decoding request: %v", err)
		}
		if req.Text == "" {
			t.Error("expected text in request")
		}

		_ = json.NewEncoder(w).Encode(map[string]any{
			"emotion":    "Sadness",
			"confidence": 0.87,
		})
	}))
	defer srv.Close()

	client, err := NewClient(srv.URL)
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}

	got, err := client.Classify(context.Background(), "I miss my family")
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}
	if got.Label != domain.EmotionSadness {
		t.Fatalf("expected sadness (lowercased), got %s", got.Label)
	}
	if got.Confidence != 0.87 {
		t.Fatalf("expected confidence 0.87, got %f", got.Confidence)
	}
}

func TestHTTPClientNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model loading", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client, err := NewClient(srv.URL)
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}

	if _, err := client.Classify(context.Background(), "hello"); err == nil {
		t.Fatal("expected error for non-200 response")
	}
}

func TestNewClientRequiresBaseURL(t *testing.T) {
	if _, err := NewClient(""); err == nil {
		t.Fatal("expected error for empty base URL")
	}
}
