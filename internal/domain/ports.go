package domain

import (
	"context"
	"errors"
)

// Domain errors. Both are caller-correctable and surfaced directly at
// the boundary; neither is transient.
var (
	ErrEmptyText       = errors.New("text cannot be empty")
	ErrSessionNotFound = errors.New("session not found")
)

// EmotionResult is the label + confidence pair returned by the external
// emotion classifier.
type EmotionResult struct {
	Label      Emotion
	Confidence float64
}

// EmotionClassifier defines how the core obtains an emotion label for a
// piece of text. The model itself lives outside this service.
type EmotionClassifier interface {
	Classify(ctx context.Context, text string) (EmotionResult, error)
}

// SessionStore owns all session state. Sessions are volatile and live
// for the lifetime of the process.
type SessionStore interface {
	// Create allocates a new empty session and returns its id.
	// Ids are unique even under concurrent creation. Never fails.
	Create() SessionID

	// AppendExchange records one conversational exchange: the user turn
	// followed by the bot turn, as an atomic pair. Returns
	// ErrSessionNotFound for an unknown id, leaving all histories
	// unchanged.
	AppendExchange(id SessionID, userText, botText string) error

	// History returns the session's ordered turn sequence (possibly
	// empty), or ErrSessionNotFound for an unknown id.
	History(id SessionID) ([]Turn, error)

	// Len reports the number of live sessions.
	Len() int
}

// StrategySource is a read-only coping-strategy table keyed by emotion
// and severity tier.
type StrategySource interface {
	Strategy(emotion Emotion, severity SeverityTier) (string, bool)
}
