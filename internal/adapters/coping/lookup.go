package coping

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/BuddhiniJ/Mindplus/internal/domain"
)

//go:embed strategies.json
var strategiesJSON []byte

// Lookup is a read-only coping-strategy table keyed by emotion and
// severity tier. The table ships with the binary.
type Lookup struct {
	strategies map[string]map[string]string
}

// NewLookup parses the embedded table. Keys are normalized to lowercase
// so lookups are case-insensitive.
func NewLookup() (*Lookup, error) {
	var raw map[string]map[string]string
	if err := json.Unmarshal(strategiesJSON, &raw); err != nil {
		return nil, fmt.Errorf("parsing coping strategy table: %w", err)
	}

	strategies := make(map[string]map[string]string, len(raw))
	for emotion, bySeverity := range raw {
		inner := make(map[string]string, len(bySeverity))
		for severity, text := range bySeverity {
			inner[strings.ToLower(severity)] = text
		}
		strategies[strings.ToLower(emotion)] = inner
	}

	return &Lookup{strategies: strategies}, nil
}

// Strategy implements domain.StrategySource.
func (l *Lookup) Strategy(emotion domain.Emotion, severity domain.SeverityTier) (string, bool) {
	bySeverity, ok := l.strategies[strings.ToLower(string(emotion))]
	if !ok {
		return "", false
	}
	text, ok := bySeverity[strings.ToLower(string(severity))]
	return text, ok
}
