package chat

import (
	"context"
	"fmt"
	"strings"

	"github.com/BuddhiniJ/Mindplus/internal/app/dialogue"
	"github.com/BuddhiniJ/Mindplus/internal/app/screening"
	"github.com/BuddhiniJ/Mindplus/internal/domain"
	"github.com/BuddhiniJ/Mindplus/internal/observability"
)

// Service threads the emotion classifier, the rule engine and the
// session store together. The engine itself is pure; all session state
// lives in the injected store.
type Service struct {
	classifier domain.EmotionClassifier
	sessions   domain.SessionStore
	strategies domain.StrategySource
}

func NewService(
	classifier domain.EmotionClassifier,
	sessions domain.SessionStore,
	strategies domain.StrategySource,
) *Service {
	return &Service{
		classifier: classifier,
		sessions:   sessions,
		strategies: strategies,
	}
}

type AnalyzeInput struct {
	UserID domain.UserID
	Text   string
}

type AnalyzeOutput struct {
	Emotion     domain.Emotion
	Stress      domain.StressTier
	Academic    domain.AcademicCategory
	Risk        domain.RiskTier
	Overall     domain.OverallStatus
	BotResponse string
}

// Analyze runs the stateless single-shot screening: classify, fuse,
// respond. No session is involved.
func (s *Service) Analyze(ctx context.Context, in AnalyzeInput) (*AnalyzeOutput, error) {
	text := strings.TrimSpace(in.Text)
	if text == "" {
		return nil, domain.ErrEmptyText
	}

	// user_id is accepted for future extension but not used yet.
	log := observability.LoggerFromContext(ctx).With("user_id", in.UserID)

	result, err := s.classifier.Classify(ctx, text)
	if err != nil {
		log.Error("emotion classification failed", "error", err)
		return nil, fmt.Errorf("classifying emotion: %w", err)
	}

	sig := screening.Screen(text, result.Label)

	log.Info("analysis completed",
		"emotion", sig.Emotion,
		"overall_status", sig.Overall,
		"risk_level", sig.Risk,
	)

	return &AnalyzeOutput{
		Emotion:     sig.Emotion,
		Stress:      sig.Stress,
		Academic:    sig.Academic,
		Risk:        sig.Risk,
		Overall:     sig.Overall,
		BotResponse: screening.StatusResponse(sig.Overall),
	}, nil
}

// StartChat opens a fresh empty session. Never fails.
func (s *Service) StartChat(ctx context.Context) domain.SessionID {
	id := s.sessions.Create()

	observability.LoggerFromContext(ctx).Info("chat session started",
		"session_id", id,
		"live_sessions", s.sessions.Len(),
	)
	return id
}

type SendMessageInput struct {
	SessionID domain.SessionID
	Text      string
}

type SendMessageOutput struct {
	BotMessage string
	Emotion    domain.Emotion
	Stress     domain.StressTier
	Academic   domain.AcademicCategory
	Risk       domain.RiskTier
	Overall    domain.OverallStatus
	Techniques []string
}

// SendMessage runs one conversational exchange: screen the text, compose
// a reply against the session history, then append both turns as an
// atomic pair. The reply is composed from the history *before* this
// exchange, so the greeting only appears when no user turn exists yet.
func (s *Service) SendMessage(ctx context.Context, in SendMessageInput) (*SendMessageOutput, error) {
	history, err := s.sessions.History(in.SessionID)
	if err != nil {
		return nil, err
	}

	text := strings.TrimSpace(in.Text)
	if text == "" {
		return nil, domain.ErrEmptyText
	}

	log := observability.LoggerFromContext(ctx).With("session_id", in.SessionID)

	result, err := s.classifier.Classify(ctx, text)
	if err != nil {
		log.Error("emotion classification failed", "error", err)
		return nil, fmt.Errorf("classifying emotion: %w", err)
	}

	sig := screening.Screen(text, result.Label)
	reply := dialogue.Compose(text, sig, history)

	if err := s.sessions.AppendExchange(in.SessionID, text, reply.BotMessage); err != nil {
		log.Error("failed to append exchange", "error", err)
		return nil, err
	}

	log.Info("chat message completed",
		"emotion", sig.Emotion,
		"overall_status", sig.Overall,
		"risk_level", sig.Risk,
	)

	return &SendMessageOutput{
		BotMessage: reply.BotMessage,
		Emotion:    sig.Emotion,
		Stress:     sig.Stress,
		Academic:   sig.Academic,
		Risk:       sig.Risk,
		Overall:    sig.Overall,
		Techniques: reply.Techniques,
	}, nil
}

type CopingStrategyInput struct {
	Emotion    domain.Emotion
	Confidence float64
}

type CopingStrategyOutput struct {
	Emotion    domain.Emotion
	Confidence float64
	Severity   domain.SeverityTier
	Strategy   string
}

// CopingStrategy resolves a single coping strategy from the static
// table, banding the classifier confidence into a severity tier. An
// emotion without a table entry yields an empty strategy, not an error.
func (s *Service) CopingStrategy(ctx context.Context, in CopingStrategyInput) *CopingStrategyOutput {
	severity := domain.SeverityFromConfidence(in.Confidence)

	strategy, ok := s.strategies.Strategy(in.Emotion, severity)
	if !ok {
		observability.LoggerFromContext(ctx).Info("no coping strategy found",
			"emotion", in.Emotion,
			"severity", severity,
		)
	}

	return &CopingStrategyOutput{
		Emotion:    in.Emotion,
		Confidence: in.Confidence,
		Severity:   severity,
		Strategy:   strategy,
	}
}
