package httpadapter

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/BuddhiniJ/Mindplus/internal/app/chat"
	"github.com/BuddhiniJ/Mindplus/internal/domain"
)

type Server struct {
	svc *chat.Service
}

func NewServer(svc *chat.Service) http.Handler {
	s := &Server{svc: svc}
	mux := http.NewServeMux()

	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/analyze-text", s.handleAnalyzeText)
	mux.HandleFunc("/chat/start", s.handleChatStart)
	mux.HandleFunc("/chat/message", s.handleChatMessage)
	mux.HandleFunc("/coping-strategy", s.handleCopingStrategy)

	return chainMiddlewares(mux, withLogging, withCORS, withRequestID)
}

// ─────────────────────────────────────────────
// DTOs (request/response)
// ─────────────────────────────────────────────

type analyzeTextRequest struct {
	UserID string `json:"user_id"`
	Text   string `json:"text"`
}

type analyzeTextResponse struct {
	Emotion                string `json:"emotion"`
	StressLevel            string `json:"stress_level"`
	AcademicStressCategory string `json:"academic_stress_category"`
	RiskLevel              string `json:"risk_level"`
	OverallStatus          string `json:"overall_status"`
	BotResponse            string `json:"bot_response"`
}

type chatStartResponse struct {
	SessionID string `json:"session_id"`
}

type chatMessageRequest struct {
	SessionID string `json:"session_id"`
	Text      string `json:"text"`
}

type chatMessageResponse struct {
	BotMessage             string   `json:"bot_message"`
	Emotion                string   `json:"emotion"`
	StressLevel            string   `json:"stress_level"`
	AcademicStressCategory string   `json:"academic_stress_category"`
	RiskLevel              string   `json:"risk_level"`
	OverallStatus          string   `json:"overall_status"`
	Techniques             []string `json:"techniques"`
}

type copingStrategyRequest struct {
	Emotion    string  `json:"emotion"`
	Confidence float64 `json:"confidence"`
}

type copingStrategyResponse struct {
	Emotion    string  `json:"emotion"`
	Confidence float64 `json:"confidence"`
	Severity   string  `json:"severity"`
	Strategy   string  `json:"strategy"`
}

// ─────────────────────────────────────────────
// Concrete handlers
// ─────────────────────────────────────────────

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleAnalyzeText(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}

	var req analyzeTextRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}

	out, err := s.svc.Analyze(r.Context(), chat.AnalyzeInput{
		UserID: domain.UserID(req.UserID),
		Text:   req.Text,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, analyzeTextResponse{
		Emotion:                string(out.Emotion),
		StressLevel:            string(out.Stress),
		AcademicStressCategory: string(out.Academic),
		RiskLevel:              string(out.Risk),
		OverallStatus:          string(out.Overall),
		BotResponse:            out.BotResponse,
	})
}

func (s *Server) handleChatStart(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}

	id := s.svc.StartChat(r.Context())
	writeJSON(w, http.StatusCreated, chatStartResponse{SessionID: string(id)})
}

func (s *Server) handleChatMessage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}

	var req chatMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}

	out, err := s.svc.SendMessage(r.Context(), chat.SendMessageInput{
		SessionID: domain.SessionID(req.SessionID),
		Text:      req.Text,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, chatMessageResponse{
		BotMessage:             out.BotMessage,
		Emotion:                string(out.Emotion),
		StressLevel:            string(out.Stress),
		AcademicStressCategory: string(out.Academic),
		RiskLevel:              string(out.Risk),
		OverallStatus:          string(out.Overall),
		Techniques:             out.Techniques,
	})
}

func (s *Server) handleCopingStrategy(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}

	var req copingStrategyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.Emotion) == "" {
		badRequest(w, "emotion is required")
		return
	}

	out := s.svc.CopingStrategy(r.Context(), chat.CopingStrategyInput{
		Emotion:    domain.Emotion(strings.ToLower(strings.TrimSpace(req.Emotion))),
		Confidence: req.Confidence,
	})

	writeJSON(w, http.StatusOK, copingStrategyResponse{
		Emotion:    string(out.Emotion),
		Confidence: out.Confidence,
		Severity:   string(out.Severity),
		Strategy:   out.Strategy,
	})
}

// ─────────────────────────────────────────────
// HTTP Helpers
// ─────────────────────────────────────────────

// writeError maps domain errors to status codes; anything unexpected
// becomes a generic 500 without leaking internals.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrEmptyText):
		badRequest(w, "text cannot be empty")
	case errors.Is(err, domain.ErrSessionNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "session not found"})
	default:
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, map[string]string{
		"error": msg,
	})
}

func methodNotAllowed(w http.ResponseWriter) {
	writeJSON(w, http.StatusMethodNotAllowed, map[string]string{
		"error": "method not allowed",
	})
}
