// Package server exposes the answer and translate repositories over a small
// JSON API. Failures arrive as message-only results from the repository
// layer, so handlers never see raw errors from the providers.
package server

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cj5427533/BilingualBuddy/internal/answer"
	"github.com/cj5427533/BilingualBuddy/internal/session"
)

type Handler struct {
	answers      session.AnswerRepository
	translations session.TranslateRepository
}

func NewHandler(answers session.AnswerRepository, translations session.TranslateRepository) *Handler {
	return &Handler{
		answers:      answers,
		translations: translations,
	}
}

// NewMux registers all routes on a fresh mux.
func (h *Handler) NewMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/answers", h.handleAnswer)
	mux.HandleFunc("POST /v1/translations", h.handleTranslate)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
	return mux
}

type answerRequest struct {
	Question string `json:"question"`
}

type answerResponse struct {
	Answer answer.Answer `json:"answer"`
}

type translateRequest struct {
	Text   string `json:"text"`
	Source string `json:"source"`
	Target string `json:"target"`
}

type translateResponse struct {
	TranslatedText string `json:"translated_text"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) handleAnswer(w http.ResponseWriter, r *http.Request) {
	var req answerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	res := h.answers.GetAnswer(r.Context(), req.Question)
	if message, failed := res.Message(); failed {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: message})
		return
	}
	ans, _ := res.Value()
	writeJSON(w, http.StatusOK, answerResponse{Answer: ans})
}

func (h *Handler) handleTranslate(w http.ResponseWriter, r *http.Request) {
	var req translateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	res := h.translations.Translate(r.Context(), req.Text, req.Source, req.Target)
	if message, failed := res.Message(); failed {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: message})
		return
	}
	text, _ := res.Value()
	writeJSON(w, http.StatusOK, translateResponse{TranslatedText: text})
}

func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Default().Error("failed to encode response", "error", err)
	}
}
