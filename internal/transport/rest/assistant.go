package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/vrusch/ModSkl/internal/domain"
	"github.com/vrusch/ModSkl/internal/service/assistant"
)

// assistantService defines the minimal interface needed by AssistantHandler.
type assistantService interface {
	Enabled() bool
	RecognizeLabel(ctx context.Context, input assistant.RecognizeInput) (*assistant.LabelGuess, error)
	Advise(ctx context.Context, input assistant.AdviseInput) (string, error)
}

// inventoryLister loads the caller's records so chat advice can reference
// what they actually own.
type inventoryLister interface {
	Export(ctx context.Context) ([]domain.Paint, error)
}

// AssistantHandler serves the vision and chat endpoints.
type AssistantHandler struct {
	svc    assistantService
	paints inventoryLister
	log    *slog.Logger
}

// NewAssistantHandler creates an AssistantHandler.
func NewAssistantHandler(svc assistantService, paints inventoryLister, logger *slog.Logger) *AssistantHandler {
	return &AssistantHandler{svc: svc, paints: paints, log: logger.With("handler", "assistant")}
}

type recognizeRequest struct {
	Image     string `json:"image"`
	MediaType string `json:"mediaType"`
}

type recognizeResponse struct {
	Found bool       `json:"found"`
	Guess *guessBody `json:"guess,omitempty"`
}

type guessBody struct {
	Brand string `json:"brand"`
	Code  string `json:"code"`
	Name  string `json:"name,omitempty"`
	Type  string `json:"type,omitempty"`
	Hex   string `json:"hex,omitempty"`
}

// Recognize handles POST /api/v1/assistant/vision.
func (h *AssistantHandler) Recognize(w http.ResponseWriter, r *http.Request) {
	var req recognizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	guess, err := h.svc.RecognizeLabel(r.Context(), assistant.RecognizeInput{
		ImageBase64: req.Image,
		MediaType:   req.MediaType,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := recognizeResponse{Found: guess != nil}
	if guess != nil {
		resp.Guess = &guessBody{
			Brand: guess.Brand,
			Code:  guess.Code,
			Name:  guess.Name,
			Type:  guess.Type,
			Hex:   guess.Hex,
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

type chatRequest struct {
	Question string `json:"question"`
}

type chatResponse struct {
	Answer string `json:"answer"`
}

// Chat handles POST /api/v1/assistant/chat. The caller's inventory is
// loaded so the answer can take owned paints into account.
func (h *AssistantHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	owned, err := h.paints.Export(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	answer, err := h.svc.Advise(r.Context(), assistant.AdviseInput{
		Question: req.Question,
		Owned:    owned,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, chatResponse{Answer: answer})
}
