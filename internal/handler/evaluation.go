package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dangerclosesec/biza/internal/domain"
	"github.com/dangerclosesec/biza/internal/service"
	chmw "github.com/go-chi/chi/v5/middleware"
)

// EvaluationHandler serves the lex and evaluate endpoints
type EvaluationHandler struct {
	evaluationService *service.EvaluationService
	maxBodyBytes      int64
}

// NewEvaluationHandler creates a new evaluation handler. Request bodies are
// capped at the largest JSON encoding of a source the service accepts.
func NewEvaluationHandler(evaluationService *service.EvaluationService) *EvaluationHandler {
	return &EvaluationHandler{
		evaluationService: evaluationService,
		maxBodyBytes:      maxBodyBytes(evaluationService.MaxSourceLength()),
	}
}

// maxBodyBytes allows every source byte to be escaped as \u00XX plus room for
// the surrounding object
func maxBodyBytes(maxSourceLength int) int64 {
	return int64(maxSourceLength)*6 + 1024
}

type LexResponse struct {
	BaseResponse
	*service.LexOutput
}

type EvaluateResponse struct {
	BaseResponse
	*service.EvaluateOutput
}

// LexHandler returns the token stream for the posted source
func (h *EvaluationHandler) LexHandler(w http.ResponseWriter, r *http.Request) {
	input, ok := h.decodeSource(w, r)
	if !ok {
		return
	}

	output, err := h.evaluationService.Lex(r.Context(), input)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, LexResponse{
		BaseResponse: BaseResponse{Ok: len(output.Diagnostics) == 0},
		LexOutput:    output,
	})
}

// EvaluateHandler evaluates the posted source. Diagnostics are part of a
// successful response; ok is false when there are any.
func (h *EvaluationHandler) EvaluateHandler(w http.ResponseWriter, r *http.Request) {
	input, ok := h.decodeSource(w, r)
	if !ok {
		return
	}

	output, err := h.evaluationService.Evaluate(r.Context(), input, r)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, EvaluateResponse{
		BaseResponse:   BaseResponse{Ok: len(output.Diagnostics) == 0},
		EvaluateOutput: output,
	})
}

func (h *EvaluationHandler) decodeSource(w http.ResponseWriter, r *http.Request) (service.SourceInput, bool) {
	body := http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	defer body.Close()

	var input service.SourceInput
	if err := json.NewDecoder(body).Decode(&input); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondWithError(w, http.StatusRequestEntityTooLarge, "Source is too long")
			return input, false
		}
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return input, false
	}
	return input, true
}

func respondWithServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		respondWithError(w, http.StatusBadRequest, "Source is required")
	case errors.Is(err, domain.ErrSourceTooLong):
		respondWithError(w, http.StatusRequestEntityTooLarge, "Source is too long")
	case errors.Is(err, domain.ErrNotFound):
		respondWithError(w, http.StatusNotFound, "Not found")
	default:
		slog.ErrorContext(r.Context(), "Request failed", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
