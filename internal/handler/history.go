package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/dangerclosesec/biza/internal/model"
	"github.com/dangerclosesec/biza/internal/repository"
	"github.com/dangerclosesec/biza/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// HistoryHandler handles API requests related to stored evaluations
type HistoryHandler struct {
	historyService *service.HistoryService
}

// NewHistoryHandler creates a new history handler
func NewHistoryHandler(historyService *service.HistoryService) *HistoryHandler {
	return &HistoryHandler{
		historyService: historyService,
	}
}

type EvaluationListResponse struct {
	BaseResponse
	Evaluations []model.Evaluation `json:"evaluations"`
	Total       int64              `json:"total"`
}

type EvaluationDetailResponse struct {
	BaseResponse
	*model.Evaluation
}

// GetEvaluations handles requests to list evaluations with filtering
func (h *HistoryHandler) GetEvaluations(w http.ResponseWriter, r *http.Request) {
	params := repository.QueryParams{}
	q := r.URL.Query()

	if source := q.Get("source"); source != "" {
		params.Source = source
	}

	if successStr := q.Get("success"); successStr != "" {
		success, err := strconv.ParseBool(successStr)
		if err == nil {
			params.Success = &success
		}
	}

	if startTimeStr := q.Get("start_time"); startTimeStr != "" {
		startTime, err := time.Parse(time.RFC3339, startTimeStr)
		if err == nil {
			params.StartTime = startTime
		}
	}

	if endTimeStr := q.Get("end_time"); endTimeStr != "" {
		endTime, err := time.Parse(time.RFC3339, endTimeStr)
		if err == nil {
			params.EndTime = endTime
		}
	}

	// Pagination
	if limitStr := q.Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err == nil && limit > 0 {
			params.Limit = limit
		}
	}

	if offsetStr := q.Get("offset"); offsetStr != "" {
		offset, err := strconv.Atoi(offsetStr)
		if err == nil && offset >= 0 {
			params.Offset = offset
		}
	}

	evaluations, total, err := h.historyService.GetEvaluations(r.Context(), params)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	if evaluations == nil {
		evaluations = []model.Evaluation{}
	}

	respondWithJSON(w, http.StatusOK, EvaluationListResponse{
		BaseResponse: BaseResponse{Ok: true},
		Evaluations:  evaluations,
		Total:        total,
	})
}

// GetEvaluationByID handles requests to retrieve a specific evaluation by ID
func (h *HistoryHandler) GetEvaluationByID(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	if idStr == "" {
		respondWithError(w, http.StatusBadRequest, "Missing evaluation ID")
		return
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid evaluation ID format")
		return
	}

	evaluation, err := h.historyService.GetEvaluationByID(r.Context(), id)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, EvaluationDetailResponse{
		BaseResponse: BaseResponse{Ok: true},
		Evaluation:   evaluation,
	})
}
