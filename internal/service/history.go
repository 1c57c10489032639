package service

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/dangerclosesec/biza/analysis"
	"github.com/dangerclosesec/biza/internal/audit"
	"github.com/dangerclosesec/biza/internal/model"
	"github.com/dangerclosesec/biza/internal/repository"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

// Ensure HistoryService implements the audit.Recorder interface
var _ audit.Recorder = (*HistoryService)(nil)

// HistoryService stores and queries past evaluations
type HistoryService struct {
	repo repository.EvaluationRepositoryIface
}

// NewHistoryService creates a new HistoryService
func NewHistoryService(repo repository.EvaluationRepositoryIface) *HistoryService {
	return &HistoryService{
		repo: repo,
	}
}

// RecordEvaluation stores one evaluation and returns its ID
func (s *HistoryService) RecordEvaluation(
	ctx context.Context,
	source string,
	result analysis.EvaluationResult,
	req *http.Request,
) (string, error) {
	evaluation := &model.Evaluation{
		ID:          uuid.New(),
		Source:      source,
		Success:     result.Succeeded(),
		Diagnostics: model.Diagnostics(result.Diagnostics),
		Timestamp:   time.Now().UTC(),
	}

	if result.Succeeded() {
		evaluation.Value = fmt.Sprint(result.Value)
		evaluation.Type = result.Type.String()
	}

	if req != nil {
		evaluation.RequestID = middleware.GetReqID(ctx)
		evaluation.ClientIP = req.RemoteAddr
		evaluation.UserAgent = req.UserAgent()
	}

	if err := s.repo.Create(ctx, evaluation); err != nil {
		return "", err
	}

	return evaluation.ID.String(), nil
}

// GetEvaluations retrieves evaluations based on query parameters
func (s *HistoryService) GetEvaluations(
	ctx context.Context,
	params repository.QueryParams,
) ([]model.Evaluation, int64, error) {
	return s.repo.Query(ctx, params)
}

// GetEvaluationByID retrieves an evaluation by ID
func (s *HistoryService) GetEvaluationByID(
	ctx context.Context,
	id uuid.UUID,
) (*model.Evaluation, error) {
	evaluation, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get evaluation by ID: %w", err)
	}

	return evaluation, nil
}
