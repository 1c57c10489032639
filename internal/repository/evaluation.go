// internal/repository/evaluation.go
package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/dangerclosesec/biza/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EvaluationRepositoryIface interface {
	Create(ctx context.Context, evaluation *model.Evaluation) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Evaluation, error)
	Query(ctx context.Context, params QueryParams) ([]model.Evaluation, int64, error)
}

// EvaluationRepository handles database operations for stored evaluations
type EvaluationRepository struct {
	db *gorm.DB
}

var _ EvaluationRepositoryIface = (*EvaluationRepository)(nil)

// NewEvaluationRepository creates a new EvaluationRepository
func NewEvaluationRepository(db *gorm.DB) *EvaluationRepository {
	return &EvaluationRepository{
		db: db,
	}
}

// Create inserts a new evaluation
func (r *EvaluationRepository) Create(ctx context.Context, evaluation *model.Evaluation) error {
	if evaluation.ID == uuid.Nil {
		evaluation.ID = uuid.New()
	}

	if evaluation.Timestamp.IsZero() {
		evaluation.Timestamp = time.Now().UTC()
	}

	result := r.db.WithContext(ctx).Create(evaluation)
	if result.Error != nil {
		return fmt.Errorf("failed to create evaluation: %w", result.Error)
	}

	return nil
}

// FindByID retrieves an evaluation by its ID
func (r *EvaluationRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Evaluation, error) {
	var evaluation model.Evaluation
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&evaluation)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find evaluation: %w", translateError(result.Error))
	}

	return &evaluation, nil
}

// QueryParams holds parameters for querying evaluations
type QueryParams struct {
	Success   *bool
	Source    string
	StartTime time.Time
	EndTime   time.Time
	Limit     int
	Offset    int
}

// DefaultQueryLimit caps Query when no limit is given
const DefaultQueryLimit = 100

// Query retrieves evaluations matching params, newest first, plus the total
// number of matches before pagination
func (r *EvaluationRepository) Query(ctx context.Context, params QueryParams) ([]model.Evaluation, int64, error) {
	var evaluations []model.Evaluation
	var count int64

	query := r.db.WithContext(ctx).Model(&model.Evaluation{})

	if params.Success != nil {
		query = query.Where("success = ?", *params.Success)
	}
	if params.Source != "" {
		query = query.Where("source = ?", params.Source)
	}
	if !params.StartTime.IsZero() {
		query = query.Where("timestamp >= ?", params.StartTime)
	}
	if !params.EndTime.IsZero() {
		query = query.Where("timestamp <= ?", params.EndTime)
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count evaluations: %w", err)
	}

	if params.Limit > 0 {
		query = query.Limit(params.Limit)
	} else {
		query = query.Limit(DefaultQueryLimit)
	}

	if params.Offset > 0 {
		query = query.Offset(params.Offset)
	}

	result := query.Order("timestamp DESC").Find(&evaluations)
	if result.Error != nil {
		return nil, 0, fmt.Errorf("failed to query evaluations: %w", result.Error)
	}

	return evaluations, count, nil
}
