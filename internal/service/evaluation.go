package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/dangerclosesec/biza/analysis"
	"github.com/dangerclosesec/biza/analysis/diagnostic"
	"github.com/dangerclosesec/biza/analysis/syntax"
	"github.com/dangerclosesec/biza/internal/audit"
	"github.com/dangerclosesec/biza/internal/domain"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
)

// EvaluationService runs source text through the lexer, parser, binder and
// evaluator. Each call uses fresh pipeline instances, so the service is safe
// for concurrent use.
type EvaluationService struct {
	cache           *CacheService
	recorder        audit.Recorder
	validate        *validator.Validate
	maxSourceLength int
}

// NewEvaluationService creates a new EvaluationService. A nil recorder
// disables history.
func NewEvaluationService(cache *CacheService, recorder audit.Recorder, maxSourceLength int) *EvaluationService {
	if recorder == nil {
		recorder = &audit.NoOpRecorder{}
	}

	return &EvaluationService{
		cache:           cache,
		recorder:        recorder,
		validate:        validator.New(),
		maxSourceLength: maxSourceLength,
	}
}

// MaxSourceLength returns the largest source, in bytes, the service accepts
func (s *EvaluationService) MaxSourceLength() int {
	return s.maxSourceLength
}

// SourceInput is the request body shared by the lex and evaluate operations
type SourceInput struct {
	Source string `json:"source" validate:"required"`
}

// LexOutput is every token of the source, whitespace and bad tokens included
type LexOutput struct {
	Tokens      []syntax.Token          `json:"tokens"`
	Diagnostics []diagnostic.Diagnostic `json:"diagnostics"`
}

// EvaluateOutput is the result of evaluating one source string
type EvaluateOutput struct {
	ID          string                  `json:"id,omitempty"`
	Value       any                     `json:"value,omitempty"`
	Type        string                  `json:"type,omitempty"`
	Diagnostics []diagnostic.Diagnostic `json:"diagnostics"`
}

// Lex tokenizes the source
func (s *EvaluationService) Lex(ctx context.Context, input SourceInput) (*LexOutput, error) {
	if err := s.validateInput(input); err != nil {
		return nil, err
	}

	tokens, diagnostics := syntax.Lex(input.Source)
	return &LexOutput{
		Tokens:      tokens,
		Diagnostics: nonNil(diagnostics),
	}, nil
}

// Evaluate compiles and evaluates the source and records the outcome. A
// source with diagnostics is not an error; the diagnostics are returned.
func (s *EvaluationService) Evaluate(ctx context.Context, input SourceInput, req *http.Request) (*EvaluateOutput, error) {
	if err := s.validateInput(input); err != nil {
		return nil, err
	}

	cached, err := s.cache.GetOrSet(ctx, cacheKey(input.Source), func() (interface{}, error) {
		return analysis.NewCompilation(input.Source).Evaluate(), nil
	})
	if err != nil {
		return nil, fmt.Errorf("evaluating source: %w", err)
	}
	result := cached.(analysis.EvaluationResult)

	output := &EvaluateOutput{Diagnostics: nonNil(result.Diagnostics)}
	if result.Succeeded() {
		output.Value = result.Value
		output.Type = result.Type.String()
	}

	id, err := s.recorder.RecordEvaluation(ctx, input.Source, result, req)
	if err != nil {
		// History is best effort; the caller still gets the result
		slog.WarnContext(ctx, "Failed to record evaluation", "error", err, "requestID", middleware.GetReqID(ctx))
	}
	output.ID = id

	return output, nil
}

// validateInput performs validation on source input
func (s *EvaluationService) validateInput(input SourceInput) error {
	if err := s.validate.Struct(input); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	if len(input.Source) > s.maxSourceLength {
		return fmt.Errorf("%w: %d bytes exceeds limit of %d", domain.ErrSourceTooLong, len(input.Source), s.maxSourceLength)
	}

	return nil
}

func cacheKey(source string) string {
	return "eval:" + source
}

func nonNil(diagnostics []diagnostic.Diagnostic) []diagnostic.Diagnostic {
	if diagnostics == nil {
		return []diagnostic.Diagnostic{}
	}
	return diagnostics
}
