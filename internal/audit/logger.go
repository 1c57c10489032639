package audit

import (
	"context"
	"net/http"

	"github.com/dangerclosesec/biza/analysis"
)

// Recorder defines the interface for keeping a history of evaluations
type Recorder interface {
	// RecordEvaluation stores the outcome of evaluating source. req is nil
	// when the evaluation did not come from an HTTP request.
	RecordEvaluation(
		ctx context.Context,
		source string,
		result analysis.EvaluationResult,
		req *http.Request,
	) (string, error)
}

// NoOpRecorder is a recorder that does nothing
type NoOpRecorder struct{}

// RecordEvaluation implements Recorder.RecordEvaluation
func (r *NoOpRecorder) RecordEvaluation(
	ctx context.Context,
	source string,
	result analysis.EvaluationResult,
	req *http.Request,
) (string, error) {
	return "", nil
}
