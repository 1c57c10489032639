// internal/repository/mock_gen.go
package repository

//go:generate mockgen -typed -source=./evaluation.go -destination=../mocks/mock_evaluation_repository.go -package=mocks EvaluationRepositoryIface
