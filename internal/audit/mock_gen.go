package audit

//go:generate mockgen -typed -source=./logger.go -destination=../mocks/mock_recorder.go -package=mocks Recorder
