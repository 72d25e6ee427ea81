package port

import "jaldh/internal/domain"

// HistoryStore records annotation runs and their per-file outcomes.
type HistoryStore interface {
	PutRun(run domain.Run) error

	PutFile(rec domain.FileRecord) error

	ListRuns() ([]domain.Run, error)

	GetFiles(runID string) ([]domain.FileRecord, error)

	Close() error
}
