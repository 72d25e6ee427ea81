package memstore

import (
	"fmt"
	"sort"
	"sync"

	"jaldh/internal/domain"
	"jaldh/internal/port"
)

var _ port.HistoryStore = (*MemoryStore)(nil)

// MemoryStore is a HistoryStore that lives for one process. It is used when
// history is disabled in config.
type MemoryStore struct {
	mu    sync.RWMutex
	runs  map[string]domain.Run
	files map[string][]domain.FileRecord
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		runs:  make(map[string]domain.Run),
		files: make(map[string][]domain.FileRecord),
	}
}

func (s *MemoryStore) PutRun(run domain.Run) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs[run.ID] = run
	return nil
}

func (s *MemoryStore) PutFile(rec domain.FileRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.runs[rec.RunID]; !ok {
		return fmt.Errorf("run not found: %s", rec.RunID)
	}
	s.files[rec.RunID] = append(s.files[rec.RunID], rec)
	return nil
}

func (s *MemoryStore) ListRuns() ([]domain.Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	runs := make([]domain.Run, 0, len(s.runs))
	for _, run := range s.runs {
		runs = append(runs, run)
	}
	sort.Slice(runs, func(i, j int) bool {
		if runs[i].StartedAt.Equal(runs[j].StartedAt) {
			return runs[i].ID < runs[j].ID
		}
		return runs[i].StartedAt.Before(runs[j].StartedAt)
	})
	return runs, nil
}

func (s *MemoryStore) GetFiles(runID string) ([]domain.FileRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	recs := make([]domain.FileRecord, len(s.files[runID]))
	copy(recs, s.files[runID])
	return recs, nil
}

func (s *MemoryStore) Close() error {
	return nil
}
