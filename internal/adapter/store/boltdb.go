package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	"go.etcd.io/bbolt"

	"jaldh/internal/domain"
	"jaldh/internal/port"
)

var _ port.HistoryStore = (*BoltStore)(nil)

var (
	bucketRuns  = []byte("runs")
	bucketFiles = []byte("files")
	bucketMeta  = []byte("meta")
)

// BoltStore keeps the annotation history in a bbolt database.
type BoltStore struct {
	db *bbolt.DB
}

func NewBoltStore(path string) (*BoltStore, error) {
	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for _, b := range [][]byte{bucketRuns, bucketFiles, bucketMeta} {
			if _, err := tx.CreateBucketIfNotExists(b); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", b, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	s := &BoltStore{db: db}
	if err := s.Migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *BoltStore) PutRun(run domain.Run) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		data, err := json.Marshal(run)
		if err != nil {
			return err
		}
		return tx.Bucket(bucketRuns).Put([]byte(run.ID), data)
	})
}

// PutFile appends a file record to its run. Records of a run are returned by
// GetFiles in insertion order.
func (s *BoltStore) PutFile(rec domain.FileRecord) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if tx.Bucket(bucketRuns).Get([]byte(rec.RunID)) == nil {
			return fmt.Errorf("run not found: %s", rec.RunID)
		}
		b := tx.Bucket(bucketFiles)
		seq, err := b.NextSequence()
		if err != nil {
			return err
		}
		data, err := json.Marshal(rec)
		if err != nil {
			return err
		}
		return b.Put(fileKey(rec.RunID, seq), data)
	})
}

// ListRuns returns all runs, oldest first.
func (s *BoltStore) ListRuns() ([]domain.Run, error) {
	var runs []domain.Run
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketRuns).ForEach(func(k, v []byte) error {
			var run domain.Run
			if err := json.Unmarshal(v, &run); err != nil {
				return err
			}
			runs = append(runs, run)
			return nil
		})
	})
	sort.SliceStable(runs, func(i, j int) bool {
		return runs[i].StartedAt.Before(runs[j].StartedAt)
	})
	return runs, err
}

func (s *BoltStore) GetFiles(runID string) ([]domain.FileRecord, error) {
	var recs []domain.FileRecord
	err := s.db.View(func(tx *bbolt.Tx) error {
		prefix := runPrefix(runID)
		c := tx.Bucket(bucketFiles).Cursor()
		for k, v := c.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, v = c.Next() {
			var rec domain.FileRecord
			if err := json.Unmarshal(v, &rec); err != nil {
				return err
			}
			recs = append(recs, rec)
		}
		return nil
	})
	return recs, err
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}

func runPrefix(runID string) []byte {
	return append([]byte(runID), 0)
}

func fileKey(runID string, seq uint64) []byte {
	return append(runPrefix(runID), []byte(fmt.Sprintf("%016x", seq))...)
}
