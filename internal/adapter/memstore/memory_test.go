package memstore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jaldh/internal/domain"
)

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore()
	now := time.Date(2025, 6, 22, 0, 0, 0, 0, time.UTC)

	require.NoError(t, s.PutRun(domain.Run{ID: "2", StartedAt: now.Add(time.Second)}))
	require.NoError(t, s.PutRun(domain.Run{ID: "1", StartedAt: now}))
	require.NoError(t, s.PutFile(domain.FileRecord{RunID: "1", Path: "a.py"}))
	require.NoError(t, s.PutFile(domain.FileRecord{RunID: "1", Path: "b.py"}))
	assert.Error(t, s.PutFile(domain.FileRecord{RunID: "3", Path: "c.py"}))

	runs, err := s.ListRuns()
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "1", runs[0].ID)
	assert.Equal(t, "2", runs[1].ID)

	files, err := s.GetFiles("1")
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "a.py", files[0].Path)
	assert.Equal(t, "b.py", files[1].Path)

	files[0].Path = "changed"
	again, _ := s.GetFiles("1")
	assert.Equal(t, "a.py", again[0].Path)

	assert.NoError(t, s.Close())
}
