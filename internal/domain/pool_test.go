package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "cmerge.dev/pkg/cmerge/internal/model"
)

func TestCandidatePool_FirstMatchWins(t *testing.T) {
	fsys := newMemFS()
	files := buildFiles(fsys,
		fixture{"a/config.h", "first\n"},
		fixture{"b/config.h", "second\n"},
		fixture{"other.h", ""},
	)

	pool := NewCandidatePool(files)

	got, ok := pool.Lookup("config.h")
	require.True(t, ok)
	assert.Equal(t, m.Path("a/config.h"), got.ShortPath)
	assert.Equal(t, 3, pool.Len())

	_, ok = pool.Lookup("a/config.h")
	assert.False(t, ok, "lookup is by base name only")

	_, ok = pool.Lookup("missing.h")
	assert.False(t, ok)
}

func TestCandidatePool_Nil(t *testing.T) {
	var pool *CandidatePool

	_, ok := pool.Lookup("a.h")
	assert.False(t, ok)
	assert.Equal(t, 0, pool.Len())
	assert.Nil(t, pool.Files())
}
