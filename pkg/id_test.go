package pkg

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateIDShape(t *testing.T) {
	now := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
	id := generateID(now)

	stamp := strconv.FormatInt(now.UnixMilli(), 36)
	require.True(t, strings.HasSuffix(id, stamp))
	assert.Len(t, id, 9+len(stamp))
	for _, r := range id {
		assert.True(t, strings.ContainsRune(base36, r), "unexpected rune %q", r)
	}
}

func TestGenerateIDVaries(t *testing.T) {
	seen := make(map[string]bool, 1000)
	for i := 0; i < 1000; i++ {
		id := GenerateID()
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestShortSuffix(t *testing.T) {
	assert.Len(t, ShortSuffix(), 4)
}
