package id_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickreview/backend/internal/id"
)

func TestGenerateID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		v := id.GenerateID()
		require.False(t, seen[v], "duplicate id %s", v)
		seen[v] = true
	}
}

func TestGenerateID_IsUUIDv7(t *testing.T) {
	u, err := uuid.Parse(id.GenerateID())
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), u.Version())
}
