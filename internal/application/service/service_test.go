package service

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/foodbazar/retail-api/internal/infrastructure/storage"
	"github.com/foodbazar/retail-api/internal/infrastructure/store"
)

func newSeededStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.New(storage.NewMemoryBackend(), zerolog.Nop())
	require.NoError(t, err)
	return s
}
