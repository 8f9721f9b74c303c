package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPreferenceStore_GetMissing(t *testing.T) {
	s := NewPreferenceStore()

	v, ok, err := s.Get(context.Background(), "missing")
	require.NoError(t, err)
	require.False(t, ok)
	require.Empty(t, v)
}

func TestPreferenceStore_LastWriteWins(t *testing.T) {
	s := NewPreferenceStore()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k", "en"))
	require.NoError(t, s.Set(ctx, "k", "fr"))

	v, ok, err := s.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "fr", v)
}
