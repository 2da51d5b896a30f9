package leaderboard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nahidff/likebot/internal/model"
)

func TestDefaultStaticProviderRanking(t *testing.T) {
	provider := DefaultStaticProvider()

	entries, err := provider.Top(context.Background(), model.RegionBD, model.ModeBattleRoyale)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, "Player1", entries[0].Name)
	assert.Equal(t, 5000, entries[0].Points)
	assert.Equal(t, 3, entries[2].Rank)
}

func TestStaticProviderReturnsCopies(t *testing.T) {
	provider := NewStaticProvider([]model.LeaderboardEntry{
		{Rank: 1, Name: "Alpha", Points: 100},
	})

	first, err := provider.Top(context.Background(), model.RegionBR, model.ModeClashSquad)
	require.NoError(t, err)
	first[0].Name = "mutated"

	second, err := provider.Top(context.Background(), model.RegionBR, model.ModeClashSquad)
	require.NoError(t, err)
	assert.Equal(t, "Alpha", second[0].Name)
}

func TestDefaultStaticPassProviderRanking(t *testing.T) {
	provider := DefaultStaticPassProvider()

	entries, err := provider.Top(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, "VIPPlayer1", entries[0].Name)
	assert.Equal(t, 100, entries[0].Level)
	assert.Equal(t, 90, entries[2].Level)
}
