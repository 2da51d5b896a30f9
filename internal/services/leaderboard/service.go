package leaderboard

import (
	"context"

	"github.com/nahidff/likebot/internal/model"
)

// Provider supplies ranked regional leaderboard data. The bot only
// formats what the provider returns; producing real ranking data is the
// job of a game-data service behind this interface.
type Provider interface {
	Top(ctx context.Context, region model.Region, mode model.Mode) ([]model.LeaderboardEntry, error)
}

// PassProvider supplies ranked Booyah Pass data
type PassProvider interface {
	Top(ctx context.Context) ([]model.PassEntry, error)
}

// StaticProvider serves a fixed ranking regardless of region and mode.
// It stands in until a real game-data backend is wired up.
type StaticProvider struct {
	entries []model.LeaderboardEntry
}

var _ Provider = (*StaticProvider)(nil)

// NewStaticProvider creates a provider serving the given entries
func NewStaticProvider(entries []model.LeaderboardEntry) *StaticProvider {
	return &StaticProvider{entries: entries}
}

// DefaultStaticProvider returns a provider with placeholder ranking data
func DefaultStaticProvider() *StaticProvider {
	return NewStaticProvider([]model.LeaderboardEntry{
		{Rank: 1, Name: "Player1", Points: 5000},
		{Rank: 2, Name: "Player2", Points: 4800},
		{Rank: 3, Name: "Player3", Points: 4600},
	})
}

func (p *StaticProvider) Top(ctx context.Context, region model.Region, mode model.Mode) ([]model.LeaderboardEntry, error) {
	out := make([]model.LeaderboardEntry, len(p.entries))
	copy(out, p.entries)
	return out, nil
}

// StaticPassProvider serves a fixed Booyah Pass ranking
type StaticPassProvider struct {
	entries []model.PassEntry
}

var _ PassProvider = (*StaticPassProvider)(nil)

// NewStaticPassProvider creates a pass provider serving the given entries
func NewStaticPassProvider(entries []model.PassEntry) *StaticPassProvider {
	return &StaticPassProvider{entries: entries}
}

// DefaultStaticPassProvider returns a pass provider with placeholder data
func DefaultStaticPassProvider() *StaticPassProvider {
	return NewStaticPassProvider([]model.PassEntry{
		{Rank: 1, Name: "VIPPlayer1", Level: 100},
		{Rank: 2, Name: "VIPPlayer2", Level: 95},
		{Rank: 3, Name: "VIPPlayer3", Level: 90},
	})
}

func (p *StaticPassProvider) Top(ctx context.Context) ([]model.PassEntry, error) {
	out := make([]model.PassEntry, len(p.entries))
	copy(out, p.entries)
	return out, nil
}
