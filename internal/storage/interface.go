package storage

import (
	"context"

	"github.com/nahidff/likebot/internal/model"
)

// Storage defines the interface for account persistence
type Storage interface {
	// Account operations
	SaveAccount(ctx context.Context, account *model.Account) error
	GetAccount(ctx context.Context, id model.UserID) (*model.Account, error)
	AccountExists(ctx context.Context, id model.UserID) (bool, error)

	// CountAccounts reports the number of stored accounts.
	// The registry grows without bound (no eviction), so the count is
	// exposed for capacity monitoring rather than any cleanup logic.
	CountAccounts(ctx context.Context) (int64, error)
}
