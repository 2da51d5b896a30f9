package account

import (
	"context"
	"errors"
	"sync"

	"github.com/nahidff/likebot/internal/dependencies/clock"
	"github.com/nahidff/likebot/internal/model"
	"github.com/nahidff/likebot/internal/storage"
)

// Service owns the account registry. Accounts are created lazily on first
// reference and never destroyed. All mutation goes through Update, which
// serializes read-modify-write cycles per account so that concurrent
// requests for the same user cannot double-spend.
type Service struct {
	storage storage.Storage
	clock   clock.Clock

	mu    sync.Mutex
	locks map[model.UserID]*sync.Mutex
}

// New creates a new account service
func New(storage storage.Storage, clock clock.Clock) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
		locks:   make(map[model.UserID]*sync.Mutex),
	}
}

// GetOrCreate returns the account for id, creating a default one
// (zero coins, unverified, not VIP) if this is the first reference.
// Creation cannot fail for the memory backend; identifiers are not validated.
func (s *Service) GetOrCreate(ctx context.Context, id model.UserID) (*model.Account, error) {
	lock := s.lockFor(id)
	lock.Lock()
	defer lock.Unlock()

	return s.getOrCreateLocked(ctx, id)
}

// Update runs fn against the account for id under the per-account lock,
// creating the account first if absent. The mutated account is saved only
// if fn returns nil; on error no state change is persisted. The account is
// returned in both cases so callers can report balances alongside errors.
func (s *Service) Update(ctx context.Context, id model.UserID, fn func(*model.Account) error) (*model.Account, error) {
	lock := s.lockFor(id)
	lock.Lock()
	defer lock.Unlock()

	account, err := s.getOrCreateLocked(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := fn(account); err != nil {
		return account, err
	}

	account.UpdatedAt = s.clock.Now()
	if err := s.storage.SaveAccount(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

// SetVIP sets the VIP flag for id, creating the account if absent.
// VIP is only ever assigned through this administrative path.
func (s *Service) SetVIP(ctx context.Context, id model.UserID, vip bool) (*model.Account, error) {
	return s.Update(ctx, id, func(a *model.Account) error {
		a.VIP = vip
		return nil
	})
}

// Credit adds amount coins to the account for id, creating it if absent
func (s *Service) Credit(ctx context.Context, id model.UserID, amount int64) (*model.Account, error) {
	return s.Update(ctx, id, func(a *model.Account) error {
		a.Coins += amount
		return nil
	})
}

// Count reports the number of accounts in the registry
func (s *Service) Count(ctx context.Context) (int64, error) {
	return s.storage.CountAccounts(ctx)
}

func (s *Service) getOrCreateLocked(ctx context.Context, id model.UserID) (*model.Account, error) {
	account, err := s.storage.GetAccount(ctx, id)
	if err == nil {
		return account, nil
	}
	if !errors.Is(err, model.ErrAccountNotFound) {
		return nil, err
	}

	account = model.NewAccount(id, s.clock.Now())
	if err := s.storage.SaveAccount(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

// lockFor returns the mutex guarding the account for id, creating it on
// first use. Lock entries are never removed: they are small and the
// account registry itself has no eviction either.
func (s *Service) lockFor(id model.UserID) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.locks[id]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[id] = lock
	}
	return lock
}
