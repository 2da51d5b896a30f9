package entitlement

import (
	"context"

	"github.com/nahidff/likebot/internal/model"
	"github.com/nahidff/likebot/internal/services/account"
)

// Service is the entitlement gate: it decides whether an account may
// consume a paid action and applies the debit in the same step, so
// authorization and payment are atomic from the caller's perspective.
type Service struct {
	accounts *account.Service
}

// New creates a new entitlement gate
func New(accounts *account.Service) *Service {
	return &Service{accounts: accounts}
}

// Authorize checks whether the account for userID may spend cost coins and
// debits them if so. Policy, in order:
//
//  1. VIP accounts are always allowed and never debited.
//  2. Insufficient balance denies with model.ErrInsufficientBalance.
//  3. Unverified accounts deny with model.ErrNotVerified.
//  4. Otherwise the cost is debited and the action is allowed.
//
// The balance check deliberately precedes the verification check: an
// unverified user with no coins is told about the balance, not about
// verification. Changing that order changes the denial a borderline user
// sees, so it is pinned down by tests rather than reordered casually.
//
// The whole evaluation runs under the per-account lock, so two concurrent
// calls racing over one remaining coin cannot both pass. On denial no
// state changes. The account is returned for balance reporting either way.
func (s *Service) Authorize(ctx context.Context, userID model.UserID, cost int64) (*model.Account, error) {
	return s.accounts.Update(ctx, userID, func(a *model.Account) error {
		if a.VIP {
			return nil
		}
		if a.Coins < cost {
			return model.ErrInsufficientBalance
		}
		if !a.Verified {
			return model.ErrNotVerified
		}
		a.Coins -= cost
		return nil
	})
}
