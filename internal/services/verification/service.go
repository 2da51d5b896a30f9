package verification

import (
	"context"

	"github.com/nahidff/likebot/internal/model"
	"github.com/nahidff/likebot/internal/services/account"
)

// JoinedCallback is the callback data the transport delivers when a user
// asserts they joined the channel. The assertion is trusted as-is;
// membership is not independently checked.
const JoinedCallback = "verify_joined"

// JoinReward is the one-time coin reward for completing verification
const JoinReward int64 = 1

// Config holds verification flow settings
type Config struct {
	// ChannelURL is the channel the user is asked to join
	ChannelURL string
}

// DefaultConfig returns default verification configuration
func DefaultConfig() Config {
	return Config{
		ChannelURL: "https://t.me/FreeFireUpdates",
	}
}

// Prompt is the join action presented when verification begins
type Prompt struct {
	ChannelURL   string
	CallbackData string
}

// Service governs the one-way Unverified -> Verified transition and its
// one-time reward
type Service struct {
	accounts *account.Service
	cfg      Config
}

// New creates a new verification service
func New(accounts *account.Service, cfg Config) *Service {
	if cfg.ChannelURL == "" {
		cfg.ChannelURL = DefaultConfig().ChannelURL
	}
	return &Service{
		accounts: accounts,
		cfg:      cfg,
	}
}

// Begin starts verification for userID. For an already-verified account it
// returns model.ErrAlreadyVerified and no prompt; otherwise it returns the
// join prompt. Begin never mutates the account.
func (s *Service) Begin(ctx context.Context, userID model.UserID) (*Prompt, error) {
	acct, err := s.accounts.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	if acct.Verified {
		return nil, model.ErrAlreadyVerified
	}

	return &Prompt{
		ChannelURL:   s.cfg.ChannelURL,
		CallbackData: JoinedCallback,
	}, nil
}

// ConfirmJoined completes verification for userID: it marks the account
// verified and credits the join reward, but only if the account is still
// unverified. Repeat confirmations return model.ErrAlreadyVerified without
// mutating anything, so the reward cannot be farmed by replaying the
// callback. There is no transition back to unverified.
func (s *Service) ConfirmJoined(ctx context.Context, userID model.UserID) (*model.Account, error) {
	return s.accounts.Update(ctx, userID, func(a *model.Account) error {
		if a.Verified {
			return model.ErrAlreadyVerified
		}
		a.Verified = true
		a.Coins += JoinReward
		return nil
	})
}
