package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/nahidff/likebot/internal/dependencies/random"
	"github.com/nahidff/likebot/internal/metrics"
	"github.com/nahidff/likebot/internal/model"
	"github.com/nahidff/likebot/internal/services/account"
	"github.com/nahidff/likebot/internal/services/entitlement"
	"github.com/nahidff/likebot/internal/services/leaderboard"
	"github.com/nahidff/likebot/internal/services/verification"
)

const (
	// likeCost is the price of one paid action (/like or /visit)
	likeCost int64 = 1

	// deliveryIDLength/Alphabet shape the ids attached to simulated sends
	deliveryIDLength   = 12
	deliveryIDAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
)

// Reply is the router's response to one command or callback.
// An empty Text means the input was not routed and the transport should
// stay silent (unknown commands are a transport-level no-op).
type Reply struct {
	Text string

	// Prompt is set when the transport should render a join action
	// (channel link plus a confirm button carrying CallbackData)
	Prompt *verification.Prompt
}

// handlerFunc processes a validated command for a user
type handlerFunc func(ctx context.Context, userID model.UserID, args []string) (Reply, error)

// command declares one entry of the dispatch table
type command struct {
	minArgs int
	cost    int64
	usage   string
	handle  handlerFunc
}

// Router maps incoming commands to handlers. It validates argument shape
// and domain membership, consults the entitlement gate for paid actions,
// and turns every outcome into user-facing reply text. Nothing here is
// fatal: all error conditions surface as replies.
type Router struct {
	accounts     *account.Service
	gate         *entitlement.Service
	verification *verification.Service
	boards       leaderboard.Provider
	passBoards   leaderboard.PassProvider
	random       random.Random
	logger       *slog.Logger
	metrics      *metrics.Metrics

	commands map[string]command
}

// Config holds the router's collaborators
type Config struct {
	Accounts     *account.Service
	Gate         *entitlement.Service
	Verification *verification.Service
	Leaderboard  leaderboard.Provider
	PassBoard    leaderboard.PassProvider
	Random       random.Random
	Logger       *slog.Logger
	Metrics      *metrics.Metrics
}

// NewRouter creates a router with the full command surface registered.
// The surface is fixed at startup.
func NewRouter(cfg Config) *Router {
	r := &Router{
		accounts:     cfg.Accounts,
		gate:         cfg.Gate,
		verification: cfg.Verification,
		boards:       cfg.Leaderboard,
		passBoards:   cfg.PassBoard,
		random:       cfg.Random,
		logger:       cfg.Logger,
		metrics:      cfg.Metrics,
	}

	r.commands = map[string]command{
		"start":          {minArgs: 0, handle: r.handleStart},
		"help":           {minArgs: 0, handle: r.handleHelp},
		"coins":          {minArgs: 0, handle: r.handleCoins},
		"like":           {minArgs: 2, cost: likeCost, usage: "<region> <uid>", handle: r.handleLike},
		"visit":          {minArgs: 2, cost: likeCost, usage: "<region> <uid>", handle: r.handleVisit},
		"leaderboard":    {minArgs: 2, usage: "<region> <mode>", handle: r.handleLeaderboard},
		"bp_leaderboard": {minArgs: 0, handle: r.handleBPLeaderboard},
		"verify":         {minArgs: 0, handle: r.handleVerify},
	}

	return r
}

// HandleCommand processes one incoming command for a user and returns the
// reply. Unknown commands return an empty reply. The returned error is
// reserved for storage/provider failures; every user-level condition
// (usage, validation, denial) is already rendered into Reply.Text.
func (r *Router) HandleCommand(ctx context.Context, userID model.UserID, name string, args []string) (Reply, error) {
	cmd, ok := r.commands[name]
	if !ok {
		r.metrics.IncrementCommand(name, metrics.OutcomeUnknown)
		return Reply{}, nil
	}

	if len(args) < cmd.minArgs {
		r.metrics.IncrementCommand(name, metrics.OutcomeUsage)
		return Reply{Text: usageMessage(name, cmd.usage)}, nil
	}

	reply, err := cmd.handle(ctx, userID, args)
	if err != nil {
		r.metrics.IncrementCommand(name, metrics.OutcomeError)
		r.logger.Error("command failed",
			slog.String("command", name),
			slog.String("user_id", string(userID)),
			slog.String("error", err.Error()),
		)
		return Reply{}, fmt.Errorf("handle /%s: %w", name, err)
	}

	return reply, nil
}

// HandleCallback processes a callback event (the confirmation leg of the
// verification flow). Unrecognized callback data is ignored.
func (r *Router) HandleCallback(ctx context.Context, userID model.UserID, data string) (Reply, error) {
	if data != verification.JoinedCallback {
		return Reply{}, nil
	}

	acct, err := r.verification.ConfirmJoined(ctx, userID)
	if err != nil {
		if errors.Is(err, model.ErrAlreadyVerified) {
			return Reply{Text: msgAlreadyVerified}, nil
		}
		return Reply{}, fmt.Errorf("confirm verification: %w", err)
	}

	r.metrics.IncrementVerification()
	r.logger.Info("verification completed", slog.String("user_id", string(userID)))

	return Reply{Text: verifiedMessage(acct.Coins)}, nil
}

func (r *Router) handleStart(ctx context.Context, userID model.UserID, _ []string) (Reply, error) {
	acct, err := r.accounts.GetOrCreate(ctx, userID)
	if err != nil {
		return Reply{}, err
	}
	r.metrics.IncrementCommand("start", metrics.OutcomeOK)
	return Reply{Text: greetingMessage(acct.Coins)}, nil
}

func (r *Router) handleHelp(_ context.Context, _ model.UserID, _ []string) (Reply, error) {
	r.metrics.IncrementCommand("help", metrics.OutcomeOK)
	return Reply{Text: helpText}, nil
}

func (r *Router) handleCoins(ctx context.Context, userID model.UserID, _ []string) (Reply, error) {
	acct, err := r.accounts.GetOrCreate(ctx, userID)
	if err != nil {
		return Reply{}, err
	}
	r.metrics.IncrementCommand("coins", metrics.OutcomeOK)
	return Reply{Text: coinsMessage(acct.Coins)}, nil
}

func (r *Router) handleLike(ctx context.Context, userID model.UserID, args []string) (Reply, error) {
	return r.handlePaidSend(ctx, "like", userID, args, likeSentMessage)
}

func (r *Router) handleVisit(ctx context.Context, userID model.UserID, args []string) (Reply, error) {
	return r.handlePaidSend(ctx, "visit", userID, args, visitSentMessage)
}

// handlePaidSend runs the shared like/visit flow: validate the region,
// ask the gate to authorize and debit, then simulate the send
func (r *Router) handlePaidSend(
	ctx context.Context,
	name string,
	userID model.UserID,
	args []string,
	sentMessage func(region, uid string) string,
) (Reply, error) {
	region, uid := args[0], args[1]

	if !model.ValidRegion(region) {
		r.metrics.IncrementCommand(name, metrics.OutcomeValidation)
		return Reply{Text: msgInvalidRegion}, nil
	}

	if _, err := r.gate.Authorize(ctx, userID, likeCost); err != nil {
		switch {
		case errors.Is(err, model.ErrInsufficientBalance):
			r.metrics.IncrementCommand(name, metrics.OutcomeDenied)
			r.metrics.IncrementDenial("insufficient_balance")
			return Reply{Text: msgNeedCoins}, nil
		case errors.Is(err, model.ErrNotVerified):
			r.metrics.IncrementCommand(name, metrics.OutcomeDenied)
			r.metrics.IncrementDenial("not_verified")
			return Reply{Text: msgNeedVerification}, nil
		default:
			return Reply{}, err
		}
	}

	// The send itself is simulated; a real game backend would go here.
	deliveryID := r.random.String(deliveryIDLength, deliveryIDAlphabet)
	r.logger.Info("send dispatched",
		slog.String("action", name),
		slog.String("user_id", string(userID)),
		slog.String("region", region),
		slog.String("target_uid", uid),
		slog.String("delivery_id", deliveryID),
	)

	r.metrics.IncrementCommand(name, metrics.OutcomeOK)
	return Reply{Text: sentMessage(region, uid)}, nil
}

func (r *Router) handleLeaderboard(ctx context.Context, userID model.UserID, args []string) (Reply, error) {
	region, mode := args[0], args[1]

	if !model.ValidRegion(region) {
		r.metrics.IncrementCommand("leaderboard", metrics.OutcomeValidation)
		return Reply{Text: msgInvalidRegion}, nil
	}
	if !model.ValidMode(mode) {
		r.metrics.IncrementCommand("leaderboard", metrics.OutcomeValidation)
		return Reply{Text: msgInvalidMode}, nil
	}

	entries, err := r.boards.Top(ctx, model.Region(region), model.Mode(mode))
	if err != nil {
		return Reply{}, err
	}

	r.metrics.IncrementCommand("leaderboard", metrics.OutcomeOK)
	return Reply{Text: leaderboardMessage(region, mode, entries)}, nil
}

func (r *Router) handleBPLeaderboard(ctx context.Context, _ model.UserID, _ []string) (Reply, error) {
	entries, err := r.passBoards.Top(ctx)
	if err != nil {
		return Reply{}, err
	}

	r.metrics.IncrementCommand("bp_leaderboard", metrics.OutcomeOK)
	return Reply{Text: passLeaderboardMessage(entries)}, nil
}

func (r *Router) handleVerify(ctx context.Context, userID model.UserID, _ []string) (Reply, error) {
	prompt, err := r.verification.Begin(ctx, userID)
	if err != nil {
		if errors.Is(err, model.ErrAlreadyVerified) {
			r.metrics.IncrementCommand("verify", metrics.OutcomeOK)
			return Reply{Text: msgAlreadyVerified}, nil
		}
		return Reply{}, err
	}

	r.metrics.IncrementCommand("verify", metrics.OutcomeOK)
	return Reply{Text: msgVerifyPrompt, Prompt: prompt}, nil
}
