package bot

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/suite"

	"github.com/nahidff/likebot/internal/dependencies/mocks"
	"github.com/nahidff/likebot/internal/metrics"
	"github.com/nahidff/likebot/internal/model"
	"github.com/nahidff/likebot/internal/services/account"
	"github.com/nahidff/likebot/internal/services/entitlement"
	"github.com/nahidff/likebot/internal/services/leaderboard"
	"github.com/nahidff/likebot/internal/services/verification"
	"github.com/nahidff/likebot/internal/storage/memory"
	"github.com/nahidff/likebot/internal/testutil"
)

type RouterSuite struct {
	suite.Suite
	accounts *account.Service
	random   *mocks.MockRandom
	router   *Router
	ctx      context.Context
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterSuite))
}

func (s *RouterSuite) SetupTest() {
	clock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.accounts = account.New(memory.New(), clock)
	s.random = mocks.NewMockRandom()

	gate := entitlement.New(s.accounts)
	verify := verification.New(s.accounts, verification.DefaultConfig())

	s.router = NewRouter(Config{
		Accounts:     s.accounts,
		Gate:         gate,
		Verification: verify,
		Leaderboard:  leaderboard.DefaultStaticProvider(),
		PassBoard:    leaderboard.DefaultStaticPassProvider(),
		Random:       s.random,
		Logger:       testutil.NopLogger(),
		Metrics:      metrics.New(prometheus.NewRegistry(), nil),
	})
	s.ctx = context.Background()
}

func (s *RouterSuite) command(userID model.UserID, name string, args ...string) Reply {
	reply, err := s.router.HandleCommand(s.ctx, userID, name, args)
	s.Require().NoError(err)
	return reply
}

func (s *RouterSuite) verifyUser(userID model.UserID) {
	reply, err := s.router.HandleCallback(s.ctx, userID, verification.JoinedCallback)
	s.Require().NoError(err)
	s.Require().Contains(reply.Text, "Verification complete")
}

// Basic commands

func (s *RouterSuite) TestStartGreetsWithBalance() {
	reply := s.command("user-1", "start")
	s.Contains(reply.Text, "Welcome to Free Fire Bot!")
	s.Contains(reply.Text, "Your coins: 0")
}

func (s *RouterSuite) TestHelpListsCommands() {
	reply := s.command("user-1", "help")
	s.Contains(reply.Text, "/like <region> <uid>")
	s.Contains(reply.Text, "/bp_leaderboard")
	s.Contains(reply.Text, "bd - Bangladesh")
}

func (s *RouterSuite) TestCoinsShowsBalance() {
	s.verifyUser("user-1")

	reply := s.command("user-1", "coins")
	s.Equal("🪙 Your coins: 1", reply.Text)
}

func (s *RouterSuite) TestUnknownCommandIsNotRouted() {
	reply := s.command("user-1", "selfdestruct")
	s.Empty(reply.Text)
	s.Nil(reply.Prompt)
}

// Arity and domain validation

func (s *RouterSuite) TestLikeWithTooFewArgs() {
	reply := s.command("user-1", "like", "bd")
	s.Equal("Usage: /like <region> <uid>", reply.Text)
}

func (s *RouterSuite) TestLeaderboardUsage() {
	reply := s.command("user-1", "leaderboard")
	s.Equal("Usage: /leaderboard <region> <mode>", reply.Text)
}

func (s *RouterSuite) TestLikeRejectsUnknownRegion() {
	reply := s.command("user-1", "like", "xx", "12345")
	s.Equal(msgInvalidRegion, reply.Text)
}

func (s *RouterSuite) TestLeaderboardRejectsUnknownRegion() {
	reply := s.command("user-1", "leaderboard", "xx", "br")
	s.Equal(msgInvalidRegion, reply.Text)

	// No account state was touched on the way out
	acct, err := s.accounts.GetOrCreate(s.ctx, "user-1")
	s.Require().NoError(err)
	s.Equal(int64(0), acct.Coins)
	s.False(acct.Verified)
}

func (s *RouterSuite) TestLeaderboardRejectsUnknownMode() {
	reply := s.command("user-1", "leaderboard", "bd", "ranked")
	s.Equal(msgInvalidMode, reply.Text)
}

// Paid actions

func (s *RouterSuite) TestNewUserLikeHitsBalanceCheckFirst() {
	// Unverified with zero coins: the balance message wins because the
	// gate checks balance before verification
	reply := s.command("user-1", "like", "bd", "12345")
	s.Equal(msgNeedCoins, reply.Text)
}

func (s *RouterSuite) TestFundedUnverifiedUserIsAskedToVerify() {
	_, err := s.accounts.Credit(s.ctx, "user-1", 5)
	s.Require().NoError(err)

	reply := s.command("user-1", "like", "bd", "12345")
	s.Equal(msgNeedVerification, reply.Text)
}

func (s *RouterSuite) TestVerifiedUserLikeSucceedsAndDebits() {
	s.verifyUser("user-1")
	s.random.QueueString("abc123def456")

	reply := s.command("user-1", "like", "bd", "12345")
	s.Equal("✅ Sent like to UID 12345 in BD region!", reply.Text)

	reply = s.command("user-1", "coins")
	s.Equal("🪙 Your coins: 0", reply.Text)
}

func (s *RouterSuite) TestVisitSucceedsForVIPWithoutDebit() {
	_, err := s.accounts.SetVIP(s.ctx, "vip-1", true)
	s.Require().NoError(err)

	reply := s.command("vip-1", "visit", "ind", "99999")
	s.Equal("✅ Sent visit to UID 99999 in IND region!", reply.Text)

	reply = s.command("vip-1", "coins")
	s.Equal("🪙 Your coins: 0", reply.Text)
}

func (s *RouterSuite) TestConcurrentLikesCannotDoubleSpend() {
	s.verifyUser("user-1") // coins = 1

	var wg sync.WaitGroup
	replies := make(chan Reply, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			reply, err := s.router.HandleCommand(s.ctx, "user-1", "like", []string{"bd", "12345"})
			s.NoError(err)
			replies <- reply
		}()
	}
	wg.Wait()
	close(replies)

	var sent, denied int
	for reply := range replies {
		if strings.Contains(reply.Text, "Sent like") {
			sent++
		} else {
			s.Equal(msgNeedCoins, reply.Text)
			denied++
		}
	}

	s.Equal(1, sent)
	s.Equal(1, denied)

	acct, err := s.accounts.GetOrCreate(s.ctx, "user-1")
	s.Require().NoError(err)
	s.Equal(int64(0), acct.Coins)
}

// Leaderboards

func (s *RouterSuite) TestLeaderboardFormatting() {
	reply := s.command("user-1", "leaderboard", "bd", "br")
	s.Contains(reply.Text, "🏆 Leaderboard for BD (BR):")
	s.Contains(reply.Text, "1. Player1 - 5000 points")
	s.Contains(reply.Text, "3. Player3 - 4600 points")
}

func (s *RouterSuite) TestBPLeaderboardFormatting() {
	reply := s.command("user-1", "bp_leaderboard")
	s.Contains(reply.Text, "🌟 Booyah Pass Leaderboard:")
	s.Contains(reply.Text, "1. VIPPlayer1 - Level 100")
}

// Verification

func (s *RouterSuite) TestVerifyReturnsJoinPrompt() {
	reply := s.command("user-1", "verify")
	s.Equal(msgVerifyPrompt, reply.Text)
	s.Require().NotNil(reply.Prompt)
	s.Equal(verification.JoinedCallback, reply.Prompt.CallbackData)
	s.NotEmpty(reply.Prompt.ChannelURL)
}

func (s *RouterSuite) TestVerifyWhenAlreadyVerified() {
	s.verifyUser("user-1")

	reply := s.command("user-1", "verify")
	s.Equal(msgAlreadyVerified, reply.Text)
	s.Nil(reply.Prompt)
}

func (s *RouterSuite) TestCallbackGrantsRewardOnce() {
	reply, err := s.router.HandleCallback(s.ctx, "user-1", verification.JoinedCallback)
	s.Require().NoError(err)
	s.Contains(reply.Text, "You earned 1 coin")
	s.Contains(reply.Text, "Your coins: 1")

	reply, err = s.router.HandleCallback(s.ctx, "user-1", verification.JoinedCallback)
	s.Require().NoError(err)
	s.Equal(msgAlreadyVerified, reply.Text)

	acct, err := s.accounts.GetOrCreate(s.ctx, "user-1")
	s.Require().NoError(err)
	s.Equal(int64(1), acct.Coins)
}

func (s *RouterSuite) TestUnrecognizedCallbackIsIgnored() {
	reply, err := s.router.HandleCallback(s.ctx, "user-1", "something_else")
	s.Require().NoError(err)
	s.Empty(reply.Text)

	acct, err := s.accounts.GetOrCreate(s.ctx, "user-1")
	s.Require().NoError(err)
	s.False(acct.Verified)
}
