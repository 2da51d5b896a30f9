package verification

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/nahidff/likebot/internal/dependencies/mocks"
	"github.com/nahidff/likebot/internal/model"
	"github.com/nahidff/likebot/internal/services/account"
	"github.com/nahidff/likebot/internal/storage/memory"
)

type ServiceSuite struct {
	suite.Suite
	accounts *account.Service
	service  *Service
	ctx      context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	clock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.accounts = account.New(memory.New(), clock)
	s.service = New(s.accounts, DefaultConfig())
	s.ctx = context.Background()
}

// Begin tests

func (s *ServiceSuite) TestBeginReturnsJoinPrompt() {
	prompt, err := s.service.Begin(s.ctx, "user-1")
	s.Require().NoError(err)

	s.Equal(DefaultConfig().ChannelURL, prompt.ChannelURL)
	s.Equal(JoinedCallback, prompt.CallbackData)
}

func (s *ServiceSuite) TestBeginDoesNotMutateAccount() {
	_, err := s.service.Begin(s.ctx, "user-1")
	s.Require().NoError(err)

	acct, err := s.accounts.GetOrCreate(s.ctx, "user-1")
	s.Require().NoError(err)
	s.False(acct.Verified)
	s.Equal(int64(0), acct.Coins)
}

func (s *ServiceSuite) TestBeginForVerifiedAccount() {
	_, err := s.service.ConfirmJoined(s.ctx, "user-1")
	s.Require().NoError(err)

	_, err = s.service.Begin(s.ctx, "user-1")
	s.ErrorIs(err, model.ErrAlreadyVerified)
}

func (s *ServiceSuite) TestBeginUsesConfiguredChannel() {
	service := New(s.accounts, Config{ChannelURL: "https://t.me/SomeOtherChannel"})

	prompt, err := service.Begin(s.ctx, "user-1")
	s.Require().NoError(err)
	s.Equal("https://t.me/SomeOtherChannel", prompt.ChannelURL)
}

// ConfirmJoined tests

func (s *ServiceSuite) TestConfirmJoinedVerifiesAndRewards() {
	acct, err := s.service.ConfirmJoined(s.ctx, "user-1")
	s.Require().NoError(err)

	s.True(acct.Verified)
	s.Equal(JoinReward, acct.Coins)
}

func (s *ServiceSuite) TestRewardGrantedAtMostOnce() {
	_, err := s.service.ConfirmJoined(s.ctx, "user-1")
	s.Require().NoError(err)

	_, err = s.service.ConfirmJoined(s.ctx, "user-1")
	s.ErrorIs(err, model.ErrAlreadyVerified)

	acct, err := s.accounts.GetOrCreate(s.ctx, "user-1")
	s.Require().NoError(err)
	s.True(acct.Verified)
	s.Equal(int64(1), acct.Coins)
}

func (s *ServiceSuite) TestVerificationIsOneWay() {
	_, err := s.service.ConfirmJoined(s.ctx, "user-1")
	s.Require().NoError(err)

	// Spend the reward; the verified flag must survive
	_, err = s.accounts.Update(s.ctx, "user-1", func(a *model.Account) error {
		a.Coins = 0
		return nil
	})
	s.Require().NoError(err)

	acct, err := s.accounts.GetOrCreate(s.ctx, "user-1")
	s.Require().NoError(err)
	s.True(acct.Verified)
}

func (s *ServiceSuite) TestConcurrentConfirmationsGrantOneReward() {
	const confirmations = 10

	var wg sync.WaitGroup
	for i := 0; i < confirmations; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = s.service.ConfirmJoined(s.ctx, "user-1")
		}()
	}
	wg.Wait()

	acct, err := s.accounts.GetOrCreate(s.ctx, "user-1")
	s.Require().NoError(err)
	s.Equal(int64(1), acct.Coins)
}
