//go:build unit

package commands_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"storefront-payments/internal/infra/session"
	"storefront-payments/internal/pkg/clock"
	"storefront-payments/internal/pkg/config"
	"storefront-payments/internal/pkg/jwt"
	"storefront-payments/internal/usecase/commands"
	commandsmock "storefront-payments/tests/mock/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthCommandsTestSuite struct {
	suite.Suite
	ctx      context.Context
	mockCtrl *gomock.Controller
	sender   *commandsmock.MockLoginCodeSender
	clock    *clock.MockClock
	store    *session.Store
	jwt      *jwt.Service
	auth     commands.AuthCommands
}

func (s *AuthCommandsTestSuite) SetupTest() {
	cfg := config.NewTestConfig()
	s.ctx = context.Background()
	s.mockCtrl = gomock.NewController(s.T())
	s.sender = commandsmock.NewMockLoginCodeSender(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC))
	s.store = session.NewStore(s.clock)
	s.jwt = jwt.NewService(cfg.JWT.Secret, cfg.JWT.Duration, s.clock)
	s.auth = commands.NewAuthCommands(s.store, s.sender, s.jwt, cfg)
}

func (s *AuthCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthCommandsSuite(t *testing.T) {
	suite.Run(t, new(AuthCommandsTestSuite))
}

// requestCode issues a code for email and returns what was sent.
func (s *AuthCommandsTestSuite) requestCode(email, normalized string) string {
	var sent string
	s.sender.EXPECT().SendLoginCode(gomock.Any(), normalized, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, code string) error {
			sent = code
			return nil
		})
	s.Require().NoError(s.auth.RequestLoginCode(s.ctx, email))
	return sent
}

func (s *AuthCommandsTestSuite) TestRequestAndVerify() {
	code := s.requestCode(" Buyer@Example.com ", "buyer@example.com")
	s.Regexp(regexp.MustCompile(`^\d{6}$`), code)

	tok, err := s.auth.VerifyLoginCode(s.ctx, "buyer@example.com", code)

	s.Require().NoError(err)
	s.Equal("buyer@example.com", tok.Email)
	s.Equal(time.Hour, tok.ExpiresIn)
	claims, err := s.jwt.ValidateToken(tok.Token)
	s.Require().NoError(err)
	s.Equal("buyer@example.com", claims.Email)
}

func (s *AuthCommandsTestSuite) TestCodeIsSingleUse() {
	code := s.requestCode("buyer@example.com", "buyer@example.com")

	_, err := s.auth.VerifyLoginCode(s.ctx, "buyer@example.com", code)
	s.Require().NoError(err)

	_, err = s.auth.VerifyLoginCode(s.ctx, "buyer@example.com", code)
	s.ErrorIs(err, commands.ErrInvalidLoginCode)
}

func (s *AuthCommandsTestSuite) TestWrongCodeConsumesTheIssuedOne() {
	code := s.requestCode("buyer@example.com", "buyer@example.com")
	wrong := "000000"
	if code == wrong {
		wrong = "111111"
	}

	_, err := s.auth.VerifyLoginCode(s.ctx, "buyer@example.com", wrong)
	s.ErrorIs(err, commands.ErrInvalidLoginCode)

	_, err = s.auth.VerifyLoginCode(s.ctx, "buyer@example.com", code)
	s.ErrorIs(err, commands.ErrInvalidLoginCode)
}

func (s *AuthCommandsTestSuite) TestExpiredCode() {
	code := s.requestCode("buyer@example.com", "buyer@example.com")
	s.clock.Add(16 * time.Minute)

	_, err := s.auth.VerifyLoginCode(s.ctx, "buyer@example.com", code)

	s.ErrorIs(err, commands.ErrInvalidLoginCode)
}

func (s *AuthCommandsTestSuite) TestInvalidEmail() {
	for _, email := range []string{"", "not-an-email", "Buyer <buyer@example.com>"} {
		s.ErrorIs(s.auth.RequestLoginCode(s.ctx, email), commands.ErrInvalidEmail, email)

		_, err := s.auth.VerifyLoginCode(s.ctx, email, "123456")
		s.ErrorIs(err, commands.ErrInvalidEmail, email)
	}
}

func (s *AuthCommandsTestSuite) TestDeliveryFailureDiscardsCode() {
	var sent string
	s.sender.EXPECT().SendLoginCode(gomock.Any(), "buyer@example.com", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, code string) error {
			sent = code
			return assert.AnError
		})

	err := s.auth.RequestLoginCode(s.ctx, "buyer@example.com")
	s.ErrorIs(err, commands.ErrLoginCodeDelivery)
	s.Equal(0, s.store.Len())

	_, err = s.auth.VerifyLoginCode(s.ctx, "buyer@example.com", sent)
	s.ErrorIs(err, commands.ErrInvalidLoginCode)
}
