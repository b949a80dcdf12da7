package commands

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"math/big"
	"net/mail"
	"strings"
	"time"

	"storefront-payments/internal/pkg/config"
	"storefront-payments/internal/pkg/errs"
	"storefront-payments/internal/pkg/jwt"
)

const loginCodeDigits = 6

var (
	ErrInvalidEmail         = errs.New("invalid email")
	ErrInvalidLoginCode     = errs.New("invalid or expired login code")
	ErrLoginCodeDelivery    = errs.New("login code delivery failed")
	ErrTokenGeneration      = errs.New("token generation failed")
	ErrAuthenticationFailed = errs.New("authentication failed")
)

type SessionToken struct {
	Token     string
	Email     string
	ExpiresIn time.Duration
}

type AuthCommands interface {
	// RequestLoginCode replaces any code previously issued for the email.
	RequestLoginCode(ctx context.Context, email string) error
	// VerifyLoginCode consumes the code: a second attempt always fails.
	VerifyLoginCode(ctx context.Context, email, code string) (*SessionToken, error)
}

type authCommandsImpl struct {
	store      LoginCodeStore
	sender     LoginCodeSender
	jwtService *jwt.Service
	codeTTL    time.Duration
}

func NewAuthCommands(store LoginCodeStore, sender LoginCodeSender, jwtService *jwt.Service, cfg config.Config) AuthCommands {
	return &authCommandsImpl{
		store:      store,
		sender:     sender,
		jwtService: jwtService,
		codeTTL:    cfg.JWT.LoginCodeTTL,
	}
}

func (a *authCommandsImpl) RequestLoginCode(ctx context.Context, email string) error {
	normalized, err := normalizeEmail(email)
	if err != nil {
		return err
	}

	code, err := newLoginCode()
	if err != nil {
		return errs.Mark(err, ErrTokenGeneration)
	}

	a.store.Put(normalized, code, a.codeTTL)
	if err := a.sender.SendLoginCode(ctx, normalized, code); err != nil {
		a.store.Take(normalized)
		return errs.Mark(err, ErrLoginCodeDelivery)
	}
	return nil
}

func (a *authCommandsImpl) VerifyLoginCode(_ context.Context, email, code string) (*SessionToken, error) {
	normalized, err := normalizeEmail(email)
	if err != nil {
		return nil, err
	}

	stored, ok := a.store.Take(normalized)
	if !ok || subtle.ConstantTimeCompare([]byte(stored), []byte(strings.TrimSpace(code))) != 1 {
		return nil, ErrInvalidLoginCode
	}

	token, err := a.jwtService.GenerateToken(normalized)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	return &SessionToken{
		Token:     token,
		Email:     normalized,
		ExpiresIn: a.jwtService.TokenDuration(),
	}, nil
}

func normalizeEmail(email string) (string, error) {
	addr, err := mail.ParseAddress(strings.TrimSpace(email))
	if err != nil || addr.Name != "" {
		return "", ErrInvalidEmail
	}
	return strings.ToLower(addr.Address), nil
}

func newLoginCode() (string, error) {
	limit := big.NewInt(1_000_000)
	n, err := rand.Int(rand.Reader, limit)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*d", loginCodeDigits, n.Int64()), nil
}
