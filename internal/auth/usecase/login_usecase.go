// Package usecase implements the mock login flow that mints auth tokens.
package usecase

import (
	"context"
	"crypto/subtle"
	"time"

	"github.com/allisson/go-pwdhash"

	authDomain "github.com/allisson/tickets/internal/auth/domain"
	apperrors "github.com/allisson/tickets/internal/errors"
)

// LoginInput holds the submitted credentials.
type LoginInput struct {
	Username string
	Password string
}

// LoginUseCase authenticates credentials and issues auth tokens.
type LoginUseCase interface {
	Login(ctx context.Context, input LoginInput) (authDomain.Token, error)
}

// LoginConfig describes the single account accepted by the mock login.
type LoginConfig struct {
	Username string
	Password string
	UserID   uint64
	TokenTTL time.Duration
}

type loginUseCase struct {
	username     string
	passwordHash string
	userID       uint64
	tokenTTL     time.Duration
	hasher       *pwdhash.PasswordHasher
	now          func() time.Time
}

// NewLoginUseCase hashes the configured password once so that every login attempt
// pays the same argon2id verification cost.
func NewLoginUseCase(cfg LoginConfig) (LoginUseCase, error) {
	hasher, err := pwdhash.New(pwdhash.WithPolicy(pwdhash.PolicyInteractive))
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to create password hasher")
	}

	passwordHash, err := hasher.Hash([]byte(cfg.Password))
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to hash login password")
	}

	return &loginUseCase{
		username:     cfg.Username,
		passwordHash: passwordHash,
		userID:       cfg.UserID,
		tokenTTL:     cfg.TokenTTL,
		hasher:       hasher,
		now:          time.Now,
	}, nil
}

// Login returns a token for the configured user or ErrLoginFailed.
func (l *loginUseCase) Login(_ context.Context, input LoginInput) (authDomain.Token, error) {
	usernameOK := subtle.ConstantTimeCompare([]byte(input.Username), []byte(l.username)) == 1

	passwordOK, err := l.hasher.Verify([]byte(input.Password), l.passwordHash)
	if err != nil {
		return authDomain.Token{}, apperrors.Wrap(err, "failed to verify login password")
	}

	if !usernameOK || !passwordOK {
		return authDomain.Token{}, authDomain.ErrLoginFailed
	}

	return authDomain.NewToken(l.userID, l.now().Add(l.tokenTTL)), nil
}
