package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/aussiebroadwan/boards/internal/boards/domain"
	"github.com/aussiebroadwan/boards/internal/boards/store"
	"github.com/aussiebroadwan/boards/pkg/cryptox"
	"github.com/aussiebroadwan/boards/pkg/idx"
	"github.com/aussiebroadwan/boards/pkg/jwtx"
	"github.com/aussiebroadwan/boards/pkg/slogx"
)

// AccessService registers users, exchanges credentials for bearer tokens and
// verifies those tokens on every protected request.
type AccessService struct {
	Store    store.Store
	Hasher   *cryptox.PasswordHasher
	Signer   jwtx.Signer
	Verifier jwtx.Verifier
	Issuer   string
	TokenTTL time.Duration

	dummyOnce sync.Once
	dummyHash string
}

// Register creates an account and logs it straight in.
func (s *AccessService) Register(ctx context.Context, name, email, password string) (*domain.Credential, error) {
	ctx, span := startSpan(ctx, "access.Register")
	cred, err := s.register(ctx, name, email, password)
	endSpan(span, err)
	return cred, err
}

func (s *AccessService) register(ctx context.Context, name, email, password string) (*domain.Credential, error) {
	name = strings.TrimSpace(name)

	var v validator
	v.check(name != "", "name", msgNameRequired)
	v.check(validEmail(email), "email", msgInvalidEmail)
	v.check(validPassword(password), "password", msgPasswordTooShort)
	if err := v.err(); err != nil {
		return nil, err
	}

	hash, err := s.Hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := timestamp()
	u := domain.User{
		ID:           idx.NewAt(now).String(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// The UNIQUE constraint decides; there is no lookup first that two
	// concurrent registrations could both pass.
	if err := s.Store.Users().CreateUser(ctx, u); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	slogx.FromContext(ctx).Info("user registered", slog.String("user_id", u.ID))
	return s.issue(u, now)
}

// Login checks email and password. An unknown email and a wrong password
// both give ErrInvalidCredentials after roughly the same amount of work.
func (s *AccessService) Login(ctx context.Context, email, password string) (*domain.Credential, error) {
	ctx, span := startSpan(ctx, "access.Login")
	cred, err := s.login(ctx, email, password)
	endSpan(span, err)
	return cred, err
}

func (s *AccessService) login(ctx context.Context, email, password string) (*domain.Credential, error) {
	l := slogx.FromContext(ctx)

	var v validator
	v.check(validEmail(email), "email", msgInvalidEmail)
	v.check(password != "", "password", msgPasswordRequired)
	if err := v.err(); err != nil {
		return nil, err
	}

	u, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			_ = s.Hasher.Verify(password, s.dummy())
			l.Info("login failed", slog.String("reason", "unknown_email"))
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	if err := s.Hasher.Verify(password, u.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			l.Info("login failed", slog.String("reason", "bad_password"), slog.String("user_id", u.ID))
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("verify password for %s: %w", u.ID, err)
	}

	return s.issue(u, timestamp())
}

// VerifyToken returns the user id a token was issued to.
func (s *AccessService) VerifyToken(_ context.Context, token string) (string, error) {
	if token == "" {
		return "", ErrInvalidToken
	}
	claims, err := s.Verifier.Verify(token)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	return claims.UserID(), nil
}

func (s *AccessService) issue(u domain.User, now time.Time) (*domain.Credential, error) {
	ttl := s.TokenTTL
	if ttl <= 0 {
		ttl = jwtx.DefaultTokenTTL
	}

	claims := jwtx.NewUserClaims(u.ID, u.Email, ttl, s.Issuer, now)
	token, err := s.Signer.Sign(claims)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	return &domain.Credential{
		Token:     token,
		ExpiresAt: claims.ExpiresAt.Time,
		User:      u,
	}, nil
}

// dummy is a real hash of a random password, made with the same hasher so
// verifying against it costs the same as verifying a stored hash.
func (s *AccessService) dummy() string {
	s.dummyOnce.Do(func() {
		pw, err := cryptox.GenerateToken(cryptox.TokenSize128)
		if err == nil {
			s.dummyHash, err = s.Hasher.Hash(pw)
		}
		if err != nil {
			// Verify rejects this without hashing; timing is lost but the
			// answer is still ErrInvalidCredentials.
			s.dummyHash = "$argon2id$v=19$m=19456,t=2,p=1$$"
		}
	})
	return s.dummyHash
}
