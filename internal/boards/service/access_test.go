package service

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/boards/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	cred, err := f.access.Register(ctx, "  Ada Lovelace ", "ada@example.com", "password123")
	require.NoError(t, err)
	require.NotEmpty(t, cred.Token)
	require.Equal(t, "Ada Lovelace", cred.User.Name)
	require.Equal(t, "ada@example.com", cred.User.Email)
	require.WithinDuration(t, time.Now().Add(time.Hour), cred.ExpiresAt, 5*time.Second)

	stored, err := f.st.Users().GetUserByID(ctx, cred.User.ID)
	require.NoError(t, err)
	require.NotEqual(t, "password123", stored.PasswordHash)

	userID, err := f.access.VerifyToken(ctx, cred.Token)
	require.NoError(t, err)
	require.Equal(t, cred.User.ID, userID)

	login, err := f.access.Login(ctx, "ada@example.com", "password123")
	require.NoError(t, err)
	require.Equal(t, cred.User.ID, login.User.ID)

	userID, err = f.access.VerifyToken(ctx, login.Token)
	require.NoError(t, err)
	require.Equal(t, cred.User.ID, userID)
}

func TestRegisterValidation(t *testing.T) {
	f := newFixture(t)

	_, err := f.access.Register(context.Background(), "   ", "not-an-email", "12345")

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	require.Len(t, ve.Fields, 3)
	require.Equal(t, "Name is required", ve.Field("name"))
	require.Equal(t, "Please enter a valid email", ve.Field("email"))
	require.Equal(t, "Password must be at least 6 characters", ve.Field("password"))
}

func TestRegisterEmailFormats(t *testing.T) {
	f := newFixture(t)

	for _, email := range []string{
		"",
		"plain",
		"@example.com",
		"ada@",
		"ada@localhost",
		"Ada <ada@example.com>",
		" ada@example.com",
	} {
		_, err := f.access.Register(context.Background(), "Ada", email, "password123")
		var ve *ValidationError
		require.ErrorAs(t, err, &ve, "email %q", email)
		require.Equal(t, "Please enter a valid email", ve.Field("email"))
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	f.user(t, "dup@example.com")

	_, err := f.access.Register(ctx, "Again", "dup@example.com", "password456")
	require.ErrorIs(t, err, ErrEmailTaken)
	require.ErrorIs(t, err, ErrConflict)

	// Emails are compared as stored.
	_, err = f.access.Register(ctx, "Upper", "Dup@example.com", "password456")
	require.NoError(t, err)
}

func TestLoginFailuresAreIdentical(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.user(t, "known@example.com")

	_, wrongPassword := f.access.Login(ctx, "known@example.com", "not-the-password")
	_, unknownEmail := f.access.Login(ctx, "nobody@example.com", "password123")

	require.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	require.ErrorIs(t, unknownEmail, ErrInvalidCredentials)
	require.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

func TestLoginValidation(t *testing.T) {
	f := newFixture(t)

	_, err := f.access.Login(context.Background(), "nope", "")

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	require.Equal(t, "Please enter a valid email", ve.Field("email"))
	require.Equal(t, "Password is required", ve.Field("password"))
}

func TestVerifyTokenRejects(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	userID := f.user(t, "tok@example.com")

	sign := func(secret []byte, claims jwtx.Claims) string {
		s, err := jwtx.NewSignerHS256(secret)
		require.NoError(t, err)
		tok, err := s.Sign(claims)
		require.NoError(t, err)
		return tok
	}
	now := time.Now()
	otherSecret := []byte("another-secret-that-is-long-enough-to-use")

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"garbage", "not.a.jwt"},
		{"other secret", sign(otherSecret, jwtx.NewUserClaims(userID, "tok@example.com", time.Hour, testIssuer, now))},
		{"expired", sign(testSecret, jwtx.NewUserClaims(userID, "tok@example.com", time.Hour, testIssuer, now.Add(-2*time.Hour)))},
		{"wrong issuer", sign(testSecret, jwtx.NewUserClaims(userID, "tok@example.com", time.Hour, "someone-else", now))},
		{"no subject", sign(testSecret, jwtx.NewUserClaims("", "tok@example.com", time.Hour, testIssuer, now))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.access.VerifyToken(ctx, tt.token)
			require.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestDefaultTokenTTL(t *testing.T) {
	f := newFixture(t)
	f.access.TokenTTL = 0

	cred, err := f.access.Register(context.Background(), "Ttl", "ttl@example.com", "password123")
	require.NoError(t, err)
	require.WithinDuration(t, time.Now().Add(jwtx.DefaultTokenTTL), cred.ExpiresAt, 5*time.Second)
}
