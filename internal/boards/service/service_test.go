package service

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/boards/internal/boards/domain"
	"github.com/aussiebroadwan/boards/internal/boards/store"
	"github.com/aussiebroadwan/boards/internal/boards/store/drivers/sqlite"
	"github.com/aussiebroadwan/boards/pkg/cryptox"
	"github.com/aussiebroadwan/boards/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

const testIssuer = "boards-test"

var testSecret = []byte(strings.Repeat("s", jwtx.MinSecretLength))

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	st, err := sqlite.NewStore(sqlite.DSN(filepath.Join(t.TempDir(), "boards.db")))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func newAccessService(t *testing.T, st store.Store) *AccessService {
	t.Helper()

	signer, err := jwtx.NewSignerHS256(testSecret)
	require.NoError(t, err)

	return &AccessService{
		Store:    st,
		Hasher:   cryptox.NewPasswordHasher("test-pepper"),
		Signer:   signer,
		Verifier: jwtx.NewVerifierHS256(testSecret, testIssuer),
		Issuer:   testIssuer,
		TokenTTL: time.Hour,
	}
}

type fixture struct {
	st     *sqlite.Store
	access *AccessService
	boards *BoardService
	todos  *TodoService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	st := newTestStore(t)
	return &fixture{
		st:     st,
		access: newAccessService(t, st),
		boards: &BoardService{Store: st},
		todos:  &TodoService{Store: st},
	}
}

func (f *fixture) user(t *testing.T, email string) string {
	t.Helper()
	cred, err := f.access.Register(context.Background(), "Test User", email, "password123")
	require.NoError(t, err)
	return cred.User.ID
}

// requireDerived checks every board of userID carries the completion its
// todos imply.
func (f *fixture) requireDerived(t *testing.T, userID string) {
	t.Helper()
	boards, err := f.boards.List(context.Background(), userID)
	require.NoError(t, err)
	for _, b := range boards {
		require.Equal(t, domain.DeriveCompletion(b.Todos), b.IsCompleted, "board %q", b.Name)
	}
}

func (f *fixture) board(t *testing.T, userID, boardID string) domain.Board {
	t.Helper()
	b, err := f.boards.Get(context.Background(), userID, boardID)
	require.NoError(t, err)
	return b
}
