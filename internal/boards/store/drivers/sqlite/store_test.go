package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/aussiebroadwan/boards/internal/boards/domain"
	"github.com/aussiebroadwan/boards/internal/boards/store"
	"github.com/aussiebroadwan/boards/internal/boards/store/drivers/sqlite"
	"github.com/aussiebroadwan/boards/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	st, err := sqlite.NewStore(sqlite.DSN(filepath.Join(t.TempDir(), "boards.db")))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

var epoch = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func seedUser(t *testing.T, st store.Store, email string) domain.User {
	t.Helper()
	u := domain.User{
		ID:           idx.New().String(),
		Name:         "Test",
		Email:        email,
		PasswordHash: "$argon2id$fake",
		CreatedAt:    epoch,
		UpdatedAt:    epoch,
	}
	require.NoError(t, st.Users().CreateUser(context.Background(), u))
	return u
}

func seedBoard(t *testing.T, st store.Store, userID, name string, at time.Time) domain.Board {
	t.Helper()
	b := domain.Board{
		ID:        idx.NewAt(at).String(),
		UserID:    userID,
		Name:      name,
		CreatedAt: at,
		UpdatedAt: at,
	}
	require.NoError(t, st.Boards().CreateBoard(context.Background(), b))
	return b
}

func seedTodo(t *testing.T, st store.Store, userID, boardID, title string, at time.Time) domain.Todo {
	t.Helper()
	td := domain.Todo{
		ID:        idx.NewAt(at).String(),
		BoardID:   boardID,
		Title:     title,
		CreatedAt: at,
		UpdatedAt: at,
	}
	require.NoError(t, st.Todos().CreateTodo(context.Background(), userID, td))
	return td
}

func TestApplyMigrationsIsIdempotent(t *testing.T) {
	st := newTestStore(t)
	require.NoError(t, st.ApplyMigrations())
	require.NoError(t, st.Ping(context.Background()))
}

func TestUsers(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	u := seedUser(t, st, "ada@example.com")

	got, err := st.Users().GetUserByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	require.Equal(t, u, got)

	got, err = st.Users().GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, u.Email, got.Email)

	t.Run("duplicate email", func(t *testing.T) {
		dup := u
		dup.ID = idx.New().String()
		require.ErrorIs(t, st.Users().CreateUser(ctx, dup), store.ErrAlreadyExists)
	})

	t.Run("email is case sensitive", func(t *testing.T) {
		_, err := st.Users().GetUserByEmail(ctx, "ADA@example.com")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := st.Users().GetUserByID(ctx, idx.New().String())
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestListBoardsWithTodosOrdering(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	u := seedUser(t, st, "ada@example.com")

	older := seedBoard(t, st, u.ID, "Older", epoch)
	newer := seedBoard(t, st, u.ID, "Newer", epoch.Add(time.Hour))
	empty := seedBoard(t, st, u.ID, "Empty", epoch.Add(2*time.Hour))

	first := seedTodo(t, st, u.ID, older.ID, "first", epoch.Add(time.Minute))
	second := seedTodo(t, st, u.ID, older.ID, "second", epoch.Add(2*time.Minute))
	seedTodo(t, st, u.ID, newer.ID, "only", epoch.Add(3*time.Minute))

	boards, err := st.Boards().ListBoardsWithTodos(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, boards, 3)

	require.Equal(t, []string{empty.ID, newer.ID, older.ID}, []string{boards[0].ID, boards[1].ID, boards[2].ID})

	require.NotNil(t, boards[0].Todos)
	require.Empty(t, boards[0].Todos)
	require.Len(t, boards[1].Todos, 1)
	require.Equal(t, []string{first.ID, second.ID}, []string{boards[2].Todos[0].ID, boards[2].Todos[1].ID})
	require.Equal(t, epoch.Add(time.Minute), boards[2].Todos[0].CreatedAt)
}

func TestListBoardsWithTodosEmpty(t *testing.T) {
	st := newTestStore(t)
	u := seedUser(t, st, "ada@example.com")

	boards, err := st.Boards().ListBoardsWithTodos(context.Background(), u.ID)
	require.NoError(t, err)
	require.NotNil(t, boards)
	require.Empty(t, boards)
}

func TestBoardOwnership(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	owner := seedUser(t, st, "owner@example.com")
	other := seedUser(t, st, "other@example.com")
	b := seedBoard(t, st, owner.ID, "Mine", epoch)

	_, err := st.Boards().GetBoard(ctx, other.ID, b.ID)
	require.ErrorIs(t, err, store.ErrNotFound)

	_, err = st.Boards().RenameBoard(ctx, other.ID, b.ID, "Stolen", epoch)
	require.ErrorIs(t, err, store.ErrNotFound)

	_, err = st.Boards().SetBoardCompletion(ctx, other.ID, b.ID, true, epoch)
	require.ErrorIs(t, err, store.ErrNotFound)

	require.ErrorIs(t, st.Boards().DeleteBoard(ctx, other.ID, b.ID), store.ErrNotFound)

	require.ErrorIs(t, st.Todos().CreateTodo(ctx, other.ID, domain.Todo{
		ID: idx.New().String(), BoardID: b.ID, Title: "x", CreatedAt: epoch, UpdatedAt: epoch,
	}), store.ErrNotFound)

	got, err := st.Boards().GetBoard(ctx, owner.ID, b.ID)
	require.NoError(t, err)
	require.Equal(t, "Mine", got.Name)
	require.False(t, got.IsCompleted)
}

func TestRenameAndSetBoardCompletion(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	u := seedUser(t, st, "ada@example.com")
	b := seedBoard(t, st, u.ID, "Work", epoch)

	later := epoch.Add(time.Hour)
	renamed, err := st.Boards().RenameBoard(ctx, u.ID, b.ID, "Home", later)
	require.NoError(t, err)
	require.Equal(t, "Home", renamed.Name)
	require.Equal(t, epoch, renamed.CreatedAt)
	require.Equal(t, later, renamed.UpdatedAt)

	done, err := st.Boards().SetBoardCompletion(ctx, u.ID, b.ID, true, later)
	require.NoError(t, err)
	require.True(t, done.IsCompleted)
}

func TestRecomputeCompletion(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	u := seedUser(t, st, "ada@example.com")
	b := seedBoard(t, st, u.ID, "Work", epoch)

	completed, err := st.Boards().RecomputeCompletion(ctx, b.ID, epoch)
	require.NoError(t, err)
	require.False(t, completed, "a board without todos is not complete")

	a := seedTodo(t, st, u.ID, b.ID, "a", epoch)
	c := seedTodo(t, st, u.ID, b.ID, "c", epoch)

	_, err = st.Todos().SetTodoCompletion(ctx, u.ID, a.ID, true, epoch)
	require.NoError(t, err)
	completed, err = st.Boards().RecomputeCompletion(ctx, b.ID, epoch)
	require.NoError(t, err)
	require.False(t, completed)

	_, err = st.Todos().SetTodoCompletion(ctx, u.ID, c.ID, true, epoch)
	require.NoError(t, err)
	completed, err = st.Boards().RecomputeCompletion(ctx, b.ID, epoch)
	require.NoError(t, err)
	require.True(t, completed)

	got, err := st.Boards().GetBoard(ctx, u.ID, b.ID)
	require.NoError(t, err)
	require.True(t, got.IsCompleted, "recompute persists the flag")

	_, err = st.Boards().RecomputeCompletion(ctx, idx.New().String(), epoch)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestTodoOwnershipAndDelete(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	owner := seedUser(t, st, "owner@example.com")
	other := seedUser(t, st, "other@example.com")
	b := seedBoard(t, st, owner.ID, "Work", epoch)
	td := seedTodo(t, st, owner.ID, b.ID, "Draft", epoch)

	_, err := st.Todos().GetTodo(ctx, other.ID, td.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
	_, err = st.Todos().RenameTodo(ctx, other.ID, td.ID, "x", epoch)
	require.ErrorIs(t, err, store.ErrNotFound)
	_, err = st.Todos().SetTodoCompletion(ctx, other.ID, td.ID, true, epoch)
	require.ErrorIs(t, err, store.ErrNotFound)
	_, err = st.Todos().DeleteTodo(ctx, other.ID, td.ID)
	require.ErrorIs(t, err, store.ErrNotFound)

	renamed, err := st.Todos().RenameTodo(ctx, owner.ID, td.ID, "Final", epoch.Add(time.Second))
	require.NoError(t, err)
	require.Equal(t, "Final", renamed.Title)
	require.Equal(t, b.ID, renamed.BoardID)

	boardID, err := st.Todos().DeleteTodo(ctx, owner.ID, td.ID)
	require.NoError(t, err)
	require.Equal(t, b.ID, boardID)

	todos, err := st.Todos().ListTodosByBoard(ctx, b.ID)
	require.NoError(t, err)
	require.Empty(t, todos)
}

func TestDeleteBoardCascades(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	u := seedUser(t, st, "ada@example.com")
	b := seedBoard(t, st, u.ID, "Work", epoch)
	td := seedTodo(t, st, u.ID, b.ID, "Draft", epoch)

	require.NoError(t, st.Boards().DeleteBoard(ctx, u.ID, b.ID))

	_, err := st.Todos().GetTodo(ctx, u.ID, td.ID)
	require.ErrorIs(t, err, store.ErrNotFound)

	todos, err := st.Todos().ListTodosByBoard(ctx, b.ID)
	require.NoError(t, err)
	require.Empty(t, todos)
}

func TestWithTxRollsBack(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	u := seedUser(t, st, "ada@example.com")
	boardID := idx.New().String()

	err := st.WithTx(ctx, func(tx store.Tx) error {
		require.NoError(t, tx.Boards().CreateBoard(ctx, domain.Board{
			ID: boardID, UserID: u.ID, Name: "Ghost", CreatedAt: epoch, UpdatedAt: epoch,
		}))
		// Board ids that don't exist make CreateTodo fail, aborting the tx.
		return tx.Todos().CreateTodo(ctx, u.ID, domain.Todo{
			ID: idx.New().String(), BoardID: idx.New().String(), Title: "x", CreatedAt: epoch, UpdatedAt: epoch,
		})
	})
	require.ErrorIs(t, err, store.ErrNotFound)

	_, err = st.Boards().GetBoard(ctx, u.ID, boardID)
	require.ErrorIs(t, err, store.ErrNotFound)

	t.Run("nested tx is refused", func(t *testing.T) {
		err := st.WithTx(ctx, func(tx store.Tx) error {
			return tx.WithTx(ctx, func(store.Tx) error { return nil })
		})
		require.Error(t, err)
	})
}

func TestRecomputeCompletionAgreesWithDomain(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	u := seedUser(t, st, "grace@example.com")
	b := seedBoard(t, st, u.ID, "Work", epoch)

	var todos []domain.Todo
	for _, title := range []string{"a", "b", "c"} {
		todos = append(todos, seedTodo(t, st, u.ID, b.ID, title, epoch))
	}

	// Walk every completion pattern of the three todos.
	for mask := range 1 << len(todos) {
		for i, td := range todos {
			_, err := st.Todos().SetTodoCompletion(ctx, u.ID, td.ID, mask&(1<<i) != 0, epoch)
			require.NoError(t, err)
		}

		completed, err := st.Boards().RecomputeCompletion(ctx, b.ID, epoch)
		require.NoError(t, err)

		listed, err := st.Todos().ListTodosByBoard(ctx, b.ID)
		require.NoError(t, err)
		require.Equal(t, domain.DeriveCompletion(listed), completed, "mask %03b", mask)
	}
}
