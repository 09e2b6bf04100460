package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/boards/internal/boards/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers implement this.
// Sub-repositories are reached through methods so a Tx can hand out the same
// repos bound to the transaction, and a Tx cannot start another one.
type Store interface {
	Users() Users
	Boards() Boards
	Todos() Todos

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx runs fn in a transaction, committing when fn returns nil and
	// rolling back otherwise.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// CreateUser inserts u. A taken email gives ErrAlreadyExists.
	CreateUser(ctx context.Context, u domain.User) error

	// GetUserByEmail is an exact, case sensitive match.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	GetUserByID(ctx context.Context, id string) (domain.User, error)
}

// Boards methods that take a userID only see boards owned by that user. A
// board owned by someone else is indistinguishable from a missing one: both
// are ErrNotFound.
type Boards interface {
	CreateBoard(ctx context.Context, b domain.Board) error

	GetBoard(ctx context.Context, userID, boardID string) (domain.Board, error)

	// ListBoardsWithTodos returns every board of userID, newest first, each
	// with its todos oldest first.
	ListBoardsWithTodos(ctx context.Context, userID string) ([]domain.Board, error)

	RenameBoard(ctx context.Context, userID, boardID, name string, now time.Time) (domain.Board, error)

	// SetBoardCompletion stores completed as is, without looking at todos.
	SetBoardCompletion(ctx context.Context, userID, boardID string, completed bool, now time.Time) (domain.Board, error)

	// DeleteBoard removes the board and, by cascade, its todos.
	DeleteBoard(ctx context.Context, userID, boardID string) error

	// RecomputeCompletion sets is_completed from the board's current todos
	// and returns the new value. Ownership must already have been checked.
	RecomputeCompletion(ctx context.Context, boardID string, now time.Time) (bool, error)
}

// Todos are owned through their board; userID is matched against the
// board's owner.
type Todos interface {
	// CreateTodo inserts t into board t.BoardID if that board belongs to
	// userID, else ErrNotFound.
	CreateTodo(ctx context.Context, userID string, t domain.Todo) error

	GetTodo(ctx context.Context, userID, todoID string) (domain.Todo, error)

	RenameTodo(ctx context.Context, userID, todoID, title string, now time.Time) (domain.Todo, error)

	SetTodoCompletion(ctx context.Context, userID, todoID string, completed bool, now time.Time) (domain.Todo, error)

	// DeleteTodo removes the todo and returns the id of the board it was on.
	DeleteTodo(ctx context.Context, userID, todoID string) (boardID string, err error)

	// ListTodosByBoard returns the board's todos oldest first.
	ListTodosByBoard(ctx context.Context, boardID string) ([]domain.Todo, error)
}
