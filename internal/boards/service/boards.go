package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/boards/internal/boards/domain"
	"github.com/aussiebroadwan/boards/internal/boards/store"
	"github.com/aussiebroadwan/boards/pkg/idx"
	"github.com/aussiebroadwan/boards/pkg/slogx"
)

// BoardService owns board level operations. Every method is scoped to the
// calling user; another user's board looks exactly like a missing one.
type BoardService struct {
	Store store.Store
}

// List returns the user's boards newest first, each with its todos oldest
// first.
func (s *BoardService) List(ctx context.Context, userID string) ([]domain.Board, error) {
	boards, err := s.Store.Boards().ListBoardsWithTodos(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list boards: %w", err)
	}
	return boards, nil
}

// Get returns one board with its todos.
func (s *BoardService) Get(ctx context.Context, userID, boardID string) (domain.Board, error) {
	id, err := parseID(boardID, ErrBoardNotFound)
	if err != nil {
		return domain.Board{}, err
	}

	// One transaction so the completion flag and the todos agree.
	var b domain.Board
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		var err error
		b, err = tx.Boards().GetBoard(ctx, userID, id)
		if err != nil {
			return mapStoreErr(err, ErrBoardNotFound, "get board")
		}
		b.Todos, err = tx.Todos().ListTodosByBoard(ctx, id)
		if err != nil {
			return fmt.Errorf("list todos: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.Board{}, err
	}
	return b, nil
}

// Create makes a board together with its first todo. Either both exist
// afterwards or neither does.
func (s *BoardService) Create(ctx context.Context, userID, boardName, todoTitle string) (domain.Board, error) {
	ctx, span := startSpan(ctx, "boards.Create", attrUser(userID))
	b, err := s.create(ctx, userID, boardName, todoTitle)
	endSpan(span, err)
	return b, err
}

func (s *BoardService) create(ctx context.Context, userID, boardName, todoTitle string) (domain.Board, error) {
	boardName = strings.TrimSpace(boardName)
	todoTitle = strings.TrimSpace(todoTitle)

	var v validator
	v.check(boardName != "", "board_name", msgBoardNameRequired)
	v.check(todoTitle != "", "todo_title", msgInitialTodo)
	if err := v.err(); err != nil {
		return domain.Board{}, err
	}

	now := timestamp()
	b := domain.Board{
		ID:        idx.NewAt(now).String(),
		UserID:    userID,
		Name:      boardName,
		CreatedAt: now,
		UpdatedAt: now,
	}
	t := domain.Todo{
		ID:        idx.NewAt(now).String(),
		BoardID:   b.ID,
		Title:     todoTitle,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Boards().CreateBoard(ctx, b); err != nil {
			return fmt.Errorf("insert board: %w", err)
		}
		if err := tx.Todos().CreateTodo(ctx, userID, t); err != nil {
			return fmt.Errorf("insert first todo: %w", err)
		}
		completed, err := tx.Boards().RecomputeCompletion(ctx, b.ID, now)
		if err != nil {
			return fmt.Errorf("recompute completion: %w", err)
		}
		b.IsCompleted = completed
		return nil
	})
	if err != nil {
		return domain.Board{}, fmt.Errorf("create board: %w", err)
	}

	b.Todos = []domain.Todo{t}
	slogx.FromContext(ctx).Info("board created", slog.String("board_id", b.ID))
	return b, nil
}

// Rename changes only the name and updated_at.
func (s *BoardService) Rename(ctx context.Context, userID, boardID, name string) (domain.Board, error) {
	name = strings.TrimSpace(name)

	var v validator
	v.check(name != "", "board_name", msgBoardNameRequired)
	if err := v.err(); err != nil {
		return domain.Board{}, err
	}

	id, err := parseID(boardID, ErrBoardNotFound)
	if err != nil {
		return domain.Board{}, err
	}

	b, err := s.Store.Boards().RenameBoard(ctx, userID, id, name, timestamp())
	if err != nil {
		return domain.Board{}, mapStoreErr(err, ErrBoardNotFound, "rename board")
	}
	return b, nil
}

// SetCompletion stores completed as given. It holds until the next todo on
// the board is added, toggled or deleted, which recomputes the flag.
func (s *BoardService) SetCompletion(ctx context.Context, userID, boardID string, completed bool) (domain.Board, error) {
	id, err := parseID(boardID, ErrBoardNotFound)
	if err != nil {
		return domain.Board{}, err
	}

	b, err := s.Store.Boards().SetBoardCompletion(ctx, userID, id, completed, timestamp())
	if err != nil {
		return domain.Board{}, mapStoreErr(err, ErrBoardNotFound, "set board completion")
	}
	return b, nil
}

// Delete removes the board and all of its todos.
func (s *BoardService) Delete(ctx context.Context, userID, boardID string) error {
	ctx, span := startSpan(ctx, "boards.Delete", attrUser(userID), attrBoard(boardID))
	err := s.delete(ctx, userID, boardID)
	endSpan(span, err)
	return err
}

func (s *BoardService) delete(ctx context.Context, userID, boardID string) error {
	id, err := parseID(boardID, ErrBoardNotFound)
	if err != nil {
		return err
	}

	if err := s.Store.Boards().DeleteBoard(ctx, userID, id); err != nil {
		return mapStoreErr(err, ErrBoardNotFound, "delete board")
	}

	slogx.FromContext(ctx).Info("board deleted", slog.String("board_id", id))
	return nil
}

// parseID normalises a client supplied id. Anything that is not an id can't
// name a row, so it is reported as notFound.
func parseID(raw string, notFound error) (string, error) {
	id, err := idx.Parse(raw)
	if err != nil {
		return "", notFound
	}
	return id.String(), nil
}

func mapStoreErr(err, notFound error, op string) error {
	if errors.Is(err, store.ErrNotFound) {
		return notFound
	}
	return fmt.Errorf("%s: %w", op, err)
}

// timestamp is the current time at the precision the store keeps, so what a
// write returns matches what later reads give back.
func timestamp() time.Time { return time.Now().UTC().Truncate(time.Millisecond) }
