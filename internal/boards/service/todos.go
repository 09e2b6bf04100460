package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aussiebroadwan/boards/internal/boards/domain"
	"github.com/aussiebroadwan/boards/internal/boards/store"
	"github.com/aussiebroadwan/boards/pkg/idx"
)

// TodoService owns todo operations and keeps the parent board's completion
// flag in step: every add, toggle and delete recomputes it in the same
// transaction.
type TodoService struct {
	Store store.Store
}

// Create appends an incomplete todo to a board the user owns. A completed
// board becomes incomplete again.
func (s *TodoService) Create(ctx context.Context, userID, boardID, title string) (domain.Todo, error) {
	ctx, span := startSpan(ctx, "todos.Create", attrUser(userID), attrBoard(boardID))
	t, err := s.create(ctx, userID, boardID, title)
	endSpan(span, err)
	return t, err
}

func (s *TodoService) create(ctx context.Context, userID, boardID, title string) (domain.Todo, error) {
	title = strings.TrimSpace(title)
	id, idErr := idx.Parse(boardID)

	var v validator
	v.check(idErr == nil, "board_id", msgBoardIDRequired)
	v.check(title != "", "todo_title", msgTodoTitleRequired)
	if err := v.err(); err != nil {
		return domain.Todo{}, err
	}

	now := timestamp()
	t := domain.Todo{
		ID:        idx.NewAt(now).String(),
		BoardID:   id.String(),
		Title:     title,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Todos().CreateTodo(ctx, userID, t); err != nil {
			return err
		}
		_, err := tx.Boards().RecomputeCompletion(ctx, t.BoardID, now)
		return err
	})
	if err != nil {
		return domain.Todo{}, mapStoreErr(err, ErrBoardNotFound, "create todo")
	}
	return t, nil
}

// Rename changes only the title and updated_at.
func (s *TodoService) Rename(ctx context.Context, userID, todoID, title string) (domain.Todo, error) {
	title = strings.TrimSpace(title)

	var v validator
	v.check(title != "", "todo_title", msgTodoTitleRequired)
	if err := v.err(); err != nil {
		return domain.Todo{}, err
	}

	id, err := parseID(todoID, ErrTodoNotFound)
	if err != nil {
		return domain.Todo{}, err
	}

	t, err := s.Store.Todos().RenameTodo(ctx, userID, id, title, timestamp())
	if err != nil {
		return domain.Todo{}, mapStoreErr(err, ErrTodoNotFound, "rename todo")
	}
	return t, nil
}

// SetCompletion toggles a todo and returns it with the board's recomputed
// completion flag.
func (s *TodoService) SetCompletion(ctx context.Context, userID, todoID string, completed bool) (domain.Todo, bool, error) {
	ctx, span := startSpan(ctx, "todos.SetCompletion", attrUser(userID), attrTodo(todoID))
	t, boardCompleted, err := s.setCompletion(ctx, userID, todoID, completed)
	endSpan(span, err)
	return t, boardCompleted, err
}

func (s *TodoService) setCompletion(ctx context.Context, userID, todoID string, completed bool) (domain.Todo, bool, error) {
	id, err := parseID(todoID, ErrTodoNotFound)
	if err != nil {
		return domain.Todo{}, false, err
	}

	var (
		t              domain.Todo
		boardCompleted bool
	)
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		now := timestamp()

		var err error
		t, err = tx.Todos().SetTodoCompletion(ctx, userID, id, completed, now)
		if err != nil {
			return err
		}
		boardCompleted, err = tx.Boards().RecomputeCompletion(ctx, t.BoardID, now)
		if err != nil {
			return fmt.Errorf("recompute completion: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.Todo{}, false, mapStoreErr(err, ErrTodoNotFound, "set todo completion")
	}
	return t, boardCompleted, nil
}

// Delete removes a todo. A board left without todos is incomplete.
func (s *TodoService) Delete(ctx context.Context, userID, todoID string) error {
	ctx, span := startSpan(ctx, "todos.Delete", attrUser(userID), attrTodo(todoID))
	err := s.delete(ctx, userID, todoID)
	endSpan(span, err)
	return err
}

func (s *TodoService) delete(ctx context.Context, userID, todoID string) error {
	id, err := parseID(todoID, ErrTodoNotFound)
	if err != nil {
		return err
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		boardID, err := tx.Todos().DeleteTodo(ctx, userID, id)
		if err != nil {
			return err
		}
		if _, err := tx.Boards().RecomputeCompletion(ctx, boardID, timestamp()); err != nil {
			return fmt.Errorf("recompute completion: %w", err)
		}
		return nil
	})
	if errors.Is(err, store.ErrNotFound) {
		return ErrTodoNotFound
	}
	if err != nil {
		return fmt.Errorf("delete todo: %w", err)
	}
	return nil
}
