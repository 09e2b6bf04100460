package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/boards/internal/boards/domain"
	"github.com/aussiebroadwan/boards/internal/boards/store"
	"github.com/aussiebroadwan/boards/internal/boards/store/drivers/sqlite/gen"
)

type todosRepo struct {
	q *gen.Queries
}

// CreateTodo inserts through a SELECT on the owner's board, so a board that
// is missing or not owned by userID inserts nothing.
func (r *todosRepo) CreateTodo(ctx context.Context, userID string, t domain.Todo) error {
	n, err := r.q.CreateTodoForUser(ctx, gen.CreateTodoForUserParams{
		ID:          t.ID,
		TodoTitle:   t.Title,
		IsCompleted: t.IsCompleted,
		CreatedAt:   toMillis(t.CreatedAt),
		UpdatedAt:   toMillis(t.UpdatedAt),
		BoardID:     t.BoardID,
		UserID:      userID,
	})
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *todosRepo) GetTodo(ctx context.Context, userID, todoID string) (domain.Todo, error) {
	row, err := r.q.GetTodoForUser(ctx, gen.GetTodoForUserParams{ID: todoID, UserID: userID})
	if err != nil {
		return domain.Todo{}, mapNotFound(err)
	}
	return mapTodo(row), nil
}

func (r *todosRepo) RenameTodo(ctx context.Context, userID, todoID, title string, now time.Time) (domain.Todo, error) {
	row, err := r.q.RenameTodo(ctx, gen.RenameTodoParams{
		TodoTitle: title,
		UpdatedAt: toMillis(now),
		ID:        todoID,
		UserID:    userID,
	})
	if err != nil {
		return domain.Todo{}, mapNotFound(err)
	}
	return mapTodo(row), nil
}

func (r *todosRepo) SetTodoCompletion(ctx context.Context, userID, todoID string, completed bool, now time.Time) (domain.Todo, error) {
	row, err := r.q.SetTodoCompletion(ctx, gen.SetTodoCompletionParams{
		IsCompleted: completed,
		UpdatedAt:   toMillis(now),
		ID:          todoID,
		UserID:      userID,
	})
	if err != nil {
		return domain.Todo{}, mapNotFound(err)
	}
	return mapTodo(row), nil
}

func (r *todosRepo) DeleteTodo(ctx context.Context, userID, todoID string) (string, error) {
	boardID, err := r.q.DeleteTodo(ctx, gen.DeleteTodoParams{ID: todoID, UserID: userID})
	if err != nil {
		return "", mapNotFound(err)
	}
	return boardID, nil
}

func (r *todosRepo) ListTodosByBoard(ctx context.Context, boardID string) ([]domain.Todo, error) {
	rows, err := r.q.ListTodosByBoard(ctx, boardID)
	if err != nil {
		return nil, err
	}

	todos := make([]domain.Todo, 0, len(rows))
	for _, row := range rows {
		todos = append(todos, mapTodo(row))
	}
	return todos, nil
}
