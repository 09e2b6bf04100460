package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/boards/internal/boards/domain"
	"github.com/aussiebroadwan/boards/internal/boards/store"
	"github.com/aussiebroadwan/boards/internal/boards/store/drivers/sqlite/gen"
)

type boardsRepo struct {
	q *gen.Queries
}

func (r *boardsRepo) CreateBoard(ctx context.Context, b domain.Board) error {
	return r.q.CreateBoard(ctx, gen.CreateBoardParams{
		ID:          b.ID,
		UserID:      b.UserID,
		BoardName:   b.Name,
		IsCompleted: b.IsCompleted,
		CreatedAt:   toMillis(b.CreatedAt),
		UpdatedAt:   toMillis(b.UpdatedAt),
	})
}

func (r *boardsRepo) GetBoard(ctx context.Context, userID, boardID string) (domain.Board, error) {
	row, err := r.q.GetBoardForUser(ctx, gen.GetBoardForUserParams{ID: boardID, UserID: userID})
	if err != nil {
		return domain.Board{}, mapNotFound(err)
	}
	return mapBoard(row), nil
}

// ListBoardsWithTodos folds the board/todo join back into boards. Rows come
// grouped by board in output order, so a change of board id starts a new one.
func (r *boardsRepo) ListBoardsWithTodos(ctx context.Context, userID string) ([]domain.Board, error) {
	rows, err := r.q.ListBoardsWithTodos(ctx, userID)
	if err != nil {
		return nil, err
	}

	boards := make([]domain.Board, 0)
	for _, row := range rows {
		if n := len(boards); n == 0 || boards[n-1].ID != row.ID {
			boards = append(boards, domain.Board{
				ID:          row.ID,
				UserID:      row.UserID,
				Name:        row.BoardName,
				IsCompleted: row.IsCompleted,
				CreatedAt:   fromMillis(row.CreatedAt),
				UpdatedAt:   fromMillis(row.UpdatedAt),
				Todos:       make([]domain.Todo, 0),
			})
		}

		if !row.TodoID.Valid {
			continue
		}

		b := &boards[len(boards)-1]
		b.Todos = append(b.Todos, domain.Todo{
			ID:          row.TodoID.String,
			BoardID:     row.ID,
			Title:       row.TodoTitle.String,
			IsCompleted: row.TodoIsCompleted.Bool,
			CreatedAt:   fromMillis(row.TodoCreatedAt.Int64),
			UpdatedAt:   fromMillis(row.TodoUpdatedAt.Int64),
		})
	}

	return boards, nil
}

func (r *boardsRepo) RenameBoard(ctx context.Context, userID, boardID, name string, now time.Time) (domain.Board, error) {
	row, err := r.q.RenameBoard(ctx, gen.RenameBoardParams{
		BoardName: name,
		UpdatedAt: toMillis(now),
		ID:        boardID,
		UserID:    userID,
	})
	if err != nil {
		return domain.Board{}, mapNotFound(err)
	}
	return mapBoard(row), nil
}

func (r *boardsRepo) SetBoardCompletion(ctx context.Context, userID, boardID string, completed bool, now time.Time) (domain.Board, error) {
	row, err := r.q.SetBoardCompletion(ctx, gen.SetBoardCompletionParams{
		IsCompleted: completed,
		UpdatedAt:   toMillis(now),
		ID:          boardID,
		UserID:      userID,
	})
	if err != nil {
		return domain.Board{}, mapNotFound(err)
	}
	return mapBoard(row), nil
}

func (r *boardsRepo) DeleteBoard(ctx context.Context, userID, boardID string) error {
	n, err := r.q.DeleteBoard(ctx, gen.DeleteBoardParams{ID: boardID, UserID: userID})
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *boardsRepo) RecomputeCompletion(ctx context.Context, boardID string, now time.Time) (bool, error) {
	completed, err := r.q.RecomputeBoardCompletion(ctx, gen.RecomputeBoardCompletionParams{
		UpdatedAt: toMillis(now),
		ID:        boardID,
	})
	if err != nil {
		return false, mapNotFound(err)
	}
	return completed, nil
}
