package boardsdk

import (
	"context"
	"net/http"
	"net/url"
)

// ListBoards returns the user's boards, newest first, each with its todos.
func (s *Session) ListBoards(ctx context.Context) ([]BoardWithTodos, error) {
	resp, err := call[BoardListResponse](ctx, s.client, http.MethodGet, "/boards", s.Token(), nil, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return resp.Boards, nil
}

// GetBoard returns one board with its todos.
func (s *Session) GetBoard(ctx context.Context, boardID string) (*BoardWithTodos, error) {
	resp, err := call[BoardDetailResponse](ctx, s.client, http.MethodGet, boardPath(boardID), s.Token(), nil, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &resp.Board, nil
}

// CreateBoard creates a board with its first todo.
func (s *Session) CreateBoard(ctx context.Context, boardName, todoTitle string) (*BoardWithTodos, error) {
	resp, err := call[CreateBoardResponse](ctx, s.client, http.MethodPost, "/boards", s.Token(),
		CreateBoardRequest{BoardName: boardName, TodoTitle: todoTitle}, http.StatusCreated)
	if err != nil {
		return nil, err
	}
	return &resp.Board, nil
}

func (s *Session) RenameBoard(ctx context.Context, boardID, boardName string) (*Board, error) {
	resp, err := call[BoardResponse](ctx, s.client, http.MethodPut, boardPath(boardID), s.Token(),
		RenameBoardRequest{BoardName: boardName}, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &resp.Board, nil
}

// SetBoardCompletion overrides the board flag without touching its todos.
func (s *Session) SetBoardCompletion(ctx context.Context, boardID string, completed bool) (*Board, error) {
	resp, err := call[BoardResponse](ctx, s.client, http.MethodPatch, boardPath(boardID)+"/complete", s.Token(),
		SetCompletionRequest{IsCompleted: &completed}, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &resp.Board, nil
}

// DeleteBoard deletes a board and all of its todos.
func (s *Session) DeleteBoard(ctx context.Context, boardID string) error {
	_, err := call[MessageResponse](ctx, s.client, http.MethodDelete, boardPath(boardID), s.Token(), nil, http.StatusOK)
	return err
}

func boardPath(id string) string { return "/boards/" + url.PathEscape(id) }
