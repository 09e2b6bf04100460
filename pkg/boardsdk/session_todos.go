package boardsdk

import (
	"context"
	"net/http"
	"net/url"
)

// CreateTodo adds a todo to one of the user's boards.
func (s *Session) CreateTodo(ctx context.Context, boardID, todoTitle string) (*Todo, error) {
	resp, err := call[TodoResponse](ctx, s.client, http.MethodPost, "/todos", s.Token(),
		CreateTodoRequest{BoardID: boardID, TodoTitle: todoTitle}, http.StatusCreated)
	if err != nil {
		return nil, err
	}
	return &resp.Todo, nil
}

func (s *Session) RenameTodo(ctx context.Context, todoID, todoTitle string) (*Todo, error) {
	resp, err := call[TodoResponse](ctx, s.client, http.MethodPut, todoPath(todoID), s.Token(),
		RenameTodoRequest{TodoTitle: todoTitle}, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &resp.Todo, nil
}

// SetTodoCompletion marks a todo and returns it with the parent board's
// recomputed completion.
func (s *Session) SetTodoCompletion(ctx context.Context, todoID string, completed bool) (*TodoCompletionResponse, error) {
	return call[TodoCompletionResponse](ctx, s.client, http.MethodPatch, todoPath(todoID)+"/complete", s.Token(),
		SetCompletionRequest{IsCompleted: &completed}, http.StatusOK)
}

func (s *Session) DeleteTodo(ctx context.Context, todoID string) error {
	_, err := call[MessageResponse](ctx, s.client, http.MethodDelete, todoPath(todoID), s.Token(), nil, http.StatusOK)
	return err
}

func todoPath(id string) string { return "/todos/" + url.PathEscape(id) }
