package http

import (
	"github.com/aussiebroadwan/boards/internal/boards/domain"
	"github.com/aussiebroadwan/boards/pkg/boardsdk"
)

func toUser(u domain.User) boardsdk.User {
	return boardsdk.User{ID: u.ID, Name: u.Name, Email: u.Email}
}

func toBoard(b domain.Board) boardsdk.Board {
	return boardsdk.Board{
		ID:          b.ID,
		UserID:      b.UserID,
		BoardName:   b.Name,
		IsCompleted: b.IsCompleted,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

// toBoardWithTodos always yields a non-nil Todos so it encodes as [].
func toBoardWithTodos(b domain.Board) boardsdk.BoardWithTodos {
	todos := make([]boardsdk.Todo, 0, len(b.Todos))
	for _, t := range b.Todos {
		todos = append(todos, toTodo(t))
	}
	return boardsdk.BoardWithTodos{Board: toBoard(b), Todos: todos}
}

func toTodo(t domain.Todo) boardsdk.Todo {
	return boardsdk.Todo{
		ID:          t.ID,
		BoardID:     t.BoardID,
		TodoTitle:   t.Title,
		IsCompleted: t.IsCompleted,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}
