package http

import (
	"net/http"

	"github.com/aussiebroadwan/boards/internal/boards/service"
	"github.com/aussiebroadwan/boards/pkg/boardsdk"
	"github.com/aussiebroadwan/boards/pkg/httpx"
)

// TodosHandler serves the /todos endpoints. A todo is reachable only through
// a board the caller owns.
type TodosHandler struct {
	TodoService *service.TodoService
}

// HandleCreate handles POST /todos
//
//	@Summary		Create todo
//	@Description	Adds an incomplete todo to a board. The board's completion is recomputed, so a completed board becomes incomplete.
//	@Tags			Todos
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		boardsdk.CreateTodoRequest	true	"board_id and todo_title"
//	@Success		201		{object}	boardsdk.TodoResponse		"created todo"
//	@Failure		400		{object}	boardsdk.ErrorResponse		"validation errors"
//	@Failure		401		{object}	boardsdk.ErrorResponse		"missing or invalid token"
//	@Failure		404		{object}	boardsdk.ErrorResponse		"Board not found or unauthorized"
//	@Failure		500		{object}	boardsdk.ErrorResponse		"server error"
//	@Router			/todos [post].
func (h *TodosHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req boardsdk.CreateTodoRequest
	if !decodeBody(w, r, &req) {
		return
	}

	t, err := h.TodoService.Create(r.Context(), userID, req.BoardID, req.TodoTitle)
	if err != nil {
		writeServiceError(w, r, err, "Server error creating todo")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, boardsdk.TodoResponse{
		Success: true,
		Message: "Todo created successfully",
		Todo:    toTodo(t),
	})
}

// HandleRename handles PUT /todos/{id}
//
//	@Summary		Rename todo
//	@Tags			Todos
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string						true	"Todo ID"
//	@Param			request	body		boardsdk.RenameTodoRequest	true	"new todo_title"
//	@Success		200		{object}	boardsdk.TodoResponse		"renamed todo"
//	@Failure		400		{object}	boardsdk.ErrorResponse		"validation errors"
//	@Failure		401		{object}	boardsdk.ErrorResponse		"missing or invalid token"
//	@Failure		404		{object}	boardsdk.ErrorResponse		"Todo not found or unauthorized"
//	@Failure		500		{object}	boardsdk.ErrorResponse		"server error"
//	@Router			/todos/{id} [put].
func (h *TodosHandler) HandleRename(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req boardsdk.RenameTodoRequest
	if !decodeBody(w, r, &req) {
		return
	}

	t, err := h.TodoService.Rename(r.Context(), userID, r.PathValue("id"), req.TodoTitle)
	if err != nil {
		writeServiceError(w, r, err, "Server error updating todo")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, boardsdk.TodoResponse{
		Success: true,
		Message: "Todo updated successfully",
		Todo:    toTodo(t),
	})
}

// HandleSetCompletion handles PATCH /todos/{id}/complete
//
//	@Summary		Set todo completion
//	@Description	Marks a todo complete or incomplete and recomputes the board in the same transaction.
//	@Tags			Todos
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string							true	"Todo ID"
//	@Param			request	body		boardsdk.SetCompletionRequest	true	"is_completed"
//	@Success		200		{object}	boardsdk.TodoCompletionResponse	"todo and boardCompleted"
//	@Failure		400		{object}	boardsdk.ErrorResponse			"missing is_completed"
//	@Failure		401		{object}	boardsdk.ErrorResponse			"missing or invalid token"
//	@Failure		404		{object}	boardsdk.ErrorResponse			"Todo not found or unauthorized"
//	@Failure		500		{object}	boardsdk.ErrorResponse			"server error"
//	@Router			/todos/{id}/complete [patch].
func (h *TodosHandler) HandleSetCompletion(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	completed, ok := decodeCompletion(w, r)
	if !ok {
		return
	}

	t, boardCompleted, err := h.TodoService.SetCompletion(r.Context(), userID, r.PathValue("id"), completed)
	if err != nil {
		writeServiceError(w, r, err, "Server error updating todo completion")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, boardsdk.TodoCompletionResponse{
		Success:        true,
		Message:        "Todo completion status updated",
		Todo:           toTodo(t),
		BoardCompleted: boardCompleted,
	})
}

// HandleDelete handles DELETE /todos/{id}
//
//	@Summary		Delete todo
//	@Description	Deletes a todo and recomputes its board. A board left empty is incomplete.
//	@Tags			Todos
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string						true	"Todo ID"
//	@Success		200	{object}	boardsdk.MessageResponse	"deleted"
//	@Failure		401	{object}	boardsdk.ErrorResponse		"missing or invalid token"
//	@Failure		404	{object}	boardsdk.ErrorResponse		"Todo not found or unauthorized"
//	@Failure		500	{object}	boardsdk.ErrorResponse		"server error"
//	@Router			/todos/{id} [delete].
func (h *TodosHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	if err := h.TodoService.Delete(r.Context(), userID, r.PathValue("id")); err != nil {
		writeServiceError(w, r, err, "Server error deleting todo")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, boardsdk.MessageResponse{Success: true, Message: "Todo deleted successfully"})
}
