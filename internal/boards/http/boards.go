package http

import (
	"net/http"

	"github.com/aussiebroadwan/boards/internal/boards/service"
	"github.com/aussiebroadwan/boards/pkg/boardsdk"
	"github.com/aussiebroadwan/boards/pkg/httpx"
)

// BoardsHandler serves the /boards endpoints. All of them need a token and
// only ever see the caller's own boards.
type BoardsHandler struct {
	BoardService *service.BoardService
}

// HandleList handles GET /boards
//
//	@Summary		List boards
//	@Description	Returns the caller's boards newest first, each with its todos oldest first.
//	@Tags			Boards
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	boardsdk.BoardListResponse	"boards with todos"
//	@Failure		401	{object}	boardsdk.ErrorResponse		"missing or invalid token"
//	@Failure		500	{object}	boardsdk.ErrorResponse		"server error"
//	@Router			/boards [get].
func (h *BoardsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	boards, err := h.BoardService.List(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err, "Server error fetching boards")
		return
	}

	out := make([]boardsdk.BoardWithTodos, 0, len(boards))
	for _, b := range boards {
		out = append(out, toBoardWithTodos(b))
	}
	httpx.WriteJSON(w, http.StatusOK, boardsdk.BoardListResponse{Success: true, Boards: out})
}

// HandleGet handles GET /boards/{id}
//
//	@Summary		Get board
//	@Description	Returns one board with its todos.
//	@Tags			Boards
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string							true	"Board ID"
//	@Success		200	{object}	boardsdk.BoardDetailResponse	"board with todos"
//	@Failure		401	{object}	boardsdk.ErrorResponse			"missing or invalid token"
//	@Failure		404	{object}	boardsdk.ErrorResponse			"Board not found or unauthorized"
//	@Failure		500	{object}	boardsdk.ErrorResponse			"server error"
//	@Router			/boards/{id} [get].
func (h *BoardsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	b, err := h.BoardService.Get(r.Context(), userID, r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err, "Server error fetching board")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, boardsdk.BoardDetailResponse{Success: true, Board: toBoardWithTodos(b)})
}

// HandleCreate handles POST /boards
//
//	@Summary		Create board
//	@Description	Creates a board together with its first todo, atomically.
//	@Tags			Boards
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		boardsdk.CreateBoardRequest		true	"board_name and the first todo_title"
//	@Success		201		{object}	boardsdk.CreateBoardResponse	"board with its first todo"
//	@Failure		400		{object}	boardsdk.ErrorResponse			"validation errors"
//	@Failure		401		{object}	boardsdk.ErrorResponse			"missing or invalid token"
//	@Failure		500		{object}	boardsdk.ErrorResponse			"server error"
//	@Router			/boards [post].
func (h *BoardsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req boardsdk.CreateBoardRequest
	if !decodeBody(w, r, &req) {
		return
	}

	b, err := h.BoardService.Create(r.Context(), userID, req.BoardName, req.TodoTitle)
	if err != nil {
		writeServiceError(w, r, err, "Server error creating board")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, boardsdk.CreateBoardResponse{
		Success: true,
		Message: "Board created successfully",
		Board:   toBoardWithTodos(b),
	})
}

// HandleRename handles PUT /boards/{id}
//
//	@Summary		Rename board
//	@Tags			Boards
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string						true	"Board ID"
//	@Param			request	body		boardsdk.RenameBoardRequest	true	"new board_name"
//	@Success		200		{object}	boardsdk.BoardResponse		"renamed board"
//	@Failure		400		{object}	boardsdk.ErrorResponse		"validation errors"
//	@Failure		401		{object}	boardsdk.ErrorResponse		"missing or invalid token"
//	@Failure		404		{object}	boardsdk.ErrorResponse		"Board not found or unauthorized"
//	@Failure		500		{object}	boardsdk.ErrorResponse		"server error"
//	@Router			/boards/{id} [put].
func (h *BoardsHandler) HandleRename(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req boardsdk.RenameBoardRequest
	if !decodeBody(w, r, &req) {
		return
	}

	b, err := h.BoardService.Rename(r.Context(), userID, r.PathValue("id"), req.BoardName)
	if err != nil {
		writeServiceError(w, r, err, "Server error updating board")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, boardsdk.BoardResponse{
		Success: true,
		Message: "Board updated successfully",
		Board:   toBoard(b),
	})
}

// HandleSetCompletion handles PATCH /boards/{id}/complete
//
//	@Summary		Set board completion
//	@Description	Overrides the board's completion flag. The next change to one of its todos recomputes it.
//	@Tags			Boards
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string							true	"Board ID"
//	@Param			request	body		boardsdk.SetCompletionRequest	true	"is_completed"
//	@Success		200		{object}	boardsdk.BoardResponse			"updated board"
//	@Failure		400		{object}	boardsdk.ErrorResponse			"missing is_completed"
//	@Failure		401		{object}	boardsdk.ErrorResponse			"missing or invalid token"
//	@Failure		404		{object}	boardsdk.ErrorResponse			"Board not found or unauthorized"
//	@Failure		500		{object}	boardsdk.ErrorResponse			"server error"
//	@Router			/boards/{id}/complete [patch].
func (h *BoardsHandler) HandleSetCompletion(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	completed, ok := decodeCompletion(w, r)
	if !ok {
		return
	}

	b, err := h.BoardService.SetCompletion(r.Context(), userID, r.PathValue("id"), completed)
	if err != nil {
		writeServiceError(w, r, err, "Server error updating board completion")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, boardsdk.BoardResponse{
		Success: true,
		Message: "Board completion status updated",
		Board:   toBoard(b),
	})
}

// HandleDelete handles DELETE /boards/{id}
//
//	@Summary		Delete board
//	@Description	Deletes the board and all of its todos.
//	@Tags			Boards
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string						true	"Board ID"
//	@Success		200	{object}	boardsdk.MessageResponse	"deleted"
//	@Failure		401	{object}	boardsdk.ErrorResponse		"missing or invalid token"
//	@Failure		404	{object}	boardsdk.ErrorResponse		"Board not found or unauthorized"
//	@Failure		500	{object}	boardsdk.ErrorResponse		"server error"
//	@Router			/boards/{id} [delete].
func (h *BoardsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	if err := h.BoardService.Delete(r.Context(), userID, r.PathValue("id")); err != nil {
		writeServiceError(w, r, err, "Server error deleting board")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, boardsdk.MessageResponse{Success: true, Message: "Board deleted successfully"})
}
