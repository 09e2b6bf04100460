package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/boards/internal/boards/service"
	"github.com/aussiebroadwan/boards/pkg/boardsdk"
	"github.com/aussiebroadwan/boards/pkg/httpx"
	"github.com/aussiebroadwan/boards/pkg/slogx"
)

const (
	msgBadJSON            = "Invalid JSON in request body"
	msgBoardNotFound      = "Board not found or unauthorized"
	msgTodoNotFound       = "Todo not found or unauthorized"
	msgEmailTaken         = "User already exists with this email"
	msgInvalidCredentials = "Invalid credentials"
	msgCompletionRequired = "is_completed must be a boolean"
)

// writeServiceError maps a service error onto the response envelope.
// Anything unexpected is logged and answered with fallback as a 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	var ve *service.ValidationError
	switch {
	case errors.As(err, &ve):
		fields := make([]httpx.FieldError, 0, len(ve.Fields))
		for _, f := range ve.Fields {
			fields = append(fields, httpx.FieldError{Path: f.Path, Msg: f.Msg})
		}
		httpx.WriteFieldErrors(w, fields)
	case errors.Is(err, service.ErrBoardNotFound):
		httpx.WriteError(w, http.StatusNotFound, msgBoardNotFound)
	case errors.Is(err, service.ErrTodoNotFound):
		httpx.WriteError(w, http.StatusNotFound, msgTodoNotFound)
	case errors.Is(err, service.ErrEmailTaken):
		httpx.WriteError(w, http.StatusBadRequest, msgEmailTaken)
	case errors.Is(err, service.ErrInvalidCredentials):
		httpx.WriteError(w, http.StatusBadRequest, msgInvalidCredentials)
	default:
		slogx.FromContext(r.Context()).Error(fallback, "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, fallback)
	}
}

// decodeBody decodes the JSON body into dst, answering 400 itself on failure.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := httpx.DecodeJSON(w, r, dst); err != nil {
		slogx.FromContext(r.Context()).Debug("bad request body", "error", err)
		httpx.WriteError(w, http.StatusBadRequest, msgBadJSON)
		return false
	}
	return true
}

// decodeCompletion reads {"is_completed": bool}; the field is required.
func decodeCompletion(w http.ResponseWriter, r *http.Request) (bool, bool) {
	var req boardsdk.SetCompletionRequest
	if !decodeBody(w, r, &req) {
		return false, false
	}
	if req.IsCompleted == nil {
		httpx.WriteFieldErrors(w, []httpx.FieldError{{Path: "is_completed", Msg: msgCompletionRequired}})
		return false, false
	}
	return *req.IsCompleted, true
}

// currentUser is the id AuthnMiddleware put on the request.
func currentUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	id, ok := httpx.UserIDFromContext(r.Context())
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "No token, authorization denied")
	}
	return id, ok
}
