package http

import (
	"net/http"

	"github.com/aussiebroadwan/boards/internal/boards/service"
	"github.com/aussiebroadwan/boards/pkg/boardsdk"
	"github.com/aussiebroadwan/boards/pkg/httpx"
)

// AuthHandler serves registration and login.
type AuthHandler struct {
	AccessService *service.AccessService
}

// HandleRegister handles POST /auth/register
//
//	@Summary		Register
//	@Description	Creates an account and returns a bearer token for it. All failing fields are reported together.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		boardsdk.RegisterRequest	true	"name, email, password (6+ characters)"
//	@Success		201		{object}	boardsdk.AuthResponse		"token and user"
//	@Failure		400		{object}	boardsdk.ErrorResponse		"validation errors, or email already registered"
//	@Failure		429		{object}	boardsdk.ErrorResponse		"rate limited"
//	@Failure		500		{object}	boardsdk.ErrorResponse		"server error"
//	@Router			/auth/register [post].
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req boardsdk.RegisterRequest
	if !decodeBody(w, r, &req) {
		return
	}

	cred, err := h.AccessService.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, err, "Server error during registration")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, boardsdk.AuthResponse{
		Success: true,
		Message: "Successfully registered",
		Token:   cred.Token,
		User:    toUser(cred.User),
	})
}

// HandleLogin handles POST /auth/login
//
//	@Summary		Login
//	@Description	Exchanges email and password for a bearer token. Unknown email and wrong password give the same answer.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		boardsdk.LoginRequest	true	"email, password"
//	@Success		200		{object}	boardsdk.AuthResponse	"token and user"
//	@Failure		400		{object}	boardsdk.ErrorResponse	"validation errors, or Invalid credentials"
//	@Failure		429		{object}	boardsdk.ErrorResponse	"rate limited"
//	@Failure		500		{object}	boardsdk.ErrorResponse	"server error"
//	@Router			/auth/login [post].
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req boardsdk.LoginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	cred, err := h.AccessService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, err, "Server error during login")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, boardsdk.AuthResponse{
		Success: true,
		Message: "Successfully logged in",
		Token:   cred.Token,
		User:    toUser(cred.User),
	})
}
