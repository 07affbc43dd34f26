package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/topraga-donus/backend/internal/domain"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles POST /api/auth/login. On success it returns the session
// token the client must present as a bearer credential.
func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "validation_error", "malformed request body")
		return
	}

	sess, err := s.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			respondError(w, http.StatusUnauthorized, "invalid_credentials", "invalid email or password")
			return
		}
		respondError(w, http.StatusInternalServerError, "internal_error", err.Error())
		return
	}
	respondJSON(w, http.StatusOK, sess)
}

// GetSession handles GET /api/auth/session: it validates the bearer token
// and echoes the session so the client can restore a signed-in state.
func (s *Server) GetSession(w http.ResponseWriter, r *http.Request) {
	token, ok := bearerToken(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "no_session", "missing or malformed bearer token")
		return
	}

	sess, err := s.auth.Session(r.Context(), token)
	if err != nil {
		if errors.Is(err, domain.ErrNoSession) {
			respondError(w, http.StatusUnauthorized, "no_session", "session not found or expired")
			return
		}
		respondError(w, http.StatusInternalServerError, "internal_error", err.Error())
		return
	}
	respondJSON(w, http.StatusOK, sess)
}

// Logout handles POST /api/auth/logout. Revoking an unknown token is not an
// error; the end state is the same either way.
func (s *Server) Logout(w http.ResponseWriter, r *http.Request) {
	token, ok := bearerToken(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "no_session", "missing or malformed bearer token")
		return
	}
	if err := s.auth.Logout(r.Context(), token); err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// RequireSession gates a subtree behind a valid session token.
func (s *Server) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			respondError(w, http.StatusUnauthorized, "no_session", "missing or malformed bearer token")
			return
		}
		if _, err := s.auth.Session(r.Context(), token); err != nil {
			if errors.Is(err, domain.ErrNoSession) {
				respondError(w, http.StatusUnauthorized, "no_session", "session not found or expired")
				return
			}
			respondError(w, http.StatusInternalServerError, "internal_error", err.Error())
			return
		}
		next.ServeHTTP(w, r)
	})
}

// bearerToken extracts the session token from the Authorization header.
func bearerToken(r *http.Request) (uuid.UUID, bool) {
	const prefix = "Bearer "
	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, prefix) {
		return uuid.Nil, false
	}
	token, err := uuid.Parse(strings.TrimPrefix(auth, prefix))
	if err != nil {
		return uuid.Nil, false
	}
	return token, true
}
