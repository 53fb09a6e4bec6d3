package httpserver

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	authdomain "kairo/backend/internal/domain/auth"
)

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Username string `json:"username"`
		Password string `json:"password"`
		Role     string `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	user, err := s.authService.Register(r.Context(), payload.Username, payload.Password, payload.Role)
	if err != nil {
		switch {
		case errors.Is(err, authdomain.ErrUsernameExists):
			writeError(w, http.StatusConflict, err.Error())
		case errors.Is(err, authdomain.ErrInvalidRole):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			writeError(w, http.StatusBadRequest, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"user": user})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	token, user, err := s.authService.Login(r.Context(), authdomain.Credentials{
		Username: payload.Username,
		Password: payload.Password,
	})
	if err != nil {
		if errors.Is(err, authdomain.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, authdomain.ErrInvalidCredentials.Error())
			return
		}
		// Infrastructure faults never leak detail to the caller.
		log.Printf("login failed for request from %s: %v", r.RemoteAddr, err)
		writeError(w, http.StatusInternalServerError, "login failed")
		return
	}

	s.session.Attach(w, token)
	writeJSON(w, http.StatusOK, map[string]any{"user": user})
}

// handleLogout clears the session cookie. It succeeds whether or not a
// session is currently present.
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	s.session.Clear(w)
	writeJSON(w, http.StatusOK, map[string]string{"message": "logged out"})
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	role, ok := roleFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"role": role})
}

func (s *Server) handleVerifyUser(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	if err := s.authService.VerifyAccount(r.Context(), payload.ID); err != nil {
		if errors.Is(err, authdomain.ErrUserNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		log.Printf("account verification failed for %q: %v", payload.ID, err)
		writeError(w, http.StatusInternalServerError, "verification failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "user verified"})
}

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	var verified *bool
	if raw := r.URL.Query().Get("verified"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid verified filter")
			return
		}
		verified = &v
	}

	users, err := s.authService.ListUsers(r.Context(), verified)
	if err != nil {
		log.Printf("listing users failed: %v", err)
		writeError(w, http.StatusInternalServerError, "listing users failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"users": users})
}
