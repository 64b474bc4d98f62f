package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"net/mail"
	"strings"
	"time"

	"github.com/remindme-app/remindme/internal/auth"
	"github.com/remindme-app/remindme/internal/config"
	"github.com/remindme-app/remindme/internal/db"
)

type userPayload struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	FullName  string `json:"full_name"`
	CreatedAt string `json:"created_at"`
}

type authResponse struct {
	Token string      `json:"token"`
	User  userPayload `json:"user"`
}

func toUserPayload(u db.User) userPayload {
	return userPayload{
		ID:        u.ID,
		Email:     u.Email,
		FullName:  u.FullName,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}

func validEmail(s string) bool {
	_, err := mail.ParseAddress(s)
	return err == nil
}

func handleRegister(cfg config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Email    string `json:"email"`
			Password string `json:"password"`
			FullName string `json:"full_name"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON")
			return
		}

		req.Email = strings.TrimSpace(strings.ToLower(req.Email))
		req.FullName = strings.TrimSpace(req.FullName)
		switch {
		case !validEmail(req.Email):
			writeError(w, http.StatusBadRequest, "A valid email is required")
			return
		case len(req.Password) < 6:
			writeError(w, http.StatusBadRequest, "Password must be at least 6 characters")
			return
		case req.FullName == "":
			writeError(w, http.StatusBadRequest, "Full name is required")
			return
		}

		if _, err := db.GetUserByEmail(req.Email); err == nil {
			writeError(w, http.StatusBadRequest, "User with this email already exists")
			return
		} else if !errors.Is(err, db.ErrNotFound) {
			log.Printf("error checking user: %v", err)
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			log.Printf("error hashing password: %v", err)
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		user, err := db.CreateUser(req.Email, hash, req.FullName)
		if err != nil {
			log.Printf("error creating user: %v", err)
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		token, err := auth.IssueToken(cfg.JWTSecret, user.ID, user.Email)
		if err != nil {
			log.Printf("error issuing token: %v", err)
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		writeJSON(w, http.StatusCreated, authResponse{Token: token, User: toUserPayload(*user)})
	}
}

func handleLogin(cfg config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON")
			return
		}

		req.Email = strings.TrimSpace(strings.ToLower(req.Email))

		user, err := db.GetUserByEmail(req.Email)
		if errors.Is(err, db.ErrNotFound) {
			writeError(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		if err != nil {
			log.Printf("error querying user: %v", err)
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
			writeError(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}

		token, err := auth.IssueToken(cfg.JWTSecret, user.ID, user.Email)
		if err != nil {
			log.Printf("error issuing token: %v", err)
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		writeJSON(w, http.StatusOK, authResponse{Token: token, User: toUserPayload(*user)})
	}
}
