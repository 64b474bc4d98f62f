package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/remindme-app/remindme/internal/auth"
	"github.com/remindme-app/remindme/internal/config"
	"github.com/remindme-app/remindme/internal/db"
)

// Routes builds the /api router: public auth endpoints plus
// token-protected reminder and notification endpoints.
func Routes(cfg config.Config) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(corsMiddleware)

	r.Post("/api/auth/register", handleRegister(cfg))
	r.Post("/api/auth/login", handleLogin(cfg))

	r.Group(func(r chi.Router) {
		r.Use(auth.Middleware(cfg.JWTSecret))
		r.Get("/api/reminders", handleListReminders)
		r.Post("/api/reminders", handleCreateReminder)
		r.Put("/api/reminders", handleUpdateReminder)
		r.Delete("/api/reminders", handleDeleteReminder)
		r.Post("/api/notifications", handleSendNotification(cfg))
	})

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		if r.Method == http.MethodOptions {
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, "+auth.TokenHeader)
			w.Header().Set("Access-Control-Max-Age", "86400")
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// Reminder payloads

type reminderPayload struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Frequency   string `json:"frequency"`
	IsActive    bool   `json:"is_active"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at,omitempty"`
}

func toReminderPayload(r db.Reminder) reminderPayload {
	p := reminderPayload{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Date:        r.Date,
		Time:        r.Time,
		Frequency:   r.Frequency,
		IsActive:    r.IsActive,
		CreatedAt:   r.CreatedAt.Format(time.RFC3339),
	}
	if !r.UpdatedAt.IsZero() {
		p.UpdatedAt = r.UpdatedAt.Format(time.RFC3339)
	}
	return p
}

func validDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

func validTime(s string) bool {
	_, err := time.Parse("15:04", s)
	return err == nil
}

func validFrequency(s string) bool {
	switch s {
	case "once", "daily", "weekly", "monthly", "yearly":
		return true
	}
	return false
}

// Handlers

func handleListReminders(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r)
	search := r.URL.Query().Get("search")

	reminders, err := db.ListReminders(userID, search)
	if err != nil {
		log.Printf("error listing reminders: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	payload := make([]reminderPayload, 0, len(reminders))
	for _, rem := range reminders {
		payload = append(payload, toReminderPayload(rem))
	}
	writeJSON(w, http.StatusOK, payload)
}

func handleCreateReminder(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r)

	var req struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Date        string `json:"date"`
		Time        string `json:"time"`
		Frequency   string `json:"frequency"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	req.Title = strings.TrimSpace(req.Title)
	switch {
	case req.Title == "" || len(req.Title) > 255:
		writeError(w, http.StatusBadRequest, "title must be between 1 and 255 characters")
		return
	case !validDate(req.Date):
		writeError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	case !validTime(req.Time):
		writeError(w, http.StatusBadRequest, "time must be HH:MM")
		return
	case !validFrequency(req.Frequency):
		writeError(w, http.StatusBadRequest, "frequency must be one of once, daily, weekly, monthly, yearly")
		return
	}

	reminder, err := db.CreateReminder(userID, req.Title, req.Description, req.Date, req.Time, req.Frequency)
	if err != nil {
		log.Printf("error creating reminder: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusCreated, toReminderPayload(*reminder))
}

func handleUpdateReminder(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r)

	id, err := readIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Reminder id is required")
		return
	}

	var req struct {
		Title       *string `json:"title"`
		Description *string `json:"description"`
		Date        *string `json:"date"`
		Time        *string `json:"time"`
		Frequency   *string `json:"frequency"`
		IsActive    *bool   `json:"is_active"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	if req.Title != nil {
		trimmed := strings.TrimSpace(*req.Title)
		if trimmed == "" || len(trimmed) > 255 {
			writeError(w, http.StatusBadRequest, "title must be between 1 and 255 characters")
			return
		}
		req.Title = &trimmed
	}
	if req.Date != nil && !validDate(*req.Date) {
		writeError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}
	if req.Time != nil && !validTime(*req.Time) {
		writeError(w, http.StatusBadRequest, "time must be HH:MM")
		return
	}
	if req.Frequency != nil && !validFrequency(*req.Frequency) {
		writeError(w, http.StatusBadRequest, "frequency must be one of once, daily, weekly, monthly, yearly")
		return
	}

	patch := db.ReminderPatch{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Time:        req.Time,
		Frequency:   req.Frequency,
		IsActive:    req.IsActive,
	}
	if patch == (db.ReminderPatch{}) {
		writeError(w, http.StatusBadRequest, "No fields to update")
		return
	}

	reminder, err := db.UpdateReminder(userID, id, patch)
	if errors.Is(err, db.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Reminder not found")
		return
	}
	if err != nil {
		log.Printf("error updating reminder: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, toReminderPayload(*reminder))
}

func handleDeleteReminder(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r)

	id, err := readIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Reminder id is required")
		return
	}

	err = db.SoftDeleteReminder(userID, id)
	if errors.Is(err, db.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Reminder not found")
		return
	}
	if err != nil {
		log.Printf("error deleting reminder: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Reminder deleted successfully"})
}

func readIDParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.URL.Query().Get("id"), 10, 64)
}
