package api

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/remindme-app/remindme/internal/config"
	"github.com/remindme-app/remindme/internal/mail"
)

func handleSendNotification(cfg config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ToEmail             string `json:"to_email"`
			ReminderTitle       string `json:"reminder_title"`
			ReminderDate        string `json:"reminder_date"`
			ReminderTime        string `json:"reminder_time"`
			ReminderDescription string `json:"reminder_description"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON")
			return
		}

		req.ToEmail = strings.TrimSpace(req.ToEmail)
		switch {
		case !validEmail(req.ToEmail):
			writeError(w, http.StatusBadRequest, "A valid recipient email is required")
			return
		case strings.TrimSpace(req.ReminderTitle) == "":
			writeError(w, http.StatusBadRequest, "Reminder title is required")
			return
		}

		err := mail.SendReminderNotification(cfg.Email, req.ToEmail, mail.ReminderSummary{
			Title:       req.ReminderTitle,
			Date:        req.ReminderDate,
			Time:        req.ReminderTime,
			Description: req.ReminderDescription,
		})
		if err != nil {
			log.Printf("error sending notification to %s: %v", req.ToEmail, err)
			writeError(w, http.StatusInternalServerError, "Failed to send notification")
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{"message": "Notification sent successfully"})
	}
}
