package mail

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"net/http"
	"net/smtp"
	"strings"

	"github.com/yuin/goldmark"

	"github.com/remindme-app/remindme/internal/config"
)

// ReminderSummary is the reminder content carried by a notification email.
type ReminderSummary struct {
	Title       string
	Date        string
	Time        string
	Description string
}

// ErrNotConfigured is returned when neither Resend nor SMTP delivery is
// set up.
var ErrNotConfigured = errors.New("email delivery is not configured")

type resendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// SendReminderNotification emails a reminder summary to the recipient,
// via SMTP when enabled and the Resend API otherwise.
func SendReminderNotification(ecfg config.EmailConfig, to string, summary ReminderSummary) error {
	subject := "Reminder: " + summary.Title
	body := renderBody(summary)

	if ecfg.SMTPEnabled {
		return sendViaSMTP(ecfg, to, subject, body)
	}
	if ecfg.ResendAPIKey != "" {
		return sendViaResend(ecfg, to, subject, body)
	}
	return ErrNotConfigured
}

// renderBody builds the HTML email. The description is treated as
// markdown.
func renderBody(summary ReminderSummary) string {
	var description string
	if summary.Description != "" {
		var buf strings.Builder
		if err := goldmark.Convert([]byte(summary.Description), &buf); err == nil {
			description = buf.String()
		} else {
			description = "<p>" + html.EscapeString(summary.Description) + "</p>"
		}
	}

	var b strings.Builder
	b.WriteString(`<div style="max-width:600px;margin:0 auto;padding:20px;font-family:Arial,sans-serif;color:#333;border:1px solid #e2e8f0;border-radius:8px">`)
	b.WriteString(`<h2 style="color:#0EA5E9;margin-bottom:20px">&#128276; Reminder</h2>`)
	b.WriteString(`<h3 style="color:#1e293b;margin-bottom:15px">` + html.EscapeString(summary.Title) + `</h3>`)
	b.WriteString(`<div style="background-color:#f1f5f9;padding:15px;border-radius:6px;margin-bottom:15px">`)
	b.WriteString(`<p style="margin:5px 0"><strong>&#128197; Date:</strong> ` + html.EscapeString(summary.Date) + `</p>`)
	b.WriteString(`<p style="margin:5px 0"><strong>&#9200; Time:</strong> ` + html.EscapeString(summary.Time) + `</p>`)
	b.WriteString(`</div>`)
	if description != "" {
		b.WriteString(`<div style="color:#475569;margin-top:15px">` + description + `</div>`)
	}
	b.WriteString(`<hr style="border:none;border-top:1px solid #e2e8f0;margin:20px 0">`)
	b.WriteString(`<p style="color:#94a3b8;font-size:12px;text-align:center">RemindMe - your reminder system</p>`)
	b.WriteString(`</div>`)
	return b.String()
}

func sendViaResend(ecfg config.EmailConfig, to, subject, htmlBody string) error {
	body := resendRequest{
		From:    ecfg.FromEmail,
		To:      []string{to},
		Subject: subject,
		HTML:    htmlBody,
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequest("POST", "https://api.resend.com/emails", bytes.NewReader(jsonBody))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+ecfg.ResendAPIKey)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("resend API error: status %d", resp.StatusCode)
	}

	return nil
}

func sendViaSMTP(ecfg config.EmailConfig, to, subject, htmlBody string) error {
	addr := ecfg.SMTPHost + ":" + ecfg.SMTPPort

	msg := "From: " + ecfg.FromEmail + "\r\n" +
		"To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"MIME-Version: 1.0\r\n" +
		"Content-Type: text/html; charset=\"UTF-8\"\r\n" +
		"\r\n" +
		htmlBody

	var auth smtp.Auth
	if ecfg.SMTPUser != "" {
		auth = smtp.PlainAuth("", ecfg.SMTPUser, ecfg.SMTPPass, ecfg.SMTPHost)
	}

	if err := smtp.SendMail(addr, auth, ecfg.SMTPUser, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}

	return nil
}
