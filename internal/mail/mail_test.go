package mail

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/remindme-app/remindme/internal/config"
)

func TestSendReminderNotificationUnconfigured(t *testing.T) {
	err := SendReminderNotification(config.EmailConfig{}, "someone@example.com", ReminderSummary{Title: "Dentist"})
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestRenderBody(t *testing.T) {
	body := renderBody(ReminderSummary{
		Title:       "Dentist <appointment>",
		Date:        "2025-12-10",
		Time:        "14:00",
		Description: "Bring the **insurance** card",
	})

	assert.Contains(t, body, "Dentist &lt;appointment&gt;")
	assert.Contains(t, body, "2025-12-10")
	assert.Contains(t, body, "14:00")
	// Description is rendered as markdown.
	assert.Contains(t, body, "<strong>insurance</strong>")
	assert.Contains(t, body, "RemindMe")
}

func TestRenderBodyWithoutDescription(t *testing.T) {
	body := renderBody(ReminderSummary{Title: "Gym", Date: "2025-12-01", Time: "07:00"})

	assert.Contains(t, body, "Gym")
	assert.NotContains(t, body, "margin-top:15px")
}
