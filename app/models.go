package main

import "strconv"

// Frequency values accepted by the reminders endpoint.
const (
	FrequencyOnce    = "once"
	FrequencyDaily   = "daily"
	FrequencyWeekly  = "weekly"
	FrequencyMonthly = "monthly"
	FrequencyYearly  = "yearly"
)

var frequencyLabels = map[string]string{
	FrequencyOnce:    "One time",
	FrequencyDaily:   "Daily",
	FrequencyWeekly:  "Weekly",
	FrequencyMonthly: "Monthly",
	FrequencyYearly:  "Yearly",
}

var frequencyIcons = map[string]string{
	FrequencyOnce:    "\U0001F552", // clock
	FrequencyDaily:   "\U0001F4C5", // calendar
	FrequencyWeekly:  "\U0001F5D3",
	FrequencyMonthly: "\U0001F4C6",
	FrequencyYearly:  "\U0001F389",
}

func validFrequency(s string) bool {
	_, ok := frequencyLabels[s]
	return ok
}

// User is the profile returned by the auth endpoints. The client holds a
// read-only cached copy.
type User struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	FullName  string `json:"full_name"`
	CreatedAt string `json:"created_at"`
}

// Reminder is the remote representation.
type Reminder struct {
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

// ReminderCreate is the payload for creating a reminder.
type ReminderCreate struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Frequency   string `json:"frequency"`
}

// ReminderUpdate is a partial update; nil fields are left untouched by
// the remote system.
type ReminderUpdate struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Date        *string `json:"date,omitempty"`
	Time        *string `json:"time,omitempty"`
	Frequency   *string `json:"frequency,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

// AuthResponse is returned by login and register.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// NotificationRequest asks the remote system to email a reminder summary.
type NotificationRequest struct {
	ToEmail             string `json:"to_email"`
	ReminderTitle       string `json:"reminder_title"`
	ReminderDate        string `json:"reminder_date"`
	ReminderTime        string `json:"reminder_time"`
	ReminderDescription string `json:"reminder_description,omitempty"`
}

// ReminderItem is the display view-model: string id, only the fields the
// dashboard renders and the form edits.
type ReminderItem struct {
	ID          string
	Title       string
	Description string
	Date        string
	Time        string
	Frequency   string
}

func toReminderItem(r Reminder) ReminderItem {
	return ReminderItem{
		ID:          strconv.FormatInt(r.ID, 10),
		Title:       r.Title,
		Description: r.Description,
		Date:        r.Date,
		Time:        r.Time,
		Frequency:   r.Frequency,
	}
}

func toReminderItems(reminders []Reminder) []ReminderItem {
	items := make([]ReminderItem, 0, len(reminders))
	for _, r := range reminders {
		items = append(items, toReminderItem(r))
	}
	return items
}

func (item ReminderItem) remoteID() (int64, error) {
	return strconv.ParseInt(item.ID, 10, 64)
}

func (item ReminderItem) createPayload() ReminderCreate {
	return ReminderCreate{
		Title:       item.Title,
		Description: item.Description,
		Date:        item.Date,
		Time:        item.Time,
		Frequency:   item.Frequency,
	}
}

func (item ReminderItem) updatePayload() ReminderUpdate {
	return ReminderUpdate{
		Title:       &item.Title,
		Description: &item.Description,
		Date:        &item.Date,
		Time:        &item.Time,
		Frequency:   &item.Frequency,
	}
}
