package db

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrNotFound is returned when a row does not exist or belongs to
// another user.
var ErrNotFound = errors.New("not found")

type User struct {
	ID           int64
	Email        string
	PasswordHash string
	FullName     string
	CreatedAt    time.Time
}

type Reminder struct {
	ID          int64
	UserID      int64
	Title       string
	Description string
	Date        string
	Time        string
	Frequency   string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ReminderPatch carries a partial update; nil fields are left unchanged.
type ReminderPatch struct {
	Title       *string
	Description *string
	Date        *string
	Time        *string
	Frequency   *string
	IsActive    *bool
}

// Users

func CreateUser(email, passwordHash, fullName string) (*User, error) {
	res, err := DB.Exec(
		"INSERT INTO users (email, password_hash, full_name) VALUES (?, ?, ?)",
		email, passwordHash, fullName,
	)
	if err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}
	id, _ := res.LastInsertId()
	return GetUserByID(id)
}

func GetUserByEmail(email string) (*User, error) {
	var u User
	err := DB.QueryRow(
		"SELECT id, email, password_hash, full_name, created_at FROM users WHERE email = ?", email,
	).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.FullName, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query user: %w", err)
	}
	return &u, nil
}

func GetUserByID(id int64) (*User, error) {
	var u User
	err := DB.QueryRow(
		"SELECT id, email, password_hash, full_name, created_at FROM users WHERE id = ?", id,
	).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.FullName, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query user: %w", err)
	}
	return &u, nil
}

// Reminders

// ListReminders returns the user's active reminders ordered by date then
// time. A non-empty search narrows to rows whose title or description
// contains it, case-insensitively.
func ListReminders(userID int64, search string) ([]Reminder, error) {
	query := `SELECT id, user_id, title, description, date, time, frequency, is_active, created_at, updated_at
		FROM reminders WHERE user_id = ? AND is_active = 1`
	args := []any{userID}

	if search != "" {
		query += ` AND (instr(lower(title), lower(?)) > 0 OR instr(lower(description), lower(?)) > 0)`
		args = append(args, search, search)
	}
	query += ` ORDER BY date, time`

	rows, err := DB.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query reminders: %w", err)
	}
	defer rows.Close()

	var reminders []Reminder
	for rows.Next() {
		var r Reminder
		if err := rows.Scan(&r.ID, &r.UserID, &r.Title, &r.Description, &r.Date, &r.Time,
			&r.Frequency, &r.IsActive, &r.CreatedAt, &r.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan reminder: %w", err)
		}
		reminders = append(reminders, r)
	}
	return reminders, rows.Err()
}

func GetReminder(userID, id int64) (*Reminder, error) {
	var r Reminder
	err := DB.QueryRow(
		`SELECT id, user_id, title, description, date, time, frequency, is_active, created_at, updated_at
		FROM reminders WHERE user_id = ? AND id = ?`, userID, id,
	).Scan(&r.ID, &r.UserID, &r.Title, &r.Description, &r.Date, &r.Time,
		&r.Frequency, &r.IsActive, &r.CreatedAt, &r.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query reminder: %w", err)
	}
	return &r, nil
}

func CreateReminder(userID int64, title, description, date, timeOfDay, frequency string) (*Reminder, error) {
	res, err := DB.Exec(
		"INSERT INTO reminders (user_id, title, description, date, time, frequency) VALUES (?, ?, ?, ?, ?, ?)",
		userID, title, description, date, timeOfDay, frequency,
	)
	if err != nil {
		return nil, fmt.Errorf("insert reminder: %w", err)
	}
	id, _ := res.LastInsertId()
	return GetReminder(userID, id)
}

func UpdateReminder(userID, id int64, patch ReminderPatch) (*Reminder, error) {
	var sets []string
	var args []any

	if patch.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *patch.Title)
	}
	if patch.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, *patch.Description)
	}
	if patch.Date != nil {
		sets = append(sets, "date = ?")
		args = append(args, *patch.Date)
	}
	if patch.Time != nil {
		sets = append(sets, "time = ?")
		args = append(args, *patch.Time)
	}
	if patch.Frequency != nil {
		sets = append(sets, "frequency = ?")
		args = append(args, *patch.Frequency)
	}
	if patch.IsActive != nil {
		sets = append(sets, "is_active = ?")
		args = append(args, *patch.IsActive)
	}
	if len(sets) == 0 {
		return nil, errors.New("no fields to update")
	}

	sets = append(sets, "updated_at = CURRENT_TIMESTAMP")
	args = append(args, userID, id)

	query := "UPDATE reminders SET " + strings.Join(sets, ", ") + " WHERE user_id = ? AND id = ?"
	res, err := DB.Exec(query, args...)
	if err != nil {
		return nil, fmt.Errorf("update reminder: %w", err)
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return nil, ErrNotFound
	}
	return GetReminder(userID, id)
}

// SoftDeleteReminder marks the reminder inactive rather than removing the
// row, so the record survives for the remote system's history. A reminder
// that is already inactive is gone from the user's view and reads as
// ErrNotFound.
func SoftDeleteReminder(userID, id int64) error {
	res, err := DB.Exec(
		"UPDATE reminders SET is_active = 0 WHERE user_id = ? AND id = ? AND is_active = 1", userID, id,
	)
	if err != nil {
		return fmt.Errorf("delete reminder: %w", err)
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
