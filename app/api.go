package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

const tokenHeader = "X-Auth-Token"

// Endpoints are the remote URLs the client talks to. Defaults are the
// same-origin paths served by cmd/server.
type Endpoints struct {
	Register     string
	Login        string
	Reminders    string
	Notification string
}

func defaultEndpoints() Endpoints {
	return Endpoints{
		Register:     "/api/auth/register",
		Login:        "/api/auth/login",
		Reminders:    "/api/reminders",
		Notification: "/api/notifications",
	}
}

// APIError is the normalized failure of any API call: the HTTP status and
// the message the remote system reported.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// Client talks to the four remote endpoints. It keeps no state beyond its
// configuration; callers pass the session token per call.
type Client struct {
	endpoints Endpoints
	http      *http.Client
}

func NewClient() *Client {
	return &Client{endpoints: defaultEndpoints(), http: http.DefaultClient}
}

func (c *Client) Register(email, password, fullName string) (AuthResponse, error) {
	var out AuthResponse
	err := c.do("POST", c.endpoints.Register, "", map[string]string{
		"email":     email,
		"password":  password,
		"full_name": fullName,
	}, &out)
	return out, err
}

func (c *Client) Login(email, password string) (AuthResponse, error) {
	var out AuthResponse
	err := c.do("POST", c.endpoints.Login, "", map[string]string{
		"email":    email,
		"password": password,
	}, &out)
	return out, err
}

func (c *Client) Reminders(token, search string) ([]Reminder, error) {
	u := c.endpoints.Reminders
	if search != "" {
		u += "?search=" + url.QueryEscape(search)
	}
	var out []Reminder
	if err := c.do("GET", u, token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateReminder(token string, data ReminderCreate) (Reminder, error) {
	var out Reminder
	err := c.do("POST", c.endpoints.Reminders, token, data, &out)
	return out, err
}

func (c *Client) UpdateReminder(token string, id int64, data ReminderUpdate) (Reminder, error) {
	var out Reminder
	u := c.endpoints.Reminders + "?id=" + strconv.FormatInt(id, 10)
	err := c.do("PUT", u, token, data, &out)
	return out, err
}

func (c *Client) DeleteReminder(token string, id int64) error {
	u := c.endpoints.Reminders + "?id=" + strconv.FormatInt(id, 10)
	return c.do("DELETE", u, token, nil, nil)
}

func (c *Client) SendNotification(token string, data NotificationRequest) error {
	return c.do("POST", c.endpoints.Notification, token, data, nil)
}

// do performs one request. Non-2xx responses become an *APIError carrying
// the status and the body's error message; a missing or unparseable body
// falls back to a generic message. No retries, no timeout.
func (c *Client) do(method, url, token string, body, out any) error {
	var reqBody *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set(tokenHeader, token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &APIError{Status: 0, Message: "Network error"}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var payload struct {
			Error string `json:"error"`
		}
		message := "Request failed"
		if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil && payload.Error != "" {
			message = payload.Error
		}
		return &APIError{Status: resp.StatusCode, Message: message}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &APIError{Status: resp.StatusCode, Message: "Request failed"}
	}
	return nil
}
