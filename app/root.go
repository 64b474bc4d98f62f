package main

import (
	"errors"
	"strings"
	"time"

	"github.com/maxence-charriere/go-app/v10/pkg/app"
)

// RootView owns all mutable client state: the auth flag, session token,
// cached user, in-memory reminder list and the busy flag. Presentation
// components emit intents up to it; it is the only component talking to
// the API client and the session store.
type RootView struct {
	app.Compo

	api     *Client
	session sessionStore

	authenticated bool
	showAuth      bool
	busy          bool
	token         string
	user          User
	reminders     []ReminderItem

	toast      toastState
	toastDelay time.Duration
}

type toastState struct {
	visible bool
	title   string
	message string
	isError bool
	seq     int
}

func (v *RootView) OnInit() {
	v.api = NewClient()
	v.toastDelay = 4 * time.Second
}

func (v *RootView) OnMount(ctx app.Context) {
	v.session = sessionStore{storage: ctx.LocalStorage()}

	token, user, err := v.session.load()
	if err != nil {
		return
	}
	v.token = token
	v.user = user
	v.authenticated = true
	v.loadReminders(ctx)
}

// List surgery. Each mutation touches exactly the entry it targets.

func appendReminder(list []ReminderItem, item ReminderItem) []ReminderItem {
	return append(list, item)
}

func replaceReminder(list []ReminderItem, item ReminderItem) []ReminderItem {
	out := make([]ReminderItem, len(list))
	for i, r := range list {
		if r.ID == item.ID {
			out[i] = item
		} else {
			out[i] = r
		}
	}
	return out
}

func removeReminder(list []ReminderItem, id string) []ReminderItem {
	out := make([]ReminderItem, 0, len(list))
	for _, r := range list {
		if r.ID != id {
			out = append(out, r)
		}
	}
	return out
}

// filterReminders keeps entries whose title or description contains the
// query, case-insensitively. An empty query keeps everything.
func filterReminders(list []ReminderItem, query string) []ReminderItem {
	if query == "" {
		return list
	}
	q := strings.ToLower(query)
	out := make([]ReminderItem, 0, len(list))
	for _, r := range list {
		if strings.Contains(strings.ToLower(r.Title), q) ||
			strings.Contains(strings.ToLower(r.Description), q) {
			out = append(out, r)
		}
	}
	return out
}

func errorMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return "Request failed"
}

// Intents

func (v *RootView) onGetStarted(ctx app.Context) {
	v.showAuth = true
}

func (v *RootView) onAuthClick(ctx app.Context) {
	v.showAuth = true
}

func (v *RootView) onLogin(ctx app.Context, email, password string) {
	v.busy = true
	ctx.Async(func() {
		resp, err := v.api.Login(email, password)
		ctx.Dispatch(func(ctx app.Context) {
			v.busy = false
			if err != nil {
				v.showToast(ctx, "Login error", errorMessage(err), true)
				return
			}
			v.startSession(ctx, resp)
			v.loadReminders(ctx)
			v.showToast(ctx, "Welcome back", resp.User.Email, false)
		})
	})
}

func (v *RootView) onRegister(ctx app.Context, email, password, name string) {
	v.busy = true
	ctx.Async(func() {
		resp, err := v.api.Register(email, password, name)
		ctx.Dispatch(func(ctx app.Context) {
			v.busy = false
			if err != nil {
				v.showToast(ctx, "Registration error", errorMessage(err), true)
				return
			}
			// A fresh account has no reminders; no list fetch.
			v.startSession(ctx, resp)
			v.showToast(ctx, "Account created", "Welcome, "+resp.User.FullName, false)
		})
	})
}

func (v *RootView) startSession(ctx app.Context, resp AuthResponse) {
	if err := v.session.save(resp.Token, resp.User); err != nil {
		app.Log("error persisting session:", err)
	}
	v.token = resp.Token
	v.user = resp.User
	v.authenticated = true
	v.showAuth = false
	v.reminders = nil
}

func (v *RootView) onLogout(ctx app.Context) {
	v.session.clear()
	v.token = ""
	v.user = User{}
	v.authenticated = false
	v.showAuth = false
	v.reminders = nil
	v.showToast(ctx, "Signed out", "See you soon", false)
}

// loadReminders fetches the full list; narrowing a search query is done
// locally by the dashboard, so the in-memory list always holds every
// reminder and create/edit/delete touch it surgically.
func (v *RootView) loadReminders(ctx app.Context) {
	token := v.token
	v.busy = true
	ctx.Async(func() {
		reminders, err := v.api.Reminders(token, "")
		ctx.Dispatch(func(ctx app.Context) {
			v.busy = false
			if err != nil {
				v.showToast(ctx, "Load error", errorMessage(err), true)
				return
			}
			v.reminders = toReminderItems(reminders)
		})
	})
}

func (v *RootView) onCreateReminder(ctx app.Context, draft ReminderItem) {
	token := v.token
	v.busy = true
	ctx.Async(func() {
		created, err := v.api.CreateReminder(token, draft.createPayload())
		ctx.Dispatch(func(ctx app.Context) {
			v.busy = false
			if err != nil {
				v.showToast(ctx, "Create error", errorMessage(err), true)
				return
			}
			v.reminders = appendReminder(v.reminders, toReminderItem(created))
			v.showToast(ctx, "Reminder created", `"`+created.Title+`" added`, false)
		})
	})
}

func (v *RootView) onEditReminder(ctx app.Context, id string, draft ReminderItem) {
	draft.ID = id
	remoteID, err := draft.remoteID()
	if err != nil {
		v.showToast(ctx, "Update error", "Unknown reminder", true)
		return
	}

	token := v.token
	v.busy = true
	ctx.Async(func() {
		updated, err := v.api.UpdateReminder(token, remoteID, draft.updatePayload())
		ctx.Dispatch(func(ctx app.Context) {
			v.busy = false
			if err != nil {
				v.showToast(ctx, "Update error", errorMessage(err), true)
				return
			}
			v.reminders = replaceReminder(v.reminders, toReminderItem(updated))
			v.showToast(ctx, "Reminder updated", "Changes saved", false)
		})
	})
}

func (v *RootView) onDeleteReminder(ctx app.Context, id string) {
	item := ReminderItem{ID: id}
	remoteID, err := item.remoteID()
	if err != nil {
		v.showToast(ctx, "Delete error", "Unknown reminder", true)
		return
	}

	token := v.token
	v.busy = true
	ctx.Async(func() {
		err := v.api.DeleteReminder(token, remoteID)
		ctx.Dispatch(func(ctx app.Context) {
			v.busy = false
			if err != nil {
				v.showToast(ctx, "Delete error", errorMessage(err), true)
				return
			}
			v.reminders = removeReminder(v.reminders, id)
			v.showToast(ctx, "Reminder deleted", "The reminder was removed", false)
		})
	})
}

func (v *RootView) onNotifyReminder(ctx app.Context, item ReminderItem) {
	token := v.token
	toEmail := v.user.Email
	v.busy = true
	ctx.Async(func() {
		err := v.api.SendNotification(token, NotificationRequest{
			ToEmail:             toEmail,
			ReminderTitle:       item.Title,
			ReminderDate:        item.Date,
			ReminderTime:        item.Time,
			ReminderDescription: item.Description,
		})
		ctx.Dispatch(func(ctx app.Context) {
			v.busy = false
			if err != nil {
				v.showToast(ctx, "Notification error", errorMessage(err), true)
				return
			}
			v.showToast(ctx, "Notification sent", "Check "+toEmail, false)
		})
	})
}

// Toast

func (v *RootView) showToast(ctx app.Context, title, message string, isError bool) {
	v.toast.seq++
	v.toast = toastState{visible: true, title: title, message: message, isError: isError, seq: v.toast.seq}

	seq := v.toast.seq
	ctx.After(v.toastDelay, func(ctx app.Context) {
		if v.toast.seq == seq {
			v.toast.visible = false
		}
	})
}

// Render

func (v *RootView) Render() app.UI {
	return app.Div().Class("page").Body(
		&Header{
			Authenticated: v.authenticated,
			UserName:      v.user.FullName,
			OnLogout:      v.onLogout,
			OnAuthClick:   v.onAuthClick,
		},

		app.If(!v.authenticated && !v.showAuth, func() app.UI {
			return &HeroSection{OnGetStarted: v.onGetStarted}
		}),

		app.If(!v.authenticated && v.showAuth, func() app.UI {
			return &AuthForm{
				Busy:       v.busy,
				OnLogin:    v.onLogin,
				OnRegister: v.onRegister,
			}
		}),

		app.If(v.authenticated, func() app.UI {
			return &Dashboard{
				Reminders: v.reminders,
				Busy:      v.busy,
				OnCreate:  v.onCreateReminder,
				OnEdit:    v.onEditReminder,
				OnDelete:  v.onDeleteReminder,
				OnNotify:  v.onNotifyReminder,
			}
		}),

		app.If(v.toast.visible, func() app.UI {
			return &Toast{
				Title:   v.toast.title,
				Message: v.toast.message,
				IsError: v.toast.isError,
			}
		}),
	)
}
