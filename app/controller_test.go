package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/maxence-charriere/go-app/v10/pkg/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rootHarness wraps RootView so tests get hold of a live app.Context. The
// test engine skips OnMount on non-wasm builds, so tests call
// RootView.OnMount themselves once the harness has captured the context.
type rootHarness struct {
	app.Compo

	root  *RootView
	ctx   app.Context
	ready bool
}

func (h *rootHarness) OnPreRender(ctx app.Context) {
	h.ctx = ctx
	h.ready = true
}

func (h *rootHarness) Render() app.UI { return h.root }

func newTestRoot(t *testing.T, serverURL string) (*RootView, app.TestEngine, app.Context) {
	t.Helper()

	root := &RootView{}
	h := &rootHarness{root: root}
	engine := app.NewTestEngine()
	require.NoError(t, engine.Load(h))
	engine.ConsumeAll()
	require.True(t, h.ready)

	root.api = testClient(serverURL)
	root.toastDelay = time.Millisecond
	return root, engine, h.ctx
}

func twoReminders() []Reminder {
	return []Reminder{
		{ID: 1, Title: "Team meeting", Description: "Quarterly plans", Date: "2025-11-25", Time: "10:00", Frequency: FrequencyWeekly, IsActive: true},
		{ID: 2, Title: "Send report", Description: "Financials for November", Date: "2025-11-30", Time: "17:00", Frequency: FrequencyMonthly, IsActive: true},
	}
}

func TestRootLoginFetchesRemindersAndSavesSession(t *testing.T) {
	var listCalls atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(AuthResponse{
			Token: "tok-login",
			User:  User{ID: 1, Email: "user@example.com", FullName: "Jane Doe"},
		})
	})
	mux.HandleFunc("/api/reminders", func(w http.ResponseWriter, r *http.Request) {
		listCalls.Add(1)
		json.NewEncoder(w).Encode(twoReminders())
	})
	ts := httptest.NewServer(mux)
	defer ts.Close()

	root, engine, ctx := newTestRoot(t, ts.URL)
	root.OnMount(ctx)
	engine.ConsumeAll()
	assert.False(t, root.authenticated)

	root.onLogin(ctx, "user@example.com", "secret")
	engine.ConsumeAll()

	assert.True(t, root.authenticated)
	assert.False(t, root.busy)
	require.Len(t, root.reminders, 2)
	assert.Equal(t, "Team meeting", root.reminders[0].Title)
	assert.Equal(t, "Send report", root.reminders[1].Title)
	assert.EqualValues(t, 1, listCalls.Load())

	token, user, err := root.session.load()
	require.NoError(t, err)
	assert.Equal(t, "tok-login", token)
	assert.Equal(t, "user@example.com", user.Email)

	assert.Equal(t, "Welcome back", root.toast.title)
	assert.False(t, root.toast.isError)
	// Auto-dismissed once the delay elapsed.
	assert.False(t, root.toast.visible)
}

func TestRootLoginFailureStaysAnonymous(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"error": "Invalid email or password"})
	})
	ts := httptest.NewServer(mux)
	defer ts.Close()

	root, engine, ctx := newTestRoot(t, ts.URL)
	root.OnMount(ctx)
	engine.ConsumeAll()

	root.onLogin(ctx, "user@example.com", "wrong")
	engine.ConsumeAll()

	assert.False(t, root.authenticated)
	assert.False(t, root.busy)
	assert.Empty(t, root.reminders)
	assert.Equal(t, "Login error", root.toast.title)
	assert.Equal(t, "Invalid email or password", root.toast.message)
	assert.True(t, root.toast.isError)

	_, _, err := root.session.load()
	assert.ErrorIs(t, err, errNoSession)
}

func TestRootRegisterSkipsReminderFetch(t *testing.T) {
	var listCalls atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/register", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(AuthResponse{
			Token: "tok-reg",
			User:  User{ID: 2, Email: "new@example.com", FullName: "New User"},
		})
	})
	mux.HandleFunc("/api/reminders", func(w http.ResponseWriter, r *http.Request) {
		listCalls.Add(1)
		json.NewEncoder(w).Encode([]Reminder{})
	})
	ts := httptest.NewServer(mux)
	defer ts.Close()

	root, engine, ctx := newTestRoot(t, ts.URL)
	root.OnMount(ctx)
	engine.ConsumeAll()

	root.onRegister(ctx, "new@example.com", "password123", "New User")
	engine.ConsumeAll()

	assert.True(t, root.authenticated)
	assert.Empty(t, root.reminders)
	// A fresh account has nothing to fetch.
	assert.Zero(t, listCalls.Load())

	token, user, err := root.session.load()
	require.NoError(t, err)
	assert.Equal(t, "tok-reg", token)
	assert.Equal(t, "new@example.com", user.Email)
}

func TestRootMountRestoresSessionAndFetches(t *testing.T) {
	var gotToken atomic.Value
	mux := http.NewServeMux()
	mux.HandleFunc("/api/reminders", func(w http.ResponseWriter, r *http.Request) {
		gotToken.Store(r.Header.Get(tokenHeader))
		json.NewEncoder(w).Encode(twoReminders())
	})
	ts := httptest.NewServer(mux)
	defer ts.Close()

	root, engine, ctx := newTestRoot(t, ts.URL)

	seed := sessionStore{storage: ctx.LocalStorage()}
	require.NoError(t, seed.save("tok-restore", User{ID: 1, Email: "user@example.com", FullName: "Jane Doe"}))

	root.OnMount(ctx)
	engine.ConsumeAll()

	assert.True(t, root.authenticated)
	assert.Equal(t, "tok-restore", root.token)
	assert.Len(t, root.reminders, 2)
	assert.Equal(t, "tok-restore", gotToken.Load())
}

func TestRootCreateAppendsToList(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/reminders", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(Reminder{
			ID: 3, Title: "Meeting", Date: "2025-12-02", Time: "10:00",
			Frequency: FrequencyWeekly, IsActive: true,
		})
	})
	ts := httptest.NewServer(mux)
	defer ts.Close()

	root, engine, ctx := newTestRoot(t, ts.URL)
	root.OnMount(ctx)
	engine.ConsumeAll()
	root.authenticated = true
	root.token = "tok-1"
	root.reminders = sampleList()

	root.onCreateReminder(ctx, ReminderItem{
		Title: "Meeting", Date: "2025-12-02", Time: "10:00", Frequency: FrequencyWeekly,
	})
	engine.ConsumeAll()

	// The full list grows by one; any dashboard search narrowing is
	// display-only and never feeds back into it.
	require.Len(t, root.reminders, 3)
	assert.Equal(t, sampleList(), root.reminders[:2])
	assert.Equal(t, "Meeting", root.reminders[2].Title)
	assert.Equal(t, "3", root.reminders[2].ID)
	assert.Equal(t, "Reminder created", root.toast.title)
}

func TestRootDeleteFailureLeavesListUntouched(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/reminders", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "Reminder not found"})
	})
	ts := httptest.NewServer(mux)
	defer ts.Close()

	root, engine, ctx := newTestRoot(t, ts.URL)
	root.OnMount(ctx)
	engine.ConsumeAll()
	root.authenticated = true
	root.token = "tok-1"
	root.reminders = sampleList()

	root.onDeleteReminder(ctx, "99")
	engine.ConsumeAll()

	assert.Equal(t, sampleList(), root.reminders)
	assert.False(t, root.busy)
	assert.Equal(t, "Delete error", root.toast.title)
	assert.Equal(t, "Reminder not found", root.toast.message)
	assert.True(t, root.toast.isError)
}

func TestRootLogoutClearsSession(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	defer ts.Close()

	root, engine, ctx := newTestRoot(t, ts.URL)
	root.OnMount(ctx)
	engine.ConsumeAll()

	require.NoError(t, root.session.save("tok-1", User{ID: 1, Email: "user@example.com"}))
	root.authenticated = true
	root.token = "tok-1"
	root.user = User{ID: 1, Email: "user@example.com"}
	root.reminders = sampleList()

	root.onLogout(ctx)
	engine.ConsumeAll()

	assert.False(t, root.authenticated)
	assert.Empty(t, root.token)
	assert.Empty(t, root.reminders)

	_, _, err := root.session.load()
	assert.ErrorIs(t, err, errNoSession)
}
