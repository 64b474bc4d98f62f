package main

import "github.com/maxence-charriere/go-app/v10/pkg/app"

const (
	tabLogin    = "login"
	tabRegister = "register"
)

// AuthForm shows login and registration tabs. Drafted credentials live
// only inside the component; submit emits the intent upward.
type AuthForm struct {
	app.Compo

	Busy       bool
	OnLogin    func(ctx app.Context, email, password string)
	OnRegister func(ctx app.Context, email, password, name string)

	tab              string
	loginEmail       string
	loginPassword    string
	registerName     string
	registerEmail    string
	registerPassword string
}

func (f *AuthForm) OnInit() {
	f.tab = tabLogin
}

func (f *AuthForm) Render() app.UI {
	tabBtn := func(tab, label string) app.UI {
		cls := "tab"
		if f.tab == tab {
			cls += " active"
		}
		return app.Button().Class(cls).Type("button").Text(label).
			OnClick(func(ctx app.Context, e app.Event) {
				f.tab = tab
			})
	}

	return app.Div().Class("auth-wrap").Body(
		app.Div().Class("card auth-card").Body(
			app.Div().Class("auth-logo").Text("\U0001F514"),
			app.H2().Text("Welcome"),
			app.P().Class("muted").Text("Sign in or create a new account"),

			app.Div().Class("tabs").Body(
				tabBtn(tabLogin, "Sign in"),
				tabBtn(tabRegister, "Register"),
			),

			app.If(f.tab == tabLogin, func() app.UI {
				return f.renderLogin()
			}).Else(func() app.UI {
				return f.renderRegister()
			}),
		),
	)
}

func (f *AuthForm) renderLogin() app.UI {
	return app.Form().Class("auth-form").
		OnSubmit(func(ctx app.Context, e app.Event) {
			e.PreventDefault()
			f.OnLogin(ctx, f.loginEmail, f.loginPassword)
		}).
		Body(
			app.Label().For("login-email").Text("Email"),
			app.Input().ID("login-email").Type("email").Required(true).
				Placeholder("user@example.com").
				Value(f.loginEmail).
				OnInput(f.ValueTo(&f.loginEmail)),

			app.Label().For("login-password").Text("Password"),
			app.Input().ID("login-password").Type("password").Required(true).
				Value(f.loginPassword).
				OnInput(f.ValueTo(&f.loginPassword)),

			app.Button().Class("btn btn-block").Type("submit").Disabled(f.Busy).
				Text(loadingLabel(f.Busy, "Signing in...", "Sign in")),
		)
}

func (f *AuthForm) renderRegister() app.UI {
	return app.Form().Class("auth-form").
		OnSubmit(func(ctx app.Context, e app.Event) {
			e.PreventDefault()
			f.OnRegister(ctx, f.registerEmail, f.registerPassword, f.registerName)
		}).
		Body(
			app.Label().For("register-name").Text("Name"),
			app.Input().ID("register-name").Type("text").Required(true).
				Placeholder("Jane Doe").
				Value(f.registerName).
				OnInput(f.ValueTo(&f.registerName)),

			app.Label().For("register-email").Text("Email"),
			app.Input().ID("register-email").Type("email").Required(true).
				Placeholder("user@example.com").
				Value(f.registerEmail).
				OnInput(f.ValueTo(&f.registerEmail)),

			app.Label().For("register-password").Text("Password"),
			app.Input().ID("register-password").Type("password").Required(true).
				Value(f.registerPassword).
				OnInput(f.ValueTo(&f.registerPassword)),

			app.Button().Class("btn btn-block").Type("submit").Disabled(f.Busy).
				Text(loadingLabel(f.Busy, "Creating...", "Create account")),
		)
}

func loadingLabel(busy bool, busyLabel, label string) string {
	if busy {
		return busyLabel
	}
	return label
}
