package main

import "github.com/maxence-charriere/go-app/v10/pkg/app"

// Header is the top bar: brand on the left, auth controls on the right.
type Header struct {
	app.Compo

	Authenticated bool
	UserName      string
	OnLogout      func(app.Context)
	OnAuthClick   func(app.Context)
}

func (h *Header) Render() app.UI {
	return app.Header().Class("header").Body(
		app.Div().Class("header-brand").Body(
			app.Div().Class("header-logo").Text("\U0001F514"),
			app.Div().Body(
				app.H1().Class("header-title").Text("RemindMe"),
				app.P().Class("header-subtitle").Text("Your reminder system"),
			),
		),

		app.Nav().Class("header-nav").Body(
			app.If(h.Authenticated, func() app.UI {
				return app.Div().Class("header-user").Body(
					app.Span().Class("header-username").Text(h.UserName),
					app.Button().Class("btn btn-outline btn-sm").Text("Sign out").
						OnClick(func(ctx app.Context, e app.Event) {
							h.OnLogout(ctx)
						}),
				)
			}).Else(func() app.UI {
				return app.Button().Class("btn btn-sm").Text("Sign in").
					OnClick(func(ctx app.Context, e app.Event) {
						h.OnAuthClick(ctx)
					})
			}),
		),
	)
}
