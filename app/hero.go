package main

import "github.com/maxence-charriere/go-app/v10/pkg/app"

// HeroSection is the anonymous landing page.
type HeroSection struct {
	app.Compo

	OnGetStarted func(app.Context)
}

func (h *HeroSection) Render() app.UI {
	feature := func(icon, title, text string) app.UI {
		return app.Div().Class("feature-card").Body(
			app.Div().Class("feature-icon").Text(icon),
			app.H3().Text(title),
			app.P().Text(text),
		)
	}

	return app.Div().Class("hero").Body(
		app.Div().Class("hero-logo").Text("\U0001F514"),
		app.H1().Class("hero-title").Text("Never forget what matters"),
		app.P().Class("hero-text").
			Text("RemindMe is a reminder system with flexible schedules and email notifications."),
		app.Button().Class("btn btn-lg").Text("\U0001F680 Get started").
			OnClick(func(ctx app.Context, e app.Event) {
				h.OnGetStarted(ctx)
			}),

		app.Div().Class("feature-grid").Body(
			feature("\U0001F4C5", "Flexible schedule",
				"Set reminders for any date and time, once or on a recurring basis."),
			feature("✉", "Email notifications",
				"Get timely reminders delivered straight to your inbox."),
			feature("\U0001F512", "Secure by default",
				"Your account is protected with signed session tokens."),
		),
	)
}
