package main

import (
	"time"

	"github.com/maxence-charriere/go-app/v10/pkg/app"
)

// ReminderCard renders one reminder with edit, delete and notify actions.
type ReminderCard struct {
	app.Compo

	Reminder ReminderItem
	Busy     bool
	OnEdit   func(ctx app.Context, item ReminderItem)
	OnDelete func(ctx app.Context, id string)
	OnNotify func(ctx app.Context, item ReminderItem)
}

// formatCardDate turns "2025-11-25" into "November 25, 2025"; unparseable
// input is shown as-is.
func formatCardDate(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.Format("January 2, 2006")
}

func (c *ReminderCard) Render() app.UI {
	r := c.Reminder

	return app.Div().Class("card reminder-card").Body(
		app.Div().Class("reminder-card-head").Body(
			app.Div().Class("reminder-icon").Text(frequencyIcons[r.Frequency]),
			app.Div().Class("reminder-card-titles").Body(
				app.H3().Text(r.Title),
				app.P().Class("muted").Text(formatCardDate(r.Date)+" at "+r.Time),
			),
			app.Span().Class("badge").Text(frequencyLabels[r.Frequency]),
		),

		app.If(r.Description != "", func() app.UI {
			return app.P().Class("reminder-description").Text(r.Description)
		}),

		app.Div().Class("reminder-card-actions").Body(
			app.Button().Class("btn btn-outline btn-sm").Disabled(c.Busy).Text("Edit").
				OnClick(func(ctx app.Context, e app.Event) {
					c.OnEdit(ctx, r)
				}),
			app.Button().Class("btn btn-outline btn-sm").Disabled(c.Busy).Text("Email me").
				OnClick(func(ctx app.Context, e app.Event) {
					c.OnNotify(ctx, r)
				}),
			app.Button().Class("btn btn-danger btn-sm").Disabled(c.Busy).Text("Delete").
				OnClick(func(ctx app.Context, e app.Event) {
					c.OnDelete(ctx, r.ID)
				}),
		),
	)
}
