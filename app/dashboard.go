package main

import "github.com/maxence-charriere/go-app/v10/pkg/app"

// Dashboard renders the reminder grid with search and the create/edit
// dialogs. The list itself is owned by the root controller; the dashboard
// only filters what it is given and emits intents.
type Dashboard struct {
	app.Compo

	Reminders []ReminderItem
	Busy      bool
	OnCreate  func(ctx app.Context, draft ReminderItem)
	OnEdit    func(ctx app.Context, id string, draft ReminderItem)
	OnDelete  func(ctx app.Context, id string)
	OnNotify  func(ctx app.Context, item ReminderItem)

	searchQuery string
	showCreate  bool
	editing     *ReminderItem
}

func (d *Dashboard) Render() app.UI {
	filtered := filterReminders(d.Reminders, d.searchQuery)

	return app.Div().Class("container dashboard").Body(
		app.Div().Class("dashboard-head").Body(
			app.Div().Body(
				app.H2().Text("My reminders"),
				app.P().Class("muted").Text("Manage your tasks and events"),
			),
			app.Button().Class("btn").Disabled(d.Busy).Text("+ New reminder").
				OnClick(func(ctx app.Context, e app.Event) {
					d.showCreate = true
				}),
		),

		app.Div().Class("search-box").Body(
			app.Input().Type("search").Placeholder("Search reminders...").
				Value(d.searchQuery).
				OnInput(func(ctx app.Context, e app.Event) {
					d.searchQuery = ctx.JSSrc().Get("value").String()
				}),
		),

		app.If(len(filtered) == 0, func() app.UI {
			return d.renderEmpty()
		}).Else(func() app.UI {
			return app.Div().Class("reminder-grid").Body(
				app.Range(filtered).Slice(func(i int) app.UI {
					item := filtered[i]
					return &ReminderCard{
						Reminder: item,
						Busy:     d.Busy,
						OnEdit: func(ctx app.Context, item ReminderItem) {
							d.editing = &item
						},
						OnDelete: d.OnDelete,
						OnNotify: d.OnNotify,
					}
				}),
			)
		}),

		app.If(d.showCreate, func() app.UI {
			return &ReminderForm{
				Busy: d.Busy,
				Submit: func(ctx app.Context, draft ReminderItem) {
					d.showCreate = false
					d.OnCreate(ctx, draft)
				},
				Cancel: func(ctx app.Context) {
					d.showCreate = false
				},
			}
		}),

		app.If(d.editing != nil, func() app.UI {
			editing := *d.editing
			return &ReminderForm{
				Initial: d.editing,
				Busy:    d.Busy,
				Submit: func(ctx app.Context, draft ReminderItem) {
					d.editing = nil
					d.OnEdit(ctx, editing.ID, draft)
				},
				Cancel: func(ctx app.Context) {
					d.editing = nil
				},
			}
		}),
	)
}

func (d *Dashboard) renderEmpty() app.UI {
	title := "No reminders"
	hint := "Create your first reminder to get going."
	if d.searchQuery != "" {
		title = "Nothing found"
		hint = "Try a different search query."
	}

	return app.Div().Class("empty-state").Body(
		app.Div().Class("empty-icon").Text("\U0001F514"),
		app.H3().Text(title),
		app.P().Class("muted").Text(hint),
	)
}
