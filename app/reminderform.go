package main

import "github.com/maxence-charriere/go-app/v10/pkg/app"

// ReminderForm is the create/edit dialog. Draft fields live only in the
// component and are discarded on submit or cancel.
type ReminderForm struct {
	app.Compo

	Initial *ReminderItem
	Busy    bool
	Submit  func(ctx app.Context, draft ReminderItem)
	Cancel  func(ctx app.Context)

	title       string
	description string
	date        string
	timeOfDay   string
	frequency   string
}

func (f *ReminderForm) OnInit() {
	f.frequency = FrequencyOnce
}

func (f *ReminderForm) OnMount(ctx app.Context) {
	if f.Initial != nil {
		f.title = f.Initial.Title
		f.description = f.Initial.Description
		f.date = f.Initial.Date
		f.timeOfDay = f.Initial.Time
		f.frequency = f.Initial.Frequency
	}
}

func (f *ReminderForm) onSubmit(ctx app.Context, e app.Event) {
	e.PreventDefault()
	if f.title == "" || f.date == "" || f.timeOfDay == "" || !validFrequency(f.frequency) {
		return
	}
	f.Submit(ctx, ReminderItem{
		Title:       f.title,
		Description: f.description,
		Date:        f.date,
		Time:        f.timeOfDay,
		Frequency:   f.frequency,
	})
}

func (f *ReminderForm) Render() app.UI {
	heading := "New reminder"
	submitLabel := "Create"
	if f.Initial != nil {
		heading = "Edit reminder"
		submitLabel = "Save changes"
	}

	return app.Div().Class("dialog-overlay").
		OnClick(func(ctx app.Context, e app.Event) {
			f.Cancel(ctx)
		}).
		Body(
			app.Div().Class("card dialog").
				OnClick(func(ctx app.Context, e app.Event) {
					e.Call("stopPropagation")
				}).
				Body(
					app.H3().Text(heading),
					app.P().Class("muted").Text("Fill in the reminder details"),

					app.Form().Class("reminder-form").OnSubmit(f.onSubmit).Body(
						app.Label().For("reminder-title").Text("Title"),
						app.Input().ID("reminder-title").Type("text").Required(true).
							Placeholder("Client meeting").
							Value(f.title).
							OnInput(f.ValueTo(&f.title)),

						app.Label().For("reminder-description").Text("Description"),
						app.Textarea().ID("reminder-description").Rows(3).
							Placeholder("Discuss the contract terms").
							Text(f.description).
							OnInput(f.ValueTo(&f.description)),

						app.Div().Class("form-row").Body(
							app.Div().Body(
								app.Label().For("reminder-date").Text("Date"),
								app.Input().ID("reminder-date").Type("date").Required(true).
									Value(f.date).
									OnInput(f.ValueTo(&f.date)),
							),
							app.Div().Body(
								app.Label().For("reminder-time").Text("Time"),
								app.Input().ID("reminder-time").Type("time").Required(true).
									Value(f.timeOfDay).
									OnInput(f.ValueTo(&f.timeOfDay)),
							),
						),

						app.Label().For("reminder-frequency").Text("Frequency"),
						app.Select().ID("reminder-frequency").
							OnChange(f.ValueTo(&f.frequency)).
							Body(
								f.option(FrequencyOnce),
								f.option(FrequencyDaily),
								f.option(FrequencyWeekly),
								f.option(FrequencyMonthly),
								f.option(FrequencyYearly),
							),

						app.Div().Class("dialog-actions").Body(
							app.Button().Class("btn btn-outline").Type("button").Text("Cancel").
								OnClick(func(ctx app.Context, e app.Event) {
									f.Cancel(ctx)
								}),
							app.Button().Class("btn").Type("submit").Disabled(f.Busy).
								Text(submitLabel),
						),
					),
				),
		)
}

func (f *ReminderForm) option(frequency string) app.UI {
	return app.Option().Value(frequency).
		Selected(f.frequency == frequency).
		Text(frequencyLabels[frequency])
}
