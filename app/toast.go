package main

import "github.com/maxence-charriere/go-app/v10/pkg/app"

// Toast is a transient notification in the corner of the page.
type Toast struct {
	app.Compo

	Title   string
	Message string
	IsError bool
}

func (t *Toast) Render() app.UI {
	cls := "toast"
	if t.IsError {
		cls += " toast-error"
	}

	return app.Div().Class(cls).Body(
		app.Strong().Text(t.Title),
		app.P().Text(t.Message),
	)
}
