package main

// ---------------------------------------------------------------------------
// Interaction table: single source of truth for key → router-kind dispatch
// ---------------------------------------------------------------------------
//
// Every user interaction the widget core understands goes through this table
// and then through widget.Router, so the core sees exactly one subscription
// point. Adding an interaction: add a keybinding in keys.go and one entry
// here. Unknown kinds never reach the router from the table, but the router
// still fails closed for anything routed by hand (preset application uses
// the same path).

import (
	"github.com/charmbracelet/bubbles/key"

	"luckydip/internal/widget"
)

// interactionEntry binds one keybinding to a router kind. payload extracts
// the routed payload from the current model.
type interactionEntry struct {
	name    string
	binding key.Binding
	kind    string
	payload func(m model) any
}

func interactionTable(k keyMap) []interactionEntry {
	return []interactionEntry{
		{
			name:    "submit",
			binding: k.Add,
			kind:    widget.KindSubmit,
			payload: func(m model) any { return m.input.Value() },
		},
		{
			name:    "pick",
			binding: k.Pick,
			kind:    widget.KindPick,
			payload: func(m model) any { return nil },
		},
	}
}
