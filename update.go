package main

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"luckydip/internal/widget"
)

// resultRevealDelay is the dim-to-bright pause on a fresh pick.
const resultRevealDelay = 120 * time.Millisecond

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizePresetList()
		return m, nil

	case presetsLoadedMsg:
		if msg.err != nil {
			log.Printf("load presets: %v", msg.err)
			m.setError(fmt.Sprintf("Preset load failed: %v", msg.err))
			m.showPresets = false
			return m, nil
		}
		items := make([]list.Item, 0, len(msg.presets))
		for _, p := range msg.presets {
			items = append(items, presetItem{preset: p})
		}
		m.presetList.SetItems(items)
		m.presetsReady = true
		return m, nil

	case toastTickMsg:
		return m.advanceToast(msg.id)

	case resultRevealMsg:
		m.revealed = true
		return m, nil

	case tea.KeyMsg:
		if m.showPresets {
			return m.updatePresetModal(msg)
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Presets):
			m.showPresets = true
			m.presetsReady = false
			m.presetList.Select(0)
			return m, loadPresetsCmd()
		}
		for _, entry := range interactionTable(m.keys) {
			if key.Matches(msg, entry.binding) {
				return m.routeInteraction(entry)
			}
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

// routeInteraction pushes one interaction through the widget router and
// converts any core error into non-fatal status-bar text. This is the
// error boundary: nothing past here may take the program down.
func (m model) routeInteraction(entry interactionEntry) (tea.Model, tea.Cmd) {
	if err := m.router.Route(entry.kind, entry.payload(m)); err != nil {
		log.Printf("route %s: %v", entry.name, err)
		m.setError(friendlyError(err))
		return m, nil
	}

	var cmds []tea.Cmd
	switch entry.kind {
	case widget.KindSubmit:
		m.status = m.addedStatus()
		m.statusErr = false
		m.input.Reset()
		cmds = append(cmds, m.input.Focus())
		cmds = append(cmds, m.scheduleToasts()...)
	case widget.KindPick:
		if picked := m.feed.lastPicked; picked != nil {
			m.result = picked.Item
			m.revealed = false
			m.status = fmt.Sprintf("Picked from %d items.", picked.Total)
			m.statusErr = false
			cmds = append(cmds, tea.Tick(resultRevealDelay, func(time.Time) tea.Msg {
				return resultRevealMsg{}
			}))
		}
	}
	return m, tea.Batch(cmds...)
}

// addedStatus builds the post-add status line from the item-added event,
// including the near-duplicate hint when the event carries one.
func (m model) addedStatus() string {
	added := m.feed.lastAdded
	if added == nil {
		return ""
	}
	status := added.Item + " has been added."
	if added.Similar != "" {
		status += fmt.Sprintf(" Looks a lot like %q.", added.Similar)
	}
	return status
}

// advanceToast moves one toast to its next phase and re-arms its timer.
// Once the notifier reports removal, the chain stops.
func (m model) advanceToast(id uuid.UUID) (tea.Model, tea.Cmd) {
	toast, after, ok := m.notifier().Advance(id)
	if !ok || toast.Phase == widget.PhaseRemoved {
		return m, nil
	}
	return m, toastTickCmd(id, after)
}

// scheduleToasts arms the first timer for every toast the notifier has not
// yet handed to the scheduler.
func (m model) scheduleToasts() []tea.Cmd {
	fadeIn := m.notifier().Timings().FadeInDelay
	var cmds []tea.Cmd
	for _, toast := range m.notifier().TakePending() {
		cmds = append(cmds, toastTickCmd(toast.ID, fadeIn))
	}
	return cmds
}

func toastTickCmd(id uuid.UUID, after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return toastTickMsg{id: id}
	})
}

func (m model) updatePresetModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.modalKeys.Close):
		m.showPresets = false
		return m, nil
	case key.Matches(msg, m.modalKeys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.modalKeys.Enter):
		item, ok := m.presetList.SelectedItem().(presetItem)
		if !ok {
			m.setError("No preset selected.")
			return m, nil
		}
		return m.applyPreset(item.preset)
	}

	var cmd tea.Cmd
	m.presetList, cmd = m.presetList.Update(msg)
	return m, cmd
}

// applyPreset feeds every entry of the preset through the same submit route
// a typed item takes, so sanitization and item-added events hold for seeded
// items too.
func (m model) applyPreset(p preset) (tea.Model, tea.Cmd) {
	added := 0
	for _, item := range p.Items {
		if strings.TrimSpace(item) == "" {
			continue
		}
		if err := m.router.Route(widget.KindSubmit, item); err != nil {
			log.Printf("preset %s: route submit: %v", p.Name, err)
			continue
		}
		added++
	}
	m.showPresets = false
	m.status = fmt.Sprintf("Added %d items from %s.", added, p.Name)
	m.statusErr = false
	return m, tea.Batch(m.scheduleToasts()...)
}

// friendlyError maps core error kinds to status-bar wording.
func friendlyError(err error) string {
	switch {
	case errors.Is(err, widget.ErrValidation):
		return "Type something first — blank items are not allowed."
	case errors.Is(err, widget.ErrEmptyCollection):
		return "Nothing to pick from yet. Add an item first."
	case errors.Is(err, widget.ErrNotImplemented):
		return "That action is not wired up."
	case errors.Is(err, widget.ErrState):
		return "The widget is not ready yet."
	case errors.Is(err, widget.ErrInvalidArgument):
		return "That action received the wrong kind of input."
	default:
		return fmt.Sprintf("Something went wrong: %v", err)
	}
}
