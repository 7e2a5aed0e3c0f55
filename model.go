package main

import (
	"fmt"
	"io"
	"log"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"luckydip/internal/config"
	"luckydip/internal/widget"
)

const appName = "Lucky Dip"

// ---------------------------------------------------------------------------
// Preset-picker item (implements list.Item)
// ---------------------------------------------------------------------------

type presetItem struct {
	preset preset
}

func (p presetItem) Title() string       { return p.preset.Name }
func (p presetItem) Description() string { return "" }
func (p presetItem) FilterValue() string { return p.preset.Name }

type presetItemDelegate struct{}

func (d presetItemDelegate) Height() int  { return 1 }
func (d presetItemDelegate) Spacing() int { return 0 }
func (d presetItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}
func (d presetItemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	entry, ok := item.(presetItem)
	if !ok {
		return
	}
	prefix := "  "
	if index == m.Index() {
		prefix = "> "
	}
	line := fmt.Sprintf("%s%s (%d items)", prefix, entry.preset.Name, len(entry.preset.Items))
	fmt.Fprint(w, padRight(line, m.Width()))
}

// ---------------------------------------------------------------------------
// Bubble Tea messages
// ---------------------------------------------------------------------------

type toastTickMsg struct {
	id uuid.UUID
}

type resultRevealMsg struct{}

type presetsLoadedMsg struct {
	presets []preset
	err     error
}

// ---------------------------------------------------------------------------
// Host-side event feed
// ---------------------------------------------------------------------------

// eventFeed consumes the widget's outward domain events on behalf of the
// program. It is shared by pointer across model copies; all writes happen on
// the event loop goroutine.
type eventFeed struct {
	lastAdded  *widget.Event
	lastPicked *widget.Event
	seen       int
}

func (f *eventFeed) observe(e widget.Event) {
	f.seen++
	switch e.Kind {
	case widget.EventItemAdded:
		added := e
		f.lastAdded = &added
	case widget.EventItemSelected:
		picked := e
		f.lastPicked = &picked
	}
}

// ---------------------------------------------------------------------------
// Model
// ---------------------------------------------------------------------------

type model struct {
	cfg    config.Config
	ctrl   *widget.Controller
	router *widget.Router
	feed   *eventFeed

	input      textinput.Model
	presetList list.Model

	result   string
	revealed bool

	status    string
	statusErr bool

	showPresets  bool
	presetsReady bool

	keys      keyMap
	modalKeys modalKeyMap

	width  int
	height int
}

func newModel(cfg config.Config) model {
	store := widget.NewListStore()
	notifier := widget.NewNotifier(widget.Timings{
		FadeInDelay:     cfg.Notify.FadeInDelay(),
		DisplayDuration: cfg.Notify.DisplayDuration(),
		FadeOutDuration: cfg.Notify.FadeOutDuration(),
	})
	ctrl := widget.NewController(store, notifier)
	router := widget.NewRouter()
	ctrl.BindRouter(router)

	feed := &eventFeed{}
	ctrl.Subscribe(feed.observe)
	ctrl.Subscribe(func(e widget.Event) {
		log.Printf("event %s id=%s item=%q total=%d", e.Kind, e.ID, e.Item, e.Total)
	})

	input := textinput.New()
	input.Placeholder = "e.g. Pizza"
	input.CharLimit = 120
	input.Prompt = "> "
	input.Focus()

	presetList := list.New([]list.Item{}, presetItemDelegate{}, 0, 0)
	presetList.Title = "Presets"
	presetList.Styles.Title = titleStyle
	presetList.Styles.NoItems = lipgloss.NewStyle()
	presetList.SetShowStatusBar(false)
	presetList.SetFilteringEnabled(false)
	presetList.SetShowHelp(false)
	presetList.DisableQuitKeybindings()

	return model{
		cfg:        cfg,
		ctrl:       ctrl,
		router:     router,
		feed:       feed,
		input:      input,
		presetList: presetList,
		keys:       newKeyMap(),
		modalKeys:  modalKeyMap{keyMap: newKeyMap()},
		status:     "Add a few items, then press ctrl+r to pick one.",
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) notifier() *widget.Notifier {
	return m.ctrl.Notifier()
}

func (m model) items() []string {
	return m.ctrl.Store().Snapshot()
}

func (m *model) setError(text string) {
	m.status = text
	m.statusErr = true
}
