package main

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func plainView(m model) string {
	return ansi.Strip(m.View())
}

func TestViewEmptyState(t *testing.T) {
	view := plainView(newTestModel())

	for _, want := range []string{"Lucky Dip", "Add an item", "Items (0)", "No items yet", "Nothing picked yet"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
}

func TestViewListsItemsInOrder(t *testing.T) {
	m := submit(t, newTestModel(), "Apple")
	m = submit(t, m, "Banana")
	view := plainView(m)

	if !strings.Contains(view, "Items (2)") {
		t.Fatalf("view missing item count:\n%s", view)
	}
	if strings.Index(view, "Apple") > strings.Index(view, "Banana") {
		t.Fatalf("items rendered out of insertion order:\n%s", view)
	}
}

func TestViewShowsPickResult(t *testing.T) {
	m := submit(t, newTestModel(), "Apple")
	ret, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	m = ret.(model)
	ret, _ = m.Update(resultRevealMsg{})
	m = ret.(model)

	if view := plainView(m); !strings.Contains(view, "You picked Apple") {
		t.Fatalf("view missing pick result:\n%s", view)
	}
}

func TestViewShowsVisibleToasts(t *testing.T) {
	m := newTestModel()
	toast, _, err := m.notifier().Post("Apple has been added")
	if err != nil {
		t.Fatalf("post: %v", err)
	}

	if view := plainView(m); strings.Count(view, "Apple has been added") != 0 {
		t.Fatalf("hidden toast should not render:\n%s", view)
	}

	ret, _ := m.Update(toastTickMsg{id: toast.ID})
	m = ret.(model)
	if view := plainView(m); !strings.Contains(view, "Apple has been added") {
		t.Fatalf("visible toast missing from view:\n%s", view)
	}
}

func TestViewCapsToasts(t *testing.T) {
	m := newTestModel()
	for _, msg := range []string{"toast-1", "toast-2", "toast-3", "toast-4", "toast-5"} {
		toast, _, err := m.notifier().Post(msg)
		if err != nil {
			t.Fatalf("post: %v", err)
		}
		ret, _ := m.Update(toastTickMsg{id: toast.ID})
		m = ret.(model)
	}

	view := plainView(m)
	if strings.Contains(view, "toast-1") || strings.Contains(view, "toast-2") {
		t.Fatalf("oldest toasts should be dropped beyond ui.max_toasts:\n%s", view)
	}
	for _, want := range []string{"toast-3", "toast-4", "toast-5"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing toast %q:\n%s", want, view)
		}
	}
}

func TestViewEscapedItemRendersAsLiteralText(t *testing.T) {
	m := submit(t, newTestModel(), "<b>bold</b>")

	view := plainView(m)
	if !strings.Contains(view, "&lt;b&gt;") {
		t.Fatalf("view should show the escaped literal, got:\n%s", view)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("abcdef", 4); got != "abc…" {
		t.Fatalf("truncate = %q, want abc…", got)
	}
	if got := truncate("ab", 4); got != "ab" {
		t.Fatalf("truncate = %q, want ab", got)
	}
	if got := truncate("ab", 0); got != "" {
		t.Fatalf("truncate = %q, want empty", got)
	}
}

func TestPadRightAndOverlay(t *testing.T) {
	if got := padRight("ab", 4); got != "ab  " {
		t.Fatalf("padRight = %q, want %q", got, "ab  ")
	}

	base := "aaaa\nbbbb\ncccc"
	got := overlayAt(base, "XX", 1, 1, 4, 3)
	if !strings.Contains(got, "bXXb") {
		t.Fatalf("overlayAt = %q, want XX stamped into middle row", got)
	}
}

// The compositor must cut base rows at visual columns, never inside an
// escape sequence, so styled rows keep their visible text around the modal.
func TestOverlayKeepsStyledBaseIntact(t *testing.T) {
	bold := lipgloss.NewStyle().Bold(true)

	got := overlayAt(bold.Render("AAAA"), "XX", 1, 0, 4, 1)
	if plain := ansi.Strip(got); plain != "AXXA" {
		t.Fatalf("visible text = %q, want AXXA", plain)
	}

	base := bold.Render("aaaa") + "\n" + bold.Render("bbbb") + "\n" + bold.Render("cccc")
	got = overlayAt(base, "XX", 1, 1, 4, 3)
	lines := strings.Split(ansi.Strip(got), "\n")
	if len(lines) != 3 || lines[0] != "aaaa" || lines[1] != "bXXb" || lines[2] != "cccc" {
		t.Fatalf("stripped rows = %q, want [aaaa bXXb cccc]", lines)
	}
}

func TestPresetModalOverlaysStyledView(t *testing.T) {
	m := newTestModel()
	ret, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = ret.(model)
	m.showPresets = true
	ret, _ = m.Update(presetsLoadedMsg{presets: []preset{
		{Name: "Lunch", Items: []string{"Pizza", "Ramen"}},
	}})
	m = ret.(model)

	view := plainView(m)
	if !strings.Contains(view, "Lunch") {
		t.Fatalf("modal content missing from composed view:\n%s", view)
	}
	if !strings.Contains(view, "Lucky Dip") {
		t.Fatalf("styled header lost during modal composition:\n%s", view)
	}
}
