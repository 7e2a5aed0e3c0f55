package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"luckydip/internal/widget"
)

// ---------------------------------------------------------------------------
// Styles — Catppuccin Mocha themed
// ---------------------------------------------------------------------------

var (
	// Section titles
	titleStyle = lipgloss.NewStyle().Foreground(colorBrand).Bold(true)

	// Header bar (spans full width)
	headerBarStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorMantle).
			Padding(0, 2)

	// App name in header
	headerAppStyle = lipgloss.NewStyle().
			Foreground(colorBrand).
			Bold(true)

	// Placeholder / muted copy
	mutedStyle = lipgloss.NewStyle().Foreground(colorOverlay1)

	// Item index numbers
	itemNumStyle = lipgloss.NewStyle().Foreground(colorOverlay0)

	// Pick result, dim during the reveal tick then bright
	resultStyle    = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
	resultDimStyle = lipgloss.NewStyle().Foreground(colorOverlay0)

	// Toast phases
	toastVisibleStyle = lipgloss.NewStyle().
				Foreground(colorBase).
				Background(colorInfo).
				Padding(0, 1)
	toastFadingStyle = lipgloss.NewStyle().
				Foreground(colorOverlay0).
				Background(colorSurface0).
				Padding(0, 1)

	// Footer bar
	footerStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0).
			Background(colorMantle).
			Padding(0, 2)

	// Status bar (above footer)
	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorSubtext1).
			Background(colorSurface0).
			Padding(0, 2)

	statusErrStyle = lipgloss.NewStyle().
			Foreground(colorError).
			Background(colorSurface0).
			Bold(true).
			Padding(0, 2)

	// Section boxes and the preset modal
	listBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface1).Padding(0, 1)
	modalStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).Padding(0, 1)
)

// ---------------------------------------------------------------------------
// View
// ---------------------------------------------------------------------------

func (m model) View() string {
	header := m.renderHeader()
	items := m.items()

	input := m.renderSection("Add an item", m.input.View())
	listing := m.renderSection(fmt.Sprintf("Items (%d)", len(items)), m.renderItems(items))
	result := m.renderSection("Result", m.renderResult())

	main := header + "\n" + input + "\n" + listing + "\n" + result
	if toasts := m.renderToasts(); toasts != "" {
		main += "\n" + toasts
	}

	statusLine := m.renderStatus(m.status, m.statusErr)
	footer := m.renderFooter(m.footerText())
	if m.showPresets {
		return m.composeModal(main, statusLine, footer)
	}
	return m.placeWithFooter(main, statusLine, footer)
}

func (m model) renderHeader() string {
	text := headerAppStyle.Render(appName) + "  build a list, pick one at random"
	if m.width == 0 {
		return headerBarStyle.Render(text)
	}
	return headerBarStyle.Render(padRight(text, m.width-headerBarStyle.GetHorizontalFrameSize()))
}

func (m model) renderItems(items []string) string {
	if len(items) == 0 {
		return mutedStyle.Render("No items yet. Type something and press enter.")
	}

	visible := m.cfg.UI.VisibleItems
	if visible <= 0 {
		visible = 10
	}
	start := 0
	if len(items) > visible {
		start = len(items) - visible
	}

	width := m.listContentWidth()
	var lines []string
	if start > 0 {
		lines = append(lines, mutedStyle.Render(fmt.Sprintf("… %d earlier items", start)))
	}
	for i := start; i < len(items); i++ {
		num := itemNumStyle.Render(fmt.Sprintf("%3d.", i+1))
		lines = append(lines, num+" "+truncate(items[i], width-5))
	}
	return strings.Join(lines, "\n")
}

func (m model) renderResult() string {
	if m.result == "" {
		return mutedStyle.Render("Nothing picked yet. Press ctrl+r when the list is ready.")
	}
	line := "You picked " + m.result
	if !m.revealed {
		return resultDimStyle.Render(line)
	}
	return resultStyle.Render(line)
}

// renderToasts draws live notifications newest-last, right-aligned, capped
// by ui.max_toasts. Hidden toasts are skipped by the notifier itself.
func (m model) renderToasts() string {
	toasts := m.notifier().Active()
	if len(toasts) == 0 {
		return ""
	}
	maxToasts := m.cfg.UI.MaxToasts
	if maxToasts <= 0 {
		maxToasts = 3
	}
	if len(toasts) > maxToasts {
		toasts = toasts[len(toasts)-maxToasts:]
	}

	var lines []string
	for _, toast := range toasts {
		style := toastVisibleStyle
		if toast.Phase == widget.PhaseFadingOut {
			style = toastFadingStyle
		}
		line := style.Render(toast.Message)
		if m.width > 0 {
			line = lipgloss.PlaceHorizontal(m.width, lipgloss.Right, line)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func (m model) renderSection(title, content string) string {
	header := titleStyle.Render(title)
	section := header + "\n" + listBoxStyle.Width(m.sectionWidth()).Render(content)
	if m.width == 0 {
		return section
	}
	return lipgloss.Place(m.width, lipgloss.Height(section), lipgloss.Center, lipgloss.Top, section)
}

func (m model) footerText() string {
	if m.showPresets {
		return renderHelp(m.modalKeys.ShortHelp())
	}
	return renderHelp(m.keys.ShortHelp())
}

func renderHelp(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		help := binding.Help()
		if help.Key == "" && help.Desc == "" {
			continue
		}
		parts = append(parts, boldKey(help.Key)+" "+help.Desc)
	}
	return strings.Join(parts, "  ")
}

func boldKey(text string) string {
	if text == "" {
		return ""
	}
	return "\x1b[1m" + text + "\x1b[22m"
}

func (m model) renderFooter(text string) string {
	if m.width == 0 {
		return footerStyle.Render(text)
	}
	flat := strings.ReplaceAll(text, "\n", " ")
	padded := padRight(flat, m.width-footerStyle.GetHorizontalFrameSize())
	return footerStyle.Render(padded)
}

func (m model) renderStatus(text string, isErr bool) string {
	style := statusBarStyle
	if isErr {
		style = statusErrStyle
	}
	if m.width == 0 {
		return style.Render(text)
	}
	flat := strings.ReplaceAll(text, "\n", " ")
	padded := padRight(flat, m.width-style.GetHorizontalFrameSize())
	return style.Render(padded)
}

// ---------------------------------------------------------------------------
// Layout helpers
// ---------------------------------------------------------------------------

func (m model) sectionWidth() int {
	if m.width == 0 {
		return 76
	}
	width := m.width - 4
	if width < 20 {
		width = m.width
	}
	return width
}

func (m model) listContentWidth() int {
	frameH := listBoxStyle.GetHorizontalFrameSize()
	contentWidth := m.sectionWidth() - frameH
	if contentWidth < 20 {
		contentWidth = 20
	}
	return contentWidth
}

func (m *model) resizePresetList() {
	if m.width == 0 || m.height == 0 {
		return
	}
	listWidth := min(60, m.width-6)
	if listWidth < 30 {
		listWidth = 30
	}
	m.presetList.SetWidth(listWidth)
	m.presetList.SetHeight(min(12, m.height-8))
}

func (m model) placeWithFooter(body, statusLine, footer string) string {
	if m.height == 0 {
		return body + "\n\n" + statusLine + "\n" + footer
	}
	contentHeight := m.height - 2
	if contentHeight < 1 {
		contentHeight = 1
	}
	if lipgloss.Height(body) >= contentHeight {
		return body + "\n" + statusLine + "\n" + footer
	}
	main := lipgloss.Place(m.width, contentHeight, lipgloss.Left, lipgloss.Top, body)
	return main + "\n" + statusLine + "\n" + footer
}

func (m model) composeModal(base, statusLine, footer string) string {
	baseView := m.placeWithFooter(base, statusLine, footer)
	if m.height == 0 || m.width == 0 {
		return baseView + "\n\n" + m.presetModalView()
	}
	modalContent := lipgloss.NewStyle().Width(m.presetList.Width()).Render(m.presetModalView())
	modal := modalStyle.Render(modalContent)
	lines := splitLines(modal)
	modalWidth := maxLineWidth(lines)
	modalHeight := len(lines)

	targetHeight := m.height - 2
	if targetHeight < 1 {
		targetHeight = 1
	}
	x := (m.width - modalWidth) / 2
	if x < 0 {
		x = 0
	}
	y := (targetHeight - modalHeight) / 2
	if y < 0 {
		y = 0
	}
	return overlayAt(baseView, modal, x, y, m.width, targetHeight)
}

func (m model) presetModalView() string {
	if !m.presetsReady {
		return "Loading presets..."
	}
	if len(m.presetList.Items()) == 0 {
		return "No presets found."
	}
	return m.presetList.View()
}

// ---------------------------------------------------------------------------
// String helpers
// ---------------------------------------------------------------------------

func splitLines(s string) []string {
	if s == "" {
		return []string{""}
	}
	return strings.Split(s, "\n")
}

func maxLineWidth(lines []string) int {
	max := 0
	for _, line := range lines {
		if w := ansi.StringWidth(line); w > max {
			max = w
		}
	}
	return max
}

// overlayAt stamps overlay onto base at column x, row y. Rows outside base
// or the target height are dropped. Base rows are cut at visual positions
// with ansi-aware truncation, so styled runs survive the splice.
func overlayAt(base, overlay string, x, y, width, height int) string {
	baseLines := splitLines(base)
	overlayLines := splitLines(overlay)
	overlayWidth := maxLineWidth(overlayLines)
	for i, line := range overlayLines {
		row := y + i
		if row < 0 || row >= len(baseLines) || row >= height {
			continue
		}
		target := padRight(baseLines[row], width)
		left := ansi.Truncate(target, x, "")
		leftWidth := ansi.StringWidth(left)
		if leftWidth < x {
			left += strings.Repeat(" ", x-leftWidth)
		}

		overlayLine := padRight(line, overlayWidth)
		pos := x + ansi.StringWidth(overlayLine)
		right := ""
		if width > 0 {
			right = ansi.TruncateLeft(target, pos, "")
			rightWidth := ansi.StringWidth(right)
			gap := width - pos - rightWidth
			if gap > 0 {
				right = strings.Repeat(" ", gap) + right
			}
		}

		baseLines[row] = left + overlayLine + right
	}
	return strings.Join(baseLines, "\n")
}

func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// truncate shortens s to width columns, appending "…" if truncated.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, "…")
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
