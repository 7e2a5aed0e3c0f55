package main

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha, trimmed to the slice of the palette this UI uses.
// https://catppuccin.com/palette
const (
	colorPink  lipgloss.Color = "#f5c2e7"
	colorMauve lipgloss.Color = "#cba6f7"
	colorRed   lipgloss.Color = "#f38ba8"
	colorGreen lipgloss.Color = "#a6e3a1"
	colorTeal  lipgloss.Color = "#94e2d5"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext1 lipgloss.Color = "#bac2de"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorOverlay0 lipgloss.Color = "#6c7086"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface0 lipgloss.Color = "#313244"
	colorBase     lipgloss.Color = "#1e1e2e"
	colorMantle   lipgloss.Color = "#181825"
)

// Semantic aliases
const (
	colorBrand   = colorPink
	colorAccent  = colorMauve
	colorSuccess = colorGreen
	colorError   = colorRed
	colorInfo    = colorTeal
)
