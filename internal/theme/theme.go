package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Title             *lipgloss.Style
	SearchBorder      *lipgloss.Style
	SearchBorderFocus *lipgloss.Style
	SearchText        *lipgloss.Style
	SearchPlaceholder *lipgloss.Style
	Cursor            *lipgloss.Style
	TableHeader       *lipgloss.Style
	Row               *lipgloss.Style
	SelectedRow       *lipgloss.Style
	RowIndicator      *lipgloss.Style
	CodeError         *lipgloss.Style
	Gauge             *lipgloss.Style
	GaugeLabel        *lipgloss.Style
	PopupBorder       *lipgloss.Style
	PopupTitle        *lipgloss.Style
	PopupText         *lipgloss.Style
	Info              *lipgloss.Style
	Error             *lipgloss.Style
	Footer            *lipgloss.Style
}

var defaultStyles = Styles{
	Title: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	SearchBorder: ptr(
		lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("250")),
	),
	SearchBorderFocus: ptr(
		lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("203")),
	),
	SearchText: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	SearchPlaceholder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Cursor: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("33")).Blink(true),
	),
	TableHeader: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("255")).Bold(true),
	),
	Row: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	SelectedRow: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	RowIndicator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
	),
	CodeError: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	),
	Gauge: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	),
	GaugeLabel: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	),
	PopupBorder: ptr(
		lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("203")),
	),
	PopupTitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
	),
	PopupText: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
