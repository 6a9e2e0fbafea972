// Package view renders dashboard pieces with lipgloss.
package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color is a semantic badge color.
type Color string

const (
	ColorSuccess Color = "success"
	ColorWarning Color = "warning"
	ColorError   Color = "error"
	ColorInfo    Color = "info"
	ColorDefault Color = "default"
)

var palette = map[Color]lipgloss.Color{
	ColorSuccess: lipgloss.Color("#2e7d32"),
	ColorWarning: lipgloss.Color("#ed6c02"),
	ColorError:   lipgloss.Color("#d32f2f"),
	ColorInfo:    lipgloss.Color("#0288d1"),
	ColorDefault: lipgloss.Color("245"),
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#1976d2"))

	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	bannerStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(palette[ColorWarning]).
			Foreground(palette[ColorWarning]).
			Padding(0, 1)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	activeCardStyle = cardStyle.BorderForeground(palette[ColorSuccess])
)

var locationStatuses = map[string]struct {
	label string
	color Color
}{
	"OPEN":               {"Abierto", ColorSuccess},
	"CLOSED":             {"Cerrado", ColorError},
	"CLOSED_TEMPORARILY": {"Cerrado temporalmente", ColorWarning},
	"CLOSED_PERMANENTLY": {"Cerrado permanentemente", ColorError},
}

// LocationStatus translates an upstream open status. Unknown statuses keep their
// raw value, an empty one reads "Desconocido".
func LocationStatus(status string) (string, Color) {
	if s, ok := locationStatuses[status]; ok {
		return s.label, s.color
	}
	if status == "" {
		return "Desconocido", ColorDefault
	}

	return status, ColorDefault
}

// PostStateLabel is "Activa" for live posts, "Borrador" otherwise.
func PostStateLabel(state string) string {
	if state == "" || state == "LIVE" {
		return "Activa"
	}

	return "Borrador"
}

// DaysColor grades the days since the last post: red from 30, orange from 14.
func DaysColor(days int) Color {
	switch {
	case days >= 30:
		return ColorError
	case days >= 14:
		return ColorWarning
	default:
		return ColorSuccess
	}
}

// Badge renders a short colored label.
func Badge(label string, c Color) string {
	fg, ok := palette[c]
	if !ok {
		fg = palette[ColorDefault]
	}

	return lipgloss.NewStyle().Bold(true).Foreground(fg).Render("[" + label + "]")
}

// Title renders a page heading.
func Title(s string) string {
	return titleStyle.Render(s)
}

// Muted renders secondary text.
func Muted(s string) string {
	return mutedStyle.Render(s)
}

// Banner renders an informational box, used for example data notices.
func Banner(msg string) string {
	return bannerStyle.Render(msg)
}

// Notice renders a one line notification.
func Notice(msg string, c Color) string {
	fg, ok := palette[c]
	if !ok {
		fg = palette[ColorDefault]
	}

	return lipgloss.NewStyle().Foreground(fg).Render("• " + msg)
}

// Card renders a bordered block; highlighted cards get a green border.
func Card(highlighted bool, title string, lines ...string) string {
	style := cardStyle
	if highlighted {
		style = activeCardStyle
	}

	body := append([]string{lipgloss.NewStyle().Bold(true).Render(title)}, lines...)

	return style.Render(strings.Join(body, "\n"))
}

// Stars renders a 1..5 rating.
func Stars(rating int) string {
	rating = max(0, min(5, rating))

	return strings.Repeat("★", rating) + strings.Repeat("☆", 5-rating)
}

// Redirect tells the operator to log in first.
func Redirect(path string) string {
	return Notice("Redirigiendo a "+path+": inicia sesión para continuar", ColorInfo)
}
