package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderPage assembles a screen out of a title, a body and a hot-key
// legend, keeping the legend pinned to the bottom of the page.
func renderPage(title, body, hotKeys string) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")
	b.WriteString(body)
	if hotKeys != "" {
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render(hotKeys))
	}
	return appStyle.Render(b.String())
}

// renderOverlay draws a bordered box used for error and confirmation
// dialogs on top of an otherwise empty page.
func renderOverlay(title, message, hotKeys string) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")
	b.WriteString(message)
	if hotKeys != "" {
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render(hotKeys))
	}
	return appStyle.Render(overlayBoxStyle.Render(b.String()))
}

func valueOrDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// fitText trims a string to width runes, appending an ellipsis when the
// string had to be cut.
func fitText(s string, width int) string {
	if width <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(r[:width-1]) + "…"
}

func padCell(s string, width int) string {
	return fmt.Sprintf("%-*s", width, fitText(s, width))
}

func checkbox(v bool) string {
	if v {
		return "[x]"
	}
	return "[ ]"
}

func cursorFor(selected bool) string {
	if selected {
		return "> "
	}
	return "  "
}

func joinHorizontal(parts ...string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}
