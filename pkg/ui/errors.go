package ui

import (
	"github.com/charmbracelet/lipgloss"
)

var errorStyle = lipgloss.NewStyle().
	Foreground(lipgloss.AdaptiveColor{Light: "#C00000", Dark: "#FF5F5F"}).
	Bold(true)

// RenderError formats err as the final "Error: ..." line shown to the user
func RenderError(err error, styled bool) string {
	msg := "Error: " + err.Error()
	if !styled {
		return msg
	}
	return errorStyle.Render(msg)
}
