package components

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/obinna/suya/internal/tui/styles"
)

// Notice is a blocking message overlay. While visible it swallows all
// input; the first key press dismisses it. It is the terminal analog
// of a browser alert and carries every user-visible error notice.
type Notice struct {
	visible bool
	text    string
	isError bool
}

// NewNotice creates a hidden notice.
func NewNotice() Notice {
	return Notice{}
}

// Show displays an informational notice.
func (n *Notice) Show(text string) {
	n.visible = true
	n.text = text
	n.isError = false
}

// ShowError displays an error notice.
func (n *Notice) ShowError(text string) {
	n.visible = true
	n.text = text
	n.isError = true
}

// Hide dismisses the notice.
func (n *Notice) Hide() {
	n.visible = false
	n.text = ""
}

// IsVisible returns whether the notice is shown.
func (n Notice) IsVisible() bool {
	return n.visible
}

// View renders the notice box.
func (n Notice) View() string {
	if !n.visible {
		return ""
	}

	body := styles.WordWrap(n.text, 44)
	if n.isError {
		body = styles.ErrorStyle.Render(body)
	} else {
		body = lipgloss.NewStyle().Foreground(styles.White).Render(body)
	}

	hint := styles.DimStyle.Render("press any key to dismiss")

	return styles.NoticeStyle.Render(
		lipgloss.JoinVertical(lipgloss.Center, body, "", hint),
	)
}
