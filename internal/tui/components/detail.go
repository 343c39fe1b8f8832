package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/obinna/suya/internal/domain"
	"github.com/obinna/suya/internal/tui/styles"
)

// Detail is the recipe detail overlay: full record for one dish,
// revealed on demand and hidden again on dismiss. It has no lifecycle
// beyond hidden/visible.
type Detail struct {
	visible bool
	recipe  domain.Recipe

	width  int
	height int
	scroll int
}

// NewDetail creates a hidden detail overlay.
func NewDetail() Detail {
	return Detail{}
}

// Show populates and reveals the overlay.
func (d *Detail) Show(recipe domain.Recipe) {
	d.visible = true
	d.recipe = recipe
	d.scroll = 0
}

// Hide dismisses the overlay.
func (d *Detail) Hide() {
	d.visible = false
}

// IsVisible returns whether the overlay is shown.
func (d Detail) IsVisible() bool {
	return d.visible
}

// SetSize updates the available screen dimensions.
func (d *Detail) SetSize(width, height int) {
	d.width = width
	d.height = height
}

// ScrollDown moves the content viewport down one line.
func (d *Detail) ScrollDown() {
	d.scroll++
}

// ScrollUp moves the content viewport up one line.
func (d *Detail) ScrollUp() {
	if d.scroll > 0 {
		d.scroll--
	}
}

// View renders the overlay.
func (d Detail) View() string {
	if !d.visible {
		return ""
	}

	contentWidth := d.width * 2 / 3
	if contentWidth < 40 {
		contentWidth = 40
	}
	if contentWidth > 76 {
		contentWidth = 76
	}
	innerWidth := contentWidth - 6 // modal border + padding

	var b strings.Builder

	b.WriteString(styles.ModalTitleStyle.Render(styles.Truncate(d.recipe.DisplayName(), innerWidth)))
	b.WriteString("\n")

	category := d.recipe.Category
	if category == "" {
		category = "-"
	}
	area := d.recipe.Area
	if area == "" {
		area = "-"
	}
	b.WriteString(styles.DimStyle.Render(fmt.Sprintf("Category: %s", category)))
	b.WriteString("\n")
	b.WriteString(styles.DimStyle.Render(fmt.Sprintf("Area: %s", area)))
	b.WriteString("\n")
	if d.recipe.ThumbURL != "" {
		b.WriteString(styles.DimStyle.Render(styles.Truncate(d.recipe.ThumbURL, innerWidth)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(styles.AccentStyle.Render("Ingredients"))
	b.WriteString("\n")
	if len(d.recipe.Ingredients) == 0 {
		b.WriteString(styles.SubtitleStyle.Render("No ingredients listed"))
		b.WriteString("\n")
	}
	for _, ing := range d.recipe.Ingredients {
		// Measure may be blank; the line still renders.
		line := fmt.Sprintf("• %s - %s", ing.Name, ing.Measure)
		b.WriteString(styles.SubtitleStyle.Render(styles.Truncate(line, innerWidth)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(styles.AccentStyle.Render("Instructions"))
	b.WriteString("\n")
	instructions := d.recipe.Instructions
	if instructions == "" {
		instructions = "No instructions available."
	}
	b.WriteString(styles.SubtitleStyle.Render(styles.WordWrap(instructions, innerWidth)))

	body := clampLines(b.String(), d.scroll, d.contentHeight())
	footer := styles.DimStyle.Render("j/k scroll · esc close")

	return styles.ModalStyle.Width(contentWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, body, "", footer),
	)
}

func (d Detail) contentHeight() int {
	h := d.height - 8
	if h < 8 {
		h = 8
	}
	return h
}

// clampLines returns at most max lines of s starting at offset.
func clampLines(s string, offset, max int) string {
	lines := strings.Split(s, "\n")
	if offset >= len(lines) {
		offset = len(lines) - 1
	}
	if offset < 0 {
		offset = 0
	}
	end := offset + max
	if end > len(lines) {
		end = len(lines)
	}
	return strings.Join(lines[offset:end], "\n")
}
