package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/obinna/suya/internal/domain"
	"github.com/obinna/suya/internal/tui/styles"
	"github.com/sahilm/fuzzy"
)

// Layout constants for the card grid
const (
	cardInnerWidth  = 22
	cardTotalWidth  = cardInnerWidth + 4 // border + padding
	cardTotalHeight = 5                  // 3 content lines + border
)

// Grid renders recipe records as a grid of cards. Each card is tagged
// with its recipe ID so a removal can drop that one card without a
// full reload. Exactly one of the two card actions (favorite / remove)
// is offered, chosen by the grid mode at render time.
type Grid struct {
	recipes       []domain.Recipe
	favoritesMode bool

	// Selection
	cursor    int
	offsetRow int

	// Dimensions
	width   int
	height  int
	columns int // configured target column count

	// Quick-filter state
	filterActive bool
	filterInput  textinput.Model
	filteredIdx  []int         // indices into recipes, ranked
	matchedRunes map[int][]int // recipe index -> matched rune positions
}

// NewGrid creates a new grid component.
func NewGrid(columns int) Grid {
	if columns < 1 {
		columns = 3
	}

	ti := textinput.New()
	ti.Placeholder = "type to filter..."
	ti.Prompt = "/ "
	ti.PromptStyle = styles.FilterPromptStyle
	ti.TextStyle = styles.FilterStyle

	return Grid{
		columns:     columns,
		filterInput: ti,
	}
}

// SetRecipes replaces the grid content. Records without an identifier
// are silently skipped. favoritesMode selects which action each card
// offers.
func (g *Grid) SetRecipes(recipes []domain.Recipe, favoritesMode bool) {
	g.recipes = g.recipes[:0]
	for _, r := range recipes {
		if !r.Valid() {
			continue
		}
		g.recipes = append(g.recipes, r)
	}
	g.favoritesMode = favoritesMode
	g.cursor = 0
	g.offsetRow = 0
	g.clearFilter()
}

// FavoritesMode reports whether the grid is showing the favorites view.
func (g Grid) FavoritesMode() bool {
	return g.favoritesMode
}

// Count returns the number of cards currently shown.
func (g Grid) Count() int {
	return len(g.visible())
}

// Selected returns the recipe under the cursor.
func (g Grid) Selected() (domain.Recipe, bool) {
	idx := g.visible()
	if len(idx) == 0 || g.cursor >= len(idx) {
		return domain.Recipe{}, false
	}
	return g.recipes[idx[g.cursor]], true
}

// RemoveByID drops the card with the given ID in place, leaving the
// rest of the grid untouched. Comparison is trim-normalized like the
// favorites store.
func (g *Grid) RemoveByID(id string) {
	target := strings.TrimSpace(id)
	next := g.recipes[:0]
	for _, r := range g.recipes {
		if strings.TrimSpace(r.ID) == target {
			continue
		}
		next = append(next, r)
	}
	g.recipes = next

	g.refilter()
	if max := len(g.visible()); g.cursor >= max && max > 0 {
		g.cursor = max - 1
	}
	g.scrollToCursor()
}

// SetSize updates the component dimensions.
func (g *Grid) SetSize(width, height int) {
	g.width = width
	g.height = height
	g.scrollToCursor()
}

// visible returns the indices of the records currently shown, in
// display order.
func (g Grid) visible() []int {
	if g.filteredIdx != nil {
		return g.filteredIdx
	}
	idx := make([]int, len(g.recipes))
	for i := range g.recipes {
		idx[i] = i
	}
	return idx
}

// === Navigation ===

func (g *Grid) MoveLeft() {
	if g.cursor > 0 {
		g.cursor--
		g.scrollToCursor()
	}
}

func (g *Grid) MoveRight() {
	if g.cursor < len(g.visible())-1 {
		g.cursor++
		g.scrollToCursor()
	}
}

func (g *Grid) MoveUp() {
	if g.cursor-g.cols() >= 0 {
		g.cursor -= g.cols()
		g.scrollToCursor()
	}
}

func (g *Grid) MoveDown() {
	if g.cursor+g.cols() < len(g.visible()) {
		g.cursor += g.cols()
		g.scrollToCursor()
	}
}

func (g Grid) cols() int {
	cols := g.width / cardTotalWidth
	if cols < 1 {
		cols = 1
	}
	if cols > g.columns {
		cols = g.columns
	}
	return cols
}

func (g Grid) visibleRows() int {
	reserved := 1 // filter/status line
	rows := (g.height - reserved) / cardTotalHeight
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (g *Grid) scrollToCursor() {
	row := g.cursor / g.cols()
	if row < g.offsetRow {
		g.offsetRow = row
	}
	if row >= g.offsetRow+g.visibleRows() {
		g.offsetRow = row - g.visibleRows() + 1
	}
	if g.offsetRow < 0 {
		g.offsetRow = 0
	}
}

// === Quick filter ===

// StartFilter activates the fuzzy quick-filter over the current cards.
func (g *Grid) StartFilter() tea.Cmd {
	g.filterActive = true
	g.filterInput.SetValue("")
	return g.filterInput.Focus()
}

// FilterActive reports whether the filter input has focus.
func (g Grid) FilterActive() bool {
	return g.filterActive
}

// UpdateFilter feeds input to the filter. Esc clears and closes the
// filter; enter keeps the narrowed set and returns focus to the grid.
func (g Grid) UpdateFilter(msg tea.Msg) (Grid, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			g.clearFilter()
			return g, nil
		case "enter":
			g.filterActive = false
			g.filterInput.Blur()
			return g, nil
		}
	}

	var cmd tea.Cmd
	g.filterInput, cmd = g.filterInput.Update(msg)
	g.refilter()
	return g, cmd
}

func (g *Grid) clearFilter() {
	g.filterActive = false
	g.filterInput.Blur()
	g.filterInput.SetValue("")
	g.filteredIdx = nil
	g.matchedRunes = nil
}

// refilter recomputes the ranked match set for the current query.
func (g *Grid) refilter() {
	query := g.filterInput.Value()
	if query == "" {
		g.filteredIdx = nil
		g.matchedRunes = nil
		return
	}

	names := make([]string, len(g.recipes))
	for i, r := range g.recipes {
		names[i] = r.Name
	}

	matches := fuzzy.Find(query, names)
	g.filteredIdx = make([]int, 0, len(matches))
	g.matchedRunes = make(map[int][]int, len(matches))
	for _, m := range matches {
		g.filteredIdx = append(g.filteredIdx, m.Index)
		g.matchedRunes[m.Index] = m.MatchedIndexes
	}

	if g.cursor >= len(g.filteredIdx) {
		g.cursor = 0
	}
	g.offsetRow = 0
}

// === Rendering ===

// View renders the grid.
func (g Grid) View() string {
	idx := g.visible()

	if len(idx) == 0 {
		return g.renderEmpty()
	}

	cols := g.cols()
	rows := g.visibleRows()

	startRow := g.offsetRow
	endRow := startRow + rows

	var renderedRows []string
	for row := startRow; row < endRow; row++ {
		start := row * cols
		if start >= len(idx) {
			break
		}
		end := start + cols
		if end > len(idx) {
			end = len(idx)
		}

		cards := make([]string, 0, cols)
		for pos := start; pos < end; pos++ {
			cards = append(cards, g.renderCard(idx[pos], pos == g.cursor))
		}
		renderedRows = append(renderedRows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}

	sections := []string{g.renderStatusLine(len(idx))}
	sections = append(sections, renderedRows...)
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (g Grid) renderEmpty() string {
	text := "No meals found."
	if g.favoritesMode {
		text = "No favorites saved yet."
	}
	return styles.PlaceholderStyle.Render(text)
}

func (g Grid) renderStatusLine(count int) string {
	if g.filterActive {
		return g.filterInput.View()
	}
	if g.filterInput.Value() != "" {
		return styles.FilterStyle.Render(fmt.Sprintf("/ %s (%d)", g.filterInput.Value(), count))
	}
	if g.favoritesMode {
		return styles.AccentStyle.Render(fmt.Sprintf("Favorites (%d)", count))
	}
	return styles.DimStyle.Render(fmt.Sprintf("%d meals", count))
}

func (g Grid) renderCard(recipeIdx int, selected bool) string {
	r := g.recipes[recipeIdx]

	name := g.renderName(recipeIdx, selected)

	meta := r.Category
	if r.Area != "" {
		if meta != "" {
			meta += " · "
		}
		meta += r.Area
	}
	if meta == "" {
		meta = "#" + r.ID
	}
	metaLine := styles.DimStyle.Render(styles.Truncate(meta, cardInnerWidth))

	action := "⭐ Favorite"
	if g.favoritesMode {
		action = "❌ Remove"
	}
	actionLine := styles.DimStyle.Render(styles.Truncate("👁 Details  "+action, cardInnerWidth))

	content := lipgloss.JoinVertical(lipgloss.Left, name, metaLine, actionLine)

	style := styles.CardStyle
	if selected {
		style = styles.CardSelectedStyle
	}
	return style.Width(cardInnerWidth + 2).Render(content)
}

// renderName renders the card title with filter-match highlighting.
func (g Grid) renderName(recipeIdx int, selected bool) string {
	name := styles.Truncate(g.recipes[recipeIdx].DisplayName(), cardInnerWidth)

	matched := g.matchedRunes[recipeIdx]
	if len(matched) == 0 {
		if selected {
			return styles.TitleStyle.Render(name)
		}
		return styles.SubtitleStyle.Render(name)
	}

	matchSet := make(map[int]bool, len(matched))
	for _, i := range matched {
		matchSet[i] = true
	}

	base := styles.SubtitleStyle
	if selected {
		base = styles.TitleStyle
	}

	var b strings.Builder
	for i, r := range []rune(name) {
		if matchSet[i] {
			b.WriteString(styles.MatchHighlightStyle.Render(string(r)))
		} else {
			b.WriteString(base.Render(string(r)))
		}
	}
	return b.String()
}
