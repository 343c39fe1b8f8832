package tui

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/obinna/suya/internal/domain"
	"github.com/obinna/suya/internal/service"
	"github.com/obinna/suya/internal/tui/components"
	"github.com/obinna/suya/internal/tui/styles"
)

// ViewState represents the current view of the application
type ViewState int

const (
	ViewSignup ViewState = iota
	ViewLogin
	ViewBrowse
)

const (
	spinnerInterval = 100 * time.Millisecond
	statusLinger    = 4 * time.Second
)

// Model is the main Bubble Tea model for the application
type Model struct {
	state  ViewState
	keys   KeyMap
	logger *slog.Logger

	// Services
	auth      *service.AuthService
	search    *service.SearchService
	favorites *service.FavoritesService
	source    domain.RecipeSource

	// Components
	signupForm components.AuthForm
	loginForm  components.AuthForm
	grid       components.Grid
	detail     components.Detail
	notice     components.Notice

	// Search bar
	searchInput   textinput.Model
	searchFocused bool

	// Browse state
	mealType         domain.MealType
	viewingFavorites bool
	gen              int // fetch generation, stale results are dropped

	// Layout and status
	width        int
	height       int
	status       string
	statusError  bool
	loading      bool
	spinnerFrame int
	username     string
}

// NewModel creates a new application model. An existing session skips
// the auth views and lands directly in browse.
func NewModel(
	auth *service.AuthService,
	search *service.SearchService,
	favorites *service.FavoritesService,
	source domain.RecipeSource,
	gridColumns int,
	logger *slog.Logger,
) Model {
	if logger == nil {
		logger = slog.Default()
	}

	searchInput := textinput.New()
	searchInput.Placeholder = "search meals..."
	searchInput.Prompt = "🔍 "
	searchInput.CharLimit = 80
	searchInput.Width = 40

	m := Model{
		state:       ViewSignup,
		keys:        DefaultKeyMap(),
		logger:      logger,
		auth:        auth,
		search:      search,
		favorites:   favorites,
		source:      source,
		signupForm:  components.NewAuthForm("Create Account", "enter to submit · ctrl+l to login"),
		loginForm:   components.NewAuthForm("Welcome Back", "enter to submit · ctrl+s to sign up"),
		grid:        components.NewGrid(gridColumns),
		detail:      components.NewDetail(),
		notice:      components.NewNotice(),
		searchInput: searchInput,
	}

	if username, ok := auth.CurrentUser(); ok {
		m.state = ViewBrowse
		m.username = username
		m.loading = true
	}
	return m
}

// Init initializes the application. Init runs on a copy of the model,
// so the startup fetch carries the generation the model already holds
// instead of going through beginFetch.
func (m Model) Init() tea.Cmd {
	if m.state == ViewBrowse {
		return tea.Batch(SuggestionsCmd(m.search, m.gen), TickCmd(spinnerInterval))
	}
	return textinput.Blink
}

// beginFetch bumps the generation counter and starts the spinner
// alongside the given fetch. The command must carry m.gen+1 as its
// generation.
func (m *Model) beginFetch(cmd tea.Cmd) tea.Cmd {
	m.gen++
	m.loading = true
	return tea.Batch(cmd, TickCmd(spinnerInterval))
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.grid.SetSize(msg.Width-2, msg.Height-6)
		m.detail.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		// The notice blocks everything, any key dismisses it.
		if m.notice.IsVisible() {
			m.notice.Hide()
			return m, nil
		}
		return m.handleKeyMsg(msg)

	case RecipesLoadedMsg:
		if msg.Gen != m.gen {
			return m, nil
		}
		m.loading = false
		m.viewingFavorites = false
		m.grid.SetRecipes(msg.Recipes, false)
		if msg.Fallback {
			m.status = "No meals found. Showing suggestions."
			m.statusError = true
			return m, ClearStatusCmd(statusLinger)
		}
		return m, nil

	case FavoritesLoadedMsg:
		if msg.Gen != m.gen {
			return m, nil
		}
		m.loading = false
		m.viewingFavorites = true
		m.grid.SetRecipes(msg.Recipes, true)
		return m, nil

	case DetailLoadedMsg:
		m.loading = false
		if !msg.OK || msg.Recipe == nil {
			m.notice.ShowError("Could not load recipe details.")
			return m, nil
		}
		m.detail.Show(*msg.Recipe)
		return m, nil

	case NoticeMsg:
		m.loading = false
		if msg.IsError {
			m.notice.ShowError(msg.Text)
		} else {
			m.notice.Show(msg.Text)
		}
		return m, nil

	case ErrMsg:
		m.loading = false
		m.logger.Error("operation failed", "context", msg.Context, "error", msg.Err)
		m.notice.ShowError(msg.Error())
		return m, nil

	case FavoriteRemovedMsg:
		m.grid.RemoveByID(msg.ID)
		m.status = "Removed from favorites."
		m.statusError = false
		if m.viewingFavorites {
			// Redundant with the in-place removal, but keeps the view
			// authoritative against the store.
			return m, tea.Batch(
				m.beginFetch(LoadFavoritesCmd(m.favorites, m.gen+1)),
				ClearStatusCmd(statusLinger),
			)
		}
		return m, ClearStatusCmd(statusLinger)

	case SignedUpMsg:
		m.state = ViewLogin
		m.signupForm.Reset()
		m.notice.Show("Signup successful! Please login.")
		return m, nil

	case LoggedInMsg:
		m.state = ViewBrowse
		m.username = msg.Username
		m.loginForm.Reset()
		m.mealType = domain.MealTypeAny
		return m, m.beginFetch(SuggestionsCmd(m.search, m.gen+1))

	case LoggedOutMsg:
		m.state = ViewLogin
		m.username = ""
		m.viewingFavorites = false
		m.searchFocused = false
		m.searchInput.SetValue("")
		m.grid.SetRecipes(nil, false)
		m.loginForm.Reset()
		return m, textinput.Blink

	case StatusMsg:
		m.status = msg.Text
		m.statusError = msg.IsError
		return m, ClearStatusCmd(statusLinger)

	case ClearStatusMsg:
		m.status = ""
		m.statusError = false
		return m, nil

	case TickMsg:
		if !m.loading {
			return m, nil
		}
		m.spinnerFrame++
		return m, TickCmd(spinnerInterval)
	}

	return m, nil
}

// handleKeyMsg handles keyboard input
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.state {
	case ViewSignup:
		return m.handleSignupKeys(msg)
	case ViewLogin:
		return m.handleLoginKeys(msg)
	default:
		return m.handleBrowseKeys(msg)
	}
}

func (m Model) handleSignupKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+l" {
		m.state = ViewLogin
		m.loginForm.Reset()
		return m, textinput.Blink
	}

	form, cmd, submitted := m.signupForm.Update(msg)
	m.signupForm = form
	if submitted {
		username, password := m.signupForm.Values()
		return m, SignUpCmd(m.auth, username, password)
	}
	return m, cmd
}

func (m Model) handleLoginKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.state = ViewSignup
		m.signupForm.Reset()
		return m, textinput.Blink
	}

	form, cmd, submitted := m.loginForm.Update(msg)
	m.loginForm = form
	if submitted {
		username, password := m.loginForm.Values()
		return m, LogInCmd(m.auth, username, password)
	}
	return m, cmd
}

func (m Model) handleBrowseKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Overlay precedence: detail first, then quick filter, then the
	// search bar, then grid navigation.
	if m.detail.IsVisible() {
		switch {
		case key.Matches(msg, m.keys.Escape) || msg.String() == "q":
			m.detail.Hide()
		case key.Matches(msg, m.keys.Down):
			m.detail.ScrollDown()
		case key.Matches(msg, m.keys.Up):
			m.detail.ScrollUp()
		}
		return m, nil
	}

	if m.grid.FilterActive() {
		var cmd tea.Cmd
		m.grid, cmd = m.grid.UpdateFilter(msg)
		return m, cmd
	}

	if m.searchFocused {
		switch msg.String() {
		case "esc":
			m.searchFocused = false
			m.searchInput.Blur()
			return m, nil
		case "enter":
			m.searchFocused = false
			m.searchInput.Blur()
			query := strings.TrimSpace(m.searchInput.Value())
			if query == "" {
				return m, m.beginFetch(SuggestionsCmd(m.search, m.gen+1))
			}
			return m, m.beginFetch(SearchCmd(m.search, query, m.gen+1))
		}
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.grid.MoveUp()
	case key.Matches(msg, m.keys.Down):
		m.grid.MoveDown()
	case key.Matches(msg, m.keys.Left):
		m.grid.MoveLeft()
	case key.Matches(msg, m.keys.Right):
		m.grid.MoveRight()

	case key.Matches(msg, m.keys.Enter):
		if recipe, ok := m.grid.Selected(); ok {
			m.loading = true
			return m, tea.Batch(LookupDetailCmd(m.source, recipe.ID), TickCmd(spinnerInterval))
		}

	case key.Matches(msg, m.keys.Favorite):
		recipe, ok := m.grid.Selected()
		if !ok {
			return m, nil
		}
		if m.viewingFavorites {
			return m, RemoveFavoriteCmd(m.favorites, recipe.ID)
		}
		return m, AddFavoriteCmd(m.favorites, recipe.ID)

	case key.Matches(msg, m.keys.Favorites):
		if m.viewingFavorites {
			return m, m.beginFetch(SuggestionsCmd(m.search, m.gen+1))
		}
		return m, m.beginFetch(LoadFavoritesCmd(m.favorites, m.gen+1))

	case key.Matches(msg, m.keys.Search):
		m.searchFocused = true
		return m, m.searchInput.Focus()

	case key.Matches(msg, m.keys.MealType):
		m.mealType = m.mealType.Next()
		return m, m.beginFetch(MealTypeCmd(m.search, m.mealType, m.gen+1))

	case key.Matches(msg, m.keys.Filter):
		return m, m.grid.StartFilter()

	case key.Matches(msg, m.keys.Refresh):
		m.mealType = domain.MealTypeAny
		m.searchInput.SetValue("")
		return m, m.beginFetch(SuggestionsCmd(m.search, m.gen+1))

	case key.Matches(msg, m.keys.Logout):
		return m, LogOutCmd(m.auth)
	}

	return m, nil
}

// View renders the application
func (m Model) View() string {
	if m.width == 0 {
		return "loading..."
	}

	if m.notice.IsVisible() {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.notice.View())
	}

	switch m.state {
	case ViewSignup:
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.signupForm.View())
	case ViewLogin:
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.loginForm.View())
	}

	if m.detail.IsVisible() {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.detail.View())
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.searchInput.View(),
		m.renderStatus(),
		m.grid.View(),
		m.renderHelp(),
	)
}

func (m Model) renderHeader() string {
	title := styles.AccentStyle.Bold(true).Render("Suya")
	mode := styles.DimStyle.Render(fmt.Sprintf("meal: %s", m.mealType))
	user := styles.DimStyle.Render("@" + m.username)
	return lipgloss.JoinHorizontal(lipgloss.Center, title, "  ", mode, "  ", user)
}

func (m Model) renderStatus() string {
	if m.loading {
		return styles.RenderSpinner(m.spinnerFrame) + styles.DimStyle.Render(" loading...")
	}
	if m.status == "" {
		return ""
	}
	if m.statusError {
		return styles.ErrorStyle.Render(m.status)
	}
	return styles.SuccessStyle.Render(m.status)
}

func (m Model) renderHelp() string {
	pairs := []struct{ k, d string }{
		{"s", "search"},
		{"t", "meal type"},
		{"f", "favorites"},
		{"enter", "details"},
		{"a", "favorite"},
		{"/", "filter"},
		{"r", "reload"},
		{"L", "logout"},
		{"q", "quit"},
	}
	if m.viewingFavorites {
		pairs[4].d = "remove"
	}

	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		parts = append(parts, styles.HelpKeyStyle.Render(p.k)+" "+styles.HelpDescStyle.Render(p.d))
	}
	return strings.Join(parts, styles.HelpDescStyle.Render(" · "))
}
