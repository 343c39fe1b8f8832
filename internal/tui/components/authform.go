package components

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/obinna/suya/internal/tui/styles"
)

// AuthForm is a username/password form used by both the signup and
// login views.
type AuthForm struct {
	title    string
	hint     string
	username textinput.Model
	password textinput.Model
	focusIdx int
}

// NewAuthForm creates a form with the given title and footer hint.
func NewAuthForm(title, hint string) AuthForm {
	user := textinput.New()
	user.Placeholder = "username"
	user.CharLimit = 40
	user.Width = 28
	user.Prompt = ""
	user.TextStyle = lipgloss.NewStyle().Foreground(styles.White)
	user.PlaceholderStyle = styles.DimStyle
	user.Focus()

	pass := textinput.New()
	pass.Placeholder = "password"
	pass.CharLimit = 40
	pass.Width = 28
	pass.Prompt = ""
	pass.EchoMode = textinput.EchoPassword
	pass.EchoCharacter = '•'
	pass.TextStyle = lipgloss.NewStyle().Foreground(styles.White)
	pass.PlaceholderStyle = styles.DimStyle

	return AuthForm{
		title:    title,
		hint:     hint,
		username: user,
		password: pass,
	}
}

// Values returns the current username and password.
func (f AuthForm) Values() (username, password string) {
	return f.username.Value(), f.password.Value()
}

// Reset clears both fields and refocuses the username.
func (f *AuthForm) Reset() {
	f.username.SetValue("")
	f.password.SetValue("")
	f.focusIdx = 0
	f.username.Focus()
	f.password.Blur()
}

// Update handles input events, returns (form, cmd, submitted).
func (f AuthForm) Update(msg tea.Msg) (AuthForm, tea.Cmd, bool) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter":
			if f.focusIdx == 0 {
				f.moveFocus(1)
				return f, nil, false
			}
			return f, nil, true
		case "tab", "down":
			f.moveFocus(1)
			return f, nil, false
		case "shift+tab", "up":
			f.moveFocus(-1)
			return f, nil, false
		}
	}

	var cmd tea.Cmd
	if f.focusIdx == 0 {
		f.username, cmd = f.username.Update(msg)
	} else {
		f.password, cmd = f.password.Update(msg)
	}
	return f, cmd, false
}

func (f *AuthForm) moveFocus(delta int) {
	f.focusIdx = (f.focusIdx + delta + 2) % 2
	if f.focusIdx == 0 {
		f.username.Focus()
		f.password.Blur()
	} else {
		f.password.Focus()
		f.username.Blur()
	}
}

// View renders the form.
func (f AuthForm) View() string {
	userLabel := styles.FormLabelStyle.Render("Username")
	passLabel := styles.FormLabelStyle.Render("Password")
	if f.focusIdx == 0 {
		userLabel = styles.FormFocusedLabelStyle.Render("Username")
	} else {
		passLabel = styles.FormFocusedLabelStyle.Render("Password")
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		styles.ModalTitleStyle.Render(f.title),
		userLabel,
		f.username.View(),
		"",
		passLabel,
		f.password.View(),
		"",
		styles.DimStyle.Render(f.hint),
	)

	return styles.ModalStyle.Render(content)
}
