package tui

import (
	"github.com/obinna/suya/internal/domain"
)

// Message types for the TUI

// ErrMsg represents an error
type ErrMsg struct {
	Err     error
	Context string
}

// Error implements the error interface
func (e ErrMsg) Error() string {
	if e.Context != "" {
		return e.Context + ": " + e.Err.Error()
	}
	return e.Err.Error()
}

// RecipesLoadedMsg signals that a search, suggestion, or category fetch
// finished. Fallback marks a search that matched nothing and fell back
// to suggestions. Gen ties the result to the fetch that produced it so
// stale responses can be discarded.
type RecipesLoadedMsg struct {
	Recipes  []domain.Recipe
	Fallback bool
	Gen      int
}

// FavoritesLoadedMsg signals that saved favorites have been resolved
type FavoritesLoadedMsg struct {
	Recipes []domain.Recipe
	Gen     int
}

// DetailLoadedMsg carries a full recipe record for the detail overlay
type DetailLoadedMsg struct {
	Recipe *domain.Recipe
	OK     bool
}

// NoticeMsg requests a blocking notice overlay
type NoticeMsg struct {
	Text    string
	IsError bool
}

// FavoriteRemovedMsg signals that a recipe was removed from favorites
type FavoriteRemovedMsg struct {
	ID string
}

// SignedUpMsg signals a successful account creation
type SignedUpMsg struct{}

// LoggedInMsg signals a successful login
type LoggedInMsg struct {
	Username string
}

// LoggedOutMsg signals that the session was cleared
type LoggedOutMsg struct{}

// StatusMsg sets the transient status line
type StatusMsg struct {
	Text    string
	IsError bool
}

// ClearStatusMsg clears the status line
type ClearStatusMsg struct{}

// TickMsg drives the loading spinner
type TickMsg struct{}
