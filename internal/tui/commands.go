package tui

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/obinna/suya/internal/domain"
	"github.com/obinna/suya/internal/service"
)

// Command factories for async operations

const fetchTimeout = 30 * time.Second

// SearchCmd searches the recipe catalog. An empty result set falls
// back to the suggestion mix so the grid is never left blank.
func SearchCmd(svc *service.SearchService, query string, gen int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		recipes := svc.Search(ctx, query)
		if len(recipes) > 0 {
			return RecipesLoadedMsg{Recipes: recipes, Gen: gen}
		}
		return RecipesLoadedMsg{Recipes: svc.Suggestions(ctx), Fallback: true, Gen: gen}
	}
}

// SuggestionsCmd loads the default suggestion mix
func SuggestionsCmd(svc *service.SearchService, gen int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		return RecipesLoadedMsg{Recipes: svc.Suggestions(ctx), Gen: gen}
	}
}

// MealTypeCmd loads recipes for a meal-type filter
func MealTypeCmd(svc *service.SearchService, t domain.MealType, gen int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		if t == domain.MealTypeAny {
			return RecipesLoadedMsg{Recipes: svc.Suggestions(ctx), Gen: gen}
		}
		return RecipesLoadedMsg{Recipes: svc.FilterByMealType(ctx, t), Gen: gen}
	}
}

// LoadFavoritesCmd resolves the saved favorites into full records
func LoadFavoritesCmd(svc *service.FavoritesService, gen int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		return FavoritesLoadedMsg{Recipes: svc.Resolve(ctx), Gen: gen}
	}
}

// LookupDetailCmd fetches the full record for the detail overlay
func LookupDetailCmd(source domain.RecipeSource, id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		recipe, ok := source.LookupByID(ctx, id)
		return DetailLoadedMsg{Recipe: recipe, OK: ok}
	}
}

// AddFavoriteCmd saves a recipe to favorites
func AddFavoriteCmd(svc *service.FavoritesService, id string) tea.Cmd {
	return func() tea.Msg {
		err := svc.Add(id)
		if errors.Is(err, domain.ErrAlreadyFavorite) {
			return NoticeMsg{Text: "Already in favorites!"}
		}
		if err != nil {
			return ErrMsg{Err: err, Context: "saving favorite"}
		}
		return StatusMsg{Text: "Added to favorites!"}
	}
}

// RemoveFavoriteCmd removes a recipe from favorites
func RemoveFavoriteCmd(svc *service.FavoritesService, id string) tea.Cmd {
	return func() tea.Msg {
		if err := svc.Remove(id); err != nil {
			return ErrMsg{Err: err, Context: "removing favorite"}
		}
		return FavoriteRemovedMsg{ID: id}
	}
}

// SignUpCmd creates a new account. Validation failures surface as
// blocking notices rather than errors.
func SignUpCmd(svc *service.AuthService, username, password string) tea.Cmd {
	return func() tea.Msg {
		err := svc.SignUp(username, password)
		switch {
		case errors.Is(err, domain.ErrMissingFields):
			return NoticeMsg{Text: "Please fill all fields", IsError: true}
		case errors.Is(err, domain.ErrUserExists):
			return NoticeMsg{Text: "User already exists", IsError: true}
		case err != nil:
			return ErrMsg{Err: err, Context: "signing up"}
		}
		return SignedUpMsg{}
	}
}

// LogInCmd checks credentials and opens a session
func LogInCmd(svc *service.AuthService, username, password string) tea.Cmd {
	return func() tea.Msg {
		err := svc.LogIn(username, password)
		switch {
		case errors.Is(err, domain.ErrInvalidCredentials):
			return NoticeMsg{Text: "Invalid credentials", IsError: true}
		case err != nil:
			return ErrMsg{Err: err, Context: "logging in"}
		}
		return LoggedInMsg{Username: username}
	}
}

// LogOutCmd clears the current session
func LogOutCmd(svc *service.AuthService) tea.Cmd {
	return func() tea.Msg {
		if err := svc.LogOut(); err != nil {
			return ErrMsg{Err: err, Context: "logging out"}
		}
		return LoggedOutMsg{}
	}
}

// TickCmd schedules a spinner tick
func TickCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return TickMsg{}
	})
}

// ClearStatusCmd clears the status line after a delay
func ClearStatusCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}
