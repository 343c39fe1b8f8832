package domain

import "context"

// RecipeSource is the read-only recipe lookup capability.
//
// Every method is fail-soft: transport and parse faults are caught and
// logged inside the implementation and surface as an empty slice or an
// absent marker, never as an error. Callers therefore need no
// fault-handling branch of their own.
type RecipeSource interface {
	// SearchByName queries the general pool by dish name. An empty
	// query returns the service's broad browse-all pool.
	SearchByName(ctx context.Context, query string) []Recipe

	// SearchRegionalByName fetches the full regional-cuisine set and,
	// for a non-empty query, narrows it locally with a case-insensitive
	// substring match over the display name.
	SearchRegionalByName(ctx context.Context, query string) []Recipe

	// FilterByCategory returns the concatenated results of every
	// upstream category tag mapped to the meal type. Duplicates are
	// not removed at this layer.
	FilterByCategory(ctx context.Context, t MealType) []Recipe

	// LookupByID returns the single full record, or (nil, false) when
	// the ID is unknown or the lookup failed.
	LookupByID(ctx context.Context, id string) (*Recipe, bool)
}

// AccountStore persists the username -> password table.
// Usernames are unique; entries are never updated or deleted.
type AccountStore interface {
	Account(username string) (password string, ok bool)
	SaveAccount(username, password string) error
}

// SessionStore persists the single "current user" marker.
// Presence of the marker implies logged-in.
type SessionStore interface {
	CurrentUser() (string, bool)
	SetCurrentUser(username string) error
	ClearCurrentUser() error
}

// FavoritesStore persists the ordered favorite-recipe ID list.
// Reads of an absent key yield an empty list; writes replace the whole
// value.
type FavoritesStore interface {
	Favorites() []string
	SaveFavorites(ids []string) error
}
