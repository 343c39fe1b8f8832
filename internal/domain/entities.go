package domain

import "strings"

// MaxIngredients is the number of ingredient/measure slots the recipe
// service exposes per dish.
const MaxIngredients = 20

// Recipe represents one dish as returned by the recipe service.
// Recipes are fetched fresh on demand and never stored locally; only
// their IDs persist (inside the favorites list).
type Recipe struct {
	ID           string // Service-wide unique identifier, stable across calls
	Name         string // Display name
	ThumbURL     string // Thumbnail image URL
	Category     string // Upstream category tag (e.g. "Seafood")
	Area         string // Regional cuisine tag (e.g. "Nigerian")
	Instructions string // Free-text preparation instructions

	// Up to MaxIngredients entries. Slots with a blank ingredient name
	// are dropped at mapping time; a missing measure is kept as "".
	Ingredients []Ingredient
}

// Ingredient is one (ingredient, measure) pair of a recipe.
type Ingredient struct {
	Name    string
	Measure string
}

// Valid reports whether the recipe carries a usable identifier.
// Records without one are skipped by the render layer.
func (r Recipe) Valid() bool {
	return strings.TrimSpace(r.ID) != ""
}

// DisplayName returns the recipe name, or a placeholder when the
// service returned a nameless record.
func (r Recipe) DisplayName() string {
	if r.Name == "" {
		return "Unnamed Meal"
	}
	return r.Name
}

// MealType is the user-facing category filter.
type MealType int

const (
	MealTypeAny MealType = iota
	MealTypeBreakfast
	MealTypeLunch
	MealTypeDinner
)

// String returns the display label for the meal type.
func (t MealType) String() string {
	switch t {
	case MealTypeBreakfast:
		return "Breakfast"
	case MealTypeLunch:
		return "Lunch"
	case MealTypeDinner:
		return "Dinner"
	default:
		return "All"
	}
}

// CategoryTags returns the upstream category tags queried for this
// meal type. MealTypeAny maps to no tags; callers fall back to the
// suggestion pool instead.
func (t MealType) CategoryTags() []string {
	switch t {
	case MealTypeBreakfast:
		return []string{"Breakfast"}
	case MealTypeLunch:
		return []string{"Chicken", "Beef", "Pasta"}
	case MealTypeDinner:
		return []string{"Seafood", "Lamb", "Miscellaneous"}
	default:
		return nil
	}
}

// Next cycles to the following meal type, wrapping back to Any.
func (t MealType) Next() MealType {
	if t >= MealTypeDinner {
		return MealTypeAny
	}
	return t + 1
}
