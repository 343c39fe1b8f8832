package mealdb

import (
	"strings"

	"github.com/obinna/suya/internal/domain"
)

// MapRecipe converts a wire meal to a domain recipe.
func MapRecipe(m Meal) domain.Recipe {
	return domain.Recipe{
		ID:           m.IDMeal,
		Name:         m.StrMeal,
		ThumbURL:     m.StrMealThumb,
		Category:     m.StrCategory,
		Area:         m.StrArea,
		Instructions: m.StrInstructions,
		Ingredients:  mapIngredients(m),
	}
}

// MapRecipes converts a slice of wire meals to domain recipes.
func MapRecipes(meals []Meal) []domain.Recipe {
	if len(meals) == 0 {
		return nil
	}
	recipes := make([]domain.Recipe, 0, len(meals))
	for _, m := range meals {
		recipes = append(recipes, MapRecipe(m))
	}
	return recipes
}

// mapIngredients flattens the numbered slots into an ordered list.
// Slots with a blank ingredient name are dropped; a blank measure is
// kept so the line still renders with an empty quantity.
func mapIngredients(m Meal) []domain.Ingredient {
	names, measures := m.ingredientSlots()

	var out []domain.Ingredient
	for i := 0; i < MaxSlots; i++ {
		if strings.TrimSpace(names[i]) == "" {
			continue
		}
		out = append(out, domain.Ingredient{
			Name:    names[i],
			Measure: measures[i],
		})
	}
	return out
}
