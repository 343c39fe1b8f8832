package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecipeValid(t *testing.T) {
	assert.True(t, Recipe{ID: "52772"}.Valid())
	assert.False(t, Recipe{}.Valid())
	assert.False(t, Recipe{ID: "   "}.Valid())
}

func TestRecipeDisplayName(t *testing.T) {
	assert.Equal(t, "Jollof Rice", Recipe{Name: "Jollof Rice"}.DisplayName())
	assert.Equal(t, "Unnamed Meal", Recipe{}.DisplayName())
}

func TestMealTypeNext(t *testing.T) {
	assert.Equal(t, MealTypeBreakfast, MealTypeAny.Next())
	assert.Equal(t, MealTypeLunch, MealTypeBreakfast.Next())
	assert.Equal(t, MealTypeDinner, MealTypeLunch.Next())
	assert.Equal(t, MealTypeAny, MealTypeDinner.Next())
}

func TestMealTypeCategoryTags(t *testing.T) {
	assert.Empty(t, MealTypeAny.CategoryTags())
	assert.Equal(t, []string{"Breakfast"}, MealTypeBreakfast.CategoryTags())
	assert.Equal(t, []string{"Chicken", "Beef", "Pasta"}, MealTypeLunch.CategoryTags())
	assert.Equal(t, []string{"Seafood", "Lamb", "Miscellaneous"}, MealTypeDinner.CategoryTags())
}
