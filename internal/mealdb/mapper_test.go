package mealdb

import (
	"testing"

	"github.com/obinna/suya/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapIngredients(t *testing.T) {
	t.Run("blank names are dropped, blank measures kept", func(t *testing.T) {
		m := Meal{
			StrIngredient1: "soy sauce",
			StrMeasure1:    "3/4 cup",
			StrIngredient2: "sesame seeds",
			StrMeasure2:    "",
			StrIngredient3: "   ",
			StrMeasure3:    "1 tbsp",
		}

		ingredients := mapIngredients(m)

		require.Len(t, ingredients, 2)
		assert.Equal(t, domain.Ingredient{Name: "soy sauce", Measure: "3/4 cup"}, ingredients[0])
		assert.Equal(t, domain.Ingredient{Name: "sesame seeds", Measure: ""}, ingredients[1])
	})

	t.Run("gaps in the slot sequence do not stop the scan", func(t *testing.T) {
		m := Meal{
			StrIngredient1:  "rice",
			StrMeasure1:     "2 cups",
			StrIngredient20: "salt",
			StrMeasure20:    "pinch",
		}

		ingredients := mapIngredients(m)

		require.Len(t, ingredients, 2)
		assert.Equal(t, "salt", ingredients[1].Name)
	})

	t.Run("no ingredients", func(t *testing.T) {
		assert.Empty(t, mapIngredients(Meal{}))
	})
}

func TestMapRecipes(t *testing.T) {
	assert.Nil(t, MapRecipes(nil))

	recipes := MapRecipes([]Meal{{IDMeal: "1", StrMeal: "Suya"}})
	require.Len(t, recipes, 1)
	assert.Equal(t, "1", recipes[0].ID)
	assert.Equal(t, "Suya", recipes[0].Name)
}
