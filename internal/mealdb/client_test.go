package mealdb

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/obinna/suya/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleSearchResponse = `{
	"meals": [
		{
			"idMeal": "52772",
			"strMeal": "Teriyaki Chicken Casserole",
			"strCategory": "Chicken",
			"strArea": "Japanese",
			"strInstructions": "Preheat oven to 350.",
			"strMealThumb": "https://example.test/teriyaki.jpg",
			"strIngredient1": "soy sauce",
			"strMeasure1": "3/4 cup",
			"strIngredient2": "water",
			"strMeasure2": "1/2 cup",
			"strIngredient3": "",
			"strMeasure3": ""
		},
		{
			"idMeal": "52773",
			"strMeal": "Honey Balsamic Chicken",
			"strCategory": "Chicken",
			"strArea": "American"
		}
	]
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL, "Nigerian", 5*time.Second, nil)
}

func TestSearchByName(t *testing.T) {
	t.Run("maps the meal payload", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/search.php", r.URL.Path)
			assert.Equal(t, "teriyaki", r.URL.Query().Get("s"))
			w.Write([]byte(sampleSearchResponse))
		})

		recipes := client.SearchByName(context.Background(), "teriyaki")

		require.Len(t, recipes, 2)
		first := recipes[0]
		assert.Equal(t, "52772", first.ID)
		assert.Equal(t, "Teriyaki Chicken Casserole", first.Name)
		assert.Equal(t, "Chicken", first.Category)
		assert.Equal(t, "Japanese", first.Area)
		require.Len(t, first.Ingredients, 2)
		assert.Equal(t, domain.Ingredient{Name: "soy sauce", Measure: "3/4 cup"}, first.Ingredients[0])
	})

	t.Run("null meals yields empty", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"meals": null}`))
		})

		assert.Empty(t, client.SearchByName(context.Background(), "zzz"))
	})

	t.Run("server error yields empty, not panic", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})

		assert.Empty(t, client.SearchByName(context.Background(), "any"))
	})

	t.Run("unreachable service yields empty", func(t *testing.T) {
		client := NewClient("http://127.0.0.1:1", "Nigerian", 500*time.Millisecond, nil)

		assert.Empty(t, client.SearchByName(context.Background(), "any"))
	})

	t.Run("malformed payload yields empty", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`not json`))
		})

		assert.Empty(t, client.SearchByName(context.Background(), "any"))
	})
}

func TestSearchRegionalByName(t *testing.T) {
	regionalPayload := `{"meals": [
		{"idMeal": "1", "strMeal": "Jollof Rice"},
		{"idMeal": "2", "strMeal": "Egusi Soup"},
		{"idMeal": "3", "strMeal": "Fried Rice"}
	]}`

	t.Run("empty query returns the whole pool", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/filter.php", r.URL.Path)
			assert.Equal(t, "Nigerian", r.URL.Query().Get("a"))
			w.Write([]byte(regionalPayload))
		})

		assert.Len(t, client.SearchRegionalByName(context.Background(), ""), 3)
	})

	t.Run("query narrows by case-insensitive substring", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(regionalPayload))
		})

		recipes := client.SearchRegionalByName(context.Background(), "RICE")

		require.Len(t, recipes, 2)
		assert.Equal(t, "Jollof Rice", recipes[0].Name)
		assert.Equal(t, "Fried Rice", recipes[1].Name)
	})
}

func TestFilterByCategory(t *testing.T) {
	t.Run("queries every mapped tag in order", func(t *testing.T) {
		var requested []string
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			tag := r.URL.Query().Get("c")
			requested = append(requested, tag)
			w.Write([]byte(`{"meals": [{"idMeal": "` + tag + `-1", "strMeal": "` + tag + ` Dish"}]}`))
		})

		recipes := client.FilterByCategory(context.Background(), domain.MealTypeLunch)

		assert.Equal(t, []string{"Chicken", "Beef", "Pasta"}, requested)
		require.Len(t, recipes, 3)
		assert.Equal(t, "Chicken Dish", recipes[0].Name)
	})

	t.Run("a failing tag contributes nothing, others still count", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Query().Get("c") == "Beef" {
				w.WriteHeader(http.StatusBadGateway)
				return
			}
			w.Write([]byte(`{"meals": [{"idMeal": "1", "strMeal": "Dish"}]}`))
		})

		recipes := client.FilterByCategory(context.Background(), domain.MealTypeLunch)

		assert.Len(t, recipes, 2)
	})
}

func TestLookupByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/lookup.php", r.URL.Path)
			assert.Equal(t, "52772", r.URL.Query().Get("i"))
			w.Write([]byte(sampleSearchResponse))
		})

		recipe, ok := client.LookupByID(context.Background(), "52772")

		require.True(t, ok)
		assert.Equal(t, "Teriyaki Chicken Casserole", recipe.Name)
	})

	t.Run("not found", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"meals": null}`))
		})

		recipe, ok := client.LookupByID(context.Background(), "0")

		assert.False(t, ok)
		assert.Nil(t, recipe)
	})

	t.Run("service failure reads as absent", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})

		_, ok := client.LookupByID(context.Background(), "52772")

		assert.False(t, ok)
	})
}
