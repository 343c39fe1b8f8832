package service

import (
	"context"
	"testing"

	"github.com/obinna/suya/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearch_MergesBothPools(t *testing.T) {
	t.Run("union without duplicates", func(t *testing.T) {
		source := &fakeSource{
			general:  []domain.Recipe{recipe("1", "Jollof Rice"), recipe("2", "Chicken Curry")},
			regional: []domain.Recipe{recipe("2", "Chicken Curry"), recipe("3", "Egusi Soup")},
		}
		svc := NewSearchService(source, nil)

		results := svc.Search(context.Background(), "c")

		require.Len(t, results, 3)
		ids := make(map[string]int)
		for _, r := range results {
			ids[r.ID]++
		}
		assert.Equal(t, 1, ids["1"])
		assert.Equal(t, 1, ids["2"])
		assert.Equal(t, 1, ids["3"])
	})

	t.Run("records without an ID are dropped", func(t *testing.T) {
		source := &fakeSource{
			general:  []domain.Recipe{recipe("", "Mystery Meal"), recipe("1", "Jollof Rice")},
			regional: []domain.Recipe{recipe("  ", "Also Mystery")},
		}
		svc := NewSearchService(source, nil)

		results := svc.Search(context.Background(), "m")

		require.Len(t, results, 1)
		assert.Equal(t, "1", results[0].ID)
	})

	t.Run("one failed pool still yields the other", func(t *testing.T) {
		source := &fakeSource{
			general:  nil, // source already swallowed its error
			regional: []domain.Recipe{recipe("3", "Egusi Soup")},
		}
		svc := NewSearchService(source, nil)

		results := svc.Search(context.Background(), "egusi")

		require.Len(t, results, 1)
		assert.Equal(t, "Egusi Soup", results[0].Name)
	})

	t.Run("both pools empty yields empty", func(t *testing.T) {
		svc := NewSearchService(&fakeSource{}, nil)
		assert.Empty(t, svc.Search(context.Background(), "nothing"))
	})

	t.Run("relevance ranking puts closer names first", func(t *testing.T) {
		source := &fakeSource{
			general: []domain.Recipe{
				recipe("1", "Beef Wellington"),
				recipe("2", "Jollof Rice"),
			},
		}
		svc := NewSearchService(source, nil)

		results := svc.Search(context.Background(), "jollof")

		require.Len(t, results, 2)
		assert.Equal(t, "Jollof Rice", results[0].Name)
	})
}

func TestSuggestions(t *testing.T) {
	makeRecipes := func(prefix string, n int) []domain.Recipe {
		out := make([]domain.Recipe, n)
		for i := range out {
			out[i] = recipe(prefix+string(rune('a'+i)), prefix)
		}
		return out
	}

	t.Run("caps at nine general and six regional", func(t *testing.T) {
		source := &fakeSource{
			general:  makeRecipes("g", 20),
			regional: makeRecipes("r", 20),
		}
		svc := NewSearchService(source, nil)

		picks := svc.Suggestions(context.Background())

		assert.Len(t, picks, 15)
	})

	t.Run("short pools are used as is", func(t *testing.T) {
		source := &fakeSource{
			general:  makeRecipes("g", 2),
			regional: makeRecipes("r", 1),
		}
		svc := NewSearchService(source, nil)

		assert.Len(t, svc.Suggestions(context.Background()), 3)
	})

	t.Run("both pools empty yields empty mix", func(t *testing.T) {
		svc := NewSearchService(&fakeSource{}, nil)
		assert.Empty(t, svc.Suggestions(context.Background()))
	})

	t.Run("shared IDs are not cross-deduplicated", func(t *testing.T) {
		source := &fakeSource{
			general:  []domain.Recipe{recipe("1", "Jollof Rice")},
			regional: []domain.Recipe{recipe("1", "Jollof Rice")},
		}
		svc := NewSearchService(source, nil)

		assert.Len(t, svc.Suggestions(context.Background()), 2)
	})
}

func TestFilterByMealType(t *testing.T) {
	t.Run("appends first six regional to category results", func(t *testing.T) {
		regional := make([]domain.Recipe, 10)
		for i := range regional {
			regional[i] = recipe("r"+string(rune('a'+i)), "Regional Dish")
		}
		source := &fakeSource{
			byCategory: map[domain.MealType][]domain.Recipe{
				domain.MealTypeBreakfast: {recipe("b1", "Pancakes"), recipe("b2", "Omelette")},
			},
			regional: regional,
		}
		svc := NewSearchService(source, nil)

		results := svc.FilterByMealType(context.Background(), domain.MealTypeBreakfast)

		require.Len(t, results, 8)
		assert.Equal(t, "Pancakes", results[0].Name)
		assert.Equal(t, "Omelette", results[1].Name)
		for _, r := range results[2:] {
			assert.Equal(t, "Regional Dish", r.Name)
		}
	})

	t.Run("empty category still carries the regional garnish", func(t *testing.T) {
		source := &fakeSource{
			regional: []domain.Recipe{recipe("r1", "Suya")},
		}
		svc := NewSearchService(source, nil)

		results := svc.FilterByMealType(context.Background(), domain.MealTypeDinner)

		require.Len(t, results, 1)
		assert.Equal(t, "Suya", results[0].Name)
	})
}

func TestRankResults(t *testing.T) {
	t.Run("empty query sorts by name", func(t *testing.T) {
		results := rankResults([]domain.Recipe{
			recipe("1", "Zucchini Bake"),
			recipe("2", "Akara"),
		}, "")

		assert.Equal(t, "Akara", results[0].Name)
		assert.Equal(t, "Zucchini Bake", results[1].Name)
	})

	t.Run("non-matching entries keep relative order after matches", func(t *testing.T) {
		results := rankResults([]domain.Recipe{
			recipe("1", "Beef Stew"),
			recipe("2", "Pork Chops"),
			recipe("3", "Jollof Rice"),
		}, "jollof")

		require.Len(t, results, 3)
		assert.Equal(t, "Jollof Rice", results[0].Name)
		assert.Equal(t, "Beef Stew", results[1].Name)
		assert.Equal(t, "Pork Chops", results[2].Name)
	})

	t.Run("single element is returned untouched", func(t *testing.T) {
		in := []domain.Recipe{recipe("1", "Suya")}
		assert.Equal(t, in, rankResults(in, "anything"))
	})
}
