package service

import (
	"context"
	"testing"

	"github.com/obinna/suya/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFavoritesAdd(t *testing.T) {
	t.Run("appends in order", func(t *testing.T) {
		store := &memFavorites{}
		svc := NewFavoritesService(store, &fakeSource{}, nil)

		require.NoError(t, svc.Add("52772"))
		require.NoError(t, svc.Add("52773"))

		assert.Equal(t, []string{"52772", "52773"}, svc.List())
	})

	t.Run("duplicate is rejected and list unchanged", func(t *testing.T) {
		store := &memFavorites{ids: []string{"52772"}}
		svc := NewFavoritesService(store, &fakeSource{}, nil)

		err := svc.Add("52772")

		assert.ErrorIs(t, err, domain.ErrAlreadyFavorite)
		assert.Equal(t, []string{"52772"}, svc.List())
	})
}

func TestFavoritesRemove(t *testing.T) {
	t.Run("removes matching entry", func(t *testing.T) {
		store := &memFavorites{ids: []string{"1", "2", "3"}}
		svc := NewFavoritesService(store, &fakeSource{}, nil)

		require.NoError(t, svc.Remove("2"))

		assert.Equal(t, []string{"1", "3"}, svc.List())
	})

	t.Run("comparison ignores surrounding whitespace", func(t *testing.T) {
		store := &memFavorites{ids: []string{" 52772 ", "52773"}}
		svc := NewFavoritesService(store, &fakeSource{}, nil)

		require.NoError(t, svc.Remove("52772"))

		assert.Equal(t, []string{"52773"}, svc.List())
	})

	t.Run("removing an absent ID is a no-op", func(t *testing.T) {
		store := &memFavorites{ids: []string{"1"}}
		svc := NewFavoritesService(store, &fakeSource{}, nil)

		require.NoError(t, svc.Remove("99"))

		assert.Equal(t, []string{"1"}, svc.List())
	})
}

func TestFavoritesResolve(t *testing.T) {
	t.Run("resolves IDs in stored order", func(t *testing.T) {
		store := &memFavorites{ids: []string{"52772", "52773"}}
		source := &fakeSource{lookups: map[string]domain.Recipe{
			"52772": recipe("52772", "Teriyaki Chicken"),
			"52773": recipe("52773", "Honey Balsamic Chicken"),
		}}
		svc := NewFavoritesService(store, source, nil)

		recipes := svc.Resolve(context.Background())

		require.Len(t, recipes, 2)
		assert.Equal(t, "Teriyaki Chicken", recipes[0].Name)
		assert.Equal(t, "Honey Balsamic Chicken", recipes[1].Name)
		assert.Equal(t, []string{"52772", "52773"}, source.lookupCalls)
	})

	t.Run("failed lookups are skipped", func(t *testing.T) {
		store := &memFavorites{ids: []string{"52772", "gone"}}
		source := &fakeSource{lookups: map[string]domain.Recipe{
			"52772": recipe("52772", "Teriyaki Chicken"),
		}}
		svc := NewFavoritesService(store, source, nil)

		recipes := svc.Resolve(context.Background())

		require.Len(t, recipes, 1)
		assert.Equal(t, "52772", recipes[0].ID)
	})

	t.Run("empty list issues no lookups", func(t *testing.T) {
		source := &fakeSource{}
		svc := NewFavoritesService(&memFavorites{}, source, nil)

		assert.Empty(t, svc.Resolve(context.Background()))
		assert.Empty(t, source.lookupCalls)
	})
}
