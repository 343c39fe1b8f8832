package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/obinna/suya/internal/domain"
)

// FavoritesService manages the persisted favorite-recipe ID list and
// resolves it back into full records for display.
type FavoritesService struct {
	store  domain.FavoritesStore
	source domain.RecipeSource
	logger *slog.Logger
}

// NewFavoritesService creates a new favorites service.
func NewFavoritesService(store domain.FavoritesStore, source domain.RecipeSource, logger *slog.Logger) *FavoritesService {
	if logger == nil {
		logger = slog.Default()
	}
	return &FavoritesService{
		store:  store,
		source: source,
		logger: logger,
	}
}

// Add appends an ID to the favorites list. Adding an ID that is
// already present returns domain.ErrAlreadyFavorite and leaves the
// list unchanged, so duplicates are never stored.
func (s *FavoritesService) Add(id string) error {
	ids := s.store.Favorites()
	for _, existing := range ids {
		if existing == id {
			return domain.ErrAlreadyFavorite
		}
	}

	if err := s.store.SaveFavorites(append(ids, id)); err != nil {
		return err
	}
	s.logger.Debug("favorite added", "id", id)
	return nil
}

// Remove deletes every entry matching the ID. Stored entries and the
// target are trim-normalized before comparison, so stray whitespace on
// either side cannot strand an entry.
func (s *FavoritesService) Remove(id string) error {
	target := strings.TrimSpace(id)

	current := s.store.Favorites()
	next := make([]string, 0, len(current))
	for _, stored := range current {
		if strings.TrimSpace(stored) != target {
			next = append(next, stored)
		}
	}

	if err := s.store.SaveFavorites(next); err != nil {
		return err
	}
	s.logger.Debug("favorite removed", "id", target)
	return nil
}

// List returns the persisted ID sequence in order, empty if none.
func (s *FavoritesService) List() []string {
	return s.store.Favorites()
}

// Resolve looks up every stored ID one at a time and collects the
// records that still resolve. The lookups are deliberately sequential,
// mirroring the behavior being modeled; IDs that fail to resolve are
// skipped. An empty list issues no lookups at all.
func (s *FavoritesService) Resolve(ctx context.Context) []domain.Recipe {
	ids := s.store.Favorites()
	if len(ids) == 0 {
		return nil
	}

	recipes := make([]domain.Recipe, 0, len(ids))
	for _, id := range ids {
		recipe, ok := s.source.LookupByID(ctx, id)
		if !ok {
			s.logger.Warn("favorite no longer resolves", "id", id)
			continue
		}
		recipes = append(recipes, *recipe)
	}
	return recipes
}
