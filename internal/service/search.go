package service

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/obinna/suya/internal/domain"
)

// Pool sizing for the suggestion mix and the regional garnish added to
// category views.
const (
	suggestionGeneralMax  = 9
	suggestionRegionalMax = 6
	regionalMixMax        = 6
)

// SearchService orchestrates queries against the recipe source: the
// general pool and the regional pool are always fetched together and
// merged by recipe ID.
type SearchService struct {
	source domain.RecipeSource
	logger *slog.Logger
}

// NewSearchService creates a new search service.
func NewSearchService(source domain.RecipeSource, logger *slog.Logger) *SearchService {
	if logger == nil {
		logger = slog.Default()
	}
	return &SearchService{
		source: source,
		logger: logger,
	}
}

// fetchBoth runs the general and regional queries concurrently and
// joins on both. A failed fetch already surfaced as an empty slice
// inside the source, so the merge always proceeds with whatever the
// other side returned.
func (s *SearchService) fetchBoth(ctx context.Context, query string) (general, regional []domain.Recipe) {
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		general = s.source.SearchByName(ctx, query)
	}()
	go func() {
		defer wg.Done()
		regional = s.source.SearchRegionalByName(ctx, query)
	}()
	wg.Wait()
	return general, regional
}

// Search returns the deduplicated union of the general and regional
// pools for a query, ranked by relevance. An empty result is the
// caller's cue to fall back to Suggestions.
func (s *SearchService) Search(ctx context.Context, query string) []domain.Recipe {
	general, regional := s.fetchBoth(ctx, query)

	// Merge keyed by ID, dropping records without one. Later entries
	// overwrite earlier ones; which source wins for a shared ID is an
	// accepted ambiguity, not a guarantee.
	merged := make(map[string]domain.Recipe, len(general)+len(regional))
	var order []string
	for _, r := range append(general, regional...) {
		if !r.Valid() {
			continue
		}
		if _, seen := merged[r.ID]; !seen {
			order = append(order, r.ID)
		}
		merged[r.ID] = r
	}

	results := make([]domain.Recipe, 0, len(order))
	for _, id := range order {
		results = append(results, merged[id])
	}

	s.logger.Debug("search complete", "query", query, "results", len(results))
	return rankResults(results, query)
}

// Suggestions returns the default mixed pool: up to 9 general plus up
// to 6 regional records, concatenated without cross-deduplication.
// Shown on app entry, on empty search, and as the empty-results
// fallback.
func (s *SearchService) Suggestions(ctx context.Context) []domain.Recipe {
	general, regional := s.fetchBoth(ctx, "")

	picks := make([]domain.Recipe, 0, suggestionGeneralMax+suggestionRegionalMax)
	picks = append(picks, truncate(general, suggestionGeneralMax)...)
	picks = append(picks, truncate(regional, suggestionRegionalMax)...)
	return picks
}

// FilterByMealType returns the category results with the first 6 of
// the unfiltered regional pool appended. Both fetches run
// concurrently; neither list is deduplicated.
func (s *SearchService) FilterByMealType(ctx context.Context, t domain.MealType) []domain.Recipe {
	var byCategory, regional []domain.Recipe
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		byCategory = s.source.FilterByCategory(ctx, t)
	}()
	go func() {
		defer wg.Done()
		regional = s.source.SearchRegionalByName(ctx, "")
	}()
	wg.Wait()

	return append(byCategory, truncate(regional, regionalMixMax)...)
}

// rankResults orders merged results by fuzzy relevance to the query;
// non-matching entries keep their relative order after the matches.
// The merge map itself carries no order, so some order has to be
// imposed; an empty query falls back to name order.
func rankResults(results []domain.Recipe, query string) []domain.Recipe {
	if len(results) <= 1 {
		return results
	}
	if query == "" {
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].Name < results[j].Name
		})
		return results
	}

	names := make([]string, len(results))
	for i, r := range results {
		names[i] = r.Name
	}

	ranks := fuzzy.RankFindNormalizedFold(query, names)
	sort.Sort(ranks)

	matched := make(map[int]bool, len(ranks))
	ranked := make([]domain.Recipe, 0, len(results))
	for _, rank := range ranks {
		matched[rank.OriginalIndex] = true
		ranked = append(ranked, results[rank.OriginalIndex])
	}
	for i, r := range results {
		if !matched[i] {
			ranked = append(ranked, r)
		}
	}
	return ranked
}

func truncate(recipes []domain.Recipe, max int) []domain.Recipe {
	if len(recipes) > max {
		return recipes[:max]
	}
	return recipes
}
