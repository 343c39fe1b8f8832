package mealdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/obinna/suya/internal/domain"
)

const (
	defaultTimeout = 30 * time.Second
	userAgent      = "Suya/1.0"
)

// Client implements domain.RecipeSource against a TheMealDB-compatible
// recipe service.
//
// The fail-soft contract lives here: doRequest returns errors in the
// usual way, but every exported method catches them, logs, and hands
// callers an empty slice or absent marker instead (see domain.RecipeSource).
type Client struct {
	baseURL    string
	area       string // regional cuisine tag, e.g. "Nigerian"
	httpClient *http.Client
	logger     *slog.Logger
}

var _ domain.RecipeSource = (*Client)(nil)

// NewClient creates a new recipe service client.
func NewClient(baseURL, area string, timeout time.Duration, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		area:    area,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// doRequest performs a GET against one endpoint and decodes the meal
// container.
func (c *Client) doRequest(ctx context.Context, path string, query url.Values) ([]Meal, error) {
	reqURL := fmt.Sprintf("%s%s", c.baseURL, path)
	if query != nil {
		reqURL = fmt.Sprintf("%s?%s", reqURL, query.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	c.logger.Debug("mealdb request", "url", reqURL)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domain.ErrServiceUnreachable
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("mealdb request error", "status", resp.StatusCode, "body", string(body))
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var parsed mealsResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	// "meals": null means no matches
	return parsed.Meals, nil
}

// SearchByName queries the general pool. An empty query returns the
// service's browse-all pool.
func (c *Client) SearchByName(ctx context.Context, query string) []domain.Recipe {
	meals, err := c.doRequest(ctx, "/search.php", url.Values{"s": {query}})
	if err != nil {
		c.logger.Error("recipe search failed", "query", query, "error", err)
		return nil
	}
	return MapRecipes(meals)
}

// SearchRegionalByName fetches the regional set, then narrows it
// locally by a case-insensitive substring match when query is
// non-empty.
func (c *Client) SearchRegionalByName(ctx context.Context, query string) []domain.Recipe {
	meals, err := c.doRequest(ctx, "/filter.php", url.Values{"a": {c.area}})
	if err != nil {
		c.logger.Error("regional fetch failed", "area", c.area, "error", err)
		return nil
	}

	recipes := MapRecipes(meals)
	if query == "" {
		return recipes
	}

	q := strings.ToLower(query)
	var matched []domain.Recipe
	for _, r := range recipes {
		if strings.Contains(strings.ToLower(r.Name), q) {
			matched = append(matched, r)
		}
	}
	return matched
}

// FilterByCategory queries every upstream tag mapped to the meal type
// and concatenates the results in tag order. A failing tag contributes
// nothing; the others still count.
func (c *Client) FilterByCategory(ctx context.Context, t domain.MealType) []domain.Recipe {
	var all []domain.Recipe
	for _, tag := range t.CategoryTags() {
		meals, err := c.doRequest(ctx, "/filter.php", url.Values{"c": {tag}})
		if err != nil {
			c.logger.Error("category fetch failed", "category", tag, "error", err)
			continue
		}
		all = append(all, MapRecipes(meals)...)
	}
	return all
}

// LookupByID fetches the single full record for an ID.
func (c *Client) LookupByID(ctx context.Context, id string) (*domain.Recipe, bool) {
	meals, err := c.doRequest(ctx, "/lookup.php", url.Values{"i": {id}})
	if err != nil {
		c.logger.Error("recipe lookup failed", "id", id, "error", err)
		return nil, false
	}
	if len(meals) == 0 {
		return nil, false
	}

	recipe := MapRecipe(meals[0])
	return &recipe, true
}
