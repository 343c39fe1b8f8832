package service

import (
	"context"
	"sync"

	"github.com/obinna/suya/internal/domain"
)

// fakeSource is a canned recipe source for service tests.
type fakeSource struct {
	mu sync.Mutex

	general    []domain.Recipe
	regional   []domain.Recipe
	byCategory map[domain.MealType][]domain.Recipe
	lookups    map[string]domain.Recipe

	lookupCalls []string
}

func (f *fakeSource) SearchByName(ctx context.Context, query string) []domain.Recipe {
	return f.general
}

func (f *fakeSource) SearchRegionalByName(ctx context.Context, query string) []domain.Recipe {
	return f.regional
}

func (f *fakeSource) FilterByCategory(ctx context.Context, t domain.MealType) []domain.Recipe {
	return f.byCategory[t]
}

func (f *fakeSource) LookupByID(ctx context.Context, id string) (*domain.Recipe, bool) {
	f.mu.Lock()
	f.lookupCalls = append(f.lookupCalls, id)
	f.mu.Unlock()

	r, ok := f.lookups[id]
	if !ok {
		return nil, false
	}
	return &r, true
}

// memFavorites is an in-memory favorites store.
type memFavorites struct {
	ids     []string
	saveErr error
}

func (m *memFavorites) Favorites() []string {
	return append([]string(nil), m.ids...)
}

func (m *memFavorites) SaveFavorites(ids []string) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.ids = append([]string(nil), ids...)
	return nil
}

// memAccounts is an in-memory account table.
type memAccounts struct {
	table map[string]string
}

func newMemAccounts() *memAccounts {
	return &memAccounts{table: make(map[string]string)}
}

func (m *memAccounts) Account(username string) (string, bool) {
	password, ok := m.table[username]
	return password, ok
}

func (m *memAccounts) SaveAccount(username, password string) error {
	m.table[username] = password
	return nil
}

// memSession is an in-memory session marker.
type memSession struct {
	user string
	set  bool
}

func (m *memSession) CurrentUser() (string, bool) {
	return m.user, m.set
}

func (m *memSession) SetCurrentUser(username string) error {
	m.user = username
	m.set = true
	return nil
}

func (m *memSession) ClearCurrentUser() error {
	m.user = ""
	m.set = false
	return nil
}

func recipe(id, name string) domain.Recipe {
	return domain.Recipe{ID: id, Name: name}
}
