package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/obinna/suya/internal/domain"
	bolt "go.etcd.io/bbolt"
)

// Bucket names
var (
	bucketAccounts  = []byte("accounts")
	bucketSession   = []byte("session")
	bucketFavorites = []byte("favorites")
)

// Record keys. Each logical record is one whole JSON value; writes
// replace it entirely.
const (
	keyAccountTable = "table"
	keyCurrentUser  = "current"
	keyFavoriteIDs  = "list"
)

// Store implements domain.AccountStore, domain.SessionStore and
// domain.FavoritesStore using BoltDB.
type Store struct {
	db *bolt.DB

	mu  sync.RWMutex
	mem map[string][]byte // memory-only mode (tests)
}

var (
	_ domain.AccountStore   = (*Store)(nil)
	_ domain.SessionStore   = (*Store)(nil)
	_ domain.FavoritesStore = (*Store)(nil)
)

// Open opens (or creates) the database under dataDir. An empty dataDir
// yields a memory-only store with no persistence.
func Open(dataDir string) (*Store, error) {
	if dataDir == "" {
		return &Store{mem: make(map[string][]byte)}, nil
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, err
	}

	dbPath := filepath.Join(dataDir, "suya.db")
	db, err := bolt.Open(dbPath, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, bucket := range [][]byte{bucketAccounts, bucketSession, bucketFavorites} {
			if _, err := tx.CreateBucketIfNotExists(bucket); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db, mem: make(map[string][]byte)}, nil
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// === Generic helpers ===

func (s *Store) get(bucket []byte, key string, dest interface{}) bool {
	if s.db == nil {
		s.mu.RLock()
		data, ok := s.mem[string(bucket)+":"+key]
		s.mu.RUnlock()
		if !ok {
			return false
		}
		return json.Unmarshal(data, dest) == nil
	}

	var data []byte
	s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucket)
		if b == nil {
			return nil
		}
		if v := b.Get([]byte(key)); v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})

	if data == nil {
		return false
	}
	return json.Unmarshal(data, dest) == nil
}

func (s *Store) set(bucket []byte, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	if s.db == nil {
		s.mu.Lock()
		s.mem[string(bucket)+":"+key] = data
		s.mu.Unlock()
		return nil
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucket)
		return b.Put([]byte(key), data)
	})
}

func (s *Store) delete(bucket []byte, key string) error {
	if s.db == nil {
		s.mu.Lock()
		delete(s.mem, string(bucket)+":"+key)
		s.mu.Unlock()
		return nil
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucket)
		if b != nil {
			return b.Delete([]byte(key))
		}
		return nil
	})
}

// === Accounts ===

// Account returns the stored password for a username.
func (s *Store) Account(username string) (string, bool) {
	var table map[string]string
	if !s.get(bucketAccounts, keyAccountTable, &table) {
		return "", false
	}
	password, ok := table[username]
	return password, ok
}

// SaveAccount adds a username/password pair to the account table.
// Uniqueness is enforced by the auth service, not here.
func (s *Store) SaveAccount(username, password string) error {
	var table map[string]string
	if !s.get(bucketAccounts, keyAccountTable, &table) || table == nil {
		table = make(map[string]string)
	}
	table[username] = password
	return s.set(bucketAccounts, keyAccountTable, table)
}

// === Session ===

// CurrentUser returns the session marker, if present.
func (s *Store) CurrentUser() (string, bool) {
	var username string
	if !s.get(bucketSession, keyCurrentUser, &username) || username == "" {
		return "", false
	}
	return username, true
}

// SetCurrentUser sets the session marker.
func (s *Store) SetCurrentUser(username string) error {
	return s.set(bucketSession, keyCurrentUser, username)
}

// ClearCurrentUser removes the session marker.
func (s *Store) ClearCurrentUser() error {
	return s.delete(bucketSession, keyCurrentUser)
}

// === Favorites ===

// Favorites returns the persisted favorite-recipe ID list, empty if
// none was ever saved.
func (s *Store) Favorites() []string {
	var ids []string
	if !s.get(bucketFavorites, keyFavoriteIDs, &ids) {
		return nil
	}
	return ids
}

// SaveFavorites replaces the favorite-recipe ID list.
func (s *Store) SaveFavorites(ids []string) error {
	return s.set(bucketFavorites, keyFavoriteIDs, ids)
}
