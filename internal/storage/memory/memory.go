// Package memory provides an in-memory CharacterStore for tests and
// local development.
package memory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/grimward/charkeeper/internal/game/character"
	"github.com/grimward/charkeeper/internal/storage"
)

// Store keeps character records as JSON blobs in a mutex-guarded map,
// mirroring the key-value layout of the real backends. Reads return fresh
// copies, so callers can mutate results freely.
type Store struct {
	mu      sync.RWMutex
	records map[string][]byte
	order   []string // insertion order of ids, for stable scans
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{records: make(map[string][]byte)}
}

// Put upserts a character keyed by its CharacterID.
func (s *Store) Put(_ context.Context, c *character.Character) error {
	if c == nil || c.CharacterID == "" {
		return errors.New("character id must not be empty")
	}
	record, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding character %s: %w", c.CharacterID, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.records[c.CharacterID]; !exists {
		s.order = append(s.order, c.CharacterID)
	}
	s.records[c.CharacterID] = record
	return nil
}

// GetByID returns the character with the given id, or ErrCharacterNotFound.
func (s *Store) GetByID(_ context.Context, id string) (*character.Character, error) {
	s.mu.RLock()
	record, ok := s.records[id]
	s.mu.RUnlock()
	if !ok {
		return nil, storage.ErrCharacterNotFound
	}
	return decode(record)
}

// ScanAll returns every stored character in insertion order.
func (s *Store) ScanAll(_ context.Context) ([]*character.Character, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*character.Character, 0, len(s.order))
	for _, id := range s.order {
		c, err := decode(s.records[id])
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// ScanByPlayerID returns all characters owned by playerID, in insertion
// order. An empty result is not an error.
func (s *Store) ScanByPlayerID(ctx context.Context, playerID string) ([]*character.Character, error) {
	all, err := s.ScanAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*character.Character, 0)
	for _, c := range all {
		if c.PlayerID == playerID {
			out = append(out, c)
		}
	}
	return out, nil
}

// DeleteByID removes the character with the given id; absent ids are a
// no-op.
func (s *Store) DeleteByID(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[id]; !ok {
		return nil
	}
	delete(s.records, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

func decode(record []byte) (*character.Character, error) {
	var c character.Character
	if err := json.Unmarshal(record, &c); err != nil {
		return nil, fmt.Errorf("decoding character record: %w", err)
	}
	return &c, nil
}
