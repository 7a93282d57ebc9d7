// Package storage defines the character store contract shared by the
// postgres, redis, and in-memory backends.
package storage

import (
	"context"
	"errors"

	"github.com/grimward/charkeeper/internal/game/character"
)

// ErrCharacterNotFound is returned when a character lookup yields no record.
var ErrCharacterNotFound = errors.New("character not found")

// CharacterStore persists characters in a single-table key-value layout
// keyed by character id. Implementations must provide per-item atomicity
// for Put and DeleteByID; concurrent writers to the same id race with
// last-writer-wins semantics.
type CharacterStore interface {
	// Put upserts a character keyed by its CharacterID.
	Put(ctx context.Context, c *character.Character) error

	// GetByID returns the character with the given id, or
	// ErrCharacterNotFound.
	GetByID(ctx context.Context, id string) (*character.Character, error)

	// ScanAll returns every stored character.
	ScanAll(ctx context.Context) ([]*character.Character, error)

	// ScanByPlayerID returns all characters owned by playerID. It is an
	// equality-filtered scan, not an indexed lookup; an empty result is
	// not an error at this layer.
	ScanByPlayerID(ctx context.Context, playerID string) ([]*character.Character, error)

	// DeleteByID removes the character with the given id. Deleting an
	// absent id is not an error.
	DeleteByID(ctx context.Context, id string) error
}
