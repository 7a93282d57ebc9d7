package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/grimward/charkeeper/internal/game/character"
	"github.com/grimward/charkeeper/internal/storage"
)

// CharacterStore persists character records in the characters table. Each
// row holds the full JSONB document plus the two columns queries filter
// on: character_id (primary key) and player_id.
type CharacterStore struct {
	db *pgxpool.Pool
}

// NewCharacterStore creates a CharacterStore backed by the given pool.
//
// Precondition: db must be a valid, open connection pool with the
// characters table migrated.
func NewCharacterStore(db *pgxpool.Pool) *CharacterStore {
	return &CharacterStore{db: db}
}

// Put upserts a character keyed by its CharacterID.
func (s *CharacterStore) Put(ctx context.Context, c *character.Character) error {
	if c == nil || c.CharacterID == "" {
		return errors.New("character id must not be empty")
	}
	record, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding character %s: %w", c.CharacterID, err)
	}

	_, err = s.db.Exec(ctx, `
		INSERT INTO characters (character_id, player_id, record)
		VALUES ($1, $2, $3)
		ON CONFLICT (character_id)
		DO UPDATE SET player_id = EXCLUDED.player_id,
		              record     = EXCLUDED.record,
		              updated_at = NOW()`,
		c.CharacterID, c.PlayerID, record,
	)
	if err != nil {
		return fmt.Errorf("upserting character: %w", err)
	}
	return nil
}

// GetByID returns the character with the given id, or
// storage.ErrCharacterNotFound.
func (s *CharacterStore) GetByID(ctx context.Context, id string) (*character.Character, error) {
	var record []byte
	err := s.db.QueryRow(ctx,
		`SELECT record FROM characters WHERE character_id = $1`, id,
	).Scan(&record)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrCharacterNotFound
		}
		return nil, fmt.Errorf("querying character: %w", err)
	}
	return decodeRecord(record)
}

// ScanAll returns every stored character, oldest first.
func (s *CharacterStore) ScanAll(ctx context.Context) ([]*character.Character, error) {
	rows, err := s.db.Query(ctx,
		`SELECT record FROM characters ORDER BY created_at ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("scanning characters: %w", err)
	}
	defer rows.Close()
	return collectRecords(rows)
}

// ScanByPlayerID returns all characters owned by playerID, oldest first.
// An empty result is not an error at this layer.
func (s *CharacterStore) ScanByPlayerID(ctx context.Context, playerID string) ([]*character.Character, error) {
	rows, err := s.db.Query(ctx,
		`SELECT record FROM characters WHERE player_id = $1 ORDER BY created_at ASC`,
		playerID,
	)
	if err != nil {
		return nil, fmt.Errorf("scanning characters for player %s: %w", playerID, err)
	}
	defer rows.Close()
	return collectRecords(rows)
}

// DeleteByID removes the character with the given id; absent ids are a
// no-op.
func (s *CharacterStore) DeleteByID(ctx context.Context, id string) error {
	if _, err := s.db.Exec(ctx,
		`DELETE FROM characters WHERE character_id = $1`, id,
	); err != nil {
		return fmt.Errorf("deleting character: %w", err)
	}
	return nil
}

func collectRecords(rows pgx.Rows) ([]*character.Character, error) {
	chars := make([]*character.Character, 0)
	for rows.Next() {
		var record []byte
		if err := rows.Scan(&record); err != nil {
			return nil, fmt.Errorf("scanning character row: %w", err)
		}
		c, err := decodeRecord(record)
		if err != nil {
			return nil, err
		}
		chars = append(chars, c)
	}
	return chars, rows.Err()
}

func decodeRecord(record []byte) (*character.Character, error) {
	var c character.Character
	if err := json.Unmarshal(record, &c); err != nil {
		return nil, fmt.Errorf("decoding character record: %w", err)
	}
	return &c, nil
}
