// Package redis implements the character store on Redis. Each character
// is a JSON value under a "character:<id>" key; listings use SCAN over
// that prefix.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	goredis "github.com/go-redis/redis/v8"

	"github.com/grimward/charkeeper/internal/config"
	"github.com/grimward/charkeeper/internal/game/character"
	"github.com/grimward/charkeeper/internal/storage"
)

const keyPrefix = "character:"

// scanBatch is the COUNT hint passed to SCAN.
const scanBatch = 100

// NewClient creates a Redis client from the given configuration and
// verifies connectivity before returning.
//
// Precondition: cfg.Addr must be a reachable "host:port" address.
// Postcondition: Returns a connected client or a non-nil error.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, cfg.DialTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("pinging redis at %s: %w", cfg.Addr, err)
	}
	return client, nil
}

// CharacterStore persists character records as JSON values in Redis.
type CharacterStore struct {
	client *goredis.Client
}

// NewCharacterStore creates a CharacterStore backed by the given client.
func NewCharacterStore(client *goredis.Client) *CharacterStore {
	return &CharacterStore{client: client}
}

func key(id string) string {
	return keyPrefix + id
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
	if err := s.client.Set(ctx, key(c.CharacterID), record, 0).Err(); err != nil {
		return fmt.Errorf("storing character: %w", err)
	}
	return nil
}

// GetByID returns the character with the given id, or
// storage.ErrCharacterNotFound.
func (s *CharacterStore) GetByID(ctx context.Context, id string) (*character.Character, error) {
	record, err := s.client.Get(ctx, key(id)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, storage.ErrCharacterNotFound
		}
		return nil, fmt.Errorf("fetching character: %w", err)
	}
	return decodeRecord(record)
}

// ScanAll returns every stored character, ordered by id for stable
// results. SCAN gives no ordering guarantee of its own.
func (s *CharacterStore) ScanAll(ctx context.Context) ([]*character.Character, error) {
	keys, err := s.collectKeys(ctx)
	if err != nil {
		return nil, err
	}
	sort.Strings(keys)

	chars := make([]*character.Character, 0, len(keys))
	for _, k := range keys {
		record, err := s.client.Get(ctx, k).Bytes()
		if err != nil {
			// Key expired or deleted between SCAN and GET.
			if errors.Is(err, goredis.Nil) {
				continue
			}
			return nil, fmt.Errorf("fetching character %s: %w", k, err)
		}
		c, err := decodeRecord(record)
		if err != nil {
			return nil, err
		}
		chars = append(chars, c)
	}
	return chars, nil
}

// ScanByPlayerID returns all characters owned by playerID. The filter
// runs client-side over a full scan. An empty result is not an error at
// this layer.
func (s *CharacterStore) ScanByPlayerID(ctx context.Context, playerID string) ([]*character.Character, error) {
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
func (s *CharacterStore) DeleteByID(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, key(id)).Err(); err != nil {
		return fmt.Errorf("deleting character: %w", err)
	}
	return nil
}

func (s *CharacterStore) collectKeys(ctx context.Context) ([]string, error) {
	var keys []string
	var cursor uint64
	for {
		batch, next, err := s.client.Scan(ctx, cursor, keyPrefix+"*", scanBatch).Result()
		if err != nil {
			return nil, fmt.Errorf("scanning character keys: %w", err)
		}
		keys = append(keys, batch...)
		cursor = next
		if cursor == 0 {
			return keys, nil
		}
	}
}

func decodeRecord(record []byte) (*character.Character, error) {
	var c character.Character
	if err := json.Unmarshal(record, &c); err != nil {
		return nil, fmt.Errorf("decoding character record: %w", err)
	}
	return &c, nil
}
