// Package roster holds the character record operations: create with
// default population, lookup, player queries, full-replace update,
// experience application with level-up detection, and progression
// reporting.
package roster

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/grimward/charkeeper/internal/game/character"
	"github.com/grimward/charkeeper/internal/game/experience"
	"github.com/grimward/charkeeper/internal/game/ruleset"
	"github.com/grimward/charkeeper/internal/storage"
)

// ErrValidation indicates a caller-fixable problem with the request,
// such as a missing required field.
var ErrValidation = errors.New("validation failed")

// Progression summarizes where a character stands against the
// experience thresholds.
type Progression struct {
	CharacterID               string
	CurrentLevel              int
	CurrentExperience         int
	ExperienceForCurrentLevel int
	// ExperienceForNextLevel and ExperienceNeeded are both 0 at the level
	// cap. ExperienceNeeded can be negative when a character's experience
	// was overwritten past the next threshold without a level update.
	ExperienceForNextLevel int
	ExperienceNeeded       int
}

// Service implements the character record operations over a store, the
// game rules, and the experience table. It is stateless and safe for
// concurrent use.
type Service struct {
	store  storage.CharacterStore
	rules  *ruleset.Rules
	xp     *experience.Table
	logger *zap.Logger
	newID  func() string
}

// NewService creates a Service with the given dependencies.
//
// Precondition: store, rules, xp, and logger must be non-nil.
// Postcondition: Returns a fully initialised Service.
func NewService(store storage.CharacterStore, rules *ruleset.Rules, xp *experience.Table, logger *zap.Logger) *Service {
	return &Service{
		store:  store,
		rules:  rules,
		xp:     xp,
		logger: logger,
		newID:  uuid.NewString,
	}
}

// Create validates and persists a new character, assigning an id when
// none is given and populating unset fields with the game defaults.
//
// Precondition: c.PlayerID and c.Name must be non-empty.
// Postcondition: Returns the persisted character or ErrValidation.
func (s *Service) Create(ctx context.Context, c *character.Character) (*character.Character, error) {
	if c == nil {
		return nil, fmt.Errorf("%w: character payload must not be nil", ErrValidation)
	}
	if c.PlayerID == "" {
		return nil, fmt.Errorf("%w: player_id must not be empty", ErrValidation)
	}
	if c.Name == "" {
		return nil, fmt.Errorf("%w: name must not be empty", ErrValidation)
	}
	if c.CharacterID == "" {
		c.CharacterID = s.newID()
	}

	character.ApplyDefaults(c, s.rules.BaseHPForClass(c.Class), s.rules.StarterKit())

	if err := s.store.Put(ctx, c); err != nil {
		return nil, fmt.Errorf("persisting character %s: %w", c.CharacterID, err)
	}

	s.logger.Info("character created",
		zap.String("character_id", c.CharacterID),
		zap.String("player_id", c.PlayerID),
		zap.String("name", c.Name),
		zap.String("class", c.Class),
	)
	return c, nil
}

// Get returns the character with the given id.
//
// Postcondition: Returns storage.ErrCharacterNotFound when the id is
// empty or no record exists.
func (s *Service) Get(ctx context.Context, id string) (*character.Character, error) {
	if id == "" {
		return nil, fmt.Errorf("empty character id: %w", storage.ErrCharacterNotFound)
	}
	c, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loading character %s: %w", id, err)
	}
	return c, nil
}

// ListByPlayer returns all characters owned by playerID.
//
// A player owning no characters is an error, not an empty list. Callers
// depend on that contract.
func (s *Service) ListByPlayer(ctx context.Context, playerID string) ([]*character.Character, error) {
	if playerID == "" {
		return nil, fmt.Errorf("%w: player_id must not be empty", ErrValidation)
	}
	chars, err := s.store.ScanByPlayerID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("scanning characters for player %s: %w", playerID, err)
	}
	if len(chars) == 0 {
		return nil, fmt.Errorf("no characters for player %s: %w", playerID, storage.ErrCharacterNotFound)
	}
	return chars, nil
}

// ListAll returns every stored character.
func (s *Service) ListAll(ctx context.Context) ([]*character.Character, error) {
	chars, err := s.store.ScanAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("scanning characters: %w", err)
	}
	return chars, nil
}

// Update replaces the record with the given id by the incoming payload.
// This is a full replace, not a merge; only the id is immutable. A miss
// reports found=false without error and creates nothing.
func (s *Service) Update(ctx context.Context, id string, c *character.Character) (*character.Character, bool, error) {
	if id == "" || c == nil {
		return nil, false, nil
	}
	if _, err := s.store.GetByID(ctx, id); err != nil {
		if errors.Is(err, storage.ErrCharacterNotFound) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("loading character %s: %w", id, err)
	}

	c.CharacterID = id
	if err := s.store.Put(ctx, c); err != nil {
		return nil, false, fmt.Errorf("persisting character %s: %w", id, err)
	}

	s.logger.Info("character updated", zap.String("character_id", id))
	return c, true, nil
}

// Delete removes the character with the given id. Absent ids are a
// no-op.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.store.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("deleting character %s: %w", id, err)
	}
	s.logger.Info("character deleted", zap.String("character_id", id))
	return nil
}

// AddExperience applies a signed experience delta and recomputes the
// level. The delta is not clamped, so experience can go negative, but
// the level only ever increases. A miss reports found=false without
// error.
func (s *Service) AddExperience(ctx context.Context, id string, delta int) (*character.Character, bool, error) {
	if id == "" {
		return nil, false, nil
	}
	c, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrCharacterNotFound) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("loading character %s: %w", id, err)
	}

	c.Experience += delta
	if newLevel := s.xp.LevelForExperience(c.Experience); newLevel > c.Level {
		s.logger.Info("character leveled up",
			zap.String("character_id", id),
			zap.Int("from", c.Level),
			zap.Int("to", newLevel),
		)
		c.Level = newLevel
	}

	if err := s.store.Put(ctx, c); err != nil {
		return nil, false, fmt.Errorf("persisting character %s: %w", id, err)
	}
	return c, true, nil
}

// ProgressionInfo reports the character's standing against the
// experience thresholds. A miss reports found=false without error.
func (s *Service) ProgressionInfo(ctx context.Context, id string) (*Progression, bool, error) {
	if id == "" {
		return nil, false, nil
	}
	c, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrCharacterNotFound) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("loading character %s: %w", id, err)
	}

	p := &Progression{
		CharacterID:               c.CharacterID,
		CurrentLevel:              c.Level,
		CurrentExperience:         c.Experience,
		ExperienceForCurrentLevel: s.xp.ThresholdForLevel(c.Level),
	}
	if c.Level < experience.MaxLevel {
		p.ExperienceForNextLevel = s.xp.ThresholdForLevel(c.Level + 1)
		p.ExperienceNeeded = p.ExperienceForNextLevel - c.Experience
	}
	return p, true, nil
}
