package mcpserver

import (
	"github.com/grimward/charkeeper/internal/game/character"
	"github.com/grimward/charkeeper/internal/game/roster"
)

// StatsPayload carries the six ability scores on the wire.
type StatsPayload struct {
	Strength     int `json:"strength" jsonschema:"strength score"`
	Dexterity    int `json:"dexterity" jsonschema:"dexterity score"`
	Constitution int `json:"constitution" jsonschema:"constitution score"`
	Intelligence int `json:"intelligence" jsonschema:"intelligence score"`
	Wisdom       int `json:"wisdom" jsonschema:"wisdom score"`
	Charisma     int `json:"charisma" jsonschema:"charisma score"`
}

// CurrentStatusPayload carries hit points, condition, and active buffs.
type CurrentStatusPayload struct {
	HP        int      `json:"hp" jsonschema:"current hit points"`
	MaxHP     int      `json:"max_hp" jsonschema:"maximum hit points"`
	Condition string   `json:"condition" jsonschema:"free-text condition"`
	Buffs     []string `json:"buffs" jsonschema:"active buffs"`
}

// InventoryItemPayload is one carried item with a quantity.
type InventoryItemPayload struct {
	ItemName string `json:"item_name" jsonschema:"item name"`
	Quantity int    `json:"quantity" jsonschema:"item count"`
}

// CharacterPayload is the wire form of a character record. Field names
// must stay stable: stored records share this shape.
type CharacterPayload struct {
	CharacterID   string                 `json:"character_id,omitempty" jsonschema:"unique character identifier"`
	CharacterName string                 `json:"character_name,omitempty" jsonschema:"optional display name"`
	PlayerID      string                 `json:"player_id" jsonschema:"owning player identifier"`
	Name          string                 `json:"name" jsonschema:"character name"`
	Class         string                 `json:"class,omitempty" jsonschema:"character class"`
	Race          string                 `json:"race,omitempty" jsonschema:"character race"`
	Gender        string                 `json:"gender,omitempty" jsonschema:"character gender"`
	Level         int                    `json:"level,omitempty" jsonschema:"character level"`
	Experience    int                    `json:"experience,omitempty" jsonschema:"total experience points"`
	Stats         *StatsPayload          `json:"stats,omitempty" jsonschema:"ability scores"`
	CurrentStatus *CurrentStatusPayload  `json:"current_status,omitempty" jsonschema:"hit points and condition"`
	Inventory     []InventoryItemPayload `json:"inventory,omitempty" jsonschema:"carried items"`
}

// CreateCharacterInput is the createCharacter tool input.
type CreateCharacterInput struct {
	Character CharacterPayload `json:"character" jsonschema:"character details; unset fields receive defaults"`
}

// CreateCharacterResult is the createCharacter tool output.
type CreateCharacterResult struct {
	Character CharacterPayload `json:"character" jsonschema:"persisted character"`
}

// GetCharacterInput is the getCharacter tool input.
type GetCharacterInput struct {
	CharacterID string `json:"character_id" jsonschema:"ID of the character to retrieve"`
}

// GetCharacterResult is the getCharacter tool output.
type GetCharacterResult struct {
	Character CharacterPayload `json:"character" jsonschema:"stored character"`
}

// PlayerCharactersInput is the getCharactersByPlayerId tool input.
type PlayerCharactersInput struct {
	PlayerID string `json:"player_id" jsonschema:"ID of the player to retrieve characters for"`
}

// PlayerCharactersResult is the getCharactersByPlayerId tool output.
type PlayerCharactersResult struct {
	Characters []CharacterPayload `json:"characters" jsonschema:"characters owned by the player"`
}

// UpdateCharacterInput is the updateCharacter tool input.
type UpdateCharacterInput struct {
	CharacterID string           `json:"character_id" jsonschema:"ID of the character to update"`
	Character   CharacterPayload `json:"character" jsonschema:"replacement character details"`
}

// UpdateCharacterResult is the updateCharacter tool output. Found is
// false when no record has the given id; Character is then absent.
type UpdateCharacterResult struct {
	Found     bool              `json:"found" jsonschema:"whether the character existed"`
	Character *CharacterPayload `json:"character,omitempty" jsonschema:"updated character when found"`
}

// AddExperienceInput is the addExperience tool input.
type AddExperienceInput struct {
	CharacterID string `json:"character_id" jsonschema:"ID of the character to add experience to"`
	Experience  int    `json:"experience" jsonschema:"amount of experience to add; may be negative"`
}

// AddExperienceResult is the addExperience tool output.
type AddExperienceResult struct {
	Found     bool              `json:"found" jsonschema:"whether the character existed"`
	Character *CharacterPayload `json:"character,omitempty" jsonschema:"updated character when found"`
}

// ProgressionInfoInput is the getProgressionInfo tool input.
type ProgressionInfoInput struct {
	CharacterID string `json:"character_id" jsonschema:"ID of the character to get progression info for"`
}

// ProgressionInfoResult is the getProgressionInfo tool output. At the
// level cap both forward-looking fields are 0.
type ProgressionInfoResult struct {
	Found                     bool   `json:"found" jsonschema:"whether the character existed"`
	CharacterID               string `json:"character_id,omitempty" jsonschema:"character identifier"`
	CurrentLevel              int    `json:"currentLevel,omitempty" jsonschema:"current level"`
	CurrentExperience         int    `json:"currentExperience,omitempty" jsonschema:"total experience points"`
	ExperienceForCurrentLevel int    `json:"experienceForCurrentLevel,omitempty" jsonschema:"threshold of the current level"`
	ExperienceForNextLevel    int    `json:"experienceForNextLevel,omitempty" jsonschema:"threshold of the next level; 0 at the cap"`
	ExperienceNeeded          int    `json:"experienceNeeded,omitempty" jsonschema:"experience remaining to the next level; may be negative"`
}

// DeleteCharacterInput is the deleteCharacter tool input.
type DeleteCharacterInput struct {
	CharacterID string `json:"character_id" jsonschema:"ID of the character to delete"`
}

// DeleteCharacterResult is the deleteCharacter tool output.
type DeleteCharacterResult struct {
	Deleted bool `json:"deleted" jsonschema:"always true; absent ids delete nothing"`
}

// ListCharactersInput is the getAllCharacters tool input.
type ListCharactersInput struct{}

// ListCharactersResult is the getAllCharacters tool output.
type ListCharactersResult struct {
	Characters []CharacterPayload `json:"characters" jsonschema:"every stored character"`
}

func payloadToDomain(p CharacterPayload) *character.Character {
	c := &character.Character{
		CharacterID:   p.CharacterID,
		CharacterName: p.CharacterName,
		PlayerID:      p.PlayerID,
		Name:          p.Name,
		Class:         p.Class,
		Race:          p.Race,
		Gender:        p.Gender,
		Level:         p.Level,
		Experience:    p.Experience,
	}
	if p.Stats != nil {
		c.Stats = &character.Stats{
			Strength:     p.Stats.Strength,
			Dexterity:    p.Stats.Dexterity,
			Constitution: p.Stats.Constitution,
			Intelligence: p.Stats.Intelligence,
			Wisdom:       p.Stats.Wisdom,
			Charisma:     p.Stats.Charisma,
		}
	}
	if p.CurrentStatus != nil {
		c.CurrentStatus = &character.CurrentStatus{
			HP:        p.CurrentStatus.HP,
			MaxHP:     p.CurrentStatus.MaxHP,
			Condition: p.CurrentStatus.Condition,
			Buffs:     append([]string(nil), p.CurrentStatus.Buffs...),
		}
	}
	for _, item := range p.Inventory {
		c.Inventory = append(c.Inventory, character.InventoryItem{
			ItemName: item.ItemName,
			Quantity: item.Quantity,
		})
	}
	return c
}

func payloadFromDomain(c *character.Character) CharacterPayload {
	p := CharacterPayload{
		CharacterID:   c.CharacterID,
		CharacterName: c.CharacterName,
		PlayerID:      c.PlayerID,
		Name:          c.Name,
		Class:         c.Class,
		Race:          c.Race,
		Gender:        c.Gender,
		Level:         c.Level,
		Experience:    c.Experience,
	}
	if c.Stats != nil {
		p.Stats = &StatsPayload{
			Strength:     c.Stats.Strength,
			Dexterity:    c.Stats.Dexterity,
			Constitution: c.Stats.Constitution,
			Intelligence: c.Stats.Intelligence,
			Wisdom:       c.Stats.Wisdom,
			Charisma:     c.Stats.Charisma,
		}
	}
	if c.CurrentStatus != nil {
		p.CurrentStatus = &CurrentStatusPayload{
			HP:        c.CurrentStatus.HP,
			MaxHP:     c.CurrentStatus.MaxHP,
			Condition: c.CurrentStatus.Condition,
			Buffs:     append([]string(nil), c.CurrentStatus.Buffs...),
		}
	}
	for _, item := range c.Inventory {
		p.Inventory = append(p.Inventory, InventoryItemPayload{
			ItemName: item.ItemName,
			Quantity: item.Quantity,
		})
	}
	return p
}

func payloadsFromDomain(chars []*character.Character) []CharacterPayload {
	out := make([]CharacterPayload, 0, len(chars))
	for _, c := range chars {
		out = append(out, payloadFromDomain(c))
	}
	return out
}

func progressionResult(p *roster.Progression) ProgressionInfoResult {
	return ProgressionInfoResult{
		Found:                     true,
		CharacterID:               p.CharacterID,
		CurrentLevel:              p.CurrentLevel,
		CurrentExperience:         p.CurrentExperience,
		ExperienceForCurrentLevel: p.ExperienceForCurrentLevel,
		ExperienceForNextLevel:    p.ExperienceForNextLevel,
		ExperienceNeeded:          p.ExperienceNeeded,
	}
}
