// Package character defines the character domain model and the pure
// default-population logic applied when a character is first created.
//
// JSON tags carry the wire names used both by the tool payloads and by the
// persisted record; nested shapes must not change, existing stored data
// depends on them.
package character

// Stats holds the six ability scores. A freshly created character without
// explicit stats gets 10 in every score.
type Stats struct {
	Strength     int `json:"strength"`
	Dexterity    int `json:"dexterity"`
	Constitution int `json:"constitution"`
	Intelligence int `json:"intelligence"`
	Wisdom       int `json:"wisdom"`
	Charisma     int `json:"charisma"`
}

// Modifier returns the ability modifier for a score: (score - 10) / 2,
// truncated toward zero. May be negative.
func Modifier(score int) int {
	return (score - 10) / 2
}

// CurrentStatus tracks hit points and transient state. Condition is
// free-text set by callers and is not validated against an enum.
type CurrentStatus struct {
	HP        int      `json:"hp"`
	MaxHP     int      `json:"max_hp"`
	Condition string   `json:"condition"`
	Buffs     []string `json:"buffs"`
}

// InventoryItem is a named item stack. Items are not unique within an
// inventory; duplicates are allowed.
type InventoryItem struct {
	ItemName string `json:"item_name"`
	Quantity int    `json:"quantity"`
}

// Character is a player-owned game entity with stats, inventory, and
// progression state.
//
// Stats and CurrentStatus are pointers so that an absent section can be
// told apart from a zero-valued one during default population.
type Character struct {
	CharacterID   string          `json:"character_id"`
	CharacterName string          `json:"character_name,omitempty"`
	PlayerID      string          `json:"player_id"`
	Name          string          `json:"name"`
	Class         string          `json:"class,omitempty"`
	Race          string          `json:"race,omitempty"`
	Gender        string          `json:"gender,omitempty"`
	Level         int             `json:"level"`
	Experience    int             `json:"experience"`
	Stats         *Stats          `json:"stats,omitempty"`
	CurrentStatus *CurrentStatus  `json:"current_status,omitempty"`
	Inventory     []InventoryItem `json:"inventory,omitempty"`
}
