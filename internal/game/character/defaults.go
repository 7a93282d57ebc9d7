package character

// DefaultScore is the ability score assigned when a new character arrives
// without stats.
const DefaultScore = 10

// DefaultCondition is the condition string assigned to new characters.
const DefaultCondition = "Normal"

// ApplyDefaults fills in the unset fields of a newly created character:
// level, experience, stats, current status, and inventory. Fields the
// caller already populated are left untouched.
//
// baseHP is the class base hit points already resolved from the ruleset;
// kit is the starter inventory granted when none was provided.
//
// Precondition: c must be non-nil.
// Postcondition: c.Stats and c.CurrentStatus are non-nil; c.Level >= 1.
func ApplyDefaults(c *Character, baseHP int, kit []InventoryItem) {
	if c.Level == 0 {
		c.Level = 1
	}

	if c.Stats == nil {
		c.Stats = &Stats{
			Strength:     DefaultScore,
			Dexterity:    DefaultScore,
			Constitution: DefaultScore,
			Intelligence: DefaultScore,
			Wisdom:       DefaultScore,
			Charisma:     DefaultScore,
		}
	}

	// Status derivation assumes stats are already resolved.
	if c.CurrentStatus == nil {
		maxHP := baseHP + Modifier(c.Stats.Constitution)
		c.CurrentStatus = &CurrentStatus{
			HP:        maxHP,
			MaxHP:     maxHP,
			Condition: DefaultCondition,
			Buffs:     []string{},
		}
	}

	if len(c.Inventory) == 0 {
		c.Inventory = append([]InventoryItem(nil), kit...)
	}
}
