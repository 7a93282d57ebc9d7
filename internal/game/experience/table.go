// Package experience provides the level progression table and the pure
// lookup logic for deriving levels from accumulated experience points.
package experience

// MaxLevel is the level cap; experience beyond the level 20 threshold
// never grants further levels.
const MaxLevel = 20

// thresholds holds the cumulative XP required to reach each level.
// Index 0 is unused so that thresholds[level] reads naturally.
var thresholds = [MaxLevel + 1]int{
	1:  0,
	2:  300,
	3:  900,
	4:  2700,
	5:  6500,
	6:  14000,
	7:  23000,
	8:  34000,
	9:  48000,
	10: 64000,
	11: 85000,
	12: 100000,
	13: 120000,
	14: 140000,
	15: 165000,
	16: 195000,
	17: 225000,
	18: 265000,
	19: 305000,
	20: 355000,
}

// Table answers level/threshold questions against the fixed progression
// curve. It carries no mutable state and is safe for concurrent use.
type Table struct{}

// NewTable returns the progression table. Construct once at startup and
// share; see Character service wiring in cmd/charserver.
func NewTable() *Table {
	return &Table{}
}

// ThresholdForLevel returns the cumulative XP required to reach level.
// Levels above MaxLevel are clamped to MaxLevel; levels below 1 return 0.
func (t *Table) ThresholdForLevel(level int) int {
	if level < 1 {
		return 0
	}
	if level > MaxLevel {
		level = MaxLevel
	}
	return thresholds[level]
}

// LevelForExperience returns the highest level whose threshold is met by
// totalXP, scanning from MaxLevel downward. Negative XP yields level 1.
func (t *Table) LevelForExperience(totalXP int) int {
	for level := MaxLevel; level > 1; level-- {
		if totalXP >= thresholds[level] {
			return level
		}
	}
	return 1
}

// HasLeveledUp reports whether totalXP is enough to put a character
// strictly above currentLevel.
func (t *Table) HasLeveledUp(currentLevel, totalXP int) bool {
	return t.LevelForExperience(totalXP) > currentLevel
}

// ExperienceForNextLevel returns the XP gap between currentLevel and the
// next level, or 0 when the character is already at the cap.
func (t *Table) ExperienceForNextLevel(currentLevel int) int {
	if currentLevel >= MaxLevel {
		return 0
	}
	return t.ThresholdForLevel(currentLevel+1) - t.ThresholdForLevel(currentLevel)
}
