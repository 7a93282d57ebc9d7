package experience_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/grimward/charkeeper/internal/game/experience"
)

func TestThresholdForLevel_KnownValues(t *testing.T) {
	table := experience.NewTable()

	assert.Equal(t, 0, table.ThresholdForLevel(1))
	assert.Equal(t, 300, table.ThresholdForLevel(2))
	assert.Equal(t, 6500, table.ThresholdForLevel(5))
	assert.Equal(t, 64000, table.ThresholdForLevel(10))
	assert.Equal(t, 165000, table.ThresholdForLevel(15))
	assert.Equal(t, 355000, table.ThresholdForLevel(20))
}

func TestThresholdForLevel_ClampsOutOfRange(t *testing.T) {
	table := experience.NewTable()

	assert.Equal(t, 0, table.ThresholdForLevel(0))
	assert.Equal(t, 0, table.ThresholdForLevel(-3))
	assert.Equal(t, table.ThresholdForLevel(20), table.ThresholdForLevel(21))
	assert.Equal(t, table.ThresholdForLevel(20), table.ThresholdForLevel(100))
}

func TestLevelForExperience_Boundaries(t *testing.T) {
	table := experience.NewTable()

	assert.Equal(t, 1, table.LevelForExperience(0))
	assert.Equal(t, 1, table.LevelForExperience(299))
	assert.Equal(t, 2, table.LevelForExperience(300))
	assert.Equal(t, 2, table.LevelForExperience(899))
	assert.Equal(t, 3, table.LevelForExperience(900))
	assert.Equal(t, 20, table.LevelForExperience(355000))
	assert.Equal(t, 20, table.LevelForExperience(9999999))
}

func TestLevelForExperience_NegativeXP(t *testing.T) {
	table := experience.NewTable()
	assert.Equal(t, 1, table.LevelForExperience(-500))
}

func TestHasLeveledUp(t *testing.T) {
	table := experience.NewTable()

	assert.True(t, table.HasLeveledUp(1, 300))
	assert.False(t, table.HasLeveledUp(1, 299))
	assert.False(t, table.HasLeveledUp(2, 300))
	assert.False(t, table.HasLeveledUp(20, 9999999))
}

func TestExperienceForNextLevel(t *testing.T) {
	table := experience.NewTable()

	assert.Equal(t, 300, table.ExperienceForNextLevel(1))
	assert.Equal(t, 600, table.ExperienceForNextLevel(2))
	assert.Equal(t, 50000, table.ExperienceForNextLevel(19))
	assert.Equal(t, 0, table.ExperienceForNextLevel(20))
	assert.Equal(t, 0, table.ExperienceForNextLevel(25))
}

// Property: the threshold of a level maps back to exactly that level, and
// one XP short of a threshold maps strictly below it.
func TestProperty_ThresholdRoundTrip(t *testing.T) {
	table := experience.NewTable()
	rapid.Check(t, func(rt *rapid.T) {
		level := rapid.IntRange(1, experience.MaxLevel).Draw(rt, "level")
		xp := table.ThresholdForLevel(level)
		if got := table.LevelForExperience(xp); got != level {
			rt.Fatalf("LevelForExperience(%d) = %d, want %d", xp, got, level)
		}
		if level > 1 {
			if got := table.LevelForExperience(xp - 1); got >= level {
				rt.Fatalf("LevelForExperience(%d) = %d, want < %d", xp-1, got, level)
			}
		}
	})
}

// Property: thresholds are monotonically increasing over [1, 20].
func TestProperty_ThresholdsMonotone(t *testing.T) {
	table := experience.NewTable()
	rapid.Check(t, func(rt *rapid.T) {
		level := rapid.IntRange(2, experience.MaxLevel).Draw(rt, "level")
		if table.ThresholdForLevel(level) <= table.ThresholdForLevel(level-1) {
			rt.Fatalf("threshold(%d) <= threshold(%d)", level, level-1)
		}
	})
}

// Property: LevelForExperience never leaves [1, 20] for any XP value.
func TestProperty_LevelAlwaysInRange(t *testing.T) {
	table := experience.NewTable()
	rapid.Check(t, func(rt *rapid.T) {
		xp := rapid.IntRange(-1000000, 10000000).Draw(rt, "xp")
		level := table.LevelForExperience(xp)
		if level < 1 || level > experience.MaxLevel {
			rt.Fatalf("LevelForExperience(%d) = %d out of range", xp, level)
		}
	})
}
