package ruleset_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grimward/charkeeper/internal/game/character"
	"github.com/grimward/charkeeper/internal/game/ruleset"
)

func TestBaseHPForClass_KnownAndUnknown(t *testing.T) {
	rules := ruleset.New(map[string]int{"Wizard": 6, "Barbarian": 12}, nil)

	assert.Equal(t, 6, rules.BaseHPForClass("Wizard"))
	assert.Equal(t, 12, rules.BaseHPForClass("Barbarian"))
	assert.Equal(t, ruleset.DefaultBaseHP, rules.BaseHPForClass("UnknownClass"))
	assert.Equal(t, ruleset.DefaultBaseHP, rules.BaseHPForClass(""))
}

func TestStarterKit_ReturnsCopy(t *testing.T) {
	kit := []character.InventoryItem{
		{ItemName: "Torch", Quantity: 2},
		{ItemName: "Rations", Quantity: 5},
	}
	rules := ruleset.New(nil, kit)

	first := rules.StarterKit()
	first[0].Quantity = 99

	second := rules.StarterKit()
	assert.Equal(t, 2, second[0].Quantity)
}

func writeContentDir(t *testing.T, classes, kit string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "classes.yaml"), []byte(classes), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "starter_kit.yaml"), []byte(kit), 0o644))
	return dir
}

func TestLoad_ParsesContentFiles(t *testing.T) {
	dir := writeContentDir(t, `
classes:
  - name: Fighter
    base_hp: 10
  - name: Wizard
    base_hp: 6
`, `
items:
  - item: Torch
    quantity: 2
  - item: Gold Pieces
    quantity: 10
`)

	rules, err := ruleset.Load(dir)
	require.NoError(t, err)

	assert.Equal(t, 10, rules.BaseHPForClass("Fighter"))
	assert.Equal(t, 6, rules.BaseHPForClass("Wizard"))
	assert.Equal(t, 2, rules.ClassCount())

	kit := rules.StarterKit()
	require.Len(t, kit, 2)
	assert.Equal(t, character.InventoryItem{ItemName: "Torch", Quantity: 2}, kit[0])
	assert.Equal(t, character.InventoryItem{ItemName: "Gold Pieces", Quantity: 10}, kit[1])
}

func TestLoad_MissingFilesError(t *testing.T) {
	_, err := ruleset.Load(t.TempDir())
	require.Error(t, err)
}

func TestLoad_RejectsInvalidContent(t *testing.T) {
	tests := []struct {
		name    string
		classes string
		kit     string
	}{
		{
			name:    "empty class table",
			classes: "classes: []\n",
			kit:     "items:\n  - item: Torch\n    quantity: 1\n",
		},
		{
			name:    "unnamed class",
			classes: "classes:\n  - base_hp: 8\n",
			kit:     "items:\n  - item: Torch\n    quantity: 1\n",
		},
		{
			name:    "zero base hp",
			classes: "classes:\n  - name: Mime\n    base_hp: 0\n",
			kit:     "items:\n  - item: Torch\n    quantity: 1\n",
		},
		{
			name:    "empty kit",
			classes: "classes:\n  - name: Fighter\n    base_hp: 10\n",
			kit:     "items: []\n",
		},
		{
			name:    "zero quantity",
			classes: "classes:\n  - name: Fighter\n    base_hp: 10\n",
			kit:     "items:\n  - item: Torch\n    quantity: 0\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := writeContentDir(t, tt.classes, tt.kit)
			_, err := ruleset.Load(dir)
			require.Error(t, err)
		})
	}
}
