// Package ruleset loads game content that parameterizes character
// creation: the per-class base hit point table and the starter inventory
// kit granted to new characters.
package ruleset

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/grimward/charkeeper/internal/game/character"
)

// DefaultBaseHP is used for unknown or missing classes.
const DefaultBaseHP = 8

// classFile is the YAML structure of content/classes.yaml.
type classFile struct {
	Classes []classEntry `yaml:"classes"`
}

type classEntry struct {
	Name   string `yaml:"name"`
	BaseHP int    `yaml:"base_hp"`
}

// starterKitFile is the YAML structure of content/starter_kit.yaml.
type starterKitFile struct {
	Items []starterKitEntry `yaml:"items"`
}

type starterKitEntry struct {
	Item     string `yaml:"item"`
	Quantity int    `yaml:"quantity"`
}

// Rules is the immutable content bundle consulted during character
// creation. Construct once at startup and share; safe for concurrent use.
type Rules struct {
	baseHP     map[string]int
	starterKit []character.InventoryItem
}

// New builds Rules from already-resolved values. Used by tests and by
// callers that do not load content from disk.
//
// Precondition: kit entries must have positive quantities.
func New(baseHP map[string]int, kit []character.InventoryItem) *Rules {
	classes := make(map[string]int, len(baseHP))
	for name, hp := range baseHP {
		classes[name] = hp
	}
	return &Rules{
		baseHP:     classes,
		starterKit: append([]character.InventoryItem(nil), kit...),
	}
}

// Load reads classes.yaml and starter_kit.yaml from dir.
//
// Precondition: dir must be a readable directory containing both files.
// Postcondition: Returns Rules with a non-empty class table and starter
// kit, or a non-nil error.
func Load(dir string) (*Rules, error) {
	classes, err := loadClasses(filepath.Join(dir, "classes.yaml"))
	if err != nil {
		return nil, err
	}
	kit, err := loadStarterKit(filepath.Join(dir, "starter_kit.yaml"))
	if err != nil {
		return nil, err
	}
	return &Rules{baseHP: classes, starterKit: kit}, nil
}

func loadClasses(path string) (map[string]int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading class table: %w", err)
	}
	var cf classFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("parsing class table %s: %w", path, err)
	}
	if len(cf.Classes) == 0 {
		return nil, fmt.Errorf("class table %s defines no classes", path)
	}
	classes := make(map[string]int, len(cf.Classes))
	for _, c := range cf.Classes {
		if c.Name == "" {
			return nil, fmt.Errorf("class table %s contains an unnamed class", path)
		}
		if c.BaseHP < 1 {
			return nil, fmt.Errorf("class %q has invalid base_hp %d", c.Name, c.BaseHP)
		}
		classes[c.Name] = c.BaseHP
	}
	return classes, nil
}

func loadStarterKit(path string) ([]character.InventoryItem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading starter kit: %w", err)
	}
	var kf starterKitFile
	if err := yaml.Unmarshal(data, &kf); err != nil {
		return nil, fmt.Errorf("parsing starter kit %s: %w", path, err)
	}
	if len(kf.Items) == 0 {
		return nil, fmt.Errorf("starter kit %s defines no items", path)
	}
	kit := make([]character.InventoryItem, len(kf.Items))
	for i, entry := range kf.Items {
		if entry.Item == "" {
			return nil, fmt.Errorf("starter kit %s entry %d has no item name", path, i)
		}
		if entry.Quantity < 1 {
			return nil, fmt.Errorf("starter kit item %q has invalid quantity %d", entry.Item, entry.Quantity)
		}
		kit[i] = character.InventoryItem{ItemName: entry.Item, Quantity: entry.Quantity}
	}
	return kit, nil
}

// BaseHPForClass returns the base hit points for a class name, or
// DefaultBaseHP when the class is unknown or empty.
func (r *Rules) BaseHPForClass(class string) int {
	if hp, ok := r.baseHP[class]; ok {
		return hp
	}
	return DefaultBaseHP
}

// StarterKit returns a fresh copy of the default inventory so callers can
// mutate their copy freely.
func (r *Rules) StarterKit() []character.InventoryItem {
	return append([]character.InventoryItem(nil), r.starterKit...)
}

// ClassCount reports how many classes are defined. Used for startup
// logging.
func (r *Rules) ClassCount() int {
	return len(r.baseHP)
}
