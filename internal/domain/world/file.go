package world

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileDefinition is the YAML shape of a world file. Rooms and items are
// sequences so authors control ordering; keys are hoisted into maps on load.
type fileDefinition struct {
	StartRoom      string   `yaml:"start_room"`
	StarterItems   []string `yaml:"starter_items"`
	PreUnlocked    []string `yaml:"pre_unlocked"`
	WinItem        string   `yaml:"win_item"`
	WinComponent   string   `yaml:"win_component"`
	ScannerItem    string   `yaml:"scanner_item"`
	IntroMessage   string   `yaml:"intro_message"`
	VictoryMessage string   `yaml:"victory_message"`
	Rooms          []Room   `yaml:"rooms"`
	Items          []Item   `yaml:"items"`
}

// LoadFile reads a world definition from a YAML file and validates it.
func LoadFile(path string) (Definition, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Definition{}, fmt.Errorf("read world file: %w", err)
	}
	return Parse(b)
}

// Parse decodes a YAML world definition and validates it.
func Parse(b []byte) (Definition, error) {
	var f fileDefinition
	if err := yaml.Unmarshal(b, &f); err != nil {
		return Definition{}, fmt.Errorf("decode world file: %w", err)
	}

	def := Definition{
		Rooms:          make(map[string]Room, len(f.Rooms)),
		Items:          make(map[string]Item, len(f.Items)),
		StartRoom:      f.StartRoom,
		StarterItems:   f.StarterItems,
		PreUnlocked:    f.PreUnlocked,
		WinItem:        f.WinItem,
		WinComponent:   f.WinComponent,
		ScannerItem:    f.ScannerItem,
		IntroMessage:   f.IntroMessage,
		VictoryMessage: f.VictoryMessage,
	}
	for _, room := range f.Rooms {
		if room.Key == "" {
			return Definition{}, fmt.Errorf("room %q has no key", room.Name)
		}
		if _, dup := def.Rooms[room.Key]; dup {
			return Definition{}, fmt.Errorf("duplicate room key %q", room.Key)
		}
		def.Rooms[room.Key] = room
	}
	for _, item := range f.Items {
		if item.Key == "" {
			return Definition{}, fmt.Errorf("item %q has no key", item.Name)
		}
		if _, dup := def.Items[item.Key]; dup {
			return Definition{}, fmt.Errorf("duplicate item key %q", item.Key)
		}
		def.Items[item.Key] = item
	}

	if err := def.Validate(); err != nil {
		return Definition{}, err
	}
	return def, nil
}
