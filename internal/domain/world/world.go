// Package world holds the static world definition: the room graph and the
// item catalog. A Definition is loaded once at startup and never mutated;
// the presence of an item in a room is derived at read time by subtracting
// the player's inventory from the room's static item list.
package world

import "sort"

type Room struct {
	Key            string            `yaml:"key"`
	Name           string            `yaml:"name"`
	Description    string            `yaml:"description"`
	Exits          map[string]string `yaml:"exits"`
	Items          []string          `yaml:"items"`
	Locked         bool              `yaml:"locked"`
	UnlockRequires []string          `yaml:"unlock_requires"`
	FinalObjective bool              `yaml:"final_objective"`
}

type Item struct {
	Key         string `yaml:"key"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Value       int    `yaml:"value"`
}

// CreditReward is the credits granted for picking the item up.
func (i Item) CreditReward() int {
	return i.Value / 10
}

type Definition struct {
	Rooms map[string]Room
	Items map[string]Item

	StartRoom      string
	StarterItems   []string
	PreUnlocked    []string
	WinItem        string
	WinComponent   string
	ScannerItem    string
	IntroMessage   string
	VictoryMessage string
}

func (d Definition) Room(key string) (Room, bool) {
	r, ok := d.Rooms[key]
	return r, ok
}

func (d Definition) Item(key string) (Item, bool) {
	i, ok := d.Items[key]
	return i, ok
}

// FinalObjectiveRoom returns the key of the room carrying the final
// objective flag. Validate guarantees exactly one exists.
func (d Definition) FinalObjectiveRoom() string {
	for key, r := range d.Rooms {
		if r.FinalObjective {
			return key
		}
	}
	return ""
}

// RoomKeys returns all room keys in deterministic order.
func (d Definition) RoomKeys() []string {
	keys := make([]string, 0, len(d.Rooms))
	for key := range d.Rooms {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// ExitDirections returns the room's exit directions in deterministic order.
func ExitDirections(r Room) []string {
	dirs := make([]string, 0, len(r.Exits))
	for dir := range r.Exits {
		dirs = append(dirs, dir)
	}
	sort.Strings(dirs)
	return dirs
}
