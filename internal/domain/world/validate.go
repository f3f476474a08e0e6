package world

import "fmt"

// Validate checks the structural invariants of a definition: every exit
// points at a defined room, every referenced item exists in the catalog,
// exactly one room carries the final objective, and the start configuration
// is internally consistent.
func (d Definition) Validate() error {
	if _, ok := d.Rooms[d.StartRoom]; !ok {
		return fmt.Errorf("start room %q is not defined", d.StartRoom)
	}
	finalCount := 0
	for key, room := range d.Rooms {
		for dir, target := range room.Exits {
			if _, ok := d.Rooms[target]; !ok {
				return fmt.Errorf("room %q exit %q points at undefined room %q", key, dir, target)
			}
		}
		for _, item := range room.Items {
			if _, ok := d.Items[item]; !ok {
				return fmt.Errorf("room %q lists undefined item %q", key, item)
			}
		}
		for _, item := range room.UnlockRequires {
			if _, ok := d.Items[item]; !ok {
				return fmt.Errorf("room %q requires undefined item %q", key, item)
			}
		}
		if len(room.UnlockRequires) > 0 && !room.Locked {
			return fmt.Errorf("room %q has unlock requirements but is not locked", key)
		}
		if room.FinalObjective {
			finalCount++
		}
	}
	if finalCount != 1 {
		return fmt.Errorf("expected exactly one final objective room, found %d", finalCount)
	}
	for _, item := range d.StarterItems {
		if _, ok := d.Items[item]; !ok {
			return fmt.Errorf("starter item %q is not defined", item)
		}
	}
	for _, key := range d.PreUnlocked {
		if _, ok := d.Rooms[key]; !ok {
			return fmt.Errorf("pre-unlocked room %q is not defined", key)
		}
	}
	if _, ok := d.Items[d.WinItem]; !ok {
		return fmt.Errorf("win item %q is not defined", d.WinItem)
	}
	if _, ok := d.Items[d.WinComponent]; !ok {
		return fmt.Errorf("win component %q is not defined", d.WinComponent)
	}
	return nil
}
