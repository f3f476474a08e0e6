package game

import "phoenixcore/internal/domain/world"

// IsLocked reports whether the room currently bars entry: its static lock
// flag is set and the session has not yet opened it. A room with
// Locked=false is never locked, whatever the unlocked set holds.
func IsLocked(room world.Room, unlocked []string) bool {
	return room.Locked && !contains(unlocked, room.Key)
}

// CanUnlock reports whether the inventory satisfies every unlock
// requirement. Rooms with no requirements are trivially unlockable.
func CanUnlock(room world.Room, inventory []string) bool {
	for _, req := range room.UnlockRequires {
		if !contains(inventory, req) {
			return false
		}
	}
	return true
}

// MissingRequirements lists the unlock items the inventory lacks, in the
// room's declared order.
func MissingRequirements(room world.Room, inventory []string) []string {
	missing := []string{}
	for _, req := range room.UnlockRequires {
		if !contains(inventory, req) {
			missing = append(missing, req)
		}
	}
	return missing
}
