package game

import (
	"strings"

	"phoenixcore/internal/domain/world"
)

const (
	xpLook       = 2
	xpMove       = 5
	xpTake       = 10
	xpScanner    = 3
	xpUseGeneric = 5
	xpVictory    = 500
)

func (in Interpreter) handleLook(c *commandContext) {
	room := in.currentRoom(c)
	c.printf("%s\n\n%s\n", room.Name, room.Description)

	available := []string{}
	for _, key := range room.Items {
		if c.sess.HasItem(key) {
			continue
		}
		if item, ok := in.World.Item(key); ok {
			available = append(available, item.Name)
		}
	}
	if len(available) > 0 {
		c.printf("\nItems here: %s\n", strings.Join(available, ", "))
	}

	exits := []string{}
	for _, dir := range world.ExitDirections(room) {
		target, _ := in.World.Room(room.Exits[dir])
		if IsLocked(target, c.sess.Unlocked) {
			dir += " [locked]"
		}
		exits = append(exits, dir)
	}
	c.printf("\nExits: %s", strings.Join(exits, ", "))

	c.sess.State.XP += xpLook
}

func (in Interpreter) handleGo(c *commandContext) {
	if c.args == "" {
		c.printf("Go where? (Example: go north, go south)")
		return
	}

	direction := strings.Fields(c.args)[0]
	room := in.currentRoom(c)
	targetKey, ok := room.Exits[direction]
	if !ok {
		c.printf("You can't go %s from here.", direction)
		return
	}

	target, _ := in.World.Room(targetKey)
	if IsLocked(target, c.sess.Unlocked) {
		if !CanUnlock(target, c.sess.State.Inventory) {
			missing := MissingRequirements(target, c.sess.State.Inventory)
			c.printf("The door is locked. Required: %s.", humanize(missing))
			return
		}
		c.sess.Unlock(targetKey)
		c.printf("Using %s, you unlock the door and enter...\n\n", humanize(target.UnlockRequires))
		c.emit(EventRoomUnlocked, map[string]any{"room": targetKey})
	}

	c.sess.State.Location = targetKey
	c.sess.State.XP += xpMove
	c.sess.MarkVisited(targetKey)

	c.printf("You move %s to %s.\n\n%s", direction, target.Name, target.Description)
}

func (in Interpreter) handleTake(c *commandContext) {
	if c.args == "" {
		c.printf("Take what? (Example: take codes, take key)")
		return
	}

	room := in.currentRoom(c)
	key, found := ResolveItem(c.args, room.Items, in.World.Items)
	if !found {
		c.printf("There's no '%s' here to take.", c.args)
		return
	}
	item, _ := in.World.Item(key)
	if c.sess.HasItem(key) {
		c.printf("You already have the %s.", item.Name)
		return
	}

	c.sess.AddItem(key)
	c.sess.State.XP += xpTake
	reward := item.CreditReward()
	c.sess.State.Credits += reward
	c.printf("You take the %s. +%d XP, +%d credits!\n\n%s", item.Name, xpTake, reward, item.Description)
	c.emit(EventItemTaken, map[string]any{"item": key, "credits": reward})
}

func (in Interpreter) handleUse(c *commandContext) {
	if c.args == "" {
		c.printf("Use what? (Example: use scanner, use activation key)")
		return
	}

	key, found := ResolveItem(c.args, c.sess.State.Inventory, in.World.Items)
	if !found {
		c.printf("You don't have '%s' in your inventory.", c.args)
		return
	}

	switch {
	case key == in.World.WinItem && c.sess.State.Location == in.World.FinalObjectiveRoom():
		if c.sess.HasItem(in.World.WinComponent) {
			in.completeGame(c)
			return
		}
		component, _ := in.World.Item(in.World.WinComponent)
		c.printf("The activation key needs the %s to function. Find them in the Laboratory first!", component.Name)
	case key == in.World.ScannerItem:
		room := in.currentRoom(c)
		c.printf("SCANNER ANALYSIS:\n\nLocation: %s\nSystem Status: Operational\n", room.Name)
		c.printf("Oxygen Level: %d%%\nPower Level: %d%%", c.sess.State.OxygenLevel, c.sess.State.PowerLevel)
		c.sess.State.XP += xpScanner
	default:
		item, _ := in.World.Item(key)
		c.sess.State.XP += xpUseGeneric
		c.printf("You use the %s. The device activates with a soft hum. +%d XP", item.Name, xpUseGeneric)
	}
}

// completeGame fires the one-way win transition: the victory narrative
// replaces the response built so far.
func (in Interpreter) completeGame(c *commandContext) {
	c.sess.State.GameCompleted = true
	c.sess.State.XP += xpVictory
	c.message.Reset()
	c.printf("%s", in.World.VictoryMessage)
	c.emit(EventGameCompleted, map[string]any{"xp_bonus": xpVictory})
}

func (in Interpreter) handleInventory(c *commandContext) {
	c.printf("Commander's Equipment:\n\n")
	if len(c.sess.State.Inventory) == 0 {
		c.printf("Your equipment bay is empty.")
		return
	}
	for _, key := range c.sess.State.Inventory {
		if item, ok := in.World.Item(key); ok {
			c.printf("- %s\n  %s\n", item.Name, item.Description)
		}
	}
}

func (in Interpreter) handleStatus(c *commandContext) {
	s := c.sess.State
	room := in.currentRoom(c)
	c.printf("EMERGENCY STATUS REPORT:\n\n")
	c.printf("Commander: %s\n", c.sess.PlayerName)
	c.printf("Location: %s\n", room.Name)
	c.printf("Mission Level: %d\n", s.Level)
	c.printf("Experience: %d XP\n", s.XP)
	c.printf("Credits: %d\n", s.Credits)
	c.printf("Commands Issued: %d\n\n", s.CommandCount)
	c.printf("SHIP STATUS:\n")
	c.printf("Oxygen Level: %d%%\n", s.OxygenLevel)
	c.printf("Power Level: %d%%\n", s.PowerLevel)
	c.printf("Compartments Accessed: %d/%d\n", s.VisitedRooms, len(in.World.Rooms))
	c.printf("Equipment Items: %d\n", len(s.Inventory))
	if s.GameCompleted {
		c.printf("Mission Status: COMPLETED")
	} else {
		c.printf("Mission Status: IN PROGRESS")
	}
}

func (in Interpreter) handleHelp(c *commandContext) {
	c.printf("EMERGENCY COMMAND INTERFACE:\n\n" +
		"NAVIGATION:\n" +
		"- go [direction] - Move through ship (north, south, east, west)\n" +
		"- look, l - Examine current compartment\n\n" +
		"EQUIPMENT:\n" +
		"- take [item] - Collect equipment and components\n" +
		"- use [item] - Activate devices and tools\n" +
		"- inventory, i - Check carried equipment\n\n" +
		"INFORMATION:\n" +
		"- status - View mission and ship status\n" +
		"- guide - Open operations manual\n" +
		"- help - This command list\n\n" +
		"MISSION OBJECTIVE:\n" +
		"Reach the AI Core and restore ship systems!")
}

func (in Interpreter) handleGuide(c *commandContext) {
	c.printf("Opening Emergency Operations Manual...")
	c.emit(EventGuideRequested, nil)
}

func (in Interpreter) handleUnknown(c *commandContext) {
	c.printf("Unknown command: '%s'. Type 'help' for available commands, or 'guide' for the full manual.", c.verb)
}
