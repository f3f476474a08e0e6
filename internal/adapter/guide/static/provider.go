// Package static serves the Emergency Operations Manual, either the
// compiled-in text or an operator-supplied override file.
package static

import (
	"context"
	"os"
)

const builtinManual = `=== EMERGENCY OPERATIONS MANUAL ===

SECTION 1 - EMERGENCY PROTOCOL

You are Commander Alex Chen aboard the USS Phoenix research vessel.
The ship's AI has suffered a catastrophic failure, causing all
automated systems to shut down. Life support is failing, and you have
limited time to restore the AI before the ship becomes uninhabitable.

YOUR MISSION:
- Navigate through the ship's compartments
- Solve system failures and unlock doors
- Collect essential components and access codes
- Reach the AI Core and restore ship operations

SECTION 2 - BASIC COMMANDS

MOVEMENT AND NAVIGATION:
- look            examine your current location
- go [direction]  move (north, south, east, west)

INVENTORY AND ITEMS:
- take [item]     pick up items
- inventory (i)   view carried items
- use [item]      use items to solve problems

INFORMATION:
- status          check health, location, progress
- help            view the command list
- guide           reopen this manual

SECTION 3 - SHIP LAYOUT

BRIDGE LEVEL:      Communications - Bridge - Navigation
COMMAND LEVEL:     Command Center (START HERE)
MAIN CORRIDOR:     Engineering - Main Corridor - Security - Armory
LOWER DECKS:       Power Core - Life Support - Medical Bay -
                   Laboratory - Fabrication - Cargo Bay - Detention
AI CORE LEVEL:     AI Core (DESTINATION)

Locked compartments list their requirements when you try the door.
Security codes and keycards unlock multiple areas.

SECTION 4 - SURVIVAL TIPS

1. Explore systematically: visit every accessible room and note
   locked doors and their requirements.
2. Collect all tools and key items; some doors require items found
   in other rooms.
3. Life support is failing gradually, so efficiency matters.
4. Winning condition: assemble the AI matrix components, carry the
   AI activation key to the AI Core, and use it there.

GOOD LUCK, COMMANDER.
`

type Provider struct {
	path string
}

// NewBuiltin serves the compiled-in manual.
func NewBuiltin() Provider {
	return Provider{}
}

// NewFromFile serves the manual from path, falling back to the built-in
// text if the file cannot be read.
func NewFromFile(path string) Provider {
	return Provider{path: path}
}

func (p Provider) Manual(_ context.Context) ([]byte, error) {
	if p.path != "" {
		if b, err := os.ReadFile(p.path); err == nil {
			return b, nil
		}
	}
	return []byte(builtinManual), nil
}
