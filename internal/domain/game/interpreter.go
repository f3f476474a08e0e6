package game

import (
	"fmt"
	"strings"
	"time"

	"phoenixcore/internal/domain/world"
)

// Interpreter turns one raw command string into a narrative response and an
// updated session. It is stateless across commands: every call computes its
// result deterministically from (command, session, world definition).
type Interpreter struct {
	World world.Definition
}

// Result carries the narrative response and the domain events of one
// processed command.
type Result struct {
	Message string        `json:"message"`
	Events  []DomainEvent `json:"events"`
}

type verbHandler func(in Interpreter, c *commandContext)

// commandContext is the scratch space one dispatch works on.
type commandContext struct {
	sess    *Session
	verb    string
	args    string
	now     time.Time
	message strings.Builder
	events  []DomainEvent
}

func (c *commandContext) printf(format string, args ...any) {
	if len(args) == 0 {
		c.message.WriteString(format)
		return
	}
	fmt.Fprintf(&c.message, format, args...)
}

func (c *commandContext) emit(eventType string, payload map[string]any) {
	c.events = append(c.events, newEvent(eventType, c.now, payload))
}

// verbRegistry maps every canonical verb to its handler. Aliases are
// canonicalized before lookup.
func verbRegistry() map[string]verbHandler {
	return map[string]verbHandler{
		"look":      Interpreter.handleLook,
		"go":        Interpreter.handleGo,
		"take":      Interpreter.handleTake,
		"use":       Interpreter.handleUse,
		"inventory": Interpreter.handleInventory,
		"status":    Interpreter.handleStatus,
		"help":      Interpreter.handleHelp,
		"guide":     Interpreter.handleGuide,
	}
}

func canonicalVerb(verb string) string {
	switch verb {
	case "l":
		return "look"
	case "move":
		return "go"
	case "get":
		return "take"
	case "i", "inv":
		return "inventory"
	case "stats":
		return "status"
	case "commands":
		return "help"
	default:
		return verb
	}
}

// Verb reports the canonical verb a raw command dispatches to, or
// "unknown" when no handler exists.
func Verb(rawCommand string) string {
	tokens := strings.Fields(strings.ToLower(strings.TrimSpace(rawCommand)))
	if len(tokens) == 0 {
		return "unknown"
	}
	verb := canonicalVerb(tokens[0])
	if _, ok := verbRegistry()[verb]; !ok {
		return "unknown"
	}
	return verb
}

// Execute processes one command. It never fails: malformed input yields a
// prompting message and the universal counters still advance. The returned
// session replaces the caller's copy; the input session is not mutated.
func (in Interpreter) Execute(sess Session, rawCommand string, now time.Time) (Result, Session) {
	next := sess.Clone()
	next.UpdatedAt = now

	tokens := strings.Fields(strings.ToLower(strings.TrimSpace(rawCommand)))
	verb := ""
	if len(tokens) > 0 {
		verb = canonicalVerb(tokens[0])
	}

	c := &commandContext{
		sess: &next,
		verb: verb,
		args: strings.Join(tokens[1:], " "),
		now:  now,
	}

	// The counters advance for every command, valid or not. Oxygen decay
	// keys on the new count so the scanner readout on a 5th command
	// already shows the post-decay value.
	next.State.CommandCount++
	if next.State.CommandCount%oxygenDecayInterval == 0 {
		next.State.OxygenLevel = clampPercent(next.State.OxygenLevel - oxygenDecayStep)
	}

	if handler, ok := verbRegistry()[verb]; ok {
		handler(in, c)
	} else {
		in.handleUnknown(c)
	}

	in.applyProgression(c)

	c.emit(EventCommandExecuted, map[string]any{
		"verb":        verb,
		"raw":         rawCommand,
		"state_after": stateAfter(next),
	})

	next.Version++
	return Result{Message: c.message.String(), Events: c.events}, next
}

func (in Interpreter) currentRoom(c *commandContext) world.Room {
	if room, ok := in.World.Room(c.sess.State.Location); ok {
		return room
	}
	room, _ := in.World.Room(in.World.StartRoom)
	return room
}

// humanize renders a list of item keys as prose: underscores become spaces
// and entries join with "and".
func humanize(keys []string) string {
	return strings.ReplaceAll(strings.Join(keys, " and "), "_", " ")
}
