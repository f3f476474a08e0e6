package game

const (
	oxygenDecayStep      = 2
	oxygenDecayInterval  = 5
	xpUniversalTick      = 1
	levelUpXPFactor      = 150
	levelUpPowerBonus    = 10
	criticalOxygenCeil   = 20
	levelUpNotice        = "\n\nSYSTEM UPGRADE COMPLETE! Commander Level %d! Ship power increased!"
	criticalOxygenNotice = "\n\nCRITICAL WARNING: Oxygen levels dangerously low! Find life support systems immediately!"
)

// applyProgression runs the cross-cutting rules after a verb handler:
// universal XP tick, level-up check, critical-oxygen notice. Oxygen decay
// already happened when the command counter advanced.
//
// The level-up check is deliberately a single if, not a loop: an XP jump
// crossing two thresholds in one command grants one level.
func (in Interpreter) applyProgression(c *commandContext) {
	s := &c.sess.State

	s.XP += xpUniversalTick

	if s.XP >= s.Level*levelUpXPFactor {
		s.Level++
		s.PowerLevel = clampPercent(s.PowerLevel + levelUpPowerBonus)
		c.printf(levelUpNotice, s.Level)
		c.emit(EventLevelUp, map[string]any{"level": s.Level})
	}

	if s.OxygenLevel > 0 && s.OxygenLevel <= criticalOxygenCeil {
		c.printf(criticalOxygenNotice)
	}
}
