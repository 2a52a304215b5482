package character

import (
	"github.com/KirkDiggler/character-vault/internal/domain/rulebook"
	"github.com/KirkDiggler/character-vault/internal/domain/shared"
)

// ToggleRage flips the rage state. Activating consumes one use unless the
// class table reports unlimited uses; deactivating never refunds. With no
// uses left, or no rage feature at all, the snapshot is returned unchanged.
func (e *Engine) ToggleRage(c *Character) *Character {
	class := e.classTable(c)
	if class == nil || !class.HasRage() {
		return c
	}

	if c.Resources.IsRaging {
		next := c.Clone()
		next.Resources.IsRaging = false
		return next
	}

	max := class.RageUsesAt(c.Level)
	if max != rulebook.RageUsesUnlimited && c.Resources.RagesUsed >= max {
		return c
	}

	next := c.Clone()
	next.Resources.IsRaging = true
	if max != rulebook.RageUsesUnlimited {
		next.Resources.RagesUsed++
	}
	return next
}

// RagesRemaining returns remaining rage uses, rulebook.RageUsesUnlimited when
// untracked, and 0 for classes without rage
func (e *Engine) RagesRemaining(c *Character) int {
	class := e.classTable(c)
	if class == nil || !class.HasRage() {
		return 0
	}
	max := class.RageUsesAt(c.Level)
	if max == rulebook.RageUsesUnlimited {
		return rulebook.RageUsesUnlimited
	}
	remaining := max - c.Resources.RagesUsed
	if remaining < 0 {
		remaining = 0
	}
	return remaining
}

// AdjustHP applies a signed hit point change. Damage is absorbed by temporary
// hit points first and current HP floors at 0; healing caps at the maximum.
func (e *Engine) AdjustHP(c *Character, delta int) *Character {
	next := c.Clone()
	if delta < 0 {
		next.Resources.HP.Damage(-delta)
	} else {
		next.Resources.HP.Heal(delta)
	}
	return next
}

// GrantTempHP grants temporary hit points, keeping the higher pool
func (e *Engine) GrantTempHP(c *Character, amount int) *Character {
	if amount <= 0 {
		return c
	}
	next := c.Clone()
	next.Resources.HP.AddTemporaryHP(amount)
	return next
}

// SpendHitDice rolls count hit dice and heals the total, where each die adds
// the Constitution modifier floored at 0. Counts outside 1..remaining leave
// the snapshot unchanged and heal nothing.
func (e *Engine) SpendHitDice(c *Character, count int) (*Character, int, error) {
	if count < 1 || count > c.Resources.HitDiceRemaining {
		return c, 0, nil
	}
	class := e.classTable(c)
	if class == nil {
		return c, 0, nil
	}

	conMod := e.AbilityModifier(c, shared.AttributeConstitution)
	healed := 0
	for i := 0; i < count; i++ {
		result, err := e.roller.Roll(1, class.HitDie, 0)
		if err != nil {
			return nil, 0, err
		}
		perDie := result.Total + conMod
		if perDie < 0 {
			perDie = 0
		}
		healed += perDie
	}

	next := c.Clone()
	next.Resources.HitDiceRemaining -= count
	actual := next.Resources.HP.Heal(healed)
	return next, actual, nil
}

// ToggleSpellSlot marks one more slot of the given level as used, wrapping
// back to zero past the maximum. Levels with no slots are ignored.
func (e *Engine) ToggleSpellSlot(c *Character, slotLevel int) *Character {
	max := e.spellSlotMax(c, slotLevel)
	if max == 0 {
		return c
	}
	next := c.Clone()
	used := next.Resources.SpellSlotsUsed[slotLevel] + 1
	if used > max {
		used = 0
	}
	next.Resources.SpellSlotsUsed[slotLevel] = used
	return next
}

// SpellSlotsRemaining returns the unspent slots of the given level
func (e *Engine) SpellSlotsRemaining(c *Character, slotLevel int) int {
	remaining := e.spellSlotMax(c, slotLevel) - c.Resources.SpellSlotsUsed[slotLevel]
	if remaining < 0 {
		remaining = 0
	}
	return remaining
}

func (e *Engine) spellSlotMax(c *Character, slotLevel int) int {
	class := e.classTable(c)
	if class == nil {
		return 0
	}
	return class.SpellSlotsAt(c.Level)[slotLevel]
}

// UseSecondWind spends one second wind use and heals 1d10 plus level.
// Without uses remaining the snapshot is unchanged and nothing is rolled.
func (e *Engine) UseSecondWind(c *Character) (*Character, int, error) {
	class := e.classTable(c)
	if class == nil || c.Resources.SecondWindUsed >= class.SecondWindUsesAt(c.Level) {
		return c, 0, nil
	}

	result, err := e.roller.Roll(1, 10, c.Level)
	if err != nil {
		return nil, 0, err
	}

	next := c.Clone()
	next.Resources.SecondWindUsed++
	healed := next.Resources.HP.Heal(result.Total)
	return next, healed, nil
}

// UseActionSurge spends one action surge use, ignoring the call when none remain
func (e *Engine) UseActionSurge(c *Character) *Character {
	class := e.classTable(c)
	if class == nil || c.Resources.ActionSurgeUsed >= class.ActionSurgeUsesAt(c.Level) {
		return c
	}
	next := c.Clone()
	next.Resources.ActionSurgeUsed++
	return next
}

// MoxieRemaining returns the current moxie pool, deriving the full pool from
// the class table when nothing has been spent yet
func (e *Engine) MoxieRemaining(c *Character) int {
	if c.Resources.MoxieCurrent != nil {
		return *c.Resources.MoxieCurrent
	}
	class := e.classTable(c)
	if class == nil {
		return 0
	}
	return class.MoxieAt(c.Level)
}

// SpendMoxie deducts points from the moxie pool. Spends larger than the pool
// or non-positive are ignored.
func (e *Engine) SpendMoxie(c *Character, points int) *Character {
	current := e.MoxieRemaining(c)
	if points < 1 || points > current {
		return c
	}
	next := c.Clone()
	remaining := current - points
	next.Resources.MoxieCurrent = &remaining
	return next
}

// RefillMoxie restores the moxie pool to the class maximum. Exposed for
// features that refresh it outside a long rest.
func (e *Engine) RefillMoxie(c *Character) *Character {
	next := c.Clone()
	next.Resources.MoxieCurrent = nil
	return next
}

// ShortRest refunds one spent rage use when uses are tracked, and restores
// second wind and action surge
func (e *Engine) ShortRest(c *Character) *Character {
	next := c.Clone()

	if class := e.classTable(c); class != nil && class.HasRage() {
		if class.RageUsesAt(c.Level) != rulebook.RageUsesUnlimited && next.Resources.RagesUsed > 0 {
			next.Resources.RagesUsed--
		}
	}
	next.Resources.SecondWindUsed = 0
	next.Resources.ActionSurgeUsed = 0
	return next
}

// LongRest restores everything: full HP, temporary HP cleared, hit dice back
// to level, all rage uses and spell slots, moxie, second wind and action surge
func (e *Engine) LongRest(c *Character) *Character {
	next := c.Clone()
	next.Resources.HP.Current = next.Resources.HP.Max
	next.Resources.HP.Temporary = 0
	next.Resources.HitDiceRemaining = next.Level
	next.Resources.RagesUsed = 0
	next.Resources.IsRaging = false
	next.Resources.SpellSlotsUsed = make(map[int]int)
	next.Resources.MoxieCurrent = nil
	next.Resources.SecondWindUsed = 0
	next.Resources.ActionSurgeUsed = 0
	return next
}
