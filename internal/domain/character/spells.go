package character

import (
	dnderr "github.com/KirkDiggler/character-vault/internal/errors"
)

// PrepareSpell adds a leveled spell to the prepared list. The spell must
// exist in the catalog and the class must have slots at its level. Preparing
// an already prepared spell leaves the snapshot unchanged.
func (e *Engine) PrepareSpell(c *Character, spellKey string) (*Character, error) {
	spell := e.spells.ByKey(spellKey)
	if spell == nil {
		return nil, dnderr.InvalidArgumentf("unknown spell %q", spellKey)
	}
	if spell.Level == 0 {
		return nil, dnderr.InvalidArgumentf("%s is a cantrip, not a leveled spell", spell.Name)
	}
	if e.spellSlotMax(c, spell.Level) == 0 {
		return nil, dnderr.Validationf("no level %d spell slots available to cast %s", spell.Level, spell.Name)
	}
	if containsString(c.Resources.PreparedSpells, spell.Key) {
		return c, nil
	}

	next := c.Clone()
	next.Resources.PreparedSpells = append(next.Resources.PreparedSpells, spell.Key)
	return next, nil
}

// UnprepareSpell removes a spell from the prepared list, ignoring spells that
// were not prepared
func (e *Engine) UnprepareSpell(c *Character, spellKey string) *Character {
	idx := -1
	for i, key := range c.Resources.PreparedSpells {
		if key == spellKey {
			idx = i
			break
		}
	}
	if idx < 0 {
		return c
	}

	next := c.Clone()
	next.Resources.PreparedSpells = append(
		next.Resources.PreparedSpells[:idx],
		next.Resources.PreparedSpells[idx+1:]...,
	)
	return next
}

// LearnCantrip adds a cantrip to the known list. Learning a known cantrip
// leaves the snapshot unchanged.
func (e *Engine) LearnCantrip(c *Character, spellKey string) (*Character, error) {
	spell := e.spells.ByKey(spellKey)
	if spell == nil {
		return nil, dnderr.InvalidArgumentf("unknown spell %q", spellKey)
	}
	if spell.Level != 0 {
		return nil, dnderr.InvalidArgumentf("%s is a leveled spell, not a cantrip", spell.Name)
	}
	if containsString(c.Resources.KnownCantrips, spell.Key) {
		return c, nil
	}

	next := c.Clone()
	next.Resources.KnownCantrips = append(next.Resources.KnownCantrips, spell.Key)
	return next, nil
}
