package rulebook

import (
	"github.com/KirkDiggler/character-vault/internal/domain/shared"
)

// RageUsesUnlimited is the sentinel for the level-20 capstone where rage
// uses are no longer tracked. Kept explicit so cap checks can branch on it
// instead of comparing against a magic large number.
const RageUsesUnlimited = -1

// UnarmoredDefenseKind tags the class-specific unarmored AC formula.
// Resolved once per class instead of string-matching class keys in the engine.
type UnarmoredDefenseKind string

const (
	UnarmoredDefenseNone UnarmoredDefenseKind = ""
	// UnarmoredDefenseCon is 10 + Dex mod + Con mod (barbarian)
	UnarmoredDefenseCon UnarmoredDefenseKind = "con"
	// UnarmoredDefenseWis is 10 + Dex mod + Wis mod (monk)
	UnarmoredDefenseWis UnarmoredDefenseKind = "wis"
)

// SecondaryAbility returns the ability added on top of 10 + Dex, or
// AttributeNone when the class has no unarmored defense formula.
func (k UnarmoredDefenseKind) SecondaryAbility() shared.Attribute {
	switch k {
	case UnarmoredDefenseCon:
		return shared.AttributeConstitution
	case UnarmoredDefenseWis:
		return shared.AttributeWisdom
	default:
		return shared.AttributeNone
	}
}

// ClassLevel is one row of a class table. Zero-valued fields mean
// "no change at this level"; stepped accessors on Class scan downward.
type ClassLevel struct {
	Features        []string    `yaml:"features"`
	RageUses        int         `yaml:"rage_uses"`
	RageDamage      int         `yaml:"rage_damage"`
	MoxiePoints     int         `yaml:"moxie_points"`
	UnarmedDie      int         `yaml:"unarmed_die"`
	SpellSlots      map[int]int `yaml:"spell_slots"`
	SecondWindUses  int         `yaml:"second_wind_uses"`
	ActionSurgeUses int         `yaml:"action_surge_uses"`
}

// Class is the immutable per-class rules table
type Class struct {
	Key               string               `yaml:"key"`
	Name              string               `yaml:"name"`
	HitDie            int                  `yaml:"hit_die"`
	Saves             []shared.Attribute   `yaml:"saves"`
	UnarmoredDefense  UnarmoredDefenseKind `yaml:"unarmored_defense"`
	UnarmedDieDefault int                  `yaml:"unarmed_die_default"`
	ASILevels         []int                `yaml:"asi_levels"`
	SubclassLevel     int                  `yaml:"subclass_level"`
	Subclasses        []string             `yaml:"subclasses"`
	Levels            map[int]ClassLevel   `yaml:"levels"`
}

// FeaturesAt returns the features granted at exactly the given level
func (c *Class) FeaturesAt(level int) []string {
	return c.Levels[level].Features
}

// IsASILevel reports whether the given level offers an ability score
// improvement or feat choice for this class
func (c *Class) IsASILevel(level int) bool {
	for _, l := range c.ASILevels {
		if l == level {
			return true
		}
	}
	return false
}

// steppedValue walks down from level to 1 and returns the first non-zero
// value produced by get, so sparse tables behave as step functions
func (c *Class) steppedValue(level int, get func(ClassLevel) int) int {
	for l := level; l >= 1; l-- {
		if entry, ok := c.Levels[l]; ok {
			if v := get(entry); v != 0 {
				return v
			}
		}
	}
	return 0
}

// RageUsesAt returns the rage uses per long rest at the given level.
// Returns RageUsesUnlimited at the capstone, 0 for classes without rage.
func (c *Class) RageUsesAt(level int) int {
	return c.steppedValue(level, func(e ClassLevel) int { return e.RageUses })
}

// RageDamageAt returns the flat rage damage bonus at the given level
func (c *Class) RageDamageAt(level int) int {
	return c.steppedValue(level, func(e ClassLevel) int { return e.RageDamage })
}

// HasRage reports whether this class has the rage mechanic at all
func (c *Class) HasRage() bool {
	return c.RageUsesAt(20) != 0
}

// MoxieAt returns the moxie pool maximum at the given level
func (c *Class) MoxieAt(level int) int {
	return c.steppedValue(level, func(e ClassLevel) int { return e.MoxiePoints })
}

// UnarmedDieAt returns the unarmed damage die faces at the given level,
// falling back to the class default. 0 means the engine should use d4.
func (c *Class) UnarmedDieAt(level int) int {
	if die := c.steppedValue(level, func(e ClassLevel) int { return e.UnarmedDie }); die != 0 {
		return die
	}
	return c.UnarmedDieDefault
}

// SpellSlotsAt returns the spell slot maxima by spell level at the given
// character level. Nil for non-casters.
func (c *Class) SpellSlotsAt(level int) map[int]int {
	for l := level; l >= 1; l-- {
		if entry, ok := c.Levels[l]; ok && entry.SpellSlots != nil {
			return entry.SpellSlots
		}
	}
	return nil
}

// SecondWindUsesAt returns the second wind uses per rest at the given level
func (c *Class) SecondWindUsesAt(level int) int {
	return c.steppedValue(level, func(e ClassLevel) int { return e.SecondWindUses })
}

// ActionSurgeUsesAt returns the action surge uses per rest at the given level
func (c *Class) ActionSurgeUsesAt(level int) int {
	return c.steppedValue(level, func(e ClassLevel) int { return e.ActionSurgeUses })
}

// IsSaveProficient reports whether the class grants save proficiency in attr
func (c *Class) IsSaveProficient(attr shared.Attribute) bool {
	for _, a := range c.Saves {
		if a == attr {
			return true
		}
	}
	return false
}
