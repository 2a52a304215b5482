package character

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/character-vault/internal/domain/rulebook"
	"github.com/KirkDiggler/character-vault/internal/domain/shared"
)

// UnknownWeaponDamage is used for equipped weapons without a damage table entry
const UnknownWeaponDamage = "1d6"

// AttackBreakdown explains the to-hit and damage numbers for one attack
type AttackBreakdown struct {
	Label       string `json:"label"`
	DamageDice  string `json:"damage_dice"`
	AbilityMod  int    `json:"ability_mod"`
	Proficient  bool   `json:"proficient"`
	Proficiency int    `json:"proficiency"`
	MagicBonus  int    `json:"magic_bonus"`
	RageBonus   int    `json:"rage_bonus"`
	FeatBonus   int    `json:"feat_bonus"`
	AttackBonus int    `json:"attack_bonus"`
	DamageBonus int    `json:"damage_bonus"`
}

// UnarmedAttack computes the unarmed strike breakdown. The damage die scales
// with the class table, defaulting to 1d4.
func (e *Engine) UnarmedAttack(c *Character) AttackBreakdown {
	strMod := e.AbilityModifier(c, shared.AttributeStrength)
	die := 4
	if class := e.classTable(c); class != nil {
		if classDie := class.UnarmedDieAt(c.Level); classDie > 0 {
			die = classDie
		}
	}

	breakdown := AttackBreakdown{
		Label:       "Unarmed Strike",
		DamageDice:  fmt.Sprintf("1d%d", die),
		AbilityMod:  strMod,
		Proficient:  true,
		Proficiency: e.ProficiencyBonus(c),
		RageBonus:   e.activeRageBonus(c),
	}
	breakdown.AttackBonus = breakdown.AbilityMod + breakdown.Proficiency
	breakdown.DamageBonus = breakdown.AbilityMod + breakdown.RageBonus
	return breakdown
}

// WeaponAttack computes the attack breakdown for a named weapon. Weapons
// missing from the damage table keep their name and fall back to 1d6.
func (e *Engine) WeaponAttack(c *Character, weaponName string) AttackBreakdown {
	record, magic := e.weapons.ByName(weaponName)

	breakdown := AttackBreakdown{
		Label:      weaponName,
		DamageDice: UnknownWeaponDamage,
		MagicBonus: magic,
		AbilityMod: e.AbilityModifier(c, shared.AttributeStrength),
		RageBonus:  e.activeRageBonus(c),
	}

	heavy := rulebook.IsHeavyWeaponName(weaponName)
	if record != nil {
		breakdown.DamageDice = record.DamageDice
		heavy = heavy || record.Heavy
	}

	breakdown.Proficient = e.isWeaponProficient(c, weaponName, record)
	if breakdown.Proficient {
		breakdown.Proficiency = e.ProficiencyBonus(c)
	}

	if heavy {
		breakdown.FeatBonus = e.heavyWeaponFeatBonus(c)
	}

	breakdown.AttackBonus = breakdown.AbilityMod + breakdown.Proficiency + breakdown.MagicBonus
	breakdown.DamageBonus = breakdown.AbilityMod + breakdown.MagicBonus + breakdown.RageBonus + breakdown.FeatBonus
	return breakdown
}

// WeaponAttacks computes breakdowns for every equipped weapon, in
// inventory order
func (e *Engine) WeaponAttacks(c *Character) []AttackBreakdown {
	var attacks []AttackBreakdown
	for _, entry := range c.Inventory {
		if !entry.Equipped {
			continue
		}
		if record, _ := e.weapons.ByName(entry.ItemName); record == nil {
			continue
		}
		attacks = append(attacks, e.WeaponAttack(c, entry.ItemName))
	}
	return attacks
}

// activeRageBonus returns the class rage damage bonus while raging, 0 otherwise
func (e *Engine) activeRageBonus(c *Character) int {
	if !c.Resources.IsRaging {
		return 0
	}
	class := e.classTable(c)
	if class == nil || !class.HasRage() {
		return 0
	}
	return class.RageDamageAt(c.Level)
}

// heavyWeaponFeatBonus sums flat heavy weapon damage bonuses from taken feats
func (e *Engine) heavyWeaponFeatBonus(c *Character) int {
	bonus := 0
	for _, feat := range c.Feats {
		if effect := e.feats.ByName(feat.Name); effect != nil {
			bonus += effect.HeavyWeaponDamage
		}
	}
	return bonus
}

// isWeaponProficient matches either the weapon name or its category
// ("simple", "martial") against the proficiency list
func (e *Engine) isWeaponProficient(c *Character, weaponName string, record *rulebook.WeaponRecord) bool {
	base, _ := rulebook.SplitMagicBonus(weaponName)
	for _, prof := range c.Proficiencies.Weapons {
		if strings.EqualFold(prof, base) || strings.EqualFold(prof, weaponName) {
			return true
		}
		if record != nil && strings.EqualFold(prof, record.Category) {
			return true
		}
	}
	return false
}
