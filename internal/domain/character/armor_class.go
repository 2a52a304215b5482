package character

import (
	"github.com/KirkDiggler/character-vault/internal/domain/rulebook"
	"github.com/KirkDiggler/character-vault/internal/domain/shared"
)

// Formula labels surfaced in the AC breakdown
const (
	ACFormulaLabelOverride   = "Manual Override"
	ACFormulaLabelLight      = "Light Armor"
	ACFormulaLabelMedium     = "Medium Armor"
	ACFormulaLabelHeavy      = "Heavy Armor"
	ACFormulaLabelUnarmoredD = "Unarmored Defense"
	ACFormulaLabelUnarmored  = "Unarmored"
)

// ACBreakdown explains how the armor class total came together
type ACBreakdown struct {
	Formula     string `json:"formula"`
	Base        int    `json:"base"`
	DexBonus    int    `json:"dex_bonus"`
	ShieldBonus int    `json:"shield_bonus"`
	MagicBonus  int    `json:"magic_bonus"`
	IsOverride  bool   `json:"is_override"`
	Total       int    `json:"total"`
}

// equippedGear is the character's equipped inventory resolved against the
// armor and item catalogs
type equippedGear struct {
	armor      *rulebook.ArmorRecord
	armorMagic int
	hasShield  bool
	shieldAC   int
	// magicItems sums the flat AC bonus of equipped protection items plus
	// any +N decoration on their names, so a "Ring of Protection +1" grants
	// the ring's bonus and the enhancement on top of it
	magicItems int
}

func (e *Engine) resolveEquipped(c *Character) equippedGear {
	var gear equippedGear
	for _, entry := range c.Inventory {
		if !entry.Equipped {
			continue
		}
		if record, magic := e.armor.ByName(entry.ItemName); record != nil {
			if record.Weight == rulebook.ArmorWeightShield {
				gear.hasShield = true
				gear.shieldAC = record.BaseAC
				gear.magicItems += magic
				continue
			}
			// first equipped body armor wins
			if gear.armor == nil {
				gear.armor = record
				gear.armorMagic = magic
			}
			continue
		}
		if item := e.items.ByName(entry.ItemName); item != nil {
			gear.magicItems += item.ACBonus
			_, magic := rulebook.SplitMagicBonus(entry.ItemName)
			gear.magicItems += magic
		}
	}
	return gear
}

// ArmorClass computes the armor class with a structured breakdown.
// Precedence: manual override, then equipped armor, then the class unarmored
// formula, then a flagged fixed formula, then 10 + Dex. Shield and magic
// bonuses apply to every branch except the override.
func (e *Engine) ArmorClass(c *Character) ACBreakdown {
	if total, ok := c.Overrides[OverrideAC]; ok {
		return ACBreakdown{
			Formula:    ACFormulaLabelOverride,
			Base:       total,
			IsOverride: true,
			Total:      total,
		}
	}

	gear := e.resolveEquipped(c)
	dexMod := e.AbilityModifier(c, shared.AttributeDexterity)

	breakdown := ACBreakdown{MagicBonus: gear.armorMagic + gear.magicItems}
	if gear.hasShield {
		breakdown.ShieldBonus = gear.shieldAC
	}

	switch {
	case gear.armor != nil:
		breakdown.Base = gear.armor.BaseAC
		switch gear.armor.Weight {
		case rulebook.ArmorWeightHeavy:
			breakdown.Formula = ACFormulaLabelHeavy
		case rulebook.ArmorWeightMedium:
			breakdown.Formula = ACFormulaLabelMedium
			breakdown.DexBonus = dexMod
			if breakdown.DexBonus > 2 {
				breakdown.DexBonus = 2
			}
		default:
			breakdown.Formula = ACFormulaLabelLight
			breakdown.DexBonus = dexMod
		}

	case e.unarmoredDefense(c) != shared.AttributeNone:
		secondary := e.unarmoredDefense(c)
		breakdown.Formula = ACFormulaLabelUnarmoredD
		breakdown.Base = 10 + e.AbilityModifier(c, secondary)
		breakdown.DexBonus = dexMod

	case c.Bonuses.ACFormula != "":
		if formula := rulebook.ACFormulaByKey(c.Bonuses.ACFormula); formula != nil {
			breakdown.Formula = formula.Label
			breakdown.Base = formula.Base
			if formula.Ability != shared.AttributeNone {
				breakdown.Base += e.AbilityModifier(c, formula.Ability)
			}
			if formula.AddDex {
				breakdown.DexBonus = dexMod
			}
			break
		}
		fallthrough

	default:
		breakdown.Formula = ACFormulaLabelUnarmored
		breakdown.Base = 10
		breakdown.DexBonus = dexMod
	}

	breakdown.Total = breakdown.Base + breakdown.DexBonus + breakdown.ShieldBonus + breakdown.MagicBonus
	return breakdown
}

// unarmoredDefense returns the secondary ability of the class unarmored
// formula, or AttributeNone when the class has none
func (e *Engine) unarmoredDefense(c *Character) shared.Attribute {
	class := e.classTable(c)
	if class == nil {
		return shared.AttributeNone
	}
	return class.UnarmoredDefense.SecondaryAbility()
}
