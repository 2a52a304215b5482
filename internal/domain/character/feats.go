package character

import (
	"github.com/KirkDiggler/character-vault/internal/domain/shared"
	dnderr "github.com/KirkDiggler/character-vault/internal/errors"
)

// FeatChoices carries the player decisions a feat asks for. Both the single
// and the list shape are accepted; they are merged before applying.
type FeatChoices struct {
	AbilityStat  shared.Attribute   `json:"ability_stat,omitempty"`
	AbilityStats []shared.Attribute `json:"ability_stats,omitempty"`
}

func (fc FeatChoices) abilities() []shared.Attribute {
	var abilities []shared.Attribute
	if fc.AbilityStat != shared.AttributeNone {
		abilities = append(abilities, fc.AbilityStat)
	}
	return append(abilities, fc.AbilityStats...)
}

// ApplyFeat applies a feat's mechanical effects and records it on the sheet.
// Feats without an effect table entry leave the snapshot unchanged.
func (e *Engine) ApplyFeat(c *Character, choice *FeatChoice) (*Character, error) {
	if choice == nil || choice.Name == "" {
		return nil, dnderr.InvalidArgument("feat name is required")
	}
	if e.feats.ByName(choice.Name) == nil {
		return c, nil
	}
	return e.takeFeat(c.Clone(), choice, "manual")
}

// takeFeat mutates the snapshot in place; callers pass a clone
func (e *Engine) takeFeat(c *Character, choice *FeatChoice, source string) (*Character, error) {
	if effect := e.feats.ByName(choice.Name); effect != nil {
		for attr, bonus := range effect.AbilityBonuses {
			raiseAbility(e, c, attr, bonus, effect.MaxAbilityScore)
		}
		if effect.AbilityChoiceBonus > 0 {
			for _, attr := range choice.Choices.abilities() {
				if !attr.IsValid() {
					return nil, dnderr.InvalidArgumentf("unknown ability %q in feat choice", attr)
				}
				raiseAbility(e, c, attr, effect.AbilityChoiceBonus, effect.MaxAbilityScore)
			}
		}
		for _, prof := range effect.ArmorProficiencies {
			if !containsString(c.Proficiencies.Armor, prof) {
				c.Proficiencies.Armor = append(c.Proficiencies.Armor, prof)
			}
		}
		if effect.HPPerLevel > 0 {
			bonus := effect.HPPerLevel * c.Level
			c.Resources.HP.Max += bonus
			c.Resources.HP.Current += bonus
		}
		if effect.ACFormula != "" {
			c.Bonuses.ACFormula = effect.ACFormula
		}
	}

	c.Feats = append(c.Feats, FeatRecord{
		Name:         choice.Name,
		Source:       source,
		TakenAtLevel: c.Level,
	})
	return c, nil
}

// raiseAbility adds a feat bonus to the base score, clamped so the effective
// score never passes the feat's stated maximum
func raiseAbility(e *Engine, c *Character, attr shared.Attribute, bonus, maxScore int) {
	if maxScore > 0 {
		headroom := maxScore - e.AbilityScore(c, attr)
		if headroom < bonus {
			bonus = headroom
		}
	}
	if bonus > 0 {
		c.Abilities[attr] += bonus
	}
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
