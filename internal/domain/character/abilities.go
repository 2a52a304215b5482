package character

import (
	"github.com/KirkDiggler/character-vault/internal/dice"
	"github.com/KirkDiggler/character-vault/internal/domain/shared"
)

// Modifier converts an ability score to its modifier, rounding down.
// Score 1 is -5, score 30 is +10.
func Modifier(score int) int {
	delta := score - 10
	if delta < 0 {
		delta--
	}
	return delta / 2
}

// ProficiencyBonusForLevel returns the proficiency bonus for a character
// level, stepping +1 every four levels starting at +2
func ProficiencyBonusForLevel(level int) int {
	if level < 1 {
		level = 1
	}
	if level > 20 {
		level = 20
	}
	return (level-1)/4 + 2
}

// ProficiencyBonus returns the character's proficiency bonus
func (e *Engine) ProficiencyBonus(c *Character) int {
	return ProficiencyBonusForLevel(c.Level)
}

// AbilityScore returns the effective score: base plus every additive bonus.
// Unknown ability keys return 0.
func (e *Engine) AbilityScore(c *Character, attr shared.Attribute) int {
	if !attr.IsValid() {
		return 0
	}
	score, ok := c.Abilities[attr]
	if !ok {
		score = 10
	}
	return score + c.Bonuses.Abilities[attr]
}

// AbilityModifier returns the modifier of the effective score.
// Unknown ability keys return 0.
func (e *Engine) AbilityModifier(c *Character, attr shared.Attribute) int {
	if !attr.IsValid() {
		return 0
	}
	return Modifier(e.AbilityScore(c, attr))
}

// SaveBonus returns the saving throw bonus: ability modifier plus the
// proficiency bonus when the character is proficient in that save
func (e *Engine) SaveBonus(c *Character, attr shared.Attribute) int {
	if !attr.IsValid() {
		return 0
	}
	bonus := e.AbilityModifier(c, attr)
	for _, save := range c.Proficiencies.SavingThrows {
		if save == attr {
			bonus += e.ProficiencyBonus(c)
			break
		}
	}
	return bonus
}

// SkillBonus returns the skill check bonus: governing ability modifier, plus
// proficiency when trained, doubled for expertise. Unknown skills return 0.
func (e *Engine) SkillBonus(c *Character, skill shared.Skill) int {
	ability := skill.Ability()
	if ability == shared.AttributeNone {
		return 0
	}
	bonus := e.AbilityModifier(c, ability)
	for _, expert := range c.Proficiencies.Expertise {
		if expert == skill {
			return bonus + 2*e.ProficiencyBonus(c)
		}
	}
	for _, trained := range c.Proficiencies.Skills {
		if trained == skill {
			return bonus + e.ProficiencyBonus(c)
		}
	}
	return bonus
}

// RollSkillCheck rolls a d20 skill check with the character's skill bonus
func (e *Engine) RollSkillCheck(c *Character, skill shared.Skill) (*dice.RollResult, error) {
	return e.roller.Roll(1, 20, e.SkillBonus(c, skill))
}

// RollSavingThrow rolls a d20 saving throw with the character's save bonus
func (e *Engine) RollSavingThrow(c *Character, attr shared.Attribute) (*dice.RollResult, error) {
	return e.roller.Roll(1, 20, e.SaveBonus(c, attr))
}
