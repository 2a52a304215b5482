package character

import (
	dnderr "github.com/KirkDiggler/character-vault/internal/errors"

	"github.com/KirkDiggler/character-vault/internal/domain/shared"
)

// MaxLevel is the progression cap
const MaxLevel = 20

// Advancement describes what the next level will grant and which choices
// the player owes before it can be applied
type Advancement struct {
	TargetLevel    int      `json:"target_level"`
	HitDie         int      `json:"hit_die"`
	Grants         []string `json:"grants"`
	NeedsASIOrFeat bool     `json:"needs_asi_or_feat"`
	NeedsSubclass  bool     `json:"needs_subclass"`
}

// ASIChoice raises ability scores: one ability by 2, or two abilities by 1 each
type ASIChoice struct {
	Abilities []shared.Attribute `json:"abilities"`
}

// FeatChoice takes a named feat, with optional per-feat choice payload
type FeatChoice struct {
	Name    string      `json:"name"`
	Choices FeatChoices `json:"choices"`
}

// LevelUpChoices carries the player decisions for one level-up
type LevelUpChoices struct {
	ASI      *ASIChoice  `json:"asi,omitempty"`
	Feat     *FeatChoice `json:"feat,omitempty"`
	Subclass string      `json:"subclass,omitempty"`
}

// HPGain is the fixed hit point gain per level: half the hit die plus one,
// plus the Constitution modifier, never below 1
func HPGain(hitDie, conMod int) int {
	gain := hitDie/2 + 1 + conMod
	if gain < 1 {
		gain = 1
	}
	return gain
}

// Advancement previews the next level, or nil when already at the level cap.
// A character without a valid class cannot advance.
func (e *Engine) Advancement(c *Character) (*Advancement, error) {
	class := e.classTable(c)
	if class == nil {
		return nil, dnderr.Validationf("character %s has no class and cannot level up", c.ID)
	}
	if c.Level >= MaxLevel {
		return nil, nil
	}

	target := c.Level + 1
	return &Advancement{
		TargetLevel:    target,
		HitDie:         class.HitDie,
		Grants:         class.FeaturesAt(target),
		NeedsASIOrFeat: class.IsASILevel(target),
		NeedsSubclass:  class.SubclassLevel == target && c.SubclassKey == "",
	}, nil
}

// ApplyLevelUp advances the character one level: choices are applied first,
// then the hit point gain uses the resulting Constitution modifier, one hit
// die is added, and the new level's feature grants are appended.
func (e *Engine) ApplyLevelUp(c *Character, choices *LevelUpChoices) (*Character, error) {
	class := e.classTable(c)
	if class == nil {
		return nil, dnderr.Validationf("character %s has no class and cannot level up", c.ID)
	}
	if c.Level >= MaxLevel {
		return c, nil
	}

	next := c.Clone()
	next.Level++

	if choices != nil {
		if choices.ASI != nil {
			if err := applyASI(next, choices.ASI); err != nil {
				return nil, err
			}
		}
		if choices.Feat != nil {
			withFeat, err := e.takeFeat(next, choices.Feat, "level-up")
			if err != nil {
				return nil, err
			}
			next = withFeat
		}
		if choices.Subclass != "" && next.Level == class.SubclassLevel {
			next.SubclassKey = choices.Subclass
		}
	}

	gain := HPGain(class.HitDie, e.AbilityModifier(next, shared.AttributeConstitution))
	next.Resources.HP.Max += gain
	next.Resources.HP.Current += gain
	next.Resources.HitDiceRemaining++

	for _, feature := range class.FeaturesAt(next.Level) {
		if !next.HasFeature(feature) {
			next.Features = append(next.Features, feature)
		}
	}

	return next, nil
}

// applyASI raises base scores in place: +2 to a single ability or +1 to each
// of two abilities
func applyASI(c *Character, asi *ASIChoice) error {
	for _, attr := range asi.Abilities {
		if !attr.IsValid() {
			return dnderr.InvalidArgumentf("unknown ability %q in score improvement", attr)
		}
	}
	switch len(asi.Abilities) {
	case 1:
		c.Abilities[asi.Abilities[0]] += 2
	case 2:
		c.Abilities[asi.Abilities[0]]++
		c.Abilities[asi.Abilities[1]]++
	default:
		return dnderr.InvalidArgument("score improvement needs one or two abilities")
	}
	return nil
}
