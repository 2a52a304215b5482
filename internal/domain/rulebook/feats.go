package rulebook

import (
	"github.com/KirkDiggler/character-vault/internal/domain/shared"
)

// FeatEffect is the mechanical effect table entry for a feat. Feats with no
// entry are flavor-only and apply no changes.
type FeatEffect struct {
	Key  string
	Name string

	// AbilityBonuses are fixed increases applied when the feat is taken
	AbilityBonuses map[shared.Attribute]int

	// AbilityChoiceBonus is the per-ability increase applied to each ability
	// named in the player's choice payload (0 means no choice offered)
	AbilityChoiceBonus int

	// ArmorProficiencies are unioned into the character's armor proficiency set
	ArmorProficiencies []string

	// HPPerLevel grants bonus hit points equal to HPPerLevel x level,
	// applied once when the feat is taken
	HPPerLevel int

	// HeavyWeaponDamage is a flat damage bonus with heavy weapons
	HeavyWeaponDamage int

	// ACFormula flags a fixed unarmored AC formula on the character
	ACFormula string

	// MaxAbilityScore caps what the fixed/choice bonuses can raise a score to.
	// 0 means no cap at this layer.
	MaxAbilityScore int
}

// FeatCatalog resolves feat names to their effect tables
type FeatCatalog struct {
	feats map[string]*FeatEffect
}

// NewFeatCatalog creates a catalog with the standard feat effect table
func NewFeatCatalog() *FeatCatalog {
	records := []*FeatEffect{
		{
			Key:        "tough",
			Name:       "Tough",
			HPPerLevel: 2,
		},
		{
			Key:  "great-weapon-master",
			Name: "Great Weapon Master",
			AbilityBonuses: map[shared.Attribute]int{
				shared.AttributeStrength: 1,
			},
			HeavyWeaponDamage: 2,
			MaxAbilityScore:   20,
		},
		{
			Key:                "resilient",
			Name:               "Resilient",
			AbilityChoiceBonus: 1,
			MaxAbilityScore:    20,
		},
		{
			Key:                "athlete",
			Name:               "Athlete",
			AbilityChoiceBonus: 1,
			MaxAbilityScore:    20,
		},
		{
			Key:                "lightly-armored",
			Name:               "Lightly Armored",
			AbilityChoiceBonus: 1,
			ArmorProficiencies: []string{"light"},
			MaxAbilityScore:    20,
		},
		{
			Key:                "moderately-armored",
			Name:               "Moderately Armored",
			AbilityChoiceBonus: 1,
			ArmorProficiencies: []string{"medium", "shield"},
			MaxAbilityScore:    20,
		},
		{
			Key:                "heavily-armored",
			Name:               "Heavily Armored",
			AbilityChoiceBonus: 1,
			ArmorProficiencies: []string{"heavy"},
			MaxAbilityScore:    20,
		},
		{
			Key:  "durable",
			Name: "Durable",
			AbilityBonuses: map[shared.Attribute]int{
				shared.AttributeConstitution: 1,
			},
			MaxAbilityScore: 20,
		},
		{
			Key:  "actor",
			Name: "Actor",
			AbilityBonuses: map[shared.Attribute]int{
				shared.AttributeCharisma: 1,
			},
			MaxAbilityScore: 20,
		},
		{
			Key:                "dragon-hide",
			Name:               "Dragon Hide",
			AbilityChoiceBonus: 1,
			ACFormula:          ACFormulaDragonHide,
			MaxAbilityScore:    20,
		},
	}

	feats := make(map[string]*FeatEffect, len(records))
	for _, r := range records {
		feats[r.Key] = r
	}
	return &FeatCatalog{feats: feats}
}

// ByName resolves a feat display name or key to its effect entry.
// Returns nil for flavor-only feats with no mechanical table entry.
func (c *FeatCatalog) ByName(name string) *FeatEffect {
	return c.feats[featKey(name)]
}

func featKey(name string) string {
	key := normalizeKey(name)
	out := make([]rune, 0, len(key))
	for _, r := range key {
		if r == ' ' {
			out = append(out, '-')
			continue
		}
		out = append(out, r)
	}
	return string(out)
}
