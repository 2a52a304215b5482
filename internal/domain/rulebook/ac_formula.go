package rulebook

import (
	"github.com/KirkDiggler/character-vault/internal/domain/shared"
)

// Fixed-formula AC override ids
const (
	ACFormulaMageArmor  = "mage-armor"
	ACFormulaDragonHide = "dragon-hide"
)

// ACFormula is a feature-granted fixed AC formula, used when a character has
// no armor equipped and carries the matching flag
type ACFormula struct {
	Key     string
	Label   string
	Base    int
	AddDex  bool
	Ability shared.Attribute // secondary ability modifier, AttributeNone for none
}

var acFormulas = map[string]*ACFormula{
	ACFormulaMageArmor: {
		Key:    ACFormulaMageArmor,
		Label:  "Mage Armor",
		Base:   13,
		AddDex: true,
	},
	ACFormulaDragonHide: {
		Key:     ACFormulaDragonHide,
		Label:   "Dragon Hide",
		Base:    12,
		Ability: shared.AttributeConstitution,
	},
}

// ACFormulaByKey resolves a fixed-formula id, or nil when unknown
func ACFormulaByKey(key string) *ACFormula {
	return acFormulas[key]
}
