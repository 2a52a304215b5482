package rulebook

import (
	"github.com/KirkDiggler/character-vault/internal/domain/shared"
)

// Race is a static race record used during character creation
type Race struct {
	Key            string
	Name           string
	AbilityBonuses map[shared.Attribute]int
	Speed          int
}

// RaceCatalog resolves race names to static records
type RaceCatalog struct {
	races map[string]*Race
}

// NewRaceCatalog creates a catalog with the standard race list
func NewRaceCatalog() *RaceCatalog {
	records := []*Race{
		{
			Key:  "human",
			Name: "Human",
			AbilityBonuses: map[shared.Attribute]int{
				shared.AttributeStrength:     1,
				shared.AttributeDexterity:    1,
				shared.AttributeConstitution: 1,
				shared.AttributeIntelligence: 1,
				shared.AttributeWisdom:       1,
				shared.AttributeCharisma:     1,
			},
			Speed: 30,
		},
		{
			Key:  "hill-dwarf",
			Name: "Hill Dwarf",
			AbilityBonuses: map[shared.Attribute]int{
				shared.AttributeConstitution: 2,
				shared.AttributeWisdom:       1,
			},
			Speed: 25,
		},
		{
			Key:  "high-elf",
			Name: "High Elf",
			AbilityBonuses: map[shared.Attribute]int{
				shared.AttributeDexterity:    2,
				shared.AttributeIntelligence: 1,
			},
			Speed: 30,
		},
		{
			Key:  "half-orc",
			Name: "Half-Orc",
			AbilityBonuses: map[shared.Attribute]int{
				shared.AttributeStrength:     2,
				shared.AttributeConstitution: 1,
			},
			Speed: 30,
		},
		{
			Key:  "halfling",
			Name: "Halfling",
			AbilityBonuses: map[shared.Attribute]int{
				shared.AttributeDexterity: 2,
			},
			Speed: 25,
		},
	}

	races := make(map[string]*Race, len(records))
	for _, r := range records {
		races[r.Key] = r
	}
	return &RaceCatalog{races: races}
}

// ByKey resolves a race id, or nil when unknown
func (c *RaceCatalog) ByKey(key string) *Race {
	return c.races[normalizeKey(key)]
}
