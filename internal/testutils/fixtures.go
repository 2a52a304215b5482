package testutils

import (
	"github.com/KirkDiggler/character-vault/internal/domain/character"
	"github.com/KirkDiggler/character-vault/internal/domain/shared"
)

// CreateTestCharacter builds a normalized fighter snapshot for tests
func CreateTestCharacter(id, ownerID, name string) *character.Character {
	char := &character.Character{
		ID:       id,
		OwnerID:  ownerID,
		Name:     name,
		RaceKey:  "human",
		ClassKey: "fighter",
		Level:    3,
		Abilities: map[shared.Attribute]int{
			shared.AttributeStrength:     16,
			shared.AttributeDexterity:    14,
			shared.AttributeConstitution: 15,
			shared.AttributeIntelligence: 10,
			shared.AttributeWisdom:       12,
			shared.AttributeCharisma:     8,
		},
	}
	char.Normalize()

	char.Proficiencies.SavingThrows = []shared.Attribute{
		shared.AttributeStrength,
		shared.AttributeConstitution,
	}
	char.Proficiencies.Skills = []shared.Skill{shared.SkillAthletics, shared.SkillIntimidation}
	char.Proficiencies.Weapons = []string{"simple", "martial"}
	char.Proficiencies.Armor = []string{"light", "medium", "heavy", "shield"}

	char.Resources.HP = shared.HPResource{Current: 28, Max: 28}
	char.Resources.HitDiceRemaining = 3

	char.Inventory = []character.InventoryEntry{
		{ItemName: "Longsword", Quantity: 1, Equipped: true},
		{ItemName: "Chain Mail", Quantity: 1, Equipped: true},
		{ItemName: "Shield", Quantity: 1, Equipped: true},
		{ItemName: "Torch", Quantity: 5},
	}
	char.Features = []string{"Fighting Style", "Second Wind", "Action Surge"}

	return char
}
