package character

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/character-vault/internal/dice"
	"github.com/KirkDiggler/character-vault/internal/domain/rulebook"
	"github.com/KirkDiggler/character-vault/internal/domain/shared"
)

func newTestEngine(t *testing.T) (*Engine, *dice.MockRoller) {
	t.Helper()

	classes, err := rulebook.NewClassCatalog()
	require.NoError(t, err)

	roller := dice.NewMockRoller()
	engine, err := NewEngine(&EngineConfig{
		Classes:     classes,
		Races:       rulebook.NewRaceCatalog(),
		Backgrounds: rulebook.NewBackgroundCatalog(),
		Weapons:     rulebook.NewWeaponCatalog(),
		Armor:       rulebook.NewArmorCatalog(),
		Items:       rulebook.NewItemCatalog(),
		Feats:       rulebook.NewFeatCatalog(),
		Roller:      roller,
	})
	require.NoError(t, err)

	return engine, roller
}

func testCharacter(t *testing.T, classKey string, level int, abilities map[shared.Attribute]int) *Character {
	t.Helper()

	char := &Character{
		ID:        "char-test",
		OwnerID:   "owner-test",
		Name:      "Test Character",
		ClassKey:  classKey,
		Level:     level,
		Abilities: abilities,
	}
	char.Normalize()
	char.Resources.HP = shared.HPResource{Current: 10 * level, Max: 10 * level}
	char.Resources.HitDiceRemaining = level
	return char
}
