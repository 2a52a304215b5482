package character

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/character-vault/internal/domain/rulebook"
	"github.com/KirkDiggler/character-vault/internal/domain/shared"
)

func TestNewEngineRequiresCatalogs(t *testing.T) {
	_, err := NewEngine(nil)
	require.Error(t, err)

	_, err = NewEngine(&EngineConfig{})
	require.Error(t, err)

	classes, err := rulebook.NewClassCatalog()
	require.NoError(t, err)
	_, err = NewEngine(&EngineConfig{Classes: classes})
	require.Error(t, err)
}

func TestNewCharacter(t *testing.T) {
	engine, _ := newTestEngine(t)

	char, err := engine.NewCharacter(&CreateInput{
		OwnerID:       "owner-1",
		Name:          "Grommash",
		RaceKey:       "half-orc",
		ClassKey:      "barbarian",
		BackgroundKey: "outlander",
		Abilities: map[shared.Attribute]int{
			shared.AttributeStrength:     15,
			shared.AttributeConstitution: 14,
		},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, char.ID)
	assert.Equal(t, 1, char.Level)
	assert.Equal(t, 1, char.Resources.HitDiceRemaining)

	// racial bonuses live in the bonus layer, base scores stay as entered
	assert.Equal(t, 15, char.Abilities[shared.AttributeStrength])
	assert.Equal(t, 17, engine.AbilityScore(char, shared.AttributeStrength))

	// starting HP is the full hit die plus the Con modifier (Con 14 +1 racial)
	assert.Equal(t, 12+2, char.Resources.HP.Max)
	assert.Equal(t, char.Resources.HP.Max, char.Resources.HP.Current)

	assert.ElementsMatch(t, []shared.Attribute{
		shared.AttributeStrength,
		shared.AttributeConstitution,
	}, char.Proficiencies.SavingThrows)
	assert.Contains(t, char.Features, "Rage")
	assert.NotEmpty(t, char.Proficiencies.Skills)
}

func TestNewCharacterValidation(t *testing.T) {
	engine, _ := newTestEngine(t)

	_, err := engine.NewCharacter(nil)
	require.Error(t, err)

	_, err = engine.NewCharacter(&CreateInput{Name: "No Owner"})
	require.Error(t, err)

	_, err = engine.NewCharacter(&CreateInput{OwnerID: "owner-1"})
	require.Error(t, err)

	_, err = engine.NewCharacter(&CreateInput{
		OwnerID:   "owner-1",
		Name:      "Bad Stats",
		Abilities: map[shared.Attribute]int{"Luck": 18},
	})
	require.Error(t, err)
}

func TestNewCharacterUnknownReferencesDegrade(t *testing.T) {
	engine, _ := newTestEngine(t)

	char, err := engine.NewCharacter(&CreateInput{
		OwnerID:  "owner-1",
		Name:     "Classless",
		RaceKey:  "modron",
		ClassKey: "artificer",
	})
	require.NoError(t, err)

	// unknown class falls back to a d8 hit die and grants nothing
	assert.Equal(t, 8, char.Resources.HP.Max)
	assert.Empty(t, char.Features)
	assert.Empty(t, char.Proficiencies.SavingThrows)
}
