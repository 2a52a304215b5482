package rulebook

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/character-vault/internal/domain/shared"
)

func TestFeatCatalog_ByName(t *testing.T) {
	catalog := NewFeatCatalog()

	t.Run("resolves display name and key", func(t *testing.T) {
		byDisplay := catalog.ByName("Great Weapon Master")
		byKey := catalog.ByName("great-weapon-master")
		require.NotNil(t, byDisplay)
		assert.Same(t, byDisplay, byKey)

		assert.Equal(t, 1, byDisplay.AbilityBonuses[shared.AttributeStrength])
		assert.Equal(t, 2, byDisplay.HeavyWeaponDamage)
		assert.Equal(t, 20, byDisplay.MaxAbilityScore)
	})

	t.Run("case insensitive", func(t *testing.T) {
		assert.NotNil(t, catalog.ByName("TOUGH"))
		assert.NotNil(t, catalog.ByName("  resilient  "))
	})

	t.Run("flavor feats have no entry", func(t *testing.T) {
		assert.Nil(t, catalog.ByName("Keen Mind"))
		assert.Nil(t, catalog.ByName(""))
	})

	t.Run("armor training feats", func(t *testing.T) {
		moderately := catalog.ByName("Moderately Armored")
		require.NotNil(t, moderately)
		assert.ElementsMatch(t, []string{"medium", "shield"}, moderately.ArmorProficiencies)
		assert.Equal(t, 1, moderately.AbilityChoiceBonus)
	})

	t.Run("dragon hide flags an AC formula", func(t *testing.T) {
		dragonHide := catalog.ByName("Dragon Hide")
		require.NotNil(t, dragonHide)
		assert.Equal(t, ACFormulaDragonHide, dragonHide.ACFormula)
	})
}

func TestACFormulaByKey(t *testing.T) {
	mageArmor := ACFormulaByKey(ACFormulaMageArmor)
	require.NotNil(t, mageArmor)
	assert.Equal(t, 13, mageArmor.Base)
	assert.True(t, mageArmor.AddDex)
	assert.Equal(t, shared.AttributeNone, mageArmor.Ability)

	dragonHide := ACFormulaByKey(ACFormulaDragonHide)
	require.NotNil(t, dragonHide)
	assert.Equal(t, 12, dragonHide.Base)
	assert.False(t, dragonHide.AddDex)
	assert.Equal(t, shared.AttributeConstitution, dragonHide.Ability)

	assert.Nil(t, ACFormulaByKey("stoneskin"))
}

func TestBackgroundCatalog_ByKey(t *testing.T) {
	catalog := NewBackgroundCatalog()

	outlander := catalog.ByKey("outlander")
	require.NotNil(t, outlander)
	assert.Equal(t, []shared.Skill{shared.SkillAthletics, shared.SkillSurvival}, outlander.Skills)

	assert.NotNil(t, catalog.ByKey("Soldier"))
	assert.Nil(t, catalog.ByKey("urchin"))
}

func TestSpellCatalog_ByKey(t *testing.T) {
	catalog := NewSpellCatalog()

	fireball := catalog.ByKey("fireball")
	require.NotNil(t, fireball)
	assert.Equal(t, 3, fireball.Level)

	fireBolt := catalog.ByKey("fire-bolt")
	require.NotNil(t, fireBolt)
	assert.Zero(t, fireBolt.Level)

	assert.Nil(t, catalog.ByKey("wish"))
}

func TestRaceCatalog_ByKey(t *testing.T) {
	catalog := NewRaceCatalog()

	halfOrc := catalog.ByKey("half-orc")
	require.NotNil(t, halfOrc)
	assert.Equal(t, 2, halfOrc.AbilityBonuses[shared.AttributeStrength])
	assert.Equal(t, 1, halfOrc.AbilityBonuses[shared.AttributeConstitution])

	human := catalog.ByKey("human")
	require.NotNil(t, human)
	assert.Len(t, human.AbilityBonuses, 6)

	assert.Nil(t, catalog.ByKey("tiefling"))
}
