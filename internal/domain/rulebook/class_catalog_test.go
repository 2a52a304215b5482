package rulebook

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/character-vault/internal/domain/shared"
)

func TestNewClassCatalog(t *testing.T) {
	catalog, err := NewClassCatalog()
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"barbarian", "fighter", "monk", "rogue", "wizard"}, catalog.Keys())
	assert.Nil(t, catalog.ByKey("artificer"))

	barbarian := catalog.ByKey("barbarian")
	require.NotNil(t, barbarian)
	assert.Equal(t, "Barbarian", barbarian.Name)
	assert.Equal(t, 12, barbarian.HitDie)
	assert.Equal(t, 3, barbarian.SubclassLevel)
	assert.True(t, barbarian.IsSaveProficient(shared.AttributeStrength))
	assert.False(t, barbarian.IsSaveProficient(shared.AttributeDexterity))
}

func TestNewClassCatalogFromYAML_Invalid(t *testing.T) {
	_, err := NewClassCatalogFromYAML([]byte("classes: [{name: Nameless}]"))
	require.Error(t, err)

	_, err = NewClassCatalogFromYAML([]byte("classes: [{key: mystic}]"))
	require.Error(t, err)

	_, err = NewClassCatalogFromYAML([]byte("{{not yaml"))
	require.Error(t, err)
}

func TestClass_SteppedAccessors(t *testing.T) {
	catalog, err := NewClassCatalog()
	require.NoError(t, err)

	barbarian := catalog.ByKey("barbarian")
	require.NotNil(t, barbarian)

	// Rage uses step at 1, 3, 6, 12, 17 and go unlimited at 20
	assert.Equal(t, 2, barbarian.RageUsesAt(1))
	assert.Equal(t, 2, barbarian.RageUsesAt(2))
	assert.Equal(t, 3, barbarian.RageUsesAt(5))
	assert.Equal(t, 4, barbarian.RageUsesAt(11))
	assert.Equal(t, 6, barbarian.RageUsesAt(19))
	assert.Equal(t, RageUsesUnlimited, barbarian.RageUsesAt(20))
	assert.True(t, barbarian.HasRage())

	assert.Equal(t, 2, barbarian.RageDamageAt(8))
	assert.Equal(t, 3, barbarian.RageDamageAt(9))
	assert.Equal(t, 4, barbarian.RageDamageAt(20))

	fighter := catalog.ByKey("fighter")
	require.NotNil(t, fighter)
	assert.False(t, fighter.HasRage())
	assert.Equal(t, 1, fighter.SecondWindUsesAt(1))
	assert.Equal(t, 1, fighter.ActionSurgeUsesAt(2))
	assert.Equal(t, 2, fighter.ActionSurgeUsesAt(17))
	assert.Zero(t, fighter.ActionSurgeUsesAt(1))
}

func TestClass_MonkTables(t *testing.T) {
	catalog, err := NewClassCatalog()
	require.NoError(t, err)

	monk := catalog.ByKey("monk")
	require.NotNil(t, monk)

	assert.Equal(t, shared.AttributeWisdom, monk.UnarmoredDefense.SecondaryAbility())

	assert.Zero(t, monk.MoxieAt(1))
	assert.Equal(t, 2, monk.MoxieAt(2))
	assert.Equal(t, 5, monk.MoxieAt(5))
	assert.Equal(t, 20, monk.MoxieAt(20))

	assert.Equal(t, 4, monk.UnarmedDieAt(1))
	assert.Equal(t, 6, monk.UnarmedDieAt(5))
	assert.Equal(t, 8, monk.UnarmedDieAt(11))
	assert.Equal(t, 10, monk.UnarmedDieAt(17))
}

func TestClass_SpellSlots(t *testing.T) {
	catalog, err := NewClassCatalog()
	require.NoError(t, err)

	wizard := catalog.ByKey("wizard")
	require.NotNil(t, wizard)

	assert.Equal(t, map[int]int{1: 2}, wizard.SpellSlotsAt(1))
	assert.Equal(t, map[int]int{1: 4, 2: 2}, wizard.SpellSlotsAt(3))
	// Level 12 has no slot row, so the level 11 table carries forward
	assert.Equal(t, wizard.SpellSlotsAt(11), wizard.SpellSlotsAt(12))

	assert.Nil(t, catalog.ByKey("fighter").SpellSlotsAt(20))
}

func TestClass_FeaturesAndASI(t *testing.T) {
	catalog, err := NewClassCatalog()
	require.NoError(t, err)

	barbarian := catalog.ByKey("barbarian")
	require.NotNil(t, barbarian)

	assert.Equal(t, []string{"Rage", "Unarmored Defense"}, barbarian.FeaturesAt(1))
	assert.Empty(t, barbarian.FeaturesAt(0))

	assert.True(t, barbarian.IsASILevel(4))
	assert.False(t, barbarian.IsASILevel(6))

	fighter := catalog.ByKey("fighter")
	require.NotNil(t, fighter)
	assert.True(t, fighter.IsASILevel(6))
	assert.True(t, fighter.IsASILevel(14))
}
