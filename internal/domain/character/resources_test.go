package character

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/character-vault/internal/domain/rulebook"
	"github.com/KirkDiggler/character-vault/internal/domain/shared"
)

func TestToggleRageConsumesUse(t *testing.T) {
	engine, _ := newTestEngine(t)
	char := testCharacter(t, "barbarian", 1, nil)

	raging := engine.ToggleRage(char)
	assert.True(t, raging.Resources.IsRaging)
	assert.Equal(t, 1, raging.Resources.RagesUsed)

	// deactivating does not refund the use
	calm := engine.ToggleRage(raging)
	assert.False(t, calm.Resources.IsRaging)
	assert.Equal(t, 1, calm.Resources.RagesUsed)

	// input snapshots untouched
	assert.False(t, char.Resources.IsRaging)
	assert.Zero(t, char.Resources.RagesUsed)
}

func TestToggleRageExhausted(t *testing.T) {
	engine, _ := newTestEngine(t)
	char := testCharacter(t, "barbarian", 1, nil)
	char.Resources.RagesUsed = 2 // level 1 max

	next := engine.ToggleRage(char)
	assert.Same(t, char, next)
	assert.Zero(t, engine.RagesRemaining(char))
}

func TestToggleRageUnlimitedAtCapstone(t *testing.T) {
	engine, _ := newTestEngine(t)
	char := testCharacter(t, "barbarian", 20, nil)
	char.Resources.RagesUsed = 99

	raging := engine.ToggleRage(char)
	assert.True(t, raging.Resources.IsRaging)
	assert.Equal(t, 99, raging.Resources.RagesUsed)
	assert.Equal(t, rulebook.RageUsesUnlimited, engine.RagesRemaining(char))
}

func TestToggleRageNonBarbarian(t *testing.T) {
	engine, _ := newTestEngine(t)
	char := testCharacter(t, "wizard", 5, nil)

	next := engine.ToggleRage(char)
	assert.Same(t, char, next)
}

func TestShortRestRefundsOneRage(t *testing.T) {
	engine, _ := newTestEngine(t)
	char := testCharacter(t, "barbarian", 3, nil)
	char.Resources.RagesUsed = 2

	rested := engine.ShortRest(char)
	assert.Equal(t, 1, rested.Resources.RagesUsed)

	// nothing used means nothing refunded
	fresh := testCharacter(t, "barbarian", 3, nil)
	assert.Zero(t, engine.ShortRest(fresh).Resources.RagesUsed)
}

func TestShortRestRestoresFighterResources(t *testing.T) {
	engine, _ := newTestEngine(t)
	char := testCharacter(t, "fighter", 2, nil)
	char.Resources.SecondWindUsed = 1
	char.Resources.ActionSurgeUsed = 1

	rested := engine.ShortRest(char)
	assert.Zero(t, rested.Resources.SecondWindUsed)
	assert.Zero(t, rested.Resources.ActionSurgeUsed)
}

func TestAdjustHP(t *testing.T) {
	engine, _ := newTestEngine(t)
	char := testCharacter(t, "fighter", 1, nil)
	char.Resources.HP = shared.HPResource{Current: 10, Max: 10, Temporary: 3}

	hurt := engine.AdjustHP(char, -5)
	assert.Zero(t, hurt.Resources.HP.Temporary, "temporary HP absorbs damage first")
	assert.Equal(t, 8, hurt.Resources.HP.Current)

	dead := engine.AdjustHP(hurt, -100)
	assert.Zero(t, dead.Resources.HP.Current)

	healed := engine.AdjustHP(dead, 500)
	assert.Equal(t, 10, healed.Resources.HP.Current, "healing clamps at max")
}

func TestGrantTempHPKeepsHigher(t *testing.T) {
	engine, _ := newTestEngine(t)
	char := testCharacter(t, "fighter", 1, nil)

	granted := engine.GrantTempHP(char, 8)
	assert.Equal(t, 8, granted.Resources.HP.Temporary)

	lower := engine.GrantTempHP(granted, 3)
	assert.Equal(t, 8, lower.Resources.HP.Temporary)
}

func TestSpendHitDice(t *testing.T) {
	engine, roller := newTestEngine(t)
	char := testCharacter(t, "fighter", 3, map[shared.Attribute]int{
		shared.AttributeConstitution: 14,
	})
	char.Resources.HP = shared.HPResource{Current: 10, Max: 30}
	roller.SetRolls([]int{4, 7})

	next, healed, err := engine.SpendHitDice(char, 2)
	require.NoError(t, err)
	assert.Equal(t, 15, healed) // (4+2) + (7+2)
	assert.Equal(t, 25, next.Resources.HP.Current)
	assert.Equal(t, 1, next.Resources.HitDiceRemaining)
}

func TestSpendHitDiceClampsToMax(t *testing.T) {
	engine, roller := newTestEngine(t)
	char := testCharacter(t, "fighter", 2, nil)
	char.Resources.HP = shared.HPResource{Current: 18, Max: 20}
	roller.SetRolls([]int{10, 10})

	next, healed, err := engine.SpendHitDice(char, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, healed)
	assert.Equal(t, 20, next.Resources.HP.Current)
}

func TestSpendHitDiceNegativeConFloorsPerDie(t *testing.T) {
	engine, roller := newTestEngine(t)
	char := testCharacter(t, "fighter", 2, map[shared.Attribute]int{
		shared.AttributeConstitution: 4,
	})
	char.Resources.HP = shared.HPResource{Current: 1, Max: 20}
	roller.SetRolls([]int{2, 9})

	next, healed, err := engine.SpendHitDice(char, 2)
	require.NoError(t, err)
	assert.Equal(t, 6, healed) // max(2-3, 0) + (9-3)
	assert.Equal(t, 7, next.Resources.HP.Current)
}

func TestSpendHitDiceInvalidCount(t *testing.T) {
	engine, _ := newTestEngine(t)
	char := testCharacter(t, "fighter", 2, nil)

	for _, count := range []int{0, -1, 3} {
		next, healed, err := engine.SpendHitDice(char, count)
		require.NoError(t, err)
		assert.Same(t, char, next, "count %d", count)
		assert.Zero(t, healed)
	}
}

func TestToggleSpellSlotWraps(t *testing.T) {
	engine, _ := newTestEngine(t)
	char := testCharacter(t, "wizard", 1, nil) // two first-level slots

	assert.Equal(t, 2, engine.SpellSlotsRemaining(char, 1))

	char = engine.ToggleSpellSlot(char, 1)
	assert.Equal(t, 1, char.Resources.SpellSlotsUsed[1])

	char = engine.ToggleSpellSlot(char, 1)
	assert.Equal(t, 2, char.Resources.SpellSlotsUsed[1])
	assert.Zero(t, engine.SpellSlotsRemaining(char, 1))

	// past the max the counter wraps back to zero
	char = engine.ToggleSpellSlot(char, 1)
	assert.Zero(t, char.Resources.SpellSlotsUsed[1])
}

func TestToggleSpellSlotNoSlots(t *testing.T) {
	engine, _ := newTestEngine(t)
	char := testCharacter(t, "wizard", 1, nil)

	assert.Same(t, char, engine.ToggleSpellSlot(char, 9))

	fighter := testCharacter(t, "fighter", 5, nil)
	assert.Same(t, fighter, engine.ToggleSpellSlot(fighter, 1))
}

func TestUseSecondWind(t *testing.T) {
	engine, roller := newTestEngine(t)
	char := testCharacter(t, "fighter", 5, nil)
	char.Resources.HP = shared.HPResource{Current: 20, Max: 50}
	roller.SetNextRoll(7)

	next, healed, err := engine.UseSecondWind(char)
	require.NoError(t, err)
	assert.Equal(t, 12, healed) // 7 + level 5
	assert.Equal(t, 32, next.Resources.HP.Current)
	assert.Equal(t, 1, next.Resources.SecondWindUsed)

	// exhausted: no roll, no change
	again, healed, err := engine.UseSecondWind(next)
	require.NoError(t, err)
	assert.Same(t, next, again)
	assert.Zero(t, healed)
}

func TestUseActionSurge(t *testing.T) {
	engine, _ := newTestEngine(t)

	// not unlocked at level 1
	char := testCharacter(t, "fighter", 1, nil)
	assert.Same(t, char, engine.UseActionSurge(char))

	char = testCharacter(t, "fighter", 2, nil)
	next := engine.UseActionSurge(char)
	assert.Equal(t, 1, next.Resources.ActionSurgeUsed)
	assert.Same(t, next, engine.UseActionSurge(next))

	// two uses at level 17
	veteran := testCharacter(t, "fighter", 17, nil)
	veteran = engine.UseActionSurge(engine.UseActionSurge(veteran))
	assert.Equal(t, 2, veteran.Resources.ActionSurgeUsed)
}

func TestMoxiePool(t *testing.T) {
	engine, _ := newTestEngine(t)
	char := testCharacter(t, "monk", 5, nil)

	// defaults to the level-derived maximum
	assert.Equal(t, 5, engine.MoxieRemaining(char))

	spent := engine.SpendMoxie(char, 2)
	assert.Equal(t, 3, engine.MoxieRemaining(spent))

	// overspend is ignored
	assert.Same(t, spent, engine.SpendMoxie(spent, 4))
	assert.Same(t, spent, engine.SpendMoxie(spent, 0))

	refilled := engine.RefillMoxie(spent)
	assert.Equal(t, 5, engine.MoxieRemaining(refilled))
}

func TestLongRestRestoresEverything(t *testing.T) {
	engine, _ := newTestEngine(t)
	char := testCharacter(t, "barbarian", 5, nil)
	char.Resources.HP = shared.HPResource{Current: 3, Max: 55, Temporary: 4}
	char.Resources.HitDiceRemaining = 1
	char.Resources.RagesUsed = 3
	char.Resources.IsRaging = true
	char.Resources.SpellSlotsUsed = map[int]int{1: 2}
	moxie := 1
	char.Resources.MoxieCurrent = &moxie

	rested := engine.LongRest(char)
	assert.Equal(t, 55, rested.Resources.HP.Current)
	assert.Zero(t, rested.Resources.HP.Temporary)
	assert.Equal(t, 5, rested.Resources.HitDiceRemaining)
	assert.Zero(t, rested.Resources.RagesUsed)
	assert.False(t, rested.Resources.IsRaging)
	assert.Empty(t, rested.Resources.SpellSlotsUsed)
	assert.Nil(t, rested.Resources.MoxieCurrent)
}
