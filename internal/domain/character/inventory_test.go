package character

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dnderr "github.com/KirkDiggler/character-vault/internal/errors"
)

func TestAddItemMergesStacks(t *testing.T) {
	engine, _ := newTestEngine(t)
	char := testCharacter(t, "fighter", 1, nil)

	next, err := engine.AddItem(char, "Torch", 3)
	require.NoError(t, err)
	next, err = engine.AddItem(next, "Torch", 2)
	require.NoError(t, err)

	require.Len(t, next.Inventory, 1)
	assert.Equal(t, 5, next.Inventory[0].Quantity)
	assert.Empty(t, char.Inventory)
}

func TestAddItemValidation(t *testing.T) {
	engine, _ := newTestEngine(t)
	char := testCharacter(t, "fighter", 1, nil)

	_, err := engine.AddItem(char, "", 1)
	require.Error(t, err)

	_, err = engine.AddItem(char, "Torch", 0)
	require.Error(t, err)
}

func TestRemoveItem(t *testing.T) {
	engine, _ := newTestEngine(t)
	char := testCharacter(t, "fighter", 1, nil)
	char.Inventory = []InventoryEntry{{ItemName: "Torch", Quantity: 3}}

	next, err := engine.RemoveItem(char, "Torch", 2)
	require.NoError(t, err)
	assert.Equal(t, 1, next.Inventory[0].Quantity)

	next, err = engine.RemoveItem(next, "Torch", 1)
	require.NoError(t, err)
	assert.Empty(t, next.Inventory)

	_, err = engine.RemoveItem(next, "Torch", 1)
	require.Error(t, err)
	assert.True(t, dnderr.IsNotFound(err))
}

func TestEquipBodyArmorIsExclusive(t *testing.T) {
	engine, _ := newTestEngine(t)
	char := testCharacter(t, "fighter", 1, nil)
	char.Inventory = []InventoryEntry{
		{ItemName: "Leather Armor", Quantity: 1, Equipped: true},
		{ItemName: "Chain Mail", Quantity: 1},
		{ItemName: "Shield", Quantity: 1, Equipped: true},
	}

	next, err := engine.Equip(char, "Chain Mail")
	require.NoError(t, err)
	assert.False(t, next.Inventory[0].Equipped, "previous body armor unequipped")
	assert.True(t, next.Inventory[1].Equipped)
	assert.True(t, next.Inventory[2].Equipped, "shield slot untouched")
}

func TestEquipNonArmorLeavesOthersAlone(t *testing.T) {
	engine, _ := newTestEngine(t)
	char := testCharacter(t, "fighter", 1, nil)
	char.Inventory = []InventoryEntry{
		{ItemName: "Leather Armor", Quantity: 1, Equipped: true},
		{ItemName: "Longsword", Quantity: 1},
	}

	next, err := engine.Equip(char, "Longsword")
	require.NoError(t, err)
	assert.True(t, next.Inventory[0].Equipped)
	assert.True(t, next.Inventory[1].Equipped)
}

func TestUnequip(t *testing.T) {
	engine, _ := newTestEngine(t)
	char := testCharacter(t, "fighter", 1, nil)
	char.Inventory = []InventoryEntry{{ItemName: "Shield", Quantity: 1, Equipped: true}}

	next, err := engine.Unequip(char, "Shield")
	require.NoError(t, err)
	assert.False(t, next.Inventory[0].Equipped)

	_, err = engine.Unequip(char, "Buckler")
	require.Error(t, err)
	assert.True(t, dnderr.IsNotFound(err))
}
