package character

import (
	"github.com/KirkDiggler/character-vault/internal/domain/rulebook"
	dnderr "github.com/KirkDiggler/character-vault/internal/errors"
)

// AddItem adds quantity of an item to the inventory, merging with an existing
// unequipped stack of the same name
func (e *Engine) AddItem(c *Character, itemName string, quantity int) (*Character, error) {
	if itemName == "" {
		return nil, dnderr.InvalidArgument("item name is required")
	}
	if quantity < 1 {
		return nil, dnderr.InvalidArgumentf("quantity must be positive, got %d", quantity)
	}

	next := c.Clone()
	for i := range next.Inventory {
		if next.Inventory[i].ItemName == itemName && !next.Inventory[i].Equipped {
			next.Inventory[i].Quantity += quantity
			return next, nil
		}
	}
	next.Inventory = append(next.Inventory, InventoryEntry{ItemName: itemName, Quantity: quantity})
	return next, nil
}

// RemoveItem removes quantity of an item, dropping the entry when it empties
func (e *Engine) RemoveItem(c *Character, itemName string, quantity int) (*Character, error) {
	if quantity < 1 {
		return nil, dnderr.InvalidArgumentf("quantity must be positive, got %d", quantity)
	}
	idx := c.FindInventory(itemName)
	if idx < 0 {
		return nil, dnderr.NotFoundf("item %q not in inventory", itemName)
	}

	next := c.Clone()
	next.Inventory[idx].Quantity -= quantity
	if next.Inventory[idx].Quantity <= 0 {
		next.Inventory = append(next.Inventory[:idx], next.Inventory[idx+1:]...)
	}
	return next, nil
}

// Equip marks an owned item as equipped. Body armor and shields are
// exclusive slots: equipping one unequips any other of the same slot.
func (e *Engine) Equip(c *Character, itemName string) (*Character, error) {
	idx := c.FindInventory(itemName)
	if idx < 0 {
		return nil, dnderr.NotFoundf("item %q not in inventory", itemName)
	}

	next := c.Clone()
	if record, _ := e.armor.ByName(itemName); record != nil {
		isShield := record.Weight == rulebook.ArmorWeightShield
		for i := range next.Inventory {
			if i == idx || !next.Inventory[i].Equipped {
				continue
			}
			other, _ := e.armor.ByName(next.Inventory[i].ItemName)
			if other == nil {
				continue
			}
			if (other.Weight == rulebook.ArmorWeightShield) == isShield {
				next.Inventory[i].Equipped = false
			}
		}
	}
	next.Inventory[idx].Equipped = true
	return next, nil
}

// Unequip clears the equipped flag on an owned item
func (e *Engine) Unequip(c *Character, itemName string) (*Character, error) {
	idx := c.FindInventory(itemName)
	if idx < 0 {
		return nil, dnderr.NotFoundf("item %q not in inventory", itemName)
	}
	next := c.Clone()
	next.Inventory[idx].Equipped = false
	return next, nil
}
