package dnd5e

import (
	"strings"

	apiEntities "github.com/fadedpez/dnd5e-api/entities"

	"github.com/KirkDiggler/character-vault/internal/domain/rulebook"
)

func apiEquipmentToWeaponRecord(input any) *rulebook.WeaponRecord {
	weapon, ok := input.(*apiEntities.Weapon)
	if !ok || weapon == nil {
		return nil
	}

	record := &rulebook.WeaponRecord{
		Name:      weapon.Name,
		Category:  strings.ToLower(weapon.WeaponCategory),
		Heavy:     hasProperty(weapon.Properties, "heavy"),
		TwoHanded: hasProperty(weapon.Properties, "two-handed"),
		Ranged:    strings.EqualFold(weapon.WeaponRange, "ranged"),
	}
	if weapon.Damage != nil {
		record.DamageDice = weapon.Damage.DamageDice
	}
	return record
}

func apiEquipmentToArmorRecord(input any) *rulebook.ArmorRecord {
	armor, ok := input.(*apiEntities.Armor)
	if !ok || armor == nil {
		return nil
	}

	return &rulebook.ArmorRecord{
		Name:   armor.Name,
		Weight: apiArmorCategoryToWeight(armor.ArmorCategory),
		BaseAC: armor.ArmorClass.Base,
	}
}

func apiArmorCategoryToWeight(category string) rulebook.ArmorWeight {
	switch strings.ToLower(category) {
	case "light":
		return rulebook.ArmorWeightLight
	case "medium":
		return rulebook.ArmorWeightMedium
	case "heavy":
		return rulebook.ArmorWeightHeavy
	case "shield":
		return rulebook.ArmorWeightShield
	default:
		return ""
	}
}

func hasProperty(properties []*apiEntities.ReferenceItem, key string) bool {
	for _, prop := range properties {
		if prop != nil && prop.Key == key {
			return true
		}
	}
	return false
}
