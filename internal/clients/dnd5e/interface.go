package dnd5e

//go:generate mockgen -destination=mock/mock_client.go -package=mockdnd5e -source=interface.go

import (
	"github.com/KirkDiggler/character-vault/internal/domain/rulebook"
)

// ClassInfo is the subset of class data the API exposes that is useful for
// checking the local catalog against the published rules
type ClassInfo struct {
	Key    string
	Name   string
	HitDie int
}

// Client fetches rule content from the dnd5e API and converts it into the
// catalog record types the engine consumes
type Client interface {
	GetWeapon(key string) (*rulebook.WeaponRecord, error)
	GetArmor(key string) (*rulebook.ArmorRecord, error)
	GetClass(key string) (*ClassInfo, error)
	ListEquipmentKeys(category string) ([]string, error)
}
