package dnd5e

import (
	"net/http"

	"github.com/fadedpez/dnd5e-api/clients/dnd5e"

	"github.com/KirkDiggler/character-vault/internal/domain/rulebook"
	dnderr "github.com/KirkDiggler/character-vault/internal/errors"
)

type client struct {
	client dnd5e.Interface
}

type Config struct {
	HttpClient *http.Client
}

// New creates a client backed by the public dnd5e API
func New(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, dnderr.InvalidArgument("cfg is required")
	}

	dndClient, err := dnd5e.NewDND5eAPI(&dnd5e.DND5eAPIConfig{
		Client: cfg.HttpClient,
	})
	if err != nil {
		return nil, err
	}

	return &client{
		client: dndClient,
	}, nil
}

func (c *client) GetWeapon(key string) (*rulebook.WeaponRecord, error) {
	if key == "" {
		return nil, dnderr.InvalidArgument("key is required")
	}

	response, err := c.client.GetEquipment(key)
	if err != nil {
		return nil, err
	}

	record := apiEquipmentToWeaponRecord(response)
	if record == nil {
		return nil, dnderr.NotFoundf("equipment '%s' is not a weapon", key)
	}
	return record, nil
}

func (c *client) GetArmor(key string) (*rulebook.ArmorRecord, error) {
	if key == "" {
		return nil, dnderr.InvalidArgument("key is required")
	}

	response, err := c.client.GetEquipment(key)
	if err != nil {
		return nil, err
	}

	record := apiEquipmentToArmorRecord(response)
	if record == nil {
		return nil, dnderr.NotFoundf("equipment '%s' is not armor", key)
	}
	return record, nil
}

func (c *client) GetClass(key string) (*ClassInfo, error) {
	if key == "" {
		return nil, dnderr.InvalidArgument("key is required")
	}

	response, err := c.client.GetClass(key)
	if err != nil {
		return nil, err
	}

	return &ClassInfo{
		Key:    response.Key,
		Name:   response.Name,
		HitDie: response.HitDie,
	}, nil
}

func (c *client) ListEquipmentKeys(category string) ([]string, error) {
	if category == "" {
		return nil, dnderr.InvalidArgument("category is required")
	}

	categoryData, err := c.client.GetEquipmentCategory(category)
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(categoryData.Equipment))
	for _, ref := range categoryData.Equipment {
		if ref.Key != "" {
			keys = append(keys, ref.Key)
		}
	}

	return keys, nil
}
