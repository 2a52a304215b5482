package character

import (
	dnderr "github.com/KirkDiggler/character-vault/internal/errors"

	"github.com/KirkDiggler/character-vault/internal/dice"
	"github.com/KirkDiggler/character-vault/internal/domain/rulebook"
	"github.com/KirkDiggler/character-vault/internal/domain/shared"
	"github.com/KirkDiggler/character-vault/internal/uuid"
)

// EngineConfig wires the rule catalogs and dice roller into the engine.
// All catalogs are required; the roller defaults to a random one.
type EngineConfig struct {
	Classes     *rulebook.ClassCatalog
	Races       *rulebook.RaceCatalog
	Backgrounds *rulebook.BackgroundCatalog
	Weapons     *rulebook.WeaponCatalog
	Armor       *rulebook.ArmorCatalog
	Items       *rulebook.ItemCatalog
	Feats       *rulebook.FeatCatalog
	Spells      *rulebook.SpellCatalog // optional, defaults to the baseline list
	Roller      dice.Roller
	UUID        uuid.Generator
}

// Engine computes every derived attribute from a character snapshot.
// All transforms are pure: they return a new snapshot and never mutate
// their input.
type Engine struct {
	classes     *rulebook.ClassCatalog
	races       *rulebook.RaceCatalog
	backgrounds *rulebook.BackgroundCatalog
	weapons     *rulebook.WeaponCatalog
	armor       *rulebook.ArmorCatalog
	items       *rulebook.ItemCatalog
	feats       *rulebook.FeatCatalog
	spells      *rulebook.SpellCatalog
	roller      dice.Roller
	uuid        uuid.Generator
}

// NewEngine creates an engine from the provided config
func NewEngine(cfg *EngineConfig) (*Engine, error) {
	if cfg == nil {
		return nil, dnderr.InvalidArgument("config is required")
	}
	if cfg.Classes == nil {
		return nil, dnderr.InvalidArgument("class catalog is required")
	}
	if cfg.Races == nil {
		return nil, dnderr.InvalidArgument("race catalog is required")
	}
	if cfg.Backgrounds == nil {
		return nil, dnderr.InvalidArgument("background catalog is required")
	}
	if cfg.Weapons == nil {
		return nil, dnderr.InvalidArgument("weapon catalog is required")
	}
	if cfg.Armor == nil {
		return nil, dnderr.InvalidArgument("armor catalog is required")
	}
	if cfg.Items == nil {
		return nil, dnderr.InvalidArgument("item catalog is required")
	}
	if cfg.Feats == nil {
		return nil, dnderr.InvalidArgument("feat catalog is required")
	}

	spells := cfg.Spells
	if spells == nil {
		spells = rulebook.NewSpellCatalog()
	}
	roller := cfg.Roller
	if roller == nil {
		roller = dice.NewRandomRoller()
	}
	gen := cfg.UUID
	if gen == nil {
		gen = uuid.NewGoogleUUIDGenerator()
	}

	return &Engine{
		classes:     cfg.Classes,
		races:       cfg.Races,
		backgrounds: cfg.Backgrounds,
		weapons:     cfg.Weapons,
		armor:       cfg.Armor,
		items:       cfg.Items,
		feats:       cfg.Feats,
		spells:      spells,
		roller:      roller,
		uuid:        gen,
	}, nil
}

// classTable resolves the character's class, or nil when no class is set
// or the key is unknown
func (e *Engine) classTable(c *Character) *rulebook.Class {
	if c.ClassKey == "" {
		return nil
	}
	return e.classes.ByKey(c.ClassKey)
}

// CreateInput carries everything needed to build a level 1 character
type CreateInput struct {
	OwnerID       string
	Name          string
	RaceKey       string
	ClassKey      string
	BackgroundKey string
	Abilities     map[shared.Attribute]int
}

// NewCharacter builds a normalized level 1 snapshot. Racial ability bonuses
// land in the bonus layer so the rolled scores stay visible, and starting HP
// is the full hit die plus the Constitution modifier.
func (e *Engine) NewCharacter(input *CreateInput) (*Character, error) {
	if input == nil {
		return nil, dnderr.InvalidArgument("input is required")
	}
	if input.OwnerID == "" {
		return nil, dnderr.InvalidArgument("owner id is required")
	}
	if input.Name == "" {
		return nil, dnderr.InvalidArgument("name is required")
	}

	char := &Character{
		ID:            e.uuid.New(),
		OwnerID:       input.OwnerID,
		Name:          input.Name,
		RaceKey:       input.RaceKey,
		ClassKey:      input.ClassKey,
		BackgroundKey: input.BackgroundKey,
		Level:         1,
	}
	for attr, score := range input.Abilities {
		if !attr.IsValid() {
			return nil, dnderr.InvalidArgumentf("unknown ability %q", attr)
		}
		if char.Abilities == nil {
			char.Abilities = make(map[shared.Attribute]int, len(shared.Attributes))
		}
		char.Abilities[attr] = score
	}
	char.Normalize()

	if race := e.races.ByKey(input.RaceKey); race != nil {
		for attr, bonus := range race.AbilityBonuses {
			char.Bonuses.Abilities[attr] += bonus
		}
	}
	if background := e.backgrounds.ByKey(input.BackgroundKey); background != nil {
		char.Proficiencies.Skills = append(char.Proficiencies.Skills, background.Skills...)
	}

	hitDie := 8
	if class := e.classTable(char); class != nil {
		hitDie = class.HitDie
		char.Proficiencies.SavingThrows = append(char.Proficiencies.SavingThrows, class.Saves...)
		char.Features = append(char.Features, class.FeaturesAt(1)...)
	}

	maxHP := hitDie + e.AbilityModifier(char, shared.AttributeConstitution)
	if maxHP < 1 {
		maxHP = 1
	}
	char.Resources.HP = shared.HPResource{Current: maxHP, Max: maxHP}
	char.Resources.HitDiceRemaining = 1

	return char, nil
}
