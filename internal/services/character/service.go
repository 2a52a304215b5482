package character

//go:generate mockgen -destination=mock/mock_service.go -package=mockcharacters -source=service.go

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/character-vault/internal/domain/character"
	"github.com/KirkDiggler/character-vault/internal/domain/shared"
	dnderr "github.com/KirkDiggler/character-vault/internal/errors"
	characterRepo "github.com/KirkDiggler/character-vault/internal/repositories/characters"
)

// Repository is an alias for the character repository interface
type Repository = characterRepo.Repository

// Service defines the character service interface. Every mutating operation
// loads the snapshot, applies a pure engine transform, and persists the
// result before returning it.
type Service interface {
	// CreateCharacter creates and stores a new level 1 character
	CreateCharacter(ctx context.Context, input *character.CreateInput) (*character.Character, error)

	// GetCharacter retrieves a character by ID
	GetCharacter(ctx context.Context, characterID string) (*character.Character, error)

	// ListCharacters lists all characters for an owner
	ListCharacters(ctx context.Context, ownerID string) ([]*character.Character, error)

	// ListAllCharacters lists every stored character
	ListAllCharacters(ctx context.Context) ([]*character.Character, error)

	// DeleteCharacter removes a character
	DeleteCharacter(ctx context.Context, characterID string) error

	// GetSheet computes the full derived sheet for a character
	GetSheet(ctx context.Context, characterID string) (*Sheet, error)

	// GetSheetsByOwner computes sheets for all of an owner's characters
	GetSheetsByOwner(ctx context.Context, ownerID string) ([]*Sheet, error)

	// ToggleRage flips the rage state and persists the result
	ToggleRage(ctx context.Context, characterID string) (*character.Character, error)

	// AdjustHP applies a signed hit point change
	AdjustHP(ctx context.Context, characterID string, delta int) (*character.Character, error)

	// GrantTempHP grants temporary hit points
	GrantTempHP(ctx context.Context, characterID string, amount int) (*character.Character, error)

	// SpendHitDice spends hit dice during a rest and heals the rolled total
	SpendHitDice(ctx context.Context, characterID string, count int) (*character.Character, int, error)

	// ToggleSpellSlot marks one more spell slot of the given level used
	ToggleSpellSlot(ctx context.Context, characterID string, slotLevel int) (*character.Character, error)

	// PrepareSpell adds a leveled spell to the prepared list
	PrepareSpell(ctx context.Context, characterID, spellKey string) (*character.Character, error)

	// UnprepareSpell removes a spell from the prepared list
	UnprepareSpell(ctx context.Context, characterID, spellKey string) (*character.Character, error)

	// LearnCantrip adds a cantrip to the known list
	LearnCantrip(ctx context.Context, characterID, spellKey string) (*character.Character, error)

	// UseSecondWind spends a second wind use and heals
	UseSecondWind(ctx context.Context, characterID string) (*character.Character, int, error)

	// UseActionSurge spends an action surge use
	UseActionSurge(ctx context.Context, characterID string) (*character.Character, error)

	// SpendMoxie deducts points from the moxie pool
	SpendMoxie(ctx context.Context, characterID string, points int) (*character.Character, error)

	// RefillMoxie restores the moxie pool to its maximum
	RefillMoxie(ctx context.Context, characterID string) (*character.Character, error)

	// ShortRest applies short rest recovery
	ShortRest(ctx context.Context, characterID string) (*character.Character, error)

	// LongRest applies long rest recovery
	LongRest(ctx context.Context, characterID string) (*character.Character, error)

	// PreviewAdvancement describes the next level's grants and owed choices
	PreviewAdvancement(ctx context.Context, characterID string) (*character.Advancement, error)

	// LevelUp advances the character one level with the given choices
	LevelUp(ctx context.Context, characterID string, choices *character.LevelUpChoices) (*character.Character, error)

	// ApplyFeat applies a feat outside the level-up flow
	ApplyFeat(ctx context.Context, characterID string, choice *character.FeatChoice) (*character.Character, error)

	// AddItem adds an item to the inventory
	AddItem(ctx context.Context, characterID, itemName string, quantity int) (*character.Character, error)

	// RemoveItem removes an item from the inventory
	RemoveItem(ctx context.Context, characterID, itemName string, quantity int) (*character.Character, error)

	// EquipItem marks an owned item as equipped
	EquipItem(ctx context.Context, characterID, itemName string) (*character.Character, error)

	// UnequipItem clears the equipped flag on an owned item
	UnequipItem(ctx context.Context, characterID, itemName string) (*character.Character, error)

	// SetACOverride pins the armor class to a fixed value
	SetACOverride(ctx context.Context, characterID string, value int) (*character.Character, error)

	// ClearACOverride removes the armor class override
	ClearACOverride(ctx context.Context, characterID string) (*character.Character, error)
}

// Sheet is the fully derived view of a character, ready for display
type Sheet struct {
	Character        *character.Character        `json:"character"`
	ProficiencyBonus int                         `json:"proficiency_bonus"`
	AbilityScores    map[shared.Attribute]int    `json:"ability_scores"`
	AbilityModifiers map[shared.Attribute]int    `json:"ability_modifiers"`
	SaveBonuses      map[shared.Attribute]int    `json:"save_bonuses"`
	SkillBonuses     map[shared.Skill]int        `json:"skill_bonuses"`
	ArmorClass       character.ACBreakdown       `json:"armor_class"`
	UnarmedAttack    character.AttackBreakdown   `json:"unarmed_attack"`
	WeaponAttacks    []character.AttackBreakdown `json:"weapon_attacks"`
	RagesRemaining   int                         `json:"rages_remaining"`
	MoxieRemaining   int                         `json:"moxie_remaining"`
}

// service implements the Service interface
type service struct {
	engine     *character.Engine
	repository Repository
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Engine     *character.Engine // Required
	Repository Repository        // Required
}

// NewService creates a new character service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil {
		panic("service config is required")
	}
	if cfg.Engine == nil {
		panic("engine is required")
	}
	if cfg.Repository == nil {
		panic("repository is required")
	}

	return &service{
		engine:     cfg.Engine,
		repository: cfg.Repository,
	}
}

func (s *service) CreateCharacter(ctx context.Context, input *character.CreateInput) (*character.Character, error) {
	char, err := s.engine.NewCharacter(input)
	if err != nil {
		return nil, err
	}
	if err := s.repository.Create(ctx, char); err != nil {
		return nil, err
	}
	return char, nil
}

func (s *service) GetCharacter(ctx context.Context, characterID string) (*character.Character, error) {
	return s.repository.Get(ctx, characterID)
}

func (s *service) ListCharacters(ctx context.Context, ownerID string) ([]*character.Character, error) {
	return s.repository.GetByOwner(ctx, ownerID)
}

func (s *service) ListAllCharacters(ctx context.Context) ([]*character.Character, error) {
	return s.repository.ListAll(ctx)
}

func (s *service) DeleteCharacter(ctx context.Context, characterID string) error {
	return s.repository.Delete(ctx, characterID)
}

func (s *service) GetSheet(ctx context.Context, characterID string) (*Sheet, error) {
	char, err := s.repository.Get(ctx, characterID)
	if err != nil {
		return nil, err
	}
	return s.buildSheet(char), nil
}

func (s *service) GetSheetsByOwner(ctx context.Context, ownerID string) ([]*Sheet, error) {
	chars, err := s.repository.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	sheets := make([]*Sheet, len(chars))
	g, _ := errgroup.WithContext(ctx)
	for i, char := range chars {
		g.Go(func() error {
			sheets[i] = s.buildSheet(char)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return sheets, nil
}

func (s *service) buildSheet(char *character.Character) *Sheet {
	sheet := &Sheet{
		Character:        char,
		ProficiencyBonus: s.engine.ProficiencyBonus(char),
		AbilityScores:    make(map[shared.Attribute]int, len(shared.Attributes)),
		AbilityModifiers: make(map[shared.Attribute]int, len(shared.Attributes)),
		SaveBonuses:      make(map[shared.Attribute]int, len(shared.Attributes)),
		SkillBonuses:     make(map[shared.Skill]int, len(shared.Skills)),
		ArmorClass:       s.engine.ArmorClass(char),
		UnarmedAttack:    s.engine.UnarmedAttack(char),
		WeaponAttacks:    s.engine.WeaponAttacks(char),
		RagesRemaining:   s.engine.RagesRemaining(char),
		MoxieRemaining:   s.engine.MoxieRemaining(char),
	}
	for _, attr := range shared.Attributes {
		sheet.AbilityScores[attr] = s.engine.AbilityScore(char, attr)
		sheet.AbilityModifiers[attr] = s.engine.AbilityModifier(char, attr)
		sheet.SaveBonuses[attr] = s.engine.SaveBonus(char, attr)
	}
	for _, skill := range shared.Skills {
		sheet.SkillBonuses[skill] = s.engine.SkillBonus(char, skill)
	}
	return sheet
}

// mutate loads, transforms, and persists a character. Transforms that return
// the input unchanged still persist it, keeping the write path uniform.
func (s *service) mutate(ctx context.Context, characterID string, transform func(*character.Character) (*character.Character, error)) (*character.Character, error) {
	char, err := s.repository.Get(ctx, characterID)
	if err != nil {
		return nil, err
	}

	next, err := transform(char)
	if err != nil {
		return nil, err
	}

	if err := s.repository.Update(ctx, next); err != nil {
		return nil, err
	}
	return next, nil
}

func (s *service) ToggleRage(ctx context.Context, characterID string) (*character.Character, error) {
	return s.mutate(ctx, characterID, func(c *character.Character) (*character.Character, error) {
		return s.engine.ToggleRage(c), nil
	})
}

func (s *service) AdjustHP(ctx context.Context, characterID string, delta int) (*character.Character, error) {
	return s.mutate(ctx, characterID, func(c *character.Character) (*character.Character, error) {
		return s.engine.AdjustHP(c, delta), nil
	})
}

func (s *service) GrantTempHP(ctx context.Context, characterID string, amount int) (*character.Character, error) {
	return s.mutate(ctx, characterID, func(c *character.Character) (*character.Character, error) {
		return s.engine.GrantTempHP(c, amount), nil
	})
}

func (s *service) SpendHitDice(ctx context.Context, characterID string, count int) (*character.Character, int, error) {
	var healed int
	char, err := s.mutate(ctx, characterID, func(c *character.Character) (*character.Character, error) {
		next, amount, err := s.engine.SpendHitDice(c, count)
		if err != nil {
			return nil, err
		}
		healed = amount
		return next, nil
	})
	return char, healed, err
}

func (s *service) ToggleSpellSlot(ctx context.Context, characterID string, slotLevel int) (*character.Character, error) {
	return s.mutate(ctx, characterID, func(c *character.Character) (*character.Character, error) {
		return s.engine.ToggleSpellSlot(c, slotLevel), nil
	})
}

func (s *service) PrepareSpell(ctx context.Context, characterID, spellKey string) (*character.Character, error) {
	return s.mutate(ctx, characterID, func(c *character.Character) (*character.Character, error) {
		return s.engine.PrepareSpell(c, spellKey)
	})
}

func (s *service) UnprepareSpell(ctx context.Context, characterID, spellKey string) (*character.Character, error) {
	return s.mutate(ctx, characterID, func(c *character.Character) (*character.Character, error) {
		return s.engine.UnprepareSpell(c, spellKey), nil
	})
}

func (s *service) LearnCantrip(ctx context.Context, characterID, spellKey string) (*character.Character, error) {
	return s.mutate(ctx, characterID, func(c *character.Character) (*character.Character, error) {
		return s.engine.LearnCantrip(c, spellKey)
	})
}

func (s *service) UseSecondWind(ctx context.Context, characterID string) (*character.Character, int, error) {
	var healed int
	char, err := s.mutate(ctx, characterID, func(c *character.Character) (*character.Character, error) {
		next, amount, err := s.engine.UseSecondWind(c)
		if err != nil {
			return nil, err
		}
		healed = amount
		return next, nil
	})
	return char, healed, err
}

func (s *service) UseActionSurge(ctx context.Context, characterID string) (*character.Character, error) {
	return s.mutate(ctx, characterID, func(c *character.Character) (*character.Character, error) {
		return s.engine.UseActionSurge(c), nil
	})
}

func (s *service) SpendMoxie(ctx context.Context, characterID string, points int) (*character.Character, error) {
	return s.mutate(ctx, characterID, func(c *character.Character) (*character.Character, error) {
		return s.engine.SpendMoxie(c, points), nil
	})
}

func (s *service) RefillMoxie(ctx context.Context, characterID string) (*character.Character, error) {
	return s.mutate(ctx, characterID, func(c *character.Character) (*character.Character, error) {
		return s.engine.RefillMoxie(c), nil
	})
}

func (s *service) ShortRest(ctx context.Context, characterID string) (*character.Character, error) {
	return s.mutate(ctx, characterID, func(c *character.Character) (*character.Character, error) {
		return s.engine.ShortRest(c), nil
	})
}

func (s *service) LongRest(ctx context.Context, characterID string) (*character.Character, error) {
	return s.mutate(ctx, characterID, func(c *character.Character) (*character.Character, error) {
		return s.engine.LongRest(c), nil
	})
}

func (s *service) PreviewAdvancement(ctx context.Context, characterID string) (*character.Advancement, error) {
	char, err := s.repository.Get(ctx, characterID)
	if err != nil {
		return nil, err
	}
	return s.engine.Advancement(char)
}

func (s *service) LevelUp(ctx context.Context, characterID string, choices *character.LevelUpChoices) (*character.Character, error) {
	return s.mutate(ctx, characterID, func(c *character.Character) (*character.Character, error) {
		return s.engine.ApplyLevelUp(c, choices)
	})
}

func (s *service) ApplyFeat(ctx context.Context, characterID string, choice *character.FeatChoice) (*character.Character, error) {
	return s.mutate(ctx, characterID, func(c *character.Character) (*character.Character, error) {
		return s.engine.ApplyFeat(c, choice)
	})
}

func (s *service) AddItem(ctx context.Context, characterID, itemName string, quantity int) (*character.Character, error) {
	return s.mutate(ctx, characterID, func(c *character.Character) (*character.Character, error) {
		return s.engine.AddItem(c, itemName, quantity)
	})
}

func (s *service) RemoveItem(ctx context.Context, characterID, itemName string, quantity int) (*character.Character, error) {
	return s.mutate(ctx, characterID, func(c *character.Character) (*character.Character, error) {
		return s.engine.RemoveItem(c, itemName, quantity)
	})
}

func (s *service) EquipItem(ctx context.Context, characterID, itemName string) (*character.Character, error) {
	return s.mutate(ctx, characterID, func(c *character.Character) (*character.Character, error) {
		return s.engine.Equip(c, itemName)
	})
}

func (s *service) UnequipItem(ctx context.Context, characterID, itemName string) (*character.Character, error) {
	return s.mutate(ctx, characterID, func(c *character.Character) (*character.Character, error) {
		return s.engine.Unequip(c, itemName)
	})
}

func (s *service) SetACOverride(ctx context.Context, characterID string, value int) (*character.Character, error) {
	if value < 0 {
		return nil, dnderr.InvalidArgumentf("armor class override cannot be negative, got %d", value)
	}
	return s.mutate(ctx, characterID, func(c *character.Character) (*character.Character, error) {
		next := c.Clone()
		next.Overrides[character.OverrideAC] = value
		return next, nil
	})
}

func (s *service) ClearACOverride(ctx context.Context, characterID string) (*character.Character, error) {
	return s.mutate(ctx, characterID, func(c *character.Character) (*character.Character, error) {
		next := c.Clone()
		delete(next.Overrides, character.OverrideAC)
		return next, nil
	})
}
