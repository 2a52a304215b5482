package character

import (
	"github.com/KirkDiggler/character-vault/internal/domain/shared"
)

// Override keys for manually fixed stats
const (
	OverrideAC = "ac"
)

// Bonuses holds additive ability bonuses (racial, feat, magic item) and the
// optional fixed AC formula flag
type Bonuses struct {
	Abilities map[shared.Attribute]int `json:"abilities"`
	ACFormula string                   `json:"ac_formula,omitempty"`
}

// Proficiencies are deduplicated lists of everything the character is trained in
type Proficiencies struct {
	SavingThrows []shared.Attribute `json:"saving_throws"`
	Skills       []shared.Skill     `json:"skills"`
	Expertise    []shared.Skill     `json:"expertise"`
	Weapons      []string           `json:"weapons"`
	Armor        []string           `json:"armor"`
}

// Resources tracks all expendable per-rest state
type Resources struct {
	HP                shared.HPResource `json:"hp"`
	HitDiceRemaining  int               `json:"hit_dice_remaining"`
	MoxieCurrent      *int              `json:"moxie_current,omitempty"` // nil means derive from the level table
	RagesUsed         int               `json:"rages_used"`
	IsRaging          bool              `json:"is_raging"`
	SpellSlotsUsed    map[int]int       `json:"spell_slots_used"`
	PreparedSpells    []string          `json:"prepared_spells"`
	KnownCantrips     []string          `json:"known_cantrips"`
	SecondWindUsed    int               `json:"second_wind_used"`
	ActionSurgeUsed   int               `json:"action_surge_used"`
}

// InventoryEntry is one line of the character's equipment list
type InventoryEntry struct {
	ItemName string `json:"item_name"`
	Quantity int    `json:"quantity"`
	Equipped bool   `json:"equipped"`
	Attuned  bool   `json:"attuned"`
	Charges  *int   `json:"charges,omitempty"`
}

// FeatRecord tracks a taken feat
type FeatRecord struct {
	Name         string `json:"name"`
	Source       string `json:"source"`
	TakenAtLevel int    `json:"taken_at_level"`
}

// Character is the sole mutable aggregate: everything derived (AC, attack
// bonuses, resource maxima) is computed from this snapshot plus the catalogs.
type Character struct {
	ID            string `json:"id"`
	OwnerID       string `json:"owner_id"`
	Name          string `json:"name"`
	RaceKey       string `json:"race_key"`
	BackgroundKey string `json:"background_key"`
	ClassKey      string `json:"class_key"`
	SubclassKey   string `json:"subclass_key"`
	Level         int    `json:"level"`

	Abilities     map[shared.Attribute]int `json:"abilities"`
	Bonuses       Bonuses                  `json:"bonuses"`
	Proficiencies Proficiencies            `json:"proficiencies"`
	Resources     Resources                `json:"resources"`
	Inventory     []InventoryEntry         `json:"inventory"`
	Features      []string                 `json:"features"`
	Feats         []FeatRecord             `json:"feats"`
	Overrides     map[string]int           `json:"overrides"`
}

// Normalize fills every default once, so read sites never re-derive them.
// Safe to call on freshly loaded snapshots.
func (c *Character) Normalize() {
	if c.Level < 1 {
		c.Level = 1
	}
	if c.Level > 20 {
		c.Level = 20
	}

	if c.Abilities == nil {
		c.Abilities = make(map[shared.Attribute]int, len(shared.Attributes))
	}
	for _, attr := range shared.Attributes {
		if _, ok := c.Abilities[attr]; !ok {
			c.Abilities[attr] = 10
		}
	}

	if c.Bonuses.Abilities == nil {
		c.Bonuses.Abilities = make(map[shared.Attribute]int)
	}
	if c.Resources.SpellSlotsUsed == nil {
		c.Resources.SpellSlotsUsed = make(map[int]int)
	}
	if c.Overrides == nil {
		c.Overrides = make(map[string]int)
	}

	if c.Resources.HitDiceRemaining < 0 {
		c.Resources.HitDiceRemaining = 0
	}
	if c.Resources.HitDiceRemaining > c.Level {
		c.Resources.HitDiceRemaining = c.Level
	}
	if c.Resources.HP.Temporary < 0 {
		c.Resources.HP.Temporary = 0
	}
	if c.Resources.HP.Current > c.Resources.HP.Max {
		c.Resources.HP.Current = c.Resources.HP.Max
	}
	if c.Resources.HP.Current < 0 {
		c.Resources.HP.Current = 0
	}
}

// Clone creates a deep copy of the character snapshot.
// Every transform works on a clone so callers keep the old snapshot intact.
func (c *Character) Clone() *Character {
	clone := *c

	clone.Abilities = make(map[shared.Attribute]int, len(c.Abilities))
	for k, v := range c.Abilities {
		clone.Abilities[k] = v
	}

	clone.Bonuses.Abilities = make(map[shared.Attribute]int, len(c.Bonuses.Abilities))
	for k, v := range c.Bonuses.Abilities {
		clone.Bonuses.Abilities[k] = v
	}

	clone.Proficiencies.SavingThrows = append([]shared.Attribute(nil), c.Proficiencies.SavingThrows...)
	clone.Proficiencies.Skills = append([]shared.Skill(nil), c.Proficiencies.Skills...)
	clone.Proficiencies.Expertise = append([]shared.Skill(nil), c.Proficiencies.Expertise...)
	clone.Proficiencies.Weapons = append([]string(nil), c.Proficiencies.Weapons...)
	clone.Proficiencies.Armor = append([]string(nil), c.Proficiencies.Armor...)

	if c.Resources.MoxieCurrent != nil {
		moxie := *c.Resources.MoxieCurrent
		clone.Resources.MoxieCurrent = &moxie
	}
	clone.Resources.SpellSlotsUsed = make(map[int]int, len(c.Resources.SpellSlotsUsed))
	for k, v := range c.Resources.SpellSlotsUsed {
		clone.Resources.SpellSlotsUsed[k] = v
	}
	clone.Resources.PreparedSpells = append([]string(nil), c.Resources.PreparedSpells...)
	clone.Resources.KnownCantrips = append([]string(nil), c.Resources.KnownCantrips...)

	clone.Inventory = make([]InventoryEntry, len(c.Inventory))
	for i, entry := range c.Inventory {
		entryCopy := entry
		if entry.Charges != nil {
			charges := *entry.Charges
			entryCopy.Charges = &charges
		}
		clone.Inventory[i] = entryCopy
	}

	clone.Features = append([]string(nil), c.Features...)
	clone.Feats = append([]FeatRecord(nil), c.Feats...)

	clone.Overrides = make(map[string]int, len(c.Overrides))
	for k, v := range c.Overrides {
		clone.Overrides[k] = v
	}

	return &clone
}

// HasFeat reports whether the character has taken the named feat
func (c *Character) HasFeat(name string) bool {
	for _, feat := range c.Feats {
		if feat.Name == name {
			return true
		}
	}
	return false
}

// HasFeature reports whether the character has the named feature grant
func (c *Character) HasFeature(name string) bool {
	for _, feature := range c.Features {
		if feature == name {
			return true
		}
	}
	return false
}

// FindInventory returns the index of the first inventory entry with the given
// item name, or -1 when absent
func (c *Character) FindInventory(itemName string) int {
	for i, entry := range c.Inventory {
		if entry.ItemName == itemName {
			return i
		}
	}
	return -1
}
