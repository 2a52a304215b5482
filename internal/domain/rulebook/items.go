package rulebook

import (
	"regexp"
	"strconv"
	"strings"
)

// ArmorWeight is the armor weight class, which governs the Dex contribution
type ArmorWeight string

const (
	ArmorWeightLight  ArmorWeight = "light"
	ArmorWeightMedium ArmorWeight = "medium"
	ArmorWeightHeavy  ArmorWeight = "heavy"
	ArmorWeightShield ArmorWeight = "shield"
)

// WeaponRecord is a static weapon lookup entry
type WeaponRecord struct {
	Name       string
	DamageDice string // e.g. "1d8"
	Category   string // "simple" or "martial"
	Heavy      bool
	TwoHanded  bool
	Ranged     bool
}

// ArmorRecord is a static armor lookup entry
type ArmorRecord struct {
	Name   string
	Weight ArmorWeight
	BaseAC int
}

// ItemRecord is a static entry for non-weapon, non-armor equipment
type ItemRecord struct {
	Name    string
	ACBonus int // flat AC bonus while equipped (protection items)
}

var (
	magicPrefix = regexp.MustCompile(`^\+(\d+)\s+(.+)$`)
	magicSuffix = regexp.MustCompile(`^(.+?)\s+\+(\d+)$`)
)

// SplitMagicBonus strips a "+N X" or "X +N" decoration from an item name and
// returns the base name plus the extracted magic bonus
func SplitMagicBonus(name string) (string, int) {
	trimmed := strings.TrimSpace(name)

	if m := magicPrefix.FindStringSubmatch(trimmed); m != nil {
		bonus, err := strconv.Atoi(m[1])
		if err == nil {
			return m[2], bonus
		}
	}

	if m := magicSuffix.FindStringSubmatch(trimmed); m != nil {
		bonus, err := strconv.Atoi(m[2])
		if err == nil {
			return m[1], bonus
		}
	}

	return trimmed, 0
}

func normalizeKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// WeaponCatalog resolves weapon names to static records
type WeaponCatalog struct {
	weapons map[string]*WeaponRecord
}

// NewWeaponCatalog creates a catalog with the standard weapon list
func NewWeaponCatalog() *WeaponCatalog {
	records := []*WeaponRecord{
		{Name: "Club", DamageDice: "1d4", Category: "simple"},
		{Name: "Dagger", DamageDice: "1d4", Category: "simple"},
		{Name: "Greatclub", DamageDice: "1d8", Category: "simple", TwoHanded: true},
		{Name: "Handaxe", DamageDice: "1d6", Category: "simple"},
		{Name: "Mace", DamageDice: "1d6", Category: "simple"},
		{Name: "Quarterstaff", DamageDice: "1d6", Category: "simple"},
		{Name: "Spear", DamageDice: "1d6", Category: "simple"},
		{Name: "Shortbow", DamageDice: "1d6", Category: "simple", TwoHanded: true, Ranged: true},
		{Name: "Battleaxe", DamageDice: "1d8", Category: "martial"},
		{Name: "Glaive", DamageDice: "1d10", Category: "martial", Heavy: true, TwoHanded: true},
		{Name: "Greataxe", DamageDice: "1d12", Category: "martial", Heavy: true, TwoHanded: true},
		{Name: "Greatsword", DamageDice: "2d6", Category: "martial", Heavy: true, TwoHanded: true},
		{Name: "Halberd", DamageDice: "1d10", Category: "martial", Heavy: true, TwoHanded: true},
		{Name: "Longsword", DamageDice: "1d8", Category: "martial"},
		{Name: "Maul", DamageDice: "2d6", Category: "martial", Heavy: true, TwoHanded: true},
		{Name: "Pike", DamageDice: "1d10", Category: "martial", Heavy: true, TwoHanded: true},
		{Name: "Rapier", DamageDice: "1d8", Category: "martial"},
		{Name: "Scimitar", DamageDice: "1d6", Category: "martial"},
		{Name: "Shortsword", DamageDice: "1d6", Category: "martial"},
		{Name: "Warhammer", DamageDice: "1d8", Category: "martial"},
		{Name: "Longbow", DamageDice: "1d8", Category: "martial", Heavy: true, TwoHanded: true, Ranged: true},
	}

	weapons := make(map[string]*WeaponRecord, len(records))
	for _, r := range records {
		weapons[normalizeKey(r.Name)] = r
	}
	return &WeaponCatalog{weapons: weapons}
}

// ByName resolves a possibly decorated weapon name ("+1 Greataxe") to its
// record and the extracted magic bonus. Returns nil when unknown.
func (c *WeaponCatalog) ByName(name string) (*WeaponRecord, int) {
	base, bonus := SplitMagicBonus(name)
	record := c.weapons[normalizeKey(base)]
	return record, bonus
}

// heavyWeaponNames is the fixed set of weapons eligible for heavy-weapon
// feat bonuses. Matched against the normalized base name.
var heavyWeaponNames = map[string]bool{
	"glaive":     true,
	"greataxe":   true,
	"greatsword": true,
	"halberd":    true,
	"maul":       true,
	"pike":       true,
}

// IsHeavyWeaponName reports whether the (possibly decorated) name refers to
// a weapon in the fixed heavy-weapon set
func IsHeavyWeaponName(name string) bool {
	base, _ := SplitMagicBonus(name)
	return heavyWeaponNames[normalizeKey(base)]
}

// ArmorCatalog resolves armor names to static records
type ArmorCatalog struct {
	armor map[string]*ArmorRecord
}

// NewArmorCatalog creates a catalog with the standard armor list
func NewArmorCatalog() *ArmorCatalog {
	records := []*ArmorRecord{
		{Name: "Padded Armor", Weight: ArmorWeightLight, BaseAC: 11},
		{Name: "Leather Armor", Weight: ArmorWeightLight, BaseAC: 11},
		{Name: "Studded Leather Armor", Weight: ArmorWeightLight, BaseAC: 12},
		{Name: "Hide Armor", Weight: ArmorWeightMedium, BaseAC: 12},
		{Name: "Chain Shirt", Weight: ArmorWeightMedium, BaseAC: 13},
		{Name: "Scale Mail", Weight: ArmorWeightMedium, BaseAC: 14},
		{Name: "Breastplate", Weight: ArmorWeightMedium, BaseAC: 14},
		{Name: "Half Plate", Weight: ArmorWeightMedium, BaseAC: 15},
		{Name: "Ring Mail", Weight: ArmorWeightHeavy, BaseAC: 14},
		{Name: "Chain Mail", Weight: ArmorWeightHeavy, BaseAC: 16},
		{Name: "Splint Armor", Weight: ArmorWeightHeavy, BaseAC: 17},
		{Name: "Plate Armor", Weight: ArmorWeightHeavy, BaseAC: 18},
		{Name: "Shield", Weight: ArmorWeightShield, BaseAC: 2},
	}

	armor := make(map[string]*ArmorRecord, len(records))
	for _, r := range records {
		armor[normalizeKey(r.Name)] = r
	}
	return &ArmorCatalog{armor: armor}
}

// ByName resolves a possibly decorated armor name to its record and the
// extracted magic bonus. Returns nil when unknown.
func (c *ArmorCatalog) ByName(name string) (*ArmorRecord, int) {
	base, bonus := SplitMagicBonus(name)
	record := c.armor[normalizeKey(base)]
	return record, bonus
}

// ItemCatalog resolves misc equipment names to static records
type ItemCatalog struct {
	items map[string]*ItemRecord
}

// NewItemCatalog creates a catalog with the standard magic item list
func NewItemCatalog() *ItemCatalog {
	records := []*ItemRecord{
		{Name: "Ring of Protection", ACBonus: 1},
		{Name: "Cloak of Protection", ACBonus: 1},
		{Name: "Torch"},
		{Name: "Rope"},
		{Name: "Bedroll"},
		{Name: "Rations"},
		{Name: "Healing Potion"},
	}

	items := make(map[string]*ItemRecord, len(records))
	for _, r := range records {
		items[normalizeKey(r.Name)] = r
	}
	return &ItemCatalog{items: items}
}

// ByName resolves an item name to its record, or nil when unknown
func (c *ItemCatalog) ByName(name string) *ItemRecord {
	base, _ := SplitMagicBonus(name)
	return c.items[normalizeKey(base)]
}
