package rulebook

// Spell is a static spell record; the engine only needs name and level to
// populate prepared-spell lists and validate slot toggles
type Spell struct {
	Key   string
	Name  string
	Level int // 0 for cantrips
}

// SpellCatalog resolves spell names to static records
type SpellCatalog struct {
	spells map[string]*Spell
}

// NewSpellCatalog creates a catalog with a baseline spell list
func NewSpellCatalog() *SpellCatalog {
	records := []*Spell{
		{Key: "fire-bolt", Name: "Fire Bolt", Level: 0},
		{Key: "mage-hand", Name: "Mage Hand", Level: 0},
		{Key: "minor-illusion", Name: "Minor Illusion", Level: 0},
		{Key: "magic-missile", Name: "Magic Missile", Level: 1},
		{Key: "shield", Name: "Shield", Level: 1},
		{Key: "mage-armor", Name: "Mage Armor", Level: 1},
		{Key: "misty-step", Name: "Misty Step", Level: 2},
		{Key: "fireball", Name: "Fireball", Level: 3},
		{Key: "counterspell", Name: "Counterspell", Level: 3},
	}

	spells := make(map[string]*Spell, len(records))
	for _, r := range records {
		spells[r.Key] = r
	}
	return &SpellCatalog{spells: spells}
}

// ByKey resolves a spell id, or nil when unknown
func (c *SpellCatalog) ByKey(key string) *Spell {
	return c.spells[normalizeKey(key)]
}
