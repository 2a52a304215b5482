package rulebook

import (
	"github.com/KirkDiggler/character-vault/internal/domain/shared"
)

// Background is a static background record used during character creation
type Background struct {
	Key    string
	Name   string
	Skills []shared.Skill
}

// BackgroundCatalog resolves background names to static records
type BackgroundCatalog struct {
	backgrounds map[string]*Background
}

// NewBackgroundCatalog creates a catalog with the standard background list
func NewBackgroundCatalog() *BackgroundCatalog {
	records := []*Background{
		{Key: "acolyte", Name: "Acolyte", Skills: []shared.Skill{shared.SkillInsight, shared.SkillReligion}},
		{Key: "criminal", Name: "Criminal", Skills: []shared.Skill{shared.SkillDeception, shared.SkillStealth}},
		{Key: "outlander", Name: "Outlander", Skills: []shared.Skill{shared.SkillAthletics, shared.SkillSurvival}},
		{Key: "sage", Name: "Sage", Skills: []shared.Skill{shared.SkillArcana, shared.SkillHistory}},
		{Key: "soldier", Name: "Soldier", Skills: []shared.Skill{shared.SkillAthletics, shared.SkillIntimidation}},
	}

	backgrounds := make(map[string]*Background, len(records))
	for _, r := range records {
		backgrounds[r.Key] = r
	}
	return &BackgroundCatalog{backgrounds: backgrounds}
}

// ByKey resolves a background id, or nil when unknown
func (c *BackgroundCatalog) ByKey(key string) *Background {
	return c.backgrounds[normalizeKey(key)]
}
