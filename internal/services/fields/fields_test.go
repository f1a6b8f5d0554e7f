package fields_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-sheetfill/internal/entities"
	"github.com/KirkDiggler/rpg-sheetfill/internal/services/extraction"
	"github.com/KirkDiggler/rpg-sheetfill/internal/services/fields"
	"github.com/KirkDiggler/rpg-sheetfill/internal/testutils"
)

type BuilderTestSuite struct {
	suite.Suite
	builder *fields.Builder
}

func (s *BuilderTestSuite) SetupTest() {
	s.builder = fields.NewBuilder()
}

func intPtr(n int) *int { return &n }

func (s *BuilderTestSuite) TestScalarsAndSections() {
	record := &entities.CharacterRecord{
		Profile:   entities.Profile{Name: "Simone", Level: 5, ClassLevel: "Wizard 5"},
		Abilities: []entities.Ability{{Name: "strength", Score: 8, Bonus: -1}, {Name: "wisdom", Score: 10}},
		Saves:     entities.NamedValues{{Name: "will", Value: 4}},
		HP:        entities.NamedValues{{Name: "total", Value: 27}},
		AttackBonus: entities.AttackBonus{
			Base:   2,
			Totals: entities.NamedValues{{Name: "melee", Value: -1}},
		},
		Defenses:  entities.Defenses{DamageReduction: "5/magic", SpellResistance: intPtr(11)},
		Languages: []string{"Common", "Elven"},
	}

	values, warnings := s.builder.Build(record)
	s.Empty(warnings)

	expected := map[string]string{
		"name":                   "Simone",
		"level":                  "5",
		"class":                  "Wizard 5",
		"ability.strength.score": "8",
		"ability.strength.bonus": "-1",
		"ability.wisdom.bonus":   "+0",
		"save.will":              "+4",
		"hp.total":               "27",
		"bab":                    "+2",
		"attack.melee":           "-1",
		"dr":                     "5/magic",
		"sr":                     "11",
		"languages":              "Common, Elven",
	}
	for key, want := range expected {
		s.Equal(want, values.Get(key), key)
	}
	s.NotContains(values, "race")
	s.NotContains(values, "proficiencies")
}

func (s *BuilderTestSuite) TestSkills() {
	record := &entities.CharacterRecord{Skills: []entities.Skill{
		{Name: "Knowledge (Arcana)", Label: "Knowledge", Total: 12, Ranks: 5},
		{Name: "Perception", Label: "Perception", Total: 7, Ranks: 3, Misc: 2},
	}}

	values, _ := s.builder.Build(record)

	s.Equal("Knowledge", values.Get("skill.0.name"))
	s.Equal("Arcana", values.Get("skill.0.sublabel"))
	s.Equal("+12", values.Get("skill.0.total"))
	s.NotContains(values, "skill.1.sublabel")
	s.Equal("+2", values.Get("skill.1.misc"))
}

func (s *BuilderTestSuite) TestWeapons() {
	record := &entities.CharacterRecord{Weapons: []entities.WeaponRecord{
		{Name: "Longsword", Attack: "6/1", CritRange: "19", CritMultiplier: "2", DamageDice: "1d8", DamageBonus: 3, DamageType: "S"},
		{Name: "Light Crossbow", Attack: "4", CritRange: "19", CritMultiplier: "2", DamageDice: "1d8", DamageType: "P", Range: intPtr(80), Ammo: intPtr(15)},
	}}

	values, _ := s.builder.Build(record)

	s.Equal("6/1", values.Get("weapon.0.attack"))
	s.Equal("19-20/x2", values.Get("weapon.0.critical"))
	s.Equal("1d8+3", values.Get("weapon.0.damage"))
	s.NotContains(values, "weapon.0.range")
	s.NotContains(values, "weapon.0.ammo")
	s.Equal("80 ft.", values.Get("weapon.1.range"))
	s.Equal("15", values.Get("weapon.1.ammo"))
}

func (s *BuilderTestSuite) TestSpellFormulasUseCasterLevel() {
	record := &entities.CharacterRecord{Profile: entities.Profile{Level: 3}}
	record.SpellSet.CasterLevel = intPtr(6)
	record.SpellSet.Levels[1] = []entities.SpellRecord{
		{Name: "Mage Armor", Range: "Touch", Duration: "1 hour/level (D)"},
		{Name: "Magic Missile", Range: "Medium (100 ft. + 10 ft./level)", Duration: "Instantaneous"},
	}

	values, warnings := s.builder.Build(record)
	s.Empty(warnings)

	s.Equal("6", values.Get("spell.cl"))
	s.Equal("touch", values.Get("spell.1.0.range"))
	s.Equal("6 hours", values.Get("spell.1.0.duration"))
	s.Equal("160 ft.", values.Get("spell.1.1.range"))
	s.Equal("instantaneous", values.Get("spell.1.1.duration"))
}

func (s *BuilderTestSuite) TestFormulaFailuresDegradeToRawText() {
	record := &entities.CharacterRecord{Profile: entities.Profile{Level: 5}}
	record.SpellSet.Levels[2] = []entities.SpellRecord{
		{Name: "Odd", Range: "", Duration: "1 round/fortnight"},
		{Name: "Either", Duration: "1 round or 2 rounds"},
	}

	values, warnings := s.builder.Build(record)

	s.Equal("1 round/fortnight", values.Get("spell.2.0.duration"))
	s.NotContains(values, "spell.2.0.range")
	s.Equal("1 round", values.Get("spell.2.1.duration"))

	s.Require().Len(warnings, 2)
	s.Equal(fields.Warning{Field: "spell.2.0.duration", Formula: "1 round/fortnight", Reason: "unrecognized formula"}, warnings[0])
	s.Equal("spell.2.1.duration", warnings[1].Field)
	s.Equal("1 round or 2 rounds", warnings[1].Formula)
}

func (s *BuilderTestSuite) TestNilRecord() {
	values, warnings := s.builder.Build(nil)
	s.Empty(values)
	s.Empty(warnings)
}

func (s *BuilderTestSuite) TestDefaultDocument() {
	extractor, err := extraction.NewExtractor(&extraction.Config{})
	s.Require().NoError(err)
	record, err := extractor.Extract(testutils.DefaultCharacter(s.T()))
	s.Require().NoError(err)

	values, warnings := s.builder.Build(record)
	s.Empty(warnings)

	s.Equal(testutils.TestCharacterName, values.Get("name"))
	s.Equal("5 mins.", values.Get("spell.0.0.duration"))
	s.Equal("60 ft.", values.Get("spell.0.0.range"))
	s.Equal("150 ft.", values.Get("spell.1.1.range"))
	s.Equal("S", values.Get("weapon.0.type"))
	s.Equal("B,P", values.Get("weapon.2.type"))
	s.Equal("0.1", values.Get("item.1.weight"))
}

func TestKey(t *testing.T) {
	assert.Equal(t, "spell.1.0.range", fields.Key("spell", 1, 0, "range"))
	assert.Equal(t, "name", fields.Key("name"))
}

func TestBuilderSuite(t *testing.T) {
	suite.Run(t, new(BuilderTestSuite))
}
