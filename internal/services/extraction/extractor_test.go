package extraction_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-sheetfill/internal/errors"
	"github.com/KirkDiggler/rpg-sheetfill/internal/services/extraction"
	"github.com/KirkDiggler/rpg-sheetfill/internal/testutils"
	"github.com/KirkDiggler/rpg-sheetfill/internal/testutils/builders"
)

type ExtractorTestSuite struct {
	suite.Suite
	extractor extraction.Extractor
}

func TestExtractorSuite(t *testing.T) {
	suite.Run(t, new(ExtractorTestSuite))
}

func (s *ExtractorTestSuite) SetupTest() {
	extractor, err := extraction.NewExtractor(&extraction.Config{})
	s.Require().NoError(err)
	s.extractor = extractor
}

func (s *ExtractorTestSuite) TestNewExtractor() {
	s.Run("nil config returns error", func() {
		_, err := extraction.NewExtractor(nil)
		s.Error(err)
		s.Contains(err.Error(), "config is required")
	})

	s.Run("schema without spell set id returns error", func() {
		schema := extraction.DefaultSchema()
		schema.SpellSetID = ""
		_, err := extraction.NewExtractor(&extraction.Config{Schema: schema})
		s.Error(err)
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("custom schema is accepted", func() {
		extractor, err := extraction.NewExtractor(&extraction.Config{Schema: extraction.DefaultSchema()})
		s.NoError(err)
		s.NotNil(extractor)
	})
}

func (s *ExtractorTestSuite) TestExtractFullRecord() {
	rec, err := s.extractor.Extract(testutils.DefaultCharacter(s.T()))
	s.Require().NoError(err)
	s.Require().NotNil(rec)

	s.Equal(testutils.TestCharacterName, rec.Name)
	s.Equal(5, rec.Level)
	s.Equal("Wizard 5", rec.ClassLevel)
	s.Equal("Neutral Good", rec.Alignment)
	s.Equal("30", rec.Speed)

	s.Require().Len(rec.Abilities, 6)
	s.Equal("strength", rec.Abilities[0].Name)
	s.Equal(8, rec.Abilities[0].Score)
	s.Equal(-1, rec.Abilities[0].Bonus)
	intelligence, ok := rec.Ability("intelligence")
	s.True(ok)
	s.Equal(19, intelligence.Score)

	will, ok := rec.Saves.Lookup("will")
	s.True(ok)
	s.Equal(4, will)

	total, _ := rec.HP.Lookup("total")
	s.Equal(27, total)
	initTotal, _ := rec.Initiative.Lookup("total")
	s.Equal(2, initTotal)

	general, _ := rec.AC.Totals.Lookup("general")
	s.Equal(14, general)
	s.Len(rec.AC.Sources, 3)

	s.Equal(2, rec.AttackBonus.Base)
	ranged, _ := rec.AttackBonus.Totals.Lookup("ranged")
	s.Equal(4, ranged)

	s.Equal("5/magic", rec.Defenses.DamageReduction)
	s.Require().NotNil(rec.Defenses.SpellResistance)
	s.Equal(11, *rec.Defenses.SpellResistance)

	heavy, _ := rec.Encumbrance.Lookup("heavyload")
	s.Equal(80, heavy)

	s.Len(rec.Feats, 2)
	s.Equal("Create magic scrolls.", rec.Feats[0].Summary)
	s.Equal("", rec.Feats[1].Summary)

	s.Require().Len(rec.Inventory, 2)
	s.Equal(3.0, rec.Inventory[0].Weight)
	s.Equal("Backpack", rec.Inventory[0].Location)
	s.Equal(20, rec.Inventory[1].Count)
	s.InDelta(0.1, rec.Inventory[1].Weight, 0.0001)

	s.Equal([]string{"Common", "Elven"}, rec.Languages)
	s.Len(rec.Proficiencies, 1)

	s.Require().Len(rec.SpecialAbilities, 1)
	s.Equal("Bonded to a ring.", rec.SpecialAbilities[0].Description)
}

func (s *ExtractorTestSuite) TestExtractIsPure() {
	character := testutils.DefaultCharacter(s.T())

	first, err := s.extractor.Extract(character)
	s.Require().NoError(err)
	second, err := s.extractor.Extract(character)
	s.Require().NoError(err)

	if diff := cmp.Diff(first, second); diff != "" {
		s.Failf("extraction is not repeatable", "(-first +second):\n%s", diff)
	}
}

func (s *ExtractorTestSuite) TestMissingSectionIsStructural() {
	testCases := []struct {
		name    string
		without string
		path    string
	}{
		{"abilities", "abilities", "root/character/abilities"},
		{"saves", "saves", "root/character/saves"},
		{"weapon list", "weaponlist", "root/character/weaponlist"},
		{"spell set", "spellset", "root/character/spellset"},
		{"level", "level", "root/character/level"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			doc := builders.NewCharacterXMLBuilder().Without(tc.without).Build()

			rec, err := s.extractor.Extract(testutils.ParseCharacter(s.T(), doc))
			s.Nil(rec)
			s.Require().Error(err)
			s.True(errors.IsStructural(err))
			s.Equal(tc.path, errors.GetMeta(err)["path"])
			s.Contains(err.Error(), tc.without)
		})
	}
}

func (s *ExtractorTestSuite) TestMissingNestedValueIsStructural() {
	doc := builders.NewCharacterXMLBuilder().
		With("saves", `<fortitude><total>2</total></fortitude><reflex><total>3</total></reflex><will/>`).
		Build()

	rec, err := s.extractor.Extract(testutils.ParseCharacter(s.T(), doc))
	s.Nil(rec)
	s.Require().Error(err)
	s.Equal("root/character/saves/will/total", errors.GetMeta(err)["path"])
}

func (s *ExtractorTestSuite) TestNonNumericLeafIsStructural() {
	doc := builders.NewCharacterXMLBuilder().With("level", "five").Build()

	rec, err := s.extractor.Extract(testutils.ParseCharacter(s.T(), doc))
	s.Nil(rec)
	s.Require().Error(err)
	s.True(errors.IsStructural(err))
	s.Equal("five", errors.GetMeta(err)["value"])
}

func (s *ExtractorTestSuite) TestNilCharacter() {
	rec, err := s.extractor.Extract(nil)
	s.Nil(rec)
	s.True(errors.IsStructural(err))
}
