package report_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-sheetfill/internal/entities"
	"github.com/KirkDiggler/rpg-sheetfill/internal/services/extraction"
	"github.com/KirkDiggler/rpg-sheetfill/internal/services/report"
	"github.com/KirkDiggler/rpg-sheetfill/internal/testutils"
)

func intPtr(n int) *int { return &n }

func TestWrite_Indentation(t *testing.T) {
	record := &entities.CharacterRecord{
		Profile:   entities.Profile{Name: "Simone", Level: 5},
		Abilities: []entities.Ability{{Name: "strength", Score: 8, Bonus: -1}},
		AC:        entities.ArmorClass{Totals: entities.NamedValues{{Name: "general", Value: 14}}},
		Weapons: []entities.WeaponRecord{
			{Name: "Light Crossbow", Attack: "4", CritRange: "19", CritMultiplier: "2", DamageDice: "1d8", Range: intPtr(80)},
		},
	}
	record.SpellSet.Levels[1] = []entities.SpellRecord{{Name: "Mage Armor", Duration: "1 hour/level (D)"}}

	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, record))
	out := buf.String()

	for _, want := range []string{
		"Name: Simone\n",
		"Abilities\n  Strength\n    Score: 8\n    Bonus: -1\n",
		"Ac\n  Totals\n    General: 14\n",
		"Weapons\n  Light Crossbow\n    Attack: 4\n    Critical: 19-20/x2\n    Damage: 1d8\n    Range: 80 ft.\n",
		"Special Abilities\n",
		"  Level 1\n    Mage Armor\n      Duration: 5 hours\n",
	} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "Ammo")
	assert.NotContains(t, out, "Level 0")
}

func TestWrite_UnrecognizedFormulaKeepsRawText(t *testing.T) {
	record := &entities.CharacterRecord{Profile: entities.Profile{Level: 5}}
	record.SpellSet.Levels[0] = []entities.SpellRecord{{Name: "Odd", Duration: "1 round/fortnight"}}

	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, record))
	assert.Contains(t, buf.String(), "      Duration: 1 round/fortnight\n")
}

func TestWrite_DefaultDocument(t *testing.T) {
	extractor, err := extraction.NewExtractor(&extraction.Config{})
	require.NoError(t, err)
	record, err := extractor.Extract(testutils.DefaultCharacter(t))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, record))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	assert.Equal(t, "Name: "+testutils.TestCharacterName, lines[0])
	for _, l := range lines {
		trimmed := strings.TrimLeft(l, " ")
		assert.Equal(t, 0, (len(l)-len(trimmed))%2, "odd indentation in %q", l)
	}
	assert.Contains(t, buf.String(), "  Knowledge (Arcana): +12\n")
}

type failingWriter struct{ writes int }

func (f *failingWriter) Write(p []byte) (int, error) {
	f.writes++
	return 0, errors.New("disk full")
}

func TestWrite_StopsOnFirstError(t *testing.T) {
	w := &failingWriter{}
	err := report.Write(w, &entities.CharacterRecord{Profile: entities.Profile{Name: "Simone"}})
	require.EqualError(t, err, "disk full")
	assert.Equal(t, 1, w.writes)
}

func TestWrite_SkillNamesAreVerbatim(t *testing.T) {
	record := &entities.CharacterRecord{Skills: []entities.Skill{
		{Name: "Sleight of Hand", Total: 3},
		{Name: "Knowledge (history)", Total: 2},
	}}

	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, record))

	assert.Contains(t, buf.String(), "Skills\n  Sleight of Hand: +3\n  Knowledge (history): +2\n")
}
