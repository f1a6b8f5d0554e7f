package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/rpg-sheetfill/internal/entities"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func TestSkillName(t *testing.T) {
	assert.Equal(t, "Knowledge (Arcana)", entities.SkillName("Knowledge", strPtr("Arcana")))
	assert.Equal(t, "Perception", entities.SkillName("Perception", nil))
}

func TestSkillSublabel(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
		ok       bool
	}{
		{"specialised skill", "Knowledge (Arcana)", "Arcana", true},
		{"plain skill", "Perception", "", false},
		{"first parentheses win", "Craft (Alchemy) (Extra)", "Alchemy", true},
		{"unterminated", "Profession (Sailor", "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			sub, ok := entities.SkillSublabel(tc.input)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.expected, sub)
		})
	}
}

func TestWeaponRecord_Display(t *testing.T) {
	w := entities.WeaponRecord{
		CritRange:      "19",
		CritMultiplier: "2",
		DamageDice:     "1d8",
		DamageBonus:    3,
	}
	assert.Equal(t, "1d8+3", w.Damage())
	assert.Equal(t, "19-20/x2", w.Critical())

	w.DamageBonus = -1
	w.CritRange = "20"
	w.CritMultiplier = "3"
	assert.Equal(t, "1d8-1", w.Damage())
	assert.Equal(t, "20/x3", w.Critical())

	w.DamageBonus = 0
	assert.Equal(t, "1d8", w.Damage())
}

func TestSpellSet_EffectiveLevel(t *testing.T) {
	assert.Equal(t, 5, entities.SpellSet{}.EffectiveLevel(5))
	assert.Equal(t, 7, entities.SpellSet{CasterLevel: intPtr(7)}.EffectiveLevel(5))
	assert.Equal(t, 5, entities.SpellSet{CasterLevel: intPtr(0)}.EffectiveLevel(5))
}

func TestNamedValues_Lookup(t *testing.T) {
	saves := entities.NamedValues{{Name: "fortitude", Value: 4}, {Name: "will", Value: 6}}

	v, ok := saves.Lookup("will")
	assert.True(t, ok)
	assert.Equal(t, 6, v)

	_, ok = saves.Lookup("reflex")
	assert.False(t, ok)
}
