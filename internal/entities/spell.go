package entities

// MaxSpellLevel is the highest spell level a spell set can hold
const MaxSpellLevel = 9

// SpellRecord is one prepared or known spell. Range and Duration keep the raw
// formula text; they are resolved against a level only when rendered.
type SpellRecord struct {
	Name     string
	Range    string
	Save     string
	School   string
	Duration string
	SR       string
	Summary  string
}

// SpellSet is a single spell list grouped by spell level 0-9
type SpellSet struct {
	Label       string
	CasterLevel *int
	Levels      [MaxSpellLevel + 1][]SpellRecord
}

// Count returns the total number of spells across all levels
func (s SpellSet) Count() int {
	n := 0
	for _, lvl := range s.Levels {
		n += len(lvl)
	}
	return n
}

// EffectiveLevel returns the level used to resolve spell formulas: the caster
// level when the set carries one, otherwise the given character level.
func (s SpellSet) EffectiveLevel(characterLevel int) int {
	if s.CasterLevel != nil && *s.CasterLevel > 0 {
		return *s.CasterLevel
	}
	return characterLevel
}
