// Package fields resolves a character record into the flat field-value
// mapping consumed by form renderers.
//
// Keys are dotted paths. Scalars use a single segment ("name", "bab"),
// named sections use the schema name ("ability.strength.score",
// "save.will") and lists use a zero-based row ("weapon.0.damage",
// "spell.1.0.duration" for the first level-1 spell). Every value is final
// display text: signed, pluralised and formatted.
package fields

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-sheetfill/internal/entities"
	"github.com/KirkDiggler/rpg-sheetfill/internal/services/formula"
)

// Values is the resolved field-value mapping
type Values map[string]string

// Get returns the value stored under key, or "" when absent
func (v Values) Get(key string) string {
	return v[key]
}

// Warning reports a field whose formula could not be evaluated cleanly. The
// field falls back to the raw formula text.
type Warning struct {
	Field   string
	Formula string
	Reason  string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s (%q)", w.Field, w.Reason, w.Formula)
}

// Key joins key segments with dots
func Key(parts ...interface{}) string {
	segments := make([]string, len(parts))
	for i, p := range parts {
		segments[i] = fmt.Sprint(p)
	}
	return strings.Join(segments, ".")
}

// Builder maps records to Values
type Builder struct {
	// ListSeparator joins string lists such as languages
	ListSeparator string
}

// NewBuilder returns a builder with the default list separator
func NewBuilder() *Builder {
	return &Builder{ListSeparator: ", "}
}

// Build resolves record into Values. Formula problems never fail the build;
// they are returned as warnings alongside the values.
func (b *Builder) Build(record *entities.CharacterRecord) (Values, []Warning) {
	out := &builder{values: Values{}, sep: b.ListSeparator}
	if record == nil {
		return out.values, nil
	}

	out.profile(record.Profile)
	out.abilities(record.Abilities)
	out.named("save", record.Saves, true)
	out.named("hp", record.HP, false)
	out.named("initiative", record.Initiative, true)
	out.named("ac", record.AC.Totals, false)
	out.named("ac.source", record.AC.Sources, true)
	out.set(entities.SignedInt(record.AttackBonus.Base), "bab")
	out.named("attack", record.AttackBonus.Totals, true)
	out.named("encumbrance", record.Encumbrance, false)
	out.defenses(record.Defenses)
	out.skills(record.Skills)
	out.weapons(record.Weapons)
	out.spells(record.SpellSet, record.Level)
	out.feats(record.Feats)
	out.traits("trait", record.Traits)
	out.traits("special", record.SpecialAbilities)
	out.inventory(record.Inventory)
	out.set(strings.Join(record.Languages, out.sep), "languages")
	out.set(strings.Join(record.Proficiencies, out.sep), "proficiencies")

	return out.values, out.warnings
}

type builder struct {
	values   Values
	warnings []Warning
	sep      string
}

// set stores non-empty values only so renderers can leave absent fields blank
func (b *builder) set(value string, key ...interface{}) {
	if value == "" {
		return
	}
	b.values[Key(key...)] = value
}

func (b *builder) profile(p entities.Profile) {
	b.set(p.Name, "name")
	b.set(strconv.Itoa(p.Level), "level")
	b.set(p.ClassLevel, "class")
	b.set(p.Race, "race")
	b.set(p.Deity, "deity")
	b.set(p.Alignment, "alignment")
	b.set(p.Size, "size")
	b.set(p.Age, "age")
	b.set(p.Appearance, "appearance")
	b.set(p.Gender, "gender")
	b.set(p.Height, "height")
	b.set(p.Weight, "weight")
	b.set(p.Speed, "speed")
}

func (b *builder) abilities(abilities []entities.Ability) {
	for _, a := range abilities {
		b.set(strconv.Itoa(a.Score), "ability", a.Name, "score")
		b.set(entities.SignedInt(a.Bonus), "ability", a.Name, "bonus")
	}
}

func (b *builder) named(prefix string, values entities.NamedValues, signed bool) {
	for _, v := range values {
		text := strconv.Itoa(v.Value)
		if signed {
			text = entities.SignedInt(v.Value)
		}
		b.set(text, prefix, v.Name)
	}
}

func (b *builder) defenses(d entities.Defenses) {
	b.set(d.DamageReduction, "dr")
	if d.SpellResistance != nil {
		b.set(strconv.Itoa(*d.SpellResistance), "sr")
	}
}

func (b *builder) skills(skills []entities.Skill) {
	for i, s := range skills {
		b.set(s.Label, "skill", i, "name")
		if sub, ok := entities.SkillSublabel(s.Name); ok {
			b.set(sub, "skill", i, "sublabel")
		}
		b.set(entities.SignedInt(s.Total), "skill", i, "total")
		b.set(strconv.Itoa(s.Ranks), "skill", i, "ranks")
		b.set(entities.SignedInt(s.Misc), "skill", i, "misc")
		b.set(s.Stat, "skill", i, "stat")
	}
}

func (b *builder) weapons(weapons []entities.WeaponRecord) {
	for i, w := range weapons {
		b.set(w.Name, "weapon", i, "name")
		b.set(w.Attack, "weapon", i, "attack")
		b.set(w.Critical(), "weapon", i, "critical")
		b.set(w.Damage(), "weapon", i, "damage")
		b.set(w.DamageType, "weapon", i, "type")
		if w.Range != nil {
			b.set(fmt.Sprintf("%d ft.", *w.Range), "weapon", i, "range")
		}
		if w.Ammo != nil {
			b.set(strconv.Itoa(*w.Ammo), "weapon", i, "ammo")
		}
	}
}

func (b *builder) spells(set entities.SpellSet, characterLevel int) {
	level := set.EffectiveLevel(characterLevel)
	b.set(set.Label, "spell", "label")
	b.set(strconv.Itoa(level), "spell", "cl")

	for spellLevel, spells := range set.Levels {
		for i, sp := range spells {
			b.set(sp.Name, "spell", spellLevel, i, "name")
			b.set(sp.School, "spell", spellLevel, i, "school")
			b.set(sp.Save, "spell", spellLevel, i, "save")
			b.set(sp.SR, "spell", spellLevel, i, "sr")
			b.set(sp.Summary, "spell", spellLevel, i, "summary")
			b.formula(sp.Range, level, "spell", spellLevel, i, "range")
			b.formula(sp.Duration, level, "spell", spellLevel, i, "duration")
		}
	}
}

// formula evaluates raw at level. Blank formulas are skipped; failures and
// ambiguous choices fall back to the raw text and record a warning.
func (b *builder) formula(raw string, level int, key ...interface{}) {
	if strings.TrimSpace(raw) == "" {
		return
	}
	field := Key(key...)

	result, err := formula.Evaluate(raw, level)
	if err != nil {
		b.values[field] = raw
		b.warnings = append(b.warnings, Warning{Field: field, Formula: raw, Reason: "unrecognized formula"})
		return
	}
	if result.Ambiguous {
		b.warnings = append(b.warnings, Warning{Field: field, Formula: raw, Reason: "ambiguous alternative, kept the first"})
	}
	b.set(result.String(), key...)
}

func (b *builder) feats(feats []entities.Feat) {
	for i, f := range feats {
		b.set(f.Name, "feat", i, "name")
		b.set(f.Summary, "feat", i, "summary")
	}
}

func (b *builder) traits(prefix string, traits []entities.Trait) {
	for i, t := range traits {
		b.set(t.Name, prefix, i, "name")
		b.set(t.Description, prefix, i, "description")
	}
}

func (b *builder) inventory(items []entities.Item) {
	for i, it := range items {
		b.set(it.Name, "item", i, "name")
		b.set(strconv.Itoa(it.Count), "item", i, "count")
		b.set(strconv.FormatFloat(it.Weight, 'f', -1, 64), "item", i, "weight")
		b.set(it.Location, "item", i, "location")
	}
}
