// Package report renders a character record as an indented plain-text report
// for the console. Each nesting level is indented by two spaces and section
// headers are title-cased.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/KirkDiggler/rpg-sheetfill/internal/entities"
	"github.com/KirkDiggler/rpg-sheetfill/internal/services/formula"
)

const indent = "  "

// Write renders record to w. It stops at the first write error.
func Write(w io.Writer, record *entities.CharacterRecord) error {
	r := &writer{w: w, title: cases.Title(language.English)}
	r.record(record)
	return r.err
}

type writer struct {
	w     io.Writer
	title cases.Caser
	err   error
}

func (r *writer) line(depth int, text string) {
	if r.err != nil {
		return
	}
	_, r.err = fmt.Fprintf(r.w, "%s%s\n", strings.Repeat(indent, depth), text)
}

func (r *writer) header(depth int, name string) {
	r.line(depth, r.title.String(name))
}

// field writes a schema label title-cased, skipping empty values
func (r *writer) field(depth int, label, value string) {
	r.entry(depth, r.title.String(label), value)
}

// entry writes "label: value" with the label as given
func (r *writer) entry(depth int, label, value string) {
	if value == "" {
		return
	}
	r.line(depth, label+": "+value)
}

func (r *writer) record(c *entities.CharacterRecord) {
	if c == nil {
		return
	}
	r.profile(c.Profile)

	r.header(0, "abilities")
	for _, a := range c.Abilities {
		r.header(1, a.Name)
		r.field(2, "score", strconv.Itoa(a.Score))
		r.field(2, "bonus", entities.SignedInt(a.Bonus))
	}

	r.named(0, "saves", c.Saves, true)
	r.named(0, "hp", c.HP, false)
	r.named(0, "initiative", c.Initiative, true)

	r.header(0, "ac")
	r.named(1, "totals", c.AC.Totals, false)
	r.named(1, "sources", c.AC.Sources, true)

	r.header(0, "attack bonus")
	r.field(1, "base", entities.SignedInt(c.AttackBonus.Base))
	for _, v := range c.AttackBonus.Totals {
		r.field(1, v.Name, entities.SignedInt(v.Value))
	}

	r.header(0, "defenses")
	r.field(1, "damage reduction", c.Defenses.DamageReduction)
	if c.Defenses.SpellResistance != nil {
		r.field(1, "spell resistance", strconv.Itoa(*c.Defenses.SpellResistance))
	}

	r.named(0, "encumbrance", c.Encumbrance, false)
	r.skills(c.Skills)
	r.weapons(c.Weapons)
	r.spells(c.SpellSet, c.Level)

	r.header(0, "feats")
	for _, f := range c.Feats {
		r.line(1, f.Name)
		r.field(2, "summary", f.Summary)
	}
	r.traits("traits", c.Traits)
	r.traits("special abilities", c.SpecialAbilities)
	r.inventory(c.Inventory)
	r.list("languages", c.Languages)
	r.list("proficiencies", c.Proficiencies)
}

func (r *writer) profile(p entities.Profile) {
	r.field(0, "name", p.Name)
	r.field(0, "level", strconv.Itoa(p.Level))
	r.field(0, "class", p.ClassLevel)
	r.field(0, "race", p.Race)
	r.field(0, "deity", p.Deity)
	r.field(0, "alignment", p.Alignment)
	r.field(0, "size", p.Size)
	r.field(0, "age", p.Age)
	r.field(0, "gender", p.Gender)
	r.field(0, "height", p.Height)
	r.field(0, "weight", p.Weight)
	r.field(0, "appearance", p.Appearance)
	r.field(0, "speed", p.Speed)
}

func (r *writer) named(depth int, name string, values entities.NamedValues, signed bool) {
	r.header(depth, name)
	for _, v := range values {
		text := strconv.Itoa(v.Value)
		if signed {
			text = entities.SignedInt(v.Value)
		}
		r.field(depth+1, v.Name, text)
	}
}

func (r *writer) skills(skills []entities.Skill) {
	r.header(0, "skills")
	for _, s := range skills {
		r.entry(1, s.Name, entities.SignedInt(s.Total))
	}
}

func (r *writer) weapons(weapons []entities.WeaponRecord) {
	r.header(0, "weapons")
	for _, w := range weapons {
		r.line(1, w.Name)
		r.field(2, "attack", w.Attack)
		r.field(2, "critical", w.Critical())
		r.field(2, "damage", w.Damage())
		r.field(2, "type", w.DamageType)
		if w.Range != nil {
			r.field(2, "range", fmt.Sprintf("%d ft.", *w.Range))
		}
		if w.Ammo != nil {
			r.field(2, "ammo", strconv.Itoa(*w.Ammo))
		}
	}
}

func (r *writer) spells(set entities.SpellSet, characterLevel int) {
	level := set.EffectiveLevel(characterLevel)
	r.header(0, "spells")
	r.field(1, "label", set.Label)
	r.field(1, "caster level", strconv.Itoa(level))
	for spellLevel, spells := range set.Levels {
		if len(spells) == 0 {
			continue
		}
		r.header(1, fmt.Sprintf("level %d", spellLevel))
		for _, sp := range spells {
			r.line(2, sp.Name)
			r.field(3, "school", sp.School)
			r.field(3, "range", resolve(sp.Range, level))
			r.field(3, "duration", resolve(sp.Duration, level))
			r.field(3, "save", sp.Save)
			r.field(3, "sr", sp.SR)
			r.field(3, "summary", sp.Summary)
		}
	}
}

// resolve evaluates a formula for display, keeping the raw text when it
// cannot be evaluated
func resolve(raw string, level int) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}
	text, err := formula.Format(raw, level)
	if err != nil {
		return raw
	}
	return text
}

func (r *writer) traits(name string, traits []entities.Trait) {
	r.header(0, name)
	for _, t := range traits {
		r.line(1, t.Name)
		r.field(2, "description", t.Description)
	}
}

func (r *writer) inventory(items []entities.Item) {
	r.header(0, "inventory")
	for _, it := range items {
		r.line(1, fmt.Sprintf("%s x%d", it.Name, it.Count))
		r.field(2, "weight", strconv.FormatFloat(it.Weight, 'f', -1, 64))
		r.field(2, "location", it.Location)
	}
}

func (r *writer) list(name string, items []string) {
	r.header(0, name)
	for _, it := range items {
		r.line(1, it)
	}
}
