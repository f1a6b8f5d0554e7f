// Package builders provides test data builders for creating test fixtures
package builders

import (
	"fmt"
	"strings"
)

type section struct {
	tag  string
	body string
}

// CharacterXMLBuilder provides a fluent interface for building character
// export documents. Every section starts populated with a level 5 wizard.
type CharacterXMLBuilder struct {
	sections []section
}

// NewCharacterXMLBuilder creates a builder holding the full default character
func NewCharacterXMLBuilder() *CharacterXMLBuilder {
	b := &CharacterXMLBuilder{}
	b.sections = append(b.sections, defaultSections...)
	return b
}

// With replaces the body of a section, adding it when absent. The body is
// the inner XML of the element.
func (b *CharacterXMLBuilder) With(tag, body string) *CharacterXMLBuilder {
	for i, s := range b.sections {
		if s.tag == tag {
			b.sections[i].body = body
			return b
		}
	}
	b.sections = append(b.sections, section{tag: tag, body: body})
	return b
}

// Without removes a section entirely
func (b *CharacterXMLBuilder) Without(tag string) *CharacterXMLBuilder {
	kept := b.sections[:0]
	for _, s := range b.sections {
		if s.tag != tag {
			kept = append(kept, s)
		}
	}
	b.sections = kept
	return b
}

// WithWeapons replaces the weapon list with the given entry bodies
func (b *CharacterXMLBuilder) WithWeapons(entries ...string) *CharacterXMLBuilder {
	return b.With("weaponlist", idList(entries))
}

// WithSkills replaces the skill list with the given entry bodies
func (b *CharacterXMLBuilder) WithSkills(entries ...string) *CharacterXMLBuilder {
	return b.With("skilllist", idList(entries))
}

// WithTraits replaces the trait list with the given entry bodies
func (b *CharacterXMLBuilder) WithTraits(entries ...string) *CharacterXMLBuilder {
	return b.With("traitlist", idList(entries))
}

// Build renders the document wrapped in the builder's root element
func (b *CharacterXMLBuilder) Build() string {
	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="iso-8859-1"?>` + "\n")
	sb.WriteString(`<root version="3.3" release="8|CoreRPG:3">` + "\n<character>\n")
	for _, s := range b.sections {
		sb.WriteString("<" + s.tag + ">" + s.body + "</" + s.tag + ">\n")
	}
	sb.WriteString("</character>\n</root>\n")
	return sb.String()
}

func idList(entries []string) string {
	var sb strings.Builder
	for i, e := range entries {
		id := idTag(i + 1)
		sb.WriteString("<" + id + ">" + e + "</" + id + ">")
	}
	return sb.String()
}

func idTag(n int) string {
	return fmt.Sprintf("id-%05d", n)
}

// Weapon entry bodies used by the default document
const (
	LongswordEntry = `<name type="string">Longsword</name><attacks type="number">2</attacks>` +
		`<attack1 type="number">6</attack1><attack2 type="number">1</attack2>` +
		`<critatkrange type="number">19</critatkrange><critdmgmult type="number">2</critdmgmult>` +
		`<damagedice type="dice">1d8</damagedice><damagebonus type="number">3</damagebonus>` +
		`<damagetype type="string">slashing</damagetype><rangeincrement type="number">0</rangeincrement>` +
		`<maxammo type="number">0</maxammo><ammo type="number">0</ammo>`
	LightCrossbowEntry = `<name type="string">Light Crossbow</name><attacks type="number">1</attacks>` +
		`<attack1 type="number">4</attack1>` +
		`<critatkrange type="number">19</critatkrange><critdmgmult type="number">2</critdmgmult>` +
		`<damagedice type="dice">1d8</damagedice><damagebonus type="number">0</damagebonus>` +
		`<damagetype type="string">Piercing</damagetype><rangeincrement type="number">80</rangeincrement>` +
		`<maxammo type="number">20</maxammo><ammo type="number">5</ammo>`
	MorningstarEntry = `<name type="string">Morningstar</name><attacks type="number">1</attacks>` +
		`<attack1 type="number">3</attack1>` +
		`<critatkrange type="number">20</critatkrange><critdmgmult type="number">2</critdmgmult>` +
		`<damagedice type="dice">1d8</damagedice><damagebonus type="number">-1</damagebonus>` +
		`<damagetype type="string">Bludgeoning, Piercing</damagetype>`
)

var defaultSections = []section{
	{"name", `Simone`},
	{"level", `5`},
	{"classlevel", `Wizard 5`},
	{"race", `Elf`},
	{"deity", `Nethys`},
	{"alignment", `Neutral Good`},
	{"size", `Medium`},
	{"age", `140`},
	{"appearance", `Silver hair`},
	{"gender", `Female`},
	{"height", `5'8"`},
	{"weight", `110 lbs.`},
	{"speed", `30`},
	{"abilities", `<strength><score type="number">8</score><bonus type="number">-1</bonus></strength>` +
		`<dexterity><score type="number">14</score><bonus type="number">2</bonus></dexterity>` +
		`<constitution><score type="number">12</score><bonus type="number">1</bonus></constitution>` +
		`<intelligence><score type="number">19</score><bonus type="number">4</bonus></intelligence>` +
		`<wisdom><score type="number">10</score><bonus type="number">0</bonus></wisdom>` +
		`<charisma><score type="number">11</score><bonus type="number">0</bonus></charisma>`},
	{"saves", `<fortitude><total type="number">2</total></fortitude>` +
		`<reflex><total type="number">3</total></reflex>` +
		`<will><total type="number">4</total></will>`},
	{"hp", `<nonlethal type="number">0</nonlethal><temporary type="number">0</temporary>` +
		`<wounds type="number">3</wounds><total type="number">27</total>`},
	{"initiative", `<abilitymod type="number">2</abilitymod><misc type="number">0</misc>` +
		`<temporary type="number">0</temporary><total type="number">2</total>`},
	{"ac", `<totals><general type="number">14</general><flatfooted type="number">12</flatfooted>` +
		`<touch type="number">12</touch><cmd type="number">13</cmd></totals>` +
		`<sources><armor type="number">0</armor><abilitymod type="number">2</abilitymod>` +
		`<deflection type="number">2</deflection></sources>`},
	{"attackbonus", `<base type="number">2</base><melee><total type="number">1</total></melee>` +
		`<ranged><total type="number">4</total></ranged><grapple><total type="number">1</total></grapple>`},
	{"defenses", `<damagereduction type="string">5/magic</damagereduction><sr><total type="number">11</total></sr>`},
	{"encumbrance", `<load type="number">12</load><lightload type="number">26</lightload>` +
		`<mediumload type="number">53</mediumload><heavyload type="number">80</heavyload>` +
		`<liftoverhead type="number">80</liftoverhead><liftoffground type="number">160</liftoffground>` +
		`<pushordrag type="number">400</pushordrag>`},
	{"featlist", idList([]string{
		`<name type="string">Scribe Scroll</name><summary type="string">Create magic scrolls.</summary>`,
		`<name type="string">Spell Focus</name>`,
	})},
	{"traitlist", idList([]string{
		`<name type="string">Keen Senses</name><text type="formattedtext"><p>Elves receive a +2 racial bonus on Perception checks. They see well.</p></text>`,
		`<name type="string">Low-Light Vision</name><text type="formattedtext"><p>See twice as far as humans in dim light</p></text>`,
	})},
	{"skilllist", idList([]string{
		`<label type="string">Knowledge</label><sublabel type="string">Arcana</sublabel><total type="number">12</total><ranks type="number">5</ranks><stat type="string">intelligence</stat>`,
		`<label type="string">Perception</label><total type="number">7</total><ranks type="number">3</ranks><misc type="number">2</misc><stat type="string">wisdom</stat>`,
	})},
	{"inventorylist", idList([]string{
		`<name type="string">Spellbook</name><count type="number">1</count><weight type="number">3</weight><location type="string">Backpack</location><carried type="number">1</carried>`,
		`<name type="string">Crossbow bolts</name><count type="number">20</count><weight type="number">0.1</weight>`,
	})},
	{"weaponlist", idList([]string{LongswordEntry, LightCrossbowEntry, MorningstarEntry})},
	{"specialabilitylist", idList([]string{
		`<name type="string">Arcane Bond</name><text type="formattedtext"><p>Bonded to a ring. It can cast one spell.</p></text>`,
	})},
	{"spellset", `<id-00001><label type="string">Wizard</label><cl type="number">5</cl><levels>` +
		`<level0><spells>` + idList([]string{
		`<name type="string">Detect Magic</name><range type="string">60 ft.</range><school type="string">Divination</school>` +
			`<duration type="string">Concentration, up to 1 min./level (D)</duration><save type="string">none</save><sr type="string">no</sr>` +
			`<shortdescription type="string">Detects spells and magic items within 60 ft.</shortdescription>`,
	}) + `</spells></level0>` +
		`<level1><spells>` + idList([]string{
		`<name type="string">Mage Armor</name><range type="string">Touch</range><school type="string">Conjuration (creation) [force]</school>` +
			`<duration type="string">1 hour/level (D)</duration><save type="string">Will negates (harmless)</save><sr type="string">no</sr>`,
		`<name type="string">Magic Missile</name><range type="string">Medium (100 ft. + 10 ft./level)</range><school type="string">Evocation [force]</school>` +
			`<duration type="string">Instantaneous</duration><save type="string">none</save><sr type="string">yes</sr>`,
	}) + `</spells></level1>` +
		`</levels></id-00001>` +
		`<id-00002><label type="string">Scrolls</label><levels><level1><spells>` + idList([]string{
		`<name type="string">Shield</name>`,
	}) + `</spells></level1></levels></id-00002>`},
	{"languagelist", idList([]string{
		`<name type="string">Common</name>`,
		`<name type="string">Elven</name>`,
		``,
	})},
	{"proficiencylist", idList([]string{
		`<name type="string">Weapon Proficiency: Club, Dagger, Heavy Crossbow, Light Crossbow, Quarterstaff</name>`,
	})},
}
