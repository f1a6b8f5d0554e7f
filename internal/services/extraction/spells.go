package extraction

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"

	"github.com/KirkDiggler/rpg-sheetfill/internal/entities"
	"github.com/KirkDiggler/rpg-sheetfill/internal/xmlnode"
)

// Spells reads the spell list selected by SpellSetID. Other lists are
// ignored. A character without that list has an empty spell set.
func (s *Schema) Spells(character *etree.Element) (entities.SpellSet, error) {
	var set entities.SpellSet

	spellset, err := child(character, "spellset")
	if err != nil {
		return set, err
	}
	list := xmlnode.FirstChildNamed(spellset, s.SpellSetID)
	if list == nil {
		return set, nil
	}

	set.Label = optionalText(list, "label")
	if set.CasterLevel, err = optionalInt(list, "cl"); err != nil {
		return set, err
	}

	levels := xmlnode.FirstChildNamed(list, "levels")
	for lvl := 0; lvl <= entities.MaxSpellLevel; lvl++ {
		spells := xmlnode.FirstChildNamed(xmlnode.FirstChildNamed(levels, fmt.Sprintf("level%d", lvl)), "spells")
		for _, entry := range xmlnode.ChildElements(spells) {
			spell, err := spellRecord(entry)
			if err != nil {
				return entities.SpellSet{}, err
			}
			set.Levels[lvl] = append(set.Levels[lvl], spell)
		}
	}
	return set, nil
}

func spellRecord(entry *etree.Element) (entities.SpellRecord, error) {
	name, err := requiredText(entry, "name")
	if err != nil {
		return entities.SpellRecord{}, err
	}
	return entities.SpellRecord{
		Name:     name,
		Range:    optionalText(entry, "range"),
		Save:     optionalText(entry, "save"),
		School:   SpellSchool(optionalText(entry, "school")),
		Duration: optionalText(entry, "duration"),
		SR:       optionalText(entry, "sr"),
		Summary:  optionalText(entry, "shortdescription"),
	}, nil
}

// SpellSchool keeps the first word of the school field, lower-cased:
// "Evocation [Fire]" becomes "evocation".
func SpellSchool(raw string) string {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return ""
	}
	return strings.ToLower(fields[0])
}
