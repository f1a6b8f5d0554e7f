package extraction

import (
	"github.com/beevik/etree"

	"github.com/KirkDiggler/rpg-sheetfill/internal/entities"
	"github.com/KirkDiggler/rpg-sheetfill/internal/xmlnode"
)

// Profile reads the scalar leaves. Name and level must be present; the
// descriptive leaves are often left out by the builder and read as "".
func (s *Schema) Profile(character *etree.Element) (entities.Profile, error) {
	name, err := requiredText(character, "name")
	if err != nil {
		return entities.Profile{}, err
	}
	level, err := requiredInt(character, "level")
	if err != nil {
		return entities.Profile{}, err
	}

	return entities.Profile{
		Name:       name,
		Level:      level,
		ClassLevel: optionalText(character, "classlevel"),
		Race:       optionalText(character, "race"),
		Deity:      optionalText(character, "deity"),
		Alignment:  optionalText(character, "alignment"),
		Size:       optionalText(character, "size"),
		Age:        optionalText(character, "age"),
		Appearance: optionalText(character, "appearance"),
		Gender:     optionalText(character, "gender"),
		Height:     optionalText(character, "height"),
		Weight:     optionalText(character, "weight"),
		Speed:      s.Speed(character),
	}, nil
}

// Speed reads the movement speed. Older exports store it as text on the
// speed element itself, newer ones split it into base and final.
func (s *Schema) Speed(character *etree.Element) string {
	speed := xmlnode.FirstChildNamed(character, "speed")
	if text, ok := xmlnode.TextOf(speed); ok {
		return text
	}
	if final := optionalText(speed, "final"); final != "" {
		return final
	}
	return optionalText(speed, "base")
}

// Abilities reads score and bonus for every ability in schema order
func (s *Schema) Abilities(character *etree.Element) ([]entities.Ability, error) {
	section, err := child(character, "abilities")
	if err != nil {
		return nil, err
	}

	abilities := make([]entities.Ability, 0, len(s.AbilityNames))
	for _, name := range s.AbilityNames {
		score, err := requiredInt(section, name, "score")
		if err != nil {
			return nil, err
		}
		bonus, err := requiredInt(section, name, "bonus")
		if err != nil {
			return nil, err
		}
		abilities = append(abilities, entities.Ability{Name: name, Score: score, Bonus: bonus})
	}
	return abilities, nil
}

// Saves reads the total of each saving throw
func (s *Schema) Saves(character *etree.Element) (entities.NamedValues, error) {
	section, err := child(character, "saves")
	if err != nil {
		return nil, err
	}
	return namedValues(section, s.SaveNames, "total")
}

// HP reads the hit point counters
func (s *Schema) HP(character *etree.Element) (entities.NamedValues, error) {
	section, err := child(character, "hp")
	if err != nil {
		return nil, err
	}
	return namedValues(section, s.HPTypes)
}

// Initiative reads the initiative components and total
func (s *Schema) Initiative(character *etree.Element) (entities.NamedValues, error) {
	section, err := child(character, "initiative")
	if err != nil {
		return nil, err
	}
	return namedValues(section, s.InitiativeTypes)
}

// Encumbrance reads the carrying capacity thresholds
func (s *Schema) Encumbrance(character *etree.Element) (entities.NamedValues, error) {
	section, err := child(character, "encumbrance")
	if err != nil {
		return nil, err
	}
	return namedValues(section, s.EncumbranceFields)
}

// AC reads the armor class totals and the contributing sources. Totals are
// required; a source the builder left out is skipped.
func (s *Schema) AC(character *etree.Element) (entities.ArmorClass, error) {
	totalsEl, err := descend(character, "ac", "totals")
	if err != nil {
		return entities.ArmorClass{}, err
	}
	totals, err := namedValues(totalsEl, s.ACTotals)
	if err != nil {
		return entities.ArmorClass{}, err
	}

	sourcesEl, err := descend(character, "ac", "sources")
	if err != nil {
		return entities.ArmorClass{}, err
	}
	var sources entities.NamedValues
	for _, name := range s.ACSources {
		n, err := optionalInt(sourcesEl, name)
		if err != nil {
			return entities.ArmorClass{}, err
		}
		if n != nil {
			sources = append(sources, entities.NamedValue{Name: name, Value: *n})
		}
	}

	return entities.ArmorClass{Totals: totals, Sources: sources}, nil
}

// AttackBonus reads the base attack bonus and the total for each attack type
func (s *Schema) AttackBonus(character *etree.Element) (entities.AttackBonus, error) {
	section, err := child(character, "attackbonus")
	if err != nil {
		return entities.AttackBonus{}, err
	}
	base, err := requiredInt(section, "base")
	if err != nil {
		return entities.AttackBonus{}, err
	}

	totals := make(entities.NamedValues, 0, len(s.AttackTypes))
	for _, name := range s.AttackTypes {
		n, err := requiredInt(section, name, "total")
		if err != nil {
			return entities.AttackBonus{}, err
		}
		totals = append(totals, entities.NamedValue{Name: name, Value: n})
	}
	return entities.AttackBonus{Base: base, Totals: totals}, nil
}

// Defenses reads damage reduction and spell resistance
func (s *Schema) Defenses(character *etree.Element) (entities.Defenses, error) {
	section, err := child(character, "defenses")
	if err != nil {
		return entities.Defenses{}, err
	}
	sr, err := optionalInt(section, "sr", "total")
	if err != nil {
		return entities.Defenses{}, err
	}
	return entities.Defenses{
		DamageReduction: optionalText(section, "damagereduction"),
		SpellResistance: sr,
	}, nil
}

// namedValues reads one integer per name from section. When path is given
// each value lives under section/name/path.
func namedValues(section *etree.Element, names []string, path ...string) (entities.NamedValues, error) {
	values := make(entities.NamedValues, 0, len(names))
	for _, name := range names {
		n, err := requiredInt(section, append([]string{name}, path...)...)
		if err != nil {
			return nil, err
		}
		values = append(values, entities.NamedValue{Name: name, Value: n})
	}
	return values, nil
}
