package extraction

import (
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/KirkDiggler/rpg-sheetfill/internal/entities"
	"github.com/KirkDiggler/rpg-sheetfill/internal/errors"
	"github.com/KirkDiggler/rpg-sheetfill/internal/xmlnode"
)

// Skills reads the skill list. A skill with a sub-label is keyed as
// "label (sublabel)".
func (s *Schema) Skills(character *etree.Element) ([]entities.Skill, error) {
	list, err := child(character, "skilllist")
	if err != nil {
		return nil, err
	}

	entries := xmlnode.ChildElements(list)
	skills := make([]entities.Skill, 0, len(entries))
	for _, entry := range entries {
		label, err := requiredText(entry, "label")
		if err != nil {
			return nil, err
		}
		total, err := requiredInt(entry, "total")
		if err != nil {
			return nil, err
		}
		ranks, err := optionalInt(entry, "ranks")
		if err != nil {
			return nil, err
		}
		misc, err := optionalInt(entry, "misc")
		if err != nil {
			return nil, err
		}

		var sublabel *string
		if sub := optionalText(entry, "sublabel"); sub != "" {
			sublabel = &sub
		}

		skills = append(skills, entities.Skill{
			Name:     entities.SkillName(label, sublabel),
			Label:    label,
			Sublabel: sublabel,
			Total:    total,
			Ranks:    intOr(ranks, 0),
			Misc:     intOr(misc, 0),
			Stat:     optionalText(entry, "stat"),
		})
	}
	return skills, nil
}

// Inventory reads the carried and stored items. An item without a count is
// a single item.
func (s *Schema) Inventory(character *etree.Element) ([]entities.Item, error) {
	list, err := child(character, "inventorylist")
	if err != nil {
		return nil, err
	}

	entries := xmlnode.ChildElements(list)
	items := make([]entities.Item, 0, len(entries))
	for _, entry := range entries {
		name, err := requiredText(entry, "name")
		if err != nil {
			return nil, err
		}
		count, err := optionalInt(entry, "count")
		if err != nil {
			return nil, err
		}

		var weight float64
		if raw := optionalText(entry, "weight"); raw != "" {
			weight, err = strconv.ParseFloat(raw, 64)
			if err != nil {
				path := xmlnode.Path(entry, "weight")
				return nil, errors.Structuralf("element %s is not a number", path).
					WithMeta("path", path).
					WithMeta("value", raw)
			}
		}

		items = append(items, entities.Item{
			Name:     name,
			Count:    intOr(count, 1),
			Weight:   weight,
			Location: optionalText(entry, "location"),
			Carried:  optionalText(entry, "carried"),
		})
	}
	return items, nil
}

// Feats reads the feat list
func (s *Schema) Feats(character *etree.Element) ([]entities.Feat, error) {
	list, err := child(character, "featlist")
	if err != nil {
		return nil, err
	}

	entries := xmlnode.ChildElements(list)
	feats := make([]entities.Feat, 0, len(entries))
	for _, entry := range entries {
		name, err := requiredText(entry, "name")
		if err != nil {
			return nil, err
		}
		feats = append(feats, entities.Feat{
			Name:    name,
			Summary: optionalText(entry, "summary"),
		})
	}
	return feats, nil
}

// Traits reads the racial traits, keeping the first sentence of each body
func (s *Schema) Traits(character *etree.Element) ([]entities.Trait, error) {
	return traitList(character, "traitlist")
}

// SpecialAbilities reads class special abilities in the same shape as traits
func (s *Schema) SpecialAbilities(character *etree.Element) ([]entities.Trait, error) {
	return traitList(character, "specialabilitylist")
}

func traitList(character *etree.Element, tag string) ([]entities.Trait, error) {
	list, err := child(character, tag)
	if err != nil {
		return nil, err
	}

	entries := xmlnode.ChildElements(list)
	traits := make([]entities.Trait, 0, len(entries))
	for _, entry := range entries {
		name, err := requiredText(entry, "name")
		if err != nil {
			return nil, err
		}
		body := xmlnode.InnerText(xmlnode.FirstChildNamed(entry, "text"))
		traits = append(traits, entities.Trait{
			Name:        name,
			Description: firstSentence(body),
		})
	}
	return traits, nil
}

// Languages reads language names, skipping entries without one
func (s *Schema) Languages(character *etree.Element) ([]string, error) {
	return nameList(character, "languagelist")
}

// Proficiencies reads weapon and armor proficiency names
func (s *Schema) Proficiencies(character *etree.Element) ([]string, error) {
	return nameList(character, "proficiencylist")
}

func nameList(character *etree.Element, tag string) ([]string, error) {
	list, err := child(character, tag)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, entry := range xmlnode.ChildElements(list) {
		if name, ok := xmlnode.TextOf(xmlnode.FirstChildNamed(entry, "name")); ok {
			names = append(names, strings.TrimSpace(name))
		}
	}
	return names, nil
}
