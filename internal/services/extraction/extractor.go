// Package extraction maps a character-builder export into a CharacterRecord.
//
// Each section of the export has its own method on Schema so it can be read
// and tested alone; Extractor composes them into a full record.
package extraction

import (
	"github.com/beevik/etree"

	"github.com/KirkDiggler/rpg-sheetfill/internal/entities"
	"github.com/KirkDiggler/rpg-sheetfill/internal/errors"
)

// Config holds the configuration for creating an extractor
type Config struct {
	// Schema defaults to DefaultSchema when nil
	Schema *Schema
}

// Validate ensures the configuration is valid
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}
	if c.Schema == nil {
		return nil
	}
	return c.Schema.Validate()
}

type extractor struct {
	schema *Schema
}

// NewExtractor creates an extractor for the configured schema
func NewExtractor(cfg *Config) (Extractor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	schema := cfg.Schema
	if schema == nil {
		schema = DefaultSchema()
	}
	return &extractor{schema: schema}, nil
}

// Extract reads every section. The first missing required element aborts
// the extraction and no record is returned.
func (e *extractor) Extract(character *etree.Element) (*entities.CharacterRecord, error) {
	if character == nil {
		return nil, errors.MissingElement("character")
	}

	rec, err := e.extract(character)
	if err != nil {
		return nil, errors.Wrap(err, "failed to extract character")
	}
	return rec, nil
}

func (e *extractor) extract(character *etree.Element) (*entities.CharacterRecord, error) {
	s := e.schema
	rec := &entities.CharacterRecord{}
	var err error

	if rec.Profile, err = s.Profile(character); err != nil {
		return nil, err
	}
	if rec.Abilities, err = s.Abilities(character); err != nil {
		return nil, err
	}
	if rec.Saves, err = s.Saves(character); err != nil {
		return nil, err
	}
	if rec.HP, err = s.HP(character); err != nil {
		return nil, err
	}
	if rec.Initiative, err = s.Initiative(character); err != nil {
		return nil, err
	}
	if rec.AC, err = s.AC(character); err != nil {
		return nil, err
	}
	if rec.AttackBonus, err = s.AttackBonus(character); err != nil {
		return nil, err
	}
	if rec.Defenses, err = s.Defenses(character); err != nil {
		return nil, err
	}
	if rec.Encumbrance, err = s.Encumbrance(character); err != nil {
		return nil, err
	}
	if rec.Skills, err = s.Skills(character); err != nil {
		return nil, err
	}
	if rec.Inventory, err = s.Inventory(character); err != nil {
		return nil, err
	}
	if rec.Weapons, err = s.Weapons(character); err != nil {
		return nil, err
	}
	if rec.SpellSet, err = s.Spells(character); err != nil {
		return nil, err
	}
	if rec.Feats, err = s.Feats(character); err != nil {
		return nil, err
	}
	if rec.Traits, err = s.Traits(character); err != nil {
		return nil, err
	}
	if rec.SpecialAbilities, err = s.SpecialAbilities(character); err != nil {
		return nil, err
	}
	if rec.Languages, err = s.Languages(character); err != nil {
		return nil, err
	}
	if rec.Proficiencies, err = s.Proficiencies(character); err != nil {
		return nil, err
	}
	return rec, nil
}
