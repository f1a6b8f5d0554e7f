package extraction

import (
	"github.com/KirkDiggler/rpg-sheetfill/internal/errors"
)

// DefaultSpellSetID identifies the first spell list of a character
const DefaultSpellSetID = "id-00001"

// Schema lists the element names that drive iteration over the fixed sections
// of an export, in display order. Tests substitute smaller schemas.
type Schema struct {
	AbilityNames      []string
	SaveNames         []string
	HPTypes           []string
	InitiativeTypes   []string
	ACTotals          []string
	ACSources         []string
	AttackTypes       []string
	EncumbranceFields []string

	// SpellSetID selects the only spell list that is read
	SpellSetID string
}

// DefaultSchema returns the layout written by the character builder
func DefaultSchema() *Schema {
	return &Schema{
		AbilityNames: []string{
			"strength",
			"dexterity",
			"constitution",
			"intelligence",
			"wisdom",
			"charisma",
		},
		SaveNames:       []string{"fortitude", "reflex", "will"},
		HPTypes:         []string{"nonlethal", "temporary", "wounds", "total"},
		InitiativeTypes: []string{"abilitymod", "misc", "temporary", "total"},
		ACTotals:        []string{"general", "flatfooted", "touch", "cmd"},
		ACSources: []string{
			"armor",
			"shield",
			"abilitymod",
			"size",
			"naturalarmor",
			"deflection",
			"dodge",
			"misc",
		},
		AttackTypes: []string{"melee", "ranged", "grapple"},
		EncumbranceFields: []string{
			"load",
			"lightload",
			"mediumload",
			"heavyload",
			"liftoverhead",
			"liftoffground",
			"pushordrag",
		},
		SpellSetID: DefaultSpellSetID,
	}
}

// Validate ensures the schema can drive an extraction
func (s *Schema) Validate() error {
	vb := errors.NewValidationBuilder()

	if len(s.AbilityNames) == 0 {
		vb.RequiredField("AbilityNames")
	}
	if len(s.SaveNames) == 0 {
		vb.RequiredField("SaveNames")
	}
	errors.ValidateRequired("SpellSetID", s.SpellSetID, vb)

	return vb.Build()
}
