package conversion

import (
	"io"

	"github.com/KirkDiggler/rpg-sheetfill/internal/entities"
	"github.com/KirkDiggler/rpg-sheetfill/internal/services/fields"
	"github.com/KirkDiggler/rpg-sheetfill/internal/services/formula"
)

// LoadInput names the character export to read
type LoadInput struct {
	Path string
}

// LoadOutput is a parsed, extracted and resolved character
type LoadOutput struct {
	RunID    string
	Record   *entities.CharacterRecord
	Values   fields.Values
	Warnings []fields.Warning
}

// PrintInput names the export and where to write the report
type PrintInput struct {
	Path   string
	Writer io.Writer
}

// PrintOutput reports what was printed
type PrintOutput struct {
	RunID    string
	Record   *entities.CharacterRecord
	Warnings []fields.Warning
}

// FillInput names the export and the PDF to write
type FillInput struct {
	Path   string
	Output string
}

// FillOutput reports the written form
type FillOutput struct {
	RunID    string
	Output   string
	Values   int
	Warnings []fields.Warning
}

// EvaluateInput is a single formula to resolve
type EvaluateInput struct {
	Formula string
	Level   int
}

// EvaluateOutput is the resolved formula
type EvaluateOutput struct {
	Result formula.Result
	Text   string
}
