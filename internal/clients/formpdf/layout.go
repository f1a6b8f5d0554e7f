package formpdf

import (
	_ "embed"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-sheetfill/internal/errors"
)

//go:embed layout.yaml
var defaultLayout []byte

// Layout places field values on form pages. Coordinates are in Unit and
// measured from the top-left corner of the page; y is the text baseline.
type Layout struct {
	Font     string  `yaml:"font"`
	Size     float64 `yaml:"size"`
	PageSize string  `yaml:"page_size"`
	Unit     string  `yaml:"unit"`
	Pages    []Page  `yaml:"pages"`
}

// Page is one form page. Its index selects the template page it overlays.
type Page struct {
	Name   string  `yaml:"name"`
	Fields []Field `yaml:"fields"`
	Lists  []List  `yaml:"lists"`
}

// Field is a single value drawn at a fixed position
type Field struct {
	Key  string  `yaml:"key"`
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
	Size float64 `yaml:"size,omitempty"`
}

// List draws rows of a repeating block. Row n of column c reads the value
// "<prefix>.<n>.<c.field>" and is drawn at (c.x, y + n*step).
type List struct {
	Prefix  string   `yaml:"prefix"`
	Y       float64  `yaml:"y"`
	Step    float64  `yaml:"step"`
	Rows    int      `yaml:"rows"`
	Size    float64  `yaml:"size,omitempty"`
	Columns []Column `yaml:"columns"`
}

// Column is one value within a list row
type Column struct {
	Field string  `yaml:"field"`
	X     float64 `yaml:"x"`
}

// DefaultLayout returns the layout shipped with the binary
func DefaultLayout() (*Layout, error) {
	layout, err := decodeLayout(defaultLayout)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load default layout")
	}
	return layout, nil
}

// LoadLayout reads a layout file
func LoadLayout(path string) (*Layout, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeIO, "failed to open layout").WithMeta("path", path)
	}
	defer f.Close()

	layout, err := ParseLayout(f)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load layout").WithMeta("path", path)
	}
	return layout, nil
}

// ParseLayout decodes and validates a YAML layout
func ParseLayout(r io.Reader) (*Layout, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeIO, "failed to read layout")
	}
	return decodeLayout(data)
}

func decodeLayout(data []byte) (*Layout, error) {
	var layout Layout
	if err := yaml.Unmarshal(data, &layout); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid layout yaml")
	}
	if layout.PageSize == "" {
		layout.PageSize = "Letter"
	}
	if layout.Unit == "" {
		layout.Unit = "pt"
	}
	if err := layout.Validate(); err != nil {
		return nil, err
	}
	return &layout, nil
}

// Validate checks the layout can be drawn
func (l *Layout) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("font", l.Font, vb)
	if l.Size <= 0 {
		vb.InvalidField("size", "must be positive")
	}
	errors.ValidateEnum("unit", l.Unit, []string{"pt", "mm", "cm", "in"}, vb)
	if len(l.Pages) == 0 {
		vb.RequiredField("pages")
	}

	for i, page := range l.Pages {
		for j, f := range page.Fields {
			errors.ValidateRequired(fmt.Sprintf("pages[%d].fields[%d].key", i, j), f.Key, vb)
		}
		for j, list := range page.Lists {
			name := fmt.Sprintf("pages[%d].lists[%d]", i, j)
			errors.ValidateRequired(name+".prefix", list.Prefix, vb)
			if list.Rows <= 0 {
				vb.InvalidField(name+".rows", "must be positive")
			}
			if list.Step <= 0 {
				vb.InvalidField(name+".step", "must be positive")
			}
			if len(list.Columns) == 0 {
				vb.RequiredField(name + ".columns")
			}
		}
	}

	return vb.Build()
}
