// Package formpdf overlays resolved field values onto a paginated PDF form
package formpdf

import (
	"io"
	"os"

	"github.com/jung-kurt/gofpdf"
	"github.com/jung-kurt/gofpdf/contrib/gofpdi"
	"go.uber.org/zap"

	"github.com/KirkDiggler/rpg-sheetfill/internal/errors"
	"github.com/KirkDiggler/rpg-sheetfill/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-sheetfill/internal/services/fields"
)

const pdfMagic = "%PDF-"

//go:generate mockgen -destination=mock/mock_renderer.go -package=formpdfmock github.com/KirkDiggler/rpg-sheetfill/internal/clients/formpdf Renderer

// Renderer writes a filled form to output
type Renderer interface {
	Render(values fields.Values, output string) error
}

// Config holds the dependencies for the PDF renderer
type Config struct {
	// Layout defaults to the embedded layout when nil
	Layout *Layout
	// TemplatePath is the blank form whose pages are overlaid. When empty the
	// values are drawn on blank pages.
	TemplatePath string
	Clock        clock.Clock
	Logger       *zap.Logger
	// Uncompressed disables stream compression in the written file
	Uncompressed bool
}

// Validate validates the config
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.Logger == nil {
		vb.RequiredField("Logger")
	}
	if err := vb.Build(); err != nil {
		return err
	}

	if c.Layout != nil {
		return c.Layout.Validate()
	}
	return nil
}

type renderer struct {
	layout       *Layout
	templatePath string
	clock        clock.Clock
	logger       *zap.Logger
	compress     bool
}

// NewRenderer creates a gofpdf backed renderer
func NewRenderer(cfg *Config) (Renderer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	layout := cfg.Layout
	if layout == nil {
		var err error
		if layout, err = DefaultLayout(); err != nil {
			return nil, err
		}
	}

	if cfg.TemplatePath != "" {
		if err := checkTemplate(cfg.TemplatePath); err != nil {
			return nil, err
		}
	}

	return &renderer{
		layout:       layout,
		templatePath: cfg.TemplatePath,
		clock:        cfg.Clock,
		logger:       cfg.Logger,
		compress:     !cfg.Uncompressed,
	}, nil
}

// checkTemplate makes sure the template is readable and looks like a PDF
// before any page is imported
func checkTemplate(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeIO, "template not readable").WithMeta("path", path)
	}
	defer f.Close()

	header := make([]byte, len(pdfMagic))
	if _, err := io.ReadFull(f, header); err != nil || string(header) != pdfMagic {
		return errors.IO("template is not a pdf").WithMeta("path", path)
	}
	return nil
}

// Render draws every page of the layout and writes the document to output
func (r *renderer) Render(values fields.Values, output string) error {
	if output == "" {
		return errors.InvalidArgument("output path is required")
	}

	pdf := gofpdf.New("P", r.layout.Unit, r.layout.PageSize, "")
	pdf.SetCreationDate(r.clock.Now())
	pdf.SetCompression(r.compress)
	pdf.SetAutoPageBreak(false, 0)
	translate := pdf.UnicodeTranslatorFromDescriptor("")

	drawn := 0
	for i, page := range r.layout.Pages {
		pdf.AddPage()
		if r.templatePath != "" {
			if err := r.overlayTemplate(pdf, i+1); err != nil {
				return err
			}
		}
		drawn += r.drawPage(pdf, page, values, translate)
	}

	if err := pdf.Error(); err != nil {
		return errors.WrapWithCode(err, errors.CodeInternal, "failed to compose pdf")
	}
	if err := r.write(pdf, output); err != nil {
		return err
	}

	r.logger.Debug("rendered form",
		zap.String("output", output),
		zap.Int("pages", len(r.layout.Pages)),
		zap.Int("fields", drawn),
		zap.Int("values", len(values)))
	return nil
}

// overlayTemplate places template page n under the current page. The
// importer panics on unreadable or malformed templates.
func (r *renderer) overlayTemplate(pdf *gofpdf.Fpdf, n int) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = errors.IOf("failed to import template page %d: %v", n, p).
				WithMeta("path", r.templatePath)
		}
	}()

	tpl := gofpdi.ImportPage(pdf, r.templatePath, n, "/MediaBox")
	w, h := pdf.GetPageSize()
	gofpdi.UseImportedTemplate(pdf, tpl, 0, 0, w, h)
	return nil
}

func (r *renderer) drawPage(pdf *gofpdf.Fpdf, page Page, values fields.Values, translate func(string) string) int {
	drawn := 0
	text := func(x, y, size float64, value string) {
		if value == "" {
			return
		}
		if size <= 0 {
			size = r.layout.Size
		}
		pdf.SetFont(r.layout.Font, "", size)
		pdf.Text(x, y, translate(value))
		drawn++
	}

	for _, f := range page.Fields {
		text(f.X, f.Y, f.Size, values.Get(f.Key))
	}
	for _, list := range page.Lists {
		for row := 0; row < list.Rows; row++ {
			y := list.Y + float64(row)*list.Step
			for _, col := range list.Columns {
				text(col.X, y, list.Size, values.Get(fields.Key(list.Prefix, row, col.Field)))
			}
		}
	}
	return drawn
}

func (r *renderer) write(pdf *gofpdf.Fpdf, output string) error {
	f, err := os.Create(output)
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeIO, "failed to create output").WithMeta("path", output)
	}

	if err := pdf.Output(f); err != nil {
		_ = f.Close()
		return errors.WrapWithCode(err, errors.CodeIO, "failed to write output").WithMeta("path", output)
	}
	if err := f.Close(); err != nil {
		return errors.WrapWithCode(err, errors.CodeIO, "failed to close output").WithMeta("path", output)
	}
	return nil
}
