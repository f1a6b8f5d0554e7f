// Package conversion runs a character export through extraction and field
// resolution and hands the result to the console report or the form renderer.
package conversion

import (
	"context"

	"go.uber.org/zap"

	"github.com/KirkDiggler/rpg-sheetfill/internal/clients/formpdf"
	"github.com/KirkDiggler/rpg-sheetfill/internal/errors"
	"github.com/KirkDiggler/rpg-sheetfill/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-sheetfill/internal/services/extraction"
	"github.com/KirkDiggler/rpg-sheetfill/internal/services/fields"
	"github.com/KirkDiggler/rpg-sheetfill/internal/services/formula"
	"github.com/KirkDiggler/rpg-sheetfill/internal/services/report"
	"github.com/KirkDiggler/rpg-sheetfill/internal/xmlnode"
)

// Service defines the conversion operations
type Service interface {
	Load(ctx context.Context, input *LoadInput) (*LoadOutput, error)
	Print(ctx context.Context, input *PrintInput) (*PrintOutput, error)
	Fill(ctx context.Context, input *FillInput) (*FillOutput, error)
	Evaluate(ctx context.Context, input *EvaluateInput) (*EvaluateOutput, error)
}

// Config holds the dependencies for the conversion orchestrator
type Config struct {
	Extractor   extraction.Extractor
	Renderer    formpdf.Renderer
	Fields      *fields.Builder
	IDGenerator idgen.Generator
	Logger      *zap.Logger
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()

	if c.Extractor == nil {
		vb.RequiredField("Extractor")
	}
	if c.Renderer == nil {
		vb.RequiredField("Renderer")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Logger == nil {
		vb.RequiredField("Logger")
	}

	return vb.Build()
}

type orchestrator struct {
	extractor extraction.Extractor
	renderer  formpdf.Renderer
	fields    *fields.Builder
	idGen     idgen.Generator
	logger    *zap.Logger
}

// NewOrchestrator creates a conversion orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	builder := cfg.Fields
	if builder == nil {
		builder = fields.NewBuilder()
	}

	return &orchestrator{
		extractor: cfg.Extractor,
		renderer:  cfg.Renderer,
		fields:    builder,
		idGen:     cfg.IDGenerator,
		logger:    cfg.Logger,
	}, nil
}

// Load parses the export, extracts the record and resolves its fields
func (o *orchestrator) Load(ctx context.Context, input *LoadInput) (*LoadOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Path == "" {
		return nil, errors.InvalidArgument("path is required")
	}

	runID := o.idGen.Generate()
	return o.load(ctx, runID, input.Path)
}

func (o *orchestrator) load(ctx context.Context, runID, path string) (*LoadOutput, error) {
	logger := o.logger.With(zap.String("run_id", runID), zap.String("input", path))

	if err := ctx.Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "conversion cancelled")
	}

	character, err := xmlnode.ParseFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read character export")
	}

	record, err := o.extractor.Extract(character)
	if err != nil {
		return nil, errors.Wrap(err, "failed to extract character")
	}

	values, warnings := o.fields.Build(record)
	for _, w := range warnings {
		logger.Warn("formula fell back to raw text",
			zap.String("field", w.Field),
			zap.String("formula", w.Formula),
			zap.String("reason", w.Reason))
	}

	logger.Info("character loaded",
		zap.String("name", record.Name),
		zap.Int("level", record.Level),
		zap.Int("values", len(values)),
		zap.Int("warnings", len(warnings)))

	return &LoadOutput{
		RunID:    runID,
		Record:   record,
		Values:   values,
		Warnings: warnings,
	}, nil
}

// Print writes the console report for the export
func (o *orchestrator) Print(ctx context.Context, input *PrintInput) (*PrintOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Writer == nil {
		return nil, errors.InvalidArgument("writer is required")
	}

	loaded, err := o.Load(ctx, &LoadInput{Path: input.Path})
	if err != nil {
		return nil, err
	}

	if err := report.Write(input.Writer, loaded.Record); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeIO, "failed to write report")
	}

	return &PrintOutput{
		RunID:    loaded.RunID,
		Record:   loaded.Record,
		Warnings: loaded.Warnings,
	}, nil
}

// Fill renders the export onto the form and writes it to the output path
func (o *orchestrator) Fill(ctx context.Context, input *FillInput) (*FillOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Output == "" {
		return nil, errors.InvalidArgument("output is required")
	}

	loaded, err := o.Load(ctx, &LoadInput{Path: input.Path})
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "conversion cancelled")
	}

	if err := o.renderer.Render(loaded.Values, input.Output); err != nil {
		return nil, errors.Wrap(err, "failed to render form")
	}

	o.logger.Info("form written",
		zap.String("run_id", loaded.RunID),
		zap.String("output", input.Output))

	return &FillOutput{
		RunID:    loaded.RunID,
		Output:   input.Output,
		Values:   len(loaded.Values),
		Warnings: loaded.Warnings,
	}, nil
}

// Evaluate resolves a single duration or range formula
func (o *orchestrator) Evaluate(_ context.Context, input *EvaluateInput) (*EvaluateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Level < 0 {
		return nil, errors.InvalidArgumentf("level must not be negative, got %d", input.Level)
	}

	result, err := formula.Evaluate(input.Formula, input.Level)
	if err != nil {
		return nil, err
	}
	if result.Ambiguous {
		o.logger.Warn("ambiguous formula, kept the first alternative",
			zap.String("formula", input.Formula))
	}

	return &EvaluateOutput{Result: result, Text: result.String()}, nil
}
