package main

import (
	"go.uber.org/zap"

	"github.com/KirkDiggler/rpg-sheetfill/internal/clients/formpdf"
	"github.com/KirkDiggler/rpg-sheetfill/internal/config"
	"github.com/KirkDiggler/rpg-sheetfill/internal/orchestrators/conversion"
	"github.com/KirkDiggler/rpg-sheetfill/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-sheetfill/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-sheetfill/internal/services/extraction"
	"github.com/KirkDiggler/rpg-sheetfill/internal/services/fields"
)

// newService wires the conversion orchestrator from the resolved config
func newService(cfg *config.Config, logger *zap.Logger) (conversion.Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var layout *formpdf.Layout
	if cfg.Layout != "" {
		var err error
		if layout, err = formpdf.LoadLayout(cfg.Layout); err != nil {
			return nil, err
		}
	}

	renderer, err := formpdf.NewRenderer(&formpdf.Config{
		Layout:       layout,
		TemplatePath: cfg.Template,
		Clock:        clock.FromEpoch(cfg.SourceDateEpoch),
		Logger:       logger.Named("formpdf"),
	})
	if err != nil {
		return nil, err
	}
	return newOrchestrator(renderer, logger)
}

// newEvalService wires an orchestrator for formula evaluation only. It never
// reads the template or layout files, so stale form settings cannot fail it.
func newEvalService(logger *zap.Logger) (conversion.Service, error) {
	renderer, err := formpdf.NewRenderer(&formpdf.Config{
		Clock:  clock.New(),
		Logger: logger.Named("formpdf"),
	})
	if err != nil {
		return nil, err
	}
	return newOrchestrator(renderer, logger)
}

func newOrchestrator(renderer formpdf.Renderer, logger *zap.Logger) (conversion.Service, error) {
	extractor, err := extraction.NewExtractor(&extraction.Config{})
	if err != nil {
		return nil, err
	}

	return conversion.NewOrchestrator(&conversion.Config{
		Extractor:   extractor,
		Renderer:    renderer,
		Fields:      fields.NewBuilder(),
		IDGenerator: idgen.NewUUID("run"),
		Logger:      logger.Named("conversion"),
	})
}
