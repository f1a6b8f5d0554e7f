package extraction

import (
	"github.com/beevik/etree"

	"github.com/KirkDiggler/rpg-sheetfill/internal/entities"
)

// Extractor maps a character element into a CharacterRecord.
// Extraction is pure: the same element always yields an equal record, and a
// failure never yields a partial record.
//
//go:generate mockgen -destination=mock/mock_extractor.go -package=extractionmock github.com/KirkDiggler/rpg-sheetfill/internal/services/extraction Extractor
type Extractor interface {
	Extract(character *etree.Element) (*entities.CharacterRecord, error)
}
