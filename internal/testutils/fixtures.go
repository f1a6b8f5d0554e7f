// Package testutils provides shared helpers for parsing test documents
package testutils

import (
	"strings"
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-sheetfill/internal/testutils/builders"
	"github.com/KirkDiggler/rpg-sheetfill/internal/xmlnode"
)

// TestCharacterName is the name of the default fixture character
const TestCharacterName = "Simone"

// ParseCharacter parses a document and returns its character element
func ParseCharacter(t *testing.T, doc string) *etree.Element {
	t.Helper()
	character, err := xmlnode.Parse(strings.NewReader(doc))
	require.NoError(t, err, "failed to parse fixture document")
	return character
}

// DefaultCharacter returns the character element of the default fixture
func DefaultCharacter(t *testing.T) *etree.Element {
	t.Helper()
	return ParseCharacter(t, builders.NewCharacterXMLBuilder().Build())
}
