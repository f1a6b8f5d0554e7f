// Package xmlnode provides read-only lookups over a parsed character document.
//
// The helpers never panic on a nil node so callers can chain lookups for
// optional fields and check the result once.
package xmlnode

import (
	"io"
	"os"
	"strings"

	"github.com/beevik/etree"
	"golang.org/x/net/html/charset"

	"github.com/KirkDiggler/rpg-sheetfill/internal/errors"
)

// CharacterTag is the element holding a single character export
const CharacterTag = "character"

// FirstChildNamed returns the first direct child of node whose tag equals tag,
// or nil when there is none.
func FirstChildNamed(node *etree.Element, tag string) *etree.Element {
	if node == nil {
		return nil
	}
	return node.SelectElement(tag)
}

// ChildrenNamed returns all direct children of node with the given tag in document order.
func ChildrenNamed(node *etree.Element, tag string) []*etree.Element {
	if node == nil {
		return nil
	}
	return node.SelectElements(tag)
}

// ChildElements returns every direct element child of node in document order.
func ChildElements(node *etree.Element) []*etree.Element {
	if node == nil {
		return nil
	}
	return node.ChildElements()
}

// TextOf returns the direct text content of node. The second return is false
// when node is nil or carries no non-blank text.
func TextOf(node *etree.Element) (string, bool) {
	if node == nil {
		return "", false
	}
	text := node.Text()
	if strings.TrimSpace(text) == "" {
		return "", false
	}
	return text, true
}

// InnerText returns the text of node and all of its descendants. Text from
// separate child elements is joined with a single space.
func InnerText(node *etree.Element) string {
	if node == nil {
		return ""
	}
	var parts []string
	collectText(node, &parts)
	return strings.Join(parts, " ")
}

func collectText(node *etree.Element, parts *[]string) {
	for _, tok := range node.Child {
		switch t := tok.(type) {
		case *etree.CharData:
			if s := strings.TrimSpace(t.Data); s != "" {
				*parts = append(*parts, s)
			}
		case *etree.Element:
			collectText(t, parts)
		}
	}
}

// Path returns the slash separated location of a child tag under parent,
// used when reporting missing elements.
func Path(parent *etree.Element, tag string) string {
	if parent == nil {
		return tag
	}
	return strings.TrimPrefix(parent.GetPath(), "/") + "/" + tag
}

// ParseFile reads the document at path and returns its character element.
func ParseFile(path string) (*etree.Element, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeIO, "failed to open character document").
			WithMeta("path", path)
	}
	defer func() {
		_ = f.Close() // nolint:errcheck // read-only handle
	}()

	character, err := Parse(f)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", path).WithMeta("path", path)
	}
	return character, nil
}

// Parse decodes a document from r and returns its character element, which
// may be the document root or a direct child of it.
func Parse(r io.Reader) (*etree.Element, error) {
	doc := etree.NewDocument()
	// Builder exports declare iso-8859-1
	doc.ReadSettings.CharsetReader = charset.NewReaderLabel
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeStructural, "document is not well-formed XML")
	}

	root := doc.Root()
	if root == nil {
		return nil, errors.Structural("document has no root element")
	}
	if root.Tag == CharacterTag {
		return root, nil
	}

	character := FirstChildNamed(root, CharacterTag)
	if character == nil {
		return nil, errors.MissingElement(Path(root, CharacterTag))
	}
	return character, nil
}
