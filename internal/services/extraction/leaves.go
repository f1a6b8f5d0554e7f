package extraction

import (
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/KirkDiggler/rpg-sheetfill/internal/errors"
	"github.com/KirkDiggler/rpg-sheetfill/internal/xmlnode"
)

// child returns the named child or a structural error naming its path
func child(parent *etree.Element, tag string) (*etree.Element, error) {
	el := xmlnode.FirstChildNamed(parent, tag)
	if el == nil {
		return nil, errors.MissingElement(xmlnode.Path(parent, tag))
	}
	return el, nil
}

// descend walks a chain of required children
func descend(parent *etree.Element, tags ...string) (*etree.Element, error) {
	el := parent
	for _, tag := range tags {
		next, err := child(el, tag)
		if err != nil {
			return nil, err
		}
		el = next
	}
	return el, nil
}

// requiredText returns the trimmed text of a child that must exist. The text
// itself may be empty.
func requiredText(parent *etree.Element, tag string) (string, error) {
	el, err := child(parent, tag)
	if err != nil {
		return "", err
	}
	text, _ := xmlnode.TextOf(el)
	return strings.TrimSpace(text), nil
}

// optionalText returns the trimmed text of a child, or "" when it is absent
func optionalText(parent *etree.Element, tag string) string {
	text, _ := xmlnode.TextOf(xmlnode.FirstChildNamed(parent, tag))
	return strings.TrimSpace(text)
}

// requiredInt reads a numeric leaf that must exist. An empty leaf reads as 0.
func requiredInt(parent *etree.Element, tags ...string) (int, error) {
	el, err := descend(parent, tags...)
	if err != nil {
		return 0, err
	}
	n, _, err := toInt(el)
	return n, err
}

// optionalInt reads a numeric leaf that may be absent or empty
func optionalInt(parent *etree.Element, tags ...string) (*int, error) {
	el := parent
	for _, tag := range tags {
		el = xmlnode.FirstChildNamed(el, tag)
	}
	if el == nil {
		return nil, nil
	}
	n, ok, err := toInt(el)
	if err != nil || !ok {
		return nil, err
	}
	return &n, nil
}

func toInt(el *etree.Element) (int, bool, error) {
	text, ok := xmlnode.TextOf(el)
	if !ok {
		return 0, false, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		path := strings.TrimPrefix(el.GetPath(), "/")
		return 0, false, errors.Structuralf("element %s is not a number", path).
			WithMeta("path", path).
			WithMeta("value", text)
	}
	return n, true, nil
}

func intOr(n *int, fallback int) int {
	if n == nil {
		return fallback
	}
	return *n
}

// firstSentence keeps text up to and including the first period
func firstSentence(text string) string {
	text = strings.TrimSpace(text)
	if i := strings.Index(text, "."); i >= 0 {
		return text[:i+1]
	}
	return text
}
