// Package formula resolves spell duration and range formulas such as
// "1 round/level" or "Medium (100 ft. + 10 ft./level)" against a caster level.
//
// The grammar is narrow and mirrors the phrasing used by the character
// builder. Evaluation proceeds in a fixed order:
//
//  1. lower-case the formula
//  2. strip a trailing "(d)" dismissible marker
//  3. keep only the first parenthesised clause, if any
//  4. drop everything up to the first comma
//  5. keep what follows "up to", or else pick the numeric branch of an "or"
//  6. split into "base + variable", a pure "variable", or a constant
//  7. compute base + constant * multiplier and pluralise the unit
package formula

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-sheetfill/internal/errors"
)

const (
	dismissible = "(d)"
	upTo        = "up to"
	perLevel    = "level"
	perLevels   = "levels"

	displayPrecision = 2
)

var orWord = regexp.MustCompile(`\bor\b`)

// Result is a resolved formula. Numeric results carry a value and an optional
// unit; formulas that are plain words ("instantaneous", "see text") are kept
// as Text.
type Result struct {
	Value   float64
	Unit    string
	Text    string
	Numeric bool

	// Ambiguous is set when an "or" formula had a digit in both branches or
	// in neither, and the first branch was kept.
	Ambiguous bool
}

// String renders the result for display, e.g. "5 rounds" or "37.5 ft."
func (r Result) String() string {
	if !r.Numeric {
		return r.Text
	}
	value := formatNumber(r.Value)
	if r.Unit == "" {
		return value
	}
	return value + " " + Pluralize(r.Unit, r.Value)
}

// Format evaluates formula and renders the result
func Format(formula string, level int) (string, error) {
	r, err := Evaluate(formula, level)
	if err != nil {
		return "", err
	}
	return r.String(), nil
}

// Evaluate resolves formula for the given level
func Evaluate(formula string, level int) (Result, error) {
	s := strings.TrimSpace(strings.ToLower(formula))
	if s == "" {
		return Result{}, parseError(formula, "formula is empty")
	}

	if strings.HasSuffix(s, dismissible) {
		s = strings.TrimSpace(strings.TrimSuffix(s, dismissible))
	}
	s = innerClause(s)
	if i := strings.Index(s, ","); i >= 0 {
		s = s[i+1:]
	}

	var result Result
	if i := strings.Index(s, upTo); i >= 0 {
		s = s[i+len(upTo):]
	} else if orWord.MatchString(s) {
		s, result.Ambiguous = pickAlternative(s)
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return Result{}, parseError(formula, "nothing left to evaluate")
	}

	fixed, scaled := s, ""
	if i := strings.Index(s, "+"); i >= 0 {
		fixed, scaled = s[:i], s[i+1:]
	} else if strings.Contains(s, "/") {
		fixed, scaled = "", s
	}

	base := parseBase(fixed)

	if scaled == "" {
		if !base.numeric {
			result.Text = s
			return result, nil
		}
		result.Numeric = true
		result.Value = base.value
		result.Unit = base.unit
		return result, nil
	}

	if !base.numeric {
		return Result{}, parseError(formula, fmt.Sprintf("base %q is not a number", base.text))
	}
	variable, err := parseVariable(scaled, level)
	if err != nil {
		return Result{}, parseError(formula, err.Error())
	}

	result.Numeric = true
	result.Value = base.value + variable.constant*variable.multiplier
	result.Unit = base.unit
	if result.Unit == "" {
		result.Unit = variable.unit
	}
	return result, nil
}

// Pluralize returns the unit as displayed next to value. "ft." and units
// already ending in "s" never change; a trailing period stays last.
func Pluralize(unit string, value float64) string {
	if value == 1 || strings.HasSuffix(unit, "s") || unit == "ft." {
		return unit
	}
	if strings.HasSuffix(unit, ".") {
		return strings.TrimSuffix(unit, ".") + "s."
	}
	return unit + "s"
}

// innerClause returns the text between the first "(" and the next ")"
func innerClause(s string) string {
	open := strings.Index(s, "(")
	if open < 0 {
		return s
	}
	end := strings.Index(s[open+1:], ")")
	if end < 0 {
		return s
	}
	return s[open+1 : open+1+end]
}

// pickAlternative keeps the branch of "a or b" that mentions a number. When
// both or neither do, the first branch wins and the choice is flagged.
func pickAlternative(s string) (string, bool) {
	parts := orWord.Split(s, 2)
	first, second := parts[0], parts[1]
	firstNumeric, secondNumeric := hasDigit(first), hasDigit(second)

	switch {
	case firstNumeric && !secondNumeric:
		return first, false
	case secondNumeric && !firstNumeric:
		return second, false
	default:
		return first, true
	}
}

func hasDigit(s string) bool {
	return strings.ContainsAny(s, "0123456789")
}

type baseValue struct {
	value   float64
	text    string
	unit    string
	numeric bool
}

// parseBase reads "<constant> <unit>" from the last two words of term. An
// empty term is the constant 0. A constant that is not an integer is kept
// as text.
func parseBase(term string) baseValue {
	fields := strings.Fields(term)
	if len(fields) == 0 {
		return baseValue{numeric: true}
	}

	b := baseValue{text: fields[0]}
	if len(fields) >= 2 {
		b.text, b.unit = fields[len(fields)-2], fields[len(fields)-1]
	}
	n, err := strconv.Atoi(b.text)
	if err != nil {
		return b
	}
	b.value = float64(n)
	b.numeric = true
	return b
}

type scaledValue struct {
	constant   float64
	unit       string
	multiplier float64
}

// parseVariable reads "<constant> <unit>/<multiplier>" where the multiplier
// is "level", "<N> levels" or an integer.
func parseVariable(term string, level int) (scaledValue, error) {
	slash := strings.Index(term, "/")
	if slash < 0 {
		return scaledValue{}, fmt.Errorf("variable term %q has no per-level part", strings.TrimSpace(term))
	}
	left := strings.TrimSpace(term[:slash])
	right := strings.TrimSpace(term[slash+1:])

	var v scaledValue
	constant := left
	if i := strings.IndexAny(left, " \t"); i >= 0 {
		constant, v.unit = left[:i], strings.TrimSpace(left[i:])
	}
	n, err := strconv.Atoi(constant)
	if err != nil {
		return scaledValue{}, fmt.Errorf("constant %q is not a number", constant)
	}
	v.constant = float64(n)

	v.multiplier, err = multiplier(right, level)
	if err != nil {
		return scaledValue{}, err
	}
	return v, nil
}

func multiplier(s string, level int) (float64, error) {
	if s == perLevel {
		return float64(level), nil
	}

	fields := strings.Fields(s)
	if len(fields) == 2 && fields[1] == perLevels {
		per, err := strconv.Atoi(fields[0])
		if err != nil || per == 0 {
			return 0, fmt.Errorf("level step %q is not a positive number", fields[0])
		}
		// fractional multipliers are kept, e.g. level 5 at "2 levels" is 2.5
		return float64(level) / float64(per), nil
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("unknown multiplier %q", s)
	}
	return float64(n), nil
}

// formatNumber prints at most two decimals and drops trailing zeros
func formatNumber(v float64) string {
	text := strconv.FormatFloat(v, 'f', displayPrecision, 64)
	if strings.Contains(text, ".") {
		text = strings.TrimRight(strings.TrimRight(text, "0"), ".")
	}
	return text
}

func parseError(formula, reason string) error {
	return errors.FormulaParsef("cannot evaluate %q: %s", formula, reason).
		WithMeta("formula", formula)
}
