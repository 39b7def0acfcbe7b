// Package validate decides whether pending form input may become an Item.
package validate

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/idilsaglam/shoplist/internal/model"
)

// Rejections, in the order they are checked.
var (
	ErrRequired  = errors.New("all fields required")
	ErrName      = errors.New("name must be letters/digits")
	ErrUnit      = errors.New("unit must be letters only")
	ErrQuantity  = errors.New("quantity must be numeric")
	ErrDuplicate = errors.New("duplicate item")
)

// space is the whitespace accepted in names and units and trimmed around
// input: ASCII whitespace plus the Unicode space separators, line/paragraph
// separators and the byte order mark.
const space = `\s\v\x{00A0}\x{1680}\x{2000}-\x{200A}\x{2028}\x{2029}\x{202F}\x{205F}\x{3000}\x{FEFF}`

var (
	nameRegexp  = regexp.MustCompile(`^[A-Za-z0-9` + space + `]+$`)
	unitRegexp  = regexp.MustCompile(`^[A-Za-z` + space + `]+$`)
	spaceRegexp = regexp.MustCompile(`^[` + space + `]$`)
)

// Validate checks a pending (name, quantity, unit) triple against the
// current items. The first failing check wins. On success the returned
// Item carries the submitted strings, the parsed quantity and no ID.
func Validate(name, quantity, unit string, existing []model.Item) (model.Item, error) {
	if blank(name) || blank(quantity) || blank(unit) {
		return model.Item{}, ErrRequired
	}
	if !nameRegexp.MatchString(name) {
		return model.Item{}, ErrName
	}
	if !unitRegexp.MatchString(unit) {
		return model.Item{}, ErrUnit
	}
	q, ok := ParseQuantity(quantity)
	if !ok {
		return model.Item{}, ErrQuantity
	}
	if Contains(existing, name) {
		return model.Item{}, ErrDuplicate
	}
	return model.Item{Name: name, Quantity: q, Unit: unit}, nil
}

// IsRejection reports whether err is one of the validation rejections.
func IsRejection(err error) bool {
	for _, r := range []error{ErrRequired, ErrName, ErrUnit, ErrQuantity, ErrDuplicate} {
		if errors.Is(err, r) {
			return true
		}
	}
	return false
}

// Contains reports whether an item named name exists, ignoring case.
func Contains(items []model.Item, name string) bool {
	for _, it := range items {
		if strings.EqualFold(it.Name, name) {
			return true
		}
	}
	return false
}

// ParseQuantity parses user-entered quantity text. Surrounding whitespace
// is ignored. Decimal numbers with optional sign, fraction and exponent
// are accepted, as are unsigned 0x/0o/0b integers. "Infinity" with an
// optional sign and literals too large for a float64 parse as infinities;
// NaN and other spellings of infinity are rejected.
func ParseQuantity(s string) (float64, bool) {
	s = trim(s)
	if s == "" || strings.ContainsRune(s, '_') {
		return 0, false
	}
	switch s {
	case "Infinity", "+Infinity":
		return math.Inf(1), true
	case "-Infinity":
		return math.Inf(-1), true
	}
	if len(s) > 2 && s[0] == '0' {
		base := 0
		switch s[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			n, err := strconv.ParseUint(s[2:], base, 64)
			if err != nil {
				return 0, false
			}
			return float64(n), true
		}
	}
	if strings.ContainsAny(s, "xXpP") {
		// signed hex and hex floats
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	switch {
	case err != nil:
		// overflow rounds to an infinity
		if errors.Is(err, strconv.ErrRange) && math.IsInf(f, 0) {
			return f, true
		}
		return 0, false
	case math.IsNaN(f), math.IsInf(f, 0):
		// "inf", "NaN" and friends
		return 0, false
	}
	return f, true
}

func isSpace(r rune) bool { return spaceRegexp.MatchString(string(r)) }

func trim(s string) string { return strings.TrimFunc(s, isSpace) }

func blank(s string) bool { return trim(s) == "" }
