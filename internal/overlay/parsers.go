package overlay

import (
	"strconv"
	"strings"

	"github.com/MKhiriev/go-env-overlay/models"
)

// parser turns a raw environment value into a leaf of a specific kind.
type parser func(raw string) (models.Value, error)

var parsers = map[models.Kind]parser{
	models.KindInt:    parseInt,
	models.KindFloat:  parseFloat,
	models.KindBool:   parseBool,
	models.KindString: parseString,
}

// parserFor selects the parser by the kind of the original leaf. Kinds
// without a dedicated parser (null) fall back to string.
func parserFor(kind models.Kind) parser {
	if p, ok := parsers[kind]; ok {
		return p
	}
	return parseString
}

func parseInt(raw string) (models.Value, error) {
	s, ok := stripDigitSeparators(strings.TrimSpace(raw))
	if !ok {
		return models.Value{}, &strconv.NumError{Func: "ParseInt", Num: raw, Err: strconv.ErrSyntax}
	}
	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return models.Value{}, err
	}
	return models.Int(i), nil
}

func parseFloat(raw string) (models.Value, error) {
	s, ok := stripDigitSeparators(strings.TrimSpace(raw))
	if !ok {
		return models.Value{}, &strconv.NumError{Func: "ParseFloat", Num: raw, Err: strconv.ErrSyntax}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return models.Value{}, err
	}
	return models.Float(f), nil
}

// stripDigitSeparators removes "_" digit separators as in "1_000". Each
// underscore must sit between two decimal digits.
func stripDigitSeparators(s string) (string, bool) {
	if !strings.Contains(s, "_") {
		return s, true
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '_' {
			b.WriteByte(s[i])
			continue
		}
		if i == 0 || i == len(s)-1 || !isDigit(s[i-1]) || !isDigit(s[i+1]) {
			return "", false
		}
	}
	return b.String(), true
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func parseBool(raw string) (models.Value, error) {
	return models.Bool(strings.EqualFold(raw, "true")), nil
}

func parseString(raw string) (models.Value, error) {
	return models.String(raw), nil
}
