// Package amount decodes GnuCash rational amount strings and formats them
// for journal output.
package amount

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// FormatError reports a malformed rational amount string.
type FormatError struct {
	Raw string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("malformed amount %q", e.Raw)
}

// Decode converts a GnuCash "numerator/denominator" pair into a decimal
// string: "12345/100" -> "123.45". Only the digit count of the denominator
// matters; GnuCash always writes power-of-ten denominators, so the count
// alone fixes the number of fraction digits. The denominator's numeric
// value is never inspected.
//
// A one-digit denominator yields a trailing decimal point ("7/1" -> "7.").
// Ledger accepts that form and it matches the exports this decoder was
// checked against, so it stays.
func Decode(raw string) (string, error) {
	num, denom, ok := strings.Cut(raw, "/")
	if !ok || denom == "" || !digits(denom) {
		return "", &FormatError{Raw: raw}
	}

	neg := strings.HasPrefix(num, "-")
	if neg {
		num = num[1:]
	}
	if num == "" || !digits(num) {
		return "", &FormatError{Raw: raw}
	}

	n := len(denom) - 1
	for len(num) < n+1 {
		num = "0" + num
	}

	out := num[:len(num)-n] + "." + num[len(num)-n:]
	if neg {
		out = "-" + out
	}
	return out, nil
}

// Format renders a decoded decimal string with exactly two fraction digits
// and grouped integer digits: Format("1234.5", ",") -> "1,234.50". The
// separator is explicit so output never depends on process locale.
func Format(value, sep string) (string, error) {
	d, err := decimal.NewFromString(strings.TrimSuffix(value, "."))
	if err != nil {
		return "", &FormatError{Raw: value}
	}

	s := d.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	for i := 0; i < len(intPart); i++ {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteString(sep)
		}
		b.WriteByte(intPart[i])
	}

	out := b.String() + "." + frac
	if neg {
		out = "-" + out
	}
	return out, nil
}

func digits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
