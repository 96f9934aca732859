// Package money handles rupee amounts as integer paise so that sums never
// accumulate binary floating-point error.
package money

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// ErrInvalidAmount rejects amounts that are not positive two-decimal rupee values.
var ErrInvalidAmount = errors.New("invalid amount")

// Paise is a rupee amount in minor units (1 rupee = 100 paise).
type Paise int64

// ParseAmount converts a decimal rupee string to paise. Both dot and comma
// decimal separators are accepted. A third decimal digit rounds half-up.
// Signs, malformed input, and non-positive values are rejected.
func ParseAmount(s string) (Paise, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAmount
	}
	s = strings.ReplaceAll(s, ",", ".")
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		return 0, ErrInvalidAmount
	}
	parts := strings.Split(s, ".")
	if len(parts) > 2 {
		return 0, ErrInvalidAmount
	}
	intPart := parts[0]
	fracPart := ""
	if len(parts) == 2 {
		fracPart = parts[1]
	}
	if intPart == "" {
		intPart = "0"
	}
	for _, r := range intPart + fracPart {
		if !unicode.IsDigit(r) {
			return 0, ErrInvalidAmount
		}
	}
	rupees, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	const maxRupees = (1<<63 - 1) / 100
	if rupees > maxRupees {
		return 0, ErrInvalidAmount
	}
	var frac int64
	if len(fracPart) > 0 {
		frac = int64(fracPart[0]-'0') * 10
		if len(fracPart) > 1 {
			frac += int64(fracPart[1] - '0')
			if len(fracPart) > 2 && fracPart[2] >= '5' {
				frac++
			}
		}
	}
	p := Paise(rupees*100 + frac)
	if p <= 0 {
		return 0, ErrInvalidAmount
	}
	return p, nil
}

// String renders the amount as a plain two-decimal value, e.g. "1234.50".
func (p Paise) String() string {
	sign := ""
	v := int64(p)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

// FormatINR renders the amount with the rupee sign and Indian digit grouping:
// the last three integer digits, then groups of two ("₹1,23,456.78").
func FormatINR(p Paise) string {
	sign := ""
	v := int64(p)
	if v < 0 {
		sign = "-"
		v = -v
	}
	digits := strconv.FormatInt(v/100, 10)
	grouped := groupIndian(digits)
	return fmt.Sprintf("%s₹%s.%02d", sign, grouped, v%100)
}

func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]
	var b strings.Builder
	// Leading group of one or two, then pairs.
	lead := len(head) % 2
	if lead == 0 {
		lead = 2
	}
	b.WriteString(head[:lead])
	for i := lead; i < len(head); i += 2 {
		b.WriteByte(',')
		b.WriteString(head[i : i+2])
	}
	b.WriteByte(',')
	b.WriteString(tail)
	return b.String()
}
