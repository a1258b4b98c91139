// Package money converts between minor currency units (pence) and display
// values. Amounts are stored and transmitted as int64 pence everywhere;
// conversion to major units happens here, at the presentation boundary, and
// nowhere else.
package money

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

var ErrInvalidAmount = errors.New("invalid_amount")

// Major converts pence to pounds as a float for JSON presentation payloads.
func Major(minor int64) float64 {
	return float64(minor) / 100
}

// Format renders pence as a fixed two-decimal string, e.g. 1234 -> "12.34".
func Format(minor int64) string {
	sign := ""
	if minor < 0 {
		sign = "-"
		minor = -minor
	}
	return fmt.Sprintf("%s%d.%02d", sign, minor/100, minor%100)
}

// FormatGBP renders pence with a currency symbol, e.g. 1234 -> "£12.34".
func FormatGBP(minor int64) string {
	if minor < 0 {
		return "-£" + Format(-minor)
	}
	return "£" + Format(minor)
}

// ParseDecimalToMinor converts a decimal string to pence with half-up
// rounding on the third decimal place. Accepts both dot and comma decimal
// separators. Negative values are rejected.
func ParseDecimalToMinor(s string) (int64, error) {
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

	iv, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	const maxSafe = (1<<63 - 1) / 100
	if iv > maxSafe {
		return 0, ErrInvalidAmount
	}

	var fracMinor int64
	if len(fracPart) > 0 {
		fracMinor = int64(fracPart[0]-'0') * 10
		if len(fracPart) > 1 {
			fracMinor += int64(fracPart[1] - '0')
			if len(fracPart) > 2 && fracPart[2] >= '5' {
				fracMinor++
			}
		}
	}

	return iv*100 + fracMinor, nil
}
