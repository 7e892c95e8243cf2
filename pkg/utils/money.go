package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// Money is carried as integer paise end to end so amount comparisons are
// exact. The HTTP surface speaks 2-decimal strings like "500.00".

// ParseAmount converts a decimal string to paise. At most two fractional
// digits are accepted.
func ParseAmount(value string) (int64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, fmt.Errorf("amount is empty")
	}
	if strings.HasPrefix(value, "-") {
		return 0, fmt.Errorf("amount %s must not be negative", value)
	}

	whole := value
	frac := ""
	if idx := strings.Index(value, "."); idx >= 0 {
		whole = value[:idx]
		frac = value[idx+1:]
	}

	if len(frac) > 2 {
		return 0, fmt.Errorf("amount %s has more than 2 decimal places", value)
	}
	// Both parts must be bare digits; ParseInt alone would let a sign
	// through ("5.-1").
	if !isDigits(whole) || (frac != "" && !isDigits(frac)) {
		return 0, fmt.Errorf("invalid amount %s", value)
	}
	// Pad "5" -> "50" so .5 means 50 paise
	for len(frac) < 2 {
		frac += "0"
	}

	wholePart, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %s", value)
	}

	fracPart, err := strconv.ParseInt(frac, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %s", value)
	}

	return wholePart*100 + fracPart, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// FormatAmount converts paise back to a 2-decimal string.
func FormatAmount(cents int64) string {
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}
