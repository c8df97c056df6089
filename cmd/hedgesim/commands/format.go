package commands

import (
	"fmt"
	"strings"
)

// formatMoney formats a float with thousands separators and 2 decimals
// 예: 1234567.891 → "1,234,567.89"
func formatMoney(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}

	s := fmt.Sprintf("%.2f", v)
	parts := strings.SplitN(s, ".", 2)

	intPart := parts[0]
	var b strings.Builder
	for i, d := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}

	out := b.String() + "." + parts[1]
	if neg {
		return "-" + out
	}
	return out
}

// formatPct formats a fraction as a percentage
// 예: 0.0534 → "5.34%"
func formatPct(v float64) string {
	return fmt.Sprintf("%.2f%%", v*100)
}
