package validators

import "strings"

// NormalizePhone strips everything but digits and caps the result at 11
// digits (local mobile format, leading zero included).
func NormalizePhone(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
		if b.Len() == 11 {
			break
		}
	}
	return b.String()
}

// FormatPhone renders a normalized number as "5xx xxx xx xx" for display.
// Anything that is not a 10/11 digit number comes back space-grouped.
func FormatPhone(raw string) string {
	d := NormalizePhone(raw)

	if len(d) == 11 && strings.HasPrefix(d, "0") {
		x := d[1:]
		return x[0:3] + " " + x[3:6] + " " + x[6:8] + " " + x[8:10]
	}
	if len(d) == 10 {
		return d[0:3] + " " + d[3:6] + " " + d[6:8] + " " + d[8:10]
	}

	var parts []string
	for len(d) > 3 {
		parts = append(parts, d[:3])
		d = d[3:]
	}
	if d != "" {
		parts = append(parts, d)
	}
	return strings.Join(parts, " ")
}
