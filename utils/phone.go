package utils

import "strings"

// NormalizePhone strips separators so lookups by phone are stable. A leading
// "+" is kept; everything else non-numeric goes.
func NormalizePhone(p string) string {
	p = strings.TrimSpace(p)
	var b strings.Builder
	for i, r := range p {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		} else if r == '+' && i == 0 {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidPhone is a loose sanity check: 8-15 digits, optional leading +.
func ValidPhone(p string) bool {
	p = NormalizePhone(p)
	digits := strings.TrimPrefix(p, "+")
	if len(digits) < 8 || len(digits) > 15 {
		return false
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
