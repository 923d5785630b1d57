package validation

import "strings"

// eloPrefixes is the fixed prefix list of the regional elo scheme.
var eloPrefixes = []string{"4011", "4312", "4389", "4514", "4573", "6277", "6362", "6363"}

// DetectBrand returns the card scheme for a number by ordered prefix match,
// first match wins. It never fails; an unrecognized prefix is "unknown".
func DetectBrand(number string) string {
	digits := stripNonDigits(number)

	switch {
	case strings.HasPrefix(digits, "4"):
		return "visa"
	case hasAnyPrefix(digits, "51", "52", "53", "54", "55"):
		return "mastercard"
	case hasAnyPrefix(digits, "34", "37"):
		return "amex"
	case hasAnyPrefix(digits, eloPrefixes...):
		return "elo"
	}
	return "unknown"
}

func hasAnyPrefix(s string, prefixes ...string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
