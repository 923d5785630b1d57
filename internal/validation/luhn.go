package validation

import "strings"

// stripNonDigits drops everything but ASCII digits, so formatted numbers
// ("4242 4242 4242 4242") validate the same as bare ones.
func stripNonDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidCardNumber checks a card number with the Luhn checksum. Numbers must
// carry 13 to 19 digits after non-digits are stripped.
func ValidCardNumber(number string) bool {
	digits := stripNonDigits(number)
	if len(digits) < 13 || len(digits) > 19 {
		return false
	}

	total := 0
	for i := 0; i < len(digits); i++ {
		n := int(digits[len(digits)-1-i] - '0')
		if i%2 == 1 {
			n *= 2
			if n > 9 {
				n -= 9
			}
		}
		total += n
	}
	return total%10 == 0
}
