package validators

import "strings"

// NormalizeDocument strips the punctuation of a formatted CNPJ
// ("12.345.678/0001-95" -> "12345678000195").
func NormalizeDocument(doc string) string {
	var b strings.Builder
	for _, r := range doc {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsValidCNPJ validates the two check digits of a Brazilian CNPJ.
// Formatted and bare inputs are both accepted.
func IsValidCNPJ(doc string) bool {
	d := NormalizeDocument(doc)
	if len(d) != 14 {
		return false
	}

	allSame := true
	for i := 1; i < len(d); i++ {
		if d[i] != d[0] {
			allSame = false
			break
		}
	}
	if allSame {
		return false
	}

	digits := make([]int, 14)
	for i := range d {
		digits[i] = int(d[i] - '0')
	}

	return checkDigit(digits[:12], []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}) == digits[12] &&
		checkDigit(digits[:13], []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}) == digits[13]
}

func checkDigit(digits, weights []int) int {
	sum := 0
	for i, w := range weights {
		sum += digits[i] * w
	}
	r := sum % 11
	if r < 2 {
		return 0
	}
	return 11 - r
}
