package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAmountInWords(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0", "Zero only"},
		{"7", "Seven only"},
		{"19", "Nineteen only"},
		{"85", "Eighty five only"},
		{"100", "One hundred only"},
		{"101", "One hundred and one only"},
		{"999", "Nine hundred and ninety nine only"},
		{"1000", "One thousand only"},
		{"1050.00", "One thousand and fifty only"},
		{"100000", "One lakh only"},
		{"123456", "One lakh twenty three thousand four hundred and fifty six only"},
		{"0.05", "Zero and five paise only"},
		{"12.50", "Twelve and fifty paise only"},
		{"1050.75", "One thousand and fifty and seventy five paise only"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, AmountInWords(tc.in), "input %q", tc.in)
	}
}

// The rupee part is truncated independently of paise rounding: when the
// fraction rounds up to a full rupee, paise come out as "one hundred"
// rather than carrying over. Pinned deliberately.
func TestAmountInWordsPaiseDoNotCarry(t *testing.T) {
	assert.Equal(t, "Ninety nine and one hundred paise only", AmountInWords("99.995"))
}

func TestAmountInWordsInvalidInput(t *testing.T) {
	assert.Equal(t, InvalidAmount, AmountInWords("abc"))
	assert.Equal(t, InvalidAmount, AmountInWords(""))
	assert.Equal(t, InvalidAmount, AmountInWords("12,50"))
}

func TestAmountInWordsNoSpuriousAnd(t *testing.T) {
	// "and" only appears before a trailing 0-99 remainder.
	assert.NotContains(t, AmountInWords("100"), "and")
	assert.Contains(t, AmountInWords("101"), "and")
	assert.NotContains(t, AmountInWords("100000"), "and")
}

func TestAmountInWordsAlwaysEndsInOnly(t *testing.T) {
	inputs := []string{"0", "1", "99.999", "100000", "54321.01", "0.01", "999999.99"}
	for _, in := range inputs {
		first := AmountInWords(in)
		assert.True(t, strings.HasSuffix(first, "only"), "input %q -> %q", in, first)
		// deterministic: same input, identical output
		assert.Equal(t, first, AmountInWords(in))
	}
}

func TestNumberToWordsGroups(t *testing.T) {
	assert.Equal(t, "zero", NumberToWords(0))
	assert.Equal(t, "twenty", NumberToWords(20))
	assert.Equal(t, "two hundred", NumberToWords(200))
	assert.Equal(t, "five thousand and six", NumberToWords(5006))
	assert.Equal(t, "ninety nine lakh ninety nine thousand nine hundred and ninety nine", NumberToWords(9999999))
}
