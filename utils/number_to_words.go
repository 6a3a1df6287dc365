package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

var units = []string{
	"", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine",
}

var teens = []string{
	"ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen",
	"sixteen", "seventeen", "eighteen", "nineteen",
}

var tens = []string{
	"", "", "twenty", "thirty", "forty", "fifty", "sixty", "seventy", "eighty", "ninety",
}

var hundred = decimal.NewFromInt(100)

// InvalidAmount is returned by AmountInWords for non-numeric input. The
// words field on the invoice is cosmetic, so a bad amount degrades to
// this sentinel instead of failing the request.
const InvalidAmount = "Invalid amount"

func unitWord(n int64) string {
	switch {
	case n >= 0 && n < 10:
		return units[n]
	case n < 20:
		return teens[n-10]
	case n < 100:
		w := tens[n/10]
		if n%10 != 0 {
			w += " " + units[n%10]
		}
		return w
	default:
		return ""
	}
}

// NumberToWords renders a non-negative integer in the Indian
// lakh/thousand/hundred grouping, e.g. 123456 -> "one lakh twenty three
// thousand four hundred and fifty six". The word "and" appears before a
// trailing 0-99 remainder only when a higher group is non-zero.
func NumberToWords(num int64) string {
	if num == 0 {
		return "zero"
	}

	var inWords []string

	lakh := num / 100000
	num %= 100000
	if lakh > 0 {
		inWords = append(inWords, unitWord(lakh)+" lakh")
	}
	thousand := num / 1000
	num %= 1000
	if thousand > 0 {
		inWords = append(inWords, unitWord(thousand)+" thousand")
	}
	h := num / 100
	num %= 100
	if h > 0 {
		inWords = append(inWords, unitWord(h)+" hundred")
	}
	if num > 0 {
		if len(inWords) > 0 {
			inWords = append(inWords, "and")
		}
		inWords = append(inWords, unitWord(num))
	}

	return strings.Join(inWords, " ")
}

// AmountInWords converts a decimal monetary amount (as a string, the way
// the provider reports totals) into Indian currency words:
//
//	"1050.00" -> "One thousand and fifty only"
//	"12.50"   -> "Twelve and fifty paise only"
//
// The rupee part is truncated toward zero; the paise part is the
// fractional remainder times 100, rounded half away from zero. The two
// parts are split independently: paise rounding never carries into the
// rupee part, so an input like 99.995 yields
// "Ninety nine and one hundred paise only".
func AmountInWords(raw string) string {
	amount, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return InvalidAmount
	}

	rupees := amount.Floor()
	paise := amount.Sub(rupees).Mul(hundred).Round(0).IntPart()

	words := NumberToWords(rupees.IntPart())
	if paise > 0 {
		words += " and " + NumberToWords(paise) + " paise only"
	} else {
		words += " only"
	}

	return capitalize(strings.TrimSpace(words))
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
