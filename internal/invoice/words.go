package invoice

import "strings"

// AmountInWords spells a whole amount as lowercase English cardinal
// words, e.g. 2242 -> "two thousand two hundred and forty-two".
func AmountInWords(n int64) string {
	if n == 0 {
		return "zero"
	}
	if n < 0 {
		return "minus " + AmountInWords(-n)
	}

	var parts []string
	for _, scale := range scales {
		if n >= scale.value {
			count := n / scale.value
			parts = append(parts, AmountInWords(count)+" "+scale.name)
			n %= scale.value
		}
	}

	if n >= 100 {
		parts = append(parts, wordsUnder20[n/100]+" hundred")
		n %= 100
	}

	if n > 0 {
		word := wordsUnder100(n)
		if len(parts) > 0 {
			word = "and " + word
		}
		parts = append(parts, word)
	}

	return strings.Join(parts, " ")
}

func wordsUnder100(n int64) string {
	if n < 20 {
		return wordsUnder20[n]
	}
	if n%10 == 0 {
		return wordsTens[n/10]
	}
	return wordsTens[n/10] + "-" + wordsUnder20[n%10]
}

type scale struct {
	value int64
	name  string
}

var scales = []scale{
	{1_000_000_000_000, "trillion"},
	{1_000_000_000, "billion"},
	{1_000_000, "million"},
	{1_000, "thousand"},
}

var wordsUnder20 = []string{
	"", "one", "two", "three", "four", "five", "six", "seven", "eight",
	"nine", "ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen",
	"sixteen", "seventeen", "eighteen", "nineteen",
}

var wordsTens = []string{
	"", "", "twenty", "thirty", "forty", "fifty", "sixty", "seventy",
	"eighty", "ninety",
}
