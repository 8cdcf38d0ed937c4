package invoice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAmountInWords(t *testing.T) {
	cases := []struct {
		n    int64
		want string
	}{
		{0, "zero"},
		{7, "seven"},
		{13, "thirteen"},
		{40, "forty"},
		{42, "forty-two"},
		{100, "one hundred"},
		{101, "one hundred and one"},
		{118, "one hundred and eighteen"},
		{342, "three hundred and forty-two"},
		{1000, "one thousand"},
		{2242, "two thousand two hundred and forty-two"},
		{90001, "ninety thousand and one"},
		{1_000_000, "one million"},
		{1_234_567, "one million two hundred and thirty-four thousand five hundred and sixty-seven"},
		{-15, "minus fifteen"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, AmountInWords(tc.n), "n=%d", tc.n)
	}
}
