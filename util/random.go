package util

import (
	"math/rand/v2"
	"strings"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz"

// RandomInt generates a random integer between min and max, both inclusive.
func RandomInt(min, max int64) int64 {
	return min + rand.Int64N(max-min+1)
}

// RandomString generates a random lowercase string of length n.
func RandomString(n int) string {
	var sb strings.Builder
	sb.Grow(n)

	for range n {
		sb.WriteByte(alphabet[rand.IntN(len(alphabet))])
	}

	return sb.String()
}

// RandomTitle generates a random document title.
func RandomTitle() string {
	return RandomString(6) + " " + RandomString(8)
}

// RandomMarkdown generates a short random document which uses every construct of the dialect.
func RandomMarkdown() string {
	return "# " + RandomString(6) + "\n" +
		RandomString(5) + " _" + RandomString(4) + "_ __" + RandomString(4) + "__ " +
		"[" + RandomString(3) + "](http://" + RandomString(5) + ".com)"
}
