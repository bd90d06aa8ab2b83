// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package calibration

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// digitWords is indexed by the digit each word spells.
var digitWords = [10]string{
	"zero", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine",
}

// DigitWords returns a copy of the table of recognised digit words.
func DigitWords() []string {
	words := make([]string, len(digitWords))
	copy(words, digitWords[:])
	return words
}

func isASCIIDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// startsDigitWord reports whether any digit word begins with r.
func startsDigitWord(r rune) bool {
	for _, w := range digitWords {
		first, _ := utf8.DecodeRuneInString(w)
		if first == r {
			return true
		}
	}
	return false
}

// wordDigit maps a digit word to its ascii digit.
func wordDigit(word string) (byte, error) {
	for i, w := range digitWords {
		if w == word {
			return byte('0' + i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDigitWord, word)
}

// ResolveDigits returns the ascii digits of line in order of appearance,
// with every spelled-out digit word replaced by its digit. Characters that
// are neither digits nor the start of a digit word are dropped.
//
// The scan advances one character at a time rather than past a matched
// word, so overlapping words each produce a digit: "twone" resolves to "21".
func ResolveDigits(line string) (string, error) {
	var resolved strings.Builder

	for pos, r := range line {
		if isASCIIDigit(r) {
			resolved.WriteRune(r)
			continue
		}
		if !startsDigitWord(r) {
			continue
		}

		rest := line[pos:]
		for _, w := range digitWords {
			if !strings.HasPrefix(rest, w) {
				continue
			}
			d, err := wordDigit(w)
			if err != nil {
				return "", err
			}
			resolved.WriteByte(d)
			break
		}
	}

	return resolved.String(), nil
}
