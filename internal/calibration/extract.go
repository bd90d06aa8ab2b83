// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package calibration

import (
	"fmt"
	"unicode/utf8"
)

// FirstDigit returns the value of the first ascii digit in s.
func FirstDigit(s string) (int, error) {
	for _, r := range s {
		if isASCIIDigit(r) {
			return int(r - '0'), nil
		}
	}
	return 0, fmt.Errorf("%w in %q", ErrNoFirstDigit, s)
}

// LastDigit returns the value of the last ascii digit in s.
func LastDigit(s string) (int, error) {
	for end := len(s); end > 0; {
		r, size := utf8.DecodeLastRuneInString(s[:end])
		if isASCIIDigit(r) {
			return int(r - '0'), nil
		}
		end -= size
	}
	return 0, fmt.Errorf("%w in %q", ErrNoLastDigit, s)
}
