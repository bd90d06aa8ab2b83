// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package calibration

import (
	"errors"
	"fmt"
)

var (
	ErrNoFirstDigit     = errors.New("no first digit")
	ErrNoLastDigit      = errors.New("no last digit")
	ErrUnknownDigitWord = errors.New("unknown digit word")
	ErrValueParse       = errors.New("calibration value is not a number")
)

// LineError reports the line that stopped a Sum.
type LineError struct {
	Number int // 1-based position within the lines given to Sum
	Text   string
	Err    error
}

// Error implements the error interface for LineError.
func (e *LineError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Number, e.Text, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}
