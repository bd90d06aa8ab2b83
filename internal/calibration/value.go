// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package calibration

import (
	"context"
	"fmt"
	"strconv"

	"github.com/specialistvlad/calibrate/internal/ctxlog"
)

// Value records how a single line turned into its calibration value.
type Value struct {
	Line     string
	Resolved string
	First    int
	Last     int
	Number   int
}

// LineValue computes the calibration value of one line.
func LineValue(line string) (Value, error) {
	resolved, err := ResolveDigits(line)
	if err != nil {
		return Value{}, err
	}

	first, err := FirstDigit(resolved)
	if err != nil {
		return Value{}, err
	}
	last, err := LastDigit(resolved)
	if err != nil {
		return Value{}, err
	}

	text := fmt.Sprintf("%d%d", first, last)
	number, err := strconv.Atoi(text)
	if err != nil {
		return Value{}, fmt.Errorf("%w: %q: %v", ErrValueParse, text, err)
	}

	return Value{
		Line:     line,
		Resolved: resolved,
		First:    first,
		Last:     last,
		Number:   number,
	}, nil
}

// Sum adds up the calibration values of lines, skipping blank ones. It stops
// at the first line that fails and returns a *LineError for it.
func Sum(ctx context.Context, lines []string) (int, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Summing calibration values.", "lines", len(lines))

	total := 0
	for i, line := range lines {
		if line == "" {
			continue
		}

		v, err := LineValue(line)
		if err != nil {
			return 0, &LineError{Number: i + 1, Text: line, Err: err}
		}

		logger.Debug("Line resolved.",
			"line", i+1,
			"resolved", v.Resolved,
			"first", v.First,
			"last", v.Last,
			"value", v.Number,
		)
		total += v.Number
	}

	logger.Debug("Calibration values summed.", "total", total)
	return total, nil
}
