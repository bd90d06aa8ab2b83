// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package document holds the calibration document that is compiled into the
// binary and splits it into lines.
package document

import (
	_ "embed"
	"strings"
)

// Raw is the bundled calibration document.
//
//go:embed input.txt
var Raw string

// Lines splits text into lines, dropping blank ones. Both "\n" and "\r\n"
// line endings are accepted.
func Lines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}
