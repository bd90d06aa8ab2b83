// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package config

// Model is the format-agnostic result of loading one or more settings files.
// Empty fields were not set by any file.
type Model struct {
	LogLevel  string
	LogFormat string
	Sources   []string
}

// file is the shape of a single settings file in either format.
type file struct {
	LogLevel  string `hcl:"log_level,optional" yaml:"log_level"`
	LogFormat string `hcl:"log_format,optional" yaml:"log_format"`
}

// merge applies the values set in f on top of m.
func (m *Model) merge(f file, source string) {
	if f.LogLevel != "" {
		m.LogLevel = f.LogLevel
	}
	if f.LogFormat != "" {
		m.LogFormat = f.LogFormat
	}
	m.Sources = append(m.Sources, source)
}
