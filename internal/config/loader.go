// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package config

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/calibrate/internal/ctxlog"
	"github.com/specialistvlad/calibrate/internal/fsutil"
	"github.com/zclconf/go-cty/cty"
	"gopkg.in/yaml.v3"
)

// ErrNoConfigFiles is returned when a settings path holds no settings file.
var ErrNoConfigFiles = errors.New("no config files found")

// Extensions lists the file extensions Load recognises.
var Extensions = []string{".hcl", ".yaml", ".yml"}

// Loader reads settings files into a Model.
type Loader interface {
	Load(ctx context.Context, path string) (*Model, error)
}

// FileLoader is the Loader for HCL and YAML files on disk.
type FileLoader struct {
	// Environ returns the environment visible to HCL files as env.
	// Defaults to os.Environ.
	Environ func() []string
}

// NewLoader returns a FileLoader reading the process environment.
func NewLoader() *FileLoader {
	return &FileLoader{Environ: os.Environ}
}

// Load reads a settings file, or every settings file below a directory.
func (l *FileLoader) Load(ctx context.Context, path string) (*Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading config.", "path", path)

	files, err := fsutil.FindFilesByExtension(path, Extensions...)
	if err != nil {
		return nil, fmt.Errorf("failed to find config files in %s: %w", path, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoConfigFiles, path)
	}

	parser := hclparse.NewParser()
	model := &Model{}
	for _, f := range files {
		var parsed file
		switch filepath.Ext(f) {
		case ".hcl":
			parsed, err = l.decodeHCL(parser, f)
		default:
			parsed, err = decodeYAML(f)
		}
		if err != nil {
			return nil, err
		}
		model.merge(parsed, f)
		logger.Debug("Config file applied.", "file", f)
	}

	return model, nil
}

func (l *FileLoader) decodeHCL(parser *hclparse.Parser, path string) (file, error) {
	var parsed file

	hclFile, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return parsed, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}

	diags = gohcl.DecodeBody(hclFile.Body, l.evalContext(), &parsed)
	if diags.HasErrors() {
		return parsed, fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
	}

	return parsed, nil
}

// evalContext exposes the environment to HCL expressions as a string map.
func (l *FileLoader) evalContext() *hcl.EvalContext {
	environ := l.Environ
	if environ == nil {
		environ = os.Environ
	}

	vars := make(map[string]cty.Value)
	for _, kv := range environ() {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" || !utf8.ValidString(k) || !utf8.ValidString(v) {
			continue
		}
		vars[k] = cty.StringVal(v)
	}

	env := cty.MapValEmpty(cty.String)
	if len(vars) > 0 {
		env = cty.MapVal(vars)
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{"env": env},
	}
}

func decodeYAML(path string) (file, error) {
	var parsed file

	data, err := os.ReadFile(path)
	if err != nil {
		return parsed, fmt.Errorf("failed to read YAML file %s: %w", path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return parsed, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&parsed); err != nil {
		return parsed, fmt.Errorf("failed to decode YAML file %s: %w", path, err)
	}

	return parsed, nil
}
