// SPDX-License-Identifier: MIT

// Package build runs one configuration evaluation: load the palette, flatten
// it, derive state colors and emit the class map.
package build

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/thatcatcamp/surfaces/internal/config"
	"github.com/thatcatcamp/surfaces/internal/palette"
	"github.com/thatcatcamp/surfaces/internal/themes"
	"gopkg.in/yaml.v3"
)

// Result is the output of a single evaluation
type Result struct {
	Derivation *palette.Derivation
	Classes    *themes.ClassMap
}

// document is the json/yaml output shape
type document struct {
	Palette *palette.Flat `json:"palette" yaml:"palette"`
	Classes []themes.Rule `json:"classes" yaml:"classes"`
}

// LoadPalette reads the configured palette file, or expands the preset when
// no file is set
func LoadPalette(fs afero.Fs, s *config.Settings) (*palette.Palette, error) {
	if s.Palette.File != "" {
		return palette.Load(fs, s.Palette.File)
	}

	preset := themes.GetPreset(s.Palette.Preset)
	if preset == nil {
		return nil, fmt.Errorf("unknown preset %q", s.Palette.Preset)
	}
	return preset.Palette(s.Palette.Dark), nil
}

// Run evaluates the configuration from scratch. Nothing is cached between calls.
func Run(fs afero.Fs, s *config.Settings) (*Result, error) {
	p, err := LoadPalette(fs, s)
	if err != nil {
		return nil, err
	}
	return Evaluate(p, s.Opacities(), s.ThemeOptions())
}

// Evaluate derives and emits for an already loaded palette
func Evaluate(p *palette.Palette, o palette.Opacities, opts themes.Options) (*Result, error) {
	d := palette.Evaluate(p, o)

	cm, err := themes.Build(d, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to build classes: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"colors":   d.Palette.Len(),
		"pairings": len(d.Pairings),
		"rules":    len(cm.Rules),
	}).Debug("evaluated palette")

	return &Result{Derivation: d, Classes: cm}, nil
}

// Write renders the result as css, json or yaml
func (r *Result) Write(w io.Writer, format string, vars bool) error {
	switch format {
	case "css", "":
		_, err := io.WriteString(w, themes.GenerateCSS(r.Derivation, r.Classes, vars))
		return err
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r.document())
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r.document()); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unsupported output format %q", format)
}

func (r *Result) document() document {
	return document{Palette: r.Derivation.Palette, Classes: r.Classes.Rules}
}

// WriteFile renders the result into path on fs
func (r *Result) WriteFile(fs afero.Fs, path, format string, vars bool) error {
	f, err := fs.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	if err := r.Write(f, format, vars); err != nil {
		f.Close()
		return fmt.Errorf("failed to write output: %w", err)
	}
	return f.Close()
}
