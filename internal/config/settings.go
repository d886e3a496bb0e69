// SPDX-License-Identifier: MIT
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"github.com/thatcatcamp/surfaces/internal/palette"
	"github.com/thatcatcamp/surfaces/internal/themes"
)

// Settings is the typed view of the configuration file
type Settings struct {
	Palette    PaletteSettings    `mapstructure:"palette" json:"palette"`
	Opacity    palette.Opacities  `mapstructure:"opacity" json:"opacity"`
	Prefixes   PrefixSettings     `mapstructure:"prefixes" json:"prefixes"`
	Disabled   DisabledSettings   `mapstructure:"disabled" json:"disabled"`
	Transition TransitionSettings `mapstructure:"transition" json:"transition"`
	Output     OutputSettings     `mapstructure:"output" json:"output"`
	Server     ServerSettings     `mapstructure:"server" json:"server"`
	Log        LogSettings        `mapstructure:"log" json:"log"`
}

// PaletteSettings selects where colors come from
type PaletteSettings struct {
	File   string `mapstructure:"file" json:"file,omitempty" jsonschema:"description=YAML or JSON palette file. Takes precedence over preset."`
	Preset string `mapstructure:"preset" json:"preset" validate:"required_without=File" jsonschema:"description=Built-in palette used when no file is set."`
	Dark   bool   `mapstructure:"dark" json:"dark" jsonschema:"description=Use the dark variant of the preset."`
}

// PrefixSettings names the three class families. Empty disables a family.
type PrefixSettings struct {
	Surface     string `mapstructure:"surface" json:"surface"`
	Interactive string `mapstructure:"interactive" json:"interactive"`
	Dragged     string `mapstructure:"dragged" json:"dragged"`
}

// DisabledSettings configures :disabled overrides on interactive surfaces
type DisabledSettings struct {
	Enabled           bool    `mapstructure:"enabled" json:"enabled"`
	TextOpacity       float64 `mapstructure:"text_opacity" json:"text_opacity" validate:"gte=0,lte=1"`
	BackgroundOpacity float64 `mapstructure:"background_opacity" json:"background_opacity" validate:"gte=0,lte=1"`
	Color             string  `mapstructure:"color" json:"color" validate:"required_if=Enabled true" jsonschema:"description=Palette key or color literal used for disabled text and background."`
}

// TransitionSettings configures the color transition
type TransitionSettings struct {
	Enabled    bool `mapstructure:"enabled" json:"enabled"`
	DurationMS int  `mapstructure:"duration_ms" json:"duration_ms" validate:"gte=0"`
}

// OutputSettings controls what generate writes
type OutputSettings struct {
	Format    string `mapstructure:"format" json:"format" validate:"oneof=css json yaml" jsonschema:"enum=css,enum=json,enum=yaml"`
	Path      string `mapstructure:"path" json:"path,omitempty" jsonschema:"description=Output file. Empty writes to stdout."`
	Variables bool   `mapstructure:"variables" json:"variables" jsonschema:"description=Prepend :root custom properties for every palette entry."`
}

// ServerSettings configures the preview server
type ServerSettings struct {
	Port string `mapstructure:"port" json:"port" validate:"required,numeric"`
}

// LogSettings configures logrus
type LogSettings struct {
	Level string `mapstructure:"level" json:"level" validate:"oneof=trace debug info warn error"`
	JSON  bool   `mapstructure:"json" json:"json"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load decodes and validates the current configuration
func Load() (*Settings, error) {
	if v == nil {
		return nil, fmt.Errorf("config not initialized")
	}
	return load(v)
}

func load(vp *viper.Viper) (*Settings, error) {
	var s Settings
	if err := vp.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks ranges and enums
func (s *Settings) Validate() error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("invalid config: %w", err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %s", fe.Namespace(), fe.Tag()))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

// Opacities returns the state overlay opacities
func (s *Settings) Opacities() palette.Opacities {
	return s.Opacity
}

// ThemeOptions converts the settings into emitter options
func (s *Settings) ThemeOptions() themes.Options {
	opts := themes.Options{
		SurfacePrefix:     s.Prefixes.Surface,
		InteractivePrefix: s.Prefixes.Interactive,
		DraggedPrefix:     s.Prefixes.Dragged,
	}
	if s.Disabled.Enabled {
		opts.Disabled = &themes.DisabledStyle{
			TextOpacity:       s.Disabled.TextOpacity,
			BackgroundOpacity: s.Disabled.BackgroundOpacity,
			ColorName:         s.Disabled.Color,
		}
	}
	if s.Transition.Enabled {
		opts.Transition = &themes.Transition{DurationMS: s.Transition.DurationMS}
	}
	return opts
}
