// Package config defines core configuration types for stlap.
// These types are pure data structures; discovery and layering live in
// internal/configloader.
package config

import "strings"

// Mode selects what the CLI does with a document.
type Mode string

const (
	// ModeEmit prints the story text when the document is valid and
	// diagnostics otherwise.
	ModeEmit Mode = "emit"
	// ModeForce prints the story text even when the document is invalid.
	ModeForce Mode = "force"
	// ModeCheck prints diagnostics only.
	ModeCheck Mode = "check"
)

// IsValid returns true if the mode is known.
func (m Mode) IsValid() bool {
	switch m {
	case ModeEmit, ModeForce, ModeCheck:
		return true
	default:
		return false
	}
}

// DiagnosticFormat specifies how diagnostics are printed.
type DiagnosticFormat string

const (
	FormatText DiagnosticFormat = "text"
	FormatJSON DiagnosticFormat = "json"
)

// Flavor specifies the Markdown flavor used for HTML export.
type Flavor string

const (
	FlavorCommonMark Flavor = "commonmark"
	FlavorGFM        Flavor = "gfm"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// DefaultLimit is the default number of diagnostics shown in text output.
const DefaultLimit = 5

// DefaultSeparator is placed between rendered paragraphs.
const DefaultSeparator = "\n\n"

// HTMLConfig controls HTML export.
type HTMLConfig struct {
	// Enabled emits HTML instead of plain text.
	Enabled bool `yaml:"enabled" toml:"enabled"`

	// Flavor is the Markdown dialect of the story text.
	Flavor Flavor `yaml:"flavor,omitempty" toml:"flavor,omitempty"`

	// HardWraps renders newlines inside paragraphs as <br>.
	HardWraps bool `yaml:"hard_wraps" toml:"hard_wraps"`

	// Standalone wraps the output in a complete HTML page.
	Standalone bool `yaml:"standalone" toml:"standalone"`

	// Title is the page title of standalone output.
	Title string `yaml:"title,omitempty" toml:"title,omitempty"`
}

// Config is the root configuration structure for stlap.
type Config struct {
	// Mode is the default CLI mode ("emit", "force" or "check").
	Mode Mode `yaml:"mode,omitempty" toml:"mode,omitempty"`

	// Separator is placed between rendered paragraphs. Empty means
	// DefaultSeparator.
	Separator string `yaml:"separator,omitempty" toml:"separator,omitempty"`

	// Limit caps the diagnostics shown in text output. Zero means
	// DefaultLimit.
	Limit int `yaml:"limit,omitempty" toml:"limit,omitempty"`

	// DiagnosticFormat is "text" or "json".
	DiagnosticFormat DiagnosticFormat `yaml:"diagnostic_format,omitempty" toml:"diagnostic_format,omitempty"`

	// Color is "auto", "always" or "never".
	Color string `yaml:"color,omitempty" toml:"color,omitempty"`

	// DisplayWidth aligns carets by terminal cell width. Nil means true.
	DisplayWidth *bool `yaml:"display_width,omitempty" toml:"display_width,omitempty"`

	// OneBasedLines numbers diagnostic excerpt lines from one.
	OneBasedLines bool `yaml:"one_based_lines" toml:"one_based_lines"`

	// LogLevel is "debug", "info", "warn" or "error".
	LogLevel string `yaml:"log_level,omitempty" toml:"log_level,omitempty"`

	// HTML configures HTML export.
	HTML HTMLConfig `yaml:"html" toml:"html"`

	// CLI-level options (not persisted to config files).

	// Output is the file the result is written to. Empty means stdout.
	Output string `yaml:"-" toml:"-"`

	// Tree dumps the document tree instead of rendering it.
	Tree bool `yaml:"-" toml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	displayWidth := true
	return &Config{
		Mode:             ModeEmit,
		Separator:        DefaultSeparator,
		Limit:            DefaultLimit,
		DiagnosticFormat: FormatText,
		Color:            ColorAuto,
		DisplayWidth:     &displayWidth,
		LogLevel:         "warn",
		HTML: HTMLConfig{
			Flavor: FlavorCommonMark,
		},
	}
}

// UseDisplayWidth resolves DisplayWidth, defaulting to true.
func (c *Config) UseDisplayWidth() bool {
	return c.DisplayWidth == nil || *c.DisplayWidth
}

// EffectiveSeparator resolves Separator, defaulting to DefaultSeparator.
func (c *Config) EffectiveSeparator() string {
	if c.Separator == "" {
		return DefaultSeparator
	}
	return c.Separator
}

// Clone creates a deep copy of the configuration.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}

	clone := *c
	if c.DisplayWidth != nil {
		displayWidth := *c.DisplayWidth
		clone.DisplayWidth = &displayWidth
	}
	return &clone
}

// UnescapeSeparator turns the escapes \n, \t and \\ into the characters
// they name, so separators can be given on a command line or in the
// environment.
func UnescapeSeparator(s string) string {
	return separatorUnescaper.Replace(s)
}

//nolint:gochecknoglobals // Read-only replacer.
var separatorUnescaper = strings.NewReplacer(`\\`, `\`, `\n`, "\n", `\t`, "\t")
