package configloader

import (
	"fmt"
	"strings"

	"github.com/yaklabco/stlap/pkg/config"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the path to the invalid field (e.g., "html.flavor").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string

	// FilePath is the config file containing the error (if known).
	FilePath string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string

	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	parts = append(parts, e.Message)

	return strings.Join(parts, ": ")
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []ValidationError

	// Warnings are non-fatal issues.
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

//nolint:gochecknoglobals // Read-only lookup table.
var knownFormats = map[config.DiagnosticFormat]bool{
	config.FormatText: true,
	config.FormatJSON: true,
}

//nolint:gochecknoglobals // Read-only lookup table.
var knownColors = map[string]bool{
	config.ColorAuto:   true,
	config.ColorAlways: true,
	config.ColorNever:  true,
}

//nolint:gochecknoglobals // Read-only lookup table.
var knownFlavors = map[config.Flavor]bool{
	config.FlavorCommonMark: true,
	config.FlavorGFM:        true,
}

//nolint:gochecknoglobals // Read-only lookup table.
var knownLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate checks a configuration for errors and warnings.
func Validate(cfg *config.Config) *ValidationResult {
	result := &ValidationResult{}
	if cfg == nil {
		return result
	}

	fail := func(field string, value any, format string, args ...any) {
		result.Errors = append(result.Errors, ValidationError{
			Field:   field,
			Value:   value,
			Message: fmt.Sprintf(format, args...),
		})
	}

	if cfg.Mode != "" && !cfg.Mode.IsValid() {
		fail("mode", cfg.Mode, "invalid mode %q; must be one of: emit, force, check", cfg.Mode)
	}
	if cfg.DiagnosticFormat != "" && !knownFormats[cfg.DiagnosticFormat] {
		fail("diagnostic_format", cfg.DiagnosticFormat,
			"invalid format %q; must be one of: text, json", cfg.DiagnosticFormat)
	}
	if cfg.Color != "" && !knownColors[cfg.Color] {
		fail("color", cfg.Color, "invalid color mode %q; must be one of: auto, always, never", cfg.Color)
	}
	if cfg.Limit < 0 {
		fail("limit", cfg.Limit, "limit must be >= 0 (0 means the default)")
	}
	if cfg.LogLevel != "" && !knownLogLevels[cfg.LogLevel] {
		fail("log_level", cfg.LogLevel, "invalid log level %q; must be one of: debug, info, warn, error", cfg.LogLevel)
	}
	if cfg.HTML.Flavor != "" && !knownFlavors[cfg.HTML.Flavor] {
		fail("html.flavor", cfg.HTML.Flavor, "invalid flavor %q; must be one of: commonmark, gfm", cfg.HTML.Flavor)
	}

	if cfg.HTML.Title != "" && !cfg.HTML.Standalone {
		result.Warnings = append(result.Warnings, ValidationError{
			Field:   "html.title",
			Value:   cfg.HTML.Title,
			Message: "title is only used when html.standalone is true",
		})
	}
	if cfg.Mode == config.ModeCheck && cfg.HTML.Enabled {
		result.Warnings = append(result.Warnings, ValidationError{
			Field:   "html.enabled",
			Value:   true,
			Message: "check mode prints no text, so HTML export has no effect",
		})
	}

	return result
}

// ValidateWithFile validates configuration and includes file path in errors.
func ValidateWithFile(cfg *config.Config, filePath string) *ValidationResult {
	result := Validate(cfg)

	for i := range result.Errors {
		result.Errors[i].FilePath = filePath
	}
	for i := range result.Warnings {
		result.Warnings[i].FilePath = filePath
	}

	return result
}
