package configloader

import "github.com/yaklabco/stlap/pkg/config"

// merge combines two configurations, with override taking precedence over base.
// The merge follows these rules:
//   - Scalar values: override overwrites base if override is non-zero
//   - Pointers: override overwrites base if non-nil
//   - Plain booleans: only true overrides, so a layer cannot unset them
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := base.Clone()

	if override.Mode != "" {
		result.Mode = override.Mode
	}
	if override.Separator != "" {
		result.Separator = override.Separator
	}
	if override.Limit != 0 {
		result.Limit = override.Limit
	}
	if override.DiagnosticFormat != "" {
		result.DiagnosticFormat = override.DiagnosticFormat
	}
	if override.Color != "" {
		result.Color = override.Color
	}
	if override.DisplayWidth != nil {
		displayWidth := *override.DisplayWidth
		result.DisplayWidth = &displayWidth
	}
	if override.OneBasedLines {
		result.OneBasedLines = true
	}
	if override.LogLevel != "" {
		result.LogLevel = override.LogLevel
	}

	result.HTML = mergeHTML(base.HTML, override.HTML)

	if override.Output != "" {
		result.Output = override.Output
	}
	if override.Tree {
		result.Tree = true
	}

	return result
}

// mergeHTML merges HTML export settings field by field.
func mergeHTML(base, override config.HTMLConfig) config.HTMLConfig {
	result := base

	if override.Enabled {
		result.Enabled = true
	}
	if override.Flavor != "" {
		result.Flavor = override.Flavor
	}
	if override.HardWraps {
		result.HardWraps = true
	}
	if override.Standalone {
		result.Standalone = true
	}
	if override.Title != "" {
		result.Title = override.Title
	}

	return result
}
