package configloader

import (
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/yaklabco/stlap/pkg/config"
)

// envVarPrefix is the prefix for all stlap environment variables.
const envVarPrefix = "STLAP_"

// envFieldType represents the type of a configuration field.
type envFieldType int

const (
	envTypeString envFieldType = iota
	envTypeBool
	envTypeInt
)

// envMapping defines environment variable to config field mappings.
type envMapping struct {
	field       string
	typ         envFieldType
	description string
}

// envMappings maps environment variable names (without prefix) to config fields.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envMapping{
	"MODE":              {field: "mode", typ: envTypeString, description: "Mode: emit, force or check"},
	"SEPARATOR":         {field: "separator", typ: envTypeString, description: `Paragraph separator; \n and \t are unescaped`},
	"LIMIT":             {field: "limit", typ: envTypeInt, description: "Maximum diagnostics shown in text output"},
	"DIAGNOSTIC_FORMAT": {field: "diagnostic_format", typ: envTypeString, description: "Diagnostic output: text or json"},
	"COLOR":             {field: "color", typ: envTypeString, description: "Colored output: auto, always or never"},
	"DISPLAY_WIDTH":     {field: "display_width", typ: envTypeBool, description: "Align carets by cell width: true or false"},
	"ONE_BASED_LINES":   {field: "one_based_lines", typ: envTypeBool, description: "Number excerpt lines from one: true or false"},
	"LOG_LEVEL":         {field: "log_level", typ: envTypeString, description: "Log level: debug, info, warn or error"},
	"HTML":              {field: "html.enabled", typ: envTypeBool, description: "Emit HTML: true or false"},
	"HTML_FLAVOR":       {field: "html.flavor", typ: envTypeString, description: "Markdown flavor: commonmark or gfm"},
	"HTML_HARD_WRAPS":   {field: "html.hard_wraps", typ: envTypeBool, description: "Render newlines as <br>: true or false"},
	"HTML_STANDALONE":   {field: "html.standalone", typ: envTypeBool, description: "Emit a complete HTML page: true or false"},
	"HTML_TITLE":        {field: "html.title", typ: envTypeString, description: "Title of standalone HTML output"},
}

// LoadFromEnv applies environment variable overrides to the configuration.
// Environment variables are prefixed with STLAP_ (e.g., STLAP_MODE).
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	for _, envSuffix := range sortedEnvSuffixes() {
		envVar := envVarPrefix + envSuffix
		value := os.Getenv(envVar)
		if value == "" {
			continue
		}

		if err := applyEnvValue(cfg, envMappings[envSuffix], value, envVar); err != nil {
			return err
		}
	}

	return nil
}

// applyEnvValue applies a single environment variable value to the config.
func applyEnvValue(cfg *config.Config, mapping envMapping, value, envVar string) error {
	switch mapping.typ {
	case envTypeString:
		return setStringField(cfg, mapping.field, value)
	case envTypeBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return &ValidationError{
				Field:   envVar,
				Value:   value,
				Message: fmt.Sprintf("invalid boolean %q (expected true/false/1/0)", value),
			}
		}
		return setBoolField(cfg, mapping.field, b)
	case envTypeInt:
		i, err := strconv.Atoi(value)
		if err != nil {
			return &ValidationError{
				Field:   envVar,
				Value:   value,
				Message: fmt.Sprintf("invalid integer %q", value),
			}
		}
		return setIntField(cfg, mapping.field, i)
	default:
		return fmt.Errorf("unknown field type for %s", envVar)
	}
}

// setStringField sets a string field on the config by field path.
func setStringField(cfg *config.Config, field, value string) error {
	switch field {
	case "mode":
		cfg.Mode = config.Mode(value)
	case "separator":
		cfg.Separator = config.UnescapeSeparator(value)
	case "diagnostic_format":
		cfg.DiagnosticFormat = config.DiagnosticFormat(value)
	case "color":
		cfg.Color = value
	case "log_level":
		cfg.LogLevel = value
	case "html.flavor":
		cfg.HTML.Flavor = config.Flavor(value)
	case "html.title":
		cfg.HTML.Title = value
	default:
		return fmt.Errorf("unknown string field: %s", field)
	}
	return nil
}

// setBoolField sets a boolean field on the config by field path.
func setBoolField(cfg *config.Config, field string, value bool) error {
	switch field {
	case "display_width":
		cfg.DisplayWidth = &value
	case "one_based_lines":
		cfg.OneBasedLines = value
	case "html.enabled":
		cfg.HTML.Enabled = value
	case "html.hard_wraps":
		cfg.HTML.HardWraps = value
	case "html.standalone":
		cfg.HTML.Standalone = value
	default:
		return fmt.Errorf("unknown boolean field: %s", field)
	}
	return nil
}

// setIntField sets an integer field on the config by field path.
func setIntField(cfg *config.Config, field string, value int) error {
	switch field {
	case "limit":
		cfg.Limit = value
	default:
		return fmt.Errorf("unknown integer field: %s", field)
	}
	return nil
}

// ListEnvVars returns all supported environment variables with their descriptions.
func ListEnvVars() map[string]string {
	vars := make(map[string]string, len(envMappings))
	for suffix, mapping := range envMappings {
		vars[envVarPrefix+suffix] = mapping.description
	}
	return vars
}

func sortedEnvSuffixes() []string {
	suffixes := make([]string, 0, len(envMappings))
	for suffix := range envMappings {
		suffixes = append(suffixes, suffix)
	}
	sort.Strings(suffixes)
	return suffixes
}
