package config

import "fmt"

const yamlTemplate = `# stlap configuration
# Files are searched upward from the working directory as .stlap.yml,
# .stlap.yaml or .stlap.toml. Environment variables STLAP_* and command
# line flags take precedence.

# What to do with a story: emit (text when valid), force (text even when
# invalid) or check (diagnostics only)
mode: emit

# Placed between rendered paragraphs
separator: "\n\n"

# Maximum number of diagnostics shown in text output
limit: 5

# Diagnostic output: text or json
diagnostic_format: text

# Colored diagnostics: auto, always or never
color: auto

# Align carets by terminal cell width (wide characters count as two)
display_width: true

# Number excerpt lines from one instead of zero
one_based_lines: false

# Log level: debug, info, warn or error
log_level: warn

# HTML export
html:
  enabled: false
  # Markdown flavor of the story text: commonmark or gfm
  flavor: commonmark
  hard_wraps: false
  standalone: false
  # title: My Story
`

const tomlTemplate = `# stlap configuration
# Files are searched upward from the working directory as .stlap.yml,
# .stlap.yaml or .stlap.toml. Environment variables STLAP_* and command
# line flags take precedence.

# What to do with a story: emit (text when valid), force (text even when
# invalid) or check (diagnostics only)
mode = "emit"

# Placed between rendered paragraphs
separator = "\n\n"

# Maximum number of diagnostics shown in text output
limit = 5

# Diagnostic output: text or json
diagnostic_format = "text"

# Colored diagnostics: auto, always or never
color = "auto"

# Align carets by terminal cell width (wide characters count as two)
display_width = true

# Number excerpt lines from one instead of zero
one_based_lines = false

# Log level: debug, info, warn or error
log_level = "warn"

# HTML export
[html]
enabled = false
# Markdown flavor of the story text: commonmark or gfm
flavor = "commonmark"
hard_wraps = false
standalone = false
# title = "My Story"
`

// GenerateTemplate returns a commented configuration file with the default
// settings, as written by "stlap init".
func GenerateTemplate(format FileFormat) ([]byte, error) {
	switch format {
	case FileFormatYAML:
		return []byte(yamlTemplate), nil
	case FileFormatTOML:
		return []byte(tomlTemplate), nil
	default:
		return nil, fmt.Errorf("unsupported config format %q", format)
	}
}
