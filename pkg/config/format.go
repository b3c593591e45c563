package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

// FileFormat is the serialization of a configuration file.
type FileFormat string

const (
	FileFormatYAML FileFormat = "yaml"
	FileFormatTOML FileFormat = "toml"
)

// FileFormatFor picks the file format from a path's extension.
func FileFormatFor(path string) (FileFormat, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		return FileFormatYAML, nil
	case ".toml":
		return FileFormatTOML, nil
	default:
		return "", fmt.Errorf("unsupported config file extension %q (want .yml, .yaml or .toml)", filepath.Ext(path))
	}
}

// Decode parses configuration data in the given format. Unknown keys are
// rejected so typos do not pass silently.
func Decode(data []byte, format FileFormat) (*Config, error) {
	switch format {
	case FileFormatYAML:
		return FromYAML(data)
	case FileFormatTOML:
		return FromTOML(data)
	default:
		return nil, fmt.Errorf("unsupported config format %q", format)
	}
}

// Encode serializes the configuration in the given format.
func (c *Config) Encode(format FileFormat) ([]byte, error) {
	switch format {
	case FileFormatYAML:
		return c.ToYAML()
	case FileFormatTOML:
		return c.ToTOML()
	default:
		return nil, fmt.Errorf("unsupported config format %q", format)
	}
}
