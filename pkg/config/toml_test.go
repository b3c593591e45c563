package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/stlap/pkg/config"
)

func TestFromTOML(t *testing.T) {
	data := []byte(`
mode = "force"
limit = 3
color = "always"
display_width = false

[html]
enabled = true
hard_wraps = true
`)

	cfg, err := config.FromTOML(data)
	require.NoError(t, err)

	assert.Equal(t, config.ModeForce, cfg.Mode)
	assert.Equal(t, 3, cfg.Limit)
	assert.Equal(t, config.ColorAlways, cfg.Color)
	assert.False(t, cfg.UseDisplayWidth())
	assert.True(t, cfg.HTML.Enabled)
	assert.True(t, cfg.HTML.HardWraps)
}

func TestFromTOML_UnknownKeys(t *testing.T) {
	_, err := config.FromTOML([]byte("limt = 3\n[html]\ncolour = 1\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "limt")
	assert.Contains(t, err.Error(), "html.colour")
}

func TestFromTOML_Invalid(t *testing.T) {
	_, err := config.FromTOML([]byte("limit = = 3"))
	require.Error(t, err)
}

func TestEncodeDecode_PreservesSettings(t *testing.T) {
	for _, format := range []config.FileFormat{config.FileFormatYAML, config.FileFormatTOML} {
		t.Run(string(format), func(t *testing.T) {
			original := config.NewConfig()
			original.Separator = "\n* * *\n"
			original.HTML.Standalone = true

			data, err := original.Encode(format)
			require.NoError(t, err)

			decoded, err := config.Decode(data, format)
			require.NoError(t, err)
			assert.Equal(t, original, decoded)
		})
	}
}

func TestFileFormatFor(t *testing.T) {
	tests := []struct {
		path    string
		want    config.FileFormat
		wantErr bool
	}{
		{path: ".stlap.yml", want: config.FileFormatYAML},
		{path: "dir/config.YAML", want: config.FileFormatYAML},
		{path: ".stlap.toml", want: config.FileFormatTOML},
		{path: "stlap.json", wantErr: true},
		{path: "noext", wantErr: true},
	}

	for _, tt := range tests {
		got, err := config.FileFormatFor(tt.path)
		if tt.wantErr {
			require.Error(t, err, tt.path)
			continue
		}
		require.NoError(t, err, tt.path)
		assert.Equal(t, tt.want, got, tt.path)
	}
}

func TestGenerateTemplate_DecodesToDefaults(t *testing.T) {
	for _, format := range []config.FileFormat{config.FileFormatYAML, config.FileFormatTOML} {
		t.Run(string(format), func(t *testing.T) {
			data, err := config.GenerateTemplate(format)
			require.NoError(t, err)
			assert.Contains(t, string(data), "# stlap configuration")

			cfg, err := config.Decode(data, format)
			require.NoError(t, err)
			assert.Equal(t, config.NewConfig(), cfg)
		})
	}

	_, err := config.GenerateTemplate("ini")
	require.Error(t, err)
}
