package cli_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/stlap/internal/cli"
	"github.com/yaklabco/stlap/pkg/config"
	"github.com/yaklabco/stlap/pkg/fsutil"
)

func TestInit(t *testing.T) {
	t.Parallel()

	t.Run("writes a yaml template", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), ".stlap.yml")
		_, _, err := execute(t, "", "init", "-o", path)
		require.NoError(t, err)

		content, err := os.ReadFile(path)
		require.NoError(t, err)

		cfg, err := config.FromYAML(content)
		require.NoError(t, err)
		assert.Equal(t, config.DefaultLimit, cfg.Limit)
	})

	t.Run("writes a toml template", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "stlap.toml")
		_, _, err := execute(t, "", "init", "--format", "toml", "-o", path)
		require.NoError(t, err)

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		_, err = config.FromTOML(content)
		require.NoError(t, err)
	})

	t.Run("refuses to overwrite", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), ".stlap.yml")
		require.NoError(t, os.WriteFile(path, []byte("limit: 2\n"), 0o644))

		_, _, err := execute(t, "", "init", "-o", path)
		assert.Equal(t, cli.ExitInvalidUsage, cli.ExitCode(err))

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "limit: 2\n", string(content))
	})

	t.Run("force keeps a backup", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), ".stlap.yml")
		require.NoError(t, os.WriteFile(path, []byte("limit: 2\n"), 0o644))

		_, _, err := execute(t, "", "init", "--force", "-o", path)
		require.NoError(t, err)

		backup, err := os.ReadFile(fsutil.BackupPath(path))
		require.NoError(t, err)
		assert.Equal(t, "limit: 2\n", string(backup))
	})

	t.Run("effective writes the merged configuration", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		configPath := filepath.Join(dir, "story.toml")
		require.NoError(t, os.WriteFile(configPath, []byte("separator = \"\\n* * *\\n\"\nlimit = 2\n"), 0o644))

		stdout, _, err := execute(t, "", "--config", configPath, "init", "--effective", "-o", "-")
		require.NoError(t, err)

		cfg, err := config.FromYAML([]byte(stdout))
		require.NoError(t, err)
		assert.Equal(t, "\n* * *\n", cfg.Separator)
		assert.Equal(t, 2, cfg.Limit)
		assert.Equal(t, config.ModeEmit, cfg.Mode)
	})

	t.Run("effective toml file decodes back", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), ".stlap.toml")
		_, _, err := execute(t, "", "init", "--effective", "--format", "toml", "-o", path)
		require.NoError(t, err)

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		cfg, err := config.FromTOML(content)
		require.NoError(t, err)
		assert.Equal(t, config.NewConfig(), cfg)
	})

	t.Run("rejects unknown format", func(t *testing.T) {
		t.Parallel()

		_, _, err := execute(t, "", "init", "--format", "json", "-o", filepath.Join(t.TempDir(), "x"))
		assert.Equal(t, cli.ExitInvalidUsage, cli.ExitCode(err))
	})
}
