package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yaklabco/stlap/internal/configloader"
	"github.com/yaklabco/stlap/internal/logging"
	"github.com/yaklabco/stlap/pkg/config"
	"github.com/yaklabco/stlap/pkg/fsutil"
)

// configFilePermissions is the file mode for configuration files (world-readable).
const configFilePermissions = 0644

type initFlags struct {
	force     bool
	effective bool
	format    string
	output    string
}

func newInitCommand(globals *globalFlags) *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a stlap configuration file",
		Long: `Create a .stlap.yml configuration file in the current directory holding
the default settings, each documented. Edit it to change how stories are
rendered and how problems are reported.

With --effective the file instead holds the configuration currently in
effect, merged from every config file and STLAP_* variable.`,
		Example: `  stlap init                      Create .stlap.yml
  stlap init --format toml        Create .stlap.toml instead
  stlap init -o ~/.config/stlap/config.yaml
  stlap init --force              Replace an existing file, keeping a .bak copy
  stlap init --effective -o -     Print the merged configuration`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, globals, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "overwrite an existing configuration file")
	cmd.Flags().BoolVar(&flags.effective, "effective", false, "write the merged configuration in effect instead of the template")
	cmd.Flags().StringVar(&flags.format, "format", "yaml", "file format: yaml or toml")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output file path, - for stdout (default: .stlap.yml or .stlap.toml)")

	return cmd
}

func runInit(cmd *cobra.Command, globals *globalFlags, flags *initFlags) error {
	ctx := cmd.Context()
	logger := logging.NewWithWriter(cmd.ErrOrStderr(), "info")

	format := config.FileFormat(flags.format)
	if format != config.FileFormatYAML && format != config.FileFormatTOML {
		return fmt.Errorf("%w: invalid format %q: must be yaml or toml", ErrUsage, flags.format)
	}

	content, err := initContent(cmd, globals, flags, format)
	if err != nil {
		return err
	}

	outputPath := flags.output
	if outputPath == fsutil.StdinPath {
		if _, err := cmd.OutOrStdout().Write(content); err != nil {
			return fmt.Errorf("write configuration: %w", err)
		}
		return nil
	}
	if outputPath == "" {
		outputPath = ".stlap.yml"
		if format == config.FileFormatTOML {
			outputPath = ".stlap.toml"
		}
	}

	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if _, err := os.Stat(absPath); err == nil {
		if !flags.force {
			return fmt.Errorf("%w: file %q already exists; use --force to overwrite", ErrUsage, outputPath)
		}
		backedUp, err := fsutil.CreateBackup(ctx, absPath)
		if err != nil {
			return err
		}
		if backedUp {
			logger.Info("saved previous configuration", logging.FieldPath, fsutil.BackupPath(outputPath))
		}
		logger.Warn("overwriting existing file", logging.FieldPath, outputPath)
	}

	if err := fsutil.WriteAtomic(ctx, absPath, content, configFilePermissions); err != nil {
		return fmt.Errorf("write %s: %w", outputPath, err)
	}

	logger.Info("created configuration file", logging.FieldPath, outputPath)
	return nil
}

// initContent renders either the documented template or the merged
// configuration in effect.
func initContent(cmd *cobra.Command, globals *globalFlags, flags *initFlags, format config.FileFormat) ([]byte, error) {
	if !flags.effective {
		content, err := config.GenerateTemplate(format)
		if err != nil {
			return nil, fmt.Errorf("generate template: %w", err)
		}
		return content, nil
	}

	result, err := configloader.Load(cmd.Context(), configloader.LoadOptions{
		ExplicitPath:        globals.configPath,
		IgnoreSystemConfig:  globals.isolated,
		IgnoreUserConfig:    globals.isolated,
		IgnoreProjectConfig: globals.isolated,
		IgnoreEnv:           globals.isolated,
	})
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	content, err := result.Config.Encode(format)
	if err != nil {
		return nil, fmt.Errorf("encode configuration: %w", err)
	}
	return content, nil
}
