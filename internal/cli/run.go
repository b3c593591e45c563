package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/yaklabco/stlap/internal/configloader"
	"github.com/yaklabco/stlap/internal/logging"
	"github.com/yaklabco/stlap/pkg/config"
	"github.com/yaklabco/stlap/pkg/export"
	"github.com/yaklabco/stlap/pkg/fsutil"
	"github.com/yaklabco/stlap/pkg/reporter"
	"github.com/yaklabco/stlap/pkg/story"
	"github.com/yaklabco/stlap/pkg/syntax"
)

var (
	// ErrDiagnosticsFound is returned when the story has error diagnostics.
	// It only signals the exit code; the diagnostics were already reported.
	ErrDiagnosticsFound = errors.New("story has errors")

	// ErrUsage marks invalid command-line usage.
	ErrUsage = errors.New("invalid usage")
)

type runFlags struct {
	force          bool
	check          bool
	html           bool
	tree           bool
	noDisplayWidth bool
	oneBasedLines  bool
	output         string
	format         string
	separator      string
	limit          int
}

func addRunFlags(cmd *cobra.Command, flags *runFlags) {
	cmd.Flags().BoolVar(&flags.force, "force", false, "print the story text even when it has errors")
	cmd.Flags().BoolVar(&flags.check, "check", false, "only report diagnostics, print no text")
	cmd.Flags().BoolVar(&flags.html, "html", false, "render the story text as HTML")
	cmd.Flags().BoolVar(&flags.tree, "tree", false, "print the document tree instead of the text")
	cmd.Flags().BoolVar(&flags.noDisplayWidth, "no-display-width", false,
		"align carets by rune count instead of terminal cell width")
	cmd.Flags().BoolVar(&flags.oneBasedLines, "one-based-lines", false,
		"number excerpt lines from one instead of zero")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "write the result to a file instead of stdout")
	cmd.Flags().StringVar(&flags.format, "format", "text", "diagnostic format: text, json")
	cmd.Flags().StringVar(&flags.separator, "separator", "",
		`text placed between paragraphs (escapes \n and \t allowed)`)
	cmd.Flags().IntVar(&flags.limit, "limit", 0, "maximum diagnostics shown in text format (0 = default)")
}

// cliConfig turns the flags that were actually set into a config layer.
func cliConfig(cmd *cobra.Command, flags *runFlags, color string) (*config.Config, error) {
	if flags.force && flags.check {
		return nil, fmt.Errorf("%w: --force and --check are mutually exclusive", ErrUsage)
	}

	cfg := &config.Config{
		Output: flags.output,
		Tree:   flags.tree,
	}

	switch {
	case flags.force:
		cfg.Mode = config.ModeForce
	case flags.check:
		cfg.Mode = config.ModeCheck
	}

	changed := cmd.Flags().Changed
	if changed("format") {
		format, err := reporter.ParseFormat(flags.format)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrUsage, err)
		}
		cfg.DiagnosticFormat = config.DiagnosticFormat(format)
	}
	if changed("separator") {
		cfg.Separator = config.UnescapeSeparator(flags.separator)
	}
	if changed("limit") {
		if flags.limit < 0 {
			return nil, fmt.Errorf("%w: --limit must be >= 0", ErrUsage)
		}
		cfg.Limit = flags.limit
	}
	if changed("color") {
		cfg.Color = color
	}
	if flags.noDisplayWidth {
		displayWidth := false
		cfg.DisplayWidth = &displayWidth
	}
	if flags.oneBasedLines {
		cfg.OneBasedLines = true
	}
	if flags.html {
		cfg.HTML.Enabled = true
	}

	return cfg, nil
}

func runStory(cmd *cobra.Command, args []string, globals *globalFlags, flags *runFlags) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cliCfg, err := cliConfig(cmd, flags, globals.color)
	if err != nil {
		return err
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		ExplicitPath:        globals.configPath,
		IgnoreSystemConfig:  globals.isolated,
		IgnoreUserConfig:    globals.isolated,
		IgnoreProjectConfig: globals.isolated,
		IgnoreEnv:           globals.isolated,
		CLIConfig:           cliCfg,
	})
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	cfg := loadResult.Config

	level := cfg.LogLevel
	if globals.debug {
		level = "debug"
	}
	logger := logging.NewWithWriter(cmd.ErrOrStderr(), level)
	ctx = logging.WithLogger(ctx, logger)

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration", logging.FieldConfig, loadResult.LoadedFrom)
	}

	path := ""
	if len(args) == 1 {
		path = args[0]
	}

	input, err := fsutil.ReadInput(ctx, path, cmd.InOrStdin())
	if err != nil {
		if errors.Is(err, fsutil.ErrNoInput) {
			return fmt.Errorf("%w: %w", ErrUsage, err)
		}
		return err
	}
	logger.Debug("read story", logging.FieldPath, displayName(input), logging.FieldBytes, len(input.Content))

	doc, err := story.Parse(string(input.Content))
	if err != nil {
		return fmt.Errorf("parse story: %w", err)
	}
	logger.Debug("parsed story",
		logging.FieldLines, doc.LineCount(),
		logging.FieldDiagnostics, len(doc.Diagnostics()),
		logging.FieldParagraphs, len(doc.Paragraphs()),
		logging.FieldMarkers, doc.Markers(),
		logging.FieldValid, doc.IsValid(),
	)

	if cfg.Tree {
		var buf bytes.Buffer
		if err := syntax.Dump(&buf, doc.Root()); err != nil {
			return fmt.Errorf("dump tree: %w", err)
		}
		return writeResult(ctx, cmd.OutOrStdout(), cfg.Output, buf.Bytes())
	}

	if err := reportDiagnostics(ctx, cmd, cfg, input, doc); err != nil {
		return err
	}

	if cfg.Mode == config.ModeCheck || (cfg.Mode == config.ModeEmit && !doc.IsValid()) {
		logger.Debug("no text emitted", logging.FieldMode, cfg.Mode, logging.FieldValid, doc.IsValid())
		return diagnosticsResult(doc)
	}

	text, err := renderText(doc, cfg, logger)
	if err != nil {
		return err
	}
	if err := writeResult(ctx, cmd.OutOrStdout(), cfg.Output, text); err != nil {
		return err
	}

	return diagnosticsResult(doc)
}

// reportDiagnostics writes the diagnostics of doc. In check mode the
// report is the only output, so it goes to stdout and is written even for
// a clean story; otherwise it goes to stderr and only when there is
// something to say.
func reportDiagnostics(
	ctx context.Context, cmd *cobra.Command, cfg *config.Config, input *fsutil.Input, doc *story.Document,
) error {
	check := cfg.Mode == config.ModeCheck
	if !check && len(doc.Diagnostics()) == 0 {
		return nil
	}

	writer := cmd.ErrOrStderr()
	if check {
		writer = cmd.OutOrStdout()
	}

	rep, err := reporter.New(reporter.Options{
		Writer:        writer,
		Format:        reporter.Format(cfg.DiagnosticFormat),
		Path:          reportPath(input),
		Color:         cfg.Color,
		Limit:         cfg.Limit,
		DisplayWidth:  cfg.UseDisplayWidth(),
		OneBasedLines: cfg.OneBasedLines,
		ShowSummary:   true,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	count, err := rep.Report(ctx, doc)
	if err != nil {
		return fmt.Errorf("report diagnostics: %w", err)
	}
	logging.FromContext(ctx).Debug("reported diagnostics",
		logging.FieldDiagnostics, count,
		logging.FieldFormat, cfg.DiagnosticFormat,
	)
	return nil
}

func renderText(doc *story.Document, cfg *config.Config, logger *log.Logger) ([]byte, error) {
	if !cfg.HTML.Enabled {
		return []byte(doc.RenderTextWith(cfg.EffectiveSeparator())), nil
	}

	if cfg.Separator != config.DefaultSeparator {
		logger.Debug("separator is ignored for HTML output")
	}
	out, err := export.HTML(doc, export.Options{
		Flavor:     string(cfg.HTML.Flavor),
		HardWraps:  cfg.HTML.HardWraps,
		Standalone: cfg.HTML.Standalone,
		Title:      cfg.HTML.Title,
	})
	if err != nil {
		return nil, fmt.Errorf("export html: %w", err)
	}
	logger.Debug("rendered html", logging.FieldHTML, cfg.HTML.Flavor, logging.FieldBytes, len(out))
	return out, nil
}

// writeResult writes content to the output file when one is configured,
// and to stdout otherwise.
func writeResult(ctx context.Context, stdout io.Writer, output string, content []byte) error {
	logger := logging.FromContext(ctx)

	if output == "" || output == fsutil.StdinPath {
		if _, err := stdout.Write(content); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		return nil
	}

	written, err := fsutil.WriteAtomicIfChanged(ctx, output, content, 0)
	if err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}
	logger.Debug("wrote output",
		logging.FieldOutput, output,
		logging.FieldBytes, len(content),
		logging.FieldWritten, written,
	)
	return nil
}

func diagnosticsResult(doc *story.Document) error {
	if doc.IsValid() {
		return nil
	}
	return fmt.Errorf("%w: %d error(s)", ErrDiagnosticsFound, doc.ErrorCount())
}

func displayName(input *fsutil.Input) string {
	if input.IsStdin() {
		return "<stdin>"
	}
	return input.Name
}

// reportPath names the input for reporters, which print "<stdin>" for
// StdinPath.
func reportPath(input *fsutil.Input) string {
	if input.IsStdin() {
		return fsutil.StdinPath
	}
	return input.Name
}
