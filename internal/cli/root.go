// Package cli provides the Cobra command structure for stlap.
package cli

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/stlap/internal/configloader"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// globalFlags are shared by every command.
type globalFlags struct {
	debug      bool
	configPath string
	color      string
	isolated   bool
}

// NewRootCommand creates the root stlap command with all subcommands.
// The root command itself processes a story.
func NewRootCommand(info BuildInfo) *cobra.Command {
	globals := &globalFlags{}
	flags := &runFlags{}

	rootCmd := &cobra.Command{
		Use:   "stlap [flags] [file]",
		Short: "Render and check stlap stories",
		Long: `stlap reads a story written in the stlap markup, checks that every
@flag marker is matched by exactly one later @collect, and prints the
clean story text with comments and commands removed.

With no file, or with "-", the story is read from standard input.` + environmentHelp(),
		Example: `  stlap story.txt                 Print the story text
  stlap --check story.txt         Only report problems
  stlap --force -o out.txt story.txt
  stlap --html --output story.html story.txt
  cat story.txt | stlap --format json --check`,
		Args: maxOneFile,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStory(cmd, args, globals, flags)
		},
		Version:       info.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVar(&globals.debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&globals.configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&globals.color, "color", "auto",
		"colorize output: auto, always, never")
	rootCmd.PersistentFlags().BoolVar(&globals.isolated, "isolated", false,
		"ignore config files and STLAP_* environment variables except --config")
	addRunFlags(rootCmd, flags)

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	})

	rootCmd.AddCommand(newInitCommand(globals))
	rootCmd.AddCommand(newVersionCommand(info))

	NewHelpFormatter(globals.color, os.Stdout).ApplyToCommand(rootCmd)

	return rootCmd
}

func maxOneFile(_ *cobra.Command, args []string) error {
	if len(args) > 1 {
		return fmt.Errorf("%w: expected at most one file, got %d", ErrUsage, len(args))
	}
	return nil
}

// environmentHelp lists the STLAP_* variables for the long help text.
func environmentHelp() string {
	vars := configloader.ListEnvVars()
	names := make([]string, 0, len(vars))
	width := 0
	for name := range vars {
		names = append(names, name)
		width = max(width, len(name))
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("\n\nEnvironment:\n")
	for _, name := range names {
		fmt.Fprintf(&b, "  %-*s  %s\n", width, name, vars[name])
	}
	return strings.TrimSuffix(b.String(), "\n")
}
