package cli

import (
	"errors"
	"io/fs"

	"github.com/yaklabco/stlap/internal/configloader"
	"github.com/yaklabco/stlap/pkg/fsutil"
)

// Exit codes for stlap, following sysexits.h where one applies.
const (
	// ExitSuccess indicates the story was processed without errors.
	ExitSuccess = 0

	// ExitDiagnostics indicates the story has error diagnostics.
	ExitDiagnostics = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ExitCode maps an error returned by the root command onto an exit code.
func ExitCode(err error) int {
	var pathErr *fs.PathError

	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrDiagnosticsFound):
		return ExitDiagnostics
	case errors.Is(err, ErrUsage):
		return ExitInvalidUsage
	case configloader.IsConfigError(err):
		return ExitConfigError
	case errors.Is(err, fsutil.ErrNotFound),
		errors.Is(err, fsutil.ErrPermissionDenied),
		errors.Is(err, fsutil.ErrIsDirectory),
		errors.As(err, &pathErr):
		return ExitIOError
	default:
		return ExitInternalError
	}
}
