package fsutil

import (
	"context"
	"fmt"
	"io"

	"golang.org/x/term"
)

// StdinPath selects standard input when given as the input path.
const StdinPath = "-"

// Input is a story source read from a file or standard input.
type Input struct {
	// Name is the path shown in diagnostics. Empty for stdin.
	Name string

	Content []byte

	// Info is nil when the input came from stdin.
	Info *FileInfo
}

// IsStdin reports whether the input was read from standard input.
func (in *Input) IsStdin() bool {
	return in.Info == nil
}

// ReadInput reads the story at path. An empty path or StdinPath reads
// stdin instead, failing with ErrNoInput when stdin is an interactive
// terminal.
func ReadInput(ctx context.Context, path string, stdin io.Reader) (*Input, error) {
	if path != "" && path != StdinPath {
		content, info, err := ReadFile(ctx, path)
		if err != nil {
			return nil, err
		}
		return &Input{Name: path, Content: content, Info: info}, nil
	}

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("read stdin: %w", ctx.Err())
	default:
	}

	if stdin == nil || (path == "" && IsTerminal(stdin)) {
		return nil, ErrNoInput
	}

	content, err := io.ReadAll(stdin)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return &Input{Content: content}, nil
}

// fdReader is implemented by *os.File.
type fdReader interface {
	Fd() uintptr
}

// IsTerminal reports whether r is backed by an interactive terminal.
func IsTerminal(r any) bool {
	f, ok := r.(fdReader)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd())) //nolint:gosec // file descriptors fit in int
}
