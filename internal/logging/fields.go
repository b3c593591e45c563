package logging

// Field name constants for structured logging.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldOutput     = "output"
	FieldWorkingDir = "working_dir"
	FieldConfig     = "config"

	// Run fields.
	FieldMode   = "mode"
	FieldFormat = "format"
	FieldHTML   = "html"
	FieldBytes  = "bytes"
	FieldLines  = "lines"

	// Result fields.
	FieldDiagnostics = "diagnostics"
	FieldErrors      = "errors"
	FieldMarkers     = "markers"
	FieldParagraphs  = "paragraphs"
	FieldValid       = "valid"
	FieldWritten     = "written"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
