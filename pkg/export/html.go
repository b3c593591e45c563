// Package export converts rendered stlap stories into publishable formats.
package export

import (
	"bytes"
	"fmt"
	"html"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"

	"github.com/yaklabco/stlap/pkg/story"
)

// Markdown flavors accepted by HTML.
const (
	FlavorCommonMark = "commonmark"
	FlavorGFM        = "gfm"
)

// Options configures HTML export.
type Options struct {
	// Flavor selects the Markdown dialect of the story text.
	// Unknown values fall back to CommonMark.
	Flavor string

	// HardWraps turns newlines inside a paragraph into <br>.
	HardWraps bool

	// Standalone wraps the fragment in a complete HTML document.
	Standalone bool

	// Title is the document title used when Standalone is set.
	Title string
}

// HTML renders the story text of doc as HTML. Each paragraph of the story
// becomes a paragraph of Markdown, so inline emphasis and links in the
// text are honored. Raw HTML in the story is dropped.
func HTML(doc *story.Document, opts Options) ([]byte, error) {
	var body bytes.Buffer
	source := []byte(strings.Join(doc.Paragraphs(), "\n\n") + "\n")
	if err := newMarkdown(opts).Convert(source, &body); err != nil {
		return nil, fmt.Errorf("convert story to HTML: %w", err)
	}

	if !opts.Standalone {
		return body.Bytes(), nil
	}

	var page bytes.Buffer
	page.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&page, "<title>%s</title>\n", html.EscapeString(opts.Title))
	page.WriteString("</head>\n<body>\n")
	page.Write(body.Bytes())
	page.WriteString("</body>\n</html>\n")
	return page.Bytes(), nil
}

//nolint:ireturn // goldmark.Markdown is an external interface type
func newMarkdown(opts Options) goldmark.Markdown {
	var gmOpts []goldmark.Option

	switch opts.Flavor {
	case FlavorGFM:
		gmOpts = append(gmOpts, goldmark.WithExtensions(extension.GFM))
	default:
		// No extensions for pure CommonMark.
	}

	if opts.HardWraps {
		gmOpts = append(gmOpts, goldmark.WithRendererOptions(gmhtml.WithHardWraps()))
	}

	return goldmark.New(gmOpts...)
}
