// Package mdcat renders Markdown to styled, indentation-aware ANSI text
// for terminal display.
//
// The package is split along a producer/consumer seam: Tokenize turns a
// Markdown document into a flat, well-formed sequence of markup events
// (every Start has a matching End, text arrives normalized), and a
// Renderer consumes those events one at a time, writing colored output
// incrementally. Tables are the only construct that buffers: the
// compositor collects all rows of a table and emits it justified once
// the table closes, so column widths are globally correct.
//
// Core properties:
//   - Event-driven: any well-formed event sequence renders, not just
//     sequences produced by Tokenize
//   - Single pass, no concurrency, no state outside the Renderer
//   - Theme-driven styling via ANSI prefixes, degrading to plain text
//     on non-terminal writers
//
// Example:
//
//	reader := strings.NewReader("# Hello\n\nMarkdown in, ANSI out.\n")
//	err := mdcat.Render(mdcat.RenderRequest{
//		Reader: reader,
//		Writer: os.Stdout,
//		Theme:  mdcat.DefaultTheme(),
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Rendering can be customized with RenderOptions such as symbol echo
// (literal Markdown delimiters alongside color) and a center offset
// that shifts the whole document's heading indentation.
package mdcat
