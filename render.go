package mdcat

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// blockContext is the renderer's block-level state. One enumeration
// instead of independent booleans keeps impossible combinations
// unrepresentable.
type blockContext uint8

const (
	blockNone blockContext = iota
	blockQuote
	blockCode
	blockListItem
)

type listLevel struct {
	ordered bool
	next    int
}

type linkFrame struct {
	destination string
	image       bool
	osc8        bool
}

const ruleGlyph = "---"

// Renderer consumes markup events in order and writes styled terminal
// output incrementally. It owns all rendering state; create one per
// document with NewRenderer, feed it with Consume, and finish with
// Flush. Any write error is fatal: rendering aborts and the Renderer
// must be discarded.
type Renderer struct {
	out    styledWriter
	styles Styles
	cfg    renderConfig

	indentLevel  int
	headingLevel int
	block        blockContext
	quoteDepth   int
	quotePending bool
	styleStack   []ConstructKind
	inlineStyle  Style
	listStack    []listLevel
	linkStack    []linkFrame
	table        *tableBuffer

	atLineStart      bool
	trailingNewlines int
	pendingBlank     bool
	seenContent      bool
}

// NewRenderer creates a Renderer writing to w. A nil theme selects the
// default theme. Color support is auto-detected from w unless
// WithColor is given.
func NewRenderer(w io.Writer, theme Theme, opts ...RenderOption) *Renderer {
	cfg := renderConfig{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if theme == nil {
		theme = DefaultTheme()
	}
	if !cfg.colorSet {
		cfg.color = DetectColorSupport(w)
	}
	r := &Renderer{
		out:              styledWriter{w: w, color: cfg.color},
		styles:           theme.Styles(),
		cfg:              cfg,
		atLineStart:      true,
		trailingNewlines: 1,
	}
	r.inlineStyle = r.styles.Text
	return r
}

// Consume processes one event. Events must arrive in the order the
// tokenizer produced them. Unrecognized events and End events with no
// matching Start are ignored; this is the forward-compatible default.
func (r *Renderer) Consume(ev Event) error {
	if r.table != nil {
		return r.consumeTable(ev)
	}
	switch ev.Kind {
	case EventStart:
		return r.startConstruct(ev.Construct)
	case EventEnd:
		return r.endConstruct(ev.Construct)
	case EventText:
		return r.text(ev.Text)
	case EventInlineCode:
		return r.inlineCode(ev.Text)
	case EventSoftBreak, EventHardBreak:
		return r.lineBreak()
	case EventRule:
		return r.rule()
	case EventFootnoteRef:
		return r.footnoteRef(ev.Text)
	}
	return nil
}

// Flush resets any active style and guarantees a trailing newline.
// Call once after the last event.
func (r *Renderer) Flush() error {
	if err := r.out.reset(); err != nil {
		return err
	}
	if !r.atLineStart {
		return r.newline()
	}
	return nil
}

// --- output plumbing ---

// write emits visible text, materializing a pending blank-line
// separator first. Pure newline writes bypass the separator so that
// Soft/HardBreak always produce exactly one line break.
func (r *Renderer) write(text string, style Style) error {
	if text == "" {
		return nil
	}
	if text != "\n" {
		if r.pendingBlank {
			r.pendingBlank = false
			if r.seenContent && r.trailingNewlines < 2 {
				if err := r.writeDirect("\n", Style{}); err != nil {
					return err
				}
			}
		}
		r.seenContent = true
	}
	return r.writeDirect(text, style)
}

func (r *Renderer) writeDirect(text string, style Style) error {
	if err := r.out.write(text, style); err != nil {
		return err
	}
	trailing := 0
	allNewlines := true
	for i := len(text) - 1; i >= 0; i-- {
		if text[i] == '\n' {
			trailing++
		} else {
			allNewlines = false
			break
		}
	}
	if allNewlines {
		r.trailingNewlines += trailing
	} else {
		r.trailingNewlines = trailing
	}
	r.atLineStart = trailing > 0
	return nil
}

func (r *Renderer) newline() error {
	return r.writeDirect("\n", Style{})
}

func (r *Renderer) ensureNewline() error {
	if r.trailingNewlines < 1 {
		return r.newline()
	}
	return nil
}

// blockBoundary closes the current line and requests one blank line of
// separation before the next visible content.
func (r *Renderer) blockBoundary() error {
	if err := r.ensureNewline(); err != nil {
		return err
	}
	r.pendingBlank = true
	return nil
}

func (r *Renderer) indent() string {
	if r.indentLevel <= 0 {
		return ""
	}
	return strings.Repeat("\t", r.indentLevel)
}

// leadingIndent decides whether an indent prefix precedes the next
// text run, per block context. The quote prefix is deferred to the
// first run so that nested quote Starts collapse into one "> > "
// margin; continuation lines get a two-space sub-indent per depth.
// List items and open inline styles suppress the indent.
func (r *Renderer) leadingIndent() error {
	switch r.block {
	case blockQuote:
		if r.quotePending {
			return r.writeQuotePrefix()
		}
		if r.atLineStart {
			return r.write(r.indent()+strings.Repeat("  ", r.quoteDepth), r.styles.Quote)
		}
		return nil
	case blockListItem:
		return nil
	}
	if !r.atLineStart || len(r.styleStack) > 0 || r.headingLevel > 0 {
		return nil
	}
	return r.write(r.indent(), Style{})
}

func (r *Renderer) textStyle() Style {
	if r.block == blockCode {
		return r.styles.CodeBlock
	}
	if r.headingLevel > 0 {
		return r.styles.Heading[r.headingLevel-1]
	}
	return r.inlineStyle
}

// recomputeInlineStyle rebuilds the combined style of all open inline
// constructs. Closing an inner style therefore restores the outer
// styles instead of resetting to default.
func (r *Renderer) recomputeInlineStyle() {
	var b strings.Builder
	if len(r.linkStack) > 0 {
		b.WriteString(r.styles.LinkText.Prefix)
	}
	for _, kind := range r.styleStack {
		switch kind {
		case ConstructStrong:
			b.WriteString(r.styles.Strong.Prefix)
		case ConstructEmphasis:
			b.WriteString(r.styles.Emphasis.Prefix)
		case ConstructStrikethrough:
			b.WriteString(r.styles.Strikethrough.Prefix)
		}
	}
	if b.Len() == 0 {
		r.inlineStyle = r.styles.Text
		return
	}
	r.inlineStyle = Style{Prefix: r.styles.Text.Prefix + b.String()}
}

func styleDelimiter(kind ConstructKind) string {
	switch kind {
	case ConstructStrong:
		return "**"
	case ConstructEmphasis:
		return "*"
	case ConstructStrikethrough:
		return "~~"
	}
	return ""
}

// --- construct boundaries ---

func (r *Renderer) startConstruct(c Construct) error {
	switch c.Kind {
	case ConstructParagraph:
		return nil
	case ConstructHeading:
		return r.startHeading(c.Level)
	case ConstructStrong, ConstructEmphasis, ConstructStrikethrough:
		r.styleStack = append(r.styleStack, c.Kind)
		r.recomputeInlineStyle()
		if r.cfg.symbolEcho {
			return r.write(styleDelimiter(c.Kind), r.inlineStyle)
		}
		return nil
	case ConstructBlockQuote:
		return r.startBlockQuote()
	case ConstructCodeBlock:
		return r.startCodeBlock(c.Language)
	case ConstructList:
		start := 1
		if c.Ordered && c.Start > 0 {
			start = c.Start
		}
		r.listStack = append(r.listStack, listLevel{ordered: c.Ordered, next: start})
		return nil
	case ConstructListItem:
		return r.startListItem()
	case ConstructLink, ConstructImage:
		return r.startLink(c)
	case ConstructTable:
		return r.startTable(c.Alignments)
	}
	// Table rows and cells outside a table, and unknown constructs,
	// are ignored.
	return nil
}

func (r *Renderer) endConstruct(c Construct) error {
	switch c.Kind {
	case ConstructParagraph:
		return r.blockBoundary()
	case ConstructHeading:
		r.headingLevel = 0
		return r.blockBoundary()
	case ConstructStrong, ConstructEmphasis, ConstructStrikethrough:
		if len(r.styleStack) == 0 || r.styleStack[len(r.styleStack)-1] != c.Kind {
			return nil
		}
		var err error
		if r.cfg.symbolEcho {
			err = r.write(styleDelimiter(c.Kind), r.inlineStyle)
		}
		r.styleStack = r.styleStack[:len(r.styleStack)-1]
		r.recomputeInlineStyle()
		return err
	case ConstructBlockQuote:
		if r.quoteDepth > 0 {
			r.quoteDepth--
		}
		r.quotePending = false
		if r.quoteDepth == 0 && r.block == blockQuote {
			r.block = blockNone
		}
		return r.blockBoundary()
	case ConstructCodeBlock:
		return r.endCodeBlock()
	case ConstructList:
		if len(r.listStack) > 0 {
			r.listStack = r.listStack[:len(r.listStack)-1]
		}
		if len(r.listStack) == 0 {
			// The list container is invisible; only the outermost End
			// requests separation from following content.
			r.pendingBlank = true
		}
		return nil
	case ConstructListItem:
		if r.block == blockListItem {
			r.block = blockNone
		}
		return r.ensureNewline()
	case ConstructLink, ConstructImage:
		return r.endLink(c.Kind)
	}
	return nil
}

func (r *Renderer) startHeading(level int) error {
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	r.indentLevel = level - 1 + r.cfg.centerOffset
	r.headingLevel = level
	if err := r.blockBoundary(); err != nil {
		return err
	}
	style := r.styles.Heading[level-1]
	if err := r.write(r.indent(), style); err != nil {
		return err
	}
	if r.cfg.symbolEcho {
		return r.write(strings.Repeat("#", level)+" ", style)
	}
	return nil
}

func (r *Renderer) startBlockQuote() error {
	if err := r.blockBoundary(); err != nil {
		return err
	}
	r.block = blockQuote
	r.quoteDepth++
	r.quotePending = true
	return nil
}

func (r *Renderer) writeQuotePrefix() error {
	r.quotePending = false
	return r.write(r.indent()+strings.Repeat("> ", r.quoteDepth), r.styles.Quote)
}

func (r *Renderer) startCodeBlock(language string) error {
	if err := r.blockBoundary(); err != nil {
		return err
	}
	r.block = blockCode
	if r.cfg.symbolEcho {
		if err := r.write(r.indent(), r.styles.Fence); err != nil {
			return err
		}
		if err := r.write("```"+language, r.styles.Fence); err != nil {
			return err
		}
		return r.newline()
	}
	return nil
}

func (r *Renderer) endCodeBlock() error {
	if r.block == blockCode {
		r.block = blockNone
	}
	if err := r.ensureNewline(); err != nil {
		return err
	}
	if r.cfg.symbolEcho {
		if err := r.write(r.indent(), r.styles.Fence); err != nil {
			return err
		}
		if err := r.write("```", r.styles.Fence); err != nil {
			return err
		}
		if err := r.newline(); err != nil {
			return err
		}
	}
	r.pendingBlank = true
	return nil
}

func (r *Renderer) startListItem() error {
	if err := r.ensureNewline(); err != nil {
		return err
	}
	if r.quotePending {
		if err := r.writeQuotePrefix(); err != nil {
			return err
		}
	}
	r.block = blockListItem
	prefix := r.indent()
	if depth := len(r.listStack); depth > 1 {
		prefix += strings.Repeat("  ", depth-1)
	}
	if err := r.write(prefix, Style{}); err != nil {
		return err
	}
	marker := "- "
	if len(r.listStack) > 0 {
		level := &r.listStack[len(r.listStack)-1]
		if level.ordered {
			marker = strconv.Itoa(level.next) + ". "
			level.next++
		}
	}
	return r.write(marker, r.styles.ListMarker)
}

func (r *Renderer) startLink(c Construct) error {
	if r.block == blockQuote && r.quotePending {
		if err := r.writeQuotePrefix(); err != nil {
			return err
		}
	}
	frame := linkFrame{destination: c.Destination, image: c.Kind == ConstructImage}
	open := "["
	if frame.image {
		open = "!["
	}
	if !frame.image && r.cfg.osc8 && c.Destination != "" {
		frame.osc8 = true
		if err := r.out.writeRaw(osc8Start + c.Destination + "\x1b\\"); err != nil {
			return err
		}
	}
	r.linkStack = append(r.linkStack, frame)
	r.recomputeInlineStyle()
	return r.write(open, r.inlineStyle)
}

func (r *Renderer) endLink(kind ConstructKind) error {
	if len(r.linkStack) == 0 {
		return nil
	}
	frame := r.linkStack[len(r.linkStack)-1]
	if frame.image != (kind == ConstructImage) {
		return nil
	}
	if err := r.write("]", r.inlineStyle); err != nil {
		return err
	}
	r.linkStack = r.linkStack[:len(r.linkStack)-1]
	r.recomputeInlineStyle()
	if frame.osc8 {
		if err := r.out.writeRaw(osc8End); err != nil {
			return err
		}
	}
	if frame.destination != "" {
		return r.write("("+frame.destination+")", r.styles.LinkURL)
	}
	return nil
}

// --- leaves ---

func (r *Renderer) text(s string) error {
	if r.block == blockCode {
		return r.codeText(s)
	}
	if err := r.leadingIndent(); err != nil {
		return err
	}
	return r.write(s, r.textStyle())
}

func (r *Renderer) codeText(s string) error {
	if r.atLineStart {
		if err := r.write(r.indent(), r.styles.CodeBlock); err != nil {
			return err
		}
	}
	return r.write(s, r.styles.CodeBlock)
}

func (r *Renderer) inlineCode(s string) error {
	if err := r.leadingIndent(); err != nil {
		return err
	}
	if r.cfg.symbolEcho && r.block != blockCode {
		return r.write("`"+s+"`", r.styles.CodeInline)
	}
	return r.write(s, r.styles.CodeInline)
}

func (r *Renderer) lineBreak() error {
	return r.write("\n", Style{})
}

func (r *Renderer) rule() error {
	if err := r.blockBoundary(); err != nil {
		return err
	}
	if err := r.write(strings.Repeat(ruleGlyph, r.indentLevel+1), r.styles.Rule); err != nil {
		return err
	}
	if err := r.newline(); err != nil {
		return err
	}
	r.pendingBlank = true
	return nil
}

func (r *Renderer) footnoteRef(name string) error {
	if err := r.leadingIndent(); err != nil {
		return err
	}
	return r.write("[^"+name+"]", r.textStyle())
}

// --- entry points ---

// RenderRequest configures Render.
type RenderRequest struct {
	Reader  io.Reader
	Writer  io.Writer
	Theme   Theme
	Options []RenderOption
}

// Render reads a complete Markdown document, validates it, strips any
// front matter, tokenizes it, and renders the event sequence to the
// writer.
func Render(req RenderRequest) error {
	if req.Reader == nil {
		return fmt.Errorf("render: reader is nil")
	}
	if req.Writer == nil {
		return fmt.Errorf("render: writer is nil")
	}
	source, err := io.ReadAll(req.Reader)
	if err != nil {
		return fmt.Errorf("render: read: %w", err)
	}
	if err := ValidateInput(source); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	source = stripFrontMatter(source)
	return RenderEvents(req.Writer, Tokenize(source), req.Theme, req.Options...)
}

// RenderEvents drives a fresh Renderer over an event sequence.
func RenderEvents(w io.Writer, events []Event, theme Theme, opts ...RenderOption) error {
	renderer := NewRenderer(w, theme, opts...)
	for _, ev := range events {
		if err := renderer.Consume(ev); err != nil {
			return err
		}
	}
	return renderer.Flush()
}
