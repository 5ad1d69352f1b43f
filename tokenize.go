package mdcat

import (
	"strconv"
	"strings"
	"sync"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// The goldmark parser is configured once and shared. Parsing creates
// per-call state via Parse(reader), so the instance is safe to reuse.
var (
	markdownParser     goldmark.Markdown
	markdownParserOnce sync.Once
)

func getMarkdownParser() goldmark.Markdown {
	markdownParserOnce.Do(func() {
		markdownParser = goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				extension.Footnote,
			),
		)
	})
	return markdownParser
}

// Tokenize parses a Markdown document and returns its flat event
// sequence. The sequence is well formed: every Start event has a
// matching End, constructs nest correctly, and text is normalized
// (entities decoded, escapes resolved). Code blocks produce one Text
// event per line, trailing newline included. Tight list items produce
// bare text with no Paragraph events, matching how loose and tight
// lists differ in source intent.
func Tokenize(source []byte) []Event {
	document := getMarkdownParser().Parser().Parse(text.NewReader(source))
	t := &tokenizer{source: source}
	_ = ast.Walk(document, t.walk)
	return t.events
}

type tokenizer struct {
	source []byte
	events []Event
}

func (t *tokenizer) emit(ev Event) {
	t.events = append(t.events, ev)
}

func (t *tokenizer) boundary(c Construct, entering bool) {
	if entering {
		t.emit(Start(c))
	} else {
		t.emit(End(c))
	}
}

func (t *tokenizer) walk(node ast.Node, entering bool) (ast.WalkStatus, error) {
	switch node.Kind() {

	case ast.KindDocument, ast.KindTextBlock:
		// Containers with no markup of their own.

	case ast.KindParagraph:
		t.boundary(Construct{Kind: ConstructParagraph}, entering)

	case ast.KindHeading:
		heading := node.(*ast.Heading)
		t.boundary(Construct{Kind: ConstructHeading, Level: heading.Level}, entering)

	case ast.KindBlockquote:
		t.boundary(Construct{Kind: ConstructBlockQuote}, entering)

	case ast.KindFencedCodeBlock:
		if entering {
			block := node.(*ast.FencedCodeBlock)
			t.codeBlock(node, string(block.Language(t.source)))
			return ast.WalkSkipChildren, nil
		}

	case ast.KindCodeBlock:
		if entering {
			t.codeBlock(node, "")
			return ast.WalkSkipChildren, nil
		}

	case ast.KindList:
		list := node.(*ast.List)
		construct := Construct{Kind: ConstructList, Ordered: list.IsOrdered()}
		if list.IsOrdered() {
			construct.Start = list.Start
		}
		t.boundary(construct, entering)

	case ast.KindListItem:
		t.boundary(Construct{Kind: ConstructListItem}, entering)

	case ast.KindThematicBreak:
		if entering {
			t.emit(Event{Kind: EventRule})
		}

	case ast.KindHTMLBlock, ast.KindRawHTML:
		// Raw HTML carries no terminal rendering; dropped.
		if entering {
			return ast.WalkSkipChildren, nil
		}

	case ast.KindText:
		if entering {
			textNode := node.(*ast.Text)
			t.emit(Text(string(textNode.Segment.Value(t.source))))
			if textNode.HardLineBreak() {
				t.emit(Event{Kind: EventHardBreak})
			} else if textNode.SoftLineBreak() {
				t.emit(Event{Kind: EventSoftBreak})
			}
		}

	case ast.KindString:
		if entering {
			t.emit(Text(string(node.(*ast.String).Value)))
		}

	case ast.KindCodeSpan:
		if entering {
			t.emit(InlineCode(t.codeSpanText(node)))
			return ast.WalkSkipChildren, nil
		}

	case ast.KindEmphasis:
		kind := ConstructEmphasis
		if node.(*ast.Emphasis).Level >= 2 {
			kind = ConstructStrong
		}
		t.boundary(Construct{Kind: kind}, entering)

	case ast.KindLink:
		link := node.(*ast.Link)
		t.boundary(Construct{Kind: ConstructLink, Destination: string(link.Destination)}, entering)

	case ast.KindAutoLink:
		if entering {
			url := string(node.(*ast.AutoLink).URL(t.source))
			construct := Construct{Kind: ConstructLink, Destination: url}
			t.emit(Start(construct))
			t.emit(Text(url))
			t.emit(End(construct))
		}

	case ast.KindImage:
		image := node.(*ast.Image)
		t.boundary(Construct{Kind: ConstructImage, Destination: string(image.Destination)}, entering)

	case extast.KindStrikethrough:
		t.boundary(Construct{Kind: ConstructStrikethrough}, entering)

	case extast.KindTable:
		table := node.(*extast.Table)
		t.boundary(Construct{Kind: ConstructTable, Alignments: convertAlignments(table.Alignments)}, entering)

	case extast.KindTableHeader:
		// The renderer expects header cells wrapped in an explicit row;
		// goldmark's TableHeader holds cells directly.
		if entering {
			t.emit(Start(Construct{Kind: ConstructTableHead}))
			t.emit(Start(Construct{Kind: ConstructTableRow}))
		} else {
			t.emit(End(Construct{Kind: ConstructTableRow}))
			t.emit(End(Construct{Kind: ConstructTableHead}))
		}

	case extast.KindTableRow:
		t.boundary(Construct{Kind: ConstructTableRow}, entering)

	case extast.KindTableCell:
		t.boundary(Construct{Kind: ConstructTableCell}, entering)

	case extast.KindTaskCheckBox:
		if entering {
			if node.(*extast.TaskCheckBox).IsChecked {
				t.emit(Text("[x] "))
			} else {
				t.emit(Text("[ ] "))
			}
		}

	case extast.KindFootnoteLink:
		if entering {
			footnote := node.(*extast.FootnoteLink)
			t.emit(FootnoteRef(strconv.Itoa(footnote.Index)))
		}

	case extast.KindFootnote, extast.KindFootnoteList, extast.KindFootnoteBacklink:
		// Footnote definitions are not rendered, matching the source
		// event taxonomy where only references appear.
		if entering {
			return ast.WalkSkipChildren, nil
		}
	}

	return ast.WalkContinue, nil
}

// codeBlock emits a complete code block construct with one Text event
// per source line.
func (t *tokenizer) codeBlock(node ast.Node, language string) {
	construct := Construct{Kind: ConstructCodeBlock, Language: language}
	t.emit(Start(construct))
	lines := node.Lines()
	for i := 0; i < lines.Len(); i++ {
		segment := lines.At(i)
		t.emit(Text(string(segment.Value(t.source))))
	}
	t.emit(End(construct))
}

// codeSpanText joins the text segments of a code span.
func (t *tokenizer) codeSpanText(node ast.Node) string {
	var b strings.Builder
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		switch c := child.(type) {
		case *ast.Text:
			b.Write(c.Segment.Value(t.source))
		case *ast.String:
			b.Write(c.Value)
		}
	}
	return b.String()
}

func convertAlignments(alignments []extast.Alignment) []Alignment {
	if len(alignments) == 0 {
		return nil
	}
	out := make([]Alignment, len(alignments))
	for i, a := range alignments {
		switch a {
		case extast.AlignLeft:
			out[i] = AlignLeft
		case extast.AlignCenter:
			out[i] = AlignCenter
		case extast.AlignRight:
			out[i] = AlignRight
		default:
			out[i] = AlignNone
		}
	}
	return out
}
