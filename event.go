package mdcat

// EventKind discriminates the variants of Event.
type EventKind uint8

const (
	// EventStart opens a construct.
	EventStart EventKind = iota
	// EventEnd closes the most recently opened construct of its kind.
	EventEnd
	// EventText is a run of normalized text.
	EventText
	// EventInlineCode is a complete inline code span.
	EventInlineCode
	// EventSoftBreak is a collapsible line break within a block.
	EventSoftBreak
	// EventHardBreak is a forced line break within a block.
	EventHardBreak
	// EventRule is a thematic break.
	EventRule
	// EventFootnoteRef is a reference to a footnote definition.
	EventFootnoteRef
)

// Alignment is a table column alignment.
type Alignment uint8

const (
	// AlignNone means no alignment was specified for the column.
	AlignNone Alignment = iota
	// AlignLeft left-justifies the column.
	AlignLeft
	// AlignCenter centers the column.
	AlignCenter
	// AlignRight right-justifies the column.
	AlignRight
)

// ConstructKind identifies a structural or inline markup element.
type ConstructKind uint8

const (
	// ConstructParagraph is a paragraph block.
	ConstructParagraph ConstructKind = iota
	// ConstructHeading is a heading block; Level carries 1 through 6.
	ConstructHeading
	// ConstructStrong is strong emphasis.
	ConstructStrong
	// ConstructEmphasis is emphasis.
	ConstructEmphasis
	// ConstructStrikethrough is struck-through text.
	ConstructStrikethrough
	// ConstructBlockQuote is a block quote.
	ConstructBlockQuote
	// ConstructCodeBlock is a fenced or indented code block.
	ConstructCodeBlock
	// ConstructList is a list container; Ordered and Start apply.
	ConstructList
	// ConstructListItem is one item of a list.
	ConstructListItem
	// ConstructLink is a hyperlink; Destination applies.
	ConstructLink
	// ConstructImage is an image reference; Destination applies.
	ConstructImage
	// ConstructTable is a table; Alignments applies.
	ConstructTable
	// ConstructTableHead wraps the header row of a table.
	ConstructTableHead
	// ConstructTableRow is one row of a table.
	ConstructTableRow
	// ConstructTableCell is one cell of a table row.
	ConstructTableCell
)

// Construct describes a markup element delimited by paired Start/End
// events. Attribute fields are meaningful on Start only.
type Construct struct {
	Kind        ConstructKind
	Level       int         // headings: 1-6
	Ordered     bool        // lists
	Start       int         // ordered lists: first item number
	Language    string      // code blocks: info string language
	Destination string      // links and images
	Alignments  []Alignment // tables: per-column alignment
}

// Event is one step of a tokenizer's output. Events are consumed in
// order and never stored by the renderer (tables excepted, where cell
// text is buffered until the table closes).
type Event struct {
	Kind      EventKind
	Construct Construct // EventStart and EventEnd only
	Text      string    // EventText, EventInlineCode, EventFootnoteRef
}

// Start returns a Start event for c.
func Start(c Construct) Event {
	return Event{Kind: EventStart, Construct: c}
}

// End returns an End event for c.
func End(c Construct) Event {
	return Event{Kind: EventEnd, Construct: c}
}

// Text returns a text event.
func Text(s string) Event {
	return Event{Kind: EventText, Text: s}
}

// InlineCode returns an inline code span event.
func InlineCode(s string) Event {
	return Event{Kind: EventInlineCode, Text: s}
}

// FootnoteRef returns a footnote reference event.
func FootnoteRef(name string) Event {
	return Event{Kind: EventFootnoteRef, Text: name}
}
