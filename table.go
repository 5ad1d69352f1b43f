package mdcat

import (
	"strings"

	"github.com/muesli/reflow/ansi"
)

// tableBuffer accumulates a whole table before any of it is written.
// Column widths are only known once every row has been seen, so table
// rendering is the one place the otherwise streaming renderer buffers.
type tableBuffer struct {
	alignments []Alignment
	widths     []int
	rows       []tableRow
	current    []string
	header     bool
}

type tableRow struct {
	cells  []string
	header bool
}

func (t *tableBuffer) alignment(col int) Alignment {
	if col < len(t.alignments) {
		return t.alignments[col]
	}
	return AlignNone
}

func (t *tableBuffer) appendCell(s string) {
	if len(t.current) == 0 {
		t.current = append(t.current, "")
	}
	t.current[len(t.current)-1] += s
}

// endRow folds the open row into the width model. Widths only grow,
// both in column count and per-column display width.
func (t *tableBuffer) endRow() {
	for len(t.widths) < len(t.current) {
		t.widths = append(t.widths, 0)
	}
	for i, cell := range t.current {
		if w := displayWidth(cell); w > t.widths[i] {
			t.widths[i] = w
		}
	}
	cells := make([]string, len(t.current))
	copy(cells, t.current)
	t.rows = append(t.rows, tableRow{cells: cells, header: t.header})
	t.current = t.current[:0]
	t.header = false
}

func displayWidth(s string) int {
	return ansi.PrintableRuneWidth(s)
}

func (r *Renderer) startTable(alignments []Alignment) error {
	if err := r.blockBoundary(); err != nil {
		return err
	}
	aligns := make([]Alignment, len(alignments))
	copy(aligns, alignments)
	r.table = &tableBuffer{alignments: aligns}
	return nil
}

// consumeTable routes events into the open table buffer. Inline
// styling inside cells is dropped; cells carry plain text only, with
// line breaks collapsed to a single space. End of the table triggers
// the emission pass.
func (r *Renderer) consumeTable(ev Event) error {
	t := r.table
	switch ev.Kind {
	case EventStart:
		switch ev.Construct.Kind {
		case ConstructTableHead:
			t.header = true
		case ConstructTableRow:
			t.current = t.current[:0]
		case ConstructTableCell:
			t.current = append(t.current, "")
		}
	case EventEnd:
		switch ev.Construct.Kind {
		case ConstructTableRow:
			t.endRow()
		case ConstructTableHead:
			t.header = false
		case ConstructTable:
			err := r.emitTable()
			r.table = nil
			r.pendingBlank = true
			return err
		}
	case EventText, EventInlineCode:
		t.appendCell(ev.Text)
	case EventSoftBreak, EventHardBreak:
		t.appendCell(" ")
	case EventFootnoteRef:
		t.appendCell("[^" + ev.Text + "]")
	}
	return nil
}

func (r *Renderer) emitTable() error {
	t := r.table
	if len(t.current) > 0 {
		t.endRow()
	}
	for _, row := range t.rows {
		if err := r.emitTableRow(row, t); err != nil {
			return err
		}
		if row.header {
			if err := r.emitTableSeparator(t); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *Renderer) emitTableRow(row tableRow, t *tableBuffer) error {
	cellStyle := r.styles.Text
	if row.header {
		cellStyle = r.styles.TableHeader
	}
	if err := r.write("|", r.styles.TableBorder); err != nil {
		return err
	}
	for i, width := range t.widths {
		cell := ""
		if i < len(row.cells) {
			cell = row.cells[i]
		}
		if err := r.write(justifyCell(cell, width, t.alignment(i)), cellStyle); err != nil {
			return err
		}
		if err := r.write("|", r.styles.TableBorder); err != nil {
			return err
		}
	}
	return r.newline()
}

func (r *Renderer) emitTableSeparator(t *tableBuffer) error {
	if err := r.write("|", r.styles.TableBorder); err != nil {
		return err
	}
	for i, width := range t.widths {
		if err := r.write(separatorCell(width, t.alignment(i)), r.styles.TableBorder); err != nil {
			return err
		}
		if err := r.write("|", r.styles.TableBorder); err != nil {
			return err
		}
	}
	return r.newline()
}

// justifyCell pads cell to width by display width. Cells are never
// truncated; an overwide cell simply sticks out.
func justifyCell(cell string, width int, align Alignment) string {
	pad := width - displayWidth(cell)
	if pad <= 0 {
		return cell
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", pad) + cell
	case AlignCenter:
		left := pad / 2
		return strings.Repeat(" ", left) + cell + strings.Repeat(" ", pad-left)
	default:
		return cell + strings.Repeat(" ", pad)
	}
}

func separatorCell(width int, align Alignment) string {
	if width <= 0 {
		return ""
	}
	switch align {
	case AlignRight:
		return dashes(width-1) + ":"
	case AlignCenter:
		if width == 1 {
			return ":"
		}
		return ":" + dashes(width-2) + ":"
	default:
		return dashes(width)
	}
}

func dashes(n int) string {
	if n < 0 {
		n = 0
	}
	return strings.Repeat("-", n)
}
