package mdcat

import (
	"strings"
	"testing"
)

func tableCell(text string) []Event {
	return []Event{
		Start(Construct{Kind: ConstructTableCell}),
		Text(text),
		End(Construct{Kind: ConstructTableCell}),
	}
}

func TestTableWidthsAndJustification(t *testing.T) {
	src := strings.Join([]string{
		"| Name | Age |",
		"| :--- | ---: |",
		"| Ann | 30 |",
	}, "\n") + "\n"
	out := renderPlain(t, src)
	want := strings.Join([]string{
		"|Name|Age|",
		"|----|--:|",
		"|Ann | 30|",
	}, "\n") + "\n"
	if out != want {
		t.Fatalf("table mismatch\n---want---\n%s\n---got---\n%s", want, out)
	}
}

func TestTableCenterAlignment(t *testing.T) {
	src := strings.Join([]string{
		"| Mid |",
		"| :-: |",
		"| a |",
	}, "\n") + "\n"
	out := renderPlain(t, src)
	want := strings.Join([]string{
		"|Mid|",
		"|:-:|",
		"| a |",
	}, "\n") + "\n"
	if out != want {
		t.Fatalf("centered table mismatch\n---want---\n%s\n---got---\n%s", want, out)
	}
}

func TestTableHeaderOnly(t *testing.T) {
	src := strings.Join([]string{
		"| A | B |",
		"| --- | --- |",
	}, "\n") + "\n"
	out := renderPlain(t, src)
	want := "|A|B|\n|-|-|\n"
	if out != want {
		t.Fatalf("header-only table mismatch: want %q, got %q", want, out)
	}
}

func TestTableRaggedRowPadded(t *testing.T) {
	events := []Event{Start(Construct{Kind: ConstructTable})}
	events = append(events, Start(Construct{Kind: ConstructTableHead}))
	events = append(events, Start(Construct{Kind: ConstructTableRow}))
	events = append(events, tableCell("A")...)
	events = append(events, tableCell("B")...)
	events = append(events, End(Construct{Kind: ConstructTableRow}))
	events = append(events, End(Construct{Kind: ConstructTableHead}))
	events = append(events, Start(Construct{Kind: ConstructTableRow}))
	events = append(events, tableCell("x")...)
	events = append(events, End(Construct{Kind: ConstructTableRow}))
	events = append(events, End(Construct{Kind: ConstructTable}))

	out := renderEventsPlain(t, events)
	want := "|A|B|\n|-|-|\n|x| |\n"
	if out != want {
		t.Fatalf("ragged row mismatch: want %q, got %q", want, out)
	}
}

func TestTableWideRunesUseDisplayWidth(t *testing.T) {
	events := []Event{Start(Construct{Kind: ConstructTable})}
	events = append(events, Start(Construct{Kind: ConstructTableHead}))
	events = append(events, Start(Construct{Kind: ConstructTableRow}))
	events = append(events, tableCell("日本")...)
	events = append(events, End(Construct{Kind: ConstructTableRow}))
	events = append(events, End(Construct{Kind: ConstructTableHead}))
	events = append(events, Start(Construct{Kind: ConstructTableRow}))
	events = append(events, tableCell("ab")...)
	events = append(events, End(Construct{Kind: ConstructTableRow}))
	events = append(events, End(Construct{Kind: ConstructTable}))

	out := renderEventsPlain(t, events)
	want := "|日本|\n|----|\n|ab  |\n"
	if out != want {
		t.Fatalf("wide rune table mismatch: want %q, got %q", want, out)
	}
}

func TestTableCellLineBreaksCollapse(t *testing.T) {
	events := []Event{
		Start(Construct{Kind: ConstructTable}),
		Start(Construct{Kind: ConstructTableRow}),
		Start(Construct{Kind: ConstructTableCell}),
		Text("a"),
		Event{Kind: EventSoftBreak},
		Text("b"),
		End(Construct{Kind: ConstructTableCell}),
		End(Construct{Kind: ConstructTableRow}),
		End(Construct{Kind: ConstructTable}),
	}
	out := renderEventsPlain(t, events)
	want := "|a b|\n"
	if out != want {
		t.Fatalf("cell break mismatch: want %q, got %q", want, out)
	}
}

func TestTableOverwideCellNotTruncated(t *testing.T) {
	out := renderEventsPlain(t, []Event{
		Start(Construct{Kind: ConstructTable}),
		Start(Construct{Kind: ConstructTableRow}),
		Start(Construct{Kind: ConstructTableCell}),
		Text("a very long cell value"),
		End(Construct{Kind: ConstructTableCell}),
		End(Construct{Kind: ConstructTableRow}),
		End(Construct{Kind: ConstructTable}),
	})
	if !strings.Contains(out, "a very long cell value") {
		t.Fatalf("cell content truncated: %q", out)
	}
}

func TestTableSeparatedFromSurroundingText(t *testing.T) {
	src := strings.Join([]string{
		"before",
		"",
		"| H |",
		"| - |",
		"| v |",
		"",
		"after",
	}, "\n") + "\n"
	out := renderPlain(t, src)
	want := strings.Join([]string{
		"before",
		"",
		"|H|",
		"|-|",
		"|v|",
		"",
		"after",
	}, "\n") + "\n"
	if out != want {
		t.Fatalf("table separation mismatch\n---want---\n%s\n---got---\n%s", want, out)
	}
}

func TestJustifyCell(t *testing.T) {
	cases := []struct {
		cell  string
		width int
		align Alignment
		want  string
	}{
		{"ab", 4, AlignNone, "ab  "},
		{"ab", 4, AlignLeft, "ab  "},
		{"ab", 4, AlignRight, "  ab"},
		{"ab", 4, AlignCenter, " ab "},
		{"ab", 5, AlignCenter, " ab  "},
		{"ab", 2, AlignRight, "ab"},
		{"ab", 1, AlignLeft, "ab"},
		{"", 3, AlignNone, "   "},
	}
	for _, tc := range cases {
		if got := justifyCell(tc.cell, tc.width, tc.align); got != tc.want {
			t.Errorf("justifyCell(%q, %d, %d) = %q, want %q", tc.cell, tc.width, tc.align, got, tc.want)
		}
	}
}

func TestSeparatorCell(t *testing.T) {
	cases := []struct {
		width int
		align Alignment
		want  string
	}{
		{4, AlignNone, "----"},
		{4, AlignLeft, "----"},
		{4, AlignRight, "---:"},
		{4, AlignCenter, ":--:"},
		{1, AlignCenter, ":"},
		{1, AlignRight, ":"},
		{0, AlignNone, ""},
	}
	for _, tc := range cases {
		if got := separatorCell(tc.width, tc.align); got != tc.want {
			t.Errorf("separatorCell(%d, %d) = %q, want %q", tc.width, tc.align, got, tc.want)
		}
	}
}
