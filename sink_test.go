package mdcat

import (
	"strings"
	"testing"
)

func TestStyledWriterResetsOnStyleChange(t *testing.T) {
	var buf strings.Builder
	sw := styledWriter{w: &buf, color: true}
	red := Style{Prefix: "\x1b[31m"}
	blue := Style{Prefix: "\x1b[34m"}
	for _, step := range []struct {
		text  string
		style Style
	}{
		{"a", red},
		{"b", red},
		{"c", blue},
		{"d", Style{}},
	} {
		if err := sw.write(step.text, step.style); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	if err := sw.reset(); err != nil {
		t.Fatalf("reset: %v", err)
	}
	want := "\x1b[31mab\x1b[0m\x1b[34mc\x1b[0md"
	if buf.String() != want {
		t.Fatalf("want %q, got %q", want, buf.String())
	}
}

func TestStyledWriterPlainPassthrough(t *testing.T) {
	var buf strings.Builder
	sw := styledWriter{w: &buf}
	if err := sw.write("text", Style{Prefix: "\x1b[31m"}); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := sw.writeRaw(osc8Start); err != nil {
		t.Fatalf("writeRaw: %v", err)
	}
	if err := sw.reset(); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if buf.String() != "text" {
		t.Fatalf("plain writer must not emit escapes, got %q", buf.String())
	}
}

func TestDetectColorSupportHonorsNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	var buf strings.Builder
	if DetectColorSupport(&buf) {
		t.Fatalf("NO_COLOR must disable styling")
	}
}

func TestDetectColorSupportNonFile(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	t.Setenv("TERM", "xterm-256color")
	var buf strings.Builder
	if DetectColorSupport(&buf) {
		t.Fatalf("non-file writer must not claim terminal support")
	}
}
