package mdcat

import (
	"strings"
	"testing"
)

func renderPlain(t *testing.T, src string, opts ...RenderOption) string {
	t.Helper()
	all := append([]RenderOption{WithColor(false), WithOSC8(false)}, opts...)
	var buf strings.Builder
	if err := Render(RenderRequest{
		Reader:  strings.NewReader(src),
		Writer:  &buf,
		Options: all,
	}); err != nil {
		t.Fatalf("render: %v", err)
	}
	return buf.String()
}

func renderANSI(t *testing.T, src string, opts ...RenderOption) string {
	t.Helper()
	all := append([]RenderOption{WithColor(true), WithOSC8(false)}, opts...)
	var buf strings.Builder
	if err := Render(RenderRequest{
		Reader:  strings.NewReader(src),
		Writer:  &buf,
		Options: all,
	}); err != nil {
		t.Fatalf("render: %v", err)
	}
	return buf.String()
}

func renderEventsPlain(t *testing.T, events []Event, opts ...RenderOption) string {
	t.Helper()
	all := append([]RenderOption{WithColor(false), WithOSC8(false)}, opts...)
	var buf strings.Builder
	if err := RenderEvents(&buf, events, nil, all...); err != nil {
		t.Fatalf("render events: %v", err)
	}
	return buf.String()
}

// stripANSI removes CSI and OSC escape sequences, leaving plain text.
func stripANSI(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); {
		if s[i] != 0x1b {
			b.WriteByte(s[i])
			i++
			continue
		}
		i++
		if i >= len(s) {
			break
		}
		switch s[i] {
		case '[':
			i++
			for i < len(s) && (s[i] < 0x40 || s[i] > 0x7e) {
				i++
			}
			if i < len(s) {
				i++
			}
		case ']':
			i++
			for i < len(s) {
				if s[i] == 0x07 {
					i++
					break
				}
				if s[i] == 0x1b && i+1 < len(s) && s[i+1] == '\\' {
					i += 2
					break
				}
				i++
			}
		default:
			i++
		}
	}
	return b.String()
}
