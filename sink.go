package mdcat

import (
	"io"
	"os"

	"golang.org/x/term"
)

const ansiReset = "\x1b[0m"

// styledWriter writes text through an io.Writer, switching ANSI style
// prefixes as the requested style changes. With color disabled every
// style is a no-op and only plain text is written. Writes go straight
// to the underlying writer; the first write error aborts rendering.
type styledWriter struct {
	w     io.Writer
	color bool
	cur   string
}

func (sw *styledWriter) write(text string, style Style) error {
	if text == "" {
		return nil
	}
	if !sw.color {
		_, err := io.WriteString(sw.w, text)
		return err
	}
	if style.Prefix != sw.cur {
		if sw.cur != "" {
			if _, err := io.WriteString(sw.w, ansiReset); err != nil {
				return err
			}
		}
		sw.cur = style.Prefix
		if sw.cur != "" {
			if _, err := io.WriteString(sw.w, sw.cur); err != nil {
				return err
			}
		}
	}
	_, err := io.WriteString(sw.w, text)
	return err
}

// writeRaw emits a terminal control sequence (OSC 8 and friends)
// without touching the style state. A no-op when color is off.
func (sw *styledWriter) writeRaw(seq string) error {
	if !sw.color || seq == "" {
		return nil
	}
	_, err := io.WriteString(sw.w, seq)
	return err
}

func (sw *styledWriter) reset() error {
	if !sw.color || sw.cur == "" {
		return nil
	}
	sw.cur = ""
	_, err := io.WriteString(sw.w, ansiReset)
	return err
}

// DetectColorSupport reports whether w is a terminal that should
// receive ANSI styling. NO_COLOR and TERM=dumb disable styling.
func DetectColorSupport(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
