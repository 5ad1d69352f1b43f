package mdcat

import (
	"os"
	"strconv"
	"strings"
)

// OSC 8 hyperlink framing. The renderer opens a link span with
// osc8Start + destination + "\x1b\\" before the bracketed link text
// and closes it with osc8End after the closing bracket.
const (
	osc8Start = "\x1b]8;;"
	osc8End   = "\x1b]8;;\x1b\\"
)

// minVTEVersion is the first VTE release with OSC 8 support (0.50).
const minVTEVersion = 5000

// DetectOSC8Support reports whether the terminal advertised by the
// environment is known to render OSC 8 hyperlinks. Setting OSC8=0
// forces detection off regardless of terminal.
func DetectOSC8Support() bool {
	if os.Getenv("OSC8") == "0" {
		return false
	}
	switch os.Getenv("TERM_PROGRAM") {
	case "iTerm.app", "WezTerm", "vscode":
		return true
	}
	for _, name := range []string{"DOMTERM", "WT_SESSION"} {
		if os.Getenv(name) != "" {
			return true
		}
	}
	if strings.Contains(strings.ToLower(os.Getenv("TERM")), "kitty") {
		return true
	}
	if vte := os.Getenv("VTE_VERSION"); vte != "" {
		if n, err := strconv.Atoi(vte); err == nil && n >= minVTEVersion {
			return true
		}
	}
	return false
}
