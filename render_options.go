package mdcat

// RenderOption configures rendering behavior.
type RenderOption func(*renderConfig)

type renderConfig struct {
	symbolEcho   bool
	centerOffset int
	color        bool
	colorSet     bool
	osc8         bool
}

// WithSymbolEcho enables or disables echoing literal Markdown
// delimiters (#, **, *, ~~, backticks, fences) alongside color.
func WithSymbolEcho(enabled bool) RenderOption {
	return func(cfg *renderConfig) {
		cfg.symbolEcho = enabled
	}
}

// WithCenterOffset shifts every heading's indentation level by n
// units, moving the whole document toward the center of the terminal.
// Negative values are treated as zero.
func WithCenterOffset(n int) RenderOption {
	return func(cfg *renderConfig) {
		if n < 0 {
			n = 0
		}
		cfg.centerOffset = n
	}
}

// WithColor forces ANSI styling on or off, bypassing terminal
// detection.
func WithColor(enabled bool) RenderOption {
	return func(cfg *renderConfig) {
		cfg.color = enabled
		cfg.colorSet = true
	}
}

// WithOSC8 enables or disables OSC 8 hyperlinks for link text.
func WithOSC8(enabled bool) RenderOption {
	return func(cfg *renderConfig) {
		cfg.osc8 = enabled
	}
}
