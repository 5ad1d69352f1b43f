package mdcat

import (
	"sort"
	"strings"

	"pkt.systems/mdcat/internal/palette"
)

// Style describes a terminal style as an ANSI prefix sequence.
type Style struct {
	Prefix string
}

// Styles groups the semantic styles used by the renderer.
type Styles struct {
	Text          Style
	Heading       [6]Style
	Emphasis      Style
	Strong        Style
	Strikethrough Style
	CodeInline    Style
	CodeBlock     Style
	Quote         Style
	ListMarker    Style
	LinkText      Style
	LinkURL       Style
	Rule          Style
	Fence         Style
	TableBorder   Style
	TableHeader   Style
}

// Theme provides named styles for Markdown rendering.
type Theme interface {
	Name() string
	Styles() Styles
}

type theme struct {
	name   string
	styles Styles
}

func (t theme) Name() string   { return t.name }
func (t theme) Styles() Styles { return t.styles }

// NewTheme returns a Theme from a Styles definition.
func NewTheme(name string, styles Styles) Theme {
	return theme{name: name, styles: styles}
}

func style(prefixes ...string) Style {
	var b strings.Builder
	for _, p := range prefixes {
		if p != "" {
			b.WriteString(p)
		}
	}
	return Style{Prefix: b.String()}
}

func stylesFromPalette(p palette.Palette) Styles {
	return Styles{
		Text: style(p.Text),
		Heading: [6]Style{
			style(palette.Bold, p.H1), style(palette.Bold, p.H2), style(palette.Bold, p.H3),
			style(palette.Bold, p.H4), style(palette.Bold, p.H5), style(palette.Bold, p.H6),
		},
		Emphasis:      style(palette.Italic, p.Emphasis),
		Strong:        style(palette.Bold, p.Strong),
		Strikethrough: style(palette.Strike, p.Strikethrough),
		CodeInline:    style(p.CodeInline),
		CodeBlock:     style(p.CodeBlock),
		Quote:         style(p.Quote),
		ListMarker:    style(p.ListMarker),
		LinkText:      style(palette.Underline, p.LinkText),
		LinkURL:       style(p.LinkURL),
		Rule:          style(p.Rule),
		Fence:         style(p.Fence),
		TableBorder:   style(p.TableBorder),
		TableHeader:   style(palette.Bold, p.TableHeader),
	}
}

var builtinThemes = map[string]Theme{
	"default":        theme{name: "default", styles: stylesFromPalette(palette.PaletteDefault)},
	"gruvbox":        theme{name: "gruvbox", styles: stylesFromPalette(palette.PaletteGruvbox)},
	"dracula":        theme{name: "dracula", styles: stylesFromPalette(palette.PaletteDracula)},
	"nord":           theme{name: "nord", styles: stylesFromPalette(palette.PaletteNord)},
	"solarized-dark": theme{name: "solarized-dark", styles: stylesFromPalette(palette.PaletteSolarizedDark)},
	"github-dark":    theme{name: "github-dark", styles: stylesFromPalette(palette.PaletteGithubDark)},
}

// AvailableThemes returns the names of built-in themes.
func AvailableThemes() []string {
	names := make([]string, 0, len(builtinThemes))
	for name := range builtinThemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ThemeByName returns a built-in theme by name.
func ThemeByName(name string) (Theme, bool) {
	if name == "" {
		return builtinThemes["default"], true
	}
	normalized := strings.ToLower(strings.TrimSpace(name))
	theme, ok := builtinThemes[normalized]
	return theme, ok
}

// DefaultTheme returns the default built-in theme.
func DefaultTheme() Theme {
	return builtinThemes["default"]
}

// BoringTheme returns a theme with no styling at all. Every style has
// an empty prefix, so output is plain text even when color is on.
func BoringTheme() Theme {
	return theme{name: "boring"}
}
