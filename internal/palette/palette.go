// Package palette defines raw ANSI sequences for mdcat themes.
package palette

// SGR attribute prefixes shared by all palettes.
const (
	Bold      = "\x1b[1m"
	Italic    = "\x1b[3m"
	Underline = "\x1b[4m"
	Strike    = "\x1b[9m"
)

// Palette holds per-construct ANSI color prefixes. An empty string
// means "default foreground".
type Palette struct {
	Text          string
	H1            string
	H2            string
	H3            string
	H4            string
	H5            string
	H6            string
	Emphasis      string
	Strong        string
	Strikethrough string
	CodeInline    string
	CodeBlock     string
	Quote         string
	ListMarker    string
	LinkText      string
	LinkURL       string
	Rule          string
	Fence         string
	TableBorder   string
	TableHeader   string
}

// PaletteDefault uses the classic 16-color palette: blue headings,
// yellow strong, green emphasis, red strikethrough, magenta quotes,
// cyan code, and two gray tones for fences, rules, and table borders.
var PaletteDefault = Palette{
	H1:            "\x1b[94m",
	H2:            "\x1b[34m",
	H3:            "\x1b[34m",
	H4:            "\x1b[34m",
	H5:            "\x1b[34m",
	H6:            "\x1b[34m",
	Emphasis:      "\x1b[32m",
	Strong:        "\x1b[33m",
	Strikethrough: "\x1b[31m",
	CodeInline:    "\x1b[36m",
	CodeBlock:     "\x1b[36m",
	Quote:         "\x1b[35m",
	ListMarker:    "\x1b[36m",
	LinkText:      "\x1b[34m",
	LinkURL:       "\x1b[90m",
	Rule:          "\x1b[90m",
	Fence:         "\x1b[90m",
	TableBorder:   "\x1b[37m",
	TableHeader:   "\x1b[94m",
}

// PaletteGruvbox approximates gruvbox dark in 256 colors.
var PaletteGruvbox = Palette{
	H1:            "\x1b[38;5;208m",
	H2:            "\x1b[38;5;214m",
	H3:            "\x1b[38;5;142m",
	H4:            "\x1b[38;5;109m",
	H5:            "\x1b[38;5;175m",
	H6:            "\x1b[38;5;108m",
	Emphasis:      "\x1b[38;5;142m",
	Strong:        "\x1b[38;5;214m",
	Strikethrough: "\x1b[38;5;167m",
	CodeInline:    "\x1b[38;5;108m",
	CodeBlock:     "\x1b[38;5;108m",
	Quote:         "\x1b[38;5;175m",
	ListMarker:    "\x1b[38;5;109m",
	LinkText:      "\x1b[38;5;109m",
	LinkURL:       "\x1b[38;5;245m",
	Rule:          "\x1b[38;5;245m",
	Fence:         "\x1b[38;5;245m",
	TableBorder:   "\x1b[38;5;246m",
	TableHeader:   "\x1b[38;5;214m",
}

// PaletteDracula approximates dracula in 256 colors.
var PaletteDracula = Palette{
	H1:            "\x1b[38;5;141m",
	H2:            "\x1b[38;5;212m",
	H3:            "\x1b[38;5;117m",
	H4:            "\x1b[38;5;84m",
	H5:            "\x1b[38;5;228m",
	H6:            "\x1b[38;5;215m",
	Emphasis:      "\x1b[38;5;84m",
	Strong:        "\x1b[38;5;228m",
	Strikethrough: "\x1b[38;5;203m",
	CodeInline:    "\x1b[38;5;117m",
	CodeBlock:     "\x1b[38;5;117m",
	Quote:         "\x1b[38;5;212m",
	ListMarker:    "\x1b[38;5;141m",
	LinkText:      "\x1b[38;5;117m",
	LinkURL:       "\x1b[38;5;245m",
	Rule:          "\x1b[38;5;245m",
	Fence:         "\x1b[38;5;245m",
	TableBorder:   "\x1b[38;5;246m",
	TableHeader:   "\x1b[38;5;141m",
}

// PaletteNord approximates nord in 256 colors.
var PaletteNord = Palette{
	H1:            "\x1b[38;5;110m",
	H2:            "\x1b[38;5;109m",
	H3:            "\x1b[38;5;111m",
	H4:            "\x1b[38;5;139m",
	H5:            "\x1b[38;5;144m",
	H6:            "\x1b[38;5;108m",
	Emphasis:      "\x1b[38;5;144m",
	Strong:        "\x1b[38;5;222m",
	Strikethrough: "\x1b[38;5;167m",
	CodeInline:    "\x1b[38;5;108m",
	CodeBlock:     "\x1b[38;5;108m",
	Quote:         "\x1b[38;5;139m",
	ListMarker:    "\x1b[38;5;110m",
	LinkText:      "\x1b[38;5;111m",
	LinkURL:       "\x1b[38;5;244m",
	Rule:          "\x1b[38;5;244m",
	Fence:         "\x1b[38;5;244m",
	TableBorder:   "\x1b[38;5;245m",
	TableHeader:   "\x1b[38;5;110m",
}

// PaletteSolarizedDark approximates solarized dark in 256 colors.
var PaletteSolarizedDark = Palette{
	H1:            "\x1b[38;5;33m",
	H2:            "\x1b[38;5;37m",
	H3:            "\x1b[38;5;64m",
	H4:            "\x1b[38;5;136m",
	H5:            "\x1b[38;5;125m",
	H6:            "\x1b[38;5;61m",
	Emphasis:      "\x1b[38;5;64m",
	Strong:        "\x1b[38;5;136m",
	Strikethrough: "\x1b[38;5;160m",
	CodeInline:    "\x1b[38;5;37m",
	CodeBlock:     "\x1b[38;5;37m",
	Quote:         "\x1b[38;5;125m",
	ListMarker:    "\x1b[38;5;33m",
	LinkText:      "\x1b[38;5;33m",
	LinkURL:       "\x1b[38;5;240m",
	Rule:          "\x1b[38;5;240m",
	Fence:         "\x1b[38;5;240m",
	TableBorder:   "\x1b[38;5;241m",
	TableHeader:   "\x1b[38;5;33m",
}

// PaletteGithubDark approximates github dark in 256 colors.
var PaletteGithubDark = Palette{
	H1:            "\x1b[38;5;75m",
	H2:            "\x1b[38;5;75m",
	H3:            "\x1b[38;5;117m",
	H4:            "\x1b[38;5;117m",
	H5:            "\x1b[38;5;153m",
	H6:            "\x1b[38;5;153m",
	Emphasis:      "\x1b[38;5;114m",
	Strong:        "\x1b[38;5;215m",
	Strikethrough: "\x1b[38;5;203m",
	CodeInline:    "\x1b[38;5;183m",
	CodeBlock:     "\x1b[38;5;183m",
	Quote:         "\x1b[38;5;245m",
	ListMarker:    "\x1b[38;5;75m",
	LinkText:      "\x1b[38;5;75m",
	LinkURL:       "\x1b[38;5;244m",
	Rule:          "\x1b[38;5;244m",
	Fence:         "\x1b[38;5;244m",
	TableBorder:   "\x1b[38;5;245m",
	TableHeader:   "\x1b[38;5;75m",
}
