package mdcat

import (
	"strings"
	"testing"
)

func TestStripFrontMatterVariants(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "yaml",
			src:  "---\ntitle: Post\ndate: 2026-02-09\n---\n# Hello\n",
			want: "# Hello\n",
		},
		{
			name: "toml",
			src:  "+++\ntitle = \"Post\"\n+++\nbody\n",
			want: "body\n",
		},
		{
			name: "json",
			src:  ";;;\n{\"title\": \"Post\"}\n;;;\nbody\n",
			want: "body\n",
		},
		{
			name: "bom before delimiter",
			src:  "\xef\xbb\xbf---\ntitle: x\n---\nbody\n",
			want: "body\n",
		},
		{
			name: "crlf lines",
			src:  "---\r\ntitle: x\r\n---\r\nbody\r\n",
			want: "body\r\n",
		},
		{
			name: "no front matter",
			src:  "# Hello\n\nBody\n",
			want: "# Hello\n\nBody\n",
		},
		{
			name: "unclosed block kept",
			src:  "---\ntitle: x\nnever closed\n",
			want: "---\ntitle: x\nnever closed\n",
		},
		{
			name: "thematic break not metadata",
			src:  "---\njust prose\n---\n",
			want: "---\njust prose\n---\n",
		},
		{
			name: "mid document delimiter kept",
			src:  "# Intro\n\n+++\ntitle = \"Keep me\"\n+++\n",
			want: "# Intro\n\n+++\ntitle = \"Keep me\"\n+++\n",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := string(stripFrontMatter([]byte(tc.src)))
			if got != tc.want {
				t.Fatalf("want %q, got %q", tc.want, got)
			}
		})
	}
}

func TestRenderOmitsFrontMatter(t *testing.T) {
	src := "---\ntitle: Post\ndate: 2026-02-09\n---\n\n# Hello\n\nBody.\n"
	out := renderPlain(t, src)
	if strings.Contains(out, "title: Post") || strings.Contains(out, "2026-02-09") {
		t.Fatalf("front matter leaked into output: %q", out)
	}
	if !strings.Contains(out, "Hello") || !strings.Contains(out, "Body.") {
		t.Fatalf("document body missing: %q", out)
	}
}
