// Package highlight renders submitted source code as syntax-highlighted HTML.
package highlight

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"

	"github.com/ziadkadry99/codeexplainer/internal/language"
)


// Renderer highlights code with one goldmark instance per theme.
type Renderer struct {
	light goldmark.Markdown
	dark  goldmark.Markdown
}

// New creates a Renderer.
func New() *Renderer {
	return &Renderer{
		light: newMarkdown("xcode"),
		dark:  newMarkdown("monokai"),
	}
}

func newMarkdown(style string) goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle(style),
				highlighting.WithGuessLanguage(false),
			),
		),
	)
}

// Source renders code as a highlighted <pre> block for tag. Code content is
// always escaped.
func (r *Renderer) Source(code string, tag language.Tag, dark bool) (string, error) {
	if strings.TrimSpace(code) == "" {
		return "", nil
	}

	md := r.light
	if dark {
		md = r.dark
	}

	var buf bytes.Buffer
	if err := md.Convert([]byte(fence(code, tag.Lexer())), &buf); err != nil {
		return "", fmt.Errorf("highlighting %s source: %w", tag, err)
	}
	return buf.String(), nil
}

// fence wraps code in a backtick fence longer than any backtick run inside it.
func fence(code, lexer string) string {
	longest, run := 0, 0
	for _, c := range code {
		if c == '`' {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 0
		}
	}
	n := 3
	if longest >= n {
		n = longest + 1
	}
	marker := strings.Repeat("`", n)

	var b strings.Builder
	b.WriteString(marker)
	b.WriteString(lexer)
	b.WriteByte('\n')
	b.WriteString(code)
	if !strings.HasSuffix(code, "\n") {
		b.WriteByte('\n')
	}
	b.WriteString(marker)
	b.WriteByte('\n')
	return b.String()
}
