// Package formatter renders the small markdown subset produced by explanation
// completions (##/###/#### headings, "* " bullets and newlines) into HTML
// fragments for direct injection into the page.
package formatter

import (
	"html"
	"strings"
)

// Markup emitted by the transform. The class attributes are the ones the
// explanation card styles against.
const (
	listOpen  = `<ul class="my-3">`
	listClose = `</ul>`
	itemOpen  = `<li class="ml-5 mb-2 flex items-start"><span class="text-primary font-bold mr-2">•</span><span>`
	itemClose = `</span></li>`
	itemStart = "<li"
	lineBreak = "<br>"

	bulletMarker = "* "
)

type headingRule struct {
	marker string
	open   string
	close  string
}

// headingRules are tried in order; "## " never matches a "### " line, so the
// order only matters for readability.
var headingRules = []headingRule{
	{marker: "## ", open: `<h2 class="text-2xl font-bold mt-6 mb-3">`, close: "</h2>"},
	{marker: "### ", open: `<h3 class="text-xl font-bold mt-5 mb-2">`, close: "</h3>"},
	{marker: "#### ", open: `<h4 class="text-lg font-bold mt-4 mb-2">`, close: "</h4>"},
}

// Options controls how literal text is emitted.
type Options struct {
	// Escape HTML-escapes every piece of literal text before it is wrapped,
	// so the only tags in the output are the ones the transform generates.
	Escape bool
}

// Format renders text with escaping enabled. This is the renderer the
// service uses by default.
func Format(text string) string {
	return Render(text, Options{Escape: true})
}

// FormatUnsafe renders text without escaping: any markup in the input is
// passed through as live HTML. Only use it for trusted input.
func FormatUnsafe(text string) string {
	return Render(text, Options{})
}

// Render converts text to an HTML fragment. Empty input yields empty output.
// Running Render on its own output is not meaningful: generated tags would be
// treated as content.
func Render(text string, opts Options) string {
	if text == "" {
		return ""
	}

	literal := func(s string) string { return s }
	if opts.Escape {
		literal = html.EscapeString
	}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = convertLine(line, literal)
	}
	wrapLists(lines)

	return strings.Join(lines, lineBreak)
}

// convertLine applies the heading and bullet rules to a single line. A
// trailing carriage return is kept outside the generated element so CRLF
// input behaves like LF input.
func convertLine(line string, literal func(string) string) string {
	body, cr := line, ""
	if strings.HasSuffix(body, "\r") {
		body, cr = body[:len(body)-1], "\r"
	}

	for _, rule := range headingRules {
		if rest, ok := strings.CutPrefix(body, rule.marker); ok {
			return rule.open + literal(rest) + rule.close + cr
		}
	}
	if rest, ok := strings.CutPrefix(body, bulletMarker); ok {
		return itemOpen + literal(rest) + itemClose + cr
	}
	return literal(line)
}

// wrapLists surrounds every maximal run of list-item lines with exactly one
// list open/close pair. A run still open at the end of input is closed on
// the last line.
func wrapLists(lines []string) {
	inList := false
	for i, line := range lines {
		isItem := strings.HasPrefix(line, itemStart)
		switch {
		case isItem && !inList:
			lines[i] = listOpen + line
			inList = true
		case !isItem && inList:
			lines[i-1] += listClose
			inList = false
		}
	}
	if inList {
		lines[len(lines)-1] += listClose
	}
}
