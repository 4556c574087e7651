// Package language defines the fixed set of source languages the explainer
// accepts. A Tag selects syntax highlighting and the fallback explanation.
package language

import (
	"errors"
	"fmt"
	"strings"
)

// Tag identifies a supported source language.
type Tag string

const (
	JavaScript Tag = "javascript"
	Python     Tag = "python"
	Java       Tag = "java"
	Cpp        Tag = "cpp"
	PHP        Tag = "php"
	HTML       Tag = "html"
	CSS        Tag = "css"
	JSON       Tag = "json"
	Markdown   Tag = "markdown"
	Rust       Tag = "rust"
)

// Default is the tag preselected when the caller does not choose one.
const Default = JavaScript

// ErrUnknownLanguage is returned by Parse for tags outside the supported set.
var ErrUnknownLanguage = errors.New("unknown language")

type info struct {
	display string
	lexer   string
}

// tags lists the supported languages in selector order.
var tags = []Tag{JavaScript, Python, Java, Cpp, PHP, HTML, CSS, JSON, Markdown, Rust}

var infos = map[Tag]info{
	JavaScript: {display: "JavaScript", lexer: "javascript"},
	Python:     {display: "Python", lexer: "python"},
	Java:       {display: "Java", lexer: "java"},
	Cpp:        {display: "C++", lexer: "cpp"},
	PHP:        {display: "PHP", lexer: "php"},
	HTML:       {display: "HTML", lexer: "html"},
	CSS:        {display: "CSS", lexer: "css"},
	JSON:       {display: "JSON", lexer: "json"},
	Markdown:   {display: "Markdown", lexer: "markdown"},
	Rust:       {display: "Rust", lexer: "rust"},
}

// All returns every supported tag in selector order.
func All() []Tag {
	out := make([]Tag, len(tags))
	copy(out, tags)
	return out
}

// Parse resolves s to a Tag. Matching is case-insensitive and ignores
// surrounding whitespace. An empty string yields Default.
func Parse(s string) (Tag, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return Default, nil
	}
	t := Tag(s)
	if _, ok := infos[t]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownLanguage, s)
	}
	return t, nil
}

// Valid reports whether t is one of the supported tags.
func (t Tag) Valid() bool {
	_, ok := infos[t]
	return ok
}

// DisplayName is the human-readable name shown in the language selector.
func (t Tag) DisplayName() string {
	if i, ok := infos[t]; ok {
		return i.display
	}
	return string(t)
}

// Lexer is the chroma lexer name used to highlight source in this language.
func (t Tag) Lexer() string {
	if i, ok := infos[t]; ok {
		return i.lexer
	}
	return "plaintext"
}

func (t Tag) String() string { return string(t) }
