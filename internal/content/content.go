// Package content holds the static text of the tips and about tabs.
package content

var tips = []string{
	"Write code that is easy to understand, not clever.",
	"Comment your code, but prefer self-documenting code.",
	"Test early and test often.",
	"Use consistent naming conventions.",
	"Don't repeat yourself (DRY principle).",
	"Keep functions small and focused on a single task.",
	"Learn keyboard shortcuts for your IDE.",
	"Optimize code for readability first, then performance.",
}

var about = []string{
	"CodeExplainer AI is a tool that uses a large language model to analyze and explain code in simple terms. Whether you're a beginner trying to understand complex code or an experienced developer reviewing unfamiliar code, it makes comprehension faster and easier.",
	"It supports multiple programming languages and provides explanations that highlight key concepts, potential issues, and best practices.",
}

// Tips returns the coding tips in display order.
func Tips() []string {
	return append([]string(nil), tips...)
}

// About returns the paragraphs of the about tab.
func About() []string {
	return append([]string(nil), about...)
}
