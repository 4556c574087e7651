package language

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// extensionToTag maps file extensions to the closest supported tag.
var extensionToTag = map[string]Tag{
	// JavaScript
	".js":  JavaScript,
	".jsx": JavaScript,
	".mjs": JavaScript,
	".cjs": JavaScript,
	".ts":  JavaScript,
	".tsx": JavaScript,
	// Python
	".py":  Python,
	".pyi": Python,
	// Java
	".java": Java,
	// C/C++
	".c":   Cpp,
	".h":   Cpp,
	".cpp": Cpp,
	".cc":  Cpp,
	".cxx": Cpp,
	".hpp": Cpp,
	".hxx": Cpp,
	// PHP
	".php": PHP,
	// HTML
	".html": HTML,
	".htm":  HTML,
	// CSS
	".css":  CSS,
	".scss": CSS,
	".less": CSS,
	// JSON
	".json": JSON,
	// Markdown
	".md":       Markdown,
	".markdown": Markdown,
	// Rust
	".rs": Rust,
}

// Detect returns the tag for filename based on its extension.
func Detect(filename string) (Tag, bool) {
	ext := strings.ToLower(filepath.Ext(filepath.Base(filename)))
	if ext == "" {
		return "", false
	}
	t, ok := extensionToTag[ext]
	return t, ok
}

// skipDirs are never descended into while expanding patterns.
var skipDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
	"vendor":       true,
	"dist":         true,
	"build":        true,
	"target":       true,
}

// MatchFiles expands doublestar patterns (relative to root) into a sorted,
// de-duplicated list of regular files. A pattern without glob syntax that
// names an existing file is returned as is.
func MatchFiles(root string, patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var out []string

	add := func(p string) {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}

	for _, pattern := range patterns {
		pattern = filepath.ToSlash(pattern)
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid pattern %q", pattern)
		}

		if info, err := os.Stat(filepath.Join(root, filepath.FromSlash(pattern))); err == nil && !info.IsDir() {
			add(filepath.FromSlash(pattern))
			continue
		}

		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if path != root && skipDirs[d.Name()] {
					return filepath.SkipDir
				}
				return nil
			}
			rel, err := filepath.Rel(root, path)
			if err != nil {
				return err
			}
			if ok, _ := doublestar.Match(pattern, filepath.ToSlash(rel)); ok {
				add(rel)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("expanding %q: %w", pattern, err)
		}
	}

	sort.Strings(out)
	return out, nil
}
