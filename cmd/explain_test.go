package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziadkadry99/codeexplainer/internal/language"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestCollectInputsFromStdin(t *testing.T) {
	inputs, err := collectInputs(t.TempDir(), nil, strings.NewReader("print(1)"), "")
	require.NoError(t, err)
	require.Len(t, inputs, 1)
	assert.Equal(t, "stdin", inputs[0].Name)
	assert.Equal(t, "print(1)", inputs[0].Code)
	assert.False(t, inputs[0].Known)

	inputs, err = collectInputs(t.TempDir(), nil, strings.NewReader("x"), language.Rust)
	require.NoError(t, err)
	assert.Equal(t, language.Rust, inputs[0].Lang)
	assert.True(t, inputs[0].Known)
}

func TestCollectInputsNothing(t *testing.T) {
	inputs, err := collectInputs(t.TempDir(), nil, nil, "")
	require.NoError(t, err)
	assert.Empty(t, inputs)
}

func TestCollectInputsGlobAndDetect(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.py", "a = 1")
	writeFile(t, dir, "pkg/b.py", "b = 2")
	writeFile(t, dir, "notes.txt", "hello")

	inputs, err := collectInputs(dir, []string{"**/*.py", "notes.txt"}, nil, "")
	require.NoError(t, err)
	require.Len(t, inputs, 3)

	byName := map[string]explainInput{}
	for _, in := range inputs {
		byName[filepath.Base(in.Name)] = in
	}
	assert.Equal(t, language.Python, byName["a.py"].Lang)
	assert.True(t, byName["b.py"].Known)
	assert.Equal(t, "b = 2", byName["b.py"].Code)
	assert.False(t, byName["notes.txt"].Known)
}

func TestCollectInputsForcedLanguageWins(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "main.py", "x")

	inputs, err := collectInputs(dir, []string{"main.py"}, nil, language.Java)
	require.NoError(t, err)
	require.Len(t, inputs, 1)
	assert.Equal(t, language.Java, inputs[0].Lang)
}

func TestCollectInputsAbsolutePath(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "x.rs", "fn main() {}")

	inputs, err := collectInputs(t.TempDir(), []string{filepath.Join(dir, "x.rs")}, nil, "")
	require.NoError(t, err)
	require.Len(t, inputs, 1)
	assert.Equal(t, language.Rust, inputs[0].Lang)
}

func TestCollectInputsNoMatch(t *testing.T) {
	_, err := collectInputs(t.TempDir(), []string{"*.go"}, nil, "")
	assert.Error(t, err)
}

func TestRenderTerminalKeepsText(t *testing.T) {
	out := renderTerminal("## Purpose\n* prints a value")
	assert.Contains(t, out, "Purpose")
	assert.Contains(t, out, "prints a value")
}
