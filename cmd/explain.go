package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/glamour"
	"github.com/manifoldco/promptui"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/codeexplainer/internal/explainer"
	"github.com/ziadkadry99/codeexplainer/internal/language"
	"github.com/ziadkadry99/codeexplainer/internal/progress"
)

var (
	explainLang  string
	explainFiles []string
	explainHTML  bool
	explainRaw   bool
	explainCopy  bool
)

var explainCmd = &cobra.Command{
	Use:   "explain [files or glob patterns...]",
	Short: "Explain source code from files or stdin",
	Long: `Sends each file (or stdin when no file is given) to the configured provider
and prints a point-by-point explanation. Glob patterns such as "src/**/*.py"
are expanded relative to the working directory.

The language is taken from --lang, then the file extension. When neither
decides it and stdin is a terminal, you are asked to pick one.`,
	RunE: runExplain,
}

func init() {
	explainCmd.Flags().StringVarP(&explainLang, "lang", "l", "", "language tag (see `codeexplainer languages`)")
	explainCmd.Flags().StringSliceVarP(&explainFiles, "file", "f", nil, "file to explain (repeatable)")
	explainCmd.Flags().BoolVar(&explainHTML, "html", false, "print the formatted HTML instead of rendering for the terminal")
	explainCmd.Flags().BoolVar(&explainRaw, "raw", false, "print the raw explanation text")
	explainCmd.Flags().BoolVar(&explainCopy, "copy", false, "copy the raw explanation to the clipboard")
	rootCmd.AddCommand(explainCmd)
}

// explainInput is one piece of code to explain.
type explainInput struct {
	Name string
	Code string
	Lang language.Tag
	// Known is false when neither --lang nor the file name decided Lang.
	Known bool
}

func runExplain(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var forced language.Tag
	if explainLang != "" {
		if forced, err = language.Parse(explainLang); err != nil {
			return err
		}
	}

	interactive := isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())

	var stdin io.Reader
	if !interactive {
		stdin = os.Stdin
	}
	inputs, err := collectInputs(".", append(explainFiles, args...), stdin, forced)
	if err != nil {
		return err
	}
	if len(inputs) == 0 {
		return fmt.Errorf("no code to explain: pass files, glob patterns, or pipe code on stdin")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	svc := newExplainService(cfg, newLogger(slog.LevelWarn))
	reporter := progress.NewReporter()

	var copied []string
	for i, in := range inputs {
		if !in.Known {
			if interactive {
				if in.Lang, err = promptLanguage(in.Name); err != nil {
					return err
				}
			} else {
				in.Lang = language.Default
			}
		}

		if len(inputs) > 1 {
			if i > 0 {
				fmt.Println()
			}
			fmt.Printf("==> %s (%s) <==\n", in.Name, in.Lang.DisplayName())
		}

		reporter.Start(fmt.Sprintf("Explaining %s", in.Name))
		res, err := svc.Explain(ctx, explainer.Request{Code: in.Code, Language: in.Lang})
		reporter.Finish("")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s: %v\n", in.Name, err)
			continue
		}
		if res.Notice != "" {
			fmt.Fprintf(os.Stderr, "Warning: %s\n", res.Notice)
		}

		printExplanation(res)
		copied = append(copied, res.Raw)
	}

	if explainCopy && len(copied) > 0 {
		if err := clipboard.WriteAll(strings.Join(copied, "\n\n")); err != nil {
			return fmt.Errorf("copying to clipboard: %w", err)
		}
		fmt.Fprintln(os.Stderr, "Copied!")
	}
	return nil
}

// collectInputs reads the named files and glob patterns relative to root. When
// none are given it reads stdin, if non-nil.
func collectInputs(root string, patterns []string, stdin io.Reader, forced language.Tag) ([]explainInput, error) {
	if len(patterns) == 0 {
		if stdin == nil {
			return nil, nil
		}
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return []explainInput{{Name: "stdin", Code: string(data), Lang: forced, Known: forced != ""}}, nil
	}

	var paths []string
	var rel []string
	for _, p := range patterns {
		if filepath.IsAbs(p) {
			paths = append(paths, p)
		} else {
			rel = append(rel, p)
		}
	}
	if len(rel) > 0 {
		matched, err := language.MatchFiles(root, rel)
		if err != nil {
			return nil, err
		}
		if len(matched) == 0 {
			return nil, fmt.Errorf("no files match %s", strings.Join(rel, ", "))
		}
		for _, m := range matched {
			paths = append(paths, filepath.Join(root, m))
		}
	}

	inputs := make([]explainInput, 0, len(paths))
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", p, err)
		}
		in := explainInput{Name: p, Code: string(data), Lang: forced, Known: forced != ""}
		if !in.Known {
			in.Lang, in.Known = language.Detect(p)
		}
		inputs = append(inputs, in)
	}
	return inputs, nil
}

// promptLanguage asks the user to pick the language for name.
func promptLanguage(name string) (language.Tag, error) {
	tags := language.All()
	items := make([]string, len(tags))
	for i, t := range tags {
		items[i] = t.DisplayName()
	}

	prompt := promptui.Select{
		Label: fmt.Sprintf("Language of %s", name),
		Items: items,
		Size:  len(items),
	}
	idx, _, err := prompt.Run()
	if err != nil {
		return "", fmt.Errorf("language selection: %w", err)
	}
	return tags[idx], nil
}

func printExplanation(res *explainer.Result) {
	switch {
	case explainHTML:
		fmt.Println(res.HTML)
	case explainRaw:
		fmt.Println(res.Raw)
	default:
		fmt.Print(renderTerminal(res.Raw))
	}
}

// renderTerminal styles markdown for the terminal, returning text unchanged
// if rendering fails.
func renderTerminal(text string) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return text + "\n"
	}
	out, err := r.Render(text)
	if err != nil {
		return text + "\n"
	}
	return out
}
