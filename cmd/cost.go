package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/codeexplainer/internal/explainer"
	"github.com/ziadkadry99/codeexplainer/internal/language"
	"github.com/ziadkadry99/codeexplainer/internal/llm"
)

var costCmd = &cobra.Command{
	Use:   "cost [files or glob patterns...]",
	Short: "Estimate API costs for explaining files",
	Long:  `Performs a dry run that reads the given files, estimates prompt and response tokens, and calculates the expected API cost without making any calls.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCost,
}

func init() {
	costCmd.Flags().StringVarP(&explainLang, "lang", "l", "", "language tag used in the prompt (default: detected per file)")
	rootCmd.AddCommand(costCmd)
}

func runCost(cmd *cobra.Command, args []string) error {
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

	inputs, err := collectInputs(".", args, nil, forced)
	if err != nil {
		return err
	}

	// Responses are assumed to use the full token budget.
	perLang := make(map[language.Tag]int)
	var inputTokens, outputTokens int
	for _, in := range inputs {
		if !in.Known {
			in.Lang = language.Default
		}
		n := explainer.EstimateInputTokens(in.Lang, in.Code)
		inputTokens += n
		outputTokens += cfg.MaxTokens
		perLang[in.Lang]++
	}

	langs := make([]language.Tag, 0, len(perLang))
	for l := range perLang {
		langs = append(langs, l)
	}
	sort.Slice(langs, func(i, j int) bool { return langs[i] < langs[j] })

	fmt.Println("Cost Estimate")
	fmt.Println("=============")
	fmt.Printf("  Files:                %d\n", len(inputs))
	for _, l := range langs {
		fmt.Printf("    %-18s %d\n", l.DisplayName(), perLang[l])
	}
	fmt.Printf("  Prompt tokens:        ~%d\n", inputTokens)
	fmt.Printf("  Max response tokens:  %d\n", outputTokens)
	fmt.Println()

	cost := llm.EstimateCost(cfg.Model, inputTokens, outputTokens)
	if cost == 0 {
		fmt.Printf("  No pricing known for model %s\n", cfg.Model)
	} else {
		fmt.Printf("  Upper bound:          $%.4f\n", cost)
	}
	fmt.Println()
	fmt.Printf("  Provider: %s\n", cfg.Provider)
	fmt.Printf("  Model:    %s\n", cfg.Model)

	return nil
}
