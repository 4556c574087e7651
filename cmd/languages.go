package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/codeexplainer/internal/language"
)

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List the supported language tags",
	Run: func(cmd *cobra.Command, args []string) {
		for _, t := range language.All() {
			marker := " "
			if t == language.Default {
				marker = "*"
			}
			fmt.Printf("%s %-10s %s\n", marker, t, t.DisplayName())
		}
		fmt.Println()
		fmt.Println("* = default")
	},
}

func init() {
	rootCmd.AddCommand(languagesCmd)
}
