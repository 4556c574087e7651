package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/codeexplainer/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize codeexplainer configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to choose the LLM provider, model and server settings, and writes them to .codeexplainer.yml.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := config.RunWizard(cfgFile); err != nil {
			return err
		}
		fmt.Println("Run `codeexplainer server` to start the web app.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
