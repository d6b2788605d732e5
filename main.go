package main

import (
	"embed"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

//go:embed config.yaml assets/vocabulary.yaml
var File embed.FS

var rootFlags struct {
	config string
}

var rootCmd = &cobra.Command{
	Use:   "arena",
	Short: "Read auto-battler game state from the screen",
	Long: "arena captures fixed screen regions every cycle, recognizes their text\n" +
		"and assembles a game state snapshot for a decision layer.",
	SilenceUsage: true,
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootFlags.config, "config", "", "config file (default: embedded config.yaml)")
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(onceCmd)
	rootCmd.AddCommand(ocrStatusCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
