package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

var onceFlags struct {
	copy bool
}

var onceCmd = &cobra.Command{
	Use:   "once",
	Short: "Extract a single snapshot and print it as JSON",
	RunE:  runOnce,
}

func init() {
	onceCmd.Flags().BoolVar(&onceFlags.copy, "copy", false, "also copy the JSON to the clipboard")
}

func runOnce(cmd *cobra.Command, _ []string) error {
	if err := loadConfig(rootFlags.config); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	arena, closeBackend, err := newArena(ctx)
	if err != nil {
		return err
	}
	defer closeBackend()

	snap := arena.Snapshot(ctx)
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))

	if onceFlags.copy {
		if err := clipboard.WriteAll(string(data)); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
	}
	return nil
}
