// Add command saves a new memo.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/capmind/capmind/internal/format"
	"github.com/capmind/capmind/internal/ui"
	"github.com/capmind/capmind/pkg/memo"
)

func newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <text...>",
		Short: "Save a new memo",
		Long: `Add saves a new memo with the given text. Multiple arguments are
joined with single spaces.

Example:
  cap add buy milk
  cap add "remember the meeting at 10"`,
		Args: cobra.ArbitraryArgs,
		RunE: addMemo,
	}
}

// addMemo normalizes the text, appends it to storage, and prints a
// confirmation. Text that normalizes to nothing is rejected before any
// storage is touched.
func addMemo(cmd *cobra.Command, args []string) error {
	text, err := memo.Normalize(args)
	if err != nil {
		return fmt.Errorf("nothing to save: %w", err)
	}

	store, err := openStore()
	if err != nil {
		return systemErr(err)
	}
	defer store.Close()

	m, err := store.Append(text)
	if err != nil {
		return systemErr(fmt.Errorf("save memo: %w", err))
	}

	if flags.jsonMode {
		out, err := json.MarshalIndent(m, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal memo: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), ui.Success(fmt.Sprintf(
		"Saved memo %d (%s)", m.ID, format.DisplayTime(m.CreatedAt))))
	return nil
}
