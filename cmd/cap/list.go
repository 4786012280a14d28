// List command prints stored memos.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/capmind/capmind/internal/format"
	"github.com/capmind/capmind/internal/ui"
)

// fallbackWidth is used when the terminal width cannot be determined,
// e.g. when output is piped.
const fallbackWidth = 80

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List all memos",
		Long: `List prints all memos in insertion order, one per line, with their
id and creation time.

Example:
  cap list
  cap ls --limit 10
  cap list --json`,
		Args: cobra.NoArgs,
		RunE: listMemos,
	}
	cmd.Flags().IntP("limit", "n", 0, "maximum number of memos (0 = all)")
	return cmd
}

func listMemos(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")

	store, err := openStore()
	if err != nil {
		return systemErr(err)
	}
	defer store.Close()

	memos, err := store.List(limit)
	if err != nil {
		return systemErr(fmt.Errorf("list memos: %w", err))
	}

	if flags.jsonMode {
		out, err := json.MarshalIndent(memos, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal memos: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	}

	if len(memos) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No memos yet.")
		return nil
	}

	width := terminalWidth()
	idWidth := len(fmt.Sprintf("%d", memos[len(memos)-1].ID))
	for _, m := range memos {
		idCol := fmt.Sprintf("%*d", idWidth, m.ID)
		line := format.MemoLine(format.DisplayTime(m.CreatedAt), m.Text,
			width-runewidth.StringWidth(idCol)-2)
		fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", ui.Faint(idCol), line)
	}
	return nil
}

// terminalWidth returns the current terminal width, or fallbackWidth when
// stdout is not a terminal.
func terminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return fallbackWidth
}
