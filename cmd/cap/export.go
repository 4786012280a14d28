// Export command writes all memos to YAML or JSON for backup.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/capmind/capmind/pkg/capmind"
	"github.com/capmind/capmind/pkg/memo"
)

// exportData is the envelope written by cap export.
type exportData struct {
	ExportedAt time.Time    `json:"exported_at" yaml:"exported_at"`
	Version    string       `json:"version" yaml:"version"`
	Memos      []*memo.Memo `json:"memos" yaml:"memos"`
}

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all memos",
		Long: `Export writes all memos to YAML or JSON, to stdout or a file.

Example:
  cap export
  cap export --format json --output memos.json`,
		Args: cobra.NoArgs,
		RunE: exportMemos,
	}
	cmd.Flags().String("format", "yaml", "export format (yaml or json)")
	cmd.Flags().StringP("output", "o", "", "output file (default: stdout)")
	return cmd
}

func exportMemos(cmd *cobra.Command, args []string) error {
	exportFormat, _ := cmd.Flags().GetString("format")
	outputPath, _ := cmd.Flags().GetString("output")

	store, err := openStore()
	if err != nil {
		return systemErr(err)
	}
	defer store.Close()

	memos, err := store.List(0)
	if err != nil {
		return systemErr(fmt.Errorf("list memos: %w", err))
	}

	export := exportData{
		ExportedAt: time.Now().UTC().Truncate(time.Second),
		Version:    capmind.Version,
		Memos:      memos,
	}

	var data []byte
	switch exportFormat {
	case "yaml":
		data, err = yaml.Marshal(&export)
	case "json":
		data, err = json.MarshalIndent(&export, "", "  ")
	default:
		return fmt.Errorf("unknown format %q (want yaml or json)", exportFormat)
	}
	if err != nil {
		return fmt.Errorf("marshal export: %w", err)
	}

	var out io.Writer = cmd.OutOrStdout()
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			return systemErr(fmt.Errorf("create output file: %w", err))
		}
		defer f.Close()
		out = f
	}

	if len(data) == 0 || data[len(data)-1] != '\n' {
		data = append(data, '\n')
	}
	_, err = out.Write(data)
	return err
}
