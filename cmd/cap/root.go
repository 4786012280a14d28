// Root command for the cap CLI.
package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/capmind/capmind/internal/paths"
	"github.com/capmind/capmind/internal/tui"
	"github.com/capmind/capmind/internal/ui"
	"github.com/capmind/capmind/pkg/capmind"
	"github.com/capmind/capmind/pkg/memo"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	dataDir   string
	jsonMode  bool
}

var flags rootFlags

// configDataDir holds the data_dir value loaded from config.yaml.
// Set by PersistentPreRunE so all subcommands can use it.
var configDataDir string

// NewRootCmd creates the top-level "cap" command with global flags and all
// subcommands registered. Invoked with no arguments it starts the
// interactive mode.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "cap",
		Short:   "A tiny memo app",
		Long:    "Cap records short timestamped memos in a local database.\nRun a subcommand, or no arguments for the interactive mode.",
		Version: capmind.Version,
		Args:    cobra.NoArgs,
		// Do not print usage on errors returned by subcommands.
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" {
				return nil
			}
			configDir, err := paths.ResolveConfigDir(flags.configDir)
			if err != nil {
				return err
			}
			cfg, err := loadConfig(configDir)
			if err != nil {
				return err
			}
			configDataDir = cfg.GetString(cfgKeyDataDir)
			return nil
		},
		RunE: runRoot,
	}

	root.PersistentFlags().StringVar(&flags.configDir, "config-dir", "", "configuration directory (default: ~/.capmind)")
	root.PersistentFlags().StringVar(&flags.dataDir, "data-dir", "", "data directory (default: ~/.capmind)")
	root.PersistentFlags().BoolVar(&flags.jsonMode, "json", false, "output in JSON format")

	root.AddCommand(newAddCmd())
	root.AddCommand(newListCmd())
	root.AddCommand(newExportCmd())
	root.AddCommand(newVersionCmd())

	return root
}

// runRoot handles the bare invocation by starting the interactive mode.
func runRoot(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return systemErr(err)
	}
	defer store.Close()

	if err := tui.Run(store); err != nil {
		return systemErr(err)
	}
	return nil
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Fail(err.Error()))
		if strings.Contains(err.Error(), "unknown command") {
			fmt.Fprintf(os.Stderr, "Run '%s --help' for usage.\n", root.CommandPath())
		}
		os.Exit(exitCode(err))
	}
}

// sysError marks a failure as system-level (storage, filesystem) so
// Execute can map it to exit code 2. Everything else is a user error.
type sysError struct{ err error }

func (e sysError) Error() string { return e.err.Error() }
func (e sysError) Unwrap() error { return e.err }

func systemErr(err error) error { return sysError{err: err} }

// exitCode maps an error to the process exit status. Validation problems
// are user errors; storage and schema failures are system errors.
func exitCode(err error) int {
	var se sysError
	switch {
	case errors.Is(err, memo.ErrEmptyText):
		return exitUserError
	case errors.As(err, &se):
		return exitSysError
	case errors.Is(err, memo.ErrSchemaIncompatible),
		errors.Is(err, memo.ErrConstraintViolation):
		return exitSysError
	default:
		return exitUserError
	}
}
