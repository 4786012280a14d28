// Shared storage helper for cap commands.
package main

import (
	"fmt"

	"github.com/capmind/capmind/internal/paths"
	"github.com/capmind/capmind/internal/sqlite"
)

// openStore resolves the data directory and opens the storage engine,
// initializing the database file if needed. The caller must defer Close.
func openStore() (*sqlite.Store, error) {
	dataDir, err := paths.ResolveDataDir(flags.dataDir, configDataDir)
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	store, err := sqlite.Open(paths.DBPath(dataDir))
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}
	return store, nil
}
