// Command invoicectl renders and exports invoices offline, against the
// file-backed company directory.
package main

import (
	"log/slog"
	"os"

	"github.com/onyxtech/onyx-invoice/pkg/config"
)

func main() {
	cfg, err := config.LoadEnv()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := newRootCmd(cfg).Execute(); err != nil {
		os.Exit(1)
	}
}
