// Package cli defines the cobra command tree for the asridev binary.
package cli

import (
	"context"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/rizkyriyadi/noval-quex/internal/catalog"
	"github.com/rizkyriyadi/noval-quex/internal/config"
	"github.com/rizkyriyadi/noval-quex/internal/content"
	"github.com/rizkyriyadi/noval-quex/internal/store"
)

var (
	flagFormat string
	flagSite   string
)

// connectTimeout bounds the initial store dial for every command.
const connectTimeout = 10 * time.Second

// NewRootCmd creates the root cobra command with global flags.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "asridev",
		Short:         "Serve and inspect the AsriDev marketing site",
		Long:          "Runs the AsriDev property-developer website and gives command-line access to its content: properties, news, store seeding and health.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&flagFormat, "format", "text", "output format (text|json)")
	root.PersistentFlags().StringVar(&flagSite, "site-config", "", "site config YAML path (default: embedded)")

	root.AddCommand(
		newServeCmd(),
		newPropertiesCmd(),
		newNewsCmd(),
		newSeedCmd(),
		newStatusCmd(),
		newVersionCmd(),
	)

	return root
}

// isJSON returns true if the --format flag is set to json.
func isJSON() bool {
	return flagFormat == "json"
}

// newService builds the retrieval service, connecting to the store when
// one is configured. A missing or unreachable store degrades to
// catalog-only mode instead of failing the command.
func newService(ctx context.Context, cfg config.Config) (*content.Service, *store.Store) {
	if cfg.StoreURI == "" {
		slog.Info("no store configured, running in catalog-only mode")
		return content.New(nil, catalog.Default()), nil
	}

	dialCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	st, err := store.Connect(dialCtx, cfg.StoreURI, cfg.StoreDB)
	if err != nil {
		slog.Warn("store unreachable, running in catalog-only mode", "error", err)
		return content.New(nil, catalog.Default()), nil
	}

	return content.New(st, catalog.Default()), st
}

// mustConnect dials the store or fails; used by commands that only
// make sense against a live store.
func mustConnect(ctx context.Context, cfg config.Config) (*store.Store, error) {
	dialCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	return store.Connect(dialCtx, cfg.StoreURI, cfg.StoreDB)
}

// closeStore disconnects, logging any error.
func closeStore(ctx context.Context, st *store.Store) {
	if st == nil {
		return
	}
	if err := st.Close(ctx); err != nil {
		slog.Warn("closing store", "error", err)
	}
}
