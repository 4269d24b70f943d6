package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rizkyriyadi/noval-quex/internal/catalog"
	"github.com/rizkyriyadi/noval-quex/internal/config"
)

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Seed the store with the bundled catalog",
		Long:  "Inserts the bundled properties and news into the live store so the site stops serving fallback content. Existing documents are not touched.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(cmd)
		},
	}
}

func runSeed(cmd *cobra.Command) error {
	cfg := config.Load()
	if cfg.StoreURI == "" {
		return fmt.Errorf("MONGODB_URI is required to seed the store")
	}

	ctx := cmd.Context()
	st, err := mustConnect(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore(ctx, st)

	n, err := st.SeedCatalog(ctx, catalog.Default())
	if err != nil {
		return err
	}

	fmt.Printf("Seeded %d documents into %s\n", n, cfg.StoreDB)
	return nil
}
