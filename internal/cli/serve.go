package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rizkyriyadi/noval-quex/internal/config"
	"github.com/rizkyriyadi/noval-quex/internal/logging"
	"github.com/rizkyriyadi/noval-quex/internal/web"
)

func newServeCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the website",
		Long:  "Start the HTTP server for the marketing site and its JSON API.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, port)
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "port to listen on (default: PORT env or 8080)")

	return cmd
}

func runServe(cmd *cobra.Command, port int) error {
	cfg := config.Load()
	logging.Setup(cfg.Dev)

	if port == 0 {
		port = cfg.Port
	}

	site, err := config.LoadSite(flagSite)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	svc, st := newService(ctx, cfg)
	defer closeStore(ctx, st)

	srv, err := web.NewServer(svc, site)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	return srv.ListenAndServe(port)
}
