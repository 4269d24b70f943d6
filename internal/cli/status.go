package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rizkyriyadi/noval-quex/internal/config"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Report store connectivity",
		Long:  "Checks whether the document store is reachable and reports which content source the site would serve from.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus(cmd)
		},
	}
}

type statusReport struct {
	Store   string `json:"store"`
	Content string `json:"content"`
	Detail  string `json:"detail,omitempty"`
}

func runStatus(cmd *cobra.Command) error {
	ctx := cmd.Context()
	cfg := config.Load()

	report := statusReport{Store: "unconfigured", Content: "catalog"}
	if cfg.StoreURI != "" {
		st, err := mustConnect(ctx, cfg)
		if err != nil {
			report.Store = "unreachable"
			report.Detail = err.Error()
		} else {
			defer closeStore(ctx, st)
			if err := st.Ping(ctx); err != nil {
				report.Store = "unreachable"
				report.Detail = err.Error()
			} else {
				report.Store = "connected"
				report.Content = "live"
			}
		}
	}

	if isJSON() {
		return printJSON(report)
	}

	fmt.Printf("store:   %s\n", report.Store)
	fmt.Printf("content: %s\n", report.Content)
	if report.Detail != "" {
		fmt.Printf("detail:  %s\n", report.Detail)
	}
	return nil
}
