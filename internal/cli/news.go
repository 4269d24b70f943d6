package cli

import (
	"github.com/spf13/cobra"

	"github.com/rizkyriyadi/noval-quex/internal/catalog"
	"github.com/rizkyriyadi/noval-quex/internal/config"
)

func newNewsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "news",
		Short: "Inspect news articles",
	}

	cmd.AddCommand(newNewsListCmd())

	return cmd
}

func newNewsListCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List news articles",
		Long:  "List articles newest first, optionally limited to the most recent N.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNewsList(cmd, limit)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "only the newest N articles (0 = all)")

	return cmd
}

func runNewsList(cmd *cobra.Command, limit int) error {
	ctx := cmd.Context()
	cfg := config.Load()
	svc, st := newService(ctx, cfg)
	defer closeStore(ctx, st)

	var articles []catalog.NewsArticle
	if limit > 0 {
		articles = svc.ListLatestNews(ctx, limit)
	} else {
		articles = svc.ListNews(ctx)
	}

	if isJSON() {
		return printJSON(articles)
	}
	return printNewsTable(articles)
}
