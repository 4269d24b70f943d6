package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rizkyriyadi/noval-quex/internal/catalog"
	"github.com/rizkyriyadi/noval-quex/internal/config"
	"github.com/rizkyriyadi/noval-quex/internal/filter"
)

func newPropertiesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "properties",
		Short: "Inspect the property listing",
	}

	cmd.AddCommand(newPropertiesListCmd(), newPropertiesShowCmd())

	return cmd
}

func newPropertiesListCmd() *cobra.Command {
	var (
		propType string
		featured bool
		search   string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List properties",
		Long:  "List properties from the store (or the bundled catalog), with the same type and search filters as the listing page.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPropertiesList(cmd, propType, featured, search)
		},
	}

	cmd.Flags().StringVar(&propType, "type", "all", "filter by type (house|apartment|villa|all)")
	cmd.Flags().BoolVar(&featured, "featured", false, "only featured properties")
	cmd.Flags().StringVar(&search, "search", "", "substring match on title or location")

	return cmd
}

func runPropertiesList(cmd *cobra.Command, propType string, featured bool, search string) error {
	if propType != string(catalog.TypeAll) && !catalog.ValidPropertyType(propType) {
		return fmt.Errorf("unknown property type %q", propType)
	}

	ctx := cmd.Context()
	cfg := config.Load()
	svc, st := newService(ctx, cfg)
	defer closeStore(ctx, st)

	var props []catalog.Property
	if featured {
		props = svc.ListFeaturedProperties(ctx)
	} else {
		props = svc.ListProperties(ctx)
	}
	props = filter.Apply(props, catalog.PropertyType(propType), search)

	if isJSON() {
		return printJSON(props)
	}
	return printPropertyTable(props)
}

func newPropertiesShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <slug>",
		Short: "Show one property",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPropertiesShow(cmd, args[0])
		},
	}

	return cmd
}

func runPropertiesShow(cmd *cobra.Command, slug string) error {
	ctx := cmd.Context()
	cfg := config.Load()
	svc, st := newService(ctx, cfg)
	defer closeStore(ctx, st)

	p, err := svc.GetPropertyBySlug(ctx, slug)
	if err != nil {
		return fmt.Errorf("property %q not found", slug)
	}

	if isJSON() {
		return printJSON(p)
	}
	printPropertySummary(p)
	return nil
}
