package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/rizkyriyadi/noval-quex/internal/catalog"
)

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printPropertyTable(props []catalog.Property) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SLUG\tTYPE\tLOCATION\tPRICE\tFEATURED")
	for _, p := range props {
		featured := ""
		if p.Featured {
			featured = "yes"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", p.Slug, p.Type, p.Location, formatRupiah(p.Price), featured)
	}
	return w.Flush()
}

func printPropertySummary(p catalog.Property) {
	fmt.Printf("%s (%s)\n", p.Title, p.Type)
	fmt.Printf("  slug:     %s\n", p.Slug)
	fmt.Printf("  location: %s\n", p.Location)
	fmt.Printf("  price:    %s\n", formatRupiah(p.Price))
	fmt.Printf("  bedrooms: %d  bathrooms: %d  area: %d m²\n", p.Bedrooms, p.Bathrooms, p.Area)
	if p.Featured {
		fmt.Println("  featured: yes")
	}
	if p.Description != "" {
		fmt.Printf("\n%s\n", p.Description)
	}
}

func printNewsTable(articles []catalog.NewsArticle) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tSLUG\tTITLE")
	for _, a := range articles {
		fmt.Fprintf(w, "%s\t%s\t%s\n", a.PublishedAt.Format("2006-01-02"), a.Slug, a.Title)
	}
	return w.Flush()
}

// formatRupiah renders whole-rupiah prices the way the site does:
// billions as "Rp X.X Miliar", anything smaller as "Rp X Juta".
func formatRupiah(price int64) string {
	if price >= 1_000_000_000 {
		return fmt.Sprintf("Rp %.1f Miliar", float64(price)/1_000_000_000)
	}
	return fmt.Sprintf("Rp %.0f Juta", float64(price)/1_000_000)
}
