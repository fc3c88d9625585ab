package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/abhisek/iroquiz/internal/catalog"
	"github.com/abhisek/iroquiz/internal/console"
	"github.com/abhisek/iroquiz/internal/session"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect the loaded color catalog",
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print every loaded color and the load report",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, report, err := loadCatalog(cmd)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if err := writeCatalogTable(out, cat); err != nil {
			return err
		}
		writeReport(out, report)
		return nil
	},
}

var catalogShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Print one color's detail card",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, _, err := loadCatalog(cmd)
		if err != nil {
			return err
		}
		c, ok := cat.ByName(args[0])
		if !ok {
			return fmt.Errorf("color %q not found in %d loaded colors", args[0], cat.Len())
		}

		out := cmd.OutOrStdout()
		console.WriteCard(out, session.NewCard(c))
		for i, s := range c.Sentences {
			fmt.Fprintf(out, "  %d. %s\n", i+1, s)
		}
		if c.Source != "" {
			fmt.Fprintf(out, "\nfrom %s\n", c.Source)
		}
		return nil
	},
}

func init() {
	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogShowCmd)
}

func loadCatalog(cmd *cobra.Command) (*catalog.Catalog, *catalog.LoadReport, error) {
	e, err := setup(cmd)
	if err != nil {
		return nil, nil, err
	}
	defer e.close()

	cat, report, err := e.load(cmd.Context())
	if err != nil {
		return nil, nil, fmt.Errorf("data load error: %w", err)
	}
	return cat, report, nil
}

func writeCatalogTable(w io.Writer, cat *catalog.Catalog) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tFAMILY\tMUNSELL\tPCCS\tRGB\tSENTENCES")
	for _, c := range cat.All() {
		card := session.NewCard(c)
		rgb := card.RGB
		if card.Hex != "" {
			rgb = card.Hex
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%d\n",
			card.Name, card.Family, card.Munsell, card.PCCS, rgb, len(c.Sentences))
	}
	return tw.Flush()
}

func writeReport(w io.Writer, r *catalog.LoadReport) {
	fmt.Fprintln(w)
	for _, s := range r.Sources {
		fmt.Fprintf(w, "source       %s\n", s)
	}
	fmt.Fprintf(w, "rows read    %d\n", r.RowsRead)
	fmt.Fprintf(w, "no name      %d\n", r.MissingName)
	fmt.Fprintf(w, "duplicates   %d\n", r.Duplicates)
	fmt.Fprintf(w, "rgb unknown  %d\n", r.RGBUnknown)
	fmt.Fprintf(w, "records      %d\n", r.RecordsTotal)
}
