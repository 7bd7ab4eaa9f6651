package commands

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"pet-adoption/internal/catalog"

	"github.com/spf13/cobra"
)

func newPetsCmd(g *globals) *cobra.Command {
	var (
		query      string
		by         []string
		page       int
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "pets",
		Short: "List available pets (search and paginate)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fields, err := catalog.ParseFields(by)
			if err != nil {
				return err
			}
			s, err := g.session(g.log)
			if err != nil {
				return err
			}
			if err := s.Refresh(cmd.Context()); err != nil {
				return err
			}

			pg := s.Search(query, page, fields...)
			out := cmd.OutOrStdout()

			if jsonOutput {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(pg)
			}

			if pg.Total == 0 {
				fmt.Fprintln(out, "No pets found.")
				return nil
			}

			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tTYPE\tBREED\tSEX\tAGE\tLOCATION\tTRAITS\tLIKED")
			for _, p := range pg.Items {
				liked := ""
				if p.IsLiked {
					liked = "yes"
				}
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%d\t%s\t%s\t%s\n",
					p.ID, p.Name, p.Type, p.Breed, p.Sex, p.Age, p.Location,
					strings.Join(catalog.TopTraits(p.Traits, catalog.CardTraits), ", "),
					liked,
				)
			}
			if err := tw.Flush(); err != nil {
				return err
			}

			window := catalog.PageWindow(pg.Page, pg.TotalPages, catalog.PageWindowSize)
			labels := make([]string, len(window))
			for i, n := range window {
				labels[i] = strconv.Itoa(n)
				if n == pg.Page {
					labels[i] = "[" + labels[i] + "]"
				}
			}
			fmt.Fprintf(out, "\npage %d of %d (%d pets)  %s\n", pg.Page, pg.TotalPages, pg.Total, strings.Join(labels, " "))
			return nil
		},
	}

	cmd.Flags().StringVarP(&query, "search", "s", "", "Filter by breed, type or location")
	cmd.Flags().StringSliceVar(&by, "by", nil, "Fields to search: name, type, breed, location")
	cmd.Flags().IntVarP(&page, "page", "p", 1, "Page number")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	return cmd
}
