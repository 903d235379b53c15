package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"dining-agent/config"
	"dining-agent/models"
	"dining-agent/services"
)

func newCatalogCmd() *cobra.Command {
	var (
		size   int
		seed   uint64
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Print a generated venue catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if cmd.Flags().Changed("size") {
				if size < 1 {
					return fmt.Errorf("--size must be positive, got %d", size)
				}
				cfg.CatalogSize = size
			}
			if cmd.Flags().Changed("seed") {
				cfg.CatalogSeed = seed
			}
			venues := services.GenerateCatalog(cfg.CatalogSize, services.NewRand(cfg.CatalogSeed))
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(venues)
			}
			return printVenues(cmd.OutOrStdout(), venues)
		},
	}
	cmd.Flags().IntVar(&size, "size", 0, "number of venues (overrides CATALOG_SIZE)")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed (overrides CATALOG_SEED, 0 = time)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a table")

	return cmd
}

func printVenues(out io.Writer, venues []models.Venue) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCUISINE\tPRICE\tRATING\tCAPACITY\tLOCATION\tVIBE")
	for _, v := range venues {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%.1f\t%d\t%s\t%s\n",
			v.ID, v.Name, v.Cuisine, v.Price, v.Rating, v.Capacity, v.Location, strings.Join(v.Vibe, ", "))
	}
	return tw.Flush()
}
