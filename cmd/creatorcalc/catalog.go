package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/rgehrsitz/creatorcalc/internal/domain"
	"github.com/rgehrsitz/creatorcalc/internal/registry"
	"github.com/spf13/cobra"
)

func platformsCmd(_ *app) *cobra.Command {
	var (
		category string
		format   string
		verbose  bool
	)
	cmd := &cobra.Command{
		Use:   "platforms",
		Short: "List supported platforms and their inputs",
		RunE: func(cmd *cobra.Command, args []string) error {
			platforms := registry.Platforms()
			if category != "" {
				platforms = registry.PlatformsByCategory(domain.Category(strings.ToLower(category)))
				if len(platforms) == 0 {
					return fmt.Errorf("unknown category %q", category)
				}
			}
			switch strings.ToLower(format) {
			case "json":
				return writeJSON(cmd.OutOrStdout(), platforms)
			case "table", "console", "":
			default:
				return fmt.Errorf("unsupported format: %s (available: table, json)", format)
			}

			out := cmd.OutOrStdout()
			var last domain.Category
			for _, p := range platforms {
				if p.Category != last {
					if last != "" {
						fmt.Fprintln(out)
					}
					fmt.Fprintln(out, strings.ToUpper(string(p.Category)))
					last = p.Category
				}
				fmt.Fprintf(out, "  %-14s %s\n", p.ID, p.Name)
				if !verbose {
					continue
				}
				for _, in := range p.Inputs {
					fmt.Fprintf(out, "      %-20s %-28s %g..%g (default %g)\n", in.ID, in.Label, in.Min, in.Max, in.Default)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "Only list one category: video, social, subscription, livestream, commerce")
	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format: table, json")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show each platform's inputs")
	return cmd
}

func regionsCmd(_ *app) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "regions",
		Short: "List audience regions and their revenue multipliers",
		RunE: func(cmd *cobra.Command, args []string) error {
			regions := registry.Regions()
			if strings.EqualFold(format, "json") {
				return writeJSON(cmd.OutOrStdout(), regions)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-8s %-20s %8s %8s\n", "ID", "Region", "Revenue", "RPM")
			for _, r := range regions {
				fmt.Fprintf(out, "%-8s %-20s %8s %8s\n", r.ID, r.Name, r.RevenueMultiplier.StringFixed(2), r.RPMMultiplier.StringFixed(2))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format: table, json")
	return cmd
}

func nichesCmd(_ *app) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "niches",
		Short: "List content niches and their RPM multipliers",
		RunE: func(cmd *cobra.Command, args []string) error {
			niches := registry.Niches()
			if strings.EqualFold(format, "json") {
				return writeJSON(cmd.OutOrStdout(), niches)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-14s %-24s %8s\n", "ID", "Niche", "RPM")
			for _, n := range niches {
				fmt.Fprintf(out, "%-14s %-24s %8s\n", n.ID, n.Name, n.RPMMultiplier.StringFixed(2))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format: table, json")
	return cmd
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
