package main

import (
	"fmt"
	"strings"

	"github.com/rgehrsitz/creatorcalc/internal/calculation"
	"github.com/rgehrsitz/creatorcalc/internal/config"
	"github.com/rgehrsitz/creatorcalc/internal/domain"
	"github.com/rgehrsitz/creatorcalc/internal/output"
	"github.com/rgehrsitz/creatorcalc/internal/registry"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func calculateCmd(a *app) *cobra.Command {
	var (
		platform string
		inputs   map[string]string
		region   string
		niche    string
		period   string
		format   string
		save     bool
	)

	cmd := &cobra.Command{
		Use:   "calculate [scenario-file]",
		Short: "Estimate revenue for a scenario file or a single platform",
		Long: `Estimate revenue for every scenario in a YAML scenario file, or for a single
platform with --platform and --inputs.`,
		Example: `  creatorcalc calculate scenarios.yaml --format html --save
  creatorcalc calculate --platform patreon --inputs patrons=250,avgPledge=7 --region uk`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if platform != "" {
				if len(args) > 0 {
					return fmt.Errorf("use either a scenario file or --platform, not both")
				}
				values, err := parseInputs(inputs)
				if err != nil {
					return err
				}
				return a.calculatePlatform(cmd, platform, values, a.region(region), a.niche(niche), a.period(period))
			}
			if len(args) == 0 {
				return fmt.Errorf("a scenario file or --platform is required")
			}

			cfg, err := config.NewInputParser().LoadFromFile(args[0])
			if err != nil {
				return err
			}
			if region != "" {
				cfg.Region = region
			}
			if niche != "" {
				cfg.Niche = niche
			}
			if period != "" {
				cfg.TimePeriod = period
			}
			a.applyDefaults(cfg)

			results, err := a.engine.RunScenarios(cfg)
			if err != nil {
				return err
			}
			a.logger.Info("scenarios calculated",
				zap.String("file", args[0]),
				zap.Int("scenarios", len(results.Scenarios)))

			formatter := output.GetFormatterByName(format)
			if formatter == nil {
				return fmt.Errorf("unsupported format: %s (available: %s)", format, strings.Join(output.AvailableFormatterNames(), ", "))
			}
			if save {
				filename, err := output.WriteFormatted(formatter, results, fileExtension(formatter.Name()))
				if err != nil {
					return fmt.Errorf("failed to save report: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Report saved to %s\n", filename)
				return nil
			}
			return output.GenerateReport(cmd.OutOrStdout(), results, format)
		},
	}

	cmd.Flags().StringVarP(&platform, "platform", "p", "", "Calculate a single platform instead of a scenario file")
	cmd.Flags().StringToStringVarP(&inputs, "inputs", "i", nil, "Platform inputs as id=value pairs")
	cmd.Flags().StringVar(&region, "region", "", "Audience region (overrides the file)")
	cmd.Flags().StringVar(&niche, "niche", "", "Content niche (overrides the file)")
	cmd.Flags().StringVar(&period, "period", "", "Reporting period: daily, weekly, monthly or yearly")
	cmd.Flags().StringVarP(&format, "format", "f", "console", "Output format: "+strings.Join(output.AvailableFormatterNames(), ", "))
	cmd.Flags().BoolVar(&save, "save", false, "Write the report to a timestamped file instead of stdout")
	return cmd
}

func (a *app) calculatePlatform(cmd *cobra.Command, platformID string, values domain.InputValues, region, niche, period string) error {
	platform, ok := registry.Platform(platformID)
	if !ok {
		return fmt.Errorf("unknown platform %q (see 'creatorcalc platforms')", platformID)
	}
	for id := range values {
		if _, ok := platform.Input(id); !ok {
			return fmt.Errorf("platform %s has no input %q", platform.ID, id)
		}
	}
	if err := checkSelections(region, niche, period); err != nil {
		return err
	}

	inputs := platform.Defaults().Merge(values)
	result := a.engine.Calculate(calculation.Request{
		Platform: platform.ID,
		Inputs:   inputs,
		Region:   region,
		Niche:    niche,
	})
	tp := registry.TimePeriod(period)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s (%s, %s)\n", platform.Name, registry.Region(region).Name, registry.Niche(niche).Name)
	fmt.Fprintln(out, strings.Repeat("=", 50))
	for _, in := range platform.Inputs {
		fmt.Fprintf(out, "  %-28s %12s\n", in.Label, inputs.Decimal(in.ID).String())
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %-28s %12s\n", "Monthly revenue", output.FormatCurrency(result.Adjusted.MonthlyRevenue))
	fmt.Fprintf(out, "  %-28s %12s\n", "Yearly revenue", output.FormatCurrency(result.Adjusted.YearlyRevenue))
	if tp.ID != "monthly" && tp.ID != "yearly" {
		fmt.Fprintf(out, "  %-28s %12s\n", tp.Name+" revenue", output.FormatCurrency(calculation.ForPeriod(result.Adjusted, tp)))
	}
	if result.Adjusted.EngagementRate != nil {
		fmt.Fprintf(out, "  %-28s %12s\n", "Engagement rate", output.FormatPercentage(*result.Adjusted.EngagementRate))
	}
	if len(result.Adjusted.Breakdown) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Breakdown:")
		for _, item := range result.Adjusted.Breakdown {
			fmt.Fprintf(out, "    %-26s %12s\n", item.Label, output.FormatCurrency(item.Amount))
		}
	}
	return nil
}

// checkSelections rejects region, niche and period ids the registry does not know
func checkSelections(region, niche, period string) error {
	if _, ok := registry.LookupRegion(region); !ok {
		return fmt.Errorf("unknown region %q", region)
	}
	if _, ok := registry.LookupNiche(niche); !ok {
		return fmt.Errorf("unknown niche %q", niche)
	}
	if period != "" {
		if _, ok := registry.LookupTimePeriod(period); !ok {
			return fmt.Errorf("unknown time period %q", period)
		}
	}
	return nil
}

func fileExtension(formatName string) string {
	switch formatName {
	case "console":
		return "txt"
	case "markdown":
		return "md"
	default:
		return formatName
	}
}

func validateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [scenario-file]",
		Short: "Validate a scenario file without calculating",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewInputParser().LoadFromFile(args[0])
			if err != nil {
				return err
			}
			a.logger.Debug("scenario file valid", zap.String("file", args[0]))
			fmt.Fprintf(cmd.OutOrStdout(), "%s is valid: %d scenario(s)\n", args[0], len(cfg.Scenarios))
			for _, s := range cfg.Scenarios {
				fmt.Fprintf(cmd.OutOrStdout(), "  - %s (%d platform(s))\n", s.Name, len(s.Platforms))
			}
			return nil
		},
	}
}
