package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/rgehrsitz/creatorcalc/internal/calculation"
	"github.com/rgehrsitz/creatorcalc/internal/domain"
	"github.com/rgehrsitz/creatorcalc/internal/goal"
	"github.com/rgehrsitz/creatorcalc/internal/output"
	"github.com/rgehrsitz/creatorcalc/internal/registry"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// platformInputs resolves a platform and fills the inputs a user left out with its defaults
func platformInputs(platformID string, pairs map[string]string) (domain.Platform, domain.InputValues, error) {
	platform, ok := registry.Platform(platformID)
	if !ok {
		return domain.Platform{}, nil, fmt.Errorf("unknown platform %q (see 'creatorcalc platforms')", platformID)
	}
	values, err := parseInputs(pairs)
	if err != nil {
		return domain.Platform{}, nil, err
	}
	for id := range values {
		if _, ok := platform.Input(id); !ok {
			return domain.Platform{}, nil, fmt.Errorf("platform %s has no input %q", platform.ID, id)
		}
	}
	return platform, platform.Defaults().Merge(values), nil
}

func goalCmd(a *app) *cobra.Command {
	var (
		platform string
		inputs   map[string]string
		solveFor string
		target   float64
		region   string
		niche    string
		format   string
	)

	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Find the input value that reaches a monthly revenue target",
		Long: `Find the smallest value of one platform input that reaches a monthly revenue
target, holding the other inputs fixed. Without --solve-for every input is searched and
the easiest lever is recommended.`,
		Example: `  creatorcalc goal --platform patreon --target 2000 --solve-for patrons
  creatorcalc goal --platform youtube --inputs subscribers=20000 --target 1500`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, values, err := platformInputs(platform, inputs)
			if err != nil {
				return err
			}
			req := goal.Request{
				Platform:      p.ID,
				Inputs:        values,
				SolveFor:      solveFor,
				TargetMonthly: decimal.NewFromFloat(target),
				Region:        a.region(region),
				Niche:         a.niche(niche),
			}
			if err := checkSelections(req.Region, req.Niche, ""); err != nil {
				return err
			}

			solver := goal.NewDefaultSolver(a.engine)
			table := &goal.TableFormatter{}
			asJSON := strings.EqualFold(format, "json")
			if !asJSON && !strings.EqualFold(format, "table") && format != "" {
				return fmt.Errorf("unsupported format: %s (available: table, json)", format)
			}

			var result any
			var text string
			if solveFor == "" {
				multi, err := solver.SolveEach(cmd.Context(), req)
				if err != nil {
					return err
				}
				result, text = multi, table.FormatMulti(multi)
			} else {
				single, err := solver.Solve(cmd.Context(), req)
				if err != nil {
					return err
				}
				a.logger.Debug("goal solved",
					zap.String("platform", p.ID),
					zap.String("input", solveFor),
					zap.Bool("success", single.Success),
					zap.Int("iterations", single.Iterations))
				result, text = single, table.Format(single)
			}

			if asJSON {
				s, err := (&goal.JSONFormatter{Pretty: true}).Format(result)
				if err != nil {
					return err
				}
				text = s + "\n"
			}
			fmt.Fprint(cmd.OutOrStdout(), text)
			return nil
		},
	}

	cmd.Flags().StringVarP(&platform, "platform", "p", "", "Platform to solve on")
	cmd.Flags().StringToStringVarP(&inputs, "inputs", "i", nil, "Current inputs as id=value pairs (defaults fill the rest)")
	cmd.Flags().StringVar(&solveFor, "solve-for", "", "Input to solve for (default: every input)")
	cmd.Flags().Float64Var(&target, "target", 0, "Monthly revenue target")
	cmd.Flags().StringVar(&region, "region", "", "Audience region")
	cmd.Flags().StringVar(&niche, "niche", "", "Content niche")
	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format: table, json")
	_ = cmd.MarkFlagRequired("platform")
	_ = cmd.MarkFlagRequired("target")
	return cmd
}

func sponsorshipCmd(a *app) *cobra.Command {
	var (
		in     domain.SponsorshipInput
		region string
		niche  string
		format string
	)

	cmd := &cobra.Command{
		Use:     "sponsorship",
		Short:   "Price a sponsored post from audience metrics",
		Example: `  creatorcalc sponsorship --followers 80000 --avg-views 25000 --engagement 4.5 --niche tech`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if in.Followers < 0 || in.AvgViews < 0 || in.EngagementRate < 0 || in.CPM < 0 {
				return fmt.Errorf("audience metrics and cpm cannot be negative")
			}
			r, n := a.region(region), a.niche(niche)
			if err := checkSelections(r, n, ""); err != nil {
				return err
			}
			quote := calculation.PriceSponsorship(in, registry.Region(r), registry.Niche(n))
			if strings.EqualFold(format, "json") {
				return writeJSON(cmd.OutOrStdout(), quote)
			}
			fmt.Fprint(cmd.OutOrStdout(), output.FormatSponsorshipQuote(quote))
			return nil
		},
	}

	cmd.Flags().Float64Var(&in.Followers, "followers", 0, "Follower count")
	cmd.Flags().Float64Var(&in.AvgViews, "avg-views", 0, "Average views per post")
	cmd.Flags().Float64Var(&in.EngagementRate, "engagement", 0, "Engagement rate in percent")
	cmd.Flags().Float64Var(&in.CPM, "cpm", 20, "Sponsor CPM in dollars")
	cmd.Flags().StringVar(&region, "region", "", "Audience region")
	cmd.Flags().StringVar(&niche, "niche", "", "Content niche")
	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format: table, json")
	return cmd
}

func planCmd(_ *app) *cobra.Command {
	var (
		starting, growth, expenses, tax, upfront float64
		months                                   int
		format                                   string
	)

	cmd := &cobra.Command{
		Use:     "plan",
		Short:   "Project a creator business month by month",
		Example: `  creatorcalc plan --starting 1200 --growth 8 --expenses 400 --tax 25 --upfront 3000 --months 24`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if months < 1 {
				return fmt.Errorf("months must be at least 1")
			}
			if starting < 0 || expenses < 0 || upfront < 0 {
				return fmt.Errorf("revenue, expenses and investment cannot be negative")
			}
			if tax < 0 || tax > 100 {
				return fmt.Errorf("tax rate must be between 0 and 100")
			}
			plan := calculation.ProjectPlan(domain.PlanInput{
				StartingMonthlyRevenue: decimal.NewFromFloat(starting),
				MonthlyGrowthPercent:   decimal.NewFromFloat(growth),
				MonthlyExpenses:        decimal.NewFromFloat(expenses),
				TaxRatePercent:         decimal.NewFromFloat(tax),
				UpfrontInvestment:      decimal.NewFromFloat(upfront),
				Months:                 months,
			})
			s, err := output.NewPlanFormatter(format).FormatPlan(plan)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.TrimRight(s, "\n"))
			return nil
		},
	}

	cmd.Flags().Float64Var(&starting, "starting", 0, "Starting monthly revenue")
	cmd.Flags().Float64Var(&growth, "growth", 0, "Monthly revenue growth in percent")
	cmd.Flags().Float64Var(&expenses, "expenses", 0, "Monthly expenses")
	cmd.Flags().Float64Var(&tax, "tax", 0, "Tax rate in percent")
	cmd.Flags().Float64Var(&upfront, "upfront", 0, "Upfront investment")
	cmd.Flags().IntVar(&months, "months", 12, "Months to project")
	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format: table, json")
	return cmd
}

func mixCmd(a *app) *cobra.Command {
	var (
		region string
		niche  string
		format string
	)

	cmd := &cobra.Command{
		Use:   "mix [mix-file]",
		Short: "Simulate splitting effort across platforms",
		Long: `Simulate splitting effort across platforms. The mix file is YAML:

  region: us
  niche: tech
  entries:
    - platform: youtube
      allocation_percent: 60
      inputs: {subscribers: 50000, monthlyViews: 300000}
    - platform: newsletter
      allocation_percent: 40

Inputs an entry leaves out use the platform defaults.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read mix file: %w", err)
			}
			var in domain.MixInput
			if err := yaml.Unmarshal(data, &in); err != nil {
				return fmt.Errorf("failed to parse mix file: %w", err)
			}
			if len(in.Entries) == 0 {
				return fmt.Errorf("at least one mix entry is required")
			}
			for i, e := range in.Entries {
				p, ok := registry.Platform(e.Platform)
				if !ok {
					return fmt.Errorf("entries[%d]: unknown platform %q", i, e.Platform)
				}
				if e.AllocationPercent < 0 {
					return fmt.Errorf("entries[%d]: allocation cannot be negative", i)
				}
				in.Entries[i].Platform = p.ID
				in.Entries[i].Inputs = p.Defaults().Merge(e.Inputs)
			}
			if region != "" {
				in.Region = region
			}
			if niche != "" {
				in.Niche = niche
			}
			in.Region, in.Niche = a.region(in.Region), a.niche(in.Niche)
			if err := checkSelections(in.Region, in.Niche, ""); err != nil {
				return err
			}

			result := a.engine.SimulateMix(in)
			if strings.EqualFold(format, "json") {
				return writeJSON(cmd.OutOrStdout(), result)
			}
			s, err := output.FormatMix(result)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), s)
			return nil
		},
	}

	cmd.Flags().StringVar(&region, "region", "", "Audience region (overrides the file)")
	cmd.Flags().StringVar(&niche, "niche", "", "Content niche (overrides the file)")
	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format: table, json")
	return cmd
}

func sensitivityCmd(a *app) *cobra.Command {
	var (
		platform string
		inputs   map[string]string
		input    string
		minValue float64
		maxValue float64
		steps    int
		region   string
		niche    string
		format   string
	)

	cmd := &cobra.Command{
		Use:     "sensitivity",
		Short:   "Sweep one platform input and show how revenue responds",
		Example: `  creatorcalc sensitivity --platform patreon --input avgPledge --min 3 --max 15 --steps 7`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, values, err := platformInputs(platform, inputs)
			if err != nil {
				return err
			}
			r, n := a.region(region), a.niche(niche)
			if err := checkSelections(r, n, ""); err != nil {
				return err
			}
			analysis, err := calculation.NewSensitivityAnalyzer(a.engine).SweepInput(
				domain.PlatformEntry{Platform: p.ID, Inputs: values},
				calculation.SensitivityParameter{
					Input:    input,
					MinValue: decimal.NewFromFloat(minValue),
					MaxValue: decimal.NewFromFloat(maxValue),
					Steps:    steps,
				},
				r, n)
			if err != nil {
				return err
			}
			s, err := output.NewSensitivityFormatter(format).FormatSensitivityAnalysis(analysis)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), s)
			return nil
		},
	}

	cmd.Flags().StringVarP(&platform, "platform", "p", "", "Platform to analyze")
	cmd.Flags().StringToStringVarP(&inputs, "inputs", "i", nil, "Inputs held fixed, as id=value pairs")
	cmd.Flags().StringVar(&input, "input", "", "Input to sweep")
	cmd.Flags().Float64Var(&minValue, "min", 0, "Sweep minimum (default: the input's range)")
	cmd.Flags().Float64Var(&maxValue, "max", 0, "Sweep maximum (default: the input's range)")
	cmd.Flags().IntVar(&steps, "steps", calculation.DefaultSweepSteps, "Number of sample points")
	cmd.Flags().StringVar(&region, "region", "", "Audience region")
	cmd.Flags().StringVar(&niche, "niche", "", "Content niche")
	cmd.Flags().StringVarP(&format, "format", "f", "console", "Output format: console, csv, json")
	_ = cmd.MarkFlagRequired("platform")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}
