package main

import (
	"fmt"
	"strings"

	"github.com/rgehrsitz/creatorcalc/internal/compare"
	"github.com/rgehrsitz/creatorcalc/internal/config"
	"github.com/rgehrsitz/creatorcalc/internal/domain"
	"github.com/rgehrsitz/creatorcalc/internal/transform"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func compareCmd(a *app) *cobra.Command {
	var (
		base          string
		templates     []string
		alternatives  []string
		transforms    []string
		format        string
		listTemplates bool
	)

	cmd := &cobra.Command{
		Use:   "compare [scenario-file]",
		Short: "Compare a base scenario against templates, other scenarios or ad-hoc transforms",
		Example: `  creatorcalc compare scenarios.yaml --base today --templates audience_x2,add_patreon
  creatorcalc compare scenarios.yaml --base today --scenarios "full time"
  creatorcalc compare scenarios.yaml --base today --transform scale_input:platform=youtube,input=monthlyViews,factor=1.5`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if listTemplates {
				registry := transform.CreateBuiltInTemplates()
				out := cmd.OutOrStdout()
				fmt.Fprintln(out, "Templates:")
				for _, name := range registry.List() {
					t, _ := registry.Get(name)
					fmt.Fprintf(out, "  %-20s %s\n", t.Name, t.Description)
				}
				fmt.Fprintln(out)
				fmt.Fprintln(out, "Transforms (--transform name:key=value,...):")
				for _, name := range transform.NewTransformRegistry().List() {
					fmt.Fprintf(out, "  %s\n", name)
				}
				return nil
			}
			if len(args) == 0 {
				return fmt.Errorf("a scenario file is required")
			}
			if len(templates) == 0 && len(alternatives) == 0 && len(transforms) == 0 {
				return fmt.Errorf("at least one of --templates, --scenarios or --transform is required")
			}

			cfg, err := config.NewInputParser().LoadFromFile(args[0])
			if err != nil {
				return err
			}
			a.applyDefaults(cfg)
			if base == "" {
				base = cfg.Scenarios[0].Name
			}
			baseScenario, ok := cfg.FindScenario(base)
			if !ok {
				return fmt.Errorf("base scenario %s not found in %s", base, args[0])
			}

			if len(transforms) > 0 {
				specs, err := transform.NewTransformRegistry().ParseTransformSpecs(transforms)
				if err != nil {
					return err
				}
				custom, err := transform.ApplyTransforms(baseScenario, specs)
				if err != nil {
					return err
				}
				custom.Name = baseScenario.Name + "_custom"
				custom.Description = strings.Join(transforms, "; ")
				cfg.Scenarios = append(cfg.Scenarios, *custom)
				alternatives = append(alternatives, custom.Name)
			}

			engine := compare.NewCompareEngine(a.engine)
			set, err := compareAll(cmd, engine, cfg, base, templates, alternatives)
			if err != nil {
				return err
			}
			set.ConfigPath = args[0]
			a.logger.Info("comparison complete",
				zap.String("base", base),
				zap.Int("alternatives", len(set.AlternativeResults)))

			out := cmd.OutOrStdout()
			switch strings.ToLower(format) {
			case "table", "console", "":
				fmt.Fprint(out, (&compare.TableFormatter{}).Format(set))
			case "csv":
				s, err := (&compare.CSVFormatter{}).Format(set)
				if err != nil {
					return err
				}
				fmt.Fprint(out, s)
			case "json":
				s, err := (&compare.JSONFormatter{Pretty: true}).Format(set)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, s)
			default:
				return fmt.Errorf("unsupported format: %s (available: table, csv, json)", format)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&base, "base", "", "Base scenario name (default: the first scenario)")
	cmd.Flags().StringSliceVarP(&templates, "templates", "t", nil, "Built-in templates to apply to the base scenario")
	cmd.Flags().StringSliceVar(&alternatives, "scenarios", nil, "Other scenarios in the file to compare against the base")
	cmd.Flags().StringArrayVar(&transforms, "transform", nil, "Ad-hoc transform applied to the base, repeatable")
	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format: table, csv, json")
	cmd.Flags().BoolVar(&listTemplates, "list-templates", false, "List built-in templates and transforms")
	return cmd
}

// compareAll merges the template comparison and the scenario comparison into one set
func compareAll(cmd *cobra.Command, engine *compare.CompareEngine, cfg *domain.Configuration, base string, templates, alternatives []string) (*compare.ComparisonSet, error) {
	ctx := cmd.Context()
	if len(alternatives) == 0 {
		return engine.Compare(ctx, cfg, compare.CompareOptions{BaseScenarioName: base, Templates: templates})
	}
	set, err := engine.CompareScenarios(ctx, cfg, base, alternatives)
	if err != nil {
		return nil, err
	}
	if len(templates) == 0 {
		return set, nil
	}
	fromTemplates, err := engine.Compare(ctx, cfg, compare.CompareOptions{BaseScenarioName: base, Templates: templates})
	if err != nil {
		return nil, err
	}
	set.AlternativeResults = append(fromTemplates.AlternativeResults, set.AlternativeResults...)
	set.Recommendations = compare.GenerateRecommendations(set)
	return set, nil
}

func switchCmd(a *app) *cobra.Command {
	var (
		from       string
		fromInputs map[string]string
		to         string
		toInputs   map[string]string
		retention  float64
		region     string
		niche      string
		format     string
	)

	cmd := &cobra.Command{
		Use:   "switch",
		Short: "Estimate what an audience would earn after moving to another platform",
		Example: `  creatorcalc switch --from youtube --from-inputs subscribers=50000,monthlyViews=400000 --to twitch --retention 30`,
		RunE: func(cmd *cobra.Command, args []string) error {
			fromValues, err := parseInputs(fromInputs)
			if err != nil {
				return err
			}
			toValues, err := parseInputs(toInputs)
			if err != nil {
				return err
			}
			req := compare.SwitchRequest{
				From:             domain.PlatformEntry{Platform: from, Inputs: fromValues},
				To:               to,
				ToInputs:         toValues,
				RetentionPercent: retention,
				Region:           a.region(region),
				Niche:            a.niche(niche),
			}
			if err := checkSelections(req.Region, req.Niche, ""); err != nil {
				return err
			}
			result, err := compare.NewCompareEngine(a.engine).ComparePlatforms(cmd.Context(), req)
			if err != nil {
				return err
			}
			a.logger.Debug("platform switch compared", zap.String("from", from), zap.String("to", to), zap.String("verdict", result.Verdict))

			out := cmd.OutOrStdout()
			switch strings.ToLower(format) {
			case "table", "console", "":
				fmt.Fprint(out, (&compare.TableFormatter{}).FormatSwitch(result))
			case "csv":
				s, err := (&compare.CSVFormatter{}).FormatSwitch(result)
				if err != nil {
					return err
				}
				fmt.Fprint(out, s)
			case "json":
				s, err := (&compare.JSONFormatter{Pretty: true}).FormatSwitch(result)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, s)
			default:
				return fmt.Errorf("unsupported format: %s (available: table, csv, json)", format)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Platform the audience is on today")
	cmd.Flags().StringToStringVar(&fromInputs, "from-inputs", nil, "Current platform inputs as id=value pairs")
	cmd.Flags().StringVar(&to, "to", "", "Platform to move to")
	cmd.Flags().StringToStringVar(&toInputs, "to-inputs", nil, "Explicit target inputs, overriding carried values")
	cmd.Flags().Float64Var(&retention, "retention", 100, "Percent of the audience that follows (0-100)")
	cmd.Flags().StringVar(&region, "region", "", "Audience region")
	cmd.Flags().StringVar(&niche, "niche", "", "Content niche")
	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format: table, csv, json")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}
