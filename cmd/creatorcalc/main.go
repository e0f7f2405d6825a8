package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"sort"
	"strconv"
	"strings"

	"github.com/rgehrsitz/creatorcalc/internal/calculation"
	"github.com/rgehrsitz/creatorcalc/internal/config"
	"github.com/rgehrsitz/creatorcalc/internal/domain"
	"github.com/rgehrsitz/creatorcalc/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// app carries what every command needs once the persistent flags are parsed
type app struct {
	configPath string
	logLevel   string
	debug      bool

	settings *config.Settings
	logger   *zap.Logger
	engine   *calculation.CalculationEngine
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	settings, err := config.LoadSettings(a.configPath)
	if err != nil {
		return err
	}
	level := a.logLevel
	if a.debug {
		level = "debug"
	}
	logger, err := logging.New(settings.Logging, level)
	if err != nil {
		return err
	}

	a.settings = settings
	a.logger = logger
	a.engine = calculation.NewCalculationEngine()
	a.engine.SetLogger(logger.Sugar())
	logger.Debug("settings loaded",
		zap.String("command", cmd.Name()),
		zap.String("region", settings.Defaults.Region),
		zap.String("niche", settings.Defaults.Niche))
	return nil
}

func (a *app) teardown(*cobra.Command, []string) {
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}

// region returns the flag value, or the settings default when the flag is empty
func (a *app) region(flag string) string {
	if flag != "" {
		return flag
	}
	return a.settings.Defaults.Region
}

func (a *app) niche(flag string) string {
	if flag != "" {
		return flag
	}
	return a.settings.Defaults.Niche
}

func (a *app) period(flag string) string {
	if flag != "" {
		return flag
	}
	return a.settings.Defaults.TimePeriod
}

// applyDefaults fills the configuration-level selections a scenario file leaves out
func (a *app) applyDefaults(cfg *domain.Configuration) {
	cfg.Region = a.region(cfg.Region)
	cfg.Niche = a.niche(cfg.Niche)
	cfg.TimePeriod = a.period(cfg.TimePeriod)
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "creatorcalc",
		Short: "Creator economy revenue calculator",
		Long: `Estimate creator revenue across video, social, subscription, livestream and
commerce platforms, and plan around it: sponsorship pricing, rate cards, media kits,
goals, business plans, content mix and platform switches.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: a.teardown,
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "Settings file (default: ./creatorcalc.yaml if present)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level override (debug, info, warn, error)")
	root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging")

	root.AddCommand(
		calculateCmd(a),
		validateCmd(a),
		platformsCmd(a),
		regionsCmd(a),
		nichesCmd(a),
		compareCmd(a),
		switchCmd(a),
		goalCmd(a),
		sponsorshipCmd(a),
		rateCardCmd(a),
		mediaKitCmd(a),
		pitchCmd(a),
		planCmd(a),
		mixCmd(a),
		sensitivityCmd(a),
		serveCmd(a),
		versionCmd(),
	)
	return root
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		// version needs no settings
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "creatorcalc %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(cmd.OutOrStdout(), info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.GoVersion + " " + bi.Main.Path
	}
	return ""
}

// parseInputs turns "id=value" pairs into input values
func parseInputs(pairs map[string]string) (domain.InputValues, error) {
	values := make(domain.InputValues, len(pairs))
	keys := make([]string, 0, len(pairs))
	for k := range pairs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		v, err := strconv.ParseFloat(strings.TrimSpace(pairs[k]), 64)
		if err != nil {
			return nil, fmt.Errorf("input %s: %q is not a number", k, pairs[k])
		}
		if v < 0 {
			return nil, fmt.Errorf("input %s cannot be negative", k)
		}
		values[strings.TrimSpace(k)] = v
	}
	return values, nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
