package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rgehrsitz/creatorcalc/internal/calculation"
	"github.com/rgehrsitz/creatorcalc/internal/config"
	"github.com/rgehrsitz/creatorcalc/internal/logging"
	"github.com/rgehrsitz/creatorcalc/internal/tui"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var (
		configPath  string
		platform    string
		snapshotDir string
		creatorName string
	)

	cmd := &cobra.Command{
		Use:   "creatorcalc-tui",
		Short: "Interactive creator revenue calculator",
		Long: `Pick a platform, adjust its inputs with the arrow keys and watch the revenue
estimate update. Press s to save the current inputs as a scenario file that
'creatorcalc calculate' can read.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.LoadSettings(configPath)
			if err != nil {
				return err
			}

			engine := calculation.NewCalculationEngine()
			// the terminal belongs to the TUI, so only log when a file is configured
			if settings.Logging.OutputFile != "" {
				logger, err := logging.New(settings.Logging, "")
				if err != nil {
					return err
				}
				defer func() { _ = logger.Sync() }()
				engine.SetLogger(logger.Sugar())
			}

			model := tui.NewModel(tui.Options{
				Engine:      engine,
				Defaults:    settings.Defaults,
				SnapshotDir: snapshotDir,
				Platform:    platform,
				CreatorName: creatorName,
			})
			p := tea.NewProgram(model, tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("error running TUI: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "Settings file (default: ./creatorcalc.yaml if present)")
	cmd.Flags().StringVarP(&platform, "platform", "p", "", "Open the calculator on this platform")
	cmd.Flags().StringVar(&snapshotDir, "snapshot-dir", ".", "Directory for saved scenario snapshots")
	cmd.Flags().StringVar(&creatorName, "creator", "", "Creator name written into snapshots")
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
