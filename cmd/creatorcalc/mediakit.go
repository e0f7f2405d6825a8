package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/rgehrsitz/creatorcalc/internal/calculation"
	"github.com/rgehrsitz/creatorcalc/internal/domain"
	"github.com/rgehrsitz/creatorcalc/internal/mediakit"
	"github.com/rgehrsitz/creatorcalc/internal/registry"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

func rateCardCmd(a *app) *cobra.Command {
	var (
		in      domain.SponsorshipInput
		options mediakit.RateCardOptions
		region  string
		niche   string
		format  string
	)

	cmd := &cobra.Command{
		Use:   "ratecard",
		Short: "Price every sponsored deliverable from audience metrics",
		Example: `  creatorcalc ratecard --followers 80000 --avg-views 25000 --engagement 4.5 \
      --bundle instagram_reel,tiktok_video,link_in_bio --usage-rights`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if in.Followers < 0 || in.AvgViews < 0 || in.EngagementRate < 0 || in.CPM < 0 {
				return fmt.Errorf("audience metrics and cpm cannot be negative")
			}
			r, n := a.region(region), a.niche(niche)
			if err := checkSelections(r, n, ""); err != nil {
				return err
			}
			quote := calculation.PriceSponsorship(in, registry.Region(r), registry.Niche(n))
			card, err := mediakit.BuildRateCard(quote, options)
			if err != nil {
				return err
			}
			if strings.EqualFold(format, "json") {
				return writeJSON(cmd.OutOrStdout(), card)
			}
			fmt.Fprint(cmd.OutOrStdout(), card.Table())
			return nil
		},
	}

	cmd.Flags().Float64Var(&in.Followers, "followers", 0, "Follower count")
	cmd.Flags().Float64Var(&in.AvgViews, "avg-views", 0, "Average views per post")
	cmd.Flags().Float64Var(&in.EngagementRate, "engagement", 0, "Engagement rate in percent")
	cmd.Flags().Float64Var(&in.CPM, "cpm", mediakit.DefaultCPM, "Sponsor CPM in dollars")
	cmd.Flags().StringSliceVar(&options.Bundle, "bundle", nil, "Deliverable ids to price as a bundle")
	cmd.Flags().BoolVar(&options.UsageRights, "usage-rights", false, "Add the usage rights surcharge")
	cmd.Flags().BoolVar(&options.Exclusivity, "exclusivity", false, "Add the exclusivity surcharge")
	cmd.Flags().BoolVar(&options.Whitelisting, "whitelisting", false, "Add the whitelisting surcharge")
	cmd.Flags().StringVar(&region, "region", "", "Audience region")
	cmd.Flags().StringVar(&niche, "niche", "", "Content niche")
	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format: table, json")
	return cmd
}

// loadProfile reads a media kit profile and fills region and niche from the settings
func (a *app) loadProfile(path string) (mediakit.Profile, error) {
	var profile mediakit.Profile
	data, err := os.ReadFile(path)
	if err != nil {
		return profile, fmt.Errorf("failed to read profile: %w", err)
	}
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return profile, fmt.Errorf("failed to parse profile %s: %w", path, err)
	}
	profile.Region = a.region(profile.Region)
	profile.Niche = a.niche(profile.Niche)
	return profile, nil
}

func mediaKitCmd(a *app) *cobra.Command {
	var (
		format string
		out    string
	)

	cmd := &cobra.Command{
		Use:   "mediakit [profile-file]",
		Short: "Generate a media kit from a creator profile",
		Long: `Generate a media kit from a YAML creator profile:

  creator_name: Jordan Lee
  tagline: Budget travel for busy people
  niche: travel
  platforms:
    - platform: instagram
      handle: "@jordantravels"
      followers: 85000
      avg_views: 22000
      engagement_rate: 4.2
  rate_card:
    bundle: [instagram_reel, instagram_story, link_in_bio]`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := a.loadProfile(args[0])
			if err != nil {
				return err
			}
			kit, err := mediakit.NewBuilder(a.engine).Build(profile)
			if err != nil {
				return err
			}

			var rendered string
			switch strings.ToLower(format) {
			case "markdown", "md", "":
				rendered = kit.Markdown()
			case "html":
				rendered, err = kit.HTML()
				if err != nil {
					return err
				}
			case "json":
				if out == "" {
					return writeJSON(cmd.OutOrStdout(), kit)
				}
				var sb strings.Builder
				if err := writeJSON(&sb, kit); err != nil {
					return err
				}
				rendered = sb.String()
			default:
				return fmt.Errorf("unsupported format: %s (available: markdown, html, json)", format)
			}

			if out == "" {
				fmt.Fprint(cmd.OutOrStdout(), rendered)
				return nil
			}
			if err := os.WriteFile(out, []byte(rendered), 0644); err != nil {
				return fmt.Errorf("failed to write media kit: %w", err)
			}
			a.logger.Info("media kit written", zap.String("path", out), zap.String("format", format))
			fmt.Fprintf(cmd.OutOrStdout(), "Media kit saved to %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "markdown", "Output format: markdown, html, json")
	cmd.Flags().StringVarP(&out, "output", "o", "", "Write to a file instead of stdout")
	return cmd
}

func pitchCmd(a *app) *cobra.Command {
	var (
		brand       string
		contact     string
		deliverable string
		note        string
	)

	cmd := &cobra.Command{
		Use:     "pitch [profile-file]",
		Short:   "Draft a brand pitch email from a creator profile",
		Example: `  creatorcalc pitch profile.yaml --brand Acme --contact Sam --deliverable instagram_reel`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if deliverable != "" {
				if _, ok := mediakit.LookupDeliverable(deliverable); !ok {
					ids := make([]string, 0, len(mediakit.Deliverables()))
					for _, d := range mediakit.Deliverables() {
						ids = append(ids, d.ID)
					}
					return fmt.Errorf("unknown deliverable %q (available: %s)", deliverable, strings.Join(ids, ", "))
				}
			}
			profile, err := a.loadProfile(args[0])
			if err != nil {
				return err
			}
			kit, err := mediakit.NewBuilder(a.engine).Build(profile)
			if err != nil {
				return err
			}
			req := mediakit.PitchFromKit(kit, brand, contact, deliverable)
			req.Note = note
			email, err := mediakit.Pitch(req)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), email)
			return nil
		},
	}

	cmd.Flags().StringVar(&brand, "brand", "", "Brand name")
	cmd.Flags().StringVar(&contact, "contact", "", "Contact person at the brand")
	cmd.Flags().StringVar(&deliverable, "deliverable", "", "Deliverable to quote in the pitch")
	cmd.Flags().StringVar(&note, "note", "", "Closing note")
	_ = cmd.MarkFlagRequired("brand")
	return cmd
}
