package mediakit

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"strings"

	"github.com/rgehrsitz/creatorcalc/internal/calculation"
	"github.com/rgehrsitz/creatorcalc/internal/domain"
	"github.com/rgehrsitz/creatorcalc/internal/registry"
	"github.com/shopspring/decimal"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// DefaultCPM is the sponsor CPM used when a profile does not set one
const DefaultCPM = 20.0

// Profile is what a creator tells the media kit generator about themselves
type Profile struct {
	CreatorName string            `yaml:"creator_name" json:"creatorName"`
	Tagline     string            `yaml:"tagline,omitempty" json:"tagline,omitempty"`
	Contact     string            `yaml:"contact,omitempty" json:"contact,omitempty"`
	Region      string            `yaml:"region,omitempty" json:"region,omitempty"`
	Niche       string            `yaml:"niche,omitempty" json:"niche,omitempty"`
	CPM         float64           `yaml:"cpm,omitempty" json:"cpm,omitempty"`
	Platforms   []ProfilePlatform `yaml:"platforms" json:"platforms"`
	RateCard    RateCardOptions   `yaml:"rate_card,omitempty" json:"rateCard,omitempty"`
}

// ProfilePlatform is one channel in the media kit
type ProfilePlatform struct {
	Platform       string             `yaml:"platform" json:"platform"`
	Handle         string             `yaml:"handle,omitempty" json:"handle,omitempty"`
	Followers      float64            `yaml:"followers" json:"followers"`
	AvgViews       float64            `yaml:"avg_views" json:"avgViews"`
	EngagementRate float64            `yaml:"engagement_rate" json:"engagementRate"` // percent
	Inputs         domain.InputValues `yaml:"inputs,omitempty" json:"inputs,omitempty"`
}

// PlatformStat is a media kit row
type PlatformStat struct {
	Platform       string          `json:"platform"`
	Name           string          `json:"name"`
	Handle         string          `json:"handle,omitempty"`
	Followers      decimal.Decimal `json:"followers"`
	AvgViews       decimal.Decimal `json:"avgViews"`
	EngagementRate decimal.Decimal `json:"engagementRate"`
	MonthlyRevenue decimal.Decimal `json:"monthlyRevenue"`
}

// MediaKit is the assembled media kit
type MediaKit struct {
	Profile          Profile                 `json:"profile"`
	Region           domain.Region           `json:"region"`
	Niche            domain.Niche            `json:"niche"`
	Stats            []PlatformStat          `json:"stats"`
	TotalAudience    decimal.Decimal         `json:"totalAudience"`
	TotalAvgViews    decimal.Decimal         `json:"totalAvgViews"`
	EngagementRate   decimal.Decimal         `json:"engagementRate"` // follower-weighted, percent
	EstimatedMonthly decimal.Decimal         `json:"estimatedMonthly"`
	Quote            domain.SponsorshipQuote `json:"quote"`
	RateCard         *RateCard               `json:"rateCard"`
}

// Builder assembles media kits
type Builder struct {
	CalcEngine *calculation.CalculationEngine
}

// NewBuilder creates a media kit builder
func NewBuilder(calcEngine *calculation.CalculationEngine) *Builder {
	if calcEngine == nil {
		calcEngine = calculation.NewCalculationEngine()
	}
	return &Builder{CalcEngine: calcEngine}
}

// Build assembles a media kit with a default calculation engine
func Build(profile Profile) (*MediaKit, error) {
	return NewBuilder(nil).Build(profile)
}

// Validate checks the profile before a kit is built from it
func (p Profile) Validate() error {
	if strings.TrimSpace(p.CreatorName) == "" {
		return fmt.Errorf("creator name is required")
	}
	if len(p.Platforms) == 0 {
		return fmt.Errorf("at least one platform is required")
	}
	if p.CPM < 0 {
		return fmt.Errorf("cpm must be non-negative")
	}
	seen := make(map[string]bool, len(p.Platforms))
	for i, pp := range p.Platforms {
		platform, ok := registry.Platform(pp.Platform)
		if !ok {
			return fmt.Errorf("platforms[%d]: unknown platform %q", i, pp.Platform)
		}
		if seen[platform.ID] {
			return fmt.Errorf("platforms[%d]: platform %s listed twice", i, platform.ID)
		}
		seen[platform.ID] = true
		if pp.Followers < 0 || pp.AvgViews < 0 || pp.EngagementRate < 0 {
			return fmt.Errorf("platforms[%d]: audience numbers must be non-negative", i)
		}
	}
	return nil
}

// Build totals the audience across platforms, estimates revenue per platform and prices
// a rate card from the combined audience.
func (b *Builder) Build(profile Profile) (*MediaKit, error) {
	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("invalid profile: %w", err)
	}

	region := registry.Region(profile.Region)
	niche := registry.Niche(profile.Niche)
	kit := &MediaKit{
		Profile:          profile,
		Region:           region,
		Niche:            niche,
		Stats:            make([]PlatformStat, 0, len(profile.Platforms)),
		TotalAudience:    decimal.Zero,
		TotalAvgViews:    decimal.Zero,
		EngagementRate:   decimal.Zero,
		EstimatedMonthly: decimal.Zero,
	}

	weightedEngagement := decimal.Zero
	for _, pp := range profile.Platforms {
		platform, _ := registry.Platform(pp.Platform)
		values := domain.InputValues{"followers": pp.Followers, "avgViews": pp.AvgViews, "er": pp.EngagementRate}
		result := b.CalcEngine.Calculate(calculation.Request{
			Platform: platform.ID,
			Inputs:   pp.Inputs,
			Region:   region.ID,
			Niche:    niche.ID,
		})

		stat := PlatformStat{
			Platform:       platform.ID,
			Name:           platform.Name,
			Handle:         pp.Handle,
			Followers:      values.Decimal("followers"),
			AvgViews:       values.Decimal("avgViews"),
			EngagementRate: values.Decimal("er"),
			MonthlyRevenue: result.Adjusted.MonthlyRevenue,
		}
		kit.Stats = append(kit.Stats, stat)
		kit.TotalAudience = kit.TotalAudience.Add(stat.Followers)
		kit.TotalAvgViews = kit.TotalAvgViews.Add(stat.AvgViews)
		kit.EstimatedMonthly = kit.EstimatedMonthly.Add(stat.MonthlyRevenue)
		weightedEngagement = weightedEngagement.Add(stat.Followers.Mul(stat.EngagementRate))
	}
	if kit.TotalAudience.IsPositive() {
		kit.EngagementRate = weightedEngagement.Div(kit.TotalAudience)
	}

	cpm := profile.CPM
	if cpm == 0 {
		cpm = DefaultCPM
	}
	kit.Quote = calculation.PriceSponsorship(domain.SponsorshipInput{
		Followers:      kit.TotalAudience.InexactFloat64(),
		AvgViews:       kit.TotalAvgViews.InexactFloat64(),
		EngagementRate: kit.EngagementRate.InexactFloat64(),
		CPM:            cpm,
	}, region, niche)

	card, err := BuildRateCard(kit.Quote, profile.RateCard)
	if err != nil {
		return nil, fmt.Errorf("failed to build rate card: %w", err)
	}
	kit.RateCard = card
	return kit, nil
}

// Markdown renders the media kit as a markdown document
func (k *MediaKit) Markdown() string {
	var sb strings.Builder

	sb.WriteString("# " + k.Profile.CreatorName + "\n\n")
	if k.Profile.Tagline != "" {
		sb.WriteString("_" + k.Profile.Tagline + "_\n\n")
	}
	sb.WriteString(fmt.Sprintf("**Niche:** %s  \n**Audience region:** %s\n\n", k.Niche.Name, k.Region.Name))

	sb.WriteString("## Audience\n\n")
	sb.WriteString("| Platform | Handle | Followers | Avg Views | Engagement |\n")
	sb.WriteString("|---|---|---:|---:|---:|\n")
	for _, s := range k.Stats {
		sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s | %s%% |\n",
			s.Name, s.Handle, groupThousands(s.Followers), groupThousands(s.AvgViews), s.EngagementRate.StringFixed(1)))
	}
	sb.WriteString(fmt.Sprintf("\n**Total audience:** %s  \n**Average engagement:** %s%%\n\n",
		groupThousands(k.TotalAudience), k.EngagementRate.StringFixed(2)))

	sb.WriteString("## Estimated Monthly Revenue\n\n")
	sb.WriteString("| Platform | Monthly |\n")
	sb.WriteString("|---|---:|\n")
	for _, s := range k.Stats {
		sb.WriteString(fmt.Sprintf("| %s | $%s |\n", s.Name, groupThousands(s.MonthlyRevenue)))
	}
	sb.WriteString(fmt.Sprintf("| **Total** | **$%s** |\n\n", groupThousands(k.EstimatedMonthly)))

	sb.WriteString("## Rates\n\n")
	if k.RateCard.AddOnPercent.IsPositive() {
		sb.WriteString(fmt.Sprintf("Prices include %s%% for add-ons.\n\n", k.RateCard.AddOnPercent.StringFixed(0)))
	}
	sb.WriteString("| Deliverable | Rate | Range |\n")
	sb.WriteString("|---|---:|---:|\n")
	for _, line := range k.RateCard.Lines {
		sb.WriteString(fmt.Sprintf("| %s | $%s | $%s - $%s |\n", line.Deliverable.Label,
			groupThousands(line.Price), groupThousands(line.Low), groupThousands(line.High)))
	}
	sb.WriteString("\n")

	if len(k.RateCard.BundleLines) > 0 {
		labels := make([]string, len(k.RateCard.BundleLines))
		for i, line := range k.RateCard.BundleLines {
			labels[i] = line.Deliverable.Label
		}
		sb.WriteString(fmt.Sprintf("**Bundle:** %s for $%s", strings.Join(labels, ", "), groupThousands(k.RateCard.BundlePrice)))
		if k.RateCard.DiscountApplied {
			sb.WriteString(fmt.Sprintf(" (saves $%s)", groupThousands(k.RateCard.BundleDiscount)))
		}
		sb.WriteString("\n\n")
	}

	if k.Profile.Contact != "" {
		sb.WriteString("## Contact\n\n" + k.Profile.Contact + "\n")
	}

	return sb.String()
}

//go:embed templates/mediakit.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("mediakit").Parse(htmlTemplateSource))

var markdown = goldmark.New(goldmark.WithExtensions(extension.Table))

// HTML renders the markdown media kit into a standalone HTML page
func (k *MediaKit) HTML() (string, error) {
	body, err := MarkdownToHTML(k.Markdown())
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	data := struct {
		Title string
		Body  template.HTML
	}{
		Title: k.Profile.CreatorName + " Media Kit",
		Body:  template.HTML(body), // goldmark output, raw HTML in the source is not passed through
	}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render media kit page: %w", err)
	}
	return buf.String(), nil
}

// MarkdownToHTML converts a markdown document to an HTML fragment
func MarkdownToHTML(source string) (string, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("failed to convert markdown: %w", err)
	}
	return buf.String(), nil
}

// groupThousands formats a whole-dollar or count amount with comma separators
func groupThousands(d decimal.Decimal) string {
	s := d.Round(0).String()
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	var out strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			out.WriteByte(',')
		}
		out.WriteRune(r)
	}
	return sign + out.String()
}
