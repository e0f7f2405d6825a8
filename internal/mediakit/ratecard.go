package mediakit

import (
	"fmt"
	"strings"

	"github.com/rgehrsitz/creatorcalc/internal/domain"
	"github.com/shopspring/decimal"
)

// Deliverable is one kind of sponsored content a brand can buy
type Deliverable struct {
	ID         string          `json:"id"`
	Label      string          `json:"label"`
	Multiplier decimal.Decimal `json:"multiplier"` // relative to one sponsored post
}

var deliverables = []Deliverable{
	{ID: "instagram_post", Label: "Instagram Feed Post", Multiplier: decimal.NewFromFloat(1.0)},
	{ID: "instagram_story", Label: "Instagram Story", Multiplier: decimal.NewFromFloat(0.35)},
	{ID: "instagram_reel", Label: "Instagram Reel", Multiplier: decimal.NewFromFloat(1.4)},
	{ID: "tiktok_video", Label: "TikTok Video", Multiplier: decimal.NewFromFloat(1.2)},
	{ID: "youtube_integration", Label: "YouTube Integration", Multiplier: decimal.NewFromFloat(1.8)},
	{ID: "youtube_dedicated", Label: "YouTube Dedicated Video", Multiplier: decimal.NewFromFloat(3.0)},
	{ID: "newsletter_mention", Label: "Newsletter Mention", Multiplier: decimal.NewFromFloat(0.6)},
	{ID: "podcast_read", Label: "Podcast Ad Read", Multiplier: decimal.NewFromFloat(1.0)},
	{ID: "link_in_bio", Label: "Link in Bio (30 days)", Multiplier: decimal.NewFromFloat(0.25)},
}

// Add-on surcharges, as a fraction of the deliverable price
var (
	UsageRightsSurcharge  = decimal.NewFromFloat(0.30)
	ExclusivitySurcharge  = decimal.NewFromFloat(0.25)
	WhitelistingSurcharge = decimal.NewFromFloat(0.20)
)

// Bundles of BundleMinItems or more deliverables get BundleDiscount off
var (
	BundleMinItems = 3
	BundleDiscount = decimal.NewFromFloat(0.15)
)

// Deliverables lists every deliverable in rate card order
func Deliverables() []Deliverable {
	out := make([]Deliverable, len(deliverables))
	copy(out, deliverables)
	return out
}

// LookupDeliverable finds a deliverable by id
func LookupDeliverable(id string) (Deliverable, bool) {
	for _, d := range deliverables {
		if d.ID == id {
			return d, true
		}
	}
	return Deliverable{}, false
}

// RateCardOptions selects the bundle and the add-ons applied to every line
type RateCardOptions struct {
	Bundle       []string `yaml:"bundle" json:"bundle"`
	UsageRights  bool     `yaml:"usage_rights" json:"usageRights"`
	Exclusivity  bool     `yaml:"exclusivity" json:"exclusivity"`
	Whitelisting bool     `yaml:"whitelisting" json:"whitelisting"`
}

// RateLine is the price of one deliverable
type RateLine struct {
	Deliverable Deliverable     `json:"deliverable"`
	Price       decimal.Decimal `json:"price"`
	Low         decimal.Decimal `json:"low"`
	High        decimal.Decimal `json:"high"`
}

// RateCard prices every deliverable from a sponsorship quote
type RateCard struct {
	Quote           domain.SponsorshipQuote `json:"quote"`
	Options         RateCardOptions         `json:"options"`
	AddOnPercent    decimal.Decimal         `json:"addOnPercent"`
	Lines           []RateLine              `json:"lines"`
	BundleLines     []RateLine              `json:"bundleLines,omitempty"`
	BundleSubtotal  decimal.Decimal         `json:"bundleSubtotal"`
	BundleDiscount  decimal.Decimal         `json:"bundleDiscount"`
	BundlePrice     decimal.Decimal         `json:"bundlePrice"`
	DiscountApplied bool                    `json:"discountApplied"`
}

// BuildRateCard prices each deliverable as the quote's blended rate times the deliverable
// multiplier, plus the selected add-on surcharges. The bundle is priced from the lines it
// names.
func BuildRateCard(quote domain.SponsorshipQuote, options RateCardOptions) (*RateCard, error) {
	addOn := decimal.Zero
	if options.UsageRights {
		addOn = addOn.Add(UsageRightsSurcharge)
	}
	if options.Exclusivity {
		addOn = addOn.Add(ExclusivitySurcharge)
	}
	if options.Whitelisting {
		addOn = addOn.Add(WhitelistingSurcharge)
	}
	factor := decimal.NewFromInt(1).Add(addOn)

	card := &RateCard{
		Quote:          quote,
		Options:        options,
		AddOnPercent:   addOn.Mul(decimal.NewFromInt(100)),
		Lines:          make([]RateLine, 0, len(deliverables)),
		BundleSubtotal: decimal.Zero,
		BundleDiscount: decimal.Zero,
		BundlePrice:    decimal.Zero,
	}
	for _, d := range deliverables {
		card.Lines = append(card.Lines, priceLine(quote, d, factor))
	}

	seen := make(map[string]bool, len(options.Bundle))
	for _, id := range options.Bundle {
		d, ok := LookupDeliverable(id)
		if !ok {
			return nil, fmt.Errorf("unknown deliverable %q", id)
		}
		if seen[id] {
			return nil, fmt.Errorf("deliverable %s listed twice in bundle", id)
		}
		seen[id] = true
		line := priceLine(quote, d, factor)
		card.BundleLines = append(card.BundleLines, line)
		card.BundleSubtotal = card.BundleSubtotal.Add(line.Price)
	}

	if len(card.BundleLines) >= BundleMinItems {
		card.DiscountApplied = true
		card.BundleDiscount = card.BundleSubtotal.Mul(BundleDiscount)
	}
	card.BundlePrice = card.BundleSubtotal.Sub(card.BundleDiscount)
	return card, nil
}

func priceLine(quote domain.SponsorshipQuote, d Deliverable, factor decimal.Decimal) RateLine {
	scale := d.Multiplier.Mul(factor)
	return RateLine{
		Deliverable: d,
		Price:       quote.Blended.Mul(scale),
		Low:         quote.Low.Mul(scale),
		High:        quote.High.Mul(scale),
	}
}

// Table renders the rate card for the terminal
func (c *RateCard) Table() string {
	var sb strings.Builder
	row := "%-26s %12s %24s\n"

	sb.WriteString("RATE CARD\n")
	sb.WriteString(strings.Repeat("=", 64) + "\n")
	if c.AddOnPercent.IsPositive() {
		sb.WriteString(fmt.Sprintf("Add-ons: +%s%%\n", c.AddOnPercent.StringFixed(0)))
	}
	sb.WriteString(fmt.Sprintf(row, "Deliverable", "Rate", "Range"))
	sb.WriteString(strings.Repeat("-", 64) + "\n")
	for _, line := range c.Lines {
		sb.WriteString(fmt.Sprintf(row, line.Deliverable.Label, "$"+groupThousands(line.Price),
			"$"+groupThousands(line.Low)+" - $"+groupThousands(line.High)))
	}

	if len(c.BundleLines) > 0 {
		sb.WriteString("\nBUNDLE\n")
		for _, line := range c.BundleLines {
			sb.WriteString(fmt.Sprintf("  %-24s %12s\n", line.Deliverable.Label, "$"+groupThousands(line.Price)))
		}
		sb.WriteString(fmt.Sprintf("  %-24s %12s\n", "Subtotal", "$"+groupThousands(c.BundleSubtotal)))
		if c.DiscountApplied {
			sb.WriteString(fmt.Sprintf("  %-24s %12s\n", "Bundle discount", "-$"+groupThousands(c.BundleDiscount)))
		}
		sb.WriteString(fmt.Sprintf("  %-24s %12s\n", "Bundle price", "$"+groupThousands(c.BundlePrice)))
	}
	return sb.String()
}
