package output

import (
	"fmt"
	"strings"

	"github.com/rgehrsitz/creatorcalc/internal/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// FormatMix renders a content mix simulation as a table
func FormatMix(result *domain.MixResult) (string, error) {
	if result == nil {
		return "", fmt.Errorf("mix result cannot be nil")
	}

	var sb strings.Builder
	row := "%-20s %10s %18s %14s %8s\n"

	sb.WriteString("CONTENT MIX SIMULATION\n")
	sb.WriteString("=================================================================\n")
	if result.Normalized {
		sb.WriteString("Allocations added up to more than 100% and were scaled down proportionally.\n")
	}
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf(row, "Platform", "Effort", "Full-Effort/mo", "Monthly", "Share"))
	sb.WriteString(strings.Repeat("-", 74) + "\n")
	for _, c := range result.Contributions {
		sb.WriteString(fmt.Sprintf(row, truncate(platformName(c.Platform), 20),
			c.Allocation.Mul(hundred).StringFixed(1)+"%",
			FormatCurrency(c.FullEffortMonthly),
			FormatCurrency(c.Monthly),
			c.Share.Mul(hundred).StringFixed(1)+"%"))
	}
	sb.WriteString(strings.Repeat("-", 74) + "\n")
	sb.WriteString(fmt.Sprintf("Total Monthly:   %s\n", FormatCurrency(result.TotalMonthly)))
	sb.WriteString(fmt.Sprintf("Total Yearly:    %s\n", FormatCurrency(result.TotalYearly)))
	if result.TopPlatform != "" {
		sb.WriteString(fmt.Sprintf("Top Platform:    %s\n", platformName(result.TopPlatform)))
	}
	sb.WriteString(fmt.Sprintf("Diversification: %s\n", result.DiversificationScore.StringFixed(2)))

	return sb.String(), nil
}

// FormatSponsorshipQuote renders the three pricing methods and the blended price range
func FormatSponsorshipQuote(quote domain.SponsorshipQuote) string {
	var sb strings.Builder

	sb.WriteString("SPONSORSHIP PRICE ESTIMATE\n")
	sb.WriteString("=================================================================\n")
	if quote.Region != "" || quote.Niche != "" {
		sb.WriteString(fmt.Sprintf("Region: %s | Niche: %s\n\n", quote.Region, quote.Niche))
	}
	sb.WriteString(fmt.Sprintf("  CPM-based:        %s\n", FormatCurrency(quote.CPMBased)))
	sb.WriteString(fmt.Sprintf("  Follower-based:   %s\n", FormatCurrency(quote.FollowerBased)))
	sb.WriteString(fmt.Sprintf("  Engagement-based: %s\n", FormatCurrency(quote.EngagementBased)))
	sb.WriteString(strings.Repeat("-", 40) + "\n")
	sb.WriteString(fmt.Sprintf("  Suggested Price:  %s\n", FormatCurrency(quote.Blended)))
	sb.WriteString(fmt.Sprintf("  Negotiation Range: %s - %s\n", FormatCurrency(quote.Low), FormatCurrency(quote.High)))

	return sb.String()
}
