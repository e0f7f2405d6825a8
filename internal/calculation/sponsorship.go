package calculation

import (
	"github.com/rgehrsitz/creatorcalc/internal/domain"
	"github.com/shopspring/decimal"
)

// SPONSORSHIP PRICING POLICY:
//
// A sponsored post is priced three ways and the estimates are blended with fixed weights.
// The weights and rates are business decisions, not derived values.

var (
	SponsorFollowerRate   = decimal.NewFromFloat(0.01) // dollars per follower
	SponsorEngagementRate = decimal.NewFromFloat(0.20) // dollars per engaged follower
	SponsorCPMWeight      = decimal.NewFromFloat(0.40)
	SponsorFollowerWeight = decimal.NewFromFloat(0.30)
	SponsorEngageWeight   = decimal.NewFromFloat(0.30)
	SponsorLowFactor      = decimal.NewFromFloat(0.8)
	SponsorHighFactor     = decimal.NewFromFloat(1.2)
)

// PriceSponsorship estimates the fee for one sponsored deliverable. The CPM estimate is
// adjusted by the region's rpm multiplier and the blended price by the niche's.
func PriceSponsorship(in domain.SponsorshipInput, region domain.Region, niche domain.Niche) domain.SponsorshipQuote {
	values := domain.InputValues{
		"followers":      in.Followers,
		"avgViews":       in.AvgViews,
		"engagementRate": in.EngagementRate,
		"cpm":            in.CPM,
	}
	followers := values.Decimal("followers")

	cpmBased := perThousand(values.Decimal("avgViews"), values.Decimal("cpm")).Mul(region.RPMMultiplier)
	followerBased := followers.Mul(SponsorFollowerRate)
	engagementBased := followers.Mul(values.Decimal("engagementRate")).Div(hundred).Mul(SponsorEngagementRate)

	blended := cpmBased.Mul(SponsorCPMWeight).
		Add(followerBased.Mul(SponsorFollowerWeight)).
		Add(engagementBased.Mul(SponsorEngageWeight)).
		Mul(niche.RPMMultiplier)

	return domain.SponsorshipQuote{
		CPMBased:        cpmBased,
		FollowerBased:   followerBased,
		EngagementBased: engagementBased,
		Blended:         blended,
		Low:             blended.Mul(SponsorLowFactor),
		High:            blended.Mul(SponsorHighFactor),
		Region:          region.ID,
		Niche:           niche.ID,
	}
}
