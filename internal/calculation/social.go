package calculation

import (
	"github.com/rgehrsitz/creatorcalc/internal/domain"
	"github.com/shopspring/decimal"
)

// FOLLOWER-TIERED PLATFORM POLICY:
//
// Brand deal income only starts once an account crosses the platform's eligibility
// threshold. At the threshold the contribution is followers*rate, so it jumps from zero
// to a positive value and grows linearly from there.

var (
	TikTokBrandThreshold    = decimal.NewFromInt(10_000)
	TikTokBrandRate         = decimal.NewFromFloat(0.005) // per follower per month
	InstagramBonusRPM       = decimal.NewFromFloat(0.25)
	InstagramBrandThreshold = decimal.NewFromInt(1000)
	InstagramBrandRate      = decimal.NewFromFloat(0.01)
	ThreadsBonusRPM         = decimal.NewFromFloat(0.05)
	ThreadsBrandThreshold   = decimal.NewFromInt(5000)
	ThreadsBrandRate        = decimal.NewFromFloat(0.004)
	XVerifiedThreshold      = decimal.NewFromInt(500)
	XAdShareRPM             = decimal.NewFromFloat(0.0085)
)

// tiered returns followers*rate when followers reach threshold, otherwise zero.
func tiered(followers, threshold, rate decimal.Decimal) decimal.Decimal {
	if followers.LessThan(threshold) {
		return decimal.Zero
	}
	return followers.Mul(rate)
}

// TikTok computes Creator Rewards payouts plus brand deals for eligible accounts.
func TikTok(followers, monthlyViews, rpm decimal.Decimal) domain.CalculationResult {
	return domain.NewResult(
		item(LabelCreatorRewards, perThousand(monthlyViews, rpm)),
		item(LabelBrandDeals, tiered(followers, TikTokBrandThreshold, TikTokBrandRate)),
	)
}

// Instagram computes reel bonuses plus sponsorships. Sponsorship value grows with
// engagement: followers*rate*(1+ER/100), which reduces to (followers+engagements)*rate.
// The engagement rate is reported whenever the account has followers.
func Instagram(followers, monthlyViews, avgEngagements decimal.Decimal) domain.CalculationResult {
	brand := decimal.Zero
	if !followers.LessThan(InstagramBrandThreshold) {
		brand = followers.Add(avgEngagements).Mul(InstagramBrandRate)
	}
	result := domain.NewResult(
		item(LabelBonus, perThousand(monthlyViews, InstagramBonusRPM)),
		item(LabelBrandDeals, brand),
	)
	if followers.IsPositive() {
		result = result.WithEngagementRate(avgEngagements.Div(followers).Mul(hundred))
	}
	return result
}

func Threads(followers, monthlyViews decimal.Decimal) domain.CalculationResult {
	return domain.NewResult(
		item(LabelBonus, perThousand(monthlyViews, ThreadsBonusRPM)),
		item(LabelBrandDeals, tiered(followers, ThreadsBrandThreshold, ThreadsBrandRate)),
	)
}

// X computes ad revenue sharing, which requires a minimum verified following.
func X(verifiedFollowers, monthlyImpressions decimal.Decimal) domain.CalculationResult {
	share := decimal.Zero
	if !verifiedFollowers.LessThan(XVerifiedThreshold) {
		share = perThousand(monthlyImpressions, XAdShareRPM)
	}
	return domain.NewResult(item(LabelAdSharing, share))
}
