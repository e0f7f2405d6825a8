package calculation

import (
	"github.com/rgehrsitz/creatorcalc/internal/domain"
	"github.com/shopspring/decimal"
)

// AD-SUPPORTED PLATFORM POLICY:
//
// Share constants are the fraction of gross ad revenue paid out to the creator.
// Flat rates model a secondary stream that pays per unit (membership, rant, star).

var (
	thousand = decimal.NewFromInt(1000)
	hundred  = decimal.NewFromInt(100)
	one      = decimal.NewFromInt(1)
)

var (
	YouTubeAdShare        = decimal.NewFromFloat(0.55)
	YouTubeMembershipRate = decimal.NewFromFloat(0.01) // per subscriber per month
	RumbleAdShare         = decimal.NewFromFloat(0.60)
	RumbleRantFee         = decimal.NewFromInt(4)
	PodcastHostShare      = decimal.NewFromFloat(0.70)
	FacebookAdShare       = decimal.NewFromFloat(0.55)
	FacebookStarValue     = decimal.NewFromFloat(0.01)
	PinterestAdShare      = decimal.NewFromFloat(0.45)
	SnapchatAdShare       = decimal.NewFromFloat(0.50)
)

// Breakdown labels
const (
	LabelAdRevenue      = "adRevenue"
	LabelMembership     = "membershipRevenue"
	LabelRants          = "rantsRevenue"
	LabelStars          = "starsRevenue"
	LabelSponsorRevenue = "sponsorRevenue"
	LabelCreatorRewards = "creatorRewards"
	LabelBrandDeals     = "brandDeals"
	LabelBonus          = "bonusRevenue"
	LabelAdSharing      = "adSharing"
	LabelSubscriptions  = "subscriptionRevenue"
	LabelTips           = "tipsRevenue"
	LabelPaidSubs       = "paidSubscriptions"
	LabelSponsorships   = "sponsorships"
	LabelSubRevenue     = "subRevenue"
	LabelAdsRevenue     = "streamAdRevenue"
	LabelDonations      = "donations"
	LabelSales          = "salesProfit"
	LabelCommission     = "commission"
	LabelCourseRevenue  = "courseRevenue"
	LabelProductRevenue = "productRevenue"
	LabelPledges        = "pledgeRevenue"
)

// perThousand returns count/1000*rate.
func perThousand(count, rate decimal.Decimal) decimal.Decimal {
	return count.Div(thousand).Mul(rate)
}

func item(label string, amount decimal.Decimal) domain.BreakdownItem {
	return domain.BreakdownItem{Label: label, Amount: amount}
}

// YouTube computes partner program ad revenue plus channel memberships.
func YouTube(subscribers, monthlyViews, cpm decimal.Decimal) domain.CalculationResult {
	return domain.NewResult(
		item(LabelAdRevenue, perThousand(monthlyViews, cpm).Mul(YouTubeAdShare)),
		item(LabelMembership, subscribers.Mul(YouTubeMembershipRate)),
	)
}

// Rumble computes ad revenue plus paid rants.
func Rumble(monthlyViews, cpm, rants decimal.Decimal) domain.CalculationResult {
	return domain.NewResult(
		item(LabelAdRevenue, perThousand(monthlyViews, cpm).Mul(RumbleAdShare)),
		item(LabelRants, rants.Mul(RumbleRantFee)),
	)
}

// Podcast computes host-read ad revenue across every ad spot in an episode.
func Podcast(monthlyDownloads, cpm, adSpots decimal.Decimal) domain.CalculationResult {
	return domain.NewResult(
		item(LabelSponsorRevenue, perThousand(monthlyDownloads, cpm).Mul(adSpots).Mul(PodcastHostShare)),
	)
}

// Facebook computes in-stream ad revenue plus stars.
func Facebook(monthlyViews, cpm, stars decimal.Decimal) domain.CalculationResult {
	return domain.NewResult(
		item(LabelAdRevenue, perThousand(monthlyViews, cpm).Mul(FacebookAdShare)),
		item(LabelStars, stars.Mul(FacebookStarValue)),
	)
}

func Pinterest(monthlyImpressions, cpm decimal.Decimal) domain.CalculationResult {
	return domain.NewResult(
		item(LabelAdRevenue, perThousand(monthlyImpressions, cpm).Mul(PinterestAdShare)),
	)
}

func Snapchat(monthlyViews, cpm decimal.Decimal) domain.CalculationResult {
	return domain.NewResult(
		item(LabelAdRevenue, perThousand(monthlyViews, cpm).Mul(SnapchatAdShare)),
	)
}
