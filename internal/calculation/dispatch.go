package calculation

import (
	"github.com/rgehrsitz/creatorcalc/internal/domain"
)

// calculator reads the inputs a platform needs out of the generic value map.
type calculator func(in domain.InputValues) domain.CalculationResult

var calculators = map[string]calculator{
	"youtube": func(in domain.InputValues) domain.CalculationResult {
		return YouTube(in.Decimal("subscribers"), in.Decimal("monthlyViews"), in.Decimal("cpm"))
	},
	"rumble": func(in domain.InputValues) domain.CalculationResult {
		return Rumble(in.Decimal("monthlyViews"), in.Decimal("cpm"), in.Decimal("rants"))
	},
	"podcast": func(in domain.InputValues) domain.CalculationResult {
		return Podcast(in.Decimal("monthlyDownloads"), in.Decimal("cpm"), in.Decimal("adSpots"))
	},
	"facebook": func(in domain.InputValues) domain.CalculationResult {
		return Facebook(in.Decimal("monthlyViews"), in.Decimal("cpm"), in.Decimal("stars"))
	},
	"pinterest": func(in domain.InputValues) domain.CalculationResult {
		return Pinterest(in.Decimal("monthlyImpressions"), in.Decimal("cpm"))
	},
	"snapchat": func(in domain.InputValues) domain.CalculationResult {
		return Snapchat(in.Decimal("monthlyViews"), in.Decimal("cpm"))
	},
	"tiktok": func(in domain.InputValues) domain.CalculationResult {
		return TikTok(in.Decimal("followers"), in.Decimal("monthlyViews"), in.Decimal("rpm"))
	},
	"instagram": func(in domain.InputValues) domain.CalculationResult {
		return Instagram(in.Decimal("followers"), in.Decimal("monthlyViews"), in.Decimal("avgEngagements"))
	},
	"threads": func(in domain.InputValues) domain.CalculationResult {
		return Threads(in.Decimal("followers"), in.Decimal("monthlyViews"))
	},
	"x": func(in domain.InputValues) domain.CalculationResult {
		return X(in.Decimal("verifiedFollowers"), in.Decimal("monthlyImpressions"))
	},
	"patreon": func(in domain.InputValues) domain.CalculationResult {
		return Patreon(in.Decimal("patrons"), in.Decimal("avgPledge"))
	},
	"kofi": func(in domain.InputValues) domain.CalculationResult {
		return Kofi(in.Decimal("members"), in.Decimal("membershipPrice"), in.Decimal("tipsPercent"))
	},
	"discord": func(in domain.InputValues) domain.CalculationResult {
		return Discord(in.Decimal("members"), in.Decimal("paidPercent"), in.Decimal("subPrice"))
	},
	"substack": func(in domain.InputValues) domain.CalculationResult {
		return Substack(in.Decimal("subscribers"), in.Decimal("paidPercent"), in.Decimal("subPrice"))
	},
	"newsletter": func(in domain.InputValues) domain.CalculationResult {
		return Newsletter(in.Decimal("subscribers"), in.Decimal("paidPercent"), in.Decimal("subPrice"), in.Decimal("sponsorCpm"))
	},
	"onlyfans": func(in domain.InputValues) domain.CalculationResult {
		return OnlyFans(in.Decimal("subscribers"), in.Decimal("subPrice"), in.Decimal("tipsPercent"))
	},
	"fansly": func(in domain.InputValues) domain.CalculationResult {
		return Fansly(in.Decimal("subscribers"), in.Decimal("subPrice"), in.Decimal("tipsPercent"))
	},
	"fanvue": func(in domain.InputValues) domain.CalculationResult {
		return Fanvue(in.Decimal("subscribers"), in.Decimal("subPrice"), in.Decimal("tipsPercent"))
	},
	"twitch": func(in domain.InputValues) domain.CalculationResult {
		return Twitch(in.Decimal("subscribers"), in.Decimal("avgViewers"), in.Decimal("hoursStreamed"))
	},
	"kick": func(in domain.InputValues) domain.CalculationResult {
		return Kick(in.Decimal("subscribers"), in.Decimal("avgViewers"), in.Decimal("hoursStreamed"))
	},
	"etsy": func(in domain.InputValues) domain.CalculationResult {
		return Etsy(in.Decimal("monthlySales"), in.Decimal("avgOrderValue"), in.Decimal("profitMargin"))
	},
	"amazon": func(in domain.InputValues) domain.CalculationResult {
		return Amazon(in.Decimal("monthlyClicks"), in.Decimal("conversionRate"), in.Decimal("avgOrderValue"), in.Decimal("commissionRate"))
	},
	"gumroad": func(in domain.InputValues) domain.CalculationResult {
		return Gumroad(in.Decimal("monthlySales"), in.Decimal("productPrice"))
	},
	"teachable": func(in domain.InputValues) domain.CalculationResult {
		return Teachable(in.Decimal("enrollments"), in.Decimal("coursePrice"))
	},
}

// Calculate routes a platform id to its formula. Unknown ids yield a zero result;
// it never panics or errors for any id or input map.
func Calculate(platformID string, in domain.InputValues) domain.CalculationResult {
	calc, ok := calculators[platformID]
	if !ok {
		return domain.ZeroResult()
	}
	return calc(in)
}

// Supports reports whether a formula is registered for the platform id.
func Supports(platformID string) bool {
	_, ok := calculators[platformID]
	return ok
}
