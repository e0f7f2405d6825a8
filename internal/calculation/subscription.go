package calculation

import (
	"github.com/rgehrsitz/creatorcalc/internal/domain"
	"github.com/shopspring/decimal"
)

// SUBSCRIPTION PLATFORM POLICY:
//
// Paying member counts derived from a share of a free audience are floored to whole
// members before multiplying by price, so estimates err low.

var (
	PatreonShare     = decimal.NewFromFloat(0.90)
	KofiShare        = decimal.NewFromFloat(0.95)
	DiscordShare     = decimal.NewFromFloat(0.90)
	SubstackShare    = decimal.NewFromFloat(0.90)
	NewsletterShare  = decimal.NewFromFloat(0.95)
	NewsletterIssues = decimal.NewFromInt(4) // sponsored issues per month
	OnlyFansShare    = decimal.NewFromFloat(0.80)
	FanslyShare      = decimal.NewFromFloat(0.80)
	FanvueShare      = decimal.NewFromFloat(0.85)
)

// payingMembers returns floor(audience*paidPercent/100).
func payingMembers(audience, paidPercent decimal.Decimal) decimal.Decimal {
	return audience.Mul(paidPercent).Div(hundred).Floor()
}

// withTips splits count*price*(1+tips/100)*share into its subscription and tip streams.
func withTips(count, price, tipsPercent, share decimal.Decimal) (subs, tips decimal.Decimal) {
	subs = count.Mul(price).Mul(share)
	tips = subs.Mul(tipsPercent).Div(hundred)
	return subs, tips
}

func Patreon(patrons, avgPledge decimal.Decimal) domain.CalculationResult {
	return domain.NewResult(item(LabelPledges, patrons.Mul(avgPledge).Mul(PatreonShare)))
}

func Kofi(members, membershipPrice, tipsPercent decimal.Decimal) domain.CalculationResult {
	subs, tips := withTips(members, membershipPrice, tipsPercent, KofiShare)
	return domain.NewResult(item(LabelSubscriptions, subs), item(LabelTips, tips))
}

func Discord(members, paidPercent, subPrice decimal.Decimal) domain.CalculationResult {
	return domain.NewResult(
		item(LabelPaidSubs, payingMembers(members, paidPercent).Mul(subPrice).Mul(DiscordShare)),
	)
}

func Substack(subscribers, paidPercent, subPrice decimal.Decimal) domain.CalculationResult {
	return domain.NewResult(
		item(LabelPaidSubs, payingMembers(subscribers, paidPercent).Mul(subPrice).Mul(SubstackShare)),
	)
}

// Newsletter computes paid subscriptions plus sponsor placements priced per thousand
// subscribers per issue.
func Newsletter(subscribers, paidPercent, subPrice, sponsorCPM decimal.Decimal) domain.CalculationResult {
	return domain.NewResult(
		item(LabelPaidSubs, payingMembers(subscribers, paidPercent).Mul(subPrice).Mul(NewsletterShare)),
		item(LabelSponsorships, perThousand(subscribers, sponsorCPM).Mul(NewsletterIssues)),
	)
}

// OnlyFans, Fansly and Fanvue share one shape and differ only in payout share.

func OnlyFans(subscribers, subPrice, tipsPercent decimal.Decimal) domain.CalculationResult {
	return fanSubscription(subscribers, subPrice, tipsPercent, OnlyFansShare)
}

func Fansly(subscribers, subPrice, tipsPercent decimal.Decimal) domain.CalculationResult {
	return fanSubscription(subscribers, subPrice, tipsPercent, FanslyShare)
}

func Fanvue(subscribers, subPrice, tipsPercent decimal.Decimal) domain.CalculationResult {
	return fanSubscription(subscribers, subPrice, tipsPercent, FanvueShare)
}

func fanSubscription(subscribers, subPrice, tipsPercent, share decimal.Decimal) domain.CalculationResult {
	subs, tips := withTips(subscribers, subPrice, tipsPercent, share)
	return domain.NewResult(item(LabelSubscriptions, subs), item(LabelTips, tips))
}
