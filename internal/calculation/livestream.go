package calculation

import (
	"github.com/rgehrsitz/creatorcalc/internal/domain"
	"github.com/shopspring/decimal"
)

// Livestream revenue is three additive streams: subs, ads per viewer-hour and tips per viewer.
var (
	TwitchSubValue = decimal.NewFromFloat(2.50)
	TwitchAdRate   = decimal.NewFromFloat(0.006) // per viewer-hour
	TwitchTipRate  = decimal.NewFromFloat(1.50)  // per average viewer per month
	KickSubValue   = decimal.NewFromFloat(4.75)
	KickAdRate     = decimal.NewFromFloat(0.004)
	KickTipRate    = decimal.NewFromFloat(1.00)
)

func Twitch(subscribers, avgViewers, hoursStreamed decimal.Decimal) domain.CalculationResult {
	return livestream(subscribers, avgViewers, hoursStreamed, TwitchSubValue, TwitchAdRate, TwitchTipRate)
}

func Kick(subscribers, avgViewers, hoursStreamed decimal.Decimal) domain.CalculationResult {
	return livestream(subscribers, avgViewers, hoursStreamed, KickSubValue, KickAdRate, KickTipRate)
}

func livestream(subscribers, avgViewers, hours, subValue, adRate, tipRate decimal.Decimal) domain.CalculationResult {
	return domain.NewResult(
		item(LabelSubRevenue, subscribers.Mul(subValue)),
		item(LabelAdsRevenue, avgViewers.Mul(hours).Mul(adRate)),
		item(LabelDonations, avgViewers.Mul(tipRate)),
	)
}
