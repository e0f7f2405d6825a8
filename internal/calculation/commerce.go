package calculation

import (
	"github.com/rgehrsitz/creatorcalc/internal/domain"
	"github.com/shopspring/decimal"
)

// Platform fees, in percent of the sale
var (
	EtsyFeePercent      = decimal.NewFromFloat(9.5)
	GumroadFeePercent   = decimal.NewFromInt(10)
	TeachableFeePercent = decimal.NewFromInt(5)
)

// afterFee returns amount*(1-feePercent/100).
func afterFee(amount, feePercent decimal.Decimal) decimal.Decimal {
	return amount.Mul(one.Sub(feePercent.Div(hundred)))
}

// Etsy computes profit on shop sales after the platform's fees.
func Etsy(monthlySales, avgOrderValue, profitMargin decimal.Decimal) domain.CalculationResult {
	profit := monthlySales.Mul(avgOrderValue).Mul(profitMargin).Div(hundred)
	return domain.NewResult(item(LabelSales, afterFee(profit, EtsyFeePercent)))
}

// Amazon computes affiliate commission on whole converted orders.
func Amazon(monthlyClicks, conversionRate, avgOrderValue, commissionRate decimal.Decimal) domain.CalculationResult {
	orders := payingMembers(monthlyClicks, conversionRate)
	return domain.NewResult(
		item(LabelCommission, orders.Mul(avgOrderValue).Mul(commissionRate).Div(hundred)),
	)
}

func Gumroad(monthlySales, productPrice decimal.Decimal) domain.CalculationResult {
	return domain.NewResult(item(LabelProductRevenue, afterFee(monthlySales.Mul(productPrice), GumroadFeePercent)))
}

func Teachable(enrollments, coursePrice decimal.Decimal) domain.CalculationResult {
	return domain.NewResult(item(LabelCourseRevenue, afterFee(enrollments.Mul(coursePrice), TeachableFeePercent)))
}
