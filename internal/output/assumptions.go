package output

// DefaultAssumptions lists the modeling assumptions rendered in detailed outputs.
var DefaultAssumptions = []string{
	"Revenue figures are estimates from public payout rates, not guarantees",
	"Region multipliers scale revenue by where the audience lives",
	"Niche multipliers scale ad and sponsorship rates by content category",
	"Yearly revenue is twelve times monthly; no seasonality or growth is modeled",
	"Platform fees are deducted where the platform takes a share",
}
