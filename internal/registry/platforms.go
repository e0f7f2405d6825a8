// Package registry holds the static platform, region, niche and time period tables.
package registry

import (
	"sort"
	"strings"

	"github.com/rgehrsitz/creatorcalc/internal/domain"
)

func slider(id, label string, kind domain.InputKind, min, max, step, def float64, tooltip string) domain.PlatformInput {
	return domain.PlatformInput{
		ID:      id,
		Label:   label,
		Type:    domain.InputSlider,
		Kind:    kind,
		Min:     min,
		Max:     max,
		Step:    step,
		Default: def,
		Tooltip: tooltip,
	}
}

func number(id, label string, kind domain.InputKind, min, max, step, def float64, tooltip string) domain.PlatformInput {
	in := slider(id, label, kind, min, max, step, def, tooltip)
	in.Type = domain.InputNumber
	return in
}

var platforms = []domain.Platform{
	// Video and ad-supported
	{
		ID: "youtube", Name: "YouTube", Category: domain.CategoryVideo,
		Inputs: []domain.PlatformInput{
			slider("subscribers", "Subscribers", domain.KindAudience, 0, 10_000_000, 1000, 10_000, "Channel subscribers"),
			slider("monthlyViews", "Monthly Views", domain.KindVolume, 0, 100_000_000, 10_000, 500_000, "Monetized views per month"),
			slider("cpm", "CPM ($)", domain.KindRate, 0.5, 50, 0.5, 4, "What advertisers pay per 1,000 ad impressions"),
		},
	},
	{
		ID: "rumble", Name: "Rumble", Category: domain.CategoryVideo,
		Inputs: []domain.PlatformInput{
			slider("monthlyViews", "Monthly Views", domain.KindVolume, 0, 50_000_000, 10_000, 200_000, "Monetized views per month"),
			slider("cpm", "CPM ($)", domain.KindRate, 0.5, 40, 0.5, 3, "Advertiser CPM"),
			slider("rants", "Monthly Rants", domain.KindVolume, 0, 10_000, 10, 50, "Paid chat messages per month"),
		},
	},
	{
		ID: "podcast", Name: "Podcast", Category: domain.CategoryVideo,
		Inputs: []domain.PlatformInput{
			slider("monthlyDownloads", "Monthly Downloads", domain.KindVolume, 0, 10_000_000, 1000, 20_000, "Downloads per month across all episodes"),
			slider("cpm", "CPM ($)", domain.KindRate, 5, 100, 1, 25, "Host-read ad CPM"),
			slider("adSpots", "Ad Spots per Episode", domain.KindVolume, 0, 6, 1, 2, "Pre, mid and post roll slots"),
		},
	},
	{
		ID: "facebook", Name: "Facebook", Category: domain.CategoryVideo,
		Inputs: []domain.PlatformInput{
			slider("monthlyViews", "Monthly Views", domain.KindVolume, 0, 100_000_000, 10_000, 300_000, "Views on monetized reels and videos"),
			slider("cpm", "CPM ($)", domain.KindRate, 0.5, 30, 0.5, 2.5, "In-stream ad CPM"),
			slider("stars", "Stars Received", domain.KindVolume, 0, 1_000_000, 100, 5000, "Each star pays one cent"),
		},
	},
	{
		ID: "pinterest", Name: "Pinterest", Category: domain.CategoryVideo,
		Inputs: []domain.PlatformInput{
			slider("monthlyImpressions", "Monthly Impressions", domain.KindVolume, 0, 100_000_000, 10_000, 1_000_000, "Idea pin impressions per month"),
			slider("cpm", "CPM ($)", domain.KindRate, 0.5, 20, 0.5, 2, "Advertiser CPM"),
		},
	},
	{
		ID: "snapchat", Name: "Snapchat", Category: domain.CategoryVideo,
		Inputs: []domain.PlatformInput{
			slider("monthlyViews", "Monthly Views", domain.KindVolume, 0, 100_000_000, 10_000, 500_000, "Spotlight and Stories views"),
			slider("cpm", "CPM ($)", domain.KindRate, 0.5, 20, 0.5, 2, "Advertiser CPM"),
		},
	},

	// Follower-tiered
	{
		ID: "tiktok", Name: "TikTok", Category: domain.CategorySocial,
		Inputs: []domain.PlatformInput{
			slider("followers", "Followers", domain.KindAudience, 0, 50_000_000, 1000, 50_000, "Brand deals unlock at 10,000 followers"),
			slider("monthlyViews", "Monthly Views", domain.KindVolume, 0, 500_000_000, 10_000, 1_000_000, "Qualified views per month"),
			slider("rpm", "RPM ($)", domain.KindRate, 0, 2, 0.05, 0.5, "Creator Rewards payout per 1,000 qualified views"),
		},
	},
	{
		ID: "instagram", Name: "Instagram", Category: domain.CategorySocial,
		Inputs: []domain.PlatformInput{
			slider("followers", "Followers", domain.KindAudience, 0, 50_000_000, 1000, 25_000, "Sponsorships unlock at 1,000 followers"),
			slider("monthlyViews", "Monthly Reel Views", domain.KindVolume, 0, 100_000_000, 10_000, 250_000, "Views eligible for bonuses"),
			slider("avgEngagements", "Avg Engagements per Post", domain.KindVolume, 0, 1_000_000, 50, 750, "Likes plus comments per post"),
		},
	},
	{
		ID: "threads", Name: "Threads", Category: domain.CategorySocial,
		Inputs: []domain.PlatformInput{
			slider("followers", "Followers", domain.KindAudience, 0, 20_000_000, 500, 10_000, "Brand deals unlock at 5,000 followers"),
			slider("monthlyViews", "Monthly Views", domain.KindVolume, 0, 100_000_000, 10_000, 100_000, "Post views per month"),
		},
	},
	{
		ID: "x", Name: "X (Twitter)", Category: domain.CategorySocial,
		Inputs: []domain.PlatformInput{
			slider("verifiedFollowers", "Verified Followers", domain.KindAudience, 0, 1_000_000, 100, 1000, "Ad revenue sharing requires 500 verified followers"),
			slider("monthlyImpressions", "Monthly Impressions", domain.KindVolume, 0, 500_000_000, 100_000, 5_000_000, "Impressions on replies from verified users"),
		},
	},

	// Subscription and tips
	{
		ID: "patreon", Name: "Patreon", Category: domain.CategorySubscription,
		Inputs: []domain.PlatformInput{
			slider("patrons", "Patrons", domain.KindAudience, 0, 100_000, 10, 100, "Paying members"),
			slider("avgPledge", "Avg Pledge ($)", domain.KindPrice, 1, 100, 1, 5, "Average monthly pledge"),
		},
	},
	{
		ID: "kofi", Name: "Ko-fi", Category: domain.CategorySubscription,
		Inputs: []domain.PlatformInput{
			slider("members", "Members", domain.KindAudience, 0, 50_000, 10, 50, "Monthly supporters"),
			slider("membershipPrice", "Membership Price ($)", domain.KindPrice, 1, 100, 1, 5, "Monthly membership tier price"),
			slider("tipsPercent", "Tips (% of memberships)", domain.KindPercent, 0, 200, 5, 20, "One-off tips relative to membership income"),
		},
	},
	{
		ID: "discord", Name: "Discord", Category: domain.CategorySubscription,
		Inputs: []domain.PlatformInput{
			slider("members", "Server Members", domain.KindAudience, 0, 1_000_000, 100, 5000, "Total server members"),
			slider("paidPercent", "Paid Members (%)", domain.KindPercent, 0, 100, 0.5, 2, "Share subscribing to a paid role"),
			slider("subPrice", "Subscription Price ($)", domain.KindPrice, 1, 100, 1, 5, "Monthly server subscription price"),
		},
	},
	{
		ID: "substack", Name: "Substack", Category: domain.CategorySubscription,
		Inputs: []domain.PlatformInput{
			slider("subscribers", "Subscribers", domain.KindAudience, 0, 2_000_000, 100, 5000, "Free plus paid subscribers"),
			slider("paidPercent", "Paid Conversion (%)", domain.KindPercent, 0, 100, 0.5, 5, "Share on a paid plan"),
			slider("subPrice", "Subscription Price ($)", domain.KindPrice, 1, 100, 1, 8, "Monthly paid plan price"),
		},
	},
	{
		ID: "newsletter", Name: "Newsletter", Category: domain.CategorySubscription,
		Inputs: []domain.PlatformInput{
			slider("subscribers", "Subscribers", domain.KindAudience, 0, 2_000_000, 100, 10_000, "List size"),
			slider("paidPercent", "Paid Conversion (%)", domain.KindPercent, 0, 100, 0.5, 3, "Share on a paid tier"),
			slider("subPrice", "Subscription Price ($)", domain.KindPrice, 1, 100, 1, 6, "Monthly paid tier price"),
			slider("sponsorCpm", "Sponsor CPM ($)", domain.KindRate, 0, 150, 1, 30, "Sponsor rate per 1,000 subscribers per issue"),
		},
	},
	{
		ID: "onlyfans", Name: "OnlyFans", Category: domain.CategorySubscription,
		Inputs: []domain.PlatformInput{
			slider("subscribers", "Subscribers", domain.KindAudience, 0, 100_000, 10, 200, "Paying subscribers"),
			slider("subPrice", "Subscription Price ($)", domain.KindPrice, 4.99, 49.99, 1, 9.99, "Monthly subscription price"),
			slider("tipsPercent", "Tips & PPV (% of subs)", domain.KindPercent, 0, 300, 5, 50, "Tips and pay-per-view relative to subscriptions"),
		},
	},
	{
		ID: "fansly", Name: "Fansly", Category: domain.CategorySubscription,
		Inputs: []domain.PlatformInput{
			slider("subscribers", "Subscribers", domain.KindAudience, 0, 100_000, 10, 150, "Paying subscribers"),
			slider("subPrice", "Subscription Price ($)", domain.KindPrice, 4.99, 49.99, 1, 9.99, "Monthly subscription price"),
			slider("tipsPercent", "Tips & PPV (% of subs)", domain.KindPercent, 0, 300, 5, 40, "Tips and pay-per-view relative to subscriptions"),
		},
	},
	{
		ID: "fanvue", Name: "Fanvue", Category: domain.CategorySubscription,
		Inputs: []domain.PlatformInput{
			slider("subscribers", "Subscribers", domain.KindAudience, 0, 100_000, 10, 100, "Paying subscribers"),
			slider("subPrice", "Subscription Price ($)", domain.KindPrice, 3.99, 49.99, 1, 9.99, "Monthly subscription price"),
			slider("tipsPercent", "Tips & PPV (% of subs)", domain.KindPercent, 0, 300, 5, 40, "Tips and pay-per-view relative to subscriptions"),
		},
	},

	// Livestream
	{
		ID: "twitch", Name: "Twitch", Category: domain.CategoryLivestream,
		Inputs: []domain.PlatformInput{
			slider("subscribers", "Subscribers", domain.KindAudience, 0, 100_000, 10, 200, "Active channel subs"),
			slider("avgViewers", "Avg Concurrent Viewers", domain.KindAudience, 0, 100_000, 5, 100, "Average live viewers"),
			slider("hoursStreamed", "Hours Streamed / Month", domain.KindVolume, 0, 400, 5, 80, "Total live hours per month"),
		},
	},
	{
		ID: "kick", Name: "Kick", Category: domain.CategoryLivestream,
		Inputs: []domain.PlatformInput{
			slider("subscribers", "Subscribers", domain.KindAudience, 0, 100_000, 10, 150, "Active channel subs"),
			slider("avgViewers", "Avg Concurrent Viewers", domain.KindAudience, 0, 100_000, 5, 75, "Average live viewers"),
			slider("hoursStreamed", "Hours Streamed / Month", domain.KindVolume, 0, 400, 5, 80, "Total live hours per month"),
		},
	},

	// Commerce
	{
		ID: "etsy", Name: "Etsy", Category: domain.CategoryCommerce,
		Inputs: []domain.PlatformInput{
			number("monthlySales", "Monthly Sales", domain.KindVolume, 0, 100_000, 1, 100, "Orders per month"),
			number("avgOrderValue", "Avg Order Value ($)", domain.KindPrice, 1, 1000, 1, 35, "Average order value"),
			slider("profitMargin", "Profit Margin (%)", domain.KindPercent, 0, 100, 1, 40, "Margin after materials and shipping"),
		},
	},
	{
		ID: "amazon", Name: "Amazon Associates", Category: domain.CategoryCommerce,
		Inputs: []domain.PlatformInput{
			slider("monthlyClicks", "Monthly Clicks", domain.KindVolume, 0, 10_000_000, 100, 10_000, "Affiliate link clicks"),
			slider("conversionRate", "Conversion Rate (%)", domain.KindPercent, 0, 100, 0.5, 5, "Clicks that become orders"),
			number("avgOrderValue", "Avg Order Value ($)", domain.KindPrice, 1, 1000, 1, 50, "Average order value"),
			slider("commissionRate", "Commission Rate (%)", domain.KindPercent, 0, 20, 0.5, 4, "Category commission rate"),
		},
	},
	{
		ID: "gumroad", Name: "Gumroad", Category: domain.CategoryCommerce,
		Inputs: []domain.PlatformInput{
			number("monthlySales", "Monthly Sales", domain.KindVolume, 0, 100_000, 1, 50, "Digital product sales per month"),
			number("productPrice", "Product Price ($)", domain.KindPrice, 1, 1000, 1, 25, "Average product price"),
		},
	},
	{
		ID: "teachable", Name: "Teachable", Category: domain.CategoryCommerce,
		Inputs: []domain.PlatformInput{
			number("enrollments", "Monthly Enrollments", domain.KindVolume, 0, 100_000, 1, 20, "New course students per month"),
			number("coursePrice", "Course Price ($)", domain.KindPrice, 1, 5000, 1, 199, "Course price"),
		},
	},
}

var platformIndex = func() map[string]int {
	idx := make(map[string]int, len(platforms))
	for i, p := range platforms {
		idx[p.ID] = i
	}
	return idx
}()

// Platforms returns every registered platform in display order.
func Platforms() []domain.Platform {
	out := make([]domain.Platform, len(platforms))
	for i, p := range platforms {
		out[i] = clonePlatform(p)
	}
	return out
}

// Platform returns the platform with the given id. Ids are matched case-insensitively.
func Platform(id string) (domain.Platform, bool) {
	i, ok := platformIndex[strings.ToLower(strings.TrimSpace(id))]
	if !ok {
		return domain.Platform{}, false
	}
	return clonePlatform(platforms[i]), true
}

// PlatformIDs returns the registered platform ids sorted alphabetically.
func PlatformIDs() []string {
	ids := make([]string, 0, len(platforms))
	for _, p := range platforms {
		ids = append(ids, p.ID)
	}
	sort.Strings(ids)
	return ids
}

// PlatformsByCategory returns the platforms in one category, in display order.
func PlatformsByCategory(category domain.Category) []domain.Platform {
	var out []domain.Platform
	for _, p := range platforms {
		if p.Category == category {
			out = append(out, clonePlatform(p))
		}
	}
	return out
}

func clonePlatform(p domain.Platform) domain.Platform {
	p.Inputs = append([]domain.PlatformInput(nil), p.Inputs...)
	return p
}
