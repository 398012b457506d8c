package model

// UncategorizedBucket collects report units for sales whose product has been
// removed from the catalog since the sale completed.
const UncategorizedBucket = "uncategorized"

// EndOfDayReport aggregates the current ledger: total discounted revenue,
// units sold per category, and the product ids tied for the highest and lowest
// single-sale quantity.
type EndOfDayReport struct {
	TotalRevenue    float64        `json:"total_revenue"`
	UnitsByCategory map[string]int `json:"units_by_category"`
	TopSellers      []string       `json:"top_sellers"`
	BottomSellers   []string       `json:"bottom_sellers"`
}
