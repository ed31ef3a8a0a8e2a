package entity

import (
	"fmt"

	errs "github.com/aabinvest/vip-ledger/internal/domain/error"
)

// CycleDays is the length of a VIP subscription cycle in calendar days.
const CycleDays = 60

// Tier describes one purchasable VIP package.
type Tier struct {
	Level       int
	Price       int64
	DailyProfit int64
}

// tiers is the single source of truth for VIP pricing and payouts.
// Both the purchase path and the approval path read from here.
var tiers = []Tier{
	{Level: 1, Price: 10000, DailyProfit: 1800},
	{Level: 2, Price: 30000, DailyProfit: 6000},
	{Level: 3, Price: 50000, DailyProfit: 10000},
	{Level: 4, Price: 80000, DailyProfit: 13000},
	{Level: 5, Price: 120000, DailyProfit: 28000},
	{Level: 6, Price: 240000, DailyProfit: 60000},
	{Level: 7, Price: 300000, DailyProfit: 75000},
	{Level: 8, Price: 600000, DailyProfit: 150000},
	{Level: 9, Price: 1200000, DailyProfit: 400000},
	{Level: 10, Price: 2000000, DailyProfit: 600000},
}

// TierForLevel returns the tier definition for a VIP level (1-10).
func TierForLevel(level int) (Tier, error) {
	if level < 1 || level > len(tiers) {
		return Tier{}, fmt.Errorf("%w: %d", errs.ErrInvalidVIPLevel, level)
	}
	return tiers[level-1], nil
}

// Tiers returns the full tier table, ordered by level.
func Tiers() []Tier {
	out := make([]Tier, len(tiers))
	copy(out, tiers)
	return out
}
