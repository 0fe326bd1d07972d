package model

// Tier is one bracket of cumulative sales volume mapping to a level bonus.
// Max <= 0 marks an unbounded bracket.
type Tier struct {
	Level int     `json:"level"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Bonus float64 `json:"bonus"`
}

// TierTable is an ordered sequence of tiers with increasing minimums.
type TierTable []Tier

// DefaultTierTable returns the built-in level brackets used when no
// admin-configured table exists.
func DefaultTierTable() TierTable {
	return TierTable{
		{Level: 1, Min: 0, Max: 500_000, Bonus: 0},
		{Level: 2, Min: 500_000, Max: 1_000_000, Bonus: 2_000},
		{Level: 3, Min: 1_000_000, Max: 2_000_000, Bonus: 5_000},
		{Level: 4, Min: 2_000_000, Max: 5_000_000, Bonus: 10_000},
		{Level: 5, Min: 5_000_000, Max: 0, Bonus: 20_000},
	}
}

// Resolve maps cumulative sales volume to a tier. Entries are scanned from
// the highest minimum downward so higher tiers win on overlapping ranges.
func (t TierTable) Resolve(totalSold float64) Tier {
	for i := len(t) - 1; i >= 0; i-- {
		if totalSold >= t[i].Min {
			return t[i]
		}
	}
	return Tier{Level: 1}
}
