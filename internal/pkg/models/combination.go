package models

// Leg represents one pick inside a combination
type Leg struct {
	Match    Match   `json:"match"`
	Selected Outcome `json:"selected"`
	Price    float64 `json:"price"`
}

// Combination represents a generated parlay slip
type Combination struct {
	ID              string  `json:"id"`
	Legs            []Leg   `json:"legs"`
	TotalOdds       float64 `json:"total_odds"`
	Stake           int64   `json:"stake"`
	EstimatedPayout int64   `json:"estimated_payout"`
}

// GroupKeys returns the underlying-event keys of all legs, in leg order
func (c *Combination) GroupKeys() []string {
	keys := make([]string, 0, len(c.Legs))
	for _, leg := range c.Legs {
		keys = append(keys, leg.Match.GroupKey)
	}
	return keys
}

// Prices returns the chosen price of every leg, in leg order
func (c *Combination) Prices() []float64 {
	prices := make([]float64, 0, len(c.Legs))
	for _, leg := range c.Legs {
		prices = append(prices, leg.Price)
	}
	return prices
}
