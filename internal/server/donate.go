package server

// ImpactExample pairs a preset donation tier with a description of what
// that amount funds.
type ImpactExample struct {
	AmountCents int64
	Description string
}

// Tiers are ordered smallest to largest; impactForAmount depends on it.
var impactExamples = []ImpactExample{
	{AmountCents: 2500, Description: "Provides a week of groceries for a family of four"},
	{AmountCents: 5000, Description: "Supports two families with emergency food assistance"},
	{AmountCents: 10000, Description: "Helps fund a community food distribution event"},
	{AmountCents: 25000, Description: "Sponsors holiday meals for 10 families in need"},
}

// impactForAmount picks the highest preset tier at or below the chosen
// amount. Amounts below the lowest tier have no example.
func impactForAmount(amountCents int64) *ImpactExample {
	var match *ImpactExample
	for i := range impactExamples {
		if impactExamples[i].AmountCents <= amountCents {
			match = &impactExamples[i]
		}
	}
	return match
}
