// Package report aggregates recorded ticket sales.
package report

import (
	"sort"

	"guild-bot/internal/state"
)

// SellerTotal is the sales volume of one staff member
type SellerTotal struct {
	SellerID    string
	Sales       int
	AmountCents int64
}

// Summary aggregates a period of sales
type Summary struct {
	Sales       int
	AmountCents int64
	Sellers     []SellerTotal
}

// Summarize groups sales by seller, largest volume first.
func Summarize(sales []state.WeeklySale) Summary {
	var sum Summary
	bySeller := map[string]*SellerTotal{}
	for _, s := range sales {
		sum.Sales++
		sum.AmountCents += s.AmountCents

		t, ok := bySeller[s.SellerID]
		if !ok {
			t = &SellerTotal{SellerID: s.SellerID}
			bySeller[s.SellerID] = t
		}
		t.Sales++
		t.AmountCents += s.AmountCents
	}

	sum.Sellers = make([]SellerTotal, 0, len(bySeller))
	for _, t := range bySeller {
		sum.Sellers = append(sum.Sellers, *t)
	}
	sort.Slice(sum.Sellers, func(i, j int) bool {
		a, b := sum.Sellers[i], sum.Sellers[j]
		if a.AmountCents != b.AmountCents {
			return a.AmountCents > b.AmountCents
		}
		return a.SellerID < b.SellerID
	})
	return sum
}
