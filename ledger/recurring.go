package ledger

import (
	"math"
	"strings"

	"github.com/pluto-fi/plutotui/pluto"
)

// RecurringExpense is a debit that shows up month after month with a
// stable amount, detected locally from the transaction list.
type RecurringExpense struct {
	Name string
	// MonthlyAmount is the mean magnitude across occurrences.
	MonthlyAmount float64
	Occurrences   int
	LastDate      pluto.Date
}

// amountTolerance is how far an occurrence may stray from the group
// mean and still count as the same recurring charge.
const amountTolerance = 0.25

// Recurring detects recurring debits: the same name charged in at
// least two distinct months, with every amount within tolerance of the
// group mean. Results come back in order of first occurrence.
func Recurring(ts []pluto.Transaction) []RecurringExpense {
	type group struct {
		name    string
		amounts []float64
		months  map[string]bool
		last    pluto.Date
	}

	groups := make(map[string]*group)
	var order []string

	for _, t := range ts {
		if t.IsIncome() {
			continue
		}

		name := t.Name
		if name == "" {
			name = t.MerchantName
		}
		key := strings.ToLower(strings.TrimSpace(name))
		if key == "" {
			continue
		}

		g, ok := groups[key]
		if !ok {
			g = &group{name: name, months: make(map[string]bool)}
			groups[key] = g
			order = append(order, key)
		}

		g.amounts = append(g.amounts, math.Abs(t.Amount))
		g.months[t.Date.Format("2006-01")] = true
		if t.Date.After(g.last.Time) {
			g.last = t.Date
		}
	}

	var recurring []RecurringExpense
	for _, key := range order {
		g := groups[key]
		if len(g.months) < 2 {
			continue
		}

		var sum float64
		for _, a := range g.amounts {
			sum += a
		}
		mean := sum / float64(len(g.amounts))

		stable := true
		for _, a := range g.amounts {
			if math.Abs(a-mean) > mean*amountTolerance {
				stable = false
				break
			}
		}
		if !stable {
			continue
		}

		recurring = append(recurring, RecurringExpense{
			Name:          g.name,
			MonthlyAmount: mean,
			Occurrences:   len(g.amounts),
			LastDate:      g.last,
		})
	}

	return recurring
}
