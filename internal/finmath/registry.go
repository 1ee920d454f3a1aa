package finmath

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
)

var (
	ErrUnknownFormula = errors.New("unknown formula")
	ErrBadArity       = errors.New("wrong number of inputs")
)

// ResultRow is one line of a calculator's output, pre-formatted for
// display inside a lesson.
type ResultRow struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Formula is a calculator identified by ID. Lessons reference formulas
// by ID only, so the catalog stays plain data.
type Formula struct {
	ID      string
	Arity   int
	Compute func(in []float64) ([]ResultRow, error)
}

// Registry resolves formula IDs to their implementations.
type Registry struct {
	formulas map[string]Formula
}

// NewRegistry builds the standard formula set. The tax-regimes formula
// evaluates against the given tables so slab updates reach calculators
// without a restart.
func NewRegistry(tables *TaxTables) *Registry {
	r := &Registry{formulas: make(map[string]Formula)}

	r.register("cashflow", 2, func(in []float64) ([]ResultRow, error) {
		income, expenses := in[0], in[1]
		savings := income - expenses
		rate := 0.0
		if income > 0 {
			rate = savings / income * 100
		}
		return []ResultRow{
			{Label: "Monthly Savings", Value: inr(savings)},
			{Label: "Savings Rate", Value: fmt.Sprintf("%.1f%%", rate)},
		}, nil
	})

	r.register("fifty-thirty-twenty", 1, func(in []float64) ([]ResultRow, error) {
		income := in[0]
		return []ResultRow{
			{Label: "Needs (50%)", Value: inr(income * 0.50)},
			{Label: "Wants (30%)", Value: inr(income * 0.30)},
			{Label: "Savings (20%)", Value: inr(income * 0.20)},
		}, nil
	})

	r.register("savings-vs-fd", 2, func(in []float64) ([]ResultRow, error) {
		amount, years := in[0], in[1]
		savings := amount + SimpleInterest(amount, 3.5, years)
		fd, err := CompoundInterest(amount, 7, years, 4)
		if err != nil {
			return nil, err
		}
		return []ResultRow{
			{Label: "Savings Account (3.5%)", Value: inr(savings)},
			{Label: "Fixed Deposit (7%)", Value: inr(fd.Amount)},
			{Label: "FD Advantage", Value: inr(fd.Amount - savings)},
		}, nil
	})

	r.register("credit-card-payoff", 3, func(in []float64) ([]ResultRow, error) {
		res, err := CreditCardPayoff(in[0], in[1], in[2])
		if err != nil {
			return nil, err
		}
		return []ResultRow{
			{Label: "Months to Payoff", Value: fmt.Sprintf("%d", res.Months)},
			{Label: "Total Interest", Value: inr(res.TotalInterest)},
			{Label: "Total Paid", Value: inr(res.TotalPaid)},
		}, nil
	})

	r.register("emergency-fund", 2, func(in []float64) ([]ResultRow, error) {
		expenses, months := in[0], in[1]
		return []ResultRow{
			{Label: "Target Fund", Value: inr(expenses * months)},
			{Label: "Monthly Expenses Covered", Value: fmt.Sprintf("%.0f months", months)},
		}, nil
	})

	r.register("emi", 3, func(in []float64) ([]ResultRow, error) {
		res, err := EMI(in[0], in[1], in[2])
		if err != nil {
			return nil, err
		}
		return []ResultRow{
			{Label: "Monthly EMI", Value: inr(res.Monthly)},
			{Label: "Total Interest", Value: inr(res.TotalInterest)},
			{Label: "Total Payment", Value: inr(res.TotalPayment)},
		}, nil
	})

	r.register("sip-growth", 3, func(in []float64) ([]ResultRow, error) {
		res, err := SIPFutureValue(in[0], in[1], in[2])
		if err != nil {
			return nil, err
		}
		return []ResultRow{
			{Label: "Total Invested", Value: inr(res.Invested)},
			{Label: "Maturity Value", Value: inr(res.Maturity)},
			{Label: "Wealth Gained", Value: inr(res.Gain)},
		}, nil
	})

	r.register("order-types", 3, func(in []float64) ([]ResultRow, error) {
		qty, market, limit := in[0], in[1], in[2]
		return []ResultRow{
			{Label: "Market Order Cost", Value: inr(qty * market)},
			{Label: "Limit Order Cost", Value: inr(qty * limit)},
			{Label: "Difference", Value: inr(qty * (market - limit))},
		}, nil
	})

	r.register("asset-allocation", 2, func(in []float64) ([]ResultRow, error) {
		age, amount := in[0], in[1]
		equityPct := math.Max(0, math.Min(100, 100-age))
		return []ResultRow{
			{Label: "Equity", Value: fmt.Sprintf("%.0f%% (%s)", equityPct, inr(amount*equityPct/100))},
			{Label: "Debt", Value: fmt.Sprintf("%.0f%% (%s)", 100-equityPct, inr(amount*(100-equityPct)/100))},
		}, nil
	})

	r.register("tax-regimes", 4, func(in []float64) ([]ResultRow, error) {
		d := Deductions{Section80C: in[1], Section80D: in[2], NPS: in[3]}
		cmp := tables.Compare(in[0], d)
		rows := make([]ResultRow, 0, len(cmp.Results)+1)
		for _, rt := range cmp.Results {
			rows = append(rows, ResultRow{Label: rt.RegimeName + " Tax", Value: inr(rt.Tax)})
		}
		best, _ := tables.Set().Lookup(cmp.BestID)
		rows = append(rows, ResultRow{Label: "Recommended", Value: best.Name})
		return rows, nil
	})

	return r
}

func (r *Registry) register(id string, arity int, compute func([]float64) ([]ResultRow, error)) {
	r.formulas[id] = Formula{ID: id, Arity: arity, Compute: compute}
}

// Lookup returns the formula for id.
func (r *Registry) Lookup(id string) (Formula, error) {
	f, ok := r.formulas[id]
	if !ok {
		return Formula{}, fmt.Errorf("%w: %s", ErrUnknownFormula, id)
	}
	return f, nil
}

// Evaluate runs the formula after checking arity.
func (r *Registry) Evaluate(id string, in []float64) ([]ResultRow, error) {
	f, err := r.Lookup(id)
	if err != nil {
		return nil, err
	}
	if len(in) != f.Arity {
		return nil, fmt.Errorf("%w: %s wants %d, got %d", ErrBadArity, id, f.Arity, len(in))
	}
	return f.Compute(in)
}

// IDs lists the registered formula identifiers in stable order.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.formulas))
	for id := range r.formulas {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// inr formats an amount with Indian digit grouping, rounded to rupees.
func inr(v float64) string {
	neg := v < 0
	n := int64(math.Round(math.Abs(v)))
	s := fmt.Sprintf("%d", n)
	if len(s) > 3 {
		head, tail := s[:len(s)-3], s[len(s)-3:]
		var groups []string
		for len(head) > 2 {
			groups = append([]string{head[len(head)-2:]}, groups...)
			head = head[:len(head)-2]
		}
		if head != "" {
			groups = append([]string{head}, groups...)
		}
		s = strings.Join(groups, ",") + "," + tail
	}
	if neg {
		return "-₹" + s
	}
	return "₹" + s
}
