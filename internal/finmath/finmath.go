// Package finmath implements the pure finance calculations behind the
// learning modules: interest, loan, SIP and payoff math plus the
// progressive tax tables. All functions are deterministic and free of
// side effects so they can back both API handlers and lesson content.
package finmath

import (
	"errors"
	"math"
)

var (
	ErrInvalidCompounding = errors.New("compounding frequency must be positive")
	ErrPaymentTooLow      = errors.New("monthly payment does not cover interest")
	ErrNegativeInput      = errors.New("inputs must not be negative")
	ErrInvalidTenure      = errors.New("tenure must be positive")
)

// SimpleInterest returns the interest earned on principal at the given
// annual percentage rate over the given number of years.
func SimpleInterest(principal, annualRatePct, years float64) float64 {
	return principal * annualRatePct * years / 100
}

type CompoundResult struct {
	Amount   float64 `json:"amount"`
	Interest float64 `json:"interest"`
}

// CompoundInterest computes the maturity amount of principal compounded
// compoundsPerYear times per year for the given number of years.
func CompoundInterest(principal, annualRatePct, years float64, compoundsPerYear int) (CompoundResult, error) {
	if compoundsPerYear <= 0 {
		return CompoundResult{}, ErrInvalidCompounding
	}
	n := float64(compoundsPerYear)
	amount := principal * math.Pow(1+annualRatePct/(100*n), n*years)
	return CompoundResult{
		Amount:   amount,
		Interest: amount - principal,
	}, nil
}

type EMIResult struct {
	Monthly       float64 `json:"monthly"`
	TotalPayment  float64 `json:"totalPayment"`
	TotalInterest float64 `json:"totalInterest"`
}

// EMI computes the equated monthly installment for a loan of the given
// principal, annual percentage rate and tenure in years. A zero rate
// degenerates to straight principal division.
func EMI(principal, annualRatePct, years float64) (EMIResult, error) {
	if years <= 0 {
		return EMIResult{}, ErrInvalidTenure
	}
	if principal < 0 || annualRatePct < 0 {
		return EMIResult{}, ErrNegativeInput
	}
	months := years * 12
	monthlyRate := annualRatePct / 12 / 100

	var monthly float64
	if monthlyRate == 0 {
		monthly = principal / months
	} else {
		factor := math.Pow(1+monthlyRate, months)
		monthly = principal * monthlyRate * factor / (factor - 1)
	}

	total := monthly * months
	return EMIResult{
		Monthly:       monthly,
		TotalPayment:  total,
		TotalInterest: total - principal,
	}, nil
}

type SIPResult struct {
	Invested float64 `json:"invested"`
	Maturity float64 `json:"maturity"`
	Gain     float64 `json:"gain"`
}

// SIPFutureValue computes the maturity value of a monthly SIP with
// contributions made at the start of each month (annuity due). A zero
// rate degenerates to the sum of contributions.
func SIPFutureValue(monthly, annualRatePct, years float64) (SIPResult, error) {
	if years <= 0 {
		return SIPResult{}, ErrInvalidTenure
	}
	if monthly < 0 || annualRatePct < 0 {
		return SIPResult{}, ErrNegativeInput
	}
	months := years * 12
	monthlyRate := annualRatePct / 12 / 100
	invested := monthly * months

	maturity := invested
	if monthlyRate > 0 {
		maturity = monthly * (math.Pow(1+monthlyRate, months) - 1) / monthlyRate * (1 + monthlyRate)
	}

	return SIPResult{
		Invested: invested,
		Maturity: maturity,
		Gain:     maturity - invested,
	}, nil
}

type PayoffResult struct {
	Months        int     `json:"months"`
	TotalInterest float64 `json:"totalInterest"`
	TotalPaid     float64 `json:"totalPaid"`
}

// payoffCapMonths bounds the amortization loop; revolving balances that
// take longer than 30 years are reported at the cap rather than looping on.
const payoffCapMonths = 360

// CreditCardPayoff simulates paying a fixed monthly amount against a
// revolving balance. The payment must exceed the first month's interest,
// otherwise the balance never shrinks and ErrPaymentTooLow is returned.
func CreditCardPayoff(balance, annualRatePct, monthlyPayment float64) (PayoffResult, error) {
	if balance < 0 || annualRatePct < 0 {
		return PayoffResult{}, ErrNegativeInput
	}
	monthlyRate := annualRatePct / 12 / 100
	if monthlyPayment <= balance*monthlyRate {
		return PayoffResult{}, ErrPaymentTooLow
	}

	remaining := balance
	var result PayoffResult
	for remaining > 0 && result.Months < payoffCapMonths {
		interest := remaining * monthlyRate
		result.TotalInterest += interest
		remaining += interest - monthlyPayment
		result.Months++
		if remaining < 0 {
			// final month only needs the leftover balance
			result.TotalPaid += monthlyPayment + remaining
		} else {
			result.TotalPaid += monthlyPayment
		}
	}
	return result, nil
}
