package finmath

import (
	"errors"
	"math"
	"testing"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestSimpleInterest(t *testing.T) {
	got := SimpleInterest(10000, 5, 2)
	if got != 1000 {
		t.Errorf("SimpleInterest(10000, 5, 2) = %v, want 1000", got)
	}
	if SimpleInterest(0, 5, 2) != 0 {
		t.Error("zero principal should earn zero interest")
	}
}

func TestCompoundInterest(t *testing.T) {
	res, err := CompoundInterest(10000, 10, 1, 1)
	if err != nil {
		t.Fatalf("CompoundInterest() error = %v", err)
	}
	if !almostEqual(res.Amount, 11000, 0.01) {
		t.Errorf("annual compounding amount = %v, want 11000", res.Amount)
	}
	if !almostEqual(res.Interest, res.Amount-10000, 1e-9) {
		t.Errorf("interest = %v, want amount - principal", res.Interest)
	}
}

func TestCompoundInterest_FrequencyIncreasesYield(t *testing.T) {
	annual, err := CompoundInterest(10000, 8, 5, 1)
	if err != nil {
		t.Fatalf("annual: %v", err)
	}
	quarterly, err := CompoundInterest(10000, 8, 5, 4)
	if err != nil {
		t.Fatalf("quarterly: %v", err)
	}
	if quarterly.Amount <= annual.Amount {
		t.Errorf("quarterly %v should exceed annual %v", quarterly.Amount, annual.Amount)
	}
}

func TestCompoundInterest_InvalidFrequency(t *testing.T) {
	for _, n := range []int{0, -1} {
		if _, err := CompoundInterest(10000, 8, 5, n); !errors.Is(err, ErrInvalidCompounding) {
			t.Errorf("compoundsPerYear=%d: error = %v, want ErrInvalidCompounding", n, err)
		}
	}
}

func TestEMI(t *testing.T) {
	res, err := EMI(100000, 12, 1)
	if err != nil {
		t.Fatalf("EMI() error = %v", err)
	}
	if !almostEqual(res.Monthly, 8884.88, 0.01) {
		t.Errorf("monthly = %v, want 8884.88", res.Monthly)
	}
	if !almostEqual(res.TotalPayment, res.Monthly*12, 1e-6) {
		t.Errorf("total payment = %v, want monthly * 12", res.TotalPayment)
	}
	if !almostEqual(res.TotalInterest, res.TotalPayment-100000, 1e-6) {
		t.Errorf("total interest = %v, want total - principal", res.TotalInterest)
	}
}

func TestEMI_ZeroRate(t *testing.T) {
	res, err := EMI(120000, 0, 1)
	if err != nil {
		t.Fatalf("EMI() error = %v", err)
	}
	if !almostEqual(res.Monthly, 10000, 1e-9) {
		t.Errorf("zero-rate monthly = %v, want 10000", res.Monthly)
	}
	if res.TotalInterest != 0 {
		t.Errorf("zero-rate total interest = %v, want 0", res.TotalInterest)
	}
}

func TestEMI_InvalidTenure(t *testing.T) {
	if _, err := EMI(100000, 12, 0); !errors.Is(err, ErrInvalidTenure) {
		t.Errorf("error = %v, want ErrInvalidTenure", err)
	}
}

func TestSIPFutureValue(t *testing.T) {
	res, err := SIPFutureValue(5000, 12, 10)
	if err != nil {
		t.Fatalf("SIPFutureValue() error = %v", err)
	}
	if res.Invested != 600000 {
		t.Errorf("invested = %v, want 600000", res.Invested)
	}
	if res.Maturity <= res.Invested {
		t.Errorf("maturity %v should exceed invested %v at positive rate", res.Maturity, res.Invested)
	}
	if !almostEqual(res.Gain, res.Maturity-res.Invested, 1e-6) {
		t.Errorf("gain = %v, want maturity - invested", res.Gain)
	}
}

func TestSIPFutureValue_ZeroRate(t *testing.T) {
	res, err := SIPFutureValue(2000, 0, 5)
	if err != nil {
		t.Fatalf("SIPFutureValue() error = %v", err)
	}
	if res.Maturity != res.Invested {
		t.Errorf("zero-rate maturity = %v, want invested %v", res.Maturity, res.Invested)
	}
	if res.Gain != 0 {
		t.Errorf("zero-rate gain = %v, want 0", res.Gain)
	}
}

func TestSIPFutureValue_RateMonotonic(t *testing.T) {
	low, err := SIPFutureValue(5000, 8, 10)
	if err != nil {
		t.Fatalf("low: %v", err)
	}
	high, err := SIPFutureValue(5000, 12, 10)
	if err != nil {
		t.Fatalf("high: %v", err)
	}
	if high.Maturity <= low.Maturity {
		t.Errorf("maturity at 12%% (%v) should exceed 8%% (%v)", high.Maturity, low.Maturity)
	}
}

func TestCreditCardPayoff(t *testing.T) {
	res, err := CreditCardPayoff(10000, 36, 1000)
	if err != nil {
		t.Fatalf("CreditCardPayoff() error = %v", err)
	}
	if res.Months <= 10 {
		t.Errorf("months = %d, interest should stretch payoff past the no-interest floor", res.Months)
	}
	if res.Months >= payoffCapMonths {
		t.Errorf("months = %d, should finish well before the cap", res.Months)
	}
	// every rupee paid is either principal or interest
	if !almostEqual(res.TotalPaid, 10000+res.TotalInterest, 0.01) {
		t.Errorf("totalPaid = %v, want balance + totalInterest = %v", res.TotalPaid, 10000+res.TotalInterest)
	}
}

func TestCreditCardPayoff_PaymentTooLow(t *testing.T) {
	// 36% annual on 10000 is 300/month interest
	if _, err := CreditCardPayoff(10000, 36, 300); !errors.Is(err, ErrPaymentTooLow) {
		t.Errorf("error = %v, want ErrPaymentTooLow", err)
	}
}

func TestCreditCardPayoff_CapsAtThirtyYears(t *testing.T) {
	res, err := CreditCardPayoff(1000000, 36, 30001)
	if err != nil {
		t.Fatalf("CreditCardPayoff() error = %v", err)
	}
	if res.Months > payoffCapMonths {
		t.Errorf("months = %d, must not exceed %d", res.Months, payoffCapMonths)
	}
}
