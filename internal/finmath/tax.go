package finmath

import (
	"errors"
	"fmt"
	"math"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

var ErrUnknownRegime = errors.New("unknown tax regime")

// Slab is one progressive tax bracket. UpTo <= 0 means the slab is
// unbounded above.
type Slab struct {
	UpTo    float64 `yaml:"upTo" json:"upTo"`
	RatePct float64 `yaml:"ratePct" json:"ratePct"`
}

// DeductionCaps limits how much of each declared deduction counts
// toward taxable income.
type DeductionCaps struct {
	Section80C float64 `yaml:"section80C" json:"section80C"`
	Section80D float64 `yaml:"section80D" json:"section80D"`
	NPS        float64 `yaml:"nps" json:"nps"`
}

// Regime is a complete slab table. Tables are data, not code, so the
// yearly budget updates only touch configs/taxregimes.yaml.
type Regime struct {
	ID                string        `yaml:"id" json:"id"`
	Name              string        `yaml:"name" json:"name"`
	StandardDeduction float64       `yaml:"standardDeduction" json:"standardDeduction"`
	AllowsDeductions  bool          `yaml:"allowsDeductions" json:"allowsDeductions"`
	Caps              DeductionCaps `yaml:"caps" json:"caps"`
	Slabs             []Slab        `yaml:"slabs" json:"slabs"`
}

// Deductions are the amounts a taxpayer declares. They only reduce
// taxable income under regimes with AllowsDeductions set.
type Deductions struct {
	Section80C float64 `json:"section80C"`
	Section80D float64 `json:"section80D"`
	NPS        float64 `json:"nps"`
}

// TaxableIncome applies the regime's capped deductions to gross income.
func (r Regime) TaxableIncome(gross float64, d Deductions) float64 {
	taxable := gross - r.StandardDeduction
	if r.AllowsDeductions {
		taxable -= math.Min(d.Section80C, r.Caps.Section80C)
		taxable -= math.Min(d.Section80D, r.Caps.Section80D)
		taxable -= math.Min(d.NPS, r.Caps.NPS)
	}
	return math.Max(0, taxable)
}

// Tax computes the progressive tax owed on gross income under the regime.
func (r Regime) Tax(gross float64, d Deductions) float64 {
	taxable := r.TaxableIncome(gross, d)
	var tax float64
	lower := 0.0
	for _, slab := range r.Slabs {
		upper := slab.UpTo
		if upper <= 0 {
			upper = math.Inf(1)
		}
		if taxable <= lower {
			break
		}
		portion := math.Min(taxable, upper) - lower
		tax += portion * slab.RatePct / 100
		lower = upper
	}
	return tax
}

// RegimeTax is one regime's outcome within a comparison.
type RegimeTax struct {
	RegimeID      string  `json:"regimeId"`
	RegimeName    string  `json:"regimeName"`
	TaxableIncome float64 `json:"taxableIncome"`
	Tax           float64 `json:"tax"`
}

// Comparison ranks every configured regime for one taxpayer.
type Comparison struct {
	Results []RegimeTax `json:"results"`
	BestID  string      `json:"bestId"`
	Savings float64     `json:"savings"`
}

// RegimeSet is an ordered list of regimes. On equal tax the regime
// listed later wins the comparison, which keeps the default tables
// recommending the new regime on ties.
type RegimeSet struct {
	Regimes []Regime `yaml:"regimes"`
}

func (s RegimeSet) Lookup(id string) (Regime, error) {
	for _, r := range s.Regimes {
		if r.ID == id {
			return r, nil
		}
	}
	return Regime{}, fmt.Errorf("%w: %s", ErrUnknownRegime, id)
}

func (s RegimeSet) Validate() error {
	if len(s.Regimes) == 0 {
		return errors.New("regime set is empty")
	}
	seen := make(map[string]bool)
	for _, r := range s.Regimes {
		if r.ID == "" {
			return errors.New("regime with empty id")
		}
		if seen[r.ID] {
			return fmt.Errorf("duplicate regime id %s", r.ID)
		}
		seen[r.ID] = true
		if len(r.Slabs) == 0 {
			return fmt.Errorf("regime %s has no slabs", r.ID)
		}
		prev := 0.0
		for i, slab := range r.Slabs {
			if slab.RatePct < 0 {
				return fmt.Errorf("regime %s slab %d has negative rate", r.ID, i)
			}
			if slab.UpTo <= 0 {
				if i != len(r.Slabs)-1 {
					return fmt.Errorf("regime %s has unbounded slab before the last", r.ID)
				}
				continue
			}
			if slab.UpTo <= prev {
				return fmt.Errorf("regime %s slab bounds not increasing", r.ID)
			}
			prev = slab.UpTo
		}
	}
	return nil
}

// Compare evaluates every regime and picks the cheapest; ties go to the
// later-listed regime.
func (s RegimeSet) Compare(gross float64, d Deductions) Comparison {
	cmp := Comparison{}
	var worst float64
	for i, r := range s.Regimes {
		rt := RegimeTax{
			RegimeID:      r.ID,
			RegimeName:    r.Name,
			TaxableIncome: r.TaxableIncome(gross, d),
			Tax:           r.Tax(gross, d),
		}
		cmp.Results = append(cmp.Results, rt)
		if i == 0 || rt.Tax <= bestTax(cmp) {
			cmp.BestID = rt.RegimeID
		}
		if rt.Tax > worst {
			worst = rt.Tax
		}
	}
	cmp.Savings = worst - bestTax(cmp)
	return cmp
}

func bestTax(cmp Comparison) float64 {
	for _, rt := range cmp.Results {
		if rt.RegimeID == cmp.BestID {
			return rt.Tax
		}
	}
	return 0
}

// TaxTables holds the active regime set and supports atomic replacement
// when the backing config file changes on disk.
type TaxTables struct {
	mu  sync.RWMutex
	set RegimeSet
}

func NewTaxTables(set RegimeSet) (*TaxTables, error) {
	if err := set.Validate(); err != nil {
		return nil, err
	}
	return &TaxTables{set: set}, nil
}

// LoadTaxTables reads a regime set from a yaml file.
func LoadTaxTables(path string) (*TaxTables, error) {
	set, err := loadRegimeSet(path)
	if err != nil {
		return nil, err
	}
	return NewTaxTables(set)
}

func loadRegimeSet(path string) (RegimeSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RegimeSet{}, fmt.Errorf("read tax regimes: %w", err)
	}
	var set RegimeSet
	if err := yaml.Unmarshal(data, &set); err != nil {
		return RegimeSet{}, fmt.Errorf("parse tax regimes: %w", err)
	}
	return set, nil
}

// Reload replaces the active set from the given file. The previous set
// stays active when the new file fails to parse or validate.
func (t *TaxTables) Reload(path string) error {
	set, err := loadRegimeSet(path)
	if err != nil {
		return err
	}
	if err := set.Validate(); err != nil {
		return err
	}
	t.mu.Lock()
	t.set = set
	t.mu.Unlock()
	return nil
}

func (t *TaxTables) Set() RegimeSet {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.set
}

func (t *TaxTables) Compare(gross float64, d Deductions) Comparison {
	return t.Set().Compare(gross, d)
}

func (t *TaxTables) TaxUnderRegime(id string, gross float64, d Deductions) (RegimeTax, error) {
	r, err := t.Set().Lookup(id)
	if err != nil {
		return RegimeTax{}, err
	}
	return RegimeTax{
		RegimeID:      r.ID,
		RegimeName:    r.Name,
		TaxableIncome: r.TaxableIncome(gross, d),
		Tax:           r.Tax(gross, d),
	}, nil
}

// DefaultRegimeSet mirrors configs/taxregimes.yaml so the library works
// without the config file, e.g. in lessons and tests.
func DefaultRegimeSet() RegimeSet {
	return RegimeSet{Regimes: []Regime{
		{
			ID:                "old",
			Name:              "Old Regime",
			StandardDeduction: 50000,
			AllowsDeductions:  true,
			Caps:              DeductionCaps{Section80C: 150000, Section80D: 100000, NPS: 50000},
			Slabs: []Slab{
				{UpTo: 250000, RatePct: 0},
				{UpTo: 500000, RatePct: 5},
				{UpTo: 1000000, RatePct: 20},
				{UpTo: 0, RatePct: 30},
			},
		},
		{
			ID:                "new",
			Name:              "New Regime",
			StandardDeduction: 0,
			AllowsDeductions:  false,
			Slabs: []Slab{
				{UpTo: 300000, RatePct: 0},
				{UpTo: 600000, RatePct: 5},
				{UpTo: 900000, RatePct: 10},
				{UpTo: 1200000, RatePct: 15},
				{UpTo: 1500000, RatePct: 20},
				{UpTo: 0, RatePct: 30},
			},
		},
	}}
}
