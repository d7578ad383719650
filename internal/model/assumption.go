package model

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Assumption titles used by the built-in formulas.
const (
	TitleDownPayment    = "Down Payment"
	TitleInterestRate   = "Interest Rate"
	TitlePropertyTax    = "Property Tax"
	TitleLoanTerm       = "Loan Term"
	TitleMonthsOfSalary = "Months of Salary"
)

// ErrNegativeValue is returned by ParseValue for values below zero.
var ErrNegativeValue = errors.New("value must not be negative")

// Assumption is a user-tunable numeric input attached to a category.
// Value is always parsed and clamped; raw text never reaches the formulas.
type Assumption struct {
	Title       string
	Value       float64
	Default     float64 // substituted when an edit does not parse
	Input       InputType
	Description string
}

// ParseValue parses user-entered text into a non-negative number.
// Surrounding whitespace, a trailing "%" and thousands separators are ignored.
func ParseValue(text string) (float64, error) {
	s := strings.TrimSpace(text)
	s = strings.TrimSpace(strings.TrimSuffix(s, "%"))
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0, errors.New("empty value")
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("parsing %q: %w", text, err)
	}
	if d.IsNegative() {
		return 0, fmt.Errorf("parsing %q: %w", text, ErrNegativeValue)
	}
	return d.InexactFloat64(), nil
}

// Edit applies user text to the assumption. A value that does not parse
// falls back to Default and ok is false.
func (a Assumption) Edit(text string) (updated Assumption, ok bool) {
	v, err := ParseValue(text)
	if err != nil {
		a.Value = a.Default
		return a, false
	}
	a.Value = a.clamp(v)
	return a, true
}

func (a Assumption) clamp(v float64) float64 {
	if a.Input == nil {
		return TextField{}.Clamp(v)
	}
	return a.Input.Clamp(v)
}

// InputKind names the widget family for an assumption.
type InputKind string

const (
	InputPercentageSlider       InputKind = "percentage_slider"
	InputYearSlider             InputKind = "year_slider"
	InputTextField              InputKind = "text_field"
	InputPercentageDistribution InputKind = "percentage_distribution"
)

// InputType drives the UI widget and the valid numeric range of an assumption.
type InputType interface {
	Kind() InputKind
	Clamp(v float64) float64
}

// PercentageSlider is a 0..100 slider snapping to Step.
type PercentageSlider struct {
	Step float64
}

func (PercentageSlider) Kind() InputKind { return InputPercentageSlider }

func (s PercentageSlider) Clamp(v float64) float64 {
	v = clampRange(v, 0, 100)
	if s.Step > 0 {
		v = clampRange(math.Round(v/s.Step)*s.Step, 0, 100)
	}
	return v
}

// YearSlider selects a whole number of years between Min and Max.
type YearSlider struct {
	Min int
	Max int
}

func (YearSlider) Kind() InputKind { return InputYearSlider }

func (s YearSlider) Clamp(v float64) float64 {
	return clampRange(math.Round(v), float64(s.Min), float64(s.Max))
}

// TextField is free numeric entry.
type TextField struct{}

func (TextField) Kind() InputKind { return InputTextField }

func (TextField) Clamp(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	return v
}

// PercentageDistribution splits 100% across sub-allocations.
type PercentageDistribution struct{}

func (PercentageDistribution) Kind() InputKind { return InputPercentageDistribution }

func (PercentageDistribution) Clamp(v float64) float64 {
	return clampRange(v, 0, 100)
}

func clampRange(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
