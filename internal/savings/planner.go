// Package savings answers "can I save this much by that date?" for a
// budget category.
package savings

import (
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/deeppockets-dev/deeppockets/internal/model"
)

// Analysis is the outcome of a savings goal check.
type Analysis struct {
	CanSave                   bool
	Summary                   string
	RequiredMonthlySavings    float64
	RecommendedMonthlySavings float64
	MonthsToGoal              int
	MonthsAtRecommended       int // 0 when nothing can be set aside
	Recommendations           []string
}

var feasibleTips = []string{
	"Set up an automatic transfer on payday so the savings happen first.",
	"Keep the money in a high-yield savings account until you need it.",
	"Review progress monthly and bank any windfalls toward the goal.",
}

var infeasibleTips = []string{
	"Push the target date back to lower the monthly amount.",
	"Lower the target amount or split the goal into smaller milestones.",
	"Trim discretionary categories and redirect the difference here.",
	"Look for ways to raise income, such as a side project or a raise.",
}

// Planner runs savings analyses against a clock.
type Planner struct {
	now func() time.Time
}

// Option configures a Planner.
type Option func(*Planner)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(p *Planner) { p.now = now }
}

// NewPlanner creates a Planner using the wall clock unless overridden.
func NewPlanner(opts ...Option) *Planner {
	p := &Planner{now: time.Now}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Analyze compares the savings a goal requires with what the category's
// allocation recommends. A target date on or before today counts as one month.
// Negative or non-finite amounts are treated as zero.
func (p *Planner) Analyze(cat model.BudgetCategory, targetAmount float64, targetDate time.Time, monthlyIncome float64) Analysis {
	monthlyIncome = nonNegative(monthlyIncome)
	targetAmount = nonNegative(targetAmount)

	months := MonthsBetween(p.now(), targetDate)
	required := targetAmount / float64(months)
	recommended := monthlyIncome * cat.AllocationPercentage
	canSave := required <= recommended

	a := Analysis{
		CanSave:                   canSave,
		RequiredMonthlySavings:    required,
		RecommendedMonthlySavings: recommended,
		MonthsToGoal:              months,
		MonthsAtRecommended:       ProjectedMonths(targetAmount, recommended),
	}

	if canSave {
		a.Summary = fmt.Sprintf("You can save $%s by %s by setting aside $%s per month from %s.",
			money(targetAmount), targetDate.Format("January 2006"), money(required), cat.Name)
		a.Recommendations = append([]string(nil), feasibleTips...)
	} else {
		a.Summary = fmt.Sprintf("Saving $%s by %s needs $%s per month, but %s allows $%s.",
			money(targetAmount), targetDate.Format("January 2006"), money(required), cat.Name, money(recommended))
		a.Recommendations = append([]string(nil), infeasibleTips...)
	}
	return a
}

// MonthsBetween counts whole calendar months from from to to, floored,
// with a minimum of 1.
func MonthsBetween(from, to time.Time) int {
	to = to.In(from.Location())
	months := (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
	if to.Day() < from.Day() {
		months--
	}
	if months < 1 {
		return 1
	}
	return months
}

// ProjectedMonths is how long saving monthlySavings takes to reach target,
// rounded up. It returns 0 when monthlySavings is not positive.
func ProjectedMonths(target, monthlySavings float64) int {
	if monthlySavings <= 0 {
		return 0
	}
	if target <= 0 {
		return 0
	}
	return int(math.Ceil(target / monthlySavings))
}

func money(v float64) string {
	return decimal.NewFromFloat(nonNegative(v)).StringFixed(2)
}

// nonNegative maps negative, NaN and infinite amounts to 0.
func nonNegative(v float64) float64 {
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
