package engine

import (
	"github.com/deeppockets-dev/deeppockets/internal/finance"
	"github.com/deeppockets-dev/deeppockets/internal/model"
)

// Formula computes a category's recommended amount from a non-negative
// monthly income. Formulas never fail; degenerate inputs yield 0.
type Formula func(cat model.BudgetCategory, monthlyIncome float64) float64

// Registry maps category ids to special-case formulas.
type Registry struct {
	formulas map[string]Formula
}

// NewRegistry creates an empty formula registry.
func NewRegistry() *Registry {
	return &Registry{formulas: make(map[string]Formula)}
}

// Register binds a formula to a category id. Panics on duplicate id.
func (r *Registry) Register(id string, f Formula) {
	if _, ok := r.formulas[id]; ok {
		panic("duplicate formula for category: " + id)
	}
	r.formulas[id] = f
}

// Get returns the formula for id.
func (r *Registry) Get(id string) (Formula, bool) {
	f, ok := r.formulas[id]
	return f, ok
}

// DefaultRegistry returns a registry with the built-in formulas.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register("home", HomeAffordability)
	r.Register("house", HomeAffordability)
	r.Register("car", CarAffordability)
	r.Register("emergency_savings", EmergencyFund)
	return r
}

// HomeAffordability is the maximum home price for the category's budget.
func HomeAffordability(cat model.BudgetCategory, monthlyIncome float64) float64 {
	return finance.HomePrice(finance.HomeInputsFor(cat, monthlyIncome))
}

// CarAffordability is the maximum car price for the category's budget.
func CarAffordability(cat model.BudgetCategory, monthlyIncome float64) float64 {
	return finance.CarPrice(finance.CarInputsFor(cat, monthlyIncome))
}

// EmergencyFund is monthly income times the "Months of Salary" assumption.
func EmergencyFund(cat model.BudgetCategory, monthlyIncome float64) float64 {
	months := cat.AssumptionValue(model.TitleMonthsOfSalary, finance.EmergencyDefaults[model.TitleMonthsOfSalary])
	return finance.EmergencyFund(monthlyIncome, months)
}
