package model

import "fmt"

// CategoryType groups budget categories for filtering.
type CategoryType string

const (
	CategoryTypeHousing        CategoryType = "housing"
	CategoryTypeTransportation CategoryType = "transportation"
	CategoryTypeSavings        CategoryType = "savings"
	CategoryTypeDebt           CategoryType = "debt"
	CategoryTypeUtilities      CategoryType = "utilities"
	CategoryTypeFood           CategoryType = "food"
	CategoryTypeEntertainment  CategoryType = "entertainment"
	CategoryTypeInsurance      CategoryType = "insurance"
	CategoryTypeEducation      CategoryType = "education"
	CategoryTypePersonal       CategoryType = "personal"
	CategoryTypeHealth         CategoryType = "health"
	CategoryTypeFamily         CategoryType = "family"
	CategoryTypeOther          CategoryType = "other"
)

// CategoryTypes lists every category type in display order.
var CategoryTypes = []CategoryType{
	CategoryTypeHousing,
	CategoryTypeTransportation,
	CategoryTypeSavings,
	CategoryTypeDebt,
	CategoryTypeUtilities,
	CategoryTypeFood,
	CategoryTypeEntertainment,
	CategoryTypeInsurance,
	CategoryTypeEducation,
	CategoryTypePersonal,
	CategoryTypeHealth,
	CategoryTypeFamily,
	CategoryTypeOther,
}

// Valid reports whether t is a known category type.
func (t CategoryType) Valid() bool {
	for _, known := range CategoryTypes {
		if t == known {
			return true
		}
	}
	return false
}

// DisplayType says whether a recommended amount is per month or a total.
type DisplayType string

const (
	DisplayMonthly DisplayType = "monthly"
	DisplayTotal   DisplayType = "total"
)

// BudgetCategory is a seeded category template plus its derived recommendation.
type BudgetCategory struct {
	ID                   string
	Name                 string
	Emoji                string
	Description          string
	AllocationPercentage float64 // fraction of monthly income, 0..1
	DisplayType          DisplayType
	Assumptions          []Assumption
	Type                 CategoryType
	Priority             int // lower = more essential

	// Goal fields, set only for categories with goal semantics.
	SavingsGoal      *float64
	SavingsTimeline  *int // months
	DebtAmount       *float64
	DebtInterestRate *float64

	RecommendedAmount float64
}

// Assumption returns the assumption with the given title.
func (c BudgetCategory) Assumption(title string) (Assumption, bool) {
	for _, a := range c.Assumptions {
		if a.Title == title {
			return a, true
		}
	}
	return Assumption{}, false
}

// AssumptionValue returns the value for title, or fallback when absent.
func (c BudgetCategory) AssumptionValue(title string, fallback float64) float64 {
	if a, ok := c.Assumption(title); ok {
		return a.Value
	}
	return fallback
}

// Clone returns a deep copy so callers cannot mutate catalog state.
func (c BudgetCategory) Clone() BudgetCategory {
	out := c
	if c.Assumptions != nil {
		out.Assumptions = make([]Assumption, len(c.Assumptions))
		copy(out.Assumptions, c.Assumptions)
	}
	out.SavingsGoal = cloneFloat(c.SavingsGoal)
	out.DebtAmount = cloneFloat(c.DebtAmount)
	out.DebtInterestRate = cloneFloat(c.DebtInterestRate)
	if c.SavingsTimeline != nil {
		v := *c.SavingsTimeline
		out.SavingsTimeline = &v
	}
	return out
}

func cloneFloat(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// ValidationError describes a single problem with a category template.
type ValidationError struct {
	CategoryID  string
	Field       string
	Description string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("category %q [%s]: %s", e.CategoryID, e.Field, e.Description)
}

// Validate checks the template invariants of a category.
func (c BudgetCategory) Validate() []ValidationError {
	var errs []ValidationError

	if c.ID == "" {
		errs = append(errs, ValidationError{CategoryID: c.ID, Field: "id", Description: "id must not be empty"})
	}
	if c.AllocationPercentage < 0 || c.AllocationPercentage > 1 {
		errs = append(errs, ValidationError{
			CategoryID:  c.ID,
			Field:       "allocation_percentage",
			Description: fmt.Sprintf("%g outside [0, 1]", c.AllocationPercentage),
		})
	}
	if c.DisplayType != DisplayMonthly && c.DisplayType != DisplayTotal {
		errs = append(errs, ValidationError{
			CategoryID:  c.ID,
			Field:       "display_type",
			Description: fmt.Sprintf("unknown display type %q", c.DisplayType),
		})
	}
	if !c.Type.Valid() {
		errs = append(errs, ValidationError{
			CategoryID:  c.ID,
			Field:       "type",
			Description: fmt.Sprintf("unknown category type %q", c.Type),
		})
	}

	seen := make(map[string]bool, len(c.Assumptions))
	for _, a := range c.Assumptions {
		if seen[a.Title] {
			errs = append(errs, ValidationError{
				CategoryID:  c.ID,
				Field:       "assumptions",
				Description: fmt.Sprintf("duplicate assumption title %q", a.Title),
			})
		}
		seen[a.Title] = true
		if a.Value < 0 || a.Default < 0 {
			errs = append(errs, ValidationError{
				CategoryID:  c.ID,
				Field:       "assumptions",
				Description: fmt.Sprintf("assumption %q must be non-negative", a.Title),
			})
		}
	}

	return errs
}
