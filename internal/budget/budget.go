// Package budget holds a user budget built from promoted recommendations.
package budget

import (
	"math"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/deeppockets-dev/deeppockets/internal/model"
)

// Line is one promoted category in a budget.
type Line struct {
	ID          uuid.UUID
	CategoryID  string
	Name        string
	DisplayType model.DisplayType
	Amount      decimal.Decimal // unrounded; cents only when written out
}

// Budget is a monthly income with the lines promoted into it.
type Budget struct {
	Income decimal.Decimal
	Lines  []Line
}

// New creates an empty budget for a monthly income. Negative or non-finite
// income becomes zero.
func New(monthlyIncome float64) *Budget {
	return &Budget{Income: amount(monthlyIncome)}
}

func amount(v float64) decimal.Decimal {
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(v)
}

// Promote adds a category's current recommendation. Promoting the same
// category again replaces its line and keeps the line ID.
func (b *Budget) Promote(cat model.BudgetCategory) Line {
	line := Line{
		ID:          uuid.New(),
		CategoryID:  cat.ID,
		Name:        cat.Name,
		DisplayType: cat.DisplayType,
		Amount:      amount(cat.RecommendedAmount),
	}
	for i, existing := range b.Lines {
		if existing.CategoryID == cat.ID {
			line.ID = existing.ID
			b.Lines[i] = line
			return line
		}
	}
	b.Lines = append(b.Lines, line)
	return line
}

// Remove drops the line for a category id. Unknown ids are a no-op.
func (b *Budget) Remove(categoryID string) {
	for i, l := range b.Lines {
		if l.CategoryID == categoryID {
			b.Lines = append(b.Lines[:i], b.Lines[i+1:]...)
			return
		}
	}
}

// MonthlyTotal sums the monthly lines. Total lines are one-off figures and
// do not count against monthly income.
func (b *Budget) MonthlyTotal() decimal.Decimal {
	total := decimal.Zero
	for _, l := range b.Lines {
		if l.DisplayType == model.DisplayMonthly {
			total = total.Add(l.Amount)
		}
	}
	return total
}

// Remaining is income minus the monthly total; negative when overallocated.
func (b *Budget) Remaining() decimal.Decimal {
	return b.Income.Sub(b.MonthlyTotal())
}

// Overallocated reports whether monthly lines exceed income.
func (b *Budget) Overallocated() bool {
	return b.Remaining().IsNegative()
}
