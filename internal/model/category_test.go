package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func homeCategory() BudgetCategory {
	return BudgetCategory{
		ID:                   "home",
		Name:                 "Home",
		AllocationPercentage: 0.28,
		DisplayType:          DisplayTotal,
		Type:                 CategoryTypeHousing,
		Assumptions: []Assumption{
			{Title: TitleDownPayment, Value: 20, Default: 20, Input: PercentageSlider{Step: 1}},
			{Title: TitleInterestRate, Value: 7, Default: 7, Input: PercentageSlider{Step: 0.125}},
		},
	}
}

func TestCategoryAssumptionLookup(t *testing.T) {
	c := homeCategory()

	a, ok := c.Assumption(TitleInterestRate)
	require.True(t, ok)
	assert.InDelta(t, 7.0, a.Value, 1e-12)

	_, ok = c.Assumption(TitleLoanTerm)
	assert.False(t, ok)

	assert.InDelta(t, 30.0, c.AssumptionValue(TitleLoanTerm, 30), 1e-12)
	assert.InDelta(t, 20.0, c.AssumptionValue(TitleDownPayment, 99), 1e-12)
}

func TestCategoryClone(t *testing.T) {
	goal := 50000.0
	c := homeCategory()
	c.SavingsGoal = &goal

	clone := c.Clone()
	clone.Assumptions[0].Value = 50
	*clone.SavingsGoal = 1

	assert.InDelta(t, 20.0, c.Assumptions[0].Value, 1e-12)
	assert.InDelta(t, 50000.0, *c.SavingsGoal, 1e-12)
}

func TestCategoryValidate(t *testing.T) {
	assert.Empty(t, homeCategory().Validate())

	bad := homeCategory()
	bad.ID = ""
	bad.AllocationPercentage = 1.5
	bad.DisplayType = "weekly"
	bad.Type = "crypto"
	bad.Assumptions = append(bad.Assumptions, Assumption{Title: TitleDownPayment, Value: -1})

	errs := bad.Validate()
	fields := make(map[string]int)
	for _, e := range errs {
		fields[e.Field]++
	}
	assert.Equal(t, 1, fields["id"])
	assert.Equal(t, 1, fields["allocation_percentage"])
	assert.Equal(t, 1, fields["display_type"])
	assert.Equal(t, 1, fields["type"])
	assert.Equal(t, 2, fields["assumptions"], "duplicate title and negative value")
	assert.Contains(t, errs[0].Error(), "category")
}

func TestCategoryTypeValid(t *testing.T) {
	for _, ct := range CategoryTypes {
		assert.True(t, ct.Valid(), "%s should be valid", ct)
	}
	assert.False(t, CategoryType("unknown").Valid())
}
