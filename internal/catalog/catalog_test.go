package catalog

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deeppockets-dev/deeppockets/internal/model"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())
	assert.Equal(t, 39, c.Len())

	home, ok := c.Get("home")
	require.True(t, ok)
	assert.InDelta(t, 0.28, home.AllocationPercentage, 1e-12)
	assert.Equal(t, model.DisplayTotal, home.DisplayType)
	require.Len(t, home.Assumptions, 4)

	for _, id := range []string{"car", "emergency_savings", "house_downpayment", "groceries"} {
		assert.True(t, c.Exists(id), "expected %s", id)
	}

	// Every category type is represented.
	for _, ct := range model.CategoryTypes {
		assert.NotEmpty(t, c.ByType(ct), "no categories of type %s", ct)
	}
}

func TestDefaultCatalog_AllocationsAreNotAPartition(t *testing.T) {
	sum := 0.0
	for _, cat := range Default().All() {
		sum += cat.AllocationPercentage
	}
	assert.Greater(t, sum, 1.0)
}

func TestAllPreservesDeclarationOrder(t *testing.T) {
	c := Default()
	ids := c.IDs()
	all := c.All()
	require.Len(t, all, len(ids))
	for i := range all {
		assert.Equal(t, ids[i], all[i].ID)
	}
	assert.Equal(t, "home", ids[0])
	assert.Equal(t, "miscellaneous", ids[len(ids)-1])
}

func TestNew_IgnoresDuplicateIDs(t *testing.T) {
	c := New([]model.BudgetCategory{
		{ID: "a", Name: "First", Type: model.CategoryTypeOther, DisplayType: model.DisplayMonthly},
		{ID: "a", Name: "Second", Type: model.CategoryTypeOther, DisplayType: model.DisplayMonthly},
	})
	assert.Equal(t, 1, c.Len())
	got, _ := c.Get("a")
	assert.Equal(t, "First", got.Name)
}

func TestGetReturnsCopy(t *testing.T) {
	c := Default()
	home, _ := c.Get("home")
	home.Assumptions[0].Value = 99
	home.RecommendedAmount = 1

	again, _ := c.Get("home")
	assert.InDelta(t, 20.0, again.Assumptions[0].Value, 1e-12)
	assert.Zero(t, again.RecommendedAmount)
}

func TestSetRecommendedAmount(t *testing.T) {
	c := Default()
	c.SetRecommendedAmount("groceries", 600)

	got, ok := c.Get("groceries")
	require.True(t, ok)
	assert.InDelta(t, 600.0, got.RecommendedAmount, 1e-12)

	// Unknown ids are ignored.
	c.SetRecommendedAmount("yacht", 1e6)
	assert.False(t, c.Exists("yacht"))
}

func TestEditAssumption(t *testing.T) {
	c := Default()

	assert.True(t, c.EditAssumption("home", model.TitleInterestRate, "6.5"))
	home, _ := c.Get("home")
	rate, _ := home.Assumption(model.TitleInterestRate)
	assert.InDelta(t, 6.5, rate.Value, 1e-12)

	// Year slider clamps to its bounds.
	assert.True(t, c.EditAssumption("car", model.TitleLoanTerm, "12"))
	car, _ := c.Get("car")
	assert.InDelta(t, 7.0, car.AssumptionValue(model.TitleLoanTerm, 0), 1e-12)

	assert.False(t, c.EditAssumption("yacht", model.TitleInterestRate, "3"))
	assert.False(t, c.EditAssumption("home", "Mood", "3"))
}

func TestEditAssumption_ParseFailureUsesDefault(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)
	logger.SetLevel(logrus.DebugLevel)

	c := Default(WithLogger(logger))
	require.True(t, c.EditAssumption("home", model.TitleDownPayment, "35"))
	assert.False(t, c.EditAssumption("home", model.TitleDownPayment, "thirty"))

	home, _ := c.Get("home")
	assert.InDelta(t, 20.0, home.AssumptionValue(model.TitleDownPayment, 0), 1e-12)
	assert.Contains(t, buf.String(), "assumption did not parse")
	assert.Contains(t, buf.String(), "category=home")
}

func TestValidate_ReportsBadTemplates(t *testing.T) {
	c := New([]model.BudgetCategory{
		{ID: "bad", AllocationPercentage: 2, Type: model.CategoryTypeOther, DisplayType: model.DisplayMonthly},
	})
	err := c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "allocation_percentage")
}
