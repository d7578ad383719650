// Package finance holds the affordability formulas: amortization factor,
// home and car price solvers and emergency fund sizing. All functions are
// pure and return 0 for degenerate inputs instead of failing.
package finance

import (
	"math"

	"github.com/deeppockets-dev/deeppockets/internal/model"
)

// AmortizationFactor converts principal into a level monthly payment:
// r(1+r)^n / ((1+r)^n - 1). A zero rate yields 1/n; n <= 0 yields 0.
func AmortizationFactor(annualRatePct, years float64) float64 {
	n := years * 12
	if n <= 0 {
		return 0
	}
	r := annualRatePct / 100 / 12
	if r == 0 {
		return 1 / n
	}
	growth := math.Pow(1+r, n)
	return r * growth / (growth - 1)
}

// HomeInputs are the knobs of the home price solver. Percentages are 0..100.
type HomeInputs struct {
	MonthlyBudget   float64
	DownPaymentPct  float64
	InterestRatePct float64
	PropertyTaxPct  float64
	LoanTermYears   float64
}

// HomeDefaults are substituted for missing home assumptions.
var HomeDefaults = map[string]float64{
	model.TitleDownPayment:  20,
	model.TitleInterestRate: 7.0,
	model.TitlePropertyTax:  1.1,
	model.TitleLoanTerm:     30,
}

// HomeInputsFor reads the home assumptions from a category.
func HomeInputsFor(cat model.BudgetCategory, monthlyIncome float64) HomeInputs {
	return HomeInputs{
		MonthlyBudget:   monthlyIncome * cat.AllocationPercentage,
		DownPaymentPct:  cat.AssumptionValue(model.TitleDownPayment, HomeDefaults[model.TitleDownPayment]),
		InterestRatePct: cat.AssumptionValue(model.TitleInterestRate, HomeDefaults[model.TitleInterestRate]),
		PropertyTaxPct:  cat.AssumptionValue(model.TitlePropertyTax, HomeDefaults[model.TitlePropertyTax]),
		LoanTermYears:   cat.AssumptionValue(model.TitleLoanTerm, HomeDefaults[model.TitleLoanTerm]),
	}
}

// HomePrice solves for the largest home price whose mortgage payment plus
// monthly property tax fits in MonthlyBudget. A down payment of 100% or more
// leaves nothing to finance and yields 0.
func HomePrice(in HomeInputs) float64 {
	financed := 1 - in.DownPaymentPct/100
	if in.LoanTermYears*12 <= 0 || financed <= 0 || in.MonthlyBudget <= 0 {
		return 0
	}
	divisor := homeDivisor(in)
	if divisor <= 0 {
		return 0
	}
	return in.MonthlyBudget / divisor
}

// HomePayment is the monthly cost (mortgage plus property tax) of a home at
// price under the same assumptions. It inverts HomePrice.
func HomePayment(price float64, in HomeInputs) float64 {
	if price <= 0 {
		return 0
	}
	return price * homeDivisor(in)
}

func homeDivisor(in HomeInputs) float64 {
	factor := AmortizationFactor(in.InterestRatePct, in.LoanTermYears)
	financed := 1 - in.DownPaymentPct/100
	monthlyTax := in.PropertyTaxPct / 100 / 12
	return financed*factor + monthlyTax
}

// CarInputs are the knobs of the car price solver. Percentages are 0..100.
type CarInputs struct {
	MonthlyBudget   float64
	DownPaymentPct  float64
	InterestRatePct float64
	LoanTermYears   float64
}

// CarDefaults are substituted for missing car assumptions.
var CarDefaults = map[string]float64{
	model.TitleDownPayment:  20,
	model.TitleInterestRate: 5.0,
	model.TitleLoanTerm:     5,
}

// CarInputsFor reads the car assumptions from a category.
func CarInputsFor(cat model.BudgetCategory, monthlyIncome float64) CarInputs {
	return CarInputs{
		MonthlyBudget:   monthlyIncome * cat.AllocationPercentage,
		DownPaymentPct:  cat.AssumptionValue(model.TitleDownPayment, CarDefaults[model.TitleDownPayment]),
		InterestRatePct: cat.AssumptionValue(model.TitleInterestRate, CarDefaults[model.TitleInterestRate]),
		LoanTermYears:   cat.AssumptionValue(model.TitleLoanTerm, CarDefaults[model.TitleLoanTerm]),
	}
}

// CarPrice solves for the largest car price whose loan payment fits in
// MonthlyBudget.
func CarPrice(in CarInputs) float64 {
	financed := 1 - in.DownPaymentPct/100
	if in.LoanTermYears*12 <= 0 || financed <= 0 || in.MonthlyBudget <= 0 {
		return 0
	}
	divisor := AmortizationFactor(in.InterestRatePct, in.LoanTermYears) * financed
	if divisor <= 0 {
		return 0
	}
	return in.MonthlyBudget / divisor
}

// CarPayment is the monthly loan payment for a car at price. It inverts CarPrice.
func CarPayment(price float64, in CarInputs) float64 {
	if price <= 0 {
		return 0
	}
	financed := 1 - in.DownPaymentPct/100
	return price * financed * AmortizationFactor(in.InterestRatePct, in.LoanTermYears)
}

// EmergencyDefaults are substituted for missing emergency fund assumptions.
var EmergencyDefaults = map[string]float64{
	model.TitleMonthsOfSalary: 6,
}

// EmergencyFund sizes a cash reserve as months of gross monthly income.
func EmergencyFund(monthlyIncome, months float64) float64 {
	if monthlyIncome <= 0 || months <= 0 {
		return 0
	}
	return monthlyIncome * months
}
