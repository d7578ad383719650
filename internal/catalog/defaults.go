package catalog

import "github.com/deeppockets-dev/deeppockets/internal/model"

// Default returns the canonical Deep Pockets catalog. Allocations are
// independent ceilings and intentionally do not sum to 1.
func Default(opts ...Option) *Catalog {
	return New(DefaultCategories(), opts...)
}

// DefaultCategories returns fresh copies of the seed category templates.
func DefaultCategories() []model.BudgetCategory {
	return []model.BudgetCategory{
		// Housing
		{
			ID: "home", Name: "Home", Emoji: "🏠", Type: model.CategoryTypeHousing, Priority: 1,
			Description:          "Maximum home price your housing budget supports, including property tax.",
			AllocationPercentage: 0.28, DisplayType: model.DisplayTotal,
			Assumptions: []model.Assumption{
				percent(model.TitleDownPayment, 20, 1, "Share of the price paid up front."),
				percent(model.TitleInterestRate, 7.0, 0.125, "Annual mortgage rate."),
				percent(model.TitlePropertyTax, 1.1, 0.1, "Annual property tax as a share of price."),
				years(model.TitleLoanTerm, 30, 10, 30, "Length of the mortgage."),
			},
		},
		{
			ID: "rent", Name: "Rent", Emoji: "🏢", Type: model.CategoryTypeHousing, Priority: 1,
			Description:          "Monthly rent including renter fees.",
			AllocationPercentage: 0.30, DisplayType: model.DisplayMonthly,
		},
		{
			ID: "house_downpayment", Name: "House Down Payment", Emoji: "🔑", Type: model.CategoryTypeSavings, Priority: 4,
			Description:          "Saving toward the down payment on a home.",
			AllocationPercentage: 0.10, DisplayType: model.DisplayMonthly,
			SavingsGoal:          floatPtr(60000), SavingsTimeline: intPtr(60),
			Assumptions: []model.Assumption{
				text("Target Amount", 60000, "Down payment you want to have saved."),
				years("Timeline", 5, 1, 10, "Years until you plan to buy."),
			},
		},
		{
			ID: "home_maintenance", Name: "Home Maintenance", Emoji: "🛠️", Type: model.CategoryTypeHousing, Priority: 5,
			Description:          "Repairs and upkeep, about 1% of home value per year.",
			AllocationPercentage: 0.02, DisplayType: model.DisplayMonthly,
		},

		// Transportation
		{
			ID: "car", Name: "Car", Emoji: "🚗", Type: model.CategoryTypeTransportation, Priority: 3,
			Description:          "Maximum car price your transportation budget supports.",
			AllocationPercentage: 0.10, DisplayType: model.DisplayTotal,
			Assumptions: []model.Assumption{
				percent(model.TitleDownPayment, 20, 1, "Share of the price paid up front."),
				percent(model.TitleInterestRate, 5.0, 0.25, "Annual auto loan rate."),
				years(model.TitleLoanTerm, 5, 1, 7, "Length of the auto loan."),
			},
		},
		{
			ID: "gas", Name: "Gas", Emoji: "⛽", Type: model.CategoryTypeTransportation, Priority: 2,
			AllocationPercentage: 0.04, DisplayType: model.DisplayMonthly,
		},
		{
			ID: "public_transit", Name: "Public Transit", Emoji: "🚇", Type: model.CategoryTypeTransportation, Priority: 2,
			AllocationPercentage: 0.02, DisplayType: model.DisplayMonthly,
		},
		{
			ID: "car_maintenance", Name: "Car Maintenance", Emoji: "🔧", Type: model.CategoryTypeTransportation, Priority: 4,
			AllocationPercentage: 0.01, DisplayType: model.DisplayMonthly,
		},

		// Savings
		{
			ID: "emergency_savings", Name: "Emergency Savings", Emoji: "🛟", Type: model.CategoryTypeSavings, Priority: 1,
			Description:          "Cash reserve sized in months of income.",
			AllocationPercentage: 0.10, DisplayType: model.DisplayTotal,
			Assumptions: []model.Assumption{
				text(model.TitleMonthsOfSalary, 6, "Months of income to keep in reserve."),
			},
		},
		{
			ID: "retirement", Name: "Retirement", Emoji: "🏖️", Type: model.CategoryTypeSavings, Priority: 2,
			Description:          "401(k) and IRA contributions.",
			AllocationPercentage: 0.15, DisplayType: model.DisplayMonthly,
			Assumptions: []model.Assumption{
				{Title: "Account Split", Value: 100, Default: 100, Input: model.PercentageDistribution{}, Description: "Share going to pre-tax accounts."},
			},
		},
		{
			ID: "investments", Name: "Investments", Emoji: "📈", Type: model.CategoryTypeSavings, Priority: 6,
			AllocationPercentage: 0.05, DisplayType: model.DisplayMonthly,
		},
		{
			ID: "vacation", Name: "Vacation", Emoji: "✈️", Type: model.CategoryTypeSavings, Priority: 8,
			AllocationPercentage: 0.05, DisplayType: model.DisplayTotal,
		},
		{
			ID: "college_savings", Name: "College Savings", Emoji: "🎓", Type: model.CategoryTypeSavings, Priority: 6,
			AllocationPercentage: 0.05, DisplayType: model.DisplayMonthly,
		},

		// Debt
		{
			ID: "credit_card_debt", Name: "Credit Card Debt", Emoji: "💳", Type: model.CategoryTypeDebt, Priority: 1,
			AllocationPercentage: 0.05, DisplayType: model.DisplayMonthly,
			DebtInterestRate:     floatPtr(22.0),
		},
		{
			ID: "student_loans", Name: "Student Loans", Emoji: "📚", Type: model.CategoryTypeDebt, Priority: 2,
			AllocationPercentage: 0.08, DisplayType: model.DisplayMonthly,
			DebtInterestRate:     floatPtr(5.5),
		},
		{
			ID: "personal_loans", Name: "Personal Loans", Emoji: "🧾", Type: model.CategoryTypeDebt, Priority: 2,
			AllocationPercentage: 0.05, DisplayType: model.DisplayMonthly,
		},
		{
			ID: "medical_debt", Name: "Medical Debt", Emoji: "🏥", Type: model.CategoryTypeDebt, Priority: 2,
			AllocationPercentage: 0.03, DisplayType: model.DisplayMonthly,
		},

		// Utilities
		{
			ID: "utilities", Name: "Utilities", Emoji: "💡", Type: model.CategoryTypeUtilities, Priority: 1,
			Description:          "Electricity, water, heating and trash.",
			AllocationPercentage: 0.05, DisplayType: model.DisplayMonthly,
		},
		{
			ID: "phone", Name: "Phone", Emoji: "📱", Type: model.CategoryTypeUtilities, Priority: 3,
			AllocationPercentage: 0.02, DisplayType: model.DisplayMonthly,
		},
		{
			ID: "internet", Name: "Internet", Emoji: "🌐", Type: model.CategoryTypeUtilities, Priority: 3,
			AllocationPercentage: 0.015, DisplayType: model.DisplayMonthly,
		},

		// Food
		{
			ID: "groceries", Name: "Groceries", Emoji: "🛒", Type: model.CategoryTypeFood, Priority: 1,
			AllocationPercentage: 0.10, DisplayType: model.DisplayMonthly,
		},
		{
			ID: "dining_out", Name: "Dining Out", Emoji: "🍽️", Type: model.CategoryTypeFood, Priority: 7,
			AllocationPercentage: 0.05, DisplayType: model.DisplayMonthly,
		},

		// Entertainment
		{
			ID: "streaming", Name: "Streaming", Emoji: "📺", Type: model.CategoryTypeEntertainment, Priority: 9,
			AllocationPercentage: 0.01, DisplayType: model.DisplayMonthly,
		},
		{
			ID: "hobbies", Name: "Hobbies", Emoji: "🎨", Type: model.CategoryTypeEntertainment, Priority: 8,
			AllocationPercentage: 0.03, DisplayType: model.DisplayMonthly,
		},
		{
			ID: "events", Name: "Concerts & Events", Emoji: "🎟️", Type: model.CategoryTypeEntertainment, Priority: 9,
			AllocationPercentage: 0.02, DisplayType: model.DisplayMonthly,
		},

		// Insurance
		{
			ID: "health_insurance", Name: "Health Insurance", Emoji: "🩺", Type: model.CategoryTypeInsurance, Priority: 1,
			AllocationPercentage: 0.06, DisplayType: model.DisplayMonthly,
		},
		{
			ID: "car_insurance", Name: "Car Insurance", Emoji: "🚙", Type: model.CategoryTypeInsurance, Priority: 2,
			AllocationPercentage: 0.03, DisplayType: model.DisplayMonthly,
		},
		{
			ID: "life_insurance", Name: "Life Insurance", Emoji: "🛡️", Type: model.CategoryTypeInsurance, Priority: 4,
			AllocationPercentage: 0.01, DisplayType: model.DisplayMonthly,
		},
		{
			ID: "renters_insurance", Name: "Renters Insurance", Emoji: "🏘️", Type: model.CategoryTypeInsurance, Priority: 4,
			AllocationPercentage: 0.005, DisplayType: model.DisplayMonthly,
		},

		// Education
		{
			ID: "education", Name: "Education", Emoji: "🏫", Type: model.CategoryTypeEducation, Priority: 5,
			Description:          "Courses, books and certifications.",
			AllocationPercentage: 0.03, DisplayType: model.DisplayMonthly,
		},

		// Personal
		{
			ID: "clothing", Name: "Clothing", Emoji: "👕", Type: model.CategoryTypePersonal, Priority: 6,
			AllocationPercentage: 0.03, DisplayType: model.DisplayMonthly,
		},
		{
			ID: "personal_care", Name: "Personal Care", Emoji: "💇", Type: model.CategoryTypePersonal, Priority: 6,
			AllocationPercentage: 0.02, DisplayType: model.DisplayMonthly,
		},
		{
			ID: "gifts", Name: "Gifts", Emoji: "🎁", Type: model.CategoryTypePersonal, Priority: 8,
			AllocationPercentage: 0.02, DisplayType: model.DisplayTotal,
		},

		// Health
		{
			ID: "medical_expenses", Name: "Medical Expenses", Emoji: "💊", Type: model.CategoryTypeHealth, Priority: 2,
			AllocationPercentage: 0.03, DisplayType: model.DisplayMonthly,
		},
		{
			ID: "fitness", Name: "Fitness", Emoji: "🏋️", Type: model.CategoryTypeHealth, Priority: 7,
			AllocationPercentage: 0.01, DisplayType: model.DisplayMonthly,
		},

		// Family
		{
			ID: "childcare", Name: "Childcare", Emoji: "🧸", Type: model.CategoryTypeFamily, Priority: 1,
			AllocationPercentage: 0.10, DisplayType: model.DisplayMonthly,
		},
		{
			ID: "pet_care", Name: "Pet Care", Emoji: "🐾", Type: model.CategoryTypeFamily, Priority: 5,
			AllocationPercentage: 0.02, DisplayType: model.DisplayMonthly,
		},

		// Other
		{
			ID: "charity", Name: "Charity", Emoji: "🤝", Type: model.CategoryTypeOther, Priority: 7,
			AllocationPercentage: 0.05, DisplayType: model.DisplayMonthly,
		},
		{
			ID: "miscellaneous", Name: "Miscellaneous", Emoji: "🧩", Type: model.CategoryTypeOther, Priority: 9,
			AllocationPercentage: 0.02, DisplayType: model.DisplayMonthly,
		},
	}
}

func percent(title string, value, step float64, desc string) model.Assumption {
	return model.Assumption{
		Title: title, Value: value, Default: value,
		Input: model.PercentageSlider{Step: step}, Description: desc,
	}
}

func years(title string, value float64, lo, hi int, desc string) model.Assumption {
	return model.Assumption{
		Title: title, Value: value, Default: value,
		Input: model.YearSlider{Min: lo, Max: hi}, Description: desc,
	}
}

func text(title string, value float64, desc string) model.Assumption {
	return model.Assumption{
		Title: title, Value: value, Default: value,
		Input: model.TextField{}, Description: desc,
	}
}

func floatPtr(v float64) *float64 { return &v }

func intPtr(v int) *int { return &v }
