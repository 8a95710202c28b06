package game

import (
	"fmt"
	"strings"
)

// ExpenseCategory names one of the seven monthly spending buckets.
type ExpenseCategory string

const (
	CategoryHousing       ExpenseCategory = "housing"
	CategoryFood          ExpenseCategory = "food"
	CategoryTransport     ExpenseCategory = "transport"
	CategoryUtilities     ExpenseCategory = "utilities"
	CategorySubscriptions ExpenseCategory = "subscriptions"
	CategoryInsurance     ExpenseCategory = "insurance"
	CategoryOther         ExpenseCategory = "other"
)

// AllCategories is the canonical iteration order for the seven buckets.
var AllCategories = []ExpenseCategory{
	CategoryHousing,
	CategoryFood,
	CategoryTransport,
	CategoryUtilities,
	CategorySubscriptions,
	CategoryInsurance,
	CategoryOther,
}

// Absolute monthly floors per category. Below these, life stops working:
// you cannot turn off electricity or drop health insurance entirely.
var expenseMinimums = map[ExpenseCategory]float64{
	CategoryHousing:       300,
	CategoryFood:          150,
	CategoryTransport:     30,
	CategoryUtilities:     50,
	CategorySubscriptions: 0,
	CategoryInsurance:     20,
	CategoryOther:         20,
}

// Cities where the housing floor rises to 400 (capital-region rents).
var expensiveCities = map[string]bool{
	"helsinki": true,
	"espoo":    true,
	"vantaa":   true,
}

// Spending bands where low budgets start costing wellbeing. Only food,
// housing and transport carry health effects.
const (
	foodComfortable = 250.0
	foodAdequate    = 200.0
	foodPoor        = 150.0

	housingComfortable = 500.0
	housingAdequate    = 350.0
	housingMinimum     = 300.0

	transportComfortable = 80.0
	transportAdequate    = 50.0
	transportMinimum     = 30.0
)

// CategoryMinimum returns the spending floor for a category in a given city.
func CategoryMinimum(category ExpenseCategory, city string) float64 {
	minimum := expenseMinimums[category]
	if category == CategoryHousing && expensiveCities[strings.ToLower(city)] {
		if minimum < 400 {
			minimum = 400
		}
	}
	return minimum
}

// ValidateExpenseChange caps a requested category change so the result never
// lands below the floor. The returned delta is what may actually be applied;
// a nonempty warning means the cap fired. A value already under the floor is
// corrected upward: the allowed delta becomes floor-current, which is
// positive, so underwater states self-heal on the next attempted cut.
func ValidateExpenseChange(category ExpenseCategory, currentValue, change float64, city string) (float64, string) {
	minimum := CategoryMinimum(category, city)

	newValue := currentValue + change
	if newValue < minimum {
		allowed := minimum - currentValue
		warning := fmt.Sprintf("Cannot reduce %s below €%.0f/month (minimum living standard)", category, minimum)
		return allowed, warning
	}

	return change, ""
}

// HealthImpact is a flat delta map over the four life metrics.
type HealthImpact struct {
	Energy     int
	Motivation int
	Social     int
	Knowledge  int
}

func (h HealthImpact) IsZero() bool {
	return h == HealthImpact{}
}

// CalculateHealthImpact returns the one-off metric effect of moving a
// category to a new spending level. Food is the most sensitive: crossing
// upward past the comfortable band even earns energy back.
func CalculateHealthImpact(category ExpenseCategory, currentValue, change float64) HealthImpact {
	newValue := currentValue + change
	var impact HealthImpact

	switch category {
	case CategoryFood:
		switch {
		case newValue <= foodPoor:
			impact.Energy = -3
			impact.Motivation = -1
		case newValue <= foodAdequate:
			impact.Energy = -1
		case newValue >= foodComfortable:
			if currentValue < foodComfortable {
				impact.Energy = 1
			}
		}
	case CategoryHousing:
		switch {
		case newValue <= housingMinimum:
			impact.Energy = -2
			impact.Social = -1
		case newValue <= housingAdequate:
			impact.Energy = -1
		}
	case CategoryTransport:
		if newValue <= transportMinimum {
			impact.Social = -1
		}
	}

	return impact
}

// CalculateMonthlyHealthImpact re-evaluates the spending bands against the
// current levels. It runs statelessly on every month start so that chronic
// underspending keeps hurting, not just the step that caused it.
func CalculateMonthlyHealthImpact(expenses map[ExpenseCategory]float64) HealthImpact {
	var impact HealthImpact

	food := expenses[CategoryFood]
	switch {
	case food <= foodPoor:
		impact.Energy -= 2 // chronic malnutrition
		impact.Motivation--
	case food <= foodAdequate:
		impact.Energy-- // poor diet
	}

	housing := expenses[CategoryHousing]
	if housing <= housingMinimum {
		impact.Energy-- // poor sleep, stress from bad housing
		impact.Social-- // nowhere to invite people
	}

	transport := expenses[CategoryTransport]
	if transport <= transportMinimum {
		impact.Social-- // hard to meet people, attend events
	}

	return impact
}

// GetExpenseWarning describes a dangerously low budget for display, or
// returns the empty string when the level is fine.
func GetExpenseWarning(category ExpenseCategory, value float64) string {
	minimum := expenseMinimums[category]

	switch category {
	case CategoryFood:
		switch {
		case value <= minimum:
			return "Your food budget is at the absolute minimum. You're not eating enough and it is severely impacting your energy and health."
		case value <= foodAdequate:
			return "Your food budget is adequate but limited. Consider increasing it for better energy."
		}
	case CategoryHousing:
		switch {
		case value <= minimum:
			return "Your housing is at the bare minimum (shared room/poor conditions). This is affecting your wellbeing."
		case value <= housingAdequate:
			return "Your housing is adequate but not comfortable. This may impact your energy and social life."
		}
	case CategoryTransport:
		if value <= minimum {
			return "Your transport budget is minimal. This limits your ability to socialize and attend events."
		}
	}

	return ""
}
