package game

import (
	"fmt"
	"log"
)

// Outcome is the externally-declared qualitative result of a decision, as
// produced by a narrator collaborator. The engine never generates these; it
// only turns them into exact numbers.
type Outcome struct {
	ActionType        string             `json:"action_type"`
	InvestmentDetails *InvestmentDetails `json:"investment_details,omitempty"`
	ExpenseChanges    map[string]float64 `json:"expense_changes,omitempty"`
	IncomeChange      *float64           `json:"income_change,omitempty"`
	DebtChange        *float64           `json:"debt_change,omitempty"`
	LifeMetrics       *LifeMetricChanges `json:"life_metrics,omitempty"`
}

type InvestmentDetails struct {
	Principal     float64       `json:"principal"`
	AssetType     AssetType     `json:"asset_type"`
	ResultQuality ResultQuality `json:"result_quality"`
}

type LifeMetricChanges struct {
	EnergyChange     int `json:"energy_change"`
	MotivationChange int `json:"motivation_change"`
	SocialChange     int `json:"social_change"`
	KnowledgeChange  int `json:"knowledge_change"`
}

// Keys accepted in Outcome.ExpenseChanges, mapped to their categories.
var expenseChangeKeys = map[string]ExpenseCategory{
	"expense_housing_change":       CategoryHousing,
	"expense_food_change":          CategoryFood,
	"expense_transport_change":     CategoryTransport,
	"expense_utilities_change":     CategoryUtilities,
	"expense_subscriptions_change": CategorySubscriptions,
	"expense_insurance_change":     CategoryInsurance,
	"expense_other_change":         CategoryOther,
}

// EffectFromOutcome translates a qualitative outcome into a DecisionEffect.
// Investment outcomes are routed through the deterministic calculator;
// expense outcomes must name known category keys. Income, debt and life
// metric changes pass through directly.
func EffectFromOutcome(outcome Outcome, rng Rand) (DecisionEffect, error) {
	var effect DecisionEffect

	switch outcome.ActionType {
	case "investment":
		details := outcome.InvestmentDetails
		if details != nil && details.Principal != 0 {
			result, err := CalculateInvestmentOutcome(details.Principal, details.AssetType, details.ResultQuality, rng)
			if err != nil {
				return DecisionEffect{}, fmt.Errorf("investment outcome: %w", err)
			}
			effect.MoneyChange = result.MoneyChange
			effect.InvestmentChange = result.InvestmentChange
			effect.PassiveIncomeChange = result.PassiveIncomeChange
		}
	case "expense":
		for key, value := range outcome.ExpenseChanges {
			category, ok := expenseChangeKeys[key]
			if !ok {
				return DecisionEffect{}, fmt.Errorf("unknown expense change key %q", key)
			}
			effect.SetCategoryChange(category, value)
		}
	}

	if outcome.IncomeChange != nil {
		effect.IncomeChange = *outcome.IncomeChange
	}
	if outcome.DebtChange != nil {
		effect.DebtChange = *outcome.DebtChange
	}
	if metrics := outcome.LifeMetrics; metrics != nil {
		effect.EnergyChange = metrics.EnergyChange
		effect.MotivationChange = metrics.MotivationChange
		effect.SocialChange = metrics.SocialChange
		effect.KnowledgeChange = metrics.KnowledgeChange
	}

	return effect, nil
}

// ValidateAndLogTransaction runs the balance-sheet check for an effect about
// to be applied. Validation here is advisory telemetry: a failure is logged
// and the transaction proceeds, so a suspect calculation shows up in the
// logs as a recorded, explainable transaction instead of a rejection.
func ValidateAndLogTransaction(state *GameState, effect DecisionEffect) bool {
	if effect.MoneyChange == 0 && effect.InvestmentChange == 0 {
		return true
	}

	valid, message := ValidateBalanceSheet(state.Money, state.Investments, effect.MoneyChange, effect.InvestmentChange)
	if !valid {
		log.Printf("[WARN] balance sheet validation failed: %s", message)
		return false
	}

	log.Printf("[INFO] transaction validated: %s", message)
	return true
}
