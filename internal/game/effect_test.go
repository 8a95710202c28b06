package game

import (
	"math"
	"strings"
	"testing"
)

func testState() *GameState {
	state := &GameState{
		Status:             StatusActive,
		CurrentAge:         25,
		MonthPhase:         1,
		Money:              2000,
		MonthlyIncome:      2400,
		Investments:        1000,
		PassiveIncome:      0,
		Debts:              0,
		Energy:             70,
		Motivation:         70,
		SocialLife:         70,
		FinancialKnowledge: 30,
		Assets:             map[string]any{},
		RiskFactors:        map[string]bool{},
	}
	state.SetExpenseBreakdown(map[ExpenseCategory]float64{
		CategoryHousing:       400,
		CategoryFood:          250,
		CategoryTransport:     60,
		CategoryUtilities:     70,
		CategorySubscriptions: 30,
		CategoryInsurance:     40,
		CategoryOther:         50,
	})
	return state
}

func TestApplyDecisionEffectsCategorySumInvariant(t *testing.T) {
	state := testState()

	ApplyDecisionEffects(state, DecisionEffect{
		ExpenseFoodChange:    -40,
		ExpenseHousingChange: 100,
		ExpenseChange:        9999, // aggregate deltas must never survive re-derivation
	})

	wantTotal := state.ExpenseHousing + state.ExpenseFood + state.ExpenseTransport +
		state.ExpenseUtilities + state.ExpenseSubscriptions + state.ExpenseInsurance +
		state.ExpenseOther
	if state.MonthlyExpense != wantTotal {
		t.Errorf("MonthlyExpense = %v, want category sum %v", state.MonthlyExpense, wantTotal)
	}
	if state.ExpenseFood != 210 {
		t.Errorf("ExpenseFood = %v, want 210", state.ExpenseFood)
	}
}

func TestApplyDecisionEffectsCategoryOnlyRecurringCost(t *testing.T) {
	state := testState()
	before := state.MonthlyExpense

	summary := ApplyDecisionEffects(state, DecisionEffect{ExpenseInsuranceChange: 60})

	if state.MonthlyExpense != before+60 {
		t.Errorf("MonthlyExpense = %v, want %v", state.MonthlyExpense, before+60)
	}
	if summary.ExpenseChange != 60 {
		t.Errorf("summary.ExpenseChange = %v, want 60", summary.ExpenseChange)
	}
	if !strings.Contains(summary.Description, "Monthly Expenses +€60/mo") {
		t.Errorf("Description = %q, want a Monthly Expenses +€60/mo entry", summary.Description)
	}
}

func TestApplyDecisionEffectsDebtConversion(t *testing.T) {
	state := testState()
	state.Money = 100

	summary := ApplyDecisionEffects(state, DecisionEffect{MoneyChange: -101})

	if state.Money != 0 {
		t.Errorf("Money = %v, want 0 after deficit conversion", state.Money)
	}
	if state.Debts != 1 {
		t.Errorf("Debts = %v, want 1", state.Debts)
	}
	if summary.DebtChange != 1 {
		t.Errorf("summary.DebtChange = %v, want 1 (deficit folded in)", summary.DebtChange)
	}
	if summary.CashChange != -101 {
		t.Errorf("summary.CashChange = %v, want -101 (requested change preserved)", summary.CashChange)
	}
}

func TestApplyDecisionEffectsMetricClamping(t *testing.T) {
	state := testState()
	state.Energy = 95
	state.Motivation = 3

	ApplyDecisionEffects(state, DecisionEffect{EnergyChange: 20, MotivationChange: -10})

	if state.Energy != 100 {
		t.Errorf("Energy = %d, want 100", state.Energy)
	}
	if state.Motivation != 0 {
		t.Errorf("Motivation = %d, want 0", state.Motivation)
	}
}

func TestApplyDecisionEffectsAssetAndRiskUpdates(t *testing.T) {
	state := testState()
	state.Assets["car"] = map[string]any{"type": "used_sedan"}
	state.RiskFactors["has_car"] = true

	ApplyDecisionEffects(state, DecisionEffect{
		AssetUpdates:      map[string]any{"car": nil, "bike": map[string]any{"value": 300}},
		RiskFactorUpdates: map[string]bool{"has_car": false, "has_bike": true},
	})

	if _, ok := state.Assets["car"]; ok {
		t.Error("car asset should be deleted by nil update")
	}
	if _, ok := state.Assets["bike"]; !ok {
		t.Error("bike asset should be upserted")
	}
	if state.RiskFactors["has_car"] {
		t.Error("has_car should be overwritten to false")
	}
	if !state.RiskFactors["has_bike"] {
		t.Error("has_bike should be set")
	}
}

func TestApplyDecisionEffectsClockAdvance(t *testing.T) {
	state := testState()
	state.MonthPhase = 3
	state.MonthsPassed = 11
	state.CurrentAge = 25
	startStep := state.CurrentStep

	ApplyDecisionEffects(state, DecisionEffect{})

	if state.CurrentStep != startStep+1 {
		t.Errorf("CurrentStep = %d, want %d", state.CurrentStep, startStep+1)
	}
	if state.MonthPhase != 1 {
		t.Errorf("MonthPhase = %d, want wrap to 1", state.MonthPhase)
	}
	if state.MonthsPassed != 12 {
		t.Errorf("MonthsPassed = %d, want 12", state.MonthsPassed)
	}
	if state.CurrentAge != 26 {
		t.Errorf("CurrentAge = %d, want 26 after a full year", state.CurrentAge)
	}
	if math.Abs(state.YearsPassed-1.0) > 1e-9 {
		t.Errorf("YearsPassed = %v, want 1.0", state.YearsPassed)
	}
}

func TestApplyDecisionEffectsRecomputesFIScore(t *testing.T) {
	state := testState()

	ApplyDecisionEffects(state, DecisionEffect{PassiveIncomeChange: 90})

	want := CalculateFIScore(90, state.MonthlyExpense)
	if math.Abs(state.FIScore-want) > 1e-9 {
		t.Errorf("FIScore = %v, want %v", state.FIScore, want)
	}
}

func TestTransactionDescription(t *testing.T) {
	tests := []struct {
		name   string
		effect DecisionEffect
		want   []string
	}{
		{
			name:   "No Changes",
			effect: DecisionEffect{EnergyChange: 5},
			want:   []string{"No financial changes"},
		},
		{
			name:   "One Time And Recurring",
			effect: DecisionEffect{MoneyChange: -1200, IncomeChange: 400},
			want:   []string{"Cash -€1,200", "Monthly Income +€400/mo"},
		},
		{
			name:   "Investment And Passive",
			effect: DecisionEffect{InvestmentChange: 2000, PassiveIncomeChange: 10},
			want:   []string{"Investments +€2,000", "Passive Income +€10/mo"},
		},
		{
			name:   "Category Backed Recurring Cut",
			effect: DecisionEffect{ExpenseSubscriptionsChange: -40},
			want:   []string{"Monthly Expenses -€40/mo"},
		},
		{
			name:   "Unbacked Aggregate Reports Nothing",
			effect: DecisionEffect{ExpenseChange: 9999},
			want:   []string{"No financial changes"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TransactionDescription(tt.effect)
			for _, fragment := range tt.want {
				if !strings.Contains(got, fragment) {
					t.Errorf("TransactionDescription() = %q, want fragment %q", got, fragment)
				}
			}
		})
	}
}

func TestApplyMonthlyCashFlow(t *testing.T) {
	t.Run("Phase One Applies Lump", func(t *testing.T) {
		state := testState()
		state.PassiveIncome = 100
		startMoney := state.Money

		summary := ApplyMonthlyCashFlow(state)

		if !summary.Applied {
			t.Fatal("cash flow should apply on phase 1")
		}
		wantIncome := state.MonthlyIncome + state.PassiveIncome
		if summary.IncomeReceived != wantIncome {
			t.Errorf("IncomeReceived = %v, want %v", summary.IncomeReceived, wantIncome)
		}
		wantBalance := startMoney + wantIncome - state.MonthlyExpense
		if state.Money != wantBalance {
			t.Errorf("Money = %v, want %v", state.Money, wantBalance)
		}
	})

	t.Run("Other Phases Skip", func(t *testing.T) {
		state := testState()
		state.MonthPhase = 2
		startMoney := state.Money

		summary := ApplyMonthlyCashFlow(state)

		if summary.Applied {
			t.Error("cash flow must not apply on phase 2")
		}
		if state.Money != startMoney {
			t.Errorf("Money = %v, want unchanged %v", state.Money, startMoney)
		}
	})

	t.Run("Deficit Converts To Debt", func(t *testing.T) {
		state := testState()
		state.Money = 0
		state.MonthlyIncome = 100
		state.PassiveIncome = 0

		summary := ApplyMonthlyCashFlow(state)

		if state.Money != 0 {
			t.Errorf("Money = %v, want 0", state.Money)
		}
		wantDeficit := state.MonthlyExpense - 100
		if summary.DebtFromDeficit != wantDeficit {
			t.Errorf("DebtFromDeficit = %v, want %v", summary.DebtFromDeficit, wantDeficit)
		}
		if state.Debts != wantDeficit {
			t.Errorf("Debts = %v, want %v", state.Debts, wantDeficit)
		}
	})
}
