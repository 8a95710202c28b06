package game

import "testing"

func TestClampExpenseEffectCapsAndWarns(t *testing.T) {
	state := testState()
	state.ExpenseFood = 180

	effect := DecisionEffect{ExpenseFoodChange: -60}
	clamped, warnings := ClampExpenseEffect(state, effect, "Tampere")

	if clamped.ExpenseFoodChange != -30 {
		t.Errorf("ExpenseFoodChange = %v, want capped -30", clamped.ExpenseFoodChange)
	}
	if len(warnings) == 0 {
		t.Fatal("hitting the floor must produce a warning")
	}

	// Landing at the floor also costs wellbeing.
	if clamped.EnergyChange != -3 || clamped.MotivationChange != -1 {
		t.Errorf("health fold = energy %d motivation %d, want -3/-1",
			clamped.EnergyChange, clamped.MotivationChange)
	}
}

func TestClampExpenseEffectPassThrough(t *testing.T) {
	state := testState()

	effect := DecisionEffect{ExpenseSubscriptionsChange: 40, EnergyChange: 5}
	clamped, warnings := ClampExpenseEffect(state, effect, "Helsinki")

	if clamped.ExpenseSubscriptionsChange != 40 {
		t.Errorf("ExpenseSubscriptionsChange = %v, want 40", clamped.ExpenseSubscriptionsChange)
	}
	if clamped.EnergyChange != 5 {
		t.Errorf("EnergyChange = %d, want untouched 5", clamped.EnergyChange)
	}
	if len(warnings) != 0 {
		t.Errorf("no warnings expected, got %v", warnings)
	}
}

func TestClampExpenseEffectIgnoresZeroDeltas(t *testing.T) {
	state := testState()
	state.ExpenseFood = 140 // already underwater, but untouched by the effect

	clamped, warnings := ClampExpenseEffect(state, DecisionEffect{MoneyChange: -100}, "Tampere")

	if clamped.ExpenseFoodChange != 0 {
		t.Errorf("ExpenseFoodChange = %v, want 0 (no delta, no correction)", clamped.ExpenseFoodChange)
	}
	if len(warnings) != 0 {
		t.Errorf("no warnings expected, got %v", warnings)
	}
}
