package game

import (
	"fmt"
	"math"
	"strings"

	"github.com/dustin/go-humanize"
)

// DecisionEffect is the structured numeric consequence of one chosen option.
// Factories return it fully populated; the applier consumes it exactly once.
type DecisionEffect struct {
	MoneyChange         float64
	InvestmentChange    float64
	DebtChange          float64
	IncomeChange        float64
	ExpenseChange       float64
	PassiveIncomeChange float64

	ExpenseHousingChange       float64
	ExpenseFoodChange          float64
	ExpenseTransportChange     float64
	ExpenseUtilitiesChange     float64
	ExpenseSubscriptionsChange float64
	ExpenseInsuranceChange     float64
	ExpenseOtherChange         float64

	EnergyChange     int
	MotivationChange int
	SocialChange     int
	KnowledgeChange  int

	// AssetUpdates upserts by key; a nil value deletes the key.
	AssetUpdates map[string]any
	// RiskFactorUpdates plainly overwrite.
	RiskFactorUpdates map[string]bool
}

// CategoryChange returns the effect's delta for one expense category.
func (e *DecisionEffect) CategoryChange(category ExpenseCategory) float64 {
	switch category {
	case CategoryHousing:
		return e.ExpenseHousingChange
	case CategoryFood:
		return e.ExpenseFoodChange
	case CategoryTransport:
		return e.ExpenseTransportChange
	case CategoryUtilities:
		return e.ExpenseUtilitiesChange
	case CategorySubscriptions:
		return e.ExpenseSubscriptionsChange
	case CategoryInsurance:
		return e.ExpenseInsuranceChange
	case CategoryOther:
		return e.ExpenseOtherChange
	default:
		return 0
	}
}

// SetCategoryChange overwrites the effect's delta for one expense category.
func (e *DecisionEffect) SetCategoryChange(category ExpenseCategory, change float64) {
	switch category {
	case CategoryHousing:
		e.ExpenseHousingChange = change
	case CategoryFood:
		e.ExpenseFoodChange = change
	case CategoryTransport:
		e.ExpenseTransportChange = change
	case CategoryUtilities:
		e.ExpenseUtilitiesChange = change
	case CategorySubscriptions:
		e.ExpenseSubscriptionsChange = change
	case CategoryInsurance:
		e.ExpenseInsuranceChange = change
	case CategoryOther:
		e.ExpenseOtherChange = change
	}
}

// TotalExpenseChange is the effect's real impact on the monthly expense
// total: the sum of the seven category deltas. The aggregate ExpenseChange
// field does not count, because the applier re-derives the total from the
// categories and an unbacked aggregate never survives that.
func (e *DecisionEffect) TotalExpenseChange() float64 {
	return e.ExpenseHousingChange + e.ExpenseFoodChange + e.ExpenseTransportChange +
		e.ExpenseUtilitiesChange + e.ExpenseSubscriptionsChange +
		e.ExpenseInsuranceChange + e.ExpenseOtherChange
}

// TransactionSummary records everything one applied decision changed, for
// the caller to persist and display.
type TransactionSummary struct {
	CashChange          float64
	InvestmentChange    float64
	DebtChange          float64
	MonthlyIncomeChange float64
	ExpenseChange       float64
	PassiveIncomeChange float64

	CategoryChanges map[ExpenseCategory]float64

	CashBalance       float64
	InvestmentBalance float64
	DebtBalance       float64
	MonthlyIncome     float64
	MonthlyExpense    float64
	PassiveIncome     float64

	Description string
}

// CashFlowSummary reports the monthly payroll/billing lump applied on each
// phase-1 step.
type CashFlowSummary struct {
	Applied         bool
	CashChange      float64
	IncomeReceived  float64
	ExpensesPaid    float64
	DebtFromDeficit float64
	CashBalance     float64
}

// ApplyDecisionEffects mutates the state with one effect and returns the
// transaction record. This is the single authority for state transitions:
// it re-derives the expense total from the seven categories, converts any
// cash deficit into debt, clamps the life metrics, recomputes the FI score
// and advances the step/phase/age clock.
func ApplyDecisionEffects(state *GameState, effect DecisionEffect) TransactionSummary {
	debtChange := effect.DebtChange

	state.Money += effect.MoneyChange
	state.Investments += effect.InvestmentChange
	state.Debts += effect.DebtChange
	state.MonthlyIncome += effect.IncomeChange
	state.MonthlyExpense += effect.ExpenseChange
	state.PassiveIncome += effect.PassiveIncomeChange

	state.ExpenseHousing += effect.ExpenseHousingChange
	state.ExpenseFood += effect.ExpenseFoodChange
	state.ExpenseTransport += effect.ExpenseTransportChange
	state.ExpenseUtilities += effect.ExpenseUtilitiesChange
	state.ExpenseSubscriptions += effect.ExpenseSubscriptionsChange
	state.ExpenseInsurance += effect.ExpenseInsuranceChange
	state.ExpenseOther += effect.ExpenseOtherChange

	// The total is always re-derived from the categories; an aggregate delta
	// alone is never trusted to keep the invariant.
	state.MonthlyExpense = state.sumCategoryExpenses()

	// Cash never goes negative in stored state: the deficit becomes debt and
	// is folded into the reported debt change.
	if state.Money < 0 {
		deficit := math.Abs(state.Money)
		state.Debts += deficit
		debtChange += deficit
		state.Money = 0
	}

	state.Energy = UpdateLifeMetric(state.Energy, effect.EnergyChange)
	state.Motivation = UpdateLifeMetric(state.Motivation, effect.MotivationChange)
	state.SocialLife = UpdateLifeMetric(state.SocialLife, effect.SocialChange)
	state.FinancialKnowledge = UpdateLifeMetric(state.FinancialKnowledge, effect.KnowledgeChange)

	for key, value := range effect.AssetUpdates {
		if value == nil {
			delete(state.Assets, key)
			continue
		}
		if state.Assets == nil {
			state.Assets = map[string]any{}
		}
		state.Assets[key] = value
	}
	for key, value := range effect.RiskFactorUpdates {
		if state.RiskFactors == nil {
			state.RiskFactors = map[string]bool{}
		}
		state.RiskFactors[key] = value
	}

	state.FIScore = CalculateFIScore(state.PassiveIncome, state.MonthlyExpense)

	state.CurrentStep++
	state.MonthPhase++
	if state.MonthPhase > 3 {
		state.MonthPhase = 1
		state.MonthsPassed++
		if state.MonthsPassed%12 == 0 {
			state.CurrentAge++
		}
		state.YearsPassed = float64(state.MonthsPassed) / 12
	}

	categoryChanges := make(map[ExpenseCategory]float64, len(AllCategories))
	for _, c := range AllCategories {
		categoryChanges[c] = effect.CategoryChange(c)
	}

	return TransactionSummary{
		CashChange:          effect.MoneyChange,
		InvestmentChange:    effect.InvestmentChange,
		DebtChange:          debtChange,
		MonthlyIncomeChange: effect.IncomeChange,
		ExpenseChange:       effect.TotalExpenseChange(),
		PassiveIncomeChange: effect.PassiveIncomeChange,
		CategoryChanges:     categoryChanges,
		CashBalance:         state.Money,
		InvestmentBalance:   state.Investments,
		DebtBalance:         state.Debts,
		MonthlyIncome:       state.MonthlyIncome,
		MonthlyExpense:      state.MonthlyExpense,
		PassiveIncome:       state.PassiveIncome,
		Description:         TransactionDescription(effect),
	}
}

// ApplyMonthlyCashFlow pays the month's salary and passive income and
// collects the month's expenses in one lump. It only fires on phase 1; on
// other phases it reports Applied=false and leaves the state alone. A
// deficit converts to debt exactly like a decision effect would.
func ApplyMonthlyCashFlow(state *GameState) CashFlowSummary {
	if state.MonthPhase != 1 {
		return CashFlowSummary{CashBalance: state.Money}
	}

	totalIncome := state.MonthlyIncome + state.PassiveIncome
	state.Money += totalIncome
	state.Money -= state.MonthlyExpense

	var debtFromDeficit float64
	if state.Money < 0 {
		debtFromDeficit = math.Abs(state.Money)
		state.Debts += debtFromDeficit
		state.Money = 0
	}

	return CashFlowSummary{
		Applied:         true,
		CashChange:      totalIncome - state.MonthlyExpense,
		IncomeReceived:  totalIncome,
		ExpensesPaid:    state.MonthlyExpense,
		DebtFromDeficit: debtFromDeficit,
		CashBalance:     state.Money,
	}
}

// TransactionDescription renders the nonzero changes of an effect as a
// semicolon-joined list, monthly amounts marked with /mo.
func TransactionDescription(effect DecisionEffect) string {
	var changes []string

	appendChange := func(label string, amount float64, monthly bool) {
		if amount == 0 {
			return
		}
		suffix := ""
		if monthly {
			suffix = "/mo"
		}
		changes = append(changes, fmt.Sprintf("%s %s€%s%s", label, signPrefix(amount), euros(amount), suffix))
	}

	appendChange("Cash", effect.MoneyChange, false)
	appendChange("Investments", effect.InvestmentChange, false)
	appendChange("Debt", effect.DebtChange, false)
	appendChange("Monthly Income", effect.IncomeChange, true)
	appendChange("Monthly Expenses", effect.TotalExpenseChange(), true)
	appendChange("Passive Income", effect.PassiveIncomeChange, true)

	if len(changes) == 0 {
		return "No financial changes"
	}
	return strings.Join(changes, "; ")
}

func signPrefix(amount float64) string {
	if amount > 0 {
		return "+"
	}
	return "-"
}

func euros(amount float64) string {
	return humanize.CommafWithDigits(math.Abs(amount), 0)
}
