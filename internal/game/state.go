package game

import (
	"math"

	"github.com/google/uuid"
)

type GameStatus string

const (
	StatusActive    GameStatus = "active"
	StatusCompleted GameStatus = "completed"
	StatusAbandoned GameStatus = "abandoned"
)

type RiskAttitude string

const (
	RiskAverse   RiskAttitude = "risk_averse"
	RiskBalanced RiskAttitude = "balanced"
	RiskSeeking  RiskAttitude = "risk_seeking"
)

type EducationPath string

const (
	EducationVocational EducationPath = "vocational"
	EducationUniversity EducationPath = "university"
	EducationHighSchool EducationPath = "high_school"
	EducationWorking    EducationPath = "working"
)

// PlayerProfile is the onboarding snapshot. It never changes after creation;
// the engine only reads it.
type PlayerProfile struct {
	SessionID      string
	PlayerName     string
	Age            int
	City           string
	EducationPath  EducationPath
	RiskAttitude   RiskAttitude
	StartingSaving float64
	StartingDebt   float64
	Aspirations    map[string]bool
}

// GameState is the full mutable session state. It is owned by exactly one
// play session and mutated only through ApplyDecisionEffects and
// ApplyMonthlyCashFlow; callers persist it between steps.
type GameState struct {
	CurrentStep int
	Status      GameStatus

	CurrentAge   int
	YearsPassed  float64
	MonthsPassed int
	MonthPhase   int // 1..3, cyclic

	Money          float64
	MonthlyIncome  float64
	MonthlyExpense float64
	Investments    float64
	PassiveIncome  float64
	Debts          float64

	ExpenseHousing       float64
	ExpenseFood          float64
	ExpenseTransport     float64
	ExpenseUtilities     float64
	ExpenseSubscriptions float64
	ExpenseInsurance     float64
	ExpenseOther         float64

	FIScore float64

	Energy             int
	Motivation         int
	SocialLife         int
	FinancialKnowledge int

	Assets      map[string]any
	RiskFactors map[string]bool
}

// Monthly income by education path, before the age adjustment.
var startingIncomeByEducation = map[EducationPath]float64{
	EducationVocational: 2200,
	EducationHighSchool: 1800,
	EducationUniversity: 2500,
	EducationWorking:    2400,
}

// Base monthly cost of living by city (rent + utilities + food).
var startingExpensesByCity = map[string]float64{
	"Helsinki":  1200,
	"Espoo":     1100,
	"Tampere":   900,
	"Turku":     850,
	"Oulu":      800,
	"Lahti":     750,
	"Kuopio":    750,
	"Jyväskylä": 800,
}

func NewSessionID() string {
	return uuid.NewString()
}

// StartingIncome derives monthly income from education path and age. Older
// players carry more experience and a higher wage.
func StartingIncome(path EducationPath, age int) float64 {
	income, ok := startingIncomeByEducation[path]
	if !ok {
		income = 2000
	}
	switch {
	case age >= 25:
		income *= 1.15
	case age >= 22:
		income *= 1.08
	}
	return math.Round(income*100) / 100
}

// StartingExpenses derives monthly cost of living from the city plus the
// running costs of a car and a pet.
func StartingExpenses(city string, hasCar, hasPet bool) float64 {
	expenses, ok := startingExpensesByCity[city]
	if !ok {
		expenses = 900
	}
	if hasCar {
		expenses += 200
	}
	if hasPet {
		expenses += 50
	}
	return expenses
}

// NewGameState builds the initial session state from an onboarding profile.
// Expense categories start from the standard breakdown of the derived total
// so the category-sum invariant holds from step zero.
func NewGameState(profile PlayerProfile) GameState {
	hasCar := profile.Aspirations["own_car"]
	hasPet := profile.Aspirations["own_pet"]

	income := StartingIncome(profile.EducationPath, profile.Age)
	expenses := StartingExpenses(profile.City, hasCar, hasPet)

	var energy, motivation, social int
	switch profile.RiskAttitude {
	case RiskAverse:
		energy, motivation, social = 75, 65, 70
	case RiskSeeking:
		energy, motivation, social = 65, 75, 75
	default:
		energy, motivation, social = 70, 70, 70
	}

	assets := map[string]any{}
	if hasCar {
		assets["car"] = map[string]any{"type": "used_sedan", "value": 5000}
	}
	if hasPet {
		assets["pet"] = map[string]any{"type": "cat", "name": "Fluffy"}
	}

	state := GameState{
		Status:             StatusActive,
		CurrentAge:         profile.Age,
		MonthPhase:         1,
		Money:              profile.StartingSaving,
		MonthlyIncome:      income,
		Debts:              profile.StartingDebt,
		Energy:             energy,
		Motivation:         motivation,
		SocialLife:         social,
		FinancialKnowledge: 30,
		Assets:             assets,
		RiskFactors: map[string]bool{
			"has_car":    hasCar,
			"has_pet":    hasPet,
			"has_rental": true,
			"has_loan":   profile.StartingDebt > 0,
		},
	}
	state.SetExpenseBreakdown(CalculateExpenseBreakdown(expenses, profile.City, hasCar, LifestyleModerate))
	return state
}

// CategoryExpense returns the current value of one expense category.
func (s *GameState) CategoryExpense(category ExpenseCategory) float64 {
	switch category {
	case CategoryHousing:
		return s.ExpenseHousing
	case CategoryFood:
		return s.ExpenseFood
	case CategoryTransport:
		return s.ExpenseTransport
	case CategoryUtilities:
		return s.ExpenseUtilities
	case CategorySubscriptions:
		return s.ExpenseSubscriptions
	case CategoryInsurance:
		return s.ExpenseInsurance
	case CategoryOther:
		return s.ExpenseOther
	default:
		return 0
	}
}

// CategoryExpenses returns all seven categories as a map snapshot.
func (s *GameState) CategoryExpenses() map[ExpenseCategory]float64 {
	out := make(map[ExpenseCategory]float64, len(AllCategories))
	for _, c := range AllCategories {
		out[c] = s.CategoryExpense(c)
	}
	return out
}

// SetExpenseBreakdown replaces all seven categories and re-derives the total.
func (s *GameState) SetExpenseBreakdown(breakdown map[ExpenseCategory]float64) {
	s.ExpenseHousing = breakdown[CategoryHousing]
	s.ExpenseFood = breakdown[CategoryFood]
	s.ExpenseTransport = breakdown[CategoryTransport]
	s.ExpenseUtilities = breakdown[CategoryUtilities]
	s.ExpenseSubscriptions = breakdown[CategorySubscriptions]
	s.ExpenseInsurance = breakdown[CategoryInsurance]
	s.ExpenseOther = breakdown[CategoryOther]
	s.MonthlyExpense = s.sumCategoryExpenses()
}

func (s *GameState) sumCategoryExpenses() float64 {
	return s.ExpenseHousing + s.ExpenseFood + s.ExpenseTransport +
		s.ExpenseUtilities + s.ExpenseSubscriptions + s.ExpenseInsurance +
		s.ExpenseOther
}
