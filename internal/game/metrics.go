package game

import "math"

// CalculateFIScore computes the Financial Independence score:
// passive income over monthly cost of living, as a percentage. Capped at 100
// so the display never shows more than full independence; zero expenses score
// zero rather than dividing.
func CalculateFIScore(passiveIncome, monthlyExpenses float64) float64 {
	if monthlyExpenses <= 0 {
		return 0
	}
	score := passiveIncome / monthlyExpenses * 100
	return math.Min(score, 100)
}

// CalculateBalanceScore is the mean of the three wellbeing metrics. Inputs
// are already bounded 0..100 so the result needs no clamping.
func CalculateBalanceScore(energy, motivation, socialLife int) float64 {
	return float64(energy+motivation+socialLife) / 3
}

// CalculateNetWorth may be negative when debts dominate.
func CalculateNetWorth(money, investments, debts, assetsValue float64) float64 {
	return money + investments + assetsValue - debts
}

// UpdateMetric applies a delta to a life metric, clamped to [min,max].
func UpdateMetric(current, delta, min, max int) int {
	return clampInt(current+delta, min, max)
}

// UpdateLifeMetric is UpdateMetric with the standard 0..100 bounds.
func UpdateLifeMetric(current, delta int) int {
	return UpdateMetric(current, delta, 0, 100)
}

func Clamp(value, lo, hi float64) float64 {
	return math.Max(lo, math.Min(value, hi))
}

func clampInt(number, min, max int) int {
	if number < min {
		return min
	}
	if number > max {
		return max
	}
	return number
}

// CompoundInvestment grows an invested amount with monthly compounding.
func CompoundInvestment(amount float64, months int, annualReturn float64) float64 {
	monthlyRate := annualReturn / 12
	return amount * math.Pow(1+monthlyRate, float64(months))
}

// CompoundDebt accrues interest on a debt principal with monthly compounding.
func CompoundDebt(principal float64, months int, annualRate float64) float64 {
	monthlyRate := annualRate / 12
	return principal * math.Pow(1+monthlyRate, float64(months))
}

// HealthAssessment buckets the state into coarse status labels for display
// and history rows.
type HealthAssessment struct {
	FIStatus      string
	BalanceStatus string
	DebtStatus    string
}

func AssessFinancialHealth(state *GameState) HealthAssessment {
	var a HealthAssessment

	switch {
	case state.FIScore >= 100:
		a.FIStatus = "financially_independent"
	case state.FIScore >= 50:
		a.FIStatus = "well_progressed"
	case state.FIScore >= 25:
		a.FIStatus = "on_track"
	default:
		a.FIStatus = "early_stage"
	}

	balance := CalculateBalanceScore(state.Energy, state.Motivation, state.SocialLife)
	switch {
	case balance >= 70:
		a.BalanceStatus = "healthy"
	case balance >= 50:
		a.BalanceStatus = "moderate"
	default:
		a.BalanceStatus = "struggling"
	}

	switch {
	case state.Debts == 0:
		a.DebtStatus = "debt_free"
	case state.Debts < state.MonthlyIncome*3:
		a.DebtStatus = "manageable"
	case state.Debts < state.MonthlyIncome*6:
		a.DebtStatus = "concerning"
	default:
		a.DebtStatus = "critical"
	}

	return a
}
