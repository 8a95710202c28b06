package game

import (
	"fmt"
	"math"
)

// DecisionOption is one playable choice: display text, a fully-populated
// effect, and a short explanation of what it does to the numbers.
type DecisionOption struct {
	Text        string
	Explanation string
	Effect      DecisionEffect
}

// CreateDecisionOptions builds the 2-4 options for an event. Curveballs get
// the three standard response patterns for their kind; every other event
// dispatches to its static factory, falling back to the budget options for
// event types without a dedicated set.
func CreateDecisionOptions(eventType EventType, state *GameState, curveball *Curveball) []DecisionOption {
	if eventType == EventCurveball && curveball != nil {
		return createCurveballOptions(*curveball)
	}

	switch eventType {
	case EventSavingsDecision:
		return createEmergencyFundOptions(state)
	case EventInvestmentPlanning:
		return createInvestmentOptions(state)
	case EventIncomeReview, EventSideHustle:
		return createCareerOptions(state)
	case EventDebtPaymentPlan:
		return createDebtOptions(state)
	case EventSocialEvent:
		return createSocialOptions(state)
	case EventEducation:
		return createEducationOptions(state)
	case EventDailyChoice, EventEntertainment:
		return createLifestyleOptions(state)
	default:
		return createBudgetOptions(state)
	}
}

func createBudgetOptions(_ *GameState) []DecisionOption {
	return []DecisionOption{
		{
			Text:        "Create a detailed budget using the 50/30/20 rule",
			Explanation: "Track expenses with 50% for needs, 30% for wants, 20% for savings",
			Effect:      DecisionEffect{KnowledgeChange: 15, MotivationChange: 5},
		},
		{
			Text:        "Use a budgeting app to automate tracking",
			Explanation: "Subscribe to a budgeting app (€5) for automated expense tracking",
			Effect:      DecisionEffect{KnowledgeChange: 10, MoneyChange: -5, MotivationChange: 10},
		},
		{
			Text:        "Keep rough mental track of spending",
			Explanation: "Casual approach: no formal budget, just estimate spending mentally",
			Effect:      DecisionEffect{KnowledgeChange: 2},
		},
	}
}

func createEmergencyFundOptions(state *GameState) []DecisionOption {
	target := state.MonthlyExpense * 3
	aggressive := math.Min(state.MonthlyIncome*0.4, target-state.Money)

	return []DecisionOption{
		{
			Text:        fmt.Sprintf("Save aggressively to reach 3 months expenses (€%.0f)", target),
			Explanation: fmt.Sprintf("Save €%.0f (40%% of income) to build emergency fund of €%.0f", aggressive, target),
			Effect:      DecisionEffect{MoneyChange: aggressive, KnowledgeChange: 10, SocialChange: -5},
		},
		{
			Text:        "Save gradually while maintaining lifestyle",
			Explanation: fmt.Sprintf("Save €%.0f (20%% of income) monthly, keep lifestyle balanced", state.MonthlyIncome*0.2),
			Effect:      DecisionEffect{MoneyChange: state.MonthlyIncome * 0.2, KnowledgeChange: 5},
		},
		{
			Text:        "Focus on enjoying life now, save what's left",
			Explanation: fmt.Sprintf("Live well now, save only €%.0f (5%%) from each paycheck", state.MonthlyIncome*0.05),
			Effect:      DecisionEffect{MoneyChange: state.MonthlyIncome * 0.05, SocialChange: 10, EnergyChange: 5},
		},
	}
}

func createInvestmentOptions(_ *GameState) []DecisionOption {
	return []DecisionOption{
		{
			Text:        "Invest €2,000 in diversified index funds",
			Explanation: "Invest €2,000 in low-cost index funds for long-term compound growth",
			Effect:      DecisionEffect{MoneyChange: -2000, InvestmentChange: 2000, PassiveIncomeChange: 10, KnowledgeChange: 15},
		},
		{
			Text:        "Invest €1,000 in a high-growth tech fund",
			Explanation: "Invest €1,000 in higher-risk tech sector for potential bigger returns",
			Effect:      DecisionEffect{MoneyChange: -1000, InvestmentChange: 1000, PassiveIncomeChange: 8, KnowledgeChange: 10},
		},
		{
			Text:        "Keep savings liquid for now",
			Explanation: "Skip investing this time, keep cash available for opportunities or emergencies",
			Effect:      DecisionEffect{MotivationChange: -5},
		},
	}
}

func createCareerOptions(_ *GameState) []DecisionOption {
	return []DecisionOption{
		{
			Text:        "Take overtime shifts for extra income",
			Explanation: "Work extra hours for €400 more monthly income, but sacrifice energy and social time",
			Effect:      DecisionEffect{IncomeChange: 400, EnergyChange: -15, SocialChange: -10},
		},
		{
			Text:        "Pursue a certification course for career growth",
			Explanation: "Pay €800 for certification that boosts income by €200/month and opens career doors",
			Effect:      DecisionEffect{MoneyChange: -800, IncomeChange: 200, KnowledgeChange: 20, MotivationChange: 10},
		},
		{
			Text:        "Maintain current work-life balance",
			Explanation: "Keep things as they are, prioritize well-being over extra earnings",
			Effect:      DecisionEffect{EnergyChange: 5, SocialChange: 5},
		},
	}
}

func createLifestyleOptions(_ *GameState) []DecisionOption {
	return []DecisionOption{
		{
			Text:        "Join a gym and cooking class (€60/month)",
			Explanation: "Invest €60/month in gym membership and cooking class for health and skills",
			Effect:      DecisionEffect{ExpenseSubscriptionsChange: 60, EnergyChange: 15, MotivationChange: 10},
		},
		{
			Text:        "Free outdoor activities and online resources",
			Explanation: "Stay active with free running, hiking, and online fitness videos",
			Effect:      DecisionEffect{EnergyChange: 10, KnowledgeChange: 5},
		},
		{
			Text:        "Treat yourself to entertainment subscriptions (€40/month)",
			Explanation: "Subscribe to streaming services and gaming for €40/month entertainment",
			Effect:      DecisionEffect{ExpenseSubscriptionsChange: 40, MotivationChange: 10, SocialChange: 5},
		},
	}
}

func createDebtOptions(state *GameState) []DecisionOption {
	payment := math.Min(state.Debts*0.5, state.Money*0.6)

	return []DecisionOption{
		{
			Text:        fmt.Sprintf("Pay off €%.0f of debt aggressively", payment),
			Explanation: fmt.Sprintf("Pay €%.0f toward debt to reduce burden and save on interest", payment),
			Effect:      DecisionEffect{MoneyChange: -payment, DebtChange: -payment, MotivationChange: 15, KnowledgeChange: 10},
		},
		{
			Text:        "Make minimum payments, invest the difference",
			Explanation: fmt.Sprintf("Pay minimum €%.0f, invest €%.0f for potential higher returns", payment*0.2, payment*0.3),
			Effect:      DecisionEffect{MoneyChange: -payment * 0.2, DebtChange: -payment * 0.2, InvestmentChange: payment * 0.3, PassiveIncomeChange: 2},
		},
		{
			Text:        "Refinance debt at a lower interest rate",
			Explanation: fmt.Sprintf("Negotiate lower rate, effectively reducing debt by €%.0f in interest savings", state.Debts*0.05),
			Effect:      DecisionEffect{DebtChange: -state.Debts * 0.05, KnowledgeChange: 15},
		},
	}
}

func createSocialOptions(_ *GameState) []DecisionOption {
	return []DecisionOption{
		{
			Text:        "Host a potluck dinner party (€30)",
			Explanation: "Spend €30 hosting friends at home for affordable quality time",
			Effect:      DecisionEffect{MoneyChange: -30, SocialChange: 15, EnergyChange: -5, MotivationChange: 10},
		},
		{
			Text:        "Attend expensive concert/event (€120)",
			Explanation: "Splurge €120 on an amazing concert or event for memorable experience",
			Effect:      DecisionEffect{MoneyChange: -120, SocialChange: 20, MotivationChange: 15},
		},
		{
			Text:        "Free community activities and meetups",
			Explanation: "Join free local events, park hangouts, or community groups",
			Effect:      DecisionEffect{SocialChange: 10, EnergyChange: 5},
		},
	}
}

func createEducationOptions(_ *GameState) []DecisionOption {
	return []DecisionOption{
		{
			Text:        "Take online financial literacy course (€200)",
			Explanation: "Invest €200 in structured financial education for better money decisions",
			Effect:      DecisionEffect{MoneyChange: -200, KnowledgeChange: 25, MotivationChange: 10},
		},
		{
			Text:        "Read free personal finance books and blogs",
			Explanation: "Self-study using library books and financial blogs at no cost",
			Effect:      DecisionEffect{KnowledgeChange: 15, MotivationChange: 5},
		},
		{
			Text:        "Learn by doing, skip formal education",
			Explanation: "Learn through real-world experience and mistakes over time",
			Effect:      DecisionEffect{KnowledgeChange: 5},
		},
	}
}

func createCurveballOptions(curveball Curveball) []DecisionOption {
	switch curveball.Kind {
	case CurveballCost:
		cost := curveball.Amount
		return []DecisionOption{
			{
				Text:        fmt.Sprintf("Pay from savings (€%.0f)", cost),
				Explanation: fmt.Sprintf("Use €%.0f from savings to handle this immediately", cost),
				Effect:      DecisionEffect{MoneyChange: -cost, MotivationChange: -10},
			},
			{
				Text:        fmt.Sprintf("Use credit/take loan (€%.0f)", cost),
				Explanation: fmt.Sprintf("Borrow €%.0f to cover costs, pay back with interest over time", cost),
				Effect:      DecisionEffect{DebtChange: cost, MotivationChange: -15, EnergyChange: -5},
			},
			{
				Text:        "Try to negotiate or find cheaper alternative",
				Explanation: fmt.Sprintf("Spend time finding deals, pay only €%.0f instead", cost*0.7),
				Effect:      DecisionEffect{MoneyChange: -cost * 0.7, EnergyChange: -10, KnowledgeChange: 10},
			},
		}
	case CurveballGain:
		gain := curveball.Amount
		return []DecisionOption{
			{
				Text:        fmt.Sprintf("Save the entire €%.0f", gain),
				Explanation: fmt.Sprintf("Put all €%.0f windfall into savings for security", gain),
				Effect:      DecisionEffect{MoneyChange: gain, MotivationChange: 5},
			},
			{
				Text:        fmt.Sprintf("Invest €%.0f for long-term growth", gain),
				Explanation: fmt.Sprintf("Invest €%.0f in index funds for compound growth potential", gain),
				Effect:      DecisionEffect{InvestmentChange: gain, PassiveIncomeChange: gain * 0.005, KnowledgeChange: 5},
			},
			{
				Text:        fmt.Sprintf("Treat yourself and save half (€%.0f)", gain/2),
				Explanation: fmt.Sprintf("Enjoy €%.0f now, save €%.0f for later", gain/2, gain/2),
				Effect:      DecisionEffect{MoneyChange: gain * 0.5, SocialChange: 10, MotivationChange: 10},
			},
		}
	case CurveballMonthlyCost:
		monthly := curveball.Amount
		return []DecisionOption{
			{
				Text:        fmt.Sprintf("Accept the increase (€%.0f/month)", monthly),
				Explanation: fmt.Sprintf("Pay the extra €%.0f/month without changes", monthly),
				Effect:      DecisionEffect{ExpenseInsuranceChange: monthly, MotivationChange: -10},
			},
			{
				Text:        "Look for alternatives or negotiate",
				Explanation: fmt.Sprintf("Shop around and negotiate, reduce impact to €%.0f/month", monthly*0.5),
				Effect:      DecisionEffect{ExpenseInsuranceChange: monthly * 0.5, EnergyChange: -10, KnowledgeChange: 10},
			},
			{
				Text:        "Cut other expenses to compensate",
				Explanation: fmt.Sprintf("Accept €%.0f/month increase but reduce spending elsewhere", monthly),
				Effect:      DecisionEffect{ExpenseInsuranceChange: monthly, ExpenseOtherChange: -monthly, SocialChange: -10, EnergyChange: -5},
			},
		}
	default:
		return nil
	}
}
