package game

import "fmt"

// EventType names a decision point presented to the player.
type EventType string

const (
	EventMonthlyBudget      EventType = "monthly_budget"
	EventSavingsDecision    EventType = "savings_decision"
	EventInvestmentPlanning EventType = "investment_planning"
	EventDebtPaymentPlan    EventType = "debt_payment_plan"
	EventIncomeReview       EventType = "income_review"

	EventSocialEvent       EventType = "social_event"
	EventSmallPurchase     EventType = "small_purchase"
	EventMinorEmergency    EventType = "minor_emergency"
	EventDailyChoice       EventType = "daily_choice"
	EventEntertainment     EventType = "entertainment_option"
	EventMaintenanceIssue  EventType = "maintenance_issue"
	EventSideHustle        EventType = "side_hustle_opportunity"
	EventUnexpectedExpense EventType = "unexpected_expense"

	// EventEducation is caller-injected (scripted flows); GetEventType
	// never draws it, but CreateDecisionOptions serves it.
	EventEducation EventType = "education_opportunity"

	EventCurveball EventType = "curveball"
)

// Phase 1 carries the month's planning decisions; phases 2 and 3 carry the
// smaller daily ones.
var phase1Events = []EventType{
	EventMonthlyBudget,
	EventSavingsDecision,
	EventInvestmentPlanning,
	EventDebtPaymentPlan,
	EventIncomeReview,
}

var phase23Events = []EventType{
	EventSocialEvent,
	EventSmallPurchase,
	EventMinorEmergency,
	EventDailyChoice,
	EventEntertainment,
	EventMaintenanceIssue,
	EventSideHustle,
	EventUnexpectedExpense,
}

// MonthPhaseName gives the display name for a phase step.
func MonthPhaseName(phase int) string {
	switch phase {
	case 2:
		return "Mid"
	case 3:
		return "Late"
	default:
		return "Early"
	}
}

var monthNames = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// MonthName maps elapsed months onto a calendar month, starting in January.
func MonthName(monthsPassed int) string {
	return monthNames[((monthsPassed%12)+12)%12]
}

// GetEventType decides the next decision point. Phase 1 forces a debt
// payment plan once debts run past twice the monthly income, else draws
// uniformly from the planning pool. Phases 2 and 3 first roll for a
// curveball interrupt, then draw from the daily pool with state-dependent
// weights; a weight of zero removes the event from the pool entirely.
func GetEventType(state *GameState, profile PlayerProfile, rng Rand) EventType {
	if state.MonthPhase == 1 {
		if state.Debts > state.MonthlyIncome*2 {
			return EventDebtPaymentPlan
		}
		return phase1Events[rng.IntN(len(phase1Events))]
	}

	if ShouldTriggerCurveball(state, rng) {
		return EventCurveball
	}

	weights := map[EventType]int{
		EventSocialEvent:       1,
		EventSmallPurchase:     1,
		EventMinorEmergency:    1,
		EventDailyChoice:       2,
		EventEntertainment:     1,
		EventMaintenanceIssue:  1,
		EventSideHustle:        0,
		EventUnexpectedExpense: 1,
	}
	if state.Energy > 50 {
		weights[EventSocialEvent] = 2
	}
	if state.Money > state.MonthlyExpense {
		weights[EventSmallPurchase] = 2
	}
	if state.SocialLife < 60 {
		weights[EventEntertainment] = 2
	}
	if state.RiskFactors["has_car"] {
		weights[EventMaintenanceIssue] = 2
	}
	if state.Motivation > 60 {
		weights[EventSideHustle] = 1
	}

	return weightedChoice(phase23Events, weights, rng)
}

// weightedChoice draws from candidates in order, proportional to weight.
// Zero-weight candidates never appear.
func weightedChoice(candidates []EventType, weights map[EventType]int, rng Rand) EventType {
	total := 0
	for _, c := range candidates {
		total += weights[c]
	}
	if total <= 0 {
		return candidates[0]
	}
	pick := rng.IntN(total)
	for _, c := range candidates {
		w := weights[c]
		if w <= 0 {
			continue
		}
		if pick < w {
			return c
		}
		pick -= w
	}
	return candidates[len(candidates)-1]
}

// ShouldTriggerCurveball rolls the curveball interrupt. Planning steps carry
// a higher base chance than daily ones; owning a car or a pet and running
// heavy debt each stack extra probability. The first in-game month is always
// safe so new players learn the normal cadence first.
func ShouldTriggerCurveball(state *GameState, rng Rand) bool {
	baseProb := 0.15
	if state.MonthPhase == 2 || state.MonthPhase == 3 {
		baseProb = 0.08
	}

	if state.RiskFactors["has_car"] {
		baseProb += 0.03
	}
	if state.RiskFactors["has_pet"] {
		baseProb += 0.03
	}
	if state.Debts > state.MonthlyIncome*3 {
		baseProb += 0.05
	}

	if state.MonthsPassed < 1 {
		return false
	}

	return rng.Float64() < baseProb
}

// CurveballKind tells which financial shape a curveball takes: a one-off
// cost, a one-off windfall, or a recurring monthly cost change.
type CurveballKind string

const (
	CurveballCost        CurveballKind = "cost"
	CurveballGain        CurveballKind = "gain"
	CurveballMonthlyCost CurveballKind = "monthly_cost"
)

// Curveball is a transient event record: consumed to build options, never
// persisted on its own.
type Curveball struct {
	Narrative string
	Type      string
	Kind      CurveballKind
	Amount    float64
}

// GenerateCurveball builds the candidate list for the current state and
// picks one uniformly. Mid/late-month curveballs are scaled to 0.4 of the
// phase-1 magnitudes; the two large windfalls only appear in phase 1.
func GenerateCurveball(state *GameState, rng Rand) Curveball {
	scale := 1.0
	if state.MonthPhase == 2 || state.MonthPhase == 3 {
		scale = 0.4
	}

	var curveballs []Curveball

	if state.RiskFactors["has_car"] {
		if scale < 1.0 {
			cost := 250 * scale
			curveballs = append(curveballs, Curveball{
				Narrative: fmt.Sprintf("Your car needs a minor repair. The mechanic quotes €%.0f.", cost),
				Type:      "car_repair",
				Kind:      CurveballCost,
				Amount:    cost,
			})
		} else {
			curveballs = append(curveballs,
				Curveball{
					Narrative: "Your car suddenly breaks down and needs urgent repairs. The mechanic quotes €1,200.",
					Type:      "car_repair",
					Kind:      CurveballCost,
					Amount:    1200,
				},
				Curveball{
					Narrative: "Your car insurance premium is increasing by 30% next month.",
					Type:      "insurance_increase",
					Kind:      CurveballMonthlyCost,
					Amount:    60,
				},
			)
		}
	}

	if state.RiskFactors["has_pet"] {
		cost := 800 * scale
		curveballs = append(curveballs, Curveball{
			Narrative: fmt.Sprintf("Your pet needs veterinary care. The vet bill is €%.0f.", cost),
			Type:      "vet_bill",
			Kind:      CurveballCost,
			Amount:    cost,
		})
	}

	curveballs = append(curveballs,
		Curveball{
			Narrative: fmt.Sprintf("Surprise! You received €%.0f from a side gig payment.", 400*scale),
			Type:      "bonus",
			Kind:      CurveballGain,
			Amount:    400 * scale,
		},
		Curveball{
			Narrative: fmt.Sprintf("Your phone/laptop needs an urgent repair costing €%.0f.", 300*scale),
			Type:      "tech_repair",
			Kind:      CurveballCost,
			Amount:    300 * scale,
		},
	)

	if scale >= 1.0 {
		curveballs = append(curveballs,
			Curveball{
				Narrative: "Surprise! You received a tax refund of €600.",
				Type:      "tax_refund",
				Kind:      CurveballGain,
				Amount:    600,
			},
			Curveball{
				Narrative: "Your employer announced unexpected bonuses. You receive €1,000!",
				Type:      "bonus_large",
				Kind:      CurveballGain,
				Amount:    1000,
			},
		)
	}

	return curveballs[rng.IntN(len(curveballs))]
}
