package game

// ClampExpenseEffect runs every category delta in an effect through the
// floor validation for the player's city, folds the resulting one-off health
// impacts into the effect's metric deltas, and collects the warnings. The
// returned effect is what should actually be applied; the attempt itself is
// never rejected.
func ClampExpenseEffect(state *GameState, effect DecisionEffect, city string) (DecisionEffect, []string) {
	var warnings []string

	for _, category := range AllCategories {
		change := effect.CategoryChange(category)
		if change == 0 {
			continue
		}

		current := state.CategoryExpense(category)
		allowed, warning := ValidateExpenseChange(category, current, change, city)
		if warning != "" {
			warnings = append(warnings, warning)
		}
		effect.SetCategoryChange(category, allowed)

		impact := CalculateHealthImpact(category, current, allowed)
		if impact.IsZero() {
			continue
		}
		effect.EnergyChange += impact.Energy
		effect.MotivationChange += impact.Motivation
		effect.SocialChange += impact.Social
		effect.KnowledgeChange += impact.Knowledge

		if msg := GetExpenseWarning(category, current+allowed); msg != "" {
			warnings = append(warnings, msg)
		}
	}

	return effect, warnings
}
