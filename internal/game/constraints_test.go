package game

import "testing"

func TestValidateExpenseChange(t *testing.T) {
	tests := []struct {
		name        string
		category    ExpenseCategory
		current     float64
		change      float64
		city        string
		wantAllowed float64
		wantWarning bool
	}{
		{
			name:     "Reduction Above Floor Passes",
			category: CategoryFood, current: 300, change: -50, city: "Tampere",
			wantAllowed: -50, wantWarning: false,
		},
		{
			name:     "Reduction Capped At Floor",
			category: CategoryFood, current: 180, change: -50, city: "Tampere",
			wantAllowed: -30, wantWarning: true,
		},
		{
			name:     "Helsinki Housing Floor Raised",
			category: CategoryHousing, current: 450, change: -100, city: "Helsinki",
			wantAllowed: -50, wantWarning: true,
		},
		{
			name:     "Non Capital Housing Floor",
			category: CategoryHousing, current: 450, change: -100, city: "Tampere",
			wantAllowed: -100, wantWarning: false,
		},
		{
			name:     "Subscriptions Can Hit Zero",
			category: CategorySubscriptions, current: 40, change: -40, city: "Tampere",
			wantAllowed: -40, wantWarning: false,
		},
		{
			// Already underwater: the allowed delta turns positive and pulls
			// the value back up to the floor.
			name:     "Underwater Value Self Heals",
			category: CategoryFood, current: 140, change: -20, city: "Tampere",
			wantAllowed: 10, wantWarning: true,
		},
		{
			name:     "Increase Always Allowed",
			category: CategoryHousing, current: 300, change: 200, city: "Helsinki",
			wantAllowed: 200, wantWarning: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			allowed, warning := ValidateExpenseChange(tt.category, tt.current, tt.change, tt.city)
			if allowed != tt.wantAllowed {
				t.Errorf("allowed = %v, want %v", allowed, tt.wantAllowed)
			}
			if (warning != "") != tt.wantWarning {
				t.Errorf("warning = %q, wantWarning %v", warning, tt.wantWarning)
			}
		})
	}
}

func TestCalculateHealthImpact(t *testing.T) {
	tests := []struct {
		name     string
		category ExpenseCategory
		current  float64
		change   float64
		want     HealthImpact
	}{
		{
			name:     "Food At Poor Band",
			category: CategoryFood, current: 170, change: -20,
			want: HealthImpact{Energy: -3, Motivation: -1},
		},
		{
			name:     "Food In Adequate Band",
			category: CategoryFood, current: 220, change: -30,
			want: HealthImpact{Energy: -1},
		},
		{
			name:     "Food Crossing Comfortable Upward",
			category: CategoryFood, current: 200, change: 60,
			want: HealthImpact{Energy: 1},
		},
		{
			name:     "Food Already Comfortable No Bonus",
			category: CategoryFood, current: 260, change: 20,
			want: HealthImpact{},
		},
		{
			name:     "Housing At Minimum",
			category: CategoryHousing, current: 350, change: -50,
			want: HealthImpact{Energy: -2, Social: -1},
		},
		{
			name:     "Housing Adequate Band",
			category: CategoryHousing, current: 400, change: -60,
			want: HealthImpact{Energy: -1},
		},
		{
			name:     "Transport At Minimum",
			category: CategoryTransport, current: 50, change: -20,
			want: HealthImpact{Social: -1},
		},
		{
			name:     "Utilities Never Impact Health",
			category: CategoryUtilities, current: 60, change: -60,
			want: HealthImpact{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateHealthImpact(tt.category, tt.current, tt.change)
			if got != tt.want {
				t.Errorf("CalculateHealthImpact() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestCalculateMonthlyHealthImpact(t *testing.T) {
	tests := []struct {
		name     string
		expenses map[ExpenseCategory]float64
		want     HealthImpact
	}{
		{
			name: "All Comfortable",
			expenses: map[ExpenseCategory]float64{
				CategoryFood: 300, CategoryHousing: 600, CategoryTransport: 90,
			},
			want: HealthImpact{},
		},
		{
			name: "Chronic Underspending Stacks",
			expenses: map[ExpenseCategory]float64{
				CategoryFood: 150, CategoryHousing: 300, CategoryTransport: 30,
			},
			want: HealthImpact{Energy: -3, Motivation: -1, Social: -2},
		},
		{
			name: "Poor Diet Only",
			expenses: map[ExpenseCategory]float64{
				CategoryFood: 180, CategoryHousing: 600, CategoryTransport: 90,
			},
			want: HealthImpact{Energy: -1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateMonthlyHealthImpact(tt.expenses)
			if got != tt.want {
				t.Errorf("CalculateMonthlyHealthImpact() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestGetExpenseWarning(t *testing.T) {
	if msg := GetExpenseWarning(CategoryFood, 150); msg == "" {
		t.Error("minimum food budget should warn")
	}
	if msg := GetExpenseWarning(CategoryFood, 300); msg != "" {
		t.Errorf("comfortable food budget should not warn, got %q", msg)
	}
	if msg := GetExpenseWarning(CategorySubscriptions, 0); msg != "" {
		t.Errorf("subscriptions never warn, got %q", msg)
	}
}
