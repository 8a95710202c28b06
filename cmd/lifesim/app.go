package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/appengine-ltd/lifesim/internal/config"
	"github.com/appengine-ltd/lifesim/internal/game"
	"github.com/appengine-ltd/lifesim/internal/parser"
	"github.com/appengine-ltd/lifesim/internal/recorder"
)

type AppConfig struct {
	Version string
	Config  *config.Config
	Rec     recorder.Recorder
	In      io.Reader
	Out     io.Writer
}

// App runs one interactive play session from onboarding to game over.
type App struct {
	version string
	cfg     *config.Config
	rec     recorder.Recorder
	parser  *parser.Parser
	rng     game.Rand
	in      *bufio.Scanner
	out     io.Writer
}

func NewApp(ac AppConfig) *App {
	return &App{
		version: ac.Version,
		cfg:     ac.Config,
		rec:     ac.Rec,
		parser:  parser.New(),
		rng:     game.NewRNG(ac.Config.Game.Seed),
		in:      bufio.NewScanner(ac.In),
		out:     ac.Out,
	}
}

func (a *App) Run() error {
	profile := game.PlayerProfile{
		SessionID:      game.NewSessionID(),
		PlayerName:     a.cfg.Player.Name,
		Age:            a.cfg.Player.Age,
		City:           a.cfg.Player.City,
		EducationPath:  game.EducationPath(a.cfg.Player.EducationPath),
		RiskAttitude:   game.RiskAttitude(a.cfg.Player.RiskAttitude),
		StartingSaving: a.cfg.Player.StartingSaving,
		StartingDebt:   a.cfg.Player.StartingDebt,
		Aspirations:    a.cfg.Player.Aspirations,
	}
	state := game.NewGameState(profile)

	fmt.Fprintf(a.out, "LifeSim %s\n", a.version)
	fmt.Fprintf(a.out, "Welcome, %s. Age %d, living in %s.\n", profile.PlayerName, state.CurrentAge, profile.City)
	fmt.Fprintf(a.out, "Income %s/mo, expenses %s/mo, savings %s.\n\n",
		euro(state.MonthlyIncome), euro(state.MonthlyExpense), euro(state.Money))

	for state.Status == game.StatusActive && state.MonthsPassed < a.cfg.Game.MaxMonths {
		if state.MonthPhase == 1 {
			flow := game.ApplyMonthlyCashFlow(&state)
			if flow.Applied {
				fmt.Fprintf(a.out, "--- %s, age %d ---\n", game.MonthName(state.MonthsPassed), state.CurrentAge)
				fmt.Fprintf(a.out, "Payday: +%s income, -%s expenses. Cash: %s\n",
					euro(flow.IncomeReceived), euro(flow.ExpensesPaid), euro(flow.CashBalance))
				if flow.DebtFromDeficit > 0 {
					fmt.Fprintf(a.out, "You couldn't cover the month. %s added to debt.\n", euro(flow.DebtFromDeficit))
				}
			}
			a.applyChronicImpact(&state)
		}

		eventType := game.GetEventType(&state, profile, a.rng)
		var curveball *game.Curveball
		if eventType == game.EventCurveball {
			cb := game.GenerateCurveball(&state, a.rng)
			curveball = &cb
			fmt.Fprintf(a.out, "\n! %s\n", cb.Narrative)
		}

		options := game.CreateDecisionOptions(eventType, &state, curveball)

		fmt.Fprintf(a.out, "\n[%s %s] %s\n", game.MonthPhaseName(state.MonthPhase), game.MonthName(state.MonthsPassed), eventTitle(eventType))
		for i, opt := range options {
			fmt.Fprintf(a.out, "  %d. %s\n", i+1, opt.Text)
			if opt.Explanation != "" {
				fmt.Fprintf(a.out, "     %s\n", opt.Explanation)
			}
		}

		choice, quit := a.promptChoice(&state, options)
		if quit {
			state.Status = game.StatusAbandoned
			break
		}

		opt := options[choice-1]
		effect, warnings := game.ClampExpenseEffect(&state, opt.Effect, profile.City)
		for _, w := range warnings {
			fmt.Fprintf(a.out, "  %s\n", w)
		}
		game.ValidateAndLogTransaction(&state, effect)

		rec := &recorder.DecisionRecord{
			SessionID:        profile.SessionID,
			Step:             state.CurrentStep,
			EventType:        string(eventType),
			OptionsPresented: optionTexts(options),
			ChosenOption:     opt.Text,
			MoneyBefore:      state.Money,
			FIScoreBefore:    state.FIScore,
			EnergyBefore:     state.Energy,
			MotivationBefore: state.Motivation,
			SocialBefore:     state.SocialLife,
		}
		if curveball != nil {
			rec.Narrative = curveball.Narrative
		}

		summary := game.ApplyDecisionEffects(&state, effect)

		rec.MoneyAfter = state.Money
		rec.FIScoreAfter = state.FIScore
		rec.EnergyAfter = state.Energy
		rec.MotivationAfter = state.Motivation
		rec.SocialAfter = state.SocialLife
		rec.Description = summary.Description
		if err := a.rec.RecordDecision(rec); err != nil {
			return fmt.Errorf("record decision: %w", err)
		}

		fmt.Fprintf(a.out, "  -> %s\n\n", summary.Description)
	}

	return a.finish(&state, profile)
}

// applyChronicImpact charges the monthly toll of sustained low spending in
// the sensitive categories.
func (a *App) applyChronicImpact(state *game.GameState) {
	impact := game.CalculateMonthlyHealthImpact(state.CategoryExpenses())
	if impact.IsZero() {
		return
	}
	state.Energy = game.UpdateLifeMetric(state.Energy, impact.Energy)
	state.Motivation = game.UpdateLifeMetric(state.Motivation, impact.Motivation)
	state.SocialLife = game.UpdateLifeMetric(state.SocialLife, impact.Social)
	state.FinancialKnowledge = game.UpdateLifeMetric(state.FinancialKnowledge, impact.Knowledge)
	fmt.Fprintln(a.out, "Tight budgeting is wearing on you this month.")
}

// promptChoice reads input until the player picks an option or quits.
func (a *App) promptChoice(state *game.GameState, options []game.DecisionOption) (choice int, quit bool) {
	ctx := parser.ParseContext{Options: optionTexts(options)}
	for {
		fmt.Fprint(a.out, "> ")
		if !a.in.Scan() {
			return 0, true
		}
		intent := a.parser.Parse(ctx, a.in.Text())

		if intent.Clarify != nil {
			fmt.Fprintln(a.out, intent.Clarify.Prompt)
			for _, o := range intent.Clarify.Options {
				if o.Choice > 0 {
					fmt.Fprintf(a.out, "  %d. %s\n", o.Choice, options[o.Choice-1].Text)
				} else if o.Verb != "" {
					fmt.Fprintf(a.out, "  - %s\n", o.Verb)
				}
			}
			continue
		}

		switch intent.Kind {
		case parser.Choice:
			return intent.Choice, false
		case parser.Help:
			fmt.Fprintln(a.out, "Pick an option by number or text. Commands: status, breakdown, assets, leaderboard, help, quit.")
		case parser.Query:
			a.runQuery(intent.Verb, state)
		case parser.Command:
			if intent.Verb == "quit" {
				return 0, true
			}
		default:
			fmt.Fprintln(a.out, "Pick an option number.")
		}
	}
}

func (a *App) runQuery(verb string, state *game.GameState) {
	switch verb {
	case "status":
		a.printStatus(state)
	case "breakdown":
		for _, cat := range game.AllCategories {
			fmt.Fprintf(a.out, "  %-14s %s\n", string(cat), euro(state.CategoryExpense(cat)))
		}
	case "assets":
		if len(state.Assets) == 0 {
			fmt.Fprintln(a.out, "  No assets yet.")
			return
		}
		for name, val := range state.Assets {
			fmt.Fprintf(a.out, "  %s: %v\n", name, val)
		}
	case "leaderboard":
		a.printLeaderboard()
	}
}

func (a *App) printStatus(state *game.GameState) {
	fmt.Fprintf(a.out, "  Cash %s | Investments %s | Debt %s\n",
		euro(state.Money), euro(state.Investments), euro(state.Debts))
	fmt.Fprintf(a.out, "  Income %s/mo | Expenses %s/mo | Passive %s/mo\n",
		euro(state.MonthlyIncome), euro(state.MonthlyExpense), euro(state.PassiveIncome))
	fmt.Fprintf(a.out, "  FI score %.1f | Energy %d | Motivation %d | Social %d | Knowledge %d\n",
		state.FIScore, state.Energy, state.Motivation, state.SocialLife, state.FinancialKnowledge)
}

func (a *App) printLeaderboard() {
	sq, ok := a.rec.(*recorder.SQLiteRecorder)
	if !ok {
		fmt.Fprintln(a.out, "  Leaderboard needs recording enabled (-record).")
		return
	}
	entries, err := sq.TopScores(10)
	if err != nil {
		fmt.Fprintf(a.out, "  leaderboard unavailable: %v\n", err)
		return
	}
	if len(entries) == 0 {
		fmt.Fprintln(a.out, "  No completed sessions yet.")
		return
	}
	for i, e := range entries {
		fmt.Fprintf(a.out, "  %2d. %-16s FI %.1f  balance %.1f  %s\n",
			i+1, e.PlayerName, e.FinalFIScore, e.BalanceScore, euro(e.FinalMoney))
	}
}

func (a *App) finish(state *game.GameState, profile game.PlayerProfile) error {
	if state.Status == game.StatusActive {
		state.Status = game.StatusCompleted
	}

	assessment := game.AssessFinancialHealth(state)
	fmt.Fprintf(a.out, "\n=== Session over after %d steps (%d months) ===\n", state.CurrentStep, state.MonthsPassed)
	a.printStatus(state)
	fmt.Fprintf(a.out, "  Standing: %s, life balance %s, debt %s\n",
		strings.ReplaceAll(assessment.FIStatus, "_", " "),
		assessment.BalanceStatus,
		strings.ReplaceAll(assessment.DebtStatus, "_", " "))

	entry := &recorder.LeaderboardEntry{
		SessionID:       profile.SessionID,
		PlayerName:      profile.PlayerName,
		Age:             state.CurrentAge,
		FinalFIScore:    state.FIScore,
		FinalMoney:      state.Money,
		FinalEnergy:     state.Energy,
		FinalMotivation: state.Motivation,
		FinalSocial:     state.SocialLife,
		FinalKnowledge:  state.FinancialKnowledge,
		BalanceScore:    game.CalculateBalanceScore(state.Energy, state.Motivation, state.SocialLife),
		StepsCompleted:  state.CurrentStep,
	}
	if err := a.rec.RecordLeaderboard(entry); err != nil {
		return fmt.Errorf("record leaderboard: %w", err)
	}

	if _, ok := a.rec.(*recorder.SQLiteRecorder); ok {
		fmt.Fprintln(a.out, "\nTop scores:")
		a.printLeaderboard()
	}
	return nil
}

func eventTitle(eventType game.EventType) string {
	words := strings.Split(string(eventType), "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func optionTexts(options []game.DecisionOption) []string {
	texts := make([]string, len(options))
	for i, opt := range options {
		texts[i] = opt.Text
	}
	return texts
}

func euro(amount float64) string {
	return "€" + humanize.CommafWithDigits(amount, 0)
}
