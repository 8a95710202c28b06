package parser

type IntentKind int

const (
	Choice IntentKind = iota
	Command
	Query
	Help
	Unknown
)

type Intent struct {
	Raw        string
	Normalised string
	Kind       IntentKind
	Verb       string
	Choice     int // 1-based option index when Kind == Choice
	Confidence float64
	Clarify    *ClarifyQuestion
}

type ClarifyQuestion struct {
	Prompt  string
	Options []Intent
}

// ParseContext carries the texts of the decision options currently on
// offer, so free text like "pay off the loan" can resolve to one of them.
type ParseContext struct {
	Options []string
}

type CommandDef struct {
	Canonical  string
	Aliases    []string
	HandlerKey string
}
