package parser

type IntentKind int

const (
	Command IntentKind = iota
	Query
	Help
	Unknown
)

type Intent struct {
	Raw        string
	Normalised string
	Kind       IntentKind
	Verb       string
	Args       []string
	Confidence float64
	Clarify    *ClarifyQuestion
}

type ClarifyQuestion struct {
	Prompt  string
	Options []Intent
}

// ParseContext carries what the player can currently refer to. Kinds is
// every catalog display name; Landed is the haul, most recent last.
type ParseContext struct {
	Kinds      []string
	Landed     []string
	LastEntity string
}
