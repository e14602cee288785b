package ruleset

type Level string

const (
	LevelOff     Level = "off"
	LevelError   Level = "error"
	LevelWarning Level = "warning"
)

// Rule is the canonical, dialect-independent description of one configured
// rule. Rules are built once by Normalize and never modified afterwards.
type Rule struct {
	Name  string `json:"name"`
	Level Level  `json:"level"`
	// Where lists "axiom=value" conditions that must all hold. Empty means the
	// rule always applies.
	Where      []string       `json:"where"`
	RuleType   string         `json:"ruleType"`
	RuleConfig map[string]any `json:"ruleConfig"`
	FixType    string         `json:"fixType,omitempty"`
	FixConfig  map[string]any `json:"fixConfig,omitempty"`
	PolicyInfo string         `json:"policyInfo,omitempty"`
	PolicyURL  string         `json:"policyUrl,omitempty"`
}

// HasFix reports whether a fix is configured for the rule.
func (r Rule) HasFix() bool {
	return r.FixType != ""
}

// AxiomBinding maps an axiom plugin to the name conditions refer to it by.
type AxiomBinding struct {
	ID   string
	Name string
}
