package engine

import (
	"fmt"
	"sort"
	"strings"

	"repocheck/internal/plugins"
)

// Wildcard is the token value meaning "the axiom matched something".
const Wildcard = "*"

// TokenSet holds the "<axiom>=<value>" strings rule conditions are matched
// against. Matching is exact and case sensitive.
type TokenSet struct {
	all    bool
	tokens map[string]struct{}
}

// MatchAll returns a TokenSet satisfying every condition. It is used when no
// axioms are configured.
func MatchAll() TokenSet {
	return TokenSet{all: true}
}

// NewTokenSet derives tokens from axiom results. Every axiom that ran
// successfully contributes "<name>=*" plus "<name>=<path>" for each of its
// targets, whatever the target's own verdict.
func NewTokenSet(axioms map[string]plugins.Result) TokenSet {
	s := TokenSet{tokens: make(map[string]struct{})}
	for name, res := range axioms {
		if !res.Passed {
			continue
		}
		s.tokens[Token(name, Wildcard)] = struct{}{}
		for _, t := range res.Targets {
			s.tokens[Token(name, t.Path)] = struct{}{}
		}
	}
	return s
}

func Token(axiom, value string) string {
	return axiom + "=" + value
}

// MatchesAll reports whether the set is the unconditional sentinel.
func (s TokenSet) MatchesAll() bool {
	return s.all
}

func (s TokenSet) Has(token string) bool {
	if s.all {
		return true
	}
	_, ok := s.tokens[token]
	return ok
}

// Unsatisfied returns the conditions in where not present in the set, in
// their original order.
func (s TokenSet) Unsatisfied(where []string) []string {
	if s.all {
		return nil
	}
	var out []string
	for _, cond := range where {
		if !s.Has(cond) {
			out = append(out, cond)
		}
	}
	return out
}

// Tokens returns the sorted tokens; nil for MatchAll.
func (s TokenSet) Tokens() []string {
	if s.all {
		return nil
	}
	out := make([]string, 0, len(s.tokens))
	for t := range s.tokens {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

func quoteList(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = fmt.Sprintf("%q", v)
	}
	return strings.Join(quoted, ", ")
}
