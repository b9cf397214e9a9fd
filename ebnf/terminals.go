package ebnf

// Predicate decides whether a literal token belongs to a terminal category.
type Predicate interface {
	Contains(token string) bool
}

// Terminals maps terminal category names to predicates. Categories referenced
// by a grammar but missing from Terminals never match any token.
type Terminals map[string]Predicate

// Match reports whether token is a member of category.
func (terms Terminals) Match(category string, token string) bool {
	if pred, ok := terms[category]; ok && pred != nil {
		return pred.Contains(token)
	}
	return false
}

// Literals is a simple Predicate over a fixed set of tokens.
type Literals map[string]struct{}

// NewLiterals creates a predicate matching exactly the given tokens.
func NewLiterals(tokens ...string) Literals {
	lits := make(Literals, len(tokens))
	for _, tok := range tokens {
		lits[tok] = struct{}{}
	}
	return lits
}

// Contains is part of interface Predicate.
func (lits Literals) Contains(token string) bool {
	_, ok := lits[token]
	return ok
}
