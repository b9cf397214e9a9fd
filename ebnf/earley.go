package ebnf

import (
	"errors"
	"iter"
)

// ErrNoGrammar is returned when parsing without a grammar.
var ErrNoGrammar = errors.New("parser has no grammar")

// Parser parses token sequences with a compiled grammar. Terminal categories
// are resolved through the Terminals registry given at construction time.
type Parser struct {
	g     *Grammar
	terms Terminals
}

// NewParser creates a parser for grammar g. terms may be nil, in which case no
// terminal category will ever match.
func NewParser(g *Grammar, terms Terminals) *Parser {
	return &Parser{g: g, terms: terms}
}

// Grammar returns the grammar of the parser.
func (p *Parser) Grammar() *Grammar {
	return p.g
}

// Parse recognizes tokens and returns the resulting parse forest.
// Clients should call Close on the forest after they are done with it.
func (p *Parser) Parse(tokens []string) (*Forest, error) {
	if p.g == nil {
		return nil, ErrNoGrammar
	}
	n := len(tokens)
	f := &Forest{parser: p, tokens: tokens, chart: borrowChart(n + 1)}
	for _, prod := range p.g.start.prods {
		f.chart.sets[0].add(item{prod: prod})
	}
	for i := 0; i <= n; i++ {
		set := f.chart.sets[i]
		for k := 0; k < len(set.items); k++ { // set.items grows during the loop
			it := set.items[k]
			switch {
			case it.complete():
				f.complete(it, i)
			case it.next().terminal():
				if i < n && p.terms.Match(it.next().name, tokens[i]) {
					f.chart.sets[i+1].add(it.advance())
				}
			default:
				f.predict(it, i)
			}
		}
		tracer().Debugf("item set %d has %d items", i, len(set.items))
	}
	f.accepted = len(f.chart.completed(p.g.start, 0, n)) > 0
	tracer().Infof("input of %d tokens accepted = %v", n, f.accepted)
	return f, nil
}

// Trees parses tokens and returns a sequence of all parse trees.
// Each iteration of the sequence re-parses the input, so the sequence may be
// ranged over more than once.
func (p *Parser) Trees(tokens []string) (iter.Seq[Tree], error) {
	if p.g == nil {
		return nil, ErrNoGrammar
	}
	return func(yield func(Tree) bool) {
		f, err := p.Parse(tokens)
		if err != nil {
			return
		}
		defer f.Close()
		for t := range f.Trees() {
			if !yield(t) {
				return
			}
		}
	}, nil
}

// predict adds the productions of the nonterminal after the dot. Nullable
// nonterminals are skipped immediately as well (Aycock & Horspool), as their
// completion would otherwise miss items added to the set later on.
func (f *Forest) predict(it item, at int) {
	sym := it.next()
	set := f.chart.sets[at]
	for _, prod := range sym.prods {
		set.add(item{prod: prod, origin: at})
	}
	if sym.nullable {
		set.add(it.advance())
	}
}

func (f *Forest) complete(it item, at int) {
	lhs := it.prod.lhs
	set := f.chart.sets[at]
	waiting := f.chart.sets[it.origin].items
	for _, w := range waiting {
		if !w.complete() && w.next() == lhs {
			set.add(w.advance())
		}
	}
}

// --- Forest ----------------------------------------------------------------

// Forest is the result of parsing a token sequence: the Earley chart, from
// which parse trees are enumerated on demand.
type Forest struct {
	parser   *Parser
	tokens   []string
	chart    *chart
	accepted bool
}

// Accepted is true if the input has at least one derivation.
func (f *Forest) Accepted() bool {
	return f.accepted
}

// Tokens returns the input tokens of the parse.
func (f *Forest) Tokens() []string {
	return f.tokens
}

// Close releases the chart. Trees must not be called after Close.
func (f *Forest) Close() {
	if f.chart != nil {
		f.chart.release()
		f.chart = nil
	}
}

// Trees returns a sequence of the parse trees of the forest. Each tree is a
// derivation of the start symbol over the complete input. The sequence is
// finite: derivation cycles (a nonterminal deriving itself over the same span
// of input) are not followed.
func (f *Forest) Trees() iter.Seq[Tree] {
	return func(yield func(Tree) bool) {
		if !f.accepted || f.chart == nil {
			return
		}
		w := &walker{f: f, active: make(map[span]struct{})}
		w.derive(f.parser.g.start, 0, len(f.tokens), func(trees []Tree) bool {
			for _, t := range trees {
				if !yield(t) {
					return false
				}
			}
			return true
		})
	}
}

func (f *Forest) matches(sym *symbol, at int) bool {
	return at < len(f.tokens) && f.parser.terms.Match(sym.name, f.tokens[at])
}
