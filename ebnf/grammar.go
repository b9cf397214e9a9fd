package ebnf

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Errors returned by Compile. Syntax errors are passed through from the
// grammar text parser unchanged.
var (
	ErrUndefinedSymbol = errors.New("undefined nonterminal")
	ErrNoStartRule     = errors.New("start symbol has no rule")
)

type symbolKind int8

const (
	terminalSymbol symbolKind = iota // terminal category
	ruleSymbol                       // nonterminal of the grammar text
	optionSymbol                     // helper for [ … ]
	repetitionSymbol                 // helper for { … }
	groupSymbol                      // helper for ( … )
)

type symbol struct {
	id       int
	name     string
	kind     symbolKind
	nullable bool
	prods    []*production
}

func (sym *symbol) terminal() bool {
	return sym.kind == terminalSymbol
}

type production struct {
	id  int
	lhs *symbol
	rhs []*symbol
}

func (p *production) String() string {
	var b strings.Builder
	b.WriteString(p.lhs.name)
	b.WriteString(" :=")
	if len(p.rhs) == 0 {
		b.WriteString(" ε")
	}
	for _, sym := range p.rhs {
		b.WriteByte(' ')
		b.WriteString(sym.name)
	}
	return b.String()
}

// Grammar is a compiled grammar: the EBNF text desugared into BNF productions,
// together with a start symbol. Grammars are immutable and may be shared
// between parsers.
type Grammar struct {
	start   *symbol
	symbols []*symbol // in order of creation; rules of the text come first
	byName  map[string]*symbol
	prods   []*production
	labels  []string // node labels, by production id
}

// Compile parses an EBNF grammar text and prepares it for parsing input
// derivable from start.
//
// A nonterminal defined more than once has the alternatives of all of its
// rules, in order of appearance.
func Compile(text string, start string) (*Grammar, error) {
	syntax, err := parseSyntax(text)
	if err != nil {
		return nil, err
	}
	c := &compiler{
		g: &Grammar{byName: make(map[string]*symbol)},
	}
	for _, rule := range syntax.Rules {
		if _, ok := c.g.byName[rule.Name]; !ok {
			c.g.newSymbol(rule.Name, ruleSymbol)
		}
	}
	for _, rule := range syntax.Rules {
		lhs := c.g.byName[rule.Name]
		alts, err := c.alternatives(rule.Name, rule.Expr)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", rule.Pos, err)
		}
		for _, rhs := range alts {
			c.g.addProduction(lhs, rhs)
		}
	}
	sym, ok := c.g.byName[start]
	if !ok || sym.kind != ruleSymbol {
		return nil, fmt.Errorf("%w: %q", ErrNoStartRule, start)
	}
	c.g.start = sym
	c.g.computeNullable()
	tracer().Debugf("compiled grammar with start symbol %s, %d productions", start, len(c.g.prods))
	return c.g, nil
}

// MustCompile is like Compile, but panics on errors.
func MustCompile(text string, start string) *Grammar {
	g, err := Compile(text, start)
	if err != nil {
		panic(err)
	}
	return g
}

// Start returns the name of the start symbol.
func (g *Grammar) Start() string {
	return g.start.name
}

// Nonterminals returns the names of the nonterminals defined in the grammar
// text, in order of definition.
func (g *Grammar) Nonterminals() []string {
	var names []string
	for _, sym := range g.symbols {
		if sym.kind == ruleSymbol {
			names = append(names, sym.name)
		}
	}
	return names
}

// Categories returns the names of the terminal categories referenced by the
// grammar, in order of first reference.
func (g *Grammar) Categories() []string {
	var names []string
	for _, sym := range g.symbols {
		if sym.terminal() {
			names = append(names, sym.name)
		}
	}
	return names
}

// Productions returns the desugared BNF productions, one per line of the form
// "NP := <NP.opt1> N".
func (g *Grammar) Productions() []string {
	prods := make([]string, len(g.prods))
	for i, p := range g.prods {
		prods[i] = p.String()
	}
	return prods
}

func (g *Grammar) String() string {
	return strings.Join(g.Productions(), "\n")
}

func (g *Grammar) newSymbol(name string, kind symbolKind) *symbol {
	sym := &symbol{id: len(g.symbols), name: name, kind: kind}
	g.symbols = append(g.symbols, sym)
	g.byName[name] = sym
	return sym
}

func (g *Grammar) addProduction(lhs *symbol, rhs []*symbol) {
	p := &production{id: len(g.prods), lhs: lhs, rhs: rhs}
	g.prods = append(g.prods, p)
	g.labels = append(g.labels, p.String())
	lhs.prods = append(lhs.prods, p)
}

// computeNullable marks every symbol deriving the empty string.
func (g *Grammar) computeNullable() {
	for changed := true; changed; {
		changed = false
		for _, p := range g.prods {
			if p.lhs.nullable {
				continue
			}
			nullable := true
			for _, sym := range p.rhs {
				if !sym.nullable {
					nullable = false
					break
				}
			}
			if nullable {
				p.lhs.nullable = true
				changed = true
			}
		}
	}
}

// --- Desugaring ------------------------------------------------------------

type compiler struct {
	g       *Grammar
	helpers map[string]int // helper count per rule
}

func (c *compiler) alternatives(owner string, expr *exprSyntax) ([][]*symbol, error) {
	alts := make([][]*symbol, 0, len(expr.Alternatives))
	for _, seq := range expr.Alternatives {
		rhs := make([]*symbol, 0, len(seq.Terms))
		for _, term := range seq.Terms {
			sym, err := c.term(owner, term)
			if err != nil {
				return nil, err
			}
			rhs = append(rhs, sym)
		}
		alts = append(alts, rhs)
	}
	return alts, nil
}

func (c *compiler) term(owner string, term *termSyntax) (*symbol, error) {
	switch {
	case term.Name != "":
		return c.reference(owner, term.Name)
	case term.Optional != nil:
		helper := c.helper(owner, "opt", optionSymbol)
		alts, err := c.alternatives(owner, term.Optional)
		if err != nil {
			return nil, err
		}
		for _, rhs := range alts {
			c.g.addProduction(helper, rhs)
		}
		c.g.addProduction(helper, nil)
		return helper, nil
	case term.Repeated != nil:
		helper := c.helper(owner, "rep", repetitionSymbol)
		alts, err := c.alternatives(owner, term.Repeated)
		if err != nil {
			return nil, err
		}
		c.g.addProduction(helper, nil)
		for _, rhs := range alts {
			c.g.addProduction(helper, append([]*symbol{helper}, rhs...))
		}
		return helper, nil
	case term.Group != nil:
		helper := c.helper(owner, "grp", groupSymbol)
		alts, err := c.alternatives(owner, term.Group)
		if err != nil {
			return nil, err
		}
		for _, rhs := range alts {
			c.g.addProduction(helper, rhs)
		}
		return helper, nil
	}
	return nil, fmt.Errorf("%s: empty term in rule %s", term.Pos, owner)
}

// reference resolves an identifier. Identifiers without a rule are terminal
// categories if they are capitalized.
func (c *compiler) reference(owner string, name string) (*symbol, error) {
	if sym, ok := c.g.byName[name]; ok {
		return sym, nil
	}
	if r, _ := utf8.DecodeRuneInString(name); !unicode.IsUpper(r) {
		return nil, fmt.Errorf("%w %q in rule %s", ErrUndefinedSymbol, name, owner)
	}
	return c.g.newSymbol(name, terminalSymbol), nil
}

func (c *compiler) helper(owner string, op string, kind symbolKind) *symbol {
	if c.helpers == nil {
		c.helpers = make(map[string]int)
	}
	c.helpers[owner]++
	name := fmt.Sprintf("<%s.%s%d>", owner, op, c.helpers[owner])
	return c.g.newSymbol(name, kind)
}
