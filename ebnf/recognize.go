package ebnf

import (
	"sort"
	"strings"

	"github.com/npillmayer/gorgo/lr"
	"github.com/npillmayer/gorgo/lr/earley"
	"github.com/npillmayer/gorgo/lr/scanner"
	"github.com/npillmayer/gorgo/lr/sppf"
)

// Recognize checks tokens with gorgo's Earley parser. It is independent of
// Parse and is used as a second opinion on whether an input is derivable.
// If the input is accepted, the shared packed parse forest created by gorgo
// is returned as well.
//
// gorgo expects a single token class per input token, whereas a token may
// satisfy more than one of our terminal categories. We therefore classify
// tokens by their signature, i.e. the set of categories they satisfy, and let
// every category derive each of its signatures.
func (p *Parser) Recognize(tokens []string) (bool, *sppf.Forest, error) {
	if p.g == nil {
		return false, nil, ErrNoGrammar
	}
	sigs, tokvals := p.signatures(tokens)
	if tokvals == nil {
		tracer().Infof("token without category, input rejected")
		return false, nil, nil
	}
	productive := p.productive(sigs)
	if !productive[p.g.start.id] {
		tracer().Infof("start symbol %s cannot derive input", p.g.start.name)
		return false, nil, nil
	}
	g, err := p.gorgoGrammar(sigs, productive)
	if err != nil {
		return false, nil, err
	}
	parser := earley.NewParser(lr.Analysis(g), earley.GenerateTree(true), earley.StoreTokens(true))
	accept, err := parser.Parse(&tokenScanner{tokens: tokens, tokvals: tokvals}, nil)
	var forest *sppf.Forest
	if accept {
		forest = parser.ParseForest()
	}
	return accept, forest, err
}

type signature struct {
	key        string // category names joined by '|'
	categories []string
	tokval     int
}

// signatures computes the signatures present in tokens and the token value
// for each token. If a token does not satisfy any category, tokvals is nil.
func (p *Parser) signatures(tokens []string) ([]*signature, []int) {
	categories := p.g.Categories()
	byKey := make(map[string]*signature)
	var sigs []*signature
	tokvals := make([]int, len(tokens))
	for i, tok := range tokens {
		var cats []string
		for _, cat := range categories {
			if p.terms.Match(cat, tok) {
				cats = append(cats, cat)
			}
		}
		if len(cats) == 0 {
			return nil, nil
		}
		key := strings.Join(cats, "|")
		sig, ok := byKey[key]
		if !ok {
			sig = &signature{key: key, categories: cats, tokval: len(sigs) + 1}
			byKey[key] = sig
			sigs = append(sigs, sig)
		}
		tokvals[i] = sig.tokval
	}
	return sigs, tokvals
}

// productive marks the symbols able to derive a string of the signatures
// present. gorgo will not accept references to symbols without a rule, so
// unproductive parts of the grammar are left out.
func (p *Parser) productive(sigs []*signature) []bool {
	productive := make([]bool, len(p.g.symbols))
	for _, sig := range sigs {
		for _, cat := range sig.categories {
			productive[p.g.byName[cat].id] = true
		}
	}
	for changed := true; changed; {
		changed = false
		for _, prod := range p.g.prods {
			if !productive[prod.lhs.id] && p.productiveRHS(prod, productive) {
				productive[prod.lhs.id] = true
				changed = true
			}
		}
	}
	return productive
}

func (p *Parser) productiveRHS(prod *production, productive []bool) bool {
	for _, sym := range prod.rhs {
		if !productive[sym.id] {
			return false
		}
	}
	return true
}

// gorgoGrammar translates the productive part of the grammar into a gorgo
// grammar. gorgo takes the first rule as the start rule.
func (p *Parser) gorgoGrammar(sigs []*signature, productive []bool) (*lr.Grammar, error) {
	b := lr.NewGrammarBuilder("bracket/" + p.g.start.name)
	symbols := make([]*symbol, 0, len(p.g.symbols))
	symbols = append(symbols, p.g.start)
	for _, sym := range p.g.symbols {
		if sym != p.g.start {
			symbols = append(symbols, sym)
		}
	}
	for _, sym := range symbols {
		if sym.terminal() || !productive[sym.id] {
			continue
		}
		for _, prod := range sym.prods {
			if !p.productiveRHS(prod, productive) {
				continue
			}
			if len(prod.rhs) == 0 {
				b.LHS(sym.name).Epsilon()
				continue
			}
			rb := b.LHS(sym.name)
			for _, s := range prod.rhs {
				rb = rb.N(s.name)
			}
			rb.End()
		}
	}
	sort.Slice(sigs, func(i, j int) bool { return sigs[i].tokval < sigs[j].tokval })
	for _, sig := range sigs {
		for _, cat := range sig.categories {
			b.LHS(cat).T(":"+sig.key, sig.tokval).End()
		}
	}
	return b.Grammar()
}

// tokenScanner implements the scanner.Tokenizer interface for a sequence of
// tokens with pre-computed token values.
type tokenScanner struct {
	tokens  []string
	tokvals []int
	pos     int
}

// NextToken returns the next token, its value and its position.
func (sc *tokenScanner) NextToken(expected []int) (int, interface{}, uint64, uint64) {
	if sc.pos >= len(sc.tokens) {
		return scanner.EOF, "", uint64(sc.pos), 0
	}
	i := sc.pos
	sc.pos++
	return sc.tokvals[i], sc.tokens[i], uint64(i), 1
}

// SetErrorHandler is part of interface scanner.Tokenizer.
// Token sequences are pre-classified, so there are no errors to report.
func (sc *tokenScanner) SetErrorHandler(h func(error)) {}
