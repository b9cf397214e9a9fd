package ebnf

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sentenceGrammar = `
    S    := NP Aux VP ;
    NP   := [ Det ] { AdjP } N { PP } | NP Conj NP ;
    PP   := P NP | PP Conj PP ;
    VP   := { AdvP } V [ NP ] [ AdjP ] [ CP ] { AdvP } { PP } { AdvP } | VP Conj VP ;
    CP   := C S | CP Conj CP ;
    AdvP := [ AdvP ] Adv | AdvP Conj AdvP ;
    AdjP := [ AdvP ] Adj [ PP ] | AdjP Conj AdjP ;
`

func TestCompileSentenceGrammar(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.SyntaxTracer.SetTraceLevel(tracing.LevelError)
	//
	g, err := Compile(sentenceGrammar, "S")
	require.NoError(t, err)
	assert.Equal(t, "S", g.Start())
	assert.Equal(t, []string{"S", "NP", "PP", "VP", "CP", "AdvP", "AdjP"}, g.Nonterminals())
	assert.ElementsMatch(t, []string{"Aux", "Det", "N", "Conj", "P", "V", "C", "Adv", "Adj"}, g.Categories())
	prods := g.Productions()
	assert.Contains(t, prods, "<NP.opt1> := Det")
	assert.Contains(t, prods, "<NP.opt1> := ε")
	assert.Contains(t, prods, "<NP.rep2> := ε")
	assert.Contains(t, prods, "<NP.rep2> := <NP.rep2> AdjP")
	assert.Contains(t, prods, "NP := <NP.opt1> <NP.rep2> N <NP.rep3>")
	assert.Contains(t, prods, "NP := NP Conj NP")
	assert.Contains(t, prods, "VP := <VP.rep1> V <VP.opt2> <VP.opt3> <VP.opt4> <VP.rep5> <VP.rep6> <VP.rep7>")
	t.Logf("grammar:\n%s", g)
}

func TestHelpersAreSynthetic(t *testing.T) {
	g := MustCompile(sentenceGrammar, "S")
	for _, sym := range g.symbols {
		switch sym.kind {
		case ruleSymbol, terminalSymbol:
			assert.False(t, IsSynthetic(sym.name), sym.name)
		default:
			assert.True(t, IsSynthetic(sym.name), sym.name)
		}
	}
}

func TestNullable(t *testing.T) {
	g := MustCompile(sentenceGrammar, "S")
	for name, nullable := range map[string]bool{
		"S":         false,
		"NP":        false,
		"AdvP":      false,
		"<NP.opt1>": true,
		"<NP.rep2>": true,
		"Det":       false,
	} {
		assert.Equal(t, nullable, g.byName[name].nullable, name)
	}
}

func TestCompileErrors(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	_, err := Compile("S := NP Aux VP", "S") // missing ';'
	assert.Error(t, err)
	_, err = Compile("S := NP | ;", "S")
	assert.Error(t, err)
	_, err = Compile("S := np ;", "S")
	assert.True(t, errors.Is(err, ErrUndefinedSymbol), "expected undefined symbol, got %v", err)
	_, err = Compile("S := NP ;", "X")
	assert.True(t, errors.Is(err, ErrNoStartRule), "expected missing start rule, got %v", err)
	_, err = Compile("S := NP ;", "NP") // NP is a terminal category
	assert.True(t, errors.Is(err, ErrNoStartRule), "expected missing start rule, got %v", err)
	_, err = Compile("", "S")
	assert.True(t, errors.Is(err, ErrNoStartRule), "expected missing start rule, got %v", err)
}

func TestCompileGroupsAndComments(t *testing.T) {
	g, err := Compile(`
        # a comment
        A := ( B | C ) { D E } ;   # trailing comment
        B := X ;
        C := Y ;
    `, "A")
	require.NoError(t, err)
	text := g.String()
	assert.True(t, strings.Contains(text, "<A.grp1> := B"), text)
	assert.True(t, strings.Contains(text, "<A.grp1> := C"), text)
	assert.True(t, strings.Contains(text, "<A.rep2> := <A.rep2> D E"), text)
}

func TestRulesMerge(t *testing.T) {
	g, err := Compile("A := X ; A := Y ;", "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A := X", "A := Y"}, g.Productions())
}
