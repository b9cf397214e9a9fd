package tagging

import (
	"reflect"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
)

func TestClassify(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	tg := Classify("the.det big.Adj dog.N barked")
	if !reflect.DeepEqual(tg.Tokens(), []string{"the", "big", "dog", "barked"}) {
		t.Errorf("unexpected tokens %v", tg.Tokens())
	}
	if !reflect.DeepEqual(tg.TagNames(), []string{"Adj", "Det", "N"}) {
		t.Errorf("unexpected tags %v", tg.TagNames())
	}
	det, ok := tg.Tag("Det")
	if !ok || !det.Contains("the") || det.Len() != 1 {
		t.Errorf("expected tag Det to contain exactly 'the'")
	}
	if _, ok := tg.Tag("det"); ok {
		t.Errorf("expected tag names to be PascalCase")
	}
	terms := tg.Terminals()
	if len(terms) != 3 {
		t.Errorf("expected 3 terminal categories, have %d", len(terms))
	}
	if !terms.Match("N", "dog") || terms.Match("N", "barked") || terms.Match("V", "barked") {
		t.Errorf("terminal predicates do not reflect tagging")
	}
}

func TestUniqueTags(t *testing.T) {
	tg := Classify("a.A b.B c.C d.D")
	if len(tg.TagNames()) != 4 {
		t.Fatalf("expected one tag per token, have %v", tg.TagNames())
	}
	for _, name := range tg.TagNames() {
		if set, _ := tg.Tag(name); set.Len() != 1 {
			t.Errorf("expected tag %s to have a single token, has %v", name, set.Values())
		}
	}
}

func TestSharedTags(t *testing.T) {
	tg := Classify("the.Det dog.N saw.V the.Det cat.N")
	if tg.Len() != 5 {
		t.Errorf("expected duplicates to be kept in token sequence, have %v", tg.Tokens())
	}
	n, _ := tg.Tag("N")
	if !reflect.DeepEqual(n.Values(), []string{"cat", "dog"}) {
		t.Errorf("expected N = {cat, dog}, is %v", n.Values())
	}
	det, _ := tg.Tag("Det")
	if det.Len() != 1 {
		t.Errorf("expected Det to be a set, has %v", det.Values())
	}
}

func TestTokenCount(t *testing.T) {
	inputs := []string{
		"",
		"one",
		"  spaced \t out\n units.N  ",
		"New_York.N is.Aux big.Adj",
	}
	for _, input := range inputs {
		tg := Classify(input)
		if tg.Len() != len(strings.Fields(input)) {
			t.Errorf("'%s': expected %d tokens, have %d", input, len(strings.Fields(input)), tg.Len())
		}
	}
}

func TestClassifyArgs(t *testing.T) {
	tg := ClassifyArgs([]string{"the.Det", "dog.N barked.V"})
	if !reflect.DeepEqual(tg.Tokens(), []string{"the", "dog", "barked"}) {
		t.Errorf("unexpected tokens %v", tg.Tokens())
	}
}

func TestTagSplitsAtFirstSeparator(t *testing.T) {
	tg := Classify("e.g.Adv")
	if tg.Tokens()[0] != "e" {
		t.Errorf("expected token 'e', is '%s'", tg.Tokens()[0])
	}
	if _, ok := tg.Tag("G.Adv"); !ok {
		t.Errorf("expected tag 'G.Adv', have %v", tg.TagNames())
	}
}

// An empty tag is not rejected; it results in a tag with an empty name, which
// no grammar can reference.
func TestEmptyTag(t *testing.T) {
	tg := Classify("dog. cat.N")
	if !reflect.DeepEqual(tg.Tokens(), []string{"dog", "cat"}) {
		t.Errorf("unexpected tokens %v", tg.Tokens())
	}
	set, ok := tg.Tag("")
	if !ok || !set.Contains("dog") {
		t.Errorf("expected 'dog' to be registered under the empty tag name")
	}
}

func TestPascalCase(t *testing.T) {
	for in, out := range map[string]string{
		"":     "",
		"n":    "N",
		"adj":  "Adj",
		"advP": "AdvP",
		"AdvP": "AdvP",
		"ä":    "Ä",
		"_n":   "_n",
	} {
		if PascalCase(in) != out {
			t.Errorf("PascalCase(%q) should be %q, is %q", in, out, PascalCase(in))
		}
		if PascalCase(PascalCase(in)) != PascalCase(in) {
			t.Errorf("PascalCase not idempotent for %q", in)
		}
	}
}

func TestZeroTokenSet(t *testing.T) {
	var ts TokenSet
	if ts.Contains("x") || ts.Len() != 0 || ts.Values() != nil {
		t.Errorf("expected zero TokenSet to be empty")
	}
}
