/*
Package tagging classifies part-of-speech tagged input for the grammar engine.

Content

Input is a sentence of whitespace separated units of the form "token" or
"token.TAG". The classifier collects the literal tokens in input order and, for
every tag, the set of tokens seen with it. Tag names are folded to PascalCase
(first character upper-cased, the rest untouched), which is the convention of
terminal category names in grammar texts.

  tagging.Classify("the.det old.Adj man.N")

results in tokens [the old man] and tags Det={the}, Adj={old}, N={man}.

Multi-word tokens are written with '_' in place of spaces ("New_York.N").
Tokens must not contain a '.', as the first '.' separates the tag.

______________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package tagging

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/sets/hashset"
	"github.com/npillmayer/bracket/ebnf"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// tracer traces to the core tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// TagSeparator separates a token from its tag.
const TagSeparator = "."

// Tagging is the result of classifying a tagged sentence.
type Tagging struct {
	tokens []string
	tags   *treemap.Map // tag name -> TokenSet
}

// Classify splits input at whitespace and classifies every unit.
// Units without a tag only contribute to the token sequence.
func Classify(input string) *Tagging {
	tg := &Tagging{tags: treemap.NewWithStringComparator()}
	for _, unit := range strings.Fields(input) {
		token, tag, tagged := strings.Cut(unit, TagSeparator)
		tg.tokens = append(tg.tokens, token)
		if !tagged {
			continue
		}
		name := PascalCase(tag)
		if name == "" {
			tracer().Errorf("token '%s' has an empty tag", token)
		}
		set, ok := tg.tags.Get(name)
		if !ok {
			set = TokenSet{set: hashset.New()}
			tg.tags.Put(name, set)
		}
		set.(TokenSet).set.Add(token)
	}
	tracer().Debugf("classified %d tokens with %d tags", len(tg.tokens), tg.tags.Size())
	return tg
}

// ClassifyArgs joins command-line arguments with single spaces and
// classifies the result.
func ClassifyArgs(args []string) *Tagging {
	return Classify(strings.Join(args, " "))
}

// Tokens returns the literal tokens in input order, including duplicates.
func (tg *Tagging) Tokens() []string {
	return tg.tokens
}

// Len returns the number of tokens.
func (tg *Tagging) Len() int {
	return len(tg.tokens)
}

// Tag returns the set of tokens seen with tag name.
func (tg *Tagging) Tag(name string) (TokenSet, bool) {
	set, ok := tg.tags.Get(name)
	if !ok {
		return TokenSet{}, false
	}
	return set.(TokenSet), true
}

// TagNames returns the (PascalCase) tag names in sorted order.
func (tg *Tagging) TagNames() []string {
	keys := tg.tags.Keys()
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.(string)
	}
	return names
}

// Terminals returns a terminal category registry for the grammar engine,
// with one predicate per tag. Each predicate tests for membership in the
// tag's token set.
func (tg *Tagging) Terminals() ebnf.Terminals {
	terms := make(ebnf.Terminals, tg.tags.Size())
	it := tg.tags.Iterator()
	for it.Next() {
		terms[it.Key().(string)] = it.Value().(TokenSet)
	}
	return terms
}

// PascalCase upper-cases the first character of s and leaves the rest
// untouched. Upper-casing follows the Unicode case mapping rules, independent
// of any locale.
func PascalCase(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return ""
	}
	upper := cases.Upper(language.Und).String(string(r))
	return upper + s[size:]
}

// --- Token sets ------------------------------------------------------------

// TokenSet is the set of literal tokens seen with a tag. It implements
// ebnf.Predicate.
type TokenSet struct {
	set *hashset.Set
}

var _ ebnf.Predicate = TokenSet{}

// Contains is part of interface ebnf.Predicate.
func (ts TokenSet) Contains(token string) bool {
	return ts.set != nil && ts.set.Contains(token)
}

// Len returns the number of distinct tokens in the set.
func (ts TokenSet) Len() int {
	if ts.set == nil {
		return 0
	}
	return ts.set.Size()
}

// Values returns the tokens of the set in sorted order.
func (ts TokenSet) Values() []string {
	if ts.set == nil {
		return nil
	}
	values := make([]string, 0, ts.set.Size())
	for _, v := range ts.set.Values() {
		values = append(values, v.(string))
	}
	sort.Strings(values)
	return values
}
