/*
Package bracket brackets part-of-speech tagged sentences according to a
phrase-structure grammar.

Description

Input is a sentence of whitespace separated tokens, each optionally tagged
with a part of speech:

   the.Det big.Adj dog.N has.Aux barked.V

Output is one bracketed S-expression per parse of the sentence:

   [S [NP [Det the] [AdjP [Adj big]] [N dog]] [Aux has] [VP [V barked]]]

The shipped grammar (see Grammar) covers simple English clauses with noun,
prepositional, verb, complement, adverb and adjective phrases. Tags name the
terminal categories of the grammar. Tags are folded to PascalCase, so "det"
and "Det" name the same category. Multi-word tokens are written with '_'
instead of spaces ("New_York.N") and print with spaces.

Contents

The work is split between three sub-packages:

  tagging   classifies the input into tokens and per-tag token sets
  ebnf      compiles the grammar and derives parse trees (the grammar engine)
  sexpr     renders parse trees as S-expressions

Package bracket wires them together (see Run). The grammar engine yields every
derivation of the start symbol over the complete input. Ambiguous sentences
therefore print more than one line, and sentences without a derivation print
nothing.

Parse trees of the engine contain synthetic helper nodes for the optional,
repeated and grouped parts of the grammar. These are elided when rendering, so
empty optional slots do not show up as empty brackets.

BSD License

Copyright (c) 2021, Norbert Pillmayer

All rights reserved.
Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package bracket

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}

// Grammar is the phrase-structure grammar used for bracketing.
const Grammar = `
    S    := NP Aux VP ;
    NP   := [ Det ] { AdjP } N { PP } | NP Conj NP ;
    PP   := P NP | PP Conj PP ;
    VP   := { AdvP } V [ NP ] [ AdjP ] [ CP ] { AdvP } { PP } { AdvP } | VP Conj VP ;
    CP   := C S | CP Conj CP ;
    AdvP := [ AdvP ] Adv | AdvP Conj AdvP ;
    AdjP := [ AdvP ] Adj [ PP ] | AdjP Conj AdjP ;
`
