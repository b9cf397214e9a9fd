/*
Package ebnf compiles extended-BNF grammars and parses token sequences with them.

Content

The grammar engine accepts grammar text in a small EBNF dialect, a start symbol
and a registry of terminal categories. It derives every parse tree of a token
sequence, where each tree is a full derivation of the start symbol consuming
all of the input.

The surface syntax is

   Grammar    = { Rule } .
   Rule       = Ident ":=" Expression ";" .
   Expression = Sequence { "|" Sequence } .
   Sequence   = Term { Term } .
   Term       = Ident | "[" Expression "]" | "{" Expression "}" | "(" Expression ")" .

with [ X ] meaning "optional", { X } meaning "zero or more" and ( X ) grouping
alternatives. A '#' starts a comment reaching to the end of the line.
Identifiers starting with an upper-case letter and not defined by a rule of
their own are terminal categories. Terminal categories are resolved at parse
time by Predicates registered by the client; an unregistered category never
matches.

Operators are desugared into plain BNF with helper nonterminals. Helper names
start with '<' (e.g. "<NP.rep2>"), so they cannot clash with identifiers of the
grammar text, and they show up in parse trees as synthetic nodes.

Typical Usage

   g, err := ebnf.Compile(text, "S")
   ...
   parser := ebnf.NewParser(g, terminals)
   trees, err := parser.Trees(tokens)
   ...
   for tree := range trees {
       ...
   }

Parsing is done by an Earley recognizer; trees are enumerated lazily from the
Earley chart. Package ebnf also offers a second recognizer built on gorgo's
Earley parser (see Parser.Recognize), which is used to cross-check results and
to export shared packed parse forests.

______________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package ebnf

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the syntax tracer.
func tracer() tracing.Trace {
	return gtrace.SyntaxTracer
}
