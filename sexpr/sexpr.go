/*
Package sexpr renders parse trees as bracketed S-expressions.

Content

A tree is printed in prefix notation, with square brackets:

   [NP [Det the] [AdjP [Adj big]] [N dog]]

Interior nodes print as [label child …], leaves as [label value]. Only the
first word of a node label is printed. Underscores in leaf values stand for
spaces and are printed as such.

Synthetic nodes, i.e. nodes with labels starting with '<', are helpers of the
grammar engine. They are elided: a synthetic node is replaced by the rendering
of its first child, if it has children at all.

______________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package sexpr

import (
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/npillmayer/bracket/ebnf"
)

// Render renders a parse tree. If the tree renders to nothing, ok is false.
func Render(tree ebnf.Tree) (s string, ok bool) {
	switch t := tree.(type) {
	case *ebnf.Node:
		return renderNode(t)
	case *ebnf.Leaf:
		if ebnf.IsSynthetic(t.Label) {
			return "", false
		}
		return "[" + t.Label + " " + strings.ReplaceAll(t.Value, "_", " ") + "]", true
	}
	return "", false
}

func renderNode(n *ebnf.Node) (string, bool) {
	if ebnf.IsSynthetic(n.Label) {
		if len(n.Children) == 0 {
			return "", false
		}
		return Render(n.Children[0])
	}
	children := make([]string, 0, len(n.Children))
	for _, ch := range n.Children {
		if s, ok := Render(ch); ok {
			children = append(children, s)
		}
	}
	words := strings.Fields(n.Label)
	if len(words) == 0 {
		return "", false
	}
	return "[" + words[0] + " " + strings.Join(children, " ") + "]", true
}

// Write renders every tree of a sequence, in order, and writes one line per
// tree to w. Trees rendering to nothing are skipped.
// Write returns the number of lines written.
func Write(w io.Writer, trees iter.Seq[ebnf.Tree]) (int, error) {
	n := 0
	for tree := range trees {
		s, ok := Render(tree)
		if !ok {
			continue
		}
		if _, err := fmt.Fprintln(w, s); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}
