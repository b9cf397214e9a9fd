package ebnf

// Tree is a parse tree produced by a Parser. It is either a *Node or a *Leaf;
// no other implementations exist.
//
// Trees are immutable after they have been handed out. Sub-trees may be shared
// between trees of the same parse.
type Tree interface {
	label() string
	isTree()
}

// Node is an interior derivation step.
//
// For nonterminals of the grammar text the label starts with the nonterminal's
// name, followed by the production applied ("NP := <NP.opt1> N"). Helper
// nodes, introduced for optional and repeated sub-expressions, have labels
// starting with '<'.
type Node struct {
	Label    string
	Children []Tree
}

// Leaf is a token recognized by a terminal category.
type Leaf struct {
	Label string // terminal category
	Value string // literal token
}

func (n *Node) label() string { return n.Label }
func (n *Node) isTree()       {}

func (l *Leaf) label() string { return l.Label }
func (l *Leaf) isTree()       {}

// IsSynthetic is true for labels of helper nodes, which carry no meaning of
// their own.
func IsSynthetic(label string) bool {
	return len(label) > 0 && label[0] == '<'
}

// Tokens returns the leaf values of a tree, left to right.
func Tokens(t Tree) []string {
	var tokens []string
	var walk func(Tree)
	walk = func(t Tree) {
		switch t := t.(type) {
		case *Leaf:
			tokens = append(tokens, t.Value)
		case *Node:
			for _, ch := range t.Children {
				walk(ch)
			}
		}
	}
	walk(t)
	return tokens
}
