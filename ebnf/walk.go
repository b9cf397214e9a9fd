package ebnf

// span identifies a symbol recognized over the tokens [from…to).
type span struct {
	sym      *symbol
	from, to int
}

// walker enumerates derivations from an Earley chart. Enumeration is done in
// continuation-passing style: every step calls its continuation once per
// alternative and stops as soon as a continuation returns false.
type walker struct {
	f      *Forest
	active map[span]struct{} // nonterminals on the path from the root
}

// derive calls yield for every derivation of sym over [from…to). Derivations
// are delivered as lists of trees, as helper symbols may splice their content
// into the parent's children.
func (w *walker) derive(sym *symbol, from, to int, yield func([]Tree) bool) bool {
	if sym.terminal() {
		if to != from+1 || !w.f.matches(sym, from) {
			return true
		}
		return yield([]Tree{&Leaf{Label: sym.name, Value: w.f.tokens[from]}})
	}
	key := span{sym: sym, from: from, to: to}
	if _, ok := w.active[key]; ok {
		return true // cycle
	}
	w.active[key] = struct{}{}
	defer delete(w.active, key)
	for _, prod := range w.f.chart.completed(sym, from, to) {
		ok := w.production(prod, from, to, func(children [][]Tree) bool {
			delete(w.active, key) // siblings may use the same span
			ok := yield(w.shape(prod, children))
			w.active[key] = struct{}{}
			return ok
		})
		if !ok {
			return false
		}
	}
	return true
}

// production enumerates the derivations of prod over [from…to), yielding the
// tree lists of the right-hand-side symbols.
func (w *walker) production(prod *production, from, to int, yield func([][]Tree) bool) bool {
	bounds := make([]int, len(prod.rhs)+1)
	return w.split(prod, len(prod.rhs), from, to, bounds, func(bounds []int) bool {
		return w.children(prod, bounds, 0, nil, yield)
	})
}

// split finds the positions between the right-hand-side symbols of prod,
// working backwards from the dot position. A boundary k for the symbol before
// the dot is valid, if the item with the dot moved one to the left is present
// in item set k and the symbol has been recognized over [k…end).
func (w *walker) split(prod *production, dot int, from, end int, bounds []int, yield func([]int) bool) bool {
	bounds[dot] = end
	if dot == 0 {
		if end != from {
			return true
		}
		return yield(bounds)
	}
	sym := prod.rhs[dot-1]
	prefix := item{prod: prod, dot: dot - 1, origin: from}
	for k := from; k <= end; k++ {
		if !w.f.chart.sets[k].has(prefix) {
			continue
		}
		if sym.terminal() {
			if k != end-1 || !w.f.matches(sym, k) {
				continue
			}
		} else if len(w.f.chart.completed(sym, k, end)) == 0 {
			continue
		}
		if !w.split(prod, dot-1, from, k, bounds, yield) {
			return false
		}
	}
	return true
}

// children builds the cartesian product of the derivations of the
// right-hand-side symbols, from left to right.
func (w *walker) children(prod *production, bounds []int, k int, acc [][]Tree, yield func([][]Tree) bool) bool {
	if k == len(prod.rhs) {
		return yield(acc)
	}
	return w.derive(prod.rhs[k], bounds[k], bounds[k+1], func(trees []Tree) bool {
		return w.children(prod, bounds, k+1, append(acc[:k:k], trees), yield)
	})
}

// shape arranges the children of a production according to the kind of its
// left-hand side:
//
//   - nonterminals of the grammar text become a Node
//   - groups are spliced into the parent
//   - optional and repeated content is wrapped into one synthetic node per item;
//     empty content becomes a single synthetic node without children.
func (w *walker) shape(prod *production, children [][]Tree) []Tree {
	lhs := prod.lhs
	switch lhs.kind {
	case groupSymbol:
		return flatten(children)
	case optionSymbol:
		return wrap(lhs.name, nil, flatten(children))
	case repetitionSymbol:
		if len(children) == 0 {
			return wrap(lhs.name, nil, nil)
		}
		prev := children[0] // items of the left-recursive spine
		if len(prev) == 1 && isEmptyHelper(prev[0], lhs.name) {
			prev = nil
		}
		return wrap(lhs.name, prev, flatten(children[1:]))
	}
	return []Tree{&Node{
		Label:    w.f.parser.g.labels[prod.id],
		Children: flatten(children),
	}}
}

func flatten(children [][]Tree) []Tree {
	n := 0
	for _, trees := range children {
		n += len(trees)
	}
	flat := make([]Tree, 0, n)
	for _, trees := range children {
		flat = append(flat, trees...)
	}
	return flat
}

// wrap appends a synthetic node labeled name for every item to prefix.
func wrap(name string, prefix []Tree, items []Tree) []Tree {
	if len(prefix) == 0 && len(items) == 0 {
		return []Tree{&Node{Label: name}}
	}
	trees := make([]Tree, 0, len(prefix)+len(items))
	trees = append(trees, prefix...)
	for _, t := range items {
		trees = append(trees, &Node{Label: name, Children: []Tree{t}})
	}
	return trees
}

func isEmptyHelper(t Tree, name string) bool {
	n, ok := t.(*Node)
	return ok && n.Label == name && len(n.Children) == 0
}
