package ebnf

import (
	"context"

	pool "github.com/jolestar/go-commons-pool"
)

// item is an Earley item: a production with a dot position and the index of
// the item set where recognition of the production started.
type item struct {
	prod   *production
	dot    int
	origin int
}

func (it item) complete() bool {
	return it.dot == len(it.prod.rhs)
}

func (it item) next() *symbol {
	return it.prod.rhs[it.dot]
}

func (it item) advance() item {
	return item{prod: it.prod, dot: it.dot + 1, origin: it.origin}
}

// completion keys recognized nonterminals by symbol and start position.
type completion struct {
	lhs    int
	origin int
}

type itemSet struct {
	items     []item
	index     map[item]struct{}
	completed map[completion][]*production
}

func (set *itemSet) add(it item) bool {
	if _, ok := set.index[it]; ok {
		return false
	}
	set.index[it] = struct{}{}
	set.items = append(set.items, it)
	if it.complete() {
		key := completion{lhs: it.prod.lhs.id, origin: it.origin}
		set.completed[key] = append(set.completed[key], it.prod)
	}
	return true
}

func (set *itemSet) has(it item) bool {
	_, ok := set.index[it]
	return ok
}

func (set *itemSet) clear() {
	set.items = set.items[:0]
	clear(set.index)
	clear(set.completed)
}

// chart holds the item sets of one parse. Set i contains the items valid
// after reading i tokens.
type chart struct {
	sets []*itemSet
}

func (ch *chart) reset(n int) {
	sets := ch.sets[:cap(ch.sets)]
	for i, set := range sets {
		if set == nil {
			sets[i] = newItemSet()
		}
	}
	for len(sets) < n {
		sets = append(sets, newItemSet())
	}
	for _, set := range sets[:n] {
		set.clear()
	}
	ch.sets = sets[:n]
}

func newItemSet() *itemSet {
	return &itemSet{
		index:     make(map[item]struct{}),
		completed: make(map[completion][]*production),
	}
}

// completed returns the productions recognizing sym over [from…to).
func (ch *chart) completed(sym *symbol, from, to int) []*production {
	return ch.sets[to].completed[completion{lhs: sym.id, origin: from}]
}

// Charts are re-used for subsequent parses. To avoid re-allocating item sets
// and their maps we will pool them.
type chartPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalChartPool *chartPool

func init() {
	globalChartPool = &chartPool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			return &chart{}, nil
		})
	globalChartPool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalChartPool.opool = pool.NewObjectPool(globalChartPool.ctx, factory, config)
}

// borrowChart returns a chart with n empty item sets.
func borrowChart(n int) *chart {
	var ch *chart
	if o, err := globalChartPool.opool.BorrowObject(globalChartPool.ctx); err == nil {
		ch = o.(*chart)
	} else {
		tracer().Errorf("cannot borrow chart from pool: %v", err)
		ch = &chart{}
	}
	ch.reset(n)
	return ch
}

// Puts the chart back into the pool.
func (ch *chart) release() {
	for _, set := range ch.sets {
		set.clear()
	}
	ch.sets = ch.sets[:0]
	_ = globalChartPool.opool.ReturnObject(globalChartPool.ctx, ch)
}
