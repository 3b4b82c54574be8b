package layout

import (
	"sort"

	"github.com/tailorkit/pagelayout/api/schemas"
)

// descOrder keeps items sorted by a derived scalar, largest first. Equal
// scalars order by ascending PageID, which makes every position unique and
// repositioning deterministic.
//
// The scalar of an item must not change while the item is held: callers
// remove the item, mutate it, then reinsert it. Both remove and insert are
// O(log n) search plus an O(n) slice shift.
type descOrder struct {
	items  []*item
	scalar func(*item) float64
}

// rank returns the position at which (val, id) belongs: the first index
// whose item sorts at or after it.
func (o *descOrder) rank(val float64, id schemas.PageID) int {
	return sort.Search(len(o.items), func(i int) bool {
		it := o.items[i]
		if v := o.scalar(it); v != val {
			return v < val
		}
		return !it.id.Less(id)
	})
}

func (o *descOrder) insert(it *item) {
	i := o.rank(o.scalar(it), it.id)
	o.items = append(o.items, nil)
	copy(o.items[i+1:], o.items[i:])
	o.items[i] = it
}

func (o *descOrder) remove(it *item) {
	// Positions are unique, so the item is exactly at its rank. Anything
	// else means the order and the keyed map have diverged, which is a bug.
	i := o.rank(o.scalar(it), it.id)
	if i >= len(o.items) || o.items[i] != it {
		panic("layout: ordered index out of sync with keyed collection")
	}
	o.items = append(o.items[:i], o.items[i+1:]...)
}

// front returns the item with the greatest scalar, or nil when empty.
func (o *descOrder) front() *item {
	if len(o.items) == 0 {
		return nil
	}
	return o.items[0]
}

// second returns the runner-up behind front, or nil when there is none.
func (o *descOrder) second() *item {
	if len(o.items) < 2 {
		return nil
	}
	return o.items[1]
}
