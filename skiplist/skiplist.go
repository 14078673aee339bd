// Package skiplist implements an ordered multiset as a skip list: a linked
// list with a tower of express lanes that makes search, insertion, and
// removal logarithmic on average without any rebalancing.
package skiplist

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/TobiasRohner/codekit/mathutil"
)

// maxLevel caps the height of the express-lane tower. Eight levels keep
// search logarithmic for lists up to a few hundred elements, which is the
// size regime this container is used in.
const maxLevel = 8

type node[T mathutil.Ordered] struct {
	value T
	next  []*node[T]
}

// List is an ordered collection of values. Duplicates are allowed and kept
// next to each other. The zero value is not usable; construct lists with
// [New].
type List[T mathutil.Ordered] struct {
	// head is a sentinel at full height; head.next[0] chains every element
	// in ascending order.
	head *node[T]
	size int
	rng  *rand.Rand
}

// New returns an empty list.
func New[T mathutil.Ordered]() *List[T] {
	return &List[T]{
		head: &node[T]{next: make([]*node[T], maxLevel)},
		rng:  rand.New(rand.NewSource(rand.Int63())),
	}
}

// randomLevel returns a tower height in [1, maxLevel], halving the odds for
// each extra level.
func (l *List[T]) randomLevel() int {
	level := 1
	for level < maxLevel && l.rng.Intn(2) == 1 {
		level++
	}
	return level
}

// findPredecessors fills update with the rightmost node strictly before
// value on every level. update[0].next[0] is therefore the first node with
// a value >= the one searched for.
func (l *List[T]) findPredecessors(value T, update *[maxLevel]*node[T]) {
	current := l.head
	for level := maxLevel - 1; level >= 0; level-- {
		for current.next[level] != nil && current.next[level].value < value {
			current = current.next[level]
		}
		update[level] = current
	}
}

// Insert adds value to the list. Duplicates accumulate.
func (l *List[T]) Insert(value T) {
	var update [maxLevel]*node[T]
	l.findPredecessors(value, &update)

	inserted := &node[T]{
		value: value,
		next:  make([]*node[T], l.randomLevel()),
	}
	for level := range inserted.next {
		inserted.next[level] = update[level].next[level]
		update[level].next[level] = inserted
	}
	l.size++
}

// Erase removes every element equal to value and returns how many were
// removed.
func (l *List[T]) Erase(value T) int {
	var update [maxLevel]*node[T]
	l.findPredecessors(value, &update)

	removed := 0
	for target := update[0].next[0]; target != nil && target.value == value; target = update[0].next[0] {
		for level := 0; level < len(target.next); level++ {
			if update[level].next[level] == target {
				update[level].next[level] = target.next[level]
			}
		}
		removed++
		l.size--
	}
	return removed
}

// Contains reports whether at least one element equals value.
func (l *List[T]) Contains(value T) bool {
	var update [maxLevel]*node[T]
	l.findPredecessors(value, &update)

	first := update[0].next[0]
	return first != nil && first.value == value
}

// Count returns the number of elements equal to value.
func (l *List[T]) Count(value T) int {
	var update [maxLevel]*node[T]
	l.findPredecessors(value, &update)

	total := 0
	for n := update[0].next[0]; n != nil && n.value == value; n = n.next[0] {
		total++
	}
	return total
}

// Len returns the total number of elements, duplicates included.
func (l *List[T]) Len() int {
	return l.size
}

// Iter returns an iterator over the elements in ascending order. The
// iterator is invalidated by Insert and Erase.
func (l *List[T]) Iter() *Iterator[T] {
	return &Iterator[T]{current: l.head}
}

// Iterator walks a list in ascending order:
//
//	for it := list.Iter(); it.Next(); {
//		use(it.Value())
//	}
type Iterator[T mathutil.Ordered] struct {
	current *node[T]
}

// Next advances to the next element, returning false once the list is
// exhausted.
func (it *Iterator[T]) Next() bool {
	if it.current == nil {
		return false
	}
	it.current = it.current.next[0]
	return it.current != nil
}

// Value returns the element the iterator is on. Only valid after a Next
// call that returned true.
func (it *Iterator[T]) Value() T {
	return it.current.value
}

// String renders the elements in ascending order, space-separated.
func (l *List[T]) String() string {
	var sb strings.Builder
	first := true
	for it := l.Iter(); it.Next(); {
		if !first {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%v", it.Value())
		first = false
	}
	return sb.String()
}
