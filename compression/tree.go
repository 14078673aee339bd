package compression

import (
	"container/heap"
	"fmt"
	"sort"

	"github.com/TobiasRohner/codekit"
)

// node is a single node of a Huffman coding tree. The tree is full by
// construction, so exactly two shapes occur: a leaf carrying a symbol, or an
// internal node with two children. A nil left child identifies a leaf.
type node[T Symbol] struct {
	symbol T
	weight int
	left   *node[T]
	right  *node[T]
}

func (n *node[T]) isLeaf() bool {
	return n.left == nil
}

// countSymbols tallies how many times each distinct symbol occurs in data.
// The counts sum to len(data).
func countSymbols[T Symbol](data []T) map[T]int {
	counts := make(map[T]int)
	for _, symbol := range data {
		counts[symbol]++
	}
	return counts
}

// queuedNode pairs a tree node with its creation sequence number. The
// sequence number breaks weight ties, which keeps tree construction fully
// deterministic: map iteration order never leaks into the output.
type queuedNode[T Symbol] struct {
	node *node[T]
	seq  int
}

// nodeQueue is a min-heap of queuedNodes ordered by weight, then by
// creation sequence.
type nodeQueue[T Symbol] []queuedNode[T]

func (q nodeQueue[T]) Len() int {
	return len(q)
}

func (q nodeQueue[T]) Less(i, j int) bool {
	if q[i].node.weight != q[j].node.weight {
		return q[i].node.weight < q[j].node.weight
	}
	return q[i].seq < q[j].seq
}

func (q nodeQueue[T]) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
}

func (q *nodeQueue[T]) Push(x interface{}) {
	*q = append(*q, x.(queuedNode[T]))
}

func (q *nodeQueue[T]) Pop() interface{} {
	old := *q
	n := len(old)
	popped := old[n-1]
	*q = old[:n-1]
	return popped
}

// buildTree builds the coding tree for a non-empty frequency table by
// greedy merging: pop the two lightest nodes, hang them under a fresh
// internal node (first pop on the left), push the merge back. A table with
// a single distinct symbol yields a tree that is just that one leaf.
//
// Leaves are seeded in ascending symbol order so that two calls with equal
// tables build identical trees.
func buildTree[T Symbol](counts map[T]int) *node[T] {
	symbols := make([]T, 0, len(counts))
	for symbol := range counts {
		symbols = append(symbols, symbol)
	}
	sort.Slice(symbols, func(i, j int) bool { return symbols[i] < symbols[j] })

	queue := make(nodeQueue[T], 0, len(symbols))
	for i, symbol := range symbols {
		queue = append(queue, queuedNode[T]{
			node: &node[T]{symbol: symbol, weight: counts[symbol]},
			seq:  i,
		})
	}
	heap.Init(&queue)

	seq := len(symbols)
	for queue.Len() > 1 {
		left := heap.Pop(&queue).(queuedNode[T]).node
		right := heap.Pop(&queue).(queuedNode[T]).node
		merged := &node[T]{
			weight: left.weight + right.weight,
			left:   left,
			right:  right,
		}
		heap.Push(&queue, queuedNode[T]{node: merged, seq: seq})
		seq++
	}
	return heap.Pop(&queue).(queuedNode[T]).node
}

// writeTree appends the pre-order description of the tree rooted at n: a
// set bit plus the symbol's width bits for a leaf, a clear bit followed by
// both subtrees for an internal node.
func writeTree[T Symbol](buf *BitBuffer, n *node[T], width uint) {
	if n.isLeaf() {
		buf.AppendBit(true)
		buf.AppendUint64(uint64(n.symbol), width)
		return
	}
	buf.AppendBit(false)
	writeTree(buf, n.left, width)
	writeTree(buf, n.right, width)
}

// readTree rebuilds a tree from the reader's current position, consuming
// exactly the bits the matching writeTree emitted. On success the reader is
// left on the first bit after the tree.
func readTree[T Symbol](r *BitReader, width uint) (*node[T], error) {
	isLeaf, err := r.ReadBit()
	if err != nil {
		return nil, codekit.ErrMalformedStream.WithMessage(fmt.Sprintf(
			"bit stream ended inside the coding tree at bit %d", r.Position()))
	}

	if isLeaf {
		value, err := r.ReadUint64(width)
		if err != nil {
			return nil, codekit.ErrMalformedStream.WithMessage(fmt.Sprintf(
				"bit stream ended inside a %d-bit leaf symbol at bit %d",
				width, r.Position()))
		}
		return &node[T]{symbol: T(value)}, nil
	}

	left, err := readTree[T](r, width)
	if err != nil {
		return nil, err
	}
	right, err := readTree[T](r, width)
	if err != nil {
		return nil, err
	}
	return &node[T]{left: left, right: right}, nil
}
