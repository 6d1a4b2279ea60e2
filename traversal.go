package linkedlist

import (
	"github.com/inoxlang/linkedlist/internal/prettyprint"
)

// A stopCondition determines where a traversal halts.
type stopCondition int8

const (
	// stop on the node without successor.
	walkToTail stopCondition = iota

	// stop on the node whose successor is the tail (or on the head of a single-node list),
	// the pair selector then returns (next-to-last, tail) or (nil, head).
	walkToNextToLast

	// stop once the position equals the target index, the walk may end past the tail:
	// the pair selector then returns (tail, nil).
	walkToIndex
)

// A resultSelector determines which part of the traversal state is returned.
type resultSelector int8

const (
	selectNode resultSelector = iota
	selectCount
	selectPair
	selectRendering
	selectValues
)

type traversal[V comparable] struct {
	stop     stopCondition
	selector resultSelector

	//probes, evaluated on each visited node before advancing.

	index    int
	hasIndex bool //also the target of walkToIndex
	value    V
	hasValue bool

	//required by selectRendering
	writer *prettyprint.PrettyPrintWriter
}

type traversalResult[V comparable] struct {
	node     *Node[V]
	previous *Node[V]
	count    int
	values   []V

	//set by the probes
	found    bool
	position int
}

// traverse walks the chain from the head, callers should check for emptiness before calling it:
// a traversal of an empty list visits no node and returns a zero result.
func (l *LinkedList[V]) traverse(t traversal[V]) traversalResult[V] {
	if t.stop == walkToIndex && !t.hasIndex {
		panic("walkToIndex requires a target index")
	}
	if t.selector == selectRendering && t.writer == nil {
		panic("selectRendering requires a writer")
	}

	var (
		previous *Node[V]
		current  = l.head
		position = 0
		values   []V
	)

	if t.selector == selectValues {
		values = []V{}
	}

	for current != nil {
		if t.hasIndex && position == t.index {
			return traversalResult[V]{
				node:     current,
				previous: previous,
				count:    position,
				found:    true,
				position: position,
			}
		}

		if t.hasValue && current.Value == t.value {
			return traversalResult[V]{
				node:     current,
				previous: previous,
				count:    position,
				found:    true,
				position: position,
			}
		}

		switch t.selector {
		case selectRendering:
			t.writer.WriteElement(current.Value)
			t.writer.WriteArrow()
		case selectValues:
			values = append(values, current.Value)
		}

		stop := false
		switch t.stop {
		case walkToTail:
			stop = current.next == nil
		case walkToNextToLast:
			stop = current.next == nil || current.next.next == nil
		case walkToIndex:
			//checked by the index probe, the walk only stops early if the index is past the tail.
		}

		if stop {
			break
		}

		previous, current = current, current.next
		position++
	}

	result := traversalResult[V]{
		node:     current,
		previous: previous,
		values:   values,
	}

	switch {
	case current == nil:
		//walked past the tail (walkToIndex with an index >= size, or empty list).
		result.count = position
	case t.stop == walkToNextToLast:
		//stopped on the next-to-last node, or on the head of a single-node list.
		if current.next != nil {
			result.previous, result.node = current, current.next
			result.count = position + 2
		} else {
			result.previous = nil
			result.count = position + 1
		}
	default:
		result.count = position + 1
	}

	if t.selector == selectRendering {
		t.writer.WriteNil()
	}

	return result
}
