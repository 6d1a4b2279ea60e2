// Package linkedlist implements a generic singly linked list.
//
// All positional, search and rendering operations are built on a single parameterized walk
// over the chain. The zero value of LinkedList is an empty list ready to use. A LinkedList is
// not safe for concurrent use.
package linkedlist

import (
	"github.com/rs/zerolog"
)

const (
	OPERATION_LOG_FIELD_NAME = "op"
	INDEX_LOG_FIELD_NAME     = "index"
)

var (
	nopLogger = zerolog.Nop()
)

type ListConfig struct {
	// Logger receives a debug event for each structural mutation, if nil no logs are emitted.
	Logger *zerolog.Logger
}

// LinkedList is a singly linked list, the list is empty iff head is nil.
type LinkedList[V comparable] struct {
	head   *Node[V]
	config ListConfig
}

func NewLinkedList[V comparable]() *LinkedList[V] {
	return &LinkedList[V]{}
}

func NewLinkedListWithConfig[V comparable](config ListConfig) *LinkedList[V] {
	return &LinkedList[V]{config: config}
}

// NewLinkedListFrom returns a list containing the passed values, in order.
func NewLinkedListFrom[V comparable](values ...V) *LinkedList[V] {
	list := NewLinkedList[V]()
	list.setValues(values)
	return list
}

func (l *LinkedList[V]) logger() *zerolog.Logger {
	if l.config.Logger == nil {
		return &nopLogger
	}
	return l.config.Logger
}

// Append adds a new node containing value at the end of the list.
func (l *LinkedList[V]) Append(value V) *Node[V] {
	node := &Node[V]{Value: value}

	if l.head == nil {
		l.head = node
	} else {
		tail := l.traverse(traversal[V]{stop: walkToTail, selector: selectNode}).node
		tail.next = node
	}

	l.logger().Debug().Str(OPERATION_LOG_FIELD_NAME, "append").Send()
	return node
}

// Prepend adds a new node containing value at the start of the list.
func (l *LinkedList[V]) Prepend(value V) *Node[V] {
	node := &Node[V]{Value: value, next: l.head}
	l.head = node

	l.logger().Debug().Str(OPERATION_LOG_FIELD_NAME, "prepend").Send()
	return node
}

func (l *LinkedList[V]) IsEmpty() bool {
	return l.head == nil
}

// Size returns the number of nodes, it walks the whole chain.
func (l *LinkedList[V]) Size() int {
	if l.head == nil {
		return 0
	}
	return l.traverse(traversal[V]{stop: walkToTail, selector: selectCount}).count
}

// Head returns the first node, or ErrEmptyList.
func (l *LinkedList[V]) Head() (*Node[V], error) {
	if l.head == nil {
		return nil, ErrEmptyList
	}
	return l.head, nil
}

// Tail returns the last node, or ErrEmptyList.
func (l *LinkedList[V]) Tail() (*Node[V], error) {
	if l.head == nil {
		return nil, ErrEmptyList
	}
	return l.traverse(traversal[V]{stop: walkToTail, selector: selectNode}).node, nil
}

// At returns the node at the 0-based index, or an error wrapping ErrIndexOutOfRange
// if index < 0 or index >= size (including on an empty list).
func (l *LinkedList[V]) At(index int) (*Node[V], error) {
	if index < 0 || l.head == nil {
		return nil, fmtIndexOutOfRange(index, l.Size())
	}

	result := l.traverse(traversal[V]{
		stop:     walkToIndex,
		selector: selectNode,
		index:    index,
		hasIndex: true,
	})

	if !result.found {
		return nil, fmtIndexOutOfRange(index, result.count)
	}
	return result.node, nil
}

// Pop removes the last node and returns its value, or ErrEmptyList.
func (l *LinkedList[V]) Pop() (V, error) {
	if l.head == nil {
		var zero V
		return zero, ErrEmptyList
	}

	result := l.traverse(traversal[V]{stop: walkToNextToLast, selector: selectPair})
	last := result.node

	if result.previous == nil { //last is the head
		l.head = nil
	} else {
		result.previous.next = nil
	}

	l.logger().Debug().Str(OPERATION_LOG_FIELD_NAME, "pop").Send()
	return last.Value, nil
}

// Contains returns true if a node contains value, it returns false on an empty list.
func (l *LinkedList[V]) Contains(value V) bool {
	if l.head == nil {
		return false
	}

	return l.traverse(traversal[V]{
		stop:     walkToTail,
		selector: selectNode,
		value:    value,
		hasValue: true,
	}).found
}

// Find returns the 0-based index of the first node containing value. It returns ErrEmptyList if
// the list is empty and an error wrapping ErrNotFound if no node contains value.
func (l *LinkedList[V]) Find(value V) (int, error) {
	if l.head == nil {
		return 0, ErrEmptyList
	}

	result := l.traverse(traversal[V]{
		stop:     walkToTail,
		selector: selectNode,
		value:    value,
		hasValue: true,
	})

	if !result.found {
		return 0, fmtValueNotFound(value)
	}
	return result.position, nil
}

// InsertAt inserts a new node containing value at index (0 <= index <= size),
// the node previously at index (if any) becomes its successor.
func (l *LinkedList[V]) InsertAt(value V, index int) (*Node[V], error) {
	if index < 0 {
		return nil, fmtIndexOutOfRange(index, l.Size())
	}

	if index == 0 {
		return l.Prepend(value), nil
	}

	if l.head == nil {
		return nil, fmtIndexOutOfRange(index, 0)
	}

	result := l.traverse(traversal[V]{
		stop:     walkToIndex,
		selector: selectPair,
		index:    index,
		hasIndex: true,
	})

	//if the walk went past the tail, count is the size of the list.
	if !result.found && result.count != index {
		return nil, fmtIndexOutOfRange(index, result.count)
	}

	node := &Node[V]{Value: value, next: result.node}
	result.previous.next = node

	l.logger().Debug().Str(OPERATION_LOG_FIELD_NAME, "insert").Int(INDEX_LOG_FIELD_NAME, index).Send()
	return node, nil
}

// RemoveAt removes the node at index (0 <= index < size) and returns its value.
func (l *LinkedList[V]) RemoveAt(index int) (V, error) {
	var zero V

	if index < 0 || l.head == nil {
		return zero, fmtIndexOutOfRange(index, l.Size())
	}

	result := l.traverse(traversal[V]{
		stop:     walkToIndex,
		selector: selectPair,
		index:    index,
		hasIndex: true,
	})

	if !result.found {
		return zero, fmtIndexOutOfRange(index, result.count)
	}

	target := result.node
	if result.previous == nil { //target is the head
		l.head = target.next
	} else {
		result.previous.next = target.next
	}
	target.next = nil

	l.logger().Debug().Str(OPERATION_LOG_FIELD_NAME, "remove").Int(INDEX_LOG_FIELD_NAME, index).Send()
	return target.Value, nil
}

// Clear removes all the nodes, the chain is unlinked iteratively.
func (l *LinkedList[V]) Clear() {
	for l.head != nil {
		node := l.head
		l.head = node.next
		node.next = nil
	}

	l.logger().Debug().Str(OPERATION_LOG_FIELD_NAME, "clear").Send()
}

// Values returns the values of the list (from head to tail) in a new slice.
func (l *LinkedList[V]) Values() []V {
	if l.head == nil {
		return []V{}
	}
	return l.traverse(traversal[V]{stop: walkToTail, selector: selectValues}).values
}

// Clone returns a list with the same values and the same configuration, no node is shared.
func (l *LinkedList[V]) Clone() *LinkedList[V] {
	clone := NewLinkedListWithConfig[V](l.config)
	clone.setValues(l.Values())
	return clone
}

// setValues replaces the chain with a chain containing values.
func (l *LinkedList[V]) setValues(values []V) {
	l.Clear()

	var head *Node[V]
	for i := len(values) - 1; i >= 0; i-- {
		head = &Node[V]{Value: values[i], next: head}
	}
	l.head = head
}
