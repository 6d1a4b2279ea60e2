package linkedlist

// A Node is a storage cell of a LinkedList, it holds a value and a link to its successor.
type Node[V any] struct {
	Value V
	next  *Node[V]
}

func NewNode[V any](value V, next *Node[V]) *Node[V] {
	return &Node[V]{Value: value, next: next}
}

// Next returns the successor of the node, or nil if the node is the last one.
func (n *Node[V]) Next() *Node[V] {
	return n.next
}

// SetNext sets the successor of the node. Relinking a node that belongs to a list
// may break the list's invariants (acyclicity, single ownership), it is the caller's responsibility.
func (n *Node[V]) SetNext(next *Node[V]) {
	n.next = next
}
