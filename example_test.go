package linkedlist_test

import (
	"errors"
	"fmt"

	"github.com/inoxlang/linkedlist"
)

func ExampleLinkedList() {
	list := linkedlist.NewLinkedList[string]()
	list.Prepend("node1")
	list.Append("node2")
	list.Prepend("node0")
	list.Append("node3")

	fmt.Println(list)
	fmt.Println(list.Size())

	head, _ := list.Head()
	fmt.Println(head.Value)

	// Output:
	// ( node0 ) -> ( node1 ) -> ( node2 ) -> ( node3 ) -> nil
	// 4
	// node0
}

func ExampleLinkedList_Find() {
	list := linkedlist.NewLinkedListFrom(0, 1, 2)

	index, _ := list.Find(2)
	fmt.Println(index)

	_, err := list.Find(5)
	fmt.Println(errors.Is(err, linkedlist.ErrNotFound))

	// Output:
	// 2
	// true
}

func ExampleLinkedList_RemoveAt() {
	list := linkedlist.NewLinkedListFrom("a", "b", "c")

	removed, _ := list.RemoveAt(1)
	fmt.Println(removed)
	fmt.Println(list)

	_, err := list.RemoveAt(2)
	fmt.Println(err)

	// Output:
	// b
	// ( a ) -> ( c ) -> nil
	// index out of range: index 2, size 2
}
