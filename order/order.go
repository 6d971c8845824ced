// Package order implements a singly-linked list that keeps its elements
// sorted under a comparator supplied at construction.
package order

import (
	"sort"

	"github.com/eulergo/sift/consterr"
)

// ErrEmpty is returned by Min on a list with no elements.
const ErrEmpty consterr.Error = "order: list is empty"

// Compare reports the order of a and b: negative when a sorts before b,
// zero when they are equal, positive when a sorts after b.
type Compare[T any] func(a, b T) int

type node[T any] struct {
	value T
	next  *node[T]
}

// List is a sorted singly-linked list. Adjacent elements always satisfy
// cmp(prev, next) <= 0; equal keys sit next to each other in no particular
// order. Not safe for concurrent use.
type List[T any] struct {
	cmp  Compare[T]
	head *node[T]
	size int
}

// New builds a list from the initial values, sorting them once.
func New[T any](cmp Compare[T], values ...T) *List[T] {
	sorted := make([]T, len(values))
	copy(sorted, values)
	sort.SliceStable(sorted, func(i, j int) bool { return cmp(sorted[i], sorted[j]) < 0 })

	l := &List[T]{cmp: cmp, size: len(sorted)}
	for i := len(sorted) - 1; i >= 0; i-- {
		l.head = &node[T]{value: sorted[i], next: l.head}
	}
	return l
}

// Insert adds v, keeping the list sorted. A value equal to existing keys is
// placed after them.
func (l *List[T]) Insert(v T) {
	l.insertNode(&node[T]{value: v})
}

func (l *List[T]) insertNode(n *node[T]) {
	var prev *node[T]
	cur := l.head
	for cur != nil && l.cmp(cur.value, n.value) <= 0 {
		prev, cur = cur, cur.next
	}
	n.next = cur
	if prev == nil {
		l.head = n
	} else {
		prev.next = n
	}
	l.size++
}

// Min returns the smallest element without removing it.
func (l *List[T]) Min() (T, error) {
	if l.head == nil {
		var zero T
		return zero, ErrEmpty
	}
	return l.head.value, nil
}

// ResiftMin re-threads the head node into the remainder of the list after
// the caller mutated its sort key in place. The node is reused, so a
// key-advance costs no allocation.
func (l *List[T]) ResiftMin() {
	if l.head == nil || l.head.next == nil {
		return
	}
	n := l.head
	l.head = n.next
	l.size--
	n.next = nil
	l.insertNode(n)
}

// Len reports the number of elements.
func (l *List[T]) Len() int {
	return l.size
}

// Values returns a snapshot of the elements in sorted order.
func (l *List[T]) Values() []T {
	values := make([]T, 0, l.size)
	for n := l.head; n != nil; n = n.next {
		values = append(values, n.value)
	}
	return values
}
