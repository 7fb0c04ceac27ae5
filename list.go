package kit

// Node is a single link of a List.
type Node[T any] struct {
	Value T
	next  *Node[T]
}

// Next returns the following node, or nil at the tail.
func (n *Node[T]) Next() *Node[T] { return n.next }

// List is a singly linked list with O(1) access to both ends.
// The zero value is an empty, headless list.
type List[T any] struct {
	head *Node[T]
	tail *Node[T]
	len  int
}

// NewList creates a list whose head holds v.
func NewList[T any](v T) *List[T] {
	n := &Node[T]{Value: v}
	return &List[T]{head: n, tail: n, len: 1}
}

// NewEmptyList creates a headless list.
func NewEmptyList[T any]() *List[T] {
	return &List[T]{}
}

// Len returns the number of nodes.
func (l *List[T]) Len() int { return l.len }

// IsHeadless reports whether the list has no head node.
func (l *List[T]) IsHeadless() bool { return l.head == nil }

// Head returns the first node, or nil.
func (l *List[T]) Head() *Node[T] { return l.head }

// Tail returns the last node, or nil.
func (l *List[T]) Tail() *Node[T] { return l.tail }

// At returns the value at index. It panics if index is out of range.
func (l *List[T]) At(index int) T {
	assertBounds("list", index, l.len)
	n := l.head
	for ; index > 0; index-- {
		n = n.next
	}
	return n.Value
}

// PushTail appends v after the current tail.
func (l *List[T]) PushTail(v T) {
	n := &Node[T]{Value: v}
	if l.tail == nil {
		l.head = n
	} else {
		l.tail.next = n
	}
	l.tail = n
	l.len++
}

// PushHead inserts v before the current head.
func (l *List[T]) PushHead(v T) {
	n := &Node[T]{Value: v, next: l.head}
	l.head = n
	if l.tail == nil {
		l.tail = n
	}
	l.len++
}

// PopHead removes the head and promotes its successor.
func (l *List[T]) PopHead() Option[T] {
	n := l.head
	if n == nil {
		return None[T]()
	}
	l.head = n.next
	if l.head == nil {
		l.tail = nil
	}
	n.next = nil
	l.len--
	return Some(n.Value)
}

// PopTail removes the last node.
func (l *List[T]) PopTail() Option[T] {
	if l.head == nil {
		return None[T]()
	}
	if l.head == l.tail {
		return l.PopHead()
	}
	return Some(l.Pop(l.len - 1))
}

// Pop removes the node at index, linking its predecessor to its successor.
// It panics if index is out of range.
func (l *List[T]) Pop(index int) T {
	assertBounds("list", index, l.len)
	if index == 0 {
		return l.PopHead().Unwrap()
	}
	prev := l.head
	for i := 1; i < index; i++ {
		prev = prev.next
	}
	n := prev.next
	prev.next = n.next
	if n == l.tail {
		l.tail = prev
	}
	n.next = nil
	l.len--
	return n.Value
}

// DeleteHead pops the head and passes it to destroy.
func (l *List[T]) DeleteHead(destroy func(T)) {
	if v, ok := l.PopHead().Get(); ok {
		destroy(v)
	}
}

// DeleteTail pops the tail and passes it to destroy.
func (l *List[T]) DeleteTail(destroy func(T)) {
	if v, ok := l.PopTail().Get(); ok {
		destroy(v)
	}
}

// Delete pops the node at index and passes its value to destroy.
func (l *List[T]) Delete(index int, destroy func(T)) {
	destroy(l.Pop(index))
}

// Clone returns a new list holding dup(v) for each value, in order.
func (l *List[T]) Clone(dup func(T) T) *List[T] {
	clone := NewEmptyList[T]()
	for n := l.head; n != nil; n = n.next {
		clone.PushTail(dup(n.Value))
	}
	return clone
}

// Free unlinks every node, passing each value to destroy when it is non-nil.
// The list is headless afterwards.
func (l *List[T]) Free(destroy func(T)) {
	for n := l.head; n != nil; {
		next := n.next
		if destroy != nil {
			destroy(n.Value)
		}
		n.next = nil
		n = next
	}
	l.head, l.tail, l.len = nil, nil, 0
}

// All returns an iterator over the values from head to tail.
func (l *List[T]) All() func(yield func(int, T) bool) {
	return func(yield func(int, T) bool) {
		i := 0
		for n := l.head; n != nil; n = n.next {
			if !yield(i, n.Value) {
				return
			}
			i++
		}
	}
}
