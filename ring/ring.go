package ring

import (
	"errors"
	"fmt"
)

var (
	ErrInvariantViolation = errors.New("invariant violation")
	ErrNotFound           = errors.New("not found")
	ErrAmbiguous          = errors.New("ambiguous match")
)

// Direction is the direction the head travels in.
type Direction int

const (
	// Forward follows next links.
	Forward Direction = iota
	// Backward follows previous links.
	Backward
)

func (d Direction) reverse() Direction {
	if d == Forward {
		return Backward
	}

	return Forward
}

// Node represents a sequence node.
type Node[V any] struct {
	Value V
	next  *Node[V]
	prev  *Node[V]
	seq   *Sequence[V]
}

// Next returns the next node or nil if the node is not part of a sequence.
func (e *Node[V]) Next() *Node[V] {
	if e.seq == nil {
		return nil
	}

	return e.next
}

// Prev returns the previous node or nil if the node is not part of a sequence.
func (e *Node[V]) Prev() *Node[V] {
	if e.seq == nil {
		return nil
	}

	return e.prev
}

// Sequence represents a circular doubly linked list with a movable head.
type Sequence[V any] struct {
	n    int
	head *Node[V]
}

// New returns a new empty sequence.
func New[V any]() *Sequence[V] {
	return new(Sequence[V])
}

// link places e between at and at.next.
func (s *Sequence[V]) link(e, at *Node[V]) {
	e.prev = at
	e.next = at.next
	e.prev.next = e
	e.next.prev = e
	e.seq = s
}

func unlink[V any](e *Node[V]) {
	e.prev.next = e.next
	e.next.prev = e.prev
}

// owned reports an error unless e is a healthy member of s.
func (s *Sequence[V]) owned(e *Node[V]) error {
	switch {
	case e == nil:
		return fmt.Errorf("nil node: %w", ErrInvariantViolation)
	case e.seq != s:
		return fmt.Errorf("node not in sequence: %w", ErrInvariantViolation)
	case e.next == nil || e.prev == nil:
		return fmt.Errorf("node has no links: %w", ErrInvariantViolation)
	case e.next.prev != e || e.prev.next != e:
		return fmt.Errorf("node links do not round-trip: %w", ErrInvariantViolation)
	}

	return nil
}

// Len returns the number of nodes in the sequence.
func (s *Sequence[V]) Len() int { return s.n }

// Head returns the current head or nil if the sequence is empty.
func (s *Sequence[V]) Head() *Node[V] { return s.head }

// SetHead makes e the head.
func (s *Sequence[V]) SetHead(e *Node[V]) error {
	if err := s.owned(e); err != nil {
		return fmt.Errorf("set head: %w", err)
	}

	s.head = e

	return nil
}

// Insert inserts v directly behind the head. The first node inserted into
// an empty sequence becomes the head.
func (s *Sequence[V]) Insert(v V) *Node[V] {
	e := &Node[V]{Value: v}

	s.n++

	if s.head == nil {
		e.next = e
		e.prev = e
		e.seq = s
		s.head = e

		return e
	}

	s.link(e, s.head.prev)

	return e
}

// Advance moves the head count steps in dir. A negative count moves the
// opposite way. Unknown directions leave the head where it is.
func (s *Sequence[V]) Advance(dir Direction, count int) {
	if s.n == 0 || count == 0 || (dir != Forward && dir != Backward) {
		return
	}

	if count < 0 {
		count = -count
		dir = dir.reverse()
	}

	// Going the short way round is cheaper than the full count.
	count %= s.n
	if count > s.n/2 {
		count = s.n - count
		dir = dir.reverse()
	}

	s.head = walk(s.head, dir, count)
}

func walk[V any](e *Node[V], dir Direction, count int) *Node[V] {
	for ; count > 0; count-- {
		if dir == Forward {
			e = e.next
		} else {
			e = e.prev
		}
	}

	return e
}

// Delete removes e and returns its value. If e is the head, the head moves
// to the node after e.
func (s *Sequence[V]) Delete(e *Node[V]) (V, error) { //nolint:ireturn
	if err := s.owned(e); err != nil {
		var zero V

		return zero, fmt.Errorf("delete: %w", err)
	}

	switch {
	case s.n == 1:
		s.head = nil
	case e == s.head:
		s.head = e.next
	}

	unlink(e)

	e.next = nil
	e.prev = nil
	e.seq = nil

	s.n--

	return e.Value, nil
}

// Move extracts e and reinserts it offset positions away, forward for a
// positive offset and backward for a negative one. While e is out the
// cycle is one shorter, so the offset is reduced modulo Len()-1.
// The head, if it is e, stays on e.
func (s *Sequence[V]) Move(e *Node[V], offset int) error {
	if err := s.owned(e); err != nil {
		return fmt.Errorf("move: %w", err)
	}

	if s.n <= 2 {
		// Any rotation of one or two nodes is the same cycle.
		return nil
	}

	m := s.n - 1

	steps := offset % m
	if steps < 0 {
		steps += m
	}

	if steps == 0 {
		return nil
	}

	at := e.prev

	unlink(e)

	if steps > m/2 {
		at = walk(at, Backward, m-steps)
	} else {
		at = walk(at, Forward, steps)
	}

	s.link(e, at)

	return nil
}

// MoveToHead places e directly behind the current head and makes it the head.
func (s *Sequence[V]) MoveToHead(e *Node[V]) error {
	if err := s.owned(e); err != nil {
		return fmt.Errorf("move to head: %w", err)
	}

	if e == s.head {
		return nil
	}

	if e.next != s.head {
		unlink(e)
		s.link(e, s.head.prev)
	}

	s.head = e

	return nil
}

// ValueAt finds the only node whose value satisfies match and returns the
// value offset steps forward of it.
func (s *Sequence[V]) ValueAt(match func(V) bool, offset int) (V, error) { //nolint:ireturn
	var (
		zero  V
		found *Node[V]
	)

	for i, e := 0, s.head; i < s.n; i, e = i+1, e.next {
		if !match(e.Value) {
			continue
		}

		if found != nil {
			return zero, fmt.Errorf("value at offset %d: %w", offset, ErrAmbiguous)
		}

		found = e
	}

	if found == nil {
		return zero, fmt.Errorf("value at offset %d: %w", offset, ErrNotFound)
	}

	steps := offset % s.n
	if steps < 0 {
		steps += s.n
	}

	return walk(found, Forward, steps).Value, nil
}

// Do calls f for each node starting at the head until f returns false.
// f must not add or remove nodes.
func (s *Sequence[V]) Do(f func(*Node[V]) bool) {
	for i, e := 0, s.head; i < s.n; i, e = i+1, e.next {
		if !f(e) {
			return
		}
	}
}

// Values returns the values in order starting at the head.
func (s *Sequence[V]) Values() []V {
	values := make([]V, 0, s.n)

	s.Do(func(e *Node[V]) bool {
		values = append(values, e.Value)

		return true
	})

	return values
}

// Clone returns a copy of the sequence with the same values in the same
// order. Values are copied by assignment.
func (s *Sequence[V]) Clone() *Sequence[V] {
	c := New[V]()

	s.Do(func(e *Node[V]) bool {
		c.Insert(e.Value)

		return true
	})

	return c
}

// Check walks the whole sequence and verifies its links and length.
func (s *Sequence[V]) Check() error {
	if s.head == nil {
		if s.n != 0 {
			return fmt.Errorf("no head with length %d: %w", s.n, ErrInvariantViolation)
		}

		return nil
	}

	if s.n < 1 {
		return fmt.Errorf("head with length %d: %w", s.n, ErrInvariantViolation)
	}

	e := s.head

	for i := 0; i < s.n; i++ {
		if err := s.owned(e); err != nil {
			return fmt.Errorf("node %d: %w", i, err)
		}

		e = e.next

		if e == s.head && i < s.n-1 {
			return fmt.Errorf("cycle of %d nodes, length %d: %w", i+1, s.n, ErrInvariantViolation)
		}
	}

	if e != s.head {
		return fmt.Errorf("cycle longer than length %d: %w", s.n, ErrInvariantViolation)
	}

	return nil
}
