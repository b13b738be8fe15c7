/*
Package ring implements a circular doubly linked list with a movable head.

Unlike a list with a fixed front, a Sequence has no first element. The head is
a cursor that callers reposition with Advance and SetHead, and new values are
inserted directly behind it. Every node is reachable from every other node in
both directions, and Len always equals the number of nodes in the cycle.

A Sequence is not safe for concurrent use.

# Example Usage

## Marbles

Placing marbles clockwise of the current one and removing the marble seven
counter-clockwise of it:

	circle := ring.New[int]()
	circle.Insert(0)

	for marble := 1; marble <= 25; marble++ {
		if marble%23 != 0 {
			circle.Advance(ring.Forward, 2)
			circle.Insert(marble)
			circle.Advance(ring.Backward, 1)

			continue
		}

		circle.Advance(ring.Backward, 7)

		removed, err := circle.Delete(circle.Head()) // head moves to the next marble
		if err != nil {
			// Handle error.
		}

		score += marble + removed
	}

## Mixing

Moving each value by its own amount, in the original order:

	seq := ring.New[int]()
	nodes := make([]*ring.Node[int], 0, len(values))

	for _, v := range values {
		nodes = append(nodes, seq.Insert(v))
	}

	for _, node := range nodes {
		if err := seq.Move(node, node.Value); err != nil {
			// Handle error.
		}
	}

	// The value 1000 steps after the zero.
	v, err := seq.ValueAt(func(v int) bool { return v == 0 }, 1000)

# Errors

Delete, Move, MoveToHead and SetHead verify that the node belongs to the
sequence and that its neighbours link back to it before touching anything.
A failed check is reported as ErrInvariantViolation and leaves the sequence
unchanged.
*/
package ring
