/*
Package lru implements a Least Recently Used (LRU) cache.

The cache is safe for concurrent access. Entries are stored in a ring.Sequence
whose head is the most recently used entry; the entry behind the head is the
next one to be evicted.

# Example Usage

## Basic

The following example shows all basic operations of the cache.

	type Score struct {
		Players int
		Last    int
	}

	func basicExample(ctx context.Context) {
		scores := lru.New[Score, int]()

		game := Score{Players: 9, Last: 25}

		// Set the high score in the cache.
		err := scores.Set(ctx, game, 32)
		if err != nil {
			// Handle error.
		}

		// Get the high score from the cache.
		high, err := scores.Get(ctx, game)
		if err != nil {
			// Handle error.
		}

		fmt.Println(high) // 32

		// Trying to get a game that was never stored returns an error.
		_, err = scores.Get(ctx, Score{Players: 10, Last: 1618}) // errors.Is(err, lru.ErrNotFound)

		fmt.Println(scores.Size()) // 1024
		fmt.Println(scores.Len())  // 1
	}

## Getter

With a getter the cache fills itself. Concurrent Get calls for the same
missing key share a single getter call.

	func play(_ context.Context, game Score) (int, error) {
		// Simulate the game.
		return highScore(game.Players, game.Last), nil
	}

	func getterExample(ctx context.Context) {
		scores := lru.New[Score, int](
			lru.WithGetter[Score, int](play),
			lru.WithSize[Score, int](2),
		)

		// Not cached yet, so the getter plays the game.
		high, err := scores.Get(ctx, Score{Players: 9, Last: 25})
		if err != nil {
			// Handle error.
		}

		// Cached now, the getter is not called.
		high, err = scores.Get(ctx, Score{Players: 9, Last: 25})

		// Two more games evict the least recently used one, which is the first.
		_, _ = scores.Get(ctx, Score{Players: 10, Last: 1618})
		_, _ = scores.Get(ctx, Score{Players: 13, Last: 7999})
	}
*/
package lru
