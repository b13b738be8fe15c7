package memo

import (
	"context"
	"errors"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.expect.digital/aoc/lru"
)

func TestMemoCall(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	calls := 0

	square := New(func(_ context.Context, v int) (int, error) {
		calls++

		return v * v, nil
	}, Identity[int])

	for i := 0; i < 3; i++ {
		v, err := square.Call(ctx, 12)
		require.NoError(t, err)
		assert.Equal(t, 144, v)
	}

	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, square.Len())
}

func TestMemoRecursive(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	calls := 0

	var fib *Memo[int, int, int]

	fib = New(func(ctx context.Context, n int) (int, error) {
		calls++

		if n < 2 {
			return n, nil
		}

		a, err := fib.Call(ctx, n-1)
		if err != nil {
			return 0, err
		}

		b, err := fib.Call(ctx, n-2)
		if err != nil {
			return 0, err
		}

		return a + b, nil
	}, Identity[int])

	v, err := fib.Call(ctx, 90)
	require.NoError(t, err)
	assert.Equal(t, 2880067194370816120, v)
	assert.Equal(t, 91, calls)
}

func TestMemoErrorsNotCached(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	errOdd := errors.New("odd")
	calls := 0

	half := New(func(_ context.Context, v int) (int, error) {
		calls++

		if v%2 != 0 {
			return 0, errOdd
		}

		return v / 2, nil
	}, Identity[int])

	_, err := half.Call(ctx, 3)
	require.ErrorIs(t, err, errOdd)

	_, err = half.Call(ctx, 3)
	require.ErrorIs(t, err, errOdd)

	assert.Equal(t, 2, calls)
	assert.Zero(t, half.Len())
}

func TestMemoSize(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	double := New(func(_ context.Context, v int) (int, error) {
		return 2 * v, nil
	}, Identity[int], lru.WithSize[int, int](4))

	for i := 0; i < 10; i++ {
		v, err := double.Call(ctx, i)
		require.NoError(t, err)
		assert.Equal(t, 2*i, v)
	}

	assert.Equal(t, 4, double.Len())
}

func TestMemoSliceKey(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	calls := 0

	sum := New(func(_ context.Context, vs []int) (int, error) {
		calls++

		total := 0
		for _, v := range vs {
			total += v
		}

		return total, nil
	}, func(vs []int) Key { return NewKeyBuilder().Ints(vs).Key() })

	v, err := sum.Call(ctx, []int{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, 6, v)

	v, err = sum.Call(ctx, []int{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, 6, v)

	v, err = sum.Call(ctx, []int{3, 2, 1})
	require.NoError(t, err)
	assert.Equal(t, 6, v)

	assert.Equal(t, 2, calls)
}

func TestKeyBuilder(t *testing.T) {
	t.Parallel()

	assert.NotEqual(t,
		NewKeyBuilder().String("ab").String("c").Key(),
		NewKeyBuilder().String("a").String("bc").Key())

	assert.NotEqual(t,
		NewKeyBuilder().Ints([]int{1, 2}).Ints(nil).Key(),
		NewKeyBuilder().Ints([]int{1}).Ints([]int{2}).Key())

	assert.NotEqual(t,
		NewKeyBuilder().Int(-1).Key(),
		NewKeyBuilder().Int(1).Key())

	err := quick.Check(func(s string, vs []int) bool {
		a := NewKeyBuilder().String(s).Ints(vs).Key()
		b := NewKeyBuilder().String(s).Ints(append([]int(nil), vs...)).Key()

		return a == b
	}, nil)

	assert.NoError(t, err)
}
