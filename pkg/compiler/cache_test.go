package compiler_test

import (
	"bytes"
	"reflect"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/verify/pkg/compiler"
	"github.com/dmitrymomot/verify/pkg/logger"
	"github.com/dmitrymomot/verify/pkg/shape"
)

func TestCache_GetOrCompile(t *testing.T) {
	t.Parallel()

	t.Run("reuses compiled validator", func(t *testing.T) {
		c := compiler.NewCache(atMost)
		typ := reflect.TypeOf(struct{ N int }{})

		first, err := c.GetOrCompile(typ)
		require.NoError(t, err)
		second, err := c.GetOrCompile(typ)
		require.NoError(t, err)

		assert.Same(t, first, second)
		assert.Equal(t, 1, c.Len())
	})

	t.Run("pointer and value share an entry", func(t *testing.T) {
		c := compiler.NewCache(atMost)
		type holder struct{ N int }

		byValue, err := c.GetOrCompile(reflect.TypeOf(holder{}))
		require.NoError(t, err)
		byPointer, err := c.GetOrCompile(reflect.TypeOf(&holder{}))
		require.NoError(t, err)

		assert.Same(t, byValue, byPointer)
		assert.Equal(t, 1, c.Len())
	})

	t.Run("distinct shapes get distinct entries", func(t *testing.T) {
		c := compiler.NewCache(atMost)
		_, err := c.GetOrCompile(reflect.TypeOf(struct{ A int }{}))
		require.NoError(t, err)
		_, err = c.GetOrCompile(reflect.TypeOf(struct{ B int }{}))
		require.NoError(t, err)
		assert.Equal(t, 2, c.Len())
	})

	t.Run("unsupported shapes are not cached", func(t *testing.T) {
		c := compiler.NewCache(atMost)
		_, err := c.GetOrCompile(reflect.TypeOf(0))
		assert.ErrorIs(t, err, shape.ErrUnsupportedShape)
		assert.Equal(t, 0, c.Len())
	})

	t.Run("invalid rule surfaces on use", func(t *testing.T) {
		c := compiler.NewCache(&compiler.Rule[int]{})
		err := c.Validate(struct{ N int }{}, 0)
		assert.ErrorIs(t, err, compiler.ErrInvalidRule)
	})
}

// Not parallel: swaps the package logger.
func TestCache_LogsCompileFailures(t *testing.T) {
	buf := &bytes.Buffer{}
	compiler.SetLogger(logger.New(logger.WithOutput(buf)))
	t.Cleanup(func() { compiler.SetLogger(nil) })

	c := compiler.NewCache(atMost)
	err := c.Validate(7, 0)
	require.ErrorIs(t, err, shape.ErrUnsupportedShape)

	out := buf.String()
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, `msg="validator compilation failed"`)
	assert.Contains(t, out, "rule=at_most")
	assert.Contains(t, out, "shape=int")
	assert.Contains(t, out, "unsupported holder shape")
	assert.Contains(t, out, "component=verify.compiler")

	buf.Reset()
	broken := compiler.NewCache(&compiler.Rule[int]{Name: "broken"})
	require.ErrorIs(t, broken.Validate(struct{ N int }{}, 0), compiler.ErrInvalidRule)
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "rule=broken")

	buf.Reset()
	require.NoError(t, c.Validate(struct{ N int }{}, 10))
	assert.Empty(t, buf.String())
}

func TestCache_Validate(t *testing.T) {
	t.Parallel()

	c := compiler.NewCache(atMost)

	t.Run("absent holder passes without compiling", func(t *testing.T) {
		local := compiler.NewCache(atMost)
		assert.NoError(t, local.Validate(nil, 0))
		assert.Equal(t, 0, local.Len())
	})

	t.Run("non-struct holder", func(t *testing.T) {
		assert.ErrorIs(t, c.Validate("text", 0), shape.ErrUnsupportedShape)
	})

	t.Run("reports failing field", func(t *testing.T) {
		err := c.Validate(struct{ B, A int }{B: 9, A: 1}, 5)
		assert.Equal(t, "B", failedField(t, err))
	})

	t.Run("passes valid holder", func(t *testing.T) {
		assert.NoError(t, c.Validate(struct{ B, A int }{B: 5, A: 1}, 5))
	})

	t.Run("rule code may validate recursively", func(t *testing.T) {
		var nested *compiler.Cache[int]
		rule := &compiler.Rule[int]{
			Name: "recursive",
			Fails: func(v reflect.Value, limit int) bool {
				return nested.Validate(struct{ Inner int }{int(v.Int())}, limit) != nil
			},
			Error: atMost.Error,
		}
		nested = compiler.NewCache(atMost)
		outer := compiler.NewCache(rule)

		err := outer.Validate(struct{ Outer int }{7}, 5)
		assert.Equal(t, "Outer", failedField(t, err))
		assert.NoError(t, outer.Validate(struct{ Outer int }{3}, 5))
	})
}

func TestCache_Concurrent(t *testing.T) {
	t.Parallel()

	c := compiler.NewCache(atMost)
	type holder struct {
		High int
		Low  int
	}
	valid := holder{High: 5, Low: 1}
	invalid := holder{High: 50, Low: 1}

	const workers = 8
	const iterations = 1000

	validators := make([]*compiler.Validator[int], workers)
	var wg sync.WaitGroup
	for w := range workers {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := range iterations {
				if i%2 == 0 {
					assert.NoError(t, c.Validate(valid, 10))
				} else {
					assert.Error(t, c.Validate(invalid, 10))
				}
			}
			v, err := c.GetOrCompile(reflect.TypeOf(valid))
			assert.NoError(t, err)
			validators[w] = v
		}(w)
	}
	wg.Wait()

	assert.Equal(t, 1, c.Len())
	for _, v := range validators {
		assert.Same(t, validators[0], v)
	}
}
