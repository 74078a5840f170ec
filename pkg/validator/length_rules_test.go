package validator_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/verify/pkg/validator"
)

func TestLengthGreaterThan(t *testing.T) {
	t.Parallel()

	t.Run("reports first short field", func(t *testing.T) {
		err := validator.LengthGreaterThan(struct {
			S   string
			Arr []int
		}{"", []int{1, 2}}, 1)
		require.Error(t, err)
		assert.ErrorIs(t, err, validator.ErrInvalidLength)
		assert.Equal(t, "S", validator.FieldOf(err))
		assert.Equal(t, "S: length must be greater than 1", err.Error())
	})

	t.Run("passes when longer", func(t *testing.T) {
		assert.NoError(t, validator.LengthGreaterThan(struct {
			S   string
			Arr []int
		}{"ab", []int{1, 2}}, 1))
	})

	t.Run("strings count runes", func(t *testing.T) {
		assert.NoError(t, validator.LengthGreaterThan(struct{ S string }{"日本"}, 1))
		assert.Error(t, validator.LengthGreaterThan(struct{ S string }{"日本"}, 2))
	})

	t.Run("decomposed strings are normalized", func(t *testing.T) {
		decomposed := "e\u0301"
		assert.Error(t, validator.LengthGreaterThan(struct{ S string }{decomposed}, 1))
	})

	t.Run("nil values are skipped", func(t *testing.T) {
		assert.NoError(t, validator.LengthGreaterThan(struct {
			P *string
			S []int
		}{}, 5))
	})

	t.Run("uuids and numbers are ignored", func(t *testing.T) {
		assert.NoError(t, validator.LengthGreaterThan(struct {
			ID uuid.UUID
			N  int
		}{}, 100))
	})
}

func TestLengthGreaterThanOrEqual(t *testing.T) {
	t.Parallel()
	assert.NoError(t, validator.LengthGreaterThanOrEqual(struct{ S string }{"ab"}, 2))
	assert.Error(t, validator.LengthGreaterThanOrEqual(struct{ S string }{"a"}, 2))
}

func TestLengthLessThan(t *testing.T) {
	t.Parallel()
	assert.NoError(t, validator.LengthLessThan(struct{ M map[string]int }{map[string]int{"a": 1}}, 2))

	err := validator.LengthLessThan(struct{ M map[string]int }{map[string]int{"a": 1, "b": 2}}, 2)
	argErr, ok := validator.AsArgumentError(err)
	require.True(t, ok)
	assert.Equal(t, validator.KeyLengthLessThan, argErr.TranslationKey)
	assert.Equal(t, map[string]any{"field": "M", "max": 2}, argErr.TranslationValues)
}

func TestLengthLessThanOrEqual(t *testing.T) {
	t.Parallel()
	assert.NoError(t, validator.LengthLessThanOrEqual(struct{ A [2]int }{}, 2))
	assert.Error(t, validator.LengthLessThanOrEqual(struct{ A [3]int }{}, 2))
}

func TestLengthEqual(t *testing.T) {
	t.Parallel()
	s := "abc"
	assert.NoError(t, validator.LengthEqual(struct{ P *string }{&s}, 3))

	err := validator.LengthEqual(struct{ P *string }{&s}, 2)
	assert.Equal(t, "P: length must be equal to 2", err.Error())
	argErr, _ := validator.AsArgumentError(err)
	assert.Equal(t, "abc", argErr.Value)
}

func TestLengthInRange(t *testing.T) {
	t.Parallel()

	holder := struct {
		Name string
		Tags []string
	}{"john", []string{"a", "b", "c", "d"}}

	assert.NoError(t, validator.LengthInRange(holder, 1, 4))

	err := validator.LengthInRange(holder, 1, 3)
	assert.Equal(t, "Name", validator.FieldOf(err))
	assert.Equal(t, "Name: length must be in range [1, 3]", err.Error())
}
