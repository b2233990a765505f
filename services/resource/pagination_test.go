package resource

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginate(t *testing.T) {
	t.Run("last partial page", func(t *testing.T) {
		skip, meta := Paginate(3, 10, 25)
		assert.Equal(t, int64(20), skip)
		assert.Equal(t, 3, meta.CurrentPage)
		assert.Equal(t, 3, meta.TotalPages)
		assert.Equal(t, int64(25), meta.TotalCount)
		assert.Equal(t, 10, meta.Limit)
		assert.False(t, meta.HasNextPage)
		assert.True(t, meta.HasPrevPage)
	})

	t.Run("middle page", func(t *testing.T) {
		skip, meta := Paginate(2, 10, 25)
		assert.Equal(t, int64(10), skip)
		assert.True(t, meta.HasNextPage)
		assert.True(t, meta.HasPrevPage)
	})

	t.Run("empty collection", func(t *testing.T) {
		skip, meta := Paginate(1, 10, 0)
		assert.Equal(t, int64(0), skip)
		assert.Equal(t, 0, meta.TotalPages)
		assert.False(t, meta.HasNextPage)
		assert.False(t, meta.HasPrevPage)
	})

	t.Run("clamps non-positive inputs", func(t *testing.T) {
		skip, meta := Paginate(0, -5, 7)
		assert.Equal(t, int64(0), skip)
		assert.Equal(t, 1, meta.CurrentPage)
		assert.Equal(t, 1, meta.Limit)
		assert.Equal(t, 7, meta.TotalPages)
	})

	t.Run("page beyond range", func(t *testing.T) {
		skip, meta := Paginate(9, 10, 25)
		assert.Equal(t, int64(80), skip)
		assert.False(t, meta.HasNextPage)
		assert.True(t, meta.HasPrevPage)
	})
}
