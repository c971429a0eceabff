package pagination

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, Params{Page: 1, PageSize: DefaultPageSize}, Params{}.Normalize())
	assert.Equal(t, Params{Page: 3, PageSize: MaxPageSize}, Params{Page: 3, PageSize: 1000}.Normalize())
	assert.Equal(t, 20, Params{Page: 3, PageSize: 10}.Offset())
}

func TestSlice(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}
	assert.Equal(t, []int{3, 4}, Slice(items, Params{Page: 2, PageSize: 2}))
	assert.Equal(t, []int{5}, Slice(items, Params{Page: 3, PageSize: 2}))
	assert.Empty(t, Slice(items, Params{Page: 4, PageSize: 2}))
}

func TestHugePagesDoNotOverflow(t *testing.T) {
	p := Params{Page: math.MaxInt, PageSize: 10}.Normalize()
	assert.False(t, p.InRange())
	assert.GreaterOrEqual(t, p.Offset(), 0)
	assert.Empty(t, Slice([]int{1, 2, 3}, p))

	assert.True(t, Params{Page: math.MaxInt / 10, PageSize: 10}.InRange())
	assert.Zero(t, Params{Page: -4, PageSize: 10}.Offset())
}

func TestNewPageNeverNil(t *testing.T) {
	p := NewPage[int](Params{Page: 1, PageSize: 10}, 0, nil)
	assert.NotNil(t, p.Results)
	assert.Equal(t, 0, p.Count)
}
