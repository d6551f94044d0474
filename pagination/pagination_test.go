package pagination

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func makeItems(n int) []int {
	items := make([]int, n)
	for i := range items {
		items[i] = i
	}
	return items
}

func TestPaginate_EnvelopeArithmetic(t *testing.T) {
	tests := []struct {
		name           string
		totalItems     int
		page           int
		perPage        int
		wantLen        int
		wantTotalPages int
	}{
		{"first full page", 237, 1, 100, 100, 3},
		{"second full page", 237, 2, 100, 100, 3},
		{"last partial page", 237, 3, 100, 37, 3},
		{"page past the end", 237, 4, 100, 0, 3},
		{"exact multiple", 200, 2, 100, 100, 2},
		{"single item", 1, 1, 100, 1, 1},
		{"empty input", 0, 1, 100, 0, 0},
		{"per_page one", 3, 2, 1, 1, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := Paginate(makeItems(tt.totalItems), tt.page, tt.perPage)

			assert.Len(t, env.Data, tt.wantLen)
			assert.Equal(t, tt.page, env.Meta.Page)
			assert.Equal(t, tt.perPage, env.Meta.PerPage)
			assert.Equal(t, tt.wantTotalPages, env.Meta.TotalPages)
			assert.Equal(t, tt.totalItems, env.Meta.TotalItems)
			assert.NotNil(t, env.Data)
		})
	}
}

// Concatenating every page must reconstruct the input exactly, with no
// gaps or duplicates.
func TestPaginate_Idempotence(t *testing.T) {
	for _, perPage := range []int{1, 7, 100, 250} {
		t.Run(fmt.Sprintf("per_page_%d", perPage), func(t *testing.T) {
			items := makeItems(237)
			first := Paginate(items, 1, perPage)

			var rebuilt []int
			for page := 1; page <= first.Meta.TotalPages; page++ {
				rebuilt = append(rebuilt, Paginate(items, page, perPage).Data...)
			}

			assert.Equal(t, items, rebuilt)
		})
	}
}

func TestPaginate_DoesNotAliasInput(t *testing.T) {
	items := makeItems(10)
	env := Paginate(items, 1, 5)

	env.Data[0] = 999
	assert.Equal(t, 0, items[0])
}

func TestDegraded(t *testing.T) {
	env := Degraded[int](3, 50, errors.New("rpc unreachable"))

	assert.Empty(t, env.Data)
	assert.NotNil(t, env.Data)
	assert.Equal(t, 3, env.Meta.Page)
	assert.Equal(t, 50, env.Meta.PerPage)
	assert.Equal(t, 0, env.Meta.TotalPages)
	assert.Equal(t, 0, env.Meta.TotalItems)
	assert.Equal(t, "rpc unreachable", env.Error)
}
