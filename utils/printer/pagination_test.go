package printer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaginationControlsSinglePage(t *testing.T) {
	assert.Empty(t, PaginationControls(1, 1))
	assert.Empty(t, PaginationControls(1, 0))

	var buf bytes.Buffer
	require.NoError(t, PrintPagination(&buf, 1, 1))
	assert.Empty(t, buf.String())
}

func TestPaginationControlsMiddlePage(t *testing.T) {
	controls := PaginationControls(3, 8)
	require.Len(t, controls, 7)

	assert.Equal(t, PageControl{Label: "prev", Page: 2}, controls[0])
	for i := 1; i <= 5; i++ {
		c := controls[i]
		assert.Equal(t, i, c.Page)
		assert.Equal(t, i == 3, c.Active, "active flag of page %d", i)
	}
	assert.Equal(t, PageControl{Label: "next", Page: 4}, controls[6])
}

func TestPaginationControlsFirstPage(t *testing.T) {
	controls := PaginationControls(1, 3)
	require.Len(t, controls, 4) // no prev
	assert.Equal(t, "1", controls[0].Label)
	assert.True(t, controls[0].Active)
	assert.Equal(t, "next", controls[3].Label)
}

func TestPaginationControlsLastPage(t *testing.T) {
	controls := PaginationControls(3, 3)
	require.Len(t, controls, 4) // no next
	assert.Equal(t, "prev", controls[0].Label)
	assert.True(t, controls[3].Active)
	assert.Equal(t, "3", controls[3].Label)
}

func TestPrintPagination(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintPagination(&buf, 3, 8))
	assert.Equal(t, "page: prev 1 2 [3] 4 5 next (8 pages)\n", buf.String())
}
