package common

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	testCases := []struct {
		name       string
		page       int
		wantItems  []int
		wantIndex  int
		wantOffset int
	}{
		{name: "first page", page: 0, wantItems: []int{1, 2, 3}, wantIndex: 0, wantOffset: 0},
		{name: "last page", page: 2, wantItems: []int{7}, wantIndex: 2, wantOffset: 6},
		{name: "negative page", page: -4, wantItems: []int{1, 2, 3}, wantIndex: 0, wantOffset: 0},
		{name: "page after end", page: 9, wantItems: []int{7}, wantIndex: 2, wantOffset: 6},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			p := Paginate(items, tt.page, 3)
			require.Equal(t, tt.wantItems, p.Items)
			require.Equal(t, tt.wantIndex, p.Index)
			require.Equal(t, tt.wantOffset, p.Offset)
			require.Equal(t, 3, p.Total)
		})
	}
}

func TestPaginate_Empty(t *testing.T) {
	p := Paginate([]string{}, 3, 10)
	require.Empty(t, p.Items)
	require.Equal(t, 0, p.Index)
	require.Equal(t, 1, p.Total)
}

func TestPaginate_SameResult(t *testing.T) {
	items := []string{"a", "b", "c", "d"}
	require.Equal(t, Paginate(items, 1, 3), Paginate(items, 1, 3))
}

func TestPageWindow(t *testing.T) {
	index, total, offset := PageWindow(25, 5, 10)
	require.Equal(t, 2, index)
	require.Equal(t, 3, total)
	require.Equal(t, 20, offset)

	index, total, offset = PageWindow(0, 1, 10)
	require.Equal(t, 0, index)
	require.Equal(t, 1, total)
	require.Equal(t, 0, offset)
}

func TestFormatNumber(t *testing.T) {
	require.Equal(t, "0", FormatNumber(0))
	require.Equal(t, "999", FormatNumber(999))
	require.Equal(t, "1,234,567", FormatNumber(1234567))
	require.Equal(t, "-1,000", FormatNumber(-1000))
}
