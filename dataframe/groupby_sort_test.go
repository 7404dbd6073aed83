package dataframe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	radixsort "go-radixsort"
	"go-radixsort/types"
)

func TestKeyedRowKeyOrdersHiThenLo(t *testing.T) {
	k := keyedRowKey{}
	require.Equal(t, 16, k.Levels())

	rows := []keyedRow{
		{hi: 2, lo: 0},
		{hi: 1, lo: 0xFFFFFFFFFFFFFFFF},
	}
	radixsort.Sort(rows, k)

	// a.hi < b.hi, so the row with hi=1 must sort first regardless of lo.
	assert.Equal(t, uint64(1), rows[0].hi)
	assert.Equal(t, uint64(2), rows[1].hi)
}

func TestSortGroupRowsGroupsContiguously(t *testing.T) {
	df, err := New(map[string]*types.Series{
		"group": intSeries("group", []int64{3, 1, 2, 1, 3, 2, 1}),
	})
	require.NoError(t, err)

	rows := sortGroupRows(df, []string{"group"})
	require.Len(t, rows, 7)

	// Every run of equal (hi, lo) must be contiguous: once the key changes
	// it must never reappear later in the slice.
	seenFinished := map[[2]uint64]bool{}
	for i := 0; i < len(rows); i++ {
		key := [2]uint64{rows[i].hi, rows[i].lo}
		if i > 0 {
			prevKey := [2]uint64{rows[i-1].hi, rows[i-1].lo}
			if prevKey != key {
				seenFinished[prevKey] = true
				assert.False(t, seenFinished[key], "group key reappeared after its run ended")
			}
		}
	}
}
