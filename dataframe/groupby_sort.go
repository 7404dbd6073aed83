package dataframe

import (
	"encoding/binary"
	"math"
	"math/bits"

	xxhash "github.com/cespare/xxhash/v2"

	radixsort "go-radixsort"
	"go-radixsort/radixkey"
	"go-radixsort/types"
)

// sortAggregationThreshold is the row count at or above which Aggregate prefers the
// sort-based grouping path over the hash-map streaming path: once the
// distinct-key working set stops fitting in cache, a radix sort of (key, row)
// pairs followed by a linear scan of contiguous runs touches each row once
// with sequential access instead of chasing pointers through a growing map.
const sortAggregationThreshold = 500_000

// buildKey128 constructs a deterministic 128-bit hash key for the given row
// using the supplied grouping columns. The algorithm mirrors the one used in
// aggregateStreaming so that both the streaming and sort-based paths can share
// the same key space.
func buildKey128(df *DataFrame, columns []string, row int) key128 {
	var hi, lo uint64

	for colIdx, col := range columns {
		s := df.series[col]
		var hv uint64

		switch colData := s.Data.(type) {
		case []int64:
			var buf [8]byte
			binary.LittleEndian.PutUint64(buf[:], uint64(colData[row]))
			hv = xxhash.Sum64(buf[:])
		case []float64:
			var buf [8]byte
			binary.LittleEndian.PutUint64(buf[:], math.Float64bits(colData[row]))
			hv = xxhash.Sum64(buf[:])
		case []string:
			hv = xxhash.Sum64String(colData[row])
		case []bool:
			var buf [8]byte
			var b uint64
			if colData[row] {
				b = 1
			}
			binary.LittleEndian.PutUint64(buf[:], b)
			hv = xxhash.Sum64(buf[:])
		default:
			// Unsupported types fall back to zero hash – this still provides
			// determinism but may lead to collisions for exotic column types.
			hv = 0
		}

		shift := uint(colIdx*11) & 63
		if colIdx%2 == 0 {
			hi ^= bits.RotateLeft64(hv, int(shift))
		} else {
			lo ^= bits.RotateLeft64(hv, int(shift))
		}
	}

	return key128{hi: hi, lo: lo}
}

// keyedRow pairs a 128-bit group key with the row it came from, so sorting a
// slice of these also groups rows sharing a key into a contiguous run, in key
// order.
type keyedRow struct {
	hi, lo uint64
	row    int
}

// keyedRowKey treats the 128-bit key as 16 sort bytes, MSB-first: the eight
// bytes of hi, then the eight bytes of lo. The row field carries no sort
// weight; it rides along for the grouping scan afterwards.
type keyedRowKey struct{}

func (keyedRowKey) Levels() int { return 16 }

func (keyedRowKey) ByteAt(v keyedRow, level int) byte {
	if level < 8 {
		return radixkey.Uint64Key{}.ByteAt(v.hi, level)
	}
	return radixkey.Uint64Key{}.ByteAt(v.lo, level-8)
}

// sortGroupRows builds one keyedRow per row of df and sorts them by group
// key with the go-radixsort core, so that rows sharing a key land in
// contiguous runs.
func sortGroupRows(df *DataFrame, columns []string) []keyedRow {
	rows := make([]keyedRow, df.length)
	for i := range rows {
		k := buildKey128(df, columns, i)
		rows[i] = keyedRow{hi: k.hi, lo: k.lo, row: i}
	}
	radixsort.Sort(rows, keyedRowKey{})
	return rows
}

// newGroupColumnSlice allocates an empty, growable slice of the same
// element type as the source column, mirroring the type switch every other
// group-building path in this package uses.
func newGroupColumnSlice(sample interface{}, capHint int) interface{} {
	switch sample.(type) {
	case []int64:
		return make([]int64, 0, capHint)
	case []float64:
		return make([]float64, 0, capHint)
	case []string:
		return make([]string, 0, capHint)
	case []bool:
		return make([]bool, 0, capHint)
	default:
		return nil
	}
}

// appendGroupColumnValue appends the value at row rep of column col onto the
// accumulator slice for that column, returning the grown slice.
func appendGroupColumnValue(acc interface{}, colData interface{}, rep int) interface{} {
	switch a := acc.(type) {
	case []int64:
		return append(a, colData.([]int64)[rep])
	case []float64:
		return append(a, colData.([]float64)[rep])
	case []string:
		return append(a, colData.([]string)[rep])
	case []bool:
		return append(a, colData.([]bool)[rep])
	default:
		return acc
	}
}

// sortAggregateInt64 groups df by columns and aggregates the int64 values
// column, using a radix sort over the 128-bit group keys (§4.3-4.10 of the
// sort core) instead of a hash map to collect matching rows into runs.
func sortAggregateInt64(df *DataFrame, columns []string, values []int64, column string, aggType AggregationType) (*DataFrame, error) {
	rows := sortGroupRows(df, columns)

	groupAccum := make(map[string]interface{}, len(columns))
	for _, col := range columns {
		groupAccum[col] = newGroupColumnSlice(df.series[col].Data, 64)
	}
	aggData := make([]int64, 0, 64)

	runStart := 0
	for i := 1; i <= len(rows); i++ {
		if i < len(rows) && rows[i].hi == rows[runStart].hi && rows[i].lo == rows[runStart].lo {
			continue
		}

		rep := rows[runStart].row
		for _, col := range columns {
			groupAccum[col] = appendGroupColumnValue(groupAccum[col], df.series[col].Data, rep)
		}

		var sum, min, max int64
		min = values[rep]
		max = min
		var count int64
		for j := runStart; j < i; j++ {
			v := values[rows[j].row]
			sum += v
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
			count++
		}

		var out int64
		switch aggType {
		case Sum:
			out = sum
		case Mean:
			out = sum / count
		case Count:
			out = count
		case Min:
			out = min
		case Max:
			out = max
		}
		aggData = append(aggData, out)

		runStart = i
	}

	return buildSortAggregateResult(df, columns, column, groupAccum, aggData)
}

// sortAggregateFloat64 is sortAggregateInt64's float64 counterpart.
func sortAggregateFloat64(df *DataFrame, columns []string, values []float64, column string, aggType AggregationType) (*DataFrame, error) {
	rows := sortGroupRows(df, columns)

	groupAccum := make(map[string]interface{}, len(columns))
	for _, col := range columns {
		groupAccum[col] = newGroupColumnSlice(df.series[col].Data, 64)
	}
	aggData := make([]float64, 0, 64)

	runStart := 0
	for i := 1; i <= len(rows); i++ {
		if i < len(rows) && rows[i].hi == rows[runStart].hi && rows[i].lo == rows[runStart].lo {
			continue
		}

		rep := rows[runStart].row
		for _, col := range columns {
			groupAccum[col] = appendGroupColumnValue(groupAccum[col], df.series[col].Data, rep)
		}

		var sum, min, max float64
		min = values[rep]
		max = min
		var count int64
		for j := runStart; j < i; j++ {
			v := values[rows[j].row]
			sum += v
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
			count++
		}

		var out float64
		switch aggType {
		case Sum:
			out = sum
		case Mean:
			out = sum / float64(count)
		case Count:
			out = float64(count)
		case Min:
			out = min
		case Max:
			out = max
		}
		aggData = append(aggData, out)

		runStart = i
	}

	return buildSortAggregateResult(df, columns, column, groupAccum, aggData)
}

// buildSortAggregateResult assembles the grouped result DataFrame from the
// per-column group key accumulators and the finished aggregate column.
func buildSortAggregateResult(df *DataFrame, columns []string, column string, groupAccum map[string]interface{}, aggData interface{}) (*DataFrame, error) {
	resultSeries := make(map[string]*types.Series, len(columns)+1)
	for _, col := range columns {
		resultSeries[col] = types.NewSeries(col, groupAccum[col])
	}
	resultSeries[column] = types.NewSeries(column, aggData)
	return New(resultSeries)
}
