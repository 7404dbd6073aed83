package radixkey

// BytesKey sorts fixed-length []byte keys: level l is byte l, so shorter
// inputs than N must be zero-padded by the caller. All elements passed to
// Sort with a given BytesKey must share exactly N bytes; the core only
// reads the first N bytes of each value via ByteAt.
type BytesKey struct {
	N int
}

func (k BytesKey) Levels() int { return k.N }

func (k BytesKey) ByteAt(v []byte, level int) byte {
	return v[level]
}
