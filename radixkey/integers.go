package radixkey

// Uint8Key sorts raw bytes: one level, the byte itself.
type Uint8Key struct{}

func (Uint8Key) Levels() int                { return 1 }
func (Uint8Key) ByteAt(v uint8, _ int) byte { return v }

// Uint16Key sorts uint16 values MSB-first.
type Uint16Key struct{}

func (Uint16Key) Levels() int { return 2 }
func (Uint16Key) ByteAt(v uint16, level int) byte {
	return byte(v >> uint((2-1-level)*8))
}

// Uint32Key sorts uint32 values MSB-first.
type Uint32Key struct{}

func (Uint32Key) Levels() int { return 4 }
func (Uint32Key) ByteAt(v uint32, level int) byte {
	return byte(v >> uint((4-1-level)*8))
}

// Uint64Key sorts uint64 values MSB-first.
type Uint64Key struct{}

func (Uint64Key) Levels() int { return 8 }
func (Uint64Key) ByteAt(v uint64, level int) byte {
	return byte(v >> uint((8-1-level)*8))
}
