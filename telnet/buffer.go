package telnet

// initialBufferCapacity is the starting size for each of the codec's
// two scratch buffers (decoder subnegotiation payload, encoder output).
const initialBufferCapacity = 4096

// byteBuffer is a growable byte scratch space reused across calls
// instead of being allocated per frame. It grows on demand, the same
// way the teacher's generic queue buffer grows its backing array when
// an append would overflow it, and it is reset (not reallocated)
// between subnegotiations so steady-state operation does no further
// allocation once the payload sizes stabilize.
type byteBuffer struct {
	data []byte
}

func newByteBuffer() *byteBuffer {
	return &byteBuffer{data: make([]byte, 0, initialBufferCapacity)}
}

func (b *byteBuffer) Append(v byte) {
	b.data = append(b.data, v)
}

func (b *byteBuffer) AppendSlice(v []byte) {
	b.data = append(b.data, v...)
}

func (b *byteBuffer) Bytes() []byte {
	return b.data
}

func (b *byteBuffer) Len() int {
	return len(b.data)
}

// Reset drops the buffered bytes without shrinking the backing array,
// so the next subnegotiation reuses the capacity already grown.
func (b *byteBuffer) Reset() {
	b.data = b.data[:0]
}

// Take returns a freshly allocated copy of the buffered bytes and
// resets the buffer. Used whenever the buffered bytes are handed to a
// caller that may retain them past the buffer's next reuse.
func (b *byteBuffer) Take() []byte {
	out := make([]byte, len(b.data))
	copy(out, b.data)
	b.Reset()
	return out
}
