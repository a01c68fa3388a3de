// Package buffer provides the byte buffer shared by every codec.
package buffer

import (
	"encoding/binary"
	"io"
)

// Buffer is similar to bytes.Buffer but specialized for this package:
// reads never copy and big-endian helpers are built in.
type Buffer struct {
	b []byte
	i int
}

// New returns a Buffer reading from b. The slice is not copied.
func New(b []byte) *Buffer {
	return &Buffer{b: b}
}

// Next returns a slice of the next n bytes and advances the read
// position. ok is false and nothing is consumed when fewer than n bytes
// remain.
func (b *Buffer) Next(n int64) ([]byte, bool) {
	if n < 0 || n > int64(b.Len()) {
		return nil, false
	}
	buf := b.b[b.i : b.i+int(n)]
	b.i += int(n)
	return buf, true
}

// Offset is the number of bytes consumed so far.
func (b *Buffer) Offset() int {
	return b.i
}

// ReadByte reads one byte, returning io.EOF when empty.
func (b *Buffer) ReadByte() (byte, error) {
	if b.Len() < 1 {
		return 0, io.EOF
	}
	c := b.b[b.i]
	b.i++
	return c, nil
}

// ReadUint16 reads a big-endian uint16.
func (b *Buffer) ReadUint16() (uint16, error) {
	if b.Len() < 2 {
		return 0, io.EOF
	}
	n := binary.BigEndian.Uint16(b.b[b.i:])
	b.i += 2
	return n, nil
}

// ReadUint32 reads a big-endian uint32.
func (b *Buffer) ReadUint32() (uint32, error) {
	if b.Len() < 4 {
		return 0, io.EOF
	}
	n := binary.BigEndian.Uint32(b.b[b.i:])
	b.i += 4
	return n, nil
}

// ReadUint64 reads a big-endian uint64.
func (b *Buffer) ReadUint64() (uint64, error) {
	if b.Len() < 8 {
		return 0, io.EOF
	}
	n := binary.BigEndian.Uint64(b.b[b.i:])
	b.i += 8
	return n, nil
}

// Append appends p to the buffer.
func (b *Buffer) Append(p []byte) {
	b.b = append(b.b, p...)
}

// AppendByte appends one byte.
func (b *Buffer) AppendByte(c byte) {
	b.b = append(b.b, c)
}

// AppendString appends the bytes of s.
func (b *Buffer) AppendString(s string) {
	b.b = append(b.b, s...)
}

// AppendUint16 appends n in big-endian order.
func (b *Buffer) AppendUint16(n uint16) {
	b.b = append(b.b,
		byte(n>>8),
		byte(n),
	)
}

// AppendUint32 appends n in big-endian order.
func (b *Buffer) AppendUint32(n uint32) {
	b.b = append(b.b,
		byte(n>>24),
		byte(n>>16),
		byte(n>>8),
		byte(n),
	)
}

// AppendUint64 appends n in big-endian order.
func (b *Buffer) AppendUint64(n uint64) {
	b.b = append(b.b,
		byte(n>>56),
		byte(n>>48),
		byte(n>>40),
		byte(n>>32),
		byte(n>>24),
		byte(n>>16),
		byte(n>>8),
		byte(n),
	)
}

// PutUint32At overwrites four bytes at absolute position pos, used to
// back-fill length prefixes once the payload size is known.
func (b *Buffer) PutUint32At(pos int, n uint32) {
	binary.BigEndian.PutUint32(b.b[pos:], n)
}

// Len returns the number of unread bytes.
func (b *Buffer) Len() int {
	return len(b.b) - b.i
}

// Size returns the total number of bytes written, read or not.
func (b *Buffer) Size() int {
	return len(b.b)
}

// Bytes returns the unread portion of the buffer. The slice aliases the
// buffer and is only valid until the next write.
func (b *Buffer) Bytes() []byte {
	return b.b[b.i:]
}

// Detach returns the unread bytes and releases them from the buffer.
func (b *Buffer) Detach() []byte {
	tmp := b.b[b.i:]
	b.b = nil
	b.i = 0
	return tmp
}
