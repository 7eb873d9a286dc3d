package packet

import (
	"encoding/binary"

	"golang.org/x/text/encoding"
)

// Writer builds one outbound message. The message id is written first in the
// writer's byte order; fields follow in declaration order.
type Writer struct {
	buf   []byte
	id    uint16
	order binary.ByteOrder
	enc   *encoding.Encoder
}

func NewWriter(id uint16, order binary.ByteOrder) *Writer {
	w := &Writer{buf: make([]byte, 0, 32), id: id, order: order}
	w.WriteInt16(int(id))
	return w
}

// NewWriterWithCharset is NewWriter plus a codepage encoder applied to
// strings, mirroring the reader side.
func NewWriterWithCharset(id uint16, order binary.ByteOrder, enc *encoding.Encoder) *Writer {
	w := NewWriter(id, order)
	w.enc = enc
	return w
}

func (w *Writer) ID() uint16 { return w.id }

// WriteInt8 writes one byte.
func (w *Writer) WriteInt8(v int) {
	w.buf = append(w.buf, byte(v))
}

// WriteInt16 writes two bytes in the writer's byte order.
func (w *Writer) WriteInt16(v int) {
	var b [2]byte
	w.order.PutUint16(b[:], uint16(v))
	w.buf = append(w.buf, b[:]...)
}

// WriteInt32 writes four bytes in the writer's byte order.
func (w *Writer) WriteInt32(v int) {
	var b [4]byte
	w.order.PutUint32(b[:], uint32(int32(v)))
	w.buf = append(w.buf, b[:]...)
}

// WriteString writes s into a field of the given byte width, truncating or
// zero-padding as needed. A negative width writes a 16-bit length prefix and
// the exact string instead.
func (w *Writer) WriteString(s string, width int) {
	raw := w.encode(s)
	if width < 0 {
		w.WriteInt16(len(raw))
		width = len(raw)
	}
	if len(raw) > width {
		raw = raw[:width]
	}
	w.buf = append(w.buf, raw...)
	for i := len(raw); i < width; i++ {
		w.buf = append(w.buf, 0)
	}
}

func (w *Writer) encode(s string) []byte {
	if w.enc == nil {
		return []byte(s)
	}
	encoded, err := w.enc.Bytes([]byte(s))
	if err != nil {
		return []byte(s)
	}
	return encoded
}

// WriteCoordinates packs an (x, y, direction) triple into the 3-byte wire
// layout decoded by Reader.ReadCoordinates. x and y must fit in 11 bits,
// direction in 2.
func (w *Writer) WriteCoordinates(x, y int, dir uint8) {
	w.buf = append(w.buf,
		byte(x),
		byte(x>>8)&0x07|byte(y&0x1F)<<3,
		byte(y>>5)&0x3F|dir<<6,
	)
}

// Bytes returns the encoded message, id included.
func (w *Writer) Bytes() []byte { return w.buf }

// Len returns the current encoded length, id included.
func (w *Writer) Len() int { return len(w.buf) }

// PatchLength overwrites the 16-bit field immediately after the message id
// with the total message length. Variable-length Athena-family messages
// carry their size there.
func (w *Writer) PatchLength() {
	if len(w.buf) >= 4 {
		w.order.PutUint16(w.buf[2:4], uint16(len(w.buf)))
	}
}
