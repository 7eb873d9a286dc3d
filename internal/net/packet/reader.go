package packet

import (
	"encoding/binary"

	"golang.org/x/text/encoding"
)

// Reader is a cursor over one inbound message. The first two bytes are the
// message id; every read advances the cursor by the full field width even
// when the buffer is too short, so a handler that keeps reading after a
// truncated field sees Truncated() and can abort cleanly.
type Reader struct {
	data  []byte
	off   int
	id    uint16
	order binary.ByteOrder
	dec   *encoding.Decoder
}

// NewReader wraps data, consuming the leading message id in the given byte
// order. A short buffer yields id 0 and an immediately-truncated reader.
func NewReader(data []byte, order binary.ByteOrder) *Reader {
	r := &Reader{data: data, order: order}
	if len(data) >= 2 {
		r.id = order.Uint16(data)
	}
	r.off = 2
	return r
}

// NewReaderWithCharset is NewReader plus a single-byte-codepage decoder
// applied to strings. Pure ASCII passes through without conversion.
func NewReaderWithCharset(data []byte, order binary.ByteOrder, dec *encoding.Decoder) *Reader {
	r := NewReader(data, order)
	r.dec = dec
	return r
}

func (r *Reader) ID() uint16 { return r.id }

// Len returns the total declared message length.
func (r *Reader) Len() int { return len(r.data) }

// Unread returns the number of unread bytes, or 0 once truncated.
func (r *Reader) Unread() int {
	if r.off >= len(r.data) {
		return 0
	}
	return len(r.data) - r.off
}

// Truncated reports whether any read ran past the end of the message.
func (r *Reader) Truncated() bool { return r.off > len(r.data) }

// ReadInt8 reads one unsigned byte, or -1 if the message is exhausted.
func (r *Reader) ReadInt8() int {
	v := -1
	if r.off < len(r.data) {
		v = int(r.data[r.off])
	}
	r.off++
	return v
}

// ReadInt16 reads two bytes in the reader's byte order, or -1.
func (r *Reader) ReadInt16() int {
	v := -1
	if r.off+2 <= len(r.data) {
		v = int(r.order.Uint16(r.data[r.off:]))
	}
	r.off += 2
	return v
}

// ReadInt32 reads four bytes in the reader's byte order, or -1.
func (r *Reader) ReadInt32() int {
	v := -1
	if r.off+4 <= len(r.data) {
		v = int(int32(r.order.Uint32(r.data[r.off:])))
	}
	r.off += 4
	return v
}

// Skip advances the cursor without interpreting the bytes.
func (r *Reader) Skip(n int) {
	r.off += n
}

// ReadString reads a string of the given byte length. A negative length means
// the string is preceded by a 16-bit length field. The result is cut at the
// first NUL. A length that runs past the message marks the reader truncated
// and returns "".
func (r *Reader) ReadString(length int) string {
	if length < 0 {
		length = r.ReadInt16()
	}
	if length < 0 || r.off+length > len(r.data) {
		r.off = len(r.data) + 1
		return ""
	}
	raw := r.data[r.off : r.off+length]
	r.off += length
	for i, b := range raw {
		if b == 0 {
			raw = raw[:i]
			break
		}
	}
	return r.decode(raw)
}

func (r *Reader) decode(raw []byte) string {
	if len(raw) == 0 {
		return ""
	}
	ascii := true
	for _, b := range raw {
		if b >= 0x80 {
			ascii = false
			break
		}
	}
	if ascii || r.dec == nil {
		return string(raw)
	}
	decoded, err := r.dec.Bytes(raw)
	if err != nil {
		return string(raw)
	}
	return string(decoded)
}

// ReadCoordinates unpacks the 3-byte position triple: x in byte0 plus the
// low 3 bits of byte1, y in the rest of byte1 plus the low 6 bits of byte2,
// direction in the top 2 bits of byte2.
func (r *Reader) ReadCoordinates() (x, y int, dir uint8) {
	if r.off+3 <= len(r.data) {
		p := r.data[r.off:]
		x = int(p[0]) | int(p[1]&0x07)<<8
		y = int(p[1]>>3) | int(p[2]&0x3F)<<5
		dir = p[2] >> 6
	}
	r.off += 3
	return x, y, dir
}

// ReadCoordinatePair unpacks the 5-byte source/destination pair used by
// movement-with-destination messages. No direction is carried.
func (r *Reader) ReadCoordinatePair() (srcX, srcY, dstX, dstY int) {
	if r.off+5 <= len(r.data) {
		p := r.data[r.off:]
		srcX = int(p[0])<<2 | int(p[1]>>6)
		srcY = int(p[1]&0x3F)<<4 | int(p[2]>>4)
		dstX = int(p[2]&0x0F)<<6 | int(p[3]>>2)
		dstY = int(p[3]&0x03)<<8 | int(p[4])
	}
	r.off += 5
	return srcX, srcY, dstX, dstY
}
