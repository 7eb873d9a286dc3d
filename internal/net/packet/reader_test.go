package packet

import (
	"encoding/binary"
	"math/rand"
	"testing"
)

func TestReadIntSentinels(t *testing.T) {
	// A valid message: id, int8, int16, int32.
	w := NewWriter(0x0078, binary.LittleEndian)
	w.WriteInt8(7)
	w.WriteInt16(1234)
	w.WriteInt32(567890)
	full := w.Bytes()

	// Every truncation of the valid message must yield sentinels past the
	// cut, never a panic or an out-of-range read.
	for cut := 0; cut <= len(full); cut++ {
		r := NewReader(full[:cut], binary.LittleEndian)
		b := r.ReadInt8()
		s := r.ReadInt16()
		l := r.ReadInt32()
		if cut == len(full) {
			if b != 7 || s != 1234 || l != 567890 {
				t.Fatalf("full read = %d, %d, %d", b, s, l)
			}
			if r.Truncated() {
				t.Fatal("full read reported truncated")
			}
			continue
		}
		if !r.Truncated() {
			t.Fatalf("cut=%d: reader not truncated", cut)
		}
		if cut < 3 && b != -1 {
			t.Fatalf("cut=%d: int8 = %d, want -1", cut, b)
		}
		if cut < 5 && s != -1 {
			t.Fatalf("cut=%d: int16 = %d, want -1", cut, s)
		}
		if l != -1 {
			t.Fatalf("cut=%d: int32 = %d, want -1", cut, l)
		}
	}
}

func TestReadIntRandomTruncation(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		buf := make([]byte, rng.Intn(16))
		rng.Read(buf)
		r := NewReader(buf, binary.BigEndian)
		for j := 0; j < 8; j++ {
			switch rng.Intn(4) {
			case 0:
				r.ReadInt8()
			case 1:
				r.ReadInt16()
			case 2:
				r.ReadInt32()
			case 3:
				r.ReadString(rng.Intn(8) - 1)
			}
		}
	}
}

func TestStringFixedWidthRoundTrip(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"", 8, ""},
		{"Aisha", 8, "Aisha"},
		{"Aisha", 5, "Aisha"},
		{"Mouboo the Third", 8, "Mouboo t"},
	}
	for _, tt := range tests {
		w := NewWriter(0x0095, binary.LittleEndian)
		w.WriteString(tt.in, tt.width)
		if got := len(w.Bytes()); got != 2+tt.width {
			t.Errorf("WriteString(%q, %d): encoded %d bytes, want %d", tt.in, tt.width, got, 2+tt.width)
		}
		r := NewReader(w.Bytes(), binary.LittleEndian)
		if got := r.ReadString(tt.width); got != tt.want {
			t.Errorf("round trip %q width %d = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}

func TestStringLengthPrefixed(t *testing.T) {
	w := NewWriter(0x02A0, binary.BigEndian)
	w.WriteString("hello world", -1)
	r := NewReader(w.Bytes(), binary.BigEndian)
	if got := r.ReadString(-1); got != "hello world" {
		t.Fatalf("prefixed round trip = %q", got)
	}
}

func TestStringOverrunMarksTruncated(t *testing.T) {
	w := NewWriter(0x008D, binary.LittleEndian)
	w.WriteInt16(200) // declared length far past the buffer
	r := NewReader(w.Bytes(), binary.LittleEndian)
	if got := r.ReadString(-1); got != "" {
		t.Fatalf("overrun string = %q, want empty", got)
	}
	if !r.Truncated() {
		t.Fatal("overrun did not mark reader truncated")
	}
}

func TestCoordinatesRoundTrip(t *testing.T) {
	for _, x := range []int{0, 1, 255, 256, 1023, 2047} {
		for _, y := range []int{0, 1, 31, 32, 1023, 2047} {
			for dir := uint8(0); dir < 4; dir++ {
				w := NewWriter(0x0087, binary.LittleEndian)
				w.WriteCoordinates(x, y, dir)
				r := NewReader(w.Bytes(), binary.LittleEndian)
				gx, gy, gd := r.ReadCoordinates()
				if gx != x || gy != y || gd != dir {
					t.Fatalf("(%d,%d,%d) decoded as (%d,%d,%d)", x, y, dir, gx, gy, gd)
				}
			}
		}
	}
}

func TestCoordinatePairDecode(t *testing.T) {
	pack := func(srcX, srcY, dstX, dstY int) []byte {
		return []byte{
			byte(srcX >> 2),
			byte(srcX&0x03)<<6 | byte(srcY>>4),
			byte(srcY&0x0F)<<4 | byte(dstX>>6),
			byte(dstX&0x3F)<<2 | byte(dstY>>8),
			byte(dstY),
		}
	}
	tests := [][4]int{
		{0, 0, 0, 0},
		{1, 2, 3, 4},
		{100, 50, 101, 51},
		{1023, 1023, 1023, 1023},
	}
	for _, tt := range tests {
		buf := append([]byte{0x7b, 0x00}, pack(tt[0], tt[1], tt[2], tt[3])...)
		r := NewReader(buf, binary.LittleEndian)
		sx, sy, dx, dy := r.ReadCoordinatePair()
		if sx != tt[0] || sy != tt[1] || dx != tt[2] || dy != tt[3] {
			t.Errorf("pair %v decoded as (%d,%d)->(%d,%d)", tt, sx, sy, dx, dy)
		}
	}
}

func TestCoordinatesTruncated(t *testing.T) {
	r := NewReader([]byte{0x78, 0x00, 0x01}, binary.LittleEndian)
	x, y, dir := r.ReadCoordinates()
	if x != 0 || y != 0 || dir != 0 {
		t.Fatalf("truncated coords = (%d,%d,%d)", x, y, dir)
	}
	if !r.Truncated() {
		t.Fatal("short coordinate read not flagged")
	}
}
