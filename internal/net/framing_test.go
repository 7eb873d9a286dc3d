package net

import (
	"bytes"
	"testing"
)

func TestAthenaFramerFixedLength(t *testing.T) {
	f := NewAthenaFramer(map[uint16]int{0x0080: 7})
	stream := bytes.NewReader([]byte{
		0x80, 0x00, 1, 0, 0, 0, 2, // being remove
		0x80, 0x00, 9, 0, 0, 0, 0, // next message
	})

	first, err := f.ReadFrame(stream)
	if err != nil {
		t.Fatalf("first frame: %v", err)
	}
	if len(first) != 7 || first[6] != 2 {
		t.Fatalf("first frame = %v", first)
	}

	second, err := f.ReadFrame(stream)
	if err != nil {
		t.Fatalf("second frame: %v", err)
	}
	if second[2] != 9 {
		t.Fatalf("second frame = %v, boundary drifted", second)
	}
}

func TestAthenaFramerVariableLength(t *testing.T) {
	f := NewAthenaFramer(map[uint16]int{0x008e: VarLen})
	msg := []byte{0x8e, 0x00, 0x0a, 0x00, 'h', 'e', 'l', 'l', 'o', 0}
	stream := bytes.NewReader(msg)

	got, err := f.ReadFrame(stream)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !bytes.Equal(got, msg) {
		t.Fatalf("frame = %v, want %v", got, msg)
	}
}

func TestAthenaFramerUnknownIDFails(t *testing.T) {
	f := NewAthenaFramer(map[uint16]int{0x0080: 7})
	stream := bytes.NewReader([]byte{0xff, 0xee, 1, 2, 3})

	if _, err := f.ReadFrame(stream); err == nil {
		t.Fatal("unknown id should kill the stream")
	}
}

func TestAthenaFramerRejectsBadVariableLength(t *testing.T) {
	f := NewAthenaFramer(map[uint16]int{0x008e: VarLen})
	stream := bytes.NewReader([]byte{0x8e, 0x00, 0x03, 0x00})

	if _, err := f.ReadFrame(stream); err == nil {
		t.Fatal("length below header size should fail")
	}
}

func TestManaServFramerRoundTrip(t *testing.T) {
	var f ManaServFramer
	msg := []byte{0x02, 0x00, 0xde, 0xad, 0xbe, 0xef}

	var buf bytes.Buffer
	if err := f.WriteFrame(&buf, msg); err != nil {
		t.Fatalf("write: %v", err)
	}
	if buf.Len() != len(msg)+2 {
		t.Fatalf("framed size = %d, want %d", buf.Len(), len(msg)+2)
	}

	got, err := f.ReadFrame(&buf)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !bytes.Equal(got, msg) {
		t.Fatalf("round trip = %v, want %v", got, msg)
	}
}

func TestManaServFramerShortLength(t *testing.T) {
	var f ManaServFramer
	stream := bytes.NewReader([]byte{0x00, 0x01, 0xff})

	if _, err := f.ReadFrame(stream); err == nil {
		t.Fatal("payload shorter than a message id should fail")
	}
}
