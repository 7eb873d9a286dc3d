package net

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Framer splits the TCP byte stream into whole messages and writes
// whole messages back out. The two server families frame differently,
// so the dialect supplies the framer.
type Framer interface {
	// ReadFrame returns one complete message, id bytes included.
	ReadFrame(r io.Reader) ([]byte, error)
	// WriteFrame writes one complete message, id bytes included.
	WriteFrame(w io.Writer, data []byte) error
}

// VarLen marks a message whose length travels in bytes 2..3 of the
// message itself.
const VarLen = -1

// AthenaFramer frames the eAthena stream. There is no frame header:
// the 16-bit LE message id selects a known fixed length, or VarLen for
// messages that carry their own 16-bit total length after the id.
type AthenaFramer struct {
	lengths map[uint16]int
}

func NewAthenaFramer(lengths map[uint16]int) *AthenaFramer {
	return &AthenaFramer{lengths: lengths}
}

// Length reports the table entry for an id.
func (f *AthenaFramer) Length(id uint16) (int, bool) {
	n, ok := f.lengths[id]
	return n, ok
}

func (f *AthenaFramer) ReadFrame(r io.Reader) ([]byte, error) {
	var head [4]byte
	if _, err := io.ReadFull(r, head[:2]); err != nil {
		return nil, fmt.Errorf("read message id: %w", err)
	}
	id := binary.LittleEndian.Uint16(head[:2])

	length, ok := f.lengths[id]
	if !ok {
		// Without a length there is no way to find the next message
		// boundary; the stream is unrecoverable.
		return nil, fmt.Errorf("unknown message id 0x%04x: stream desynced", id)
	}

	if length == VarLen {
		if _, err := io.ReadFull(r, head[2:4]); err != nil {
			return nil, fmt.Errorf("read message 0x%04x length: %w", id, err)
		}
		length = int(binary.LittleEndian.Uint16(head[2:4]))
		if length < 4 || length > 65535 {
			return nil, fmt.Errorf("message 0x%04x: invalid length %d", id, length)
		}
		data := make([]byte, length)
		copy(data, head[:4])
		if _, err := io.ReadFull(r, data[4:]); err != nil {
			return nil, fmt.Errorf("read message 0x%04x payload: %w", id, err)
		}
		return data, nil
	}

	if length < 2 {
		return nil, fmt.Errorf("message 0x%04x: invalid table length %d", id, length)
	}
	data := make([]byte, length)
	copy(data, head[:2])
	if _, err := io.ReadFull(r, data[2:]); err != nil {
		return nil, fmt.Errorf("read message 0x%04x payload: %w", id, err)
	}
	return data, nil
}

// WriteFrame writes the message as-is: fixed-length messages are
// self-delimiting and variable ones already carry their length bytes.
func (f *AthenaFramer) WriteFrame(w io.Writer, data []byte) error {
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write message: %w", err)
	}
	return nil
}

// ManaServFramer frames the manaserv stream.
// Wire format: [2 bytes BE: payload length][payload], payload starting
// with the 16-bit BE message id.
type ManaServFramer struct{}

func (ManaServFramer) ReadFrame(r io.Reader) ([]byte, error) {
	var header [2]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, fmt.Errorf("read frame header: %w", err)
	}
	length := int(binary.BigEndian.Uint16(header[:]))
	if length < 2 {
		return nil, fmt.Errorf("invalid frame length: %d", length)
	}
	data := make([]byte, length)
	if _, err := io.ReadFull(r, data); err != nil {
		return nil, fmt.Errorf("read frame payload (%d bytes): %w", length, err)
	}
	return data, nil
}

func (ManaServFramer) WriteFrame(w io.Writer, data []byte) error {
	var header [2]byte
	binary.BigEndian.PutUint16(header[:], uint16(len(data)))
	if _, err := w.Write(header[:]); err != nil {
		return fmt.Errorf("write frame header: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write frame payload: %w", err)
	}
	return nil
}
