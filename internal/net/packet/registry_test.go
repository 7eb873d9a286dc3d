package packet

import (
	"encoding/binary"
	"testing"

	"go.uber.org/zap"
)

type recordingHandler struct {
	ids  []uint16
	got  []uint16
	boom bool
}

func (h *recordingHandler) IDs() []uint16 { return h.ids }

func (h *recordingHandler) Handle(r *Reader) {
	h.got = append(h.got, r.ID())
	if h.boom {
		panic("bad handler")
	}
}

func message(id uint16) []byte {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], id)
	return b[:]
}

func TestDispatchRoutesToOwner(t *testing.T) {
	reg := NewRegistry(binary.LittleEndian, zap.NewNop())
	h := &recordingHandler{ids: []uint16{0x0078, 0x007b}}
	reg.Register(h)

	if err := reg.Dispatch(message(0x007b)); err != nil {
		t.Fatal(err)
	}
	if len(h.got) != 1 || h.got[0] != 0x007b {
		t.Fatalf("handled ids = %v", h.got)
	}
}

func TestDispatchDropsUnknown(t *testing.T) {
	reg := NewRegistry(binary.LittleEndian, zap.NewNop())
	reg.Register(&recordingHandler{ids: []uint16{0x0078}})

	if err := reg.Dispatch(message(0x9999)); err != nil {
		t.Fatalf("unknown id must be dropped silently, got %v", err)
	}
}

func TestDispatchRecoversPanic(t *testing.T) {
	reg := NewRegistry(binary.LittleEndian, zap.NewNop())
	reg.Register(&recordingHandler{ids: []uint16{0x0080}, boom: true})

	if err := reg.Dispatch(message(0x0080)); err == nil {
		t.Fatal("expected an error from a panicking handler")
	}
}

func TestRegisterRejectsDuplicateID(t *testing.T) {
	reg := NewRegistry(binary.LittleEndian, zap.NewNop())
	reg.Register(&recordingHandler{ids: []uint16{0x0078}})

	defer func() {
		if recover() == nil {
			t.Fatal("duplicate registration must panic")
		}
	}()
	reg.Register(&recordingHandler{ids: []uint16{0x0078}})
}

func TestDispatchShortMessage(t *testing.T) {
	reg := NewRegistry(binary.LittleEndian, zap.NewNop())
	if err := reg.Dispatch([]byte{0x42}); err == nil {
		t.Fatal("one-byte frame must be rejected")
	}
}
