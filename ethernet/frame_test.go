package ethernet

import (
	"bytes"
	"testing"
)

func TestFrameFields(t *testing.T) {
	var buf [SizeHeader + 4]byte
	if _, err := NewFrame(buf[:SizeHeader-1]); err == nil {
		t.Error("short buffer accepted")
	}
	efrm, err := NewFrame(buf[:])
	if err != nil {
		t.Fatal(err)
	}
	*efrm.DestinationHardwareAddr() = BroadcastAddr()
	*efrm.SourceHardwareAddr() = [6]byte{1, 2, 3, 4, 5, 6}
	efrm.SetEtherType(TypeARP)
	if !efrm.IsBroadcast() {
		t.Error("broadcast destination not detected")
	}
	if efrm.EtherTypeOrSize() != TypeARP {
		t.Error("ethertype roundtrip failed")
	}
	payload, err := efrm.Payload()
	if err != nil {
		t.Fatal(err)
	}
	if len(payload) != 4 {
		t.Errorf("payload length = %d, want 4", len(payload))
	}
}

func TestFrameSizeField(t *testing.T) {
	var buf [SizeHeader + 10]byte
	efrm, _ := NewFrame(buf[:])
	efrm.SetEtherType(Type(8)) // 802.3 length field
	if !Type(8).IsSize() {
		t.Fatal("length field not recognized as size")
	}
	payload, err := efrm.Payload()
	if err != nil {
		t.Fatal(err)
	}
	if len(payload) != 8 {
		t.Errorf("payload length = %d, want size field value 8", len(payload))
	}
	efrm.SetEtherType(Type(100)) // size exceeds buffer
	if _, err := efrm.Payload(); err == nil {
		t.Error("oversized length field accepted")
	}
}

func TestFrameVLANRejected(t *testing.T) {
	var buf [SizeHeader + 8]byte
	efrm, _ := NewFrame(buf[:])
	efrm.SetEtherType(TypeVLAN)
	if !efrm.IsVLAN() {
		t.Error("VLAN TPID not detected")
	}
	if _, err := efrm.Payload(); err == nil {
		t.Error("VLAN payload access must error")
	}
}

func TestAppendAddr(t *testing.T) {
	got := AppendAddr(nil, [6]byte{0xde, 0xad, 0xbe, 0xef, 0x00, 0x01})
	want := []byte("de:ad:be:ef:00:01")
	if !bytes.Equal(got, want) {
		t.Errorf("AppendAddr = %q, want %q", got, want)
	}
}
