package ipv4

import "testing"

func TestFrameFields(t *testing.T) {
	var buf [20]byte
	buf[0] = 0x45
	buf[2] = 0
	buf[3] = 20
	buf[9] = 17 // UDP
	copy(buf[12:16], []byte{192, 168, 1, 2})
	copy(buf[16:20], []byte{192, 168, 1, 1})

	ifrm, err := NewFrame(buf[:])
	if err != nil {
		t.Fatal(err)
	}
	if err := ifrm.Validate(); err != nil {
		t.Fatal(err)
	}
	if ifrm.HeaderLength() != 20 {
		t.Errorf("header length: got %d, want 20", ifrm.HeaderLength())
	}
	if ifrm.TotalLength() != 20 {
		t.Errorf("total length: got %d, want 20", ifrm.TotalLength())
	}
	if ifrm.Protocol() != 17 {
		t.Errorf("protocol: got %d, want 17", ifrm.Protocol())
	}
	if *ifrm.SourceAddr() != [4]byte{192, 168, 1, 2} {
		t.Errorf("source: got %v", *ifrm.SourceAddr())
	}
	if *ifrm.DestinationAddr() != [4]byte{192, 168, 1, 1} {
		t.Errorf("destination: got %v", *ifrm.DestinationAddr())
	}
}

func TestFrameValidate(t *testing.T) {
	if _, err := NewFrame(make([]byte, 19)); err == nil {
		t.Error("expected error for short buffer")
	}

	var buf [20]byte
	buf[0] = 0x65 // IPv6 version nibble
	ifrm, _ := NewFrame(buf[:])
	if err := ifrm.Validate(); err == nil {
		t.Error("expected error for bad version")
	}

	buf[0] = 0x46 // IHL of 24 exceeds the buffer
	ifrm, _ = NewFrame(buf[:])
	if err := ifrm.Validate(); err == nil {
		t.Error("expected error for truncated options")
	}
}
