package cmdq

import (
	"encoding/binary"
	"testing"
)

func words(t *testing.T, buf []byte) []Word {
	t.Helper()
	ws, err := ParseWords(buf)
	if err != nil {
		t.Fatal(err)
	}
	return ws
}

func checkWords(t *testing.T, got []Word, want ...Word) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d words, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("word %d = %#08x, want %#08x", i, uint32(got[i]), uint32(want[i]))
		}
	}
}

func TestSingleWordCommands(t *testing.T) {
	checkWords(t, words(t, AppendReadStatus(nil, 3)), 0x80030000)
	checkWords(t, words(t, AppendSendPulse(nil, 0x1234)), 0x000b1234)
	checkWords(t, words(t, AppendWriteRegister(nil, 2, 0xabcd)), 0x0022abcd)
	checkWords(t, words(t, AppendReadRegister(nil, 5)), 0x80250000)
}

func TestMemoryCommands(t *testing.T) {
	got := words(t, AppendWriteMemory(nil, 0x12345, []uint32{0xdeadbeef, 0x00c0ffee}))
	checkWords(t, got,
		0x00112345, 0x00120001, // address halves
		0x0013beef, 0x0014dead,
		0x0013ffee, 0x001400c0,
	)
	got = words(t, AppendReadMemory(nil, 0x12345, 7))
	checkWords(t, got, 0x00112345, 0x00120001, 0x00100007, 0x80140000)
}

func TestReadDataFIFO(t *testing.T) {
	checkWords(t, words(t, AppendReadDataFIFO(nil, 0x70003)), 0x001a0007, 0x00190003)
}

func TestWireEndianness(t *testing.T) {
	buf := AppendSendPulse(nil, 0x0102)
	if len(buf) != WordSize {
		t.Fatalf("encoded %d bytes", len(buf))
	}
	if binary.BigEndian.Uint32(buf) != 0x000b0102 {
		t.Errorf("wire bytes % x not big-endian", buf)
	}
}

func TestParseWordsBoundary(t *testing.T) {
	if _, err := ParseWords(make([]byte, 7)); err == nil {
		t.Error("ragged buffer accepted")
	}
	ws, err := ParseWords(nil)
	if err != nil || len(ws) != 0 {
		t.Error("empty buffer must parse to no words")
	}
}

func TestWordHalves(t *testing.T) {
	w := Word(0x0022abcd)
	if w.Opcode() != 0x0022 || w.Arg() != 0xabcd {
		t.Errorf("halves = %#x/%#x", w.Opcode(), w.Arg())
	}
}
