package arptab

// record is one neighbor table slot. A slot whose address is all-zero was
// never written since the last reset ("virgin") and reads as infinitely old.
type record struct {
	proto [4]byte
	hw    [6]byte
	seen  Tick
}

func (r *record) isVirgin() bool { return addrIsZero4(r.proto) }

// table is the fixed-capacity entry store. Slots are addressed by linear
// index; there is no hashing. The learner is the only writer and finishes a
// write before starting its next scan, so scanning readers never observe a
// torn record.
type table struct {
	recs []record
}

func (tb *table) reset(size int) {
	if cap(tb.recs) < size {
		tb.recs = make([]record, size)
	} else {
		tb.recs = tb.recs[:size]
		clear(tb.recs)
	}
}

func (tb *table) size() int { return len(tb.recs) }

// slot returns the record at index i for reading. The returned pointer is
// only valid until the next write to i.
func (tb *table) slot(i int) *record { return &tb.recs[i] }

// write overwrites slot i with a freshly-seen mapping. All fields land in
// one call; partial writes are unrepresentable.
func (tb *table) write(i int, proto [4]byte, hw [6]byte, now Tick) {
	tb.recs[i] = record{proto: proto, hw: hw, seen: now}
}
