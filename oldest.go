package arptab

// oldestTracker follows the least recently written table slot across full
// scans. The learner feeds it every slot it visits; when a scan misses, the
// tracked index is the eviction victim.
type oldestTracker struct {
	idx int
	min Tick
}

func (ot *oldestTracker) reset() {
	ot.idx = 0
	ot.min = 0
}

// observe folds one visited slot into the running minimum. A slot reading
// tick zero is preferred outright unless the minimum already reads zero;
// otherwise timestamps compare wraparound-aware.
func (ot *oldestTracker) observe(i int, seen Tick) {
	if seen == 0 {
		if ot.min == 0 {
			return // first zero wins, keep it
		}
	} else if !seen.Older(ot.min) {
		return
	}
	ot.idx = i
	ot.min = seen
}

// overwrote tells the tracker slot i was just written at tick now. If that
// slot was the tracked minimum it is no longer the oldest, so the minimum
// rises to the write time and later observations pull it back down.
func (ot *oldestTracker) overwrote(i int, now Tick) {
	if i == ot.idx {
		ot.min = now
	}
}
