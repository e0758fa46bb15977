package arptab

// matchLatch is one arm of the shared scan probe. While armed it compares
// every published table read against its key and latches the first hit,
// regardless of which machine issued the read.
type matchLatch struct {
	key   [4]byte
	rec   record
	idx   int
	armed bool
	hit   bool
}

func (ml *matchLatch) arm(key [4]byte) {
	ml.key = key
	ml.armed = true
	ml.hit = false
}

func (ml *matchLatch) disarm() { ml.armed = false }

// scanProbe is the match broadcast shared by the two scanning machines.
// Each machine publishes the slot it reads on a step; both latches see
// every published read, so the learner can pick up a hit from a slot the
// resolver happened to read in the same pass, and vice versa.
type scanProbe struct {
	resolver matchLatch
	learner  matchLatch
}

// publish announces that slot i holding rec was read this step.
func (sp *scanProbe) publish(i int, rec *record) {
	sp.resolver.probe(i, rec)
	sp.learner.probe(i, rec)
}

func (ml *matchLatch) probe(i int, rec *record) {
	if ml.armed && !ml.hit && rec.proto == ml.key {
		ml.hit = true
		ml.idx = i
		ml.rec = *rec
	}
}
