package arptab

import "github.com/nkral/arptab/internal"

type learnerState uint8

const (
	learnerIdle     learnerState = iota // idle
	learnerFilter                       // filter
	learnerScanning                     // scanning
	learnerWrite                        // write
)

// learner consumes snooped (IP, hardware address) pairs and is the table's
// only writer. A write always completes within one step, so the resolver
// never sees a half-written record.
type learner struct {
	state    learnerState
	srcProto [4]byte
	srcHW    [6]byte
	cursor   int
	victim   int
}

func (l *learner) reset() {
	*l = learner{}
}

func (c *Cache) stepLearner() {
	switch c.lrn.state {
	case learnerFilter:
		c.learnerFilter()
	case learnerScanning:
		c.learnerScan()
	case learnerWrite:
		c.learnerWrite()
	}
}

// learnerFilter discards observations not worth a table slot: the zero and
// loopback addresses, our own address, anything off-subnet (remote traffic
// arrives with the gateway's hardware address, not the peer's) and the
// gateway itself, which the opportunistic gateway mapping already covers.
func (c *Cache) learnerFilter() {
	l := &c.lrn
	src := l.srcProto
	drop := addrIsZero4(src) ||
		src == loopbackProtoAddr ||
		src == c.ourProto ||
		!sameSubnet(src, c.ourProto, c.netmask) ||
		src == c.gateway
	if drop {
		l.state = learnerIdle
		c.trace("arptab:learn:filtered", internal.SlogAddr4("src", &src))
		return
	}
	l.cursor = 0
	c.probe.learner.arm(src)
	l.state = learnerScanning
}

// learnerScan looks for an existing record for the source address, one slot
// per step, feeding the oldest tracker along the way. The match may come
// from the resolver's concurrent scan via the shared probe. A full miss
// selects the tracked oldest slot as the eviction victim.
func (c *Cache) learnerScan() {
	l := &c.lrn
	latch := &c.probe.learner
	if latch.hit {
		l.victim = latch.idx
		l.state = learnerWrite
		return
	}
	if l.cursor >= c.tab.size() {
		l.victim = c.oldest.idx
		l.state = learnerWrite
		return
	}
	rec := c.tab.slot(l.cursor)
	c.oldest.observe(l.cursor, rec.seen)
	c.probe.publish(l.cursor, rec)
	l.cursor++
}

func (c *Cache) learnerWrite() {
	l := &c.lrn
	c.probe.learner.disarm()
	c.tab.write(l.victim, l.srcProto, l.srcHW, c.now)
	c.oldest.overwrote(l.victim, c.now)
	l.state = learnerIdle
	c.debug("arptab:learn",
		internal.SlogAddr4("src", &l.srcProto),
		internal.SlogAddr6("hw", &l.srcHW))
}
