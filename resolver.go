package arptab

import (
	"log/slog"

	"github.com/nkral/arptab/internal"
)

//go:generate stringer -type=resolverState,learnerState -linecomment -output stringers.go .

type resolverState uint8

const (
	resolverIdle     resolverState = iota // idle
	resolverShortcut                      // shortcut
	resolverScanning                      // scanning
)

// resolver holds the lookup machine state. It only ever reads the table.
// A query runs shortcut checks first and scans the table only when none
// apply; the result is latched until the next accepted query.
type resolver struct {
	state     resolverState
	target    [4]byte
	nextHop   [4]byte
	cursor    int
	hw        [6]byte
	found     bool
	hasResult bool
	memo      answerMemo
}

// answerMemo remembers the most recent table answer so repeat queries for
// the same address skip the scan while the entry is still fresh.
type answerMemo struct {
	proto [4]byte
	hw    [6]byte
	seen  Tick
	valid bool
}

func (r *resolver) reset() {
	*r = resolver{}
}

func (c *Cache) stepResolver() {
	switch c.res.state {
	case resolverShortcut:
		c.resolverShortcut()
	case resolverScanning:
		c.resolverScan()
	}
}

// resolverShortcut computes the next hop and tries every answer source that
// does not involve the table: broadcast, fresh memo, cached gateway mapping
// and the local/loopback addresses, in that order.
func (c *Cache) resolverShortcut() {
	r := &c.res
	nh := r.target
	// Broadcast and loopback are never routed via the gateway.
	if nh != broadcastProtoAddr && nh != loopbackProtoAddr && !sameSubnet(nh, c.ourProto, c.netmask) {
		nh = c.gateway
	}
	r.nextHop = nh
	switch {
	case nh == broadcastProtoAddr:
		c.resolverAnswer(broadcastHWAddr)
	case r.memo.valid && nh == r.memo.proto && c.now.Sub(r.memo.seen) < c.refresh:
		c.resolverAnswer(r.memo.hw)
	case nh == c.gateway && !addrIsZero4(nh) && !addrIsZero6(c.gatewayHW):
		c.resolverAnswer(c.gatewayHW)
	case nh == loopbackProtoAddr || nh == c.ourProto:
		c.resolverAnswer(c.ourHW)
	case addrIsZero4(nh):
		// Remote destination with no gateway configured. A zero key must
		// never reach the scan since it matches virgin slots.
		c.resolverMiss(false)
	default:
		r.cursor = 0
		c.probe.resolver.arm(nh)
		r.state = resolverScanning
		c.trace("arptab:resolve:scan", internal.SlogAddr4("nexthop", &nh))
	}
}

// resolverScan advances the table scan one slot. A latched match, own or
// published by the learner, ends the scan with a reply; running off the end
// of the table ends it with a miss and a throttled resolution request.
func (c *Cache) resolverScan() {
	r := &c.res
	latch := &c.probe.resolver
	if latch.hit {
		rec := latch.rec
		latch.disarm()
		r.memo = answerMemo{proto: rec.proto, hw: rec.hw, seen: rec.seen, valid: true}
		c.resolverAnswer(rec.hw)
		if c.now.Sub(rec.seen) > c.refresh {
			// Stale answer is still an answer; refresh in the background.
			c.maybeRequest(r.nextHop)
		}
		return
	}
	if r.cursor >= c.tab.size() {
		latch.disarm()
		c.resolverMiss(true)
		return
	}
	c.probe.publish(r.cursor, c.tab.slot(r.cursor))
	r.cursor++
}

func (c *Cache) resolverAnswer(hw [6]byte) {
	r := &c.res
	r.hw = hw
	r.found = true
	r.hasResult = true
	r.state = resolverIdle
	c.debug("arptab:resolve:answer",
		internal.SlogAddr4("target", &r.target),
		internal.SlogAddr6("hw", &hw))
}

func (c *Cache) resolverMiss(request bool) {
	r := &c.res
	r.found = false
	r.hasResult = true
	r.state = resolverIdle
	if request {
		c.maybeRequest(r.nextHop)
	}
	c.debug("arptab:resolve:miss", internal.SlogAddr4("target", &r.target),
		slog.Bool("request", request))
}
