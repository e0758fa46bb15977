package arptab

import (
	"log/slog"

	"github.com/nkral/arptab/internal"
)

// Requester is the resolution-request encoder collaborator. Request is
// best-effort: a trigger issued while the encoder is not ready may be
// silently lost, and the cache never verifies delivery. Retries happen
// naturally through later queries for the still-unresolved address, bounded
// by the request throttle.
type Requester interface {
	Ready() bool
	Request(target [4]byte)
}

// Config carries the addressing and sizing of a [Cache]. The zero values of
// TableSize, RefreshTicks and ThrottleTicks select the package defaults.
type Config struct {
	// HardwareAddr is the local interface's hardware address.
	HardwareAddr [6]byte
	// ProtocolAddr is the local IPv4 address.
	ProtocolAddr [4]byte
	// Netmask selects the on-link subnet.
	Netmask [4]byte
	// Gateway is the next hop for off-subnet destinations. May be zero if
	// the host has no route out, in which case remote queries miss without
	// a table scan.
	Gateway [4]byte
	// TableSize is the neighbor table slot count.
	TableSize int
	// RefreshTicks is the entry age beyond which answers trigger a
	// background re-resolution.
	RefreshTicks Tick
	// ThrottleTicks is the minimum tick spacing between resolution
	// requests for one address.
	ThrottleTicks uint8
}

// Cache is an IPv4 neighbor cache. See the package documentation for the
// machine model. The zero value is unusable; call [Cache.Reset] first.
// Methods are not safe for concurrent use.
type Cache struct {
	ourHW     [6]byte
	ourProto  [4]byte
	netmask   [4]byte
	gateway   [4]byte
	gatewayHW [6]byte
	now       Tick
	refresh   Tick
	tab       table
	oldest    oldestTracker
	probe     scanProbe
	res       resolver
	lrn       learner
	throttle  requestThrottle
	req       Requester
	logger
}

// Reset validates cfg and restarts the cache with an empty table. All
// machine state, the gateway mapping and the answer memo are discarded; the
// table rebuilds purely from observed traffic.
func (c *Cache) Reset(cfg Config) error {
	switch {
	case addrIsZero6(cfg.HardwareAddr):
		return errZeroHWAddr
	case addrIsZero4(cfg.ProtocolAddr):
		return errZeroProtoAddr
	case addrIsZero4(cfg.Netmask):
		return errZeroNetmask
	case cfg.TableSize < 0 || cfg.TableSize > 1<<16:
		return errBadTableSize
	}
	if cfg.TableSize == 0 {
		cfg.TableSize = DefaultTableSize
	}
	if cfg.RefreshTicks == 0 {
		cfg.RefreshTicks = DefaultRefreshTicks
	}
	if cfg.ThrottleTicks == 0 {
		cfg.ThrottleTicks = DefaultThrottleTicks
	}
	c.ourHW = cfg.HardwareAddr
	c.ourProto = cfg.ProtocolAddr
	c.netmask = cfg.Netmask
	c.gateway = cfg.Gateway
	c.gatewayHW = [6]byte{}
	c.now = 0
	c.refresh = cfg.RefreshTicks
	c.tab.reset(cfg.TableSize)
	c.oldest.reset()
	c.probe = scanProbe{}
	c.res.reset()
	c.lrn.reset()
	c.throttle.reset(cfg.ThrottleTicks)
	return nil
}

// SetRequester attaches the resolution-request encoder. A nil requester
// silently drops all triggers.
func (c *Cache) SetRequester(req Requester) { c.req = req }

// SetLogger sets the cache's logger. A nil logger disables logging.
func (c *Cache) SetLogger(l *slog.Logger) { c.log = l }

// SetGateway updates the gateway address at runtime and invalidates the
// cached gateway mapping.
func (c *Cache) SetGateway(gateway [4]byte) {
	c.gateway = gateway
	c.gatewayHW = [6]byte{}
}

// SetNetmask updates the subnet mask at runtime.
func (c *Cache) SetNetmask(mask [4]byte) { c.netmask = mask }

// SetAddrs updates the local hardware and protocol addresses at runtime.
func (c *Cache) SetAddrs(hw [6]byte, proto [4]byte) {
	c.ourHW = hw
	c.ourProto = proto
}

// Tick advances the wrapping clock one period and runs down the request
// throttle. The caller drives it from a steady time base with nominal
// [TickPeriod] spacing.
func (c *Cache) Tick() {
	c.now = c.now.Add(1)
	c.throttle.tick()
}

// Now returns the current wrapping tick value.
func (c *Cache) Now() Tick { return c.now }

// Poll advances both machines one step in lock-step. Each scanning machine
// reads one table slot and publishes the read on the shared probe; latched
// matches are acted on at the machine's next step.
func (c *Cache) Poll() {
	c.stepResolver()
	c.stepLearner()
}

// QueryReady reports whether a new query would be accepted.
func (c *Cache) QueryReady() bool { return c.res.state == resolverIdle }

// ObserveReady reports whether a new observation would be accepted.
func (c *Cache) ObserveReady() bool { return c.lrn.state == learnerIdle }

// StartQuery accepts a lookup for dst's hardware address. It returns
// [ErrEngineBusy] while a previous query is still being serviced: inputs
// are dropped, never queued. Drive the query with [Cache.Poll] until
// [Cache.QueryReady], then collect the answer with [Cache.QueryResult].
func (c *Cache) StartQuery(dst [4]byte) error {
	if c.res.state != resolverIdle {
		return ErrEngineBusy
	}
	c.res.target = dst
	c.res.hasResult = false
	c.res.state = resolverShortcut
	return nil
}

// QueryResult returns the answer of the last completed query.
// [ErrCacheMiss] reports a completed query with no entry.
func (c *Cache) QueryResult() ([6]byte, error) {
	r := &c.res
	switch {
	case r.state != resolverIdle:
		return [6]byte{}, errQueryPending
	case !r.hasResult:
		return [6]byte{}, errNoQuery
	case !r.found:
		return [6]byte{}, ErrCacheMiss
	}
	return r.hw, nil
}

// Resolve runs a query to completion and returns the hardware address for
// dst, or [ErrCacheMiss] (with a throttled resolution request already
// triggered) when the address is unknown. An in-flight observation keeps
// advancing in lock-step while the query runs.
func (c *Cache) Resolve(dst [4]byte) ([6]byte, error) {
	if err := c.StartQuery(dst); err != nil {
		return [6]byte{}, err
	}
	for c.res.state != resolverIdle {
		c.Poll()
	}
	return c.QueryResult()
}

// StartObserve accepts one snooped (source IP, source hardware address)
// pair. The gateway mapping updates opportunistically for gateway traffic
// even when the learner is busy; otherwise a busy learner drops the
// observation and [ErrEngineBusy] is returned.
func (c *Cache) StartObserve(src [4]byte, hw [6]byte) error {
	if !addrIsZero4(src) && src == c.gateway {
		c.gatewayHW = hw
	}
	if c.lrn.state != learnerIdle {
		return ErrEngineBusy
	}
	c.lrn.srcProto = src
	c.lrn.srcHW = hw
	c.lrn.state = learnerFilter
	return nil
}

// Observe runs one observation to completion. An in-flight query keeps
// advancing in lock-step while the observation runs.
func (c *Cache) Observe(src [4]byte, hw [6]byte) error {
	if err := c.StartObserve(src, hw); err != nil {
		return err
	}
	for c.lrn.state != learnerIdle {
		c.Poll()
	}
	return nil
}

// GatewayHardwareAddr returns the opportunistically cached gateway mapping
// and whether it is known yet.
func (c *Cache) GatewayHardwareAddr() ([6]byte, bool) {
	return c.gatewayHW, !addrIsZero6(c.gatewayHW)
}

// maybeRequest triggers a resolution request for target if the throttle
// permits one. The trigger is counted against the throttle even when the
// encoder is missing or busy; delivery is best-effort.
func (c *Cache) maybeRequest(target [4]byte) {
	if !c.throttle.permits(target) {
		return
	}
	c.throttle.note(target)
	if c.req == nil || !c.req.Ready() {
		c.debug("arptab:request-lost", internal.SlogAddr4("target", &target))
		return
	}
	c.req.Request(target)
	c.debug("arptab:request", internal.SlogAddr4("target", &target))
}
