package arptab

import (
	"errors"
	"time"
)

const (
	// DefaultTableSize is the number of table slots used when
	// [Config.TableSize] is zero.
	DefaultTableSize = 128
	// DefaultRefreshTicks is the entry age after which a cached answer is
	// considered stale and a background re-resolution is requested.
	DefaultRefreshTicks Tick = 600 // 60s at nominal tick period.
	// DefaultThrottleTicks is the minimum spacing in ticks between
	// resolution requests for one address.
	DefaultThrottleTicks = 10 // 1s at nominal tick period.

	// TickPeriod is the nominal wall duration of one tick.
	TickPeriod = 100 * time.Millisecond
)

const (
	tickBits = 20
	// TickMask bounds the wrapping tick counter. At the nominal period the
	// counter wraps roughly every 29 hours.
	TickMask = 1<<tickBits - 1
)

// Tick is a wrapping 20-bit monotonic counter value. The zero value doubles
// as the timestamp of never-written table slots, so victim selection treats
// zero as infinitely old.
type Tick uint32

// Add returns t advanced by n, wrapped to the counter width.
func (t Tick) Add(n Tick) Tick { return (t + n) & TickMask }

// Sub returns the age of u relative to t, wrapped to the counter width.
func (t Tick) Sub(u Tick) Tick { return (t - u) & TickMask }

// Older reports whether t is older than u under the wrapping clock. The two
// high bits disagreeing across the wrap boundary is the only case where the
// plain comparison inverts: a counter in its last quadrant is older than one
// that already wrapped into its first quadrant.
func (t Tick) Older(u Tick) bool {
	const quadrant = tickBits - 2
	ht, hu := t>>quadrant, u>>quadrant
	if ht == 0b11 && hu == 0b00 {
		return true
	}
	if ht == 0b00 && hu == 0b11 {
		return false
	}
	return t < u
}

var (
	// ErrCacheMiss is returned by resolve calls when no entry exists for
	// the requested address. The caller retries or times out; a resolution
	// request was triggered if the throttle permitted one.
	ErrCacheMiss = errors.New("neighbor cache miss")
	// ErrEngineBusy is returned when a query or observation arrives while
	// the corresponding machine is mid-flight. The input is dropped, never
	// queued; the caller must retry.
	ErrEngineBusy = errors.New("engine busy, input dropped")

	errNoQuery       = errors.New("no completed query")
	errQueryPending  = errors.New("query still in progress")
	errZeroHWAddr    = errors.New("zero hardware address")
	errZeroProtoAddr = errors.New("zero protocol address")
	errZeroNetmask   = errors.New("zero netmask")
	errBadTableSize  = errors.New("table size out of range")
)

var (
	broadcastProtoAddr = [4]byte{255, 255, 255, 255}
	loopbackProtoAddr  = [4]byte{127, 0, 0, 1}
	broadcastHWAddr    = [6]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff}
)

func addrIsZero4(a [4]byte) bool { return a == [4]byte{} }

func addrIsZero6(a [6]byte) bool { return a == [6]byte{} }

// sameSubnet reports whether a and b agree on the bits selected by mask.
func sameSubnet(a, b, mask [4]byte) bool {
	for i := range a {
		if a[i]&mask[i] != b[i]&mask[i] {
			return false
		}
	}
	return true
}
