package arptab

// requestThrottle rate-limits outgoing resolution requests so an address
// that never answers cannot cause a request flood. A trigger passes when it
// targets a different address than the previous one or when the countdown
// since the previous trigger has run out.
type requestThrottle struct {
	lastTarget [4]byte
	countdown  uint8
	limit      uint8
}

func (rt *requestThrottle) reset(limit uint8) {
	rt.lastTarget = [4]byte{}
	rt.countdown = 0
	rt.limit = limit
}

func (rt *requestThrottle) permits(target [4]byte) bool {
	return target != rt.lastTarget || rt.countdown == 0
}

// note records an emitted trigger and restarts the countdown.
func (rt *requestThrottle) note(target [4]byte) {
	rt.lastTarget = target
	rt.countdown = rt.limit
}

func (rt *requestThrottle) tick() {
	if rt.countdown > 0 {
		rt.countdown--
	}
}
