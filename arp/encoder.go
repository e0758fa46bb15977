package arp

import (
	"errors"

	"github.com/nkral/arptab/ethernet"
)

// RequestEncoder builds outgoing ARP request frames on behalf of the
// neighbor cache. It holds at most one pending target: a trigger arriving
// while a request awaits encapsulation is silently dropped, which the cache
// tolerates by design.
type RequestEncoder struct {
	ourHW    [6]byte
	ourProto [4]byte
	target   [4]byte
	pending  bool
}

// Reset configures the sender addresses stamped on outgoing requests and
// drops any pending trigger.
func (re *RequestEncoder) Reset(hw [6]byte, proto [4]byte) error {
	if hw == ([6]byte{}) || proto == ([4]byte{}) {
		return errors.New("arp: zero encoder address config")
	}
	*re = RequestEncoder{ourHW: hw, ourProto: proto}
	return nil
}

// Ready reports whether a new trigger would be accepted.
func (re *RequestEncoder) Ready() bool { return !re.pending }

// Request latches target for the next [RequestEncoder.Encapsulate]. Dropped
// without notice while a previous request is still pending.
func (re *RequestEncoder) Request(target [4]byte) {
	if re.pending {
		return
	}
	re.target = target
	re.pending = true
}

// Encapsulate writes the pending request as an ARP frame at frameOffset
// within eth and returns the frame length, or 0 when nothing is pending.
// When frameOffset leaves room for an Ethernet header the header is filled
// in with the broadcast destination.
func (re *RequestEncoder) Encapsulate(eth []byte, frameOffset int) (int, error) {
	if !re.pending {
		return 0, nil
	}
	afrm, err := NewFrame(eth[frameOffset:])
	if err != nil {
		return 0, err
	}
	re.pending = false
	afrm.SetEthernetIPv4()
	afrm.SetOperation(OpRequest)
	shw, sproto := afrm.Sender()
	*shw = re.ourHW
	*sproto = re.ourProto
	thw, tproto := afrm.Target()
	*thw = [6]byte{}
	*tproto = re.target
	if frameOffset >= ethernet.SizeHeader {
		efrm, _ := ethernet.NewFrame(eth)
		*efrm.DestinationHardwareAddr() = ethernet.BroadcastAddr()
		*efrm.SourceHardwareAddr() = re.ourHW
		efrm.SetEtherType(ethernet.TypeARP)
	}
	return SizeFrame, nil
}
