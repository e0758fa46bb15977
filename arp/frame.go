package arp

import "encoding/binary"

// NewFrame returns a Frame over buf. An error is returned if the buffer is
// shorter than the 28-byte IPv4-over-Ethernet ARP frame.
func NewFrame(buf []byte) (Frame, error) {
	if len(buf) < SizeFrame {
		return Frame{}, errShortFrame
	}
	return Frame{buf: buf}, nil
}

// Frame encapsulates the raw data of an IPv4-over-Ethernet ARP packet.
// Hardware and protocol address lengths are fixed at 6 and 4, so all field
// offsets are constant.
type Frame struct {
	buf []byte
}

// RawData returns the underlying slice with which the frame was created.
func (afrm Frame) RawData() []byte { return afrm.buf[:SizeFrame] }

// Hardware returns the link protocol type and hardware address length.
func (afrm Frame) Hardware() (Type uint16, length uint8) {
	return binary.BigEndian.Uint16(afrm.buf[0:2]), afrm.buf[4]
}

// Protocol returns the network protocol type and protocol address length.
func (afrm Frame) Protocol() (Type uint16, length uint8) {
	return binary.BigEndian.Uint16(afrm.buf[2:4]), afrm.buf[5]
}

// SetEthernetIPv4 fills the hardware and protocol type/length fields for
// IPv4 over Ethernet.
func (afrm Frame) SetEthernetIPv4() {
	binary.BigEndian.PutUint16(afrm.buf[0:2], HardwareTypeEthernet)
	binary.BigEndian.PutUint16(afrm.buf[2:4], protoTypeIPv4)
	afrm.buf[4] = 6
	afrm.buf[5] = 4
}

// Operation returns the ARP header operation field. See [Operation].
func (afrm Frame) Operation() Operation {
	return Operation(binary.BigEndian.Uint16(afrm.buf[6:8]))
}

// SetOperation sets the ARP header operation field. See [Operation].
func (afrm Frame) SetOperation(op Operation) {
	binary.BigEndian.PutUint16(afrm.buf[6:8], uint16(op))
}

// Sender returns the hardware and protocol addresses of the packet sender.
// In a request these identify the host asking; in a reply they identify the
// host that was being looked for.
func (afrm Frame) Sender() (hw *[6]byte, proto *[4]byte) {
	return (*[6]byte)(afrm.buf[8:14]), (*[4]byte)(afrm.buf[14:18])
}

// Target returns the hardware and protocol addresses of the packet target.
// In a request the hardware address is ignored; in a reply it identifies
// the host that originated the request.
func (afrm Frame) Target() (hw *[6]byte, proto *[4]byte) {
	return (*[6]byte)(afrm.buf[18:24]), (*[4]byte)(afrm.buf[24:28])
}

// SwapTargetSender exchanges the sender and target address fields in place.
func (afrm Frame) SwapTargetSender() {
	shw, sproto := afrm.Sender()
	thw, tproto := afrm.Target()
	*shw, *thw = *thw, *shw
	*sproto, *tproto = *tproto, *sproto
}

// ClearHeader zeros out the fixed header contents.
func (afrm Frame) ClearHeader() {
	clear(afrm.buf[:8])
}

// Validate checks the type/length fields describe an IPv4-over-Ethernet
// frame with a known operation.
func (afrm Frame) Validate() error {
	if htype, hlen := afrm.Hardware(); htype != HardwareTypeEthernet || hlen != 6 {
		return errBadHardware
	}
	if ptype, plen := afrm.Protocol(); ptype != protoTypeIPv4 || plen != 4 {
		return errBadProtocol
	}
	if op := afrm.Operation(); op != OpRequest && op != OpReply {
		return errBadOperation
	}
	return nil
}
