// Package ethernet provides the minimal Ethernet II framing the neighbor
// cache needs to snoop inbound traffic and emit resolution requests.
package ethernet

import (
	"errors"
	"strconv"
)

// SizeHeader is the length of an Ethernet II header without VLAN tags.
const SizeHeader = 14

var (
	errShortFrame = errors.New("ethernet: frame too short")
	errVLANFrame  = errors.New("ethernet: VLAN tagged frame unsupported")
)

// Type is the EtherType field identifying the payload protocol.
type Type uint16

// IsSize returns true if the EtherType is actually the size of the payload
// and should NOT be interpreted as an EtherType.
func (et Type) IsSize() bool { return et <= 1500 }

const (
	TypeIPv4 Type = 0x0800 // IPv4
	TypeARP  Type = 0x0806 // ARP
	TypeIPv6 Type = 0x86DD // IPv6
	TypeVLAN Type = 0x8100 // VLAN
)

// BroadcastAddr returns the all 0xff's broadcast hardware address.
func BroadcastAddr() [6]byte {
	return [6]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff}
}

// AppendAddr appends the colon-separated text representation of the
// hardware address to the destination buffer.
func AppendAddr(dst []byte, hwAddr [6]byte) []byte {
	for i, b := range hwAddr {
		if i != 0 {
			dst = append(dst, ':')
		}
		if b < 16 {
			dst = append(dst, '0')
		}
		dst = strconv.AppendUint(dst, uint64(b), 16)
	}
	return dst
}
