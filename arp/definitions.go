// Package arp implements IPv4-over-Ethernet ARP framing per [RFC826] and
// the resolution-request encoder driven by the neighbor cache.
//
// [RFC826]: https://tools.ietf.org/html/rfc826
package arp

import "errors"

//go:generate stringer -type=Operation -linecomment -output stringers.go .

// SizeFrame is the length of an IPv4-over-Ethernet ARP frame.
const SizeFrame = 28

const (
	// HardwareTypeEthernet is the hardware address space number for
	// Ethernet.
	HardwareTypeEthernet uint16 = 1
	// protoTypeIPv4 matches the IPv4 EtherType.
	protoTypeIPv4 uint16 = 0x0800
)

var (
	errShortFrame   = errors.New("arp: frame too short")
	errBadHardware  = errors.New("arp: not ethernet hardware")
	errBadProtocol  = errors.New("arp: not IPv4 protocol")
	errBadOperation = errors.New("arp: unsupported operation")
)

// Operation is the ARP packet type, either request or reply.
type Operation uint16

const (
	OpRequest Operation = 1 // request
	OpReply   Operation = 2 // reply
)
