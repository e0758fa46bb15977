// Package ipv4 provides read-only IPv4 header access for traffic snooping.
// The neighbor cache only ever needs the source and destination addresses
// of inbound packets; everything else in the header is left alone.
package ipv4

import (
	"encoding/binary"
	"errors"
)

const sizeHeader = 20

var (
	errShortFrame = errors.New("ipv4: frame too short")
	errNotIPv4    = errors.New("ipv4: version field not 4")
)

// NewFrame returns a Frame over buf. An error is returned if the buffer is
// shorter than the 20-byte minimum header.
func NewFrame(buf []byte) (Frame, error) {
	if len(buf) < sizeHeader {
		return Frame{}, errShortFrame
	}
	return Frame{buf: buf}, nil
}

// Frame encapsulates the raw data of an IPv4 packet per [RFC791].
//
// [RFC791]: https://tools.ietf.org/html/rfc791
type Frame struct {
	buf []byte
}

// RawData returns the underlying slice with which the frame was created.
func (ifrm Frame) RawData() []byte { return ifrm.buf }

// HeaderLength returns the header length in bytes as given by IHL,
// including options.
func (ifrm Frame) HeaderLength() int { return int(ifrm.buf[0]&0xf) * 4 }

// TotalLength returns the entire packet size in bytes, header included.
func (ifrm Frame) TotalLength() uint16 {
	return binary.BigEndian.Uint16(ifrm.buf[2:4])
}

// Protocol returns the transport protocol number of the payload.
func (ifrm Frame) Protocol() uint8 { return ifrm.buf[9] }

// SourceAddr returns the sender's IPv4 address field.
func (ifrm Frame) SourceAddr() *[4]byte { return (*[4]byte)(ifrm.buf[12:16]) }

// DestinationAddr returns the destination IPv4 address field.
func (ifrm Frame) DestinationAddr() *[4]byte { return (*[4]byte)(ifrm.buf[16:20]) }

// Validate checks the version field and that the size fields are consistent
// with the buffer.
func (ifrm Frame) Validate() error {
	if ifrm.buf[0]>>4 != 4 {
		return errNotIPv4
	}
	if hl := ifrm.HeaderLength(); hl < sizeHeader || len(ifrm.buf) < hl {
		return errShortFrame
	}
	return nil
}
