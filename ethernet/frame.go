package ethernet

import "encoding/binary"

// NewFrame returns a Frame over buf. An error is returned if the buffer is
// shorter than the 14-byte header.
func NewFrame(buf []byte) (Frame, error) {
	if len(buf) < SizeHeader {
		return Frame{}, errShortFrame
	}
	return Frame{buf: buf}, nil
}

// Frame encapsulates the raw data of an Ethernet II frame starting at the
// destination address (no preamble) and provides field access. VLAN tagged
// frames are detected but not parsed.
type Frame struct {
	buf []byte
}

// RawData returns the underlying slice with which the frame was created.
func (efrm Frame) RawData() []byte { return efrm.buf }

// DestinationHardwareAddr returns the target's hardware address.
func (efrm Frame) DestinationHardwareAddr() *[6]byte {
	return (*[6]byte)(efrm.buf[0:6])
}

// SourceHardwareAddr returns the sender's hardware address.
func (efrm Frame) SourceHardwareAddr() *[6]byte {
	return (*[6]byte)(efrm.buf[6:12])
}

// EtherTypeOrSize returns the EtherType/Size field. Callers check whether
// the field is a valid EtherType or a payload size with [Type.IsSize].
func (efrm Frame) EtherTypeOrSize() Type {
	return Type(binary.BigEndian.Uint16(efrm.buf[12:14]))
}

// SetEtherType sets the EtherType field.
func (efrm Frame) SetEtherType(v Type) {
	binary.BigEndian.PutUint16(efrm.buf[12:14], uint16(v))
}

// IsVLAN returns true if the EtherType field holds the 0x8100 VLAN TPID, in
// which case the payload offset differs and [Frame.Payload] will error.
func (efrm Frame) IsVLAN() bool { return efrm.EtherTypeOrSize() == TypeVLAN }

// IsBroadcast returns true if the destination is the broadcast address.
func (efrm Frame) IsBroadcast() bool {
	return *efrm.DestinationHardwareAddr() == BroadcastAddr()
}

// Payload returns the data portion of an untagged frame.
func (efrm Frame) Payload() ([]byte, error) {
	if efrm.IsVLAN() {
		return nil, errVLANFrame
	}
	et := efrm.EtherTypeOrSize()
	if et.IsSize() {
		if len(efrm.buf) < SizeHeader+int(et) {
			return nil, errShortFrame
		}
		return efrm.buf[SizeHeader : SizeHeader+int(et)], nil
	}
	return efrm.buf[SizeHeader:], nil
}

// ClearHeader zeros out the header contents.
func (efrm Frame) ClearHeader() {
	clear(efrm.buf[:SizeHeader])
}
