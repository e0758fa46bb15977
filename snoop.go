package arptab

import (
	"github.com/nkral/arptab/arp"
	"github.com/nkral/arptab/ethernet"
	"github.com/nkral/arptab/ipv4"
)

// DemuxEthernet snoops one inbound Ethernet frame for a learnable (source
// IP, source hardware address) pair and feeds it to [Cache.Observe]. ARP
// frames, replies to our own requests included, contribute their sender
// addresses; IPv4 frames contribute the IP source paired with the Ethernet
// source. Frames of any other type are ignored without error. A busy
// learner drops the observation ([ErrEngineBusy]), though gateway traffic
// still refreshes the gateway mapping.
func (c *Cache) DemuxEthernet(frame []byte) error {
	efrm, err := ethernet.NewFrame(frame)
	if err != nil {
		return err
	}
	payload, err := efrm.Payload()
	if err != nil {
		return err
	}
	switch efrm.EtherTypeOrSize() {
	case ethernet.TypeARP:
		afrm, err := arp.NewFrame(payload)
		if err != nil {
			return err
		}
		if err := afrm.Validate(); err != nil {
			return err
		}
		hw, proto := afrm.Sender()
		return c.Observe(*proto, *hw)

	case ethernet.TypeIPv4:
		ifrm, err := ipv4.NewFrame(payload)
		if err != nil {
			return err
		}
		if err := ifrm.Validate(); err != nil {
			return err
		}
		return c.Observe(*ifrm.SourceAddr(), *efrm.SourceHardwareAddr())
	}
	return nil
}
