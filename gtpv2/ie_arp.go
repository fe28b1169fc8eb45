package gtpv2

import "github.com/mobilecore/gtp/ie"

// ARP is the v2 Allocation/Retention Priority IE (type 150): a single
// byte packing PCI, a 4-bit priority level, and PVI (spec §4.1.1).
type ARP struct {
	Instance uint8

	PCI           bool
	PriorityLevel uint8 // 4 bits
	PVI           bool
}

func (a ARP) Marshal() []byte {
	var b uint8
	if a.PCI {
		b |= 0x40
	}
	b |= (a.PriorityLevel & 0x0F) << 2
	if a.PVI {
		b |= 0x01
	}
	return marshalTLIV(TypeARP, a.Instance, []byte{b})
}

func unmarshalARP(instance uint8, payload []byte) (ARP, error) {
	if len(payload) != 1 {
		return ARP{}, ie.InvalidLength(TypeARP)
	}
	b := payload[0]
	return ARP{
		Instance:      instance,
		PCI:           b&0x40 != 0,
		PriorityLevel: (b >> 2) & 0x0F,
		PVI:           b&0x01 != 0,
	}, nil
}
