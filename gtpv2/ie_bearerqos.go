package gtpv2

import "github.com/mobilecore/gtp/ie"

// BearerQoS is the v2 Bearer Quality of Service IE (type 80): an
// ARP-shaped flags byte, a QCI byte, and four 5-byte big-endian
// bitrate fields (spec §4.1.1).
type BearerQoS struct {
	Instance uint8

	PCI           bool
	PriorityLevel uint8 // 4 bits
	PVI           bool
	QCI           uint8

	MaxBitrateUL uint64
	MaxBitrateDL uint64
	GuarBitrateUL uint64
	GuarBitrateDL uint64
}

func put40(dst []byte, v uint64) {
	dst[0] = byte(v >> 32)
	dst[1] = byte(v >> 24)
	dst[2] = byte(v >> 16)
	dst[3] = byte(v >> 8)
	dst[4] = byte(v)
}

func get40(src []byte) uint64 {
	return uint64(src[0])<<32 | uint64(src[1])<<24 | uint64(src[2])<<16 | uint64(src[3])<<8 | uint64(src[4])
}

func (q BearerQoS) Marshal() []byte {
	var flags uint8
	if q.PCI {
		flags |= 0x40
	}
	flags |= (q.PriorityLevel & 0x0F) << 2
	if q.PVI {
		flags |= 0x01
	}

	payload := make([]byte, 2+20)
	payload[0] = flags
	payload[1] = q.QCI
	put40(payload[2:7], q.MaxBitrateUL)
	put40(payload[7:12], q.MaxBitrateDL)
	put40(payload[12:17], q.GuarBitrateUL)
	put40(payload[17:22], q.GuarBitrateDL)
	return marshalTLIV(TypeBearerQoS, q.Instance, payload)
}

func unmarshalBearerQoS(instance uint8, payload []byte) (BearerQoS, error) {
	if len(payload) != 22 {
		return BearerQoS{}, ie.InvalidLength(TypeBearerQoS)
	}
	return BearerQoS{
		Instance:      instance,
		PCI:           payload[0]&0x40 != 0,
		PriorityLevel: (payload[0] >> 2) & 0x0F,
		PVI:           payload[0]&0x01 != 0,
		QCI:           payload[1],
		MaxBitrateUL:  get40(payload[2:7]),
		MaxBitrateDL:  get40(payload[7:12]),
		GuarBitrateUL: get40(payload[12:17]),
		GuarBitrateDL: get40(payload[17:22]),
	}, nil
}
