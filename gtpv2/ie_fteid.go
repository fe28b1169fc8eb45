package gtpv2

import "github.com/mobilecore/gtp/ie"

// FTEID is the v2 Fully Qualified TEID IE (type 87): an interface
// type, a TEID/GRE key, and an optional IPv4 and/or IPv6 address
// (spec §4.1.1, glossary "F-TEID").
type FTEID struct {
	Instance uint8

	InterfaceType uint8 // 6 bits
	TEID          uint32

	HasIPv4 bool
	IPv4    [4]byte
	HasIPv6 bool
	IPv6    [16]byte
}

func (f FTEID) Marshal() []byte {
	flags := f.InterfaceType & 0x3F
	if f.HasIPv4 {
		flags |= 0x80
	}
	if f.HasIPv6 {
		flags |= 0x40
	}

	payload := make([]byte, 5, 5+4+16)
	payload[0] = flags
	payload[1] = byte(f.TEID >> 24)
	payload[2] = byte(f.TEID >> 16)
	payload[3] = byte(f.TEID >> 8)
	payload[4] = byte(f.TEID)
	if f.HasIPv4 {
		payload = append(payload, f.IPv4[:]...)
	}
	if f.HasIPv6 {
		payload = append(payload, f.IPv6[:]...)
	}
	return marshalTLIV(TypeFTEID, f.Instance, payload)
}

func unmarshalFTEID(instance uint8, payload []byte) (FTEID, error) {
	if len(payload) < 5 {
		return FTEID{}, ie.InvalidLength(TypeFTEID)
	}
	f := FTEID{
		Instance:      instance,
		InterfaceType: payload[0] & 0x3F,
		HasIPv4:       payload[0]&0x80 != 0,
		HasIPv6:       payload[0]&0x40 != 0,
		TEID:          uint32(payload[1])<<24 | uint32(payload[2])<<16 | uint32(payload[3])<<8 | uint32(payload[4]),
	}

	rest := payload[5:]
	want := 0
	if f.HasIPv4 {
		want += 4
	}
	if f.HasIPv6 {
		want += 16
	}
	if len(rest) != want {
		return FTEID{}, ie.Incorrect(TypeFTEID)
	}

	if f.HasIPv4 {
		copy(f.IPv4[:], rest[:4])
		rest = rest[4:]
	}
	if f.HasIPv6 {
		copy(f.IPv6[:], rest[:16])
	}

	return f, nil
}
