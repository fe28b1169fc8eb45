package gtpv1

import "github.com/mobilecore/gtp/ie"

// PDP type organization values packed into EndUserAddress's first
// payload byte (3GPP TS 29.060 table 7.7.27).
const (
	pdpTypeOrgETSI = 0
	pdpTypeOrgIETF = 1

	pdpTypeNumberPPP    = 0x01
	pdpTypeNumberIPv4   = 0x21
	pdpTypeNumberIPv6   = 0x57
	pdpTypeNumberIPv4v6 = 0x8D
)

// EndUserAddress is the v1 End User Address IE (type 128): spec §4.1.3
// "representative of compound semantics". Its wire length alone
// discriminates which combination of PDP type and address is present;
// Address4/Address6 hold only the sub-fields the PDPType implies.
type EndUserAddress struct {
	Organization uint8 // pdpTypeOrgETSI or pdpTypeOrgIETF
	PDPTypeValue uint8 // ETSI PPP code, or an IETF PDP type number
	Address4     [4]byte
	Address6     [16]byte
	HasAddress4  bool
	HasAddress6  bool
}

func (e EndUserAddress) Marshal() []byte {
	payload := make([]byte, 2, 2+4+16)
	payload[0] = 0xF0 | e.Organization
	payload[1] = e.PDPTypeValue
	if e.HasAddress4 {
		payload = append(payload, e.Address4[:]...)
	}
	if e.HasAddress6 {
		payload = append(payload, e.Address6[:]...)
	}
	return marshalTLV(TypeEndUserAddress, payload)
}

func unmarshalEndUserAddress(payload []byte) (EndUserAddress, error) {
	if len(payload) < 2 {
		return EndUserAddress{}, ie.InvalidLength(TypeEndUserAddress)
	}
	e := EndUserAddress{
		Organization: payload[0] & 0x0F,
		PDPTypeValue: payload[1],
	}

	switch len(payload) {
	case 2:
		// no address
	case 6:
		e.HasAddress4 = true
		copy(e.Address4[:], payload[2:6])
	case 18:
		e.HasAddress6 = true
		copy(e.Address6[:], payload[2:18])
	case 22:
		e.HasAddress4 = true
		copy(e.Address4[:], payload[2:6])
		e.HasAddress6 = true
		copy(e.Address6[:], payload[6:22])
	default:
		return EndUserAddress{}, ie.Incorrect(TypeEndUserAddress)
	}

	return e, nil
}
