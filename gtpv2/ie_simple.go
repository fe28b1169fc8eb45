package gtpv2

import "github.com/mobilecore/gtp/ie"

// IMSI is the v2 IMSI IE (type 1): TBCD-packed, variable length
// (unlike the fixed 8-byte v1 IMSI).
type IMSI struct {
	Instance uint8
	Value    string
}

func (i IMSI) Marshal() []byte {
	return marshalTLIV(TypeIMSI, i.Instance, ie.EncodeTBCD(i.Value))
}

func unmarshalIMSI(instance uint8, payload []byte) (IMSI, error) {
	return IMSI{Instance: instance, Value: ie.DecodeTBCD(payload)}, nil
}

// MSISDN is the v2 MSISDN IE (type 76): TBCD-packed subscriber number.
type MSISDN struct {
	Instance uint8
	Value    string
}

func (m MSISDN) Marshal() []byte {
	return marshalTLIV(TypeMSISDN, m.Instance, ie.EncodeTBCD(m.Value))
}

func unmarshalMSISDN(instance uint8, payload []byte) (MSISDN, error) {
	return MSISDN{Instance: instance, Value: ie.DecodeTBCD(payload)}, nil
}

// MEI is the v2 Mobile Equipment Identity IE (type 75): TBCD-packed
// IMEI or IMEISV.
type MEI struct {
	Instance uint8
	Value    string
}

func (m MEI) Marshal() []byte {
	return marshalTLIV(TypeMEI, m.Instance, ie.EncodeTBCD(m.Value))
}

func unmarshalMEI(instance uint8, payload []byte) (MEI, error) {
	return MEI{Instance: instance, Value: ie.DecodeTBCD(payload)}, nil
}

// EBI is the v2 EPS Bearer ID IE (type 73): the low 4 bits of a single
// payload byte.
type EBI struct {
	Instance uint8
	Value    uint8
}

func (e EBI) Marshal() []byte {
	return marshalTLIV(TypeEBI, e.Instance, []byte{e.Value & 0x0F})
}

func unmarshalEBI(instance uint8, payload []byte) (EBI, error) {
	if len(payload) != 1 {
		return EBI{}, ie.InvalidLength(TypeEBI)
	}
	return EBI{Instance: instance, Value: payload[0] & 0x0F}, nil
}

// RecoveryRestartCounter is the v2 Recovery IE (type 3): a single
// restart-counter byte.
type RecoveryRestartCounter struct {
	Instance uint8
	Value    uint8
}

func (r RecoveryRestartCounter) Marshal() []byte {
	return marshalTLIV(TypeRecoveryRestartCounter, r.Instance, []byte{r.Value})
}

func unmarshalRecoveryRestartCounter(instance uint8, payload []byte) (RecoveryRestartCounter, error) {
	if len(payload) != 1 {
		return RecoveryRestartCounter{}, ie.InvalidLength(TypeRecoveryRestartCounter)
	}
	return RecoveryRestartCounter{Instance: instance, Value: payload[0]}, nil
}

// RATType is the v2 RAT Type IE (type 82): a single radio-access-type
// enum byte.
type RATType struct {
	Instance uint8
	Value    uint8
}

func (r RATType) Marshal() []byte {
	return marshalTLIV(TypeRATType, r.Instance, []byte{r.Value})
}

func unmarshalRATType(instance uint8, payload []byte) (RATType, error) {
	if len(payload) != 1 {
		return RATType{}, ie.InvalidLength(TypeRATType)
	}
	return RATType{Instance: instance, Value: payload[0]}, nil
}

// ServingNetwork is the v2 Serving Network IE (type 83): a PLMN.
type ServingNetwork struct {
	Instance uint8
	PLMN     ie.PLMN
}

func (s ServingNetwork) Marshal() []byte {
	enc := s.PLMN.Encode()
	return marshalTLIV(TypeServingNetwork, s.Instance, enc[:])
}

func unmarshalServingNetwork(instance uint8, payload []byte) (ServingNetwork, error) {
	if len(payload) != 3 {
		return ServingNetwork{}, ie.InvalidLength(TypeServingNetwork)
	}
	return ServingNetwork{Instance: instance, PLMN: ie.DecodePLMN(payload)}, nil
}

// APN is the v2 Access Point Name IE (type 71): DNS-label encoded.
type APN struct {
	Instance uint8
	Name     string
}

func (a APN) Marshal() []byte {
	return marshalTLIV(TypeAPN, a.Instance, ie.EncodeLabels(a.Name))
}

func unmarshalAPN(instance uint8, payload []byte) (APN, error) {
	return APN{Instance: instance, Name: ie.DecodeAPNLabels(payload)}, nil
}

// PrivateExtension is the v2 Private Extension IE (type 127): a vendor
// extension identifier followed by opaque vendor-defined bytes.
type PrivateExtension struct {
	Instance    uint8
	ExtensionID uint16
	Value       []byte
}

func (p PrivateExtension) Marshal() []byte {
	payload := make([]byte, 2+len(p.Value))
	payload[0] = byte(p.ExtensionID >> 8)
	payload[1] = byte(p.ExtensionID)
	copy(payload[2:], p.Value)
	return marshalTLIV(TypePrivateExtension, p.Instance, payload)
}

func unmarshalPrivateExtension(instance uint8, payload []byte) (PrivateExtension, error) {
	if len(payload) < 2 {
		return PrivateExtension{}, ie.InvalidLength(TypePrivateExtension)
	}
	return PrivateExtension{
		Instance:    instance,
		ExtensionID: uint16(payload[0])<<8 | uint16(payload[1]),
		Value:       payload[2:],
	}, nil
}
