package gtpv2

import "github.com/mobilecore/gtp/ie"

// v2 information element type codes (3GPP TS 29.274 table 8.1-1),
// restricted to the subset this codec implements.
const (
	TypeIMSI                  = 1
	TypeCause                 = 2
	TypeRecoveryRestartCounter = 3
	TypeAPN                   = 71
	TypeAMBR                  = 72
	TypeEBI                   = 73
	TypeIPAddress             = 74
	TypeMEI                   = 75
	TypeMSISDN                = 76
	TypeIndication            = 77
	TypePCO                   = 78
	TypePAA                   = 79
	TypeBearerQoS             = 80
	TypeFlowQoS               = 81
	TypeRATType               = 82
	TypeServingNetwork        = 83
	TypeBearerTFT             = 84
	TypeTAD                   = 85
	TypeULI                   = 86
	TypeFTEID                 = 87
	TypeNodeID                = 113
	TypeARP                   = 150
	TypePrivateExtension      = 127
	TypeBearerContext         = 93
)

// rawIE is one undispatched element of a decoded v2 TLIV stream.
type rawIE struct {
	Type     uint8
	Instance uint8
	Payload  []byte
}

// decodeV2IEStream walks a v2 TLIV IE stream (spec §3.3), splitting it
// into raw (type, instance, payload) elements. Unlike v1, no ordering
// constraint applies (§9 "V1 non-decreasing-type rule" does not apply
// to v2; instance disambiguates duplicates instead).
func decodeV2IEStream(b []byte) ([]rawIE, error) {
	var out []rawIE
	for len(b) > 0 {
		if len(b) < 4 {
			return nil, ie.InvalidLength(b[0])
		}
		t := b[0]
		length := int(b[1])<<8 | int(b[2])
		instance := b[3] & 0x0F
		if len(b) < 4+length {
			return nil, ie.InvalidLength(t)
		}
		out = append(out, rawIE{Type: t, Instance: instance, Payload: b[4 : 4+length]})
		b = b[4+length:]
	}
	return out, nil
}

// marshalTLIV appends a v2 TLIV IE to a freshly allocated buffer. The
// length is derived from the payload slice (spec §9 "length
// back-patching").
func marshalTLIV(t, instance uint8, payload []byte) []byte {
	out := make([]byte, 4+len(payload))
	out[0] = t
	out[1] = uint8(len(payload) >> 8)
	out[2] = uint8(len(payload))
	out[3] = instance & 0x0F
	copy(out[4:], payload)
	return out
}
