package gtpv1

import (
	"fmt"

	"github.com/mobilecore/gtp/ie"
)

// v1 information element type codes (3GPP TS 29.060 table 7.7). Codes
// below tvThreshold are TV (fixed length, no length byte on the wire);
// codes at or above it are TLV (1-byte tag, 2-byte length).
const (
	tvThreshold = 0x80

	TypeCause            = 1
	TypeIMSI             = 2
	TypeRAI              = 3
	TypeRecovery         = 14
	TypeTEIDDataI        = 16
	TypeTEIDControlPlane = 17
	TypeTeardownInd      = 19
	TypeNSAPI            = 20
	TypeEndUserAddress   = 128
	TypeAccessPointName  = 131
	TypePrivateExtension = 255
)

// v1TVLength returns the fixed payload length (excluding the 1-byte
// tag) of a TV-format IE type, per 3GPP TS 29.060 table 7.7.
func v1TVLength(t uint8) (int, bool) {
	switch t {
	case TypeCause:
		return 1, true
	case TypeIMSI:
		return 8, true
	case TypeRAI:
		return 6, true
	case TypeRecovery:
		return 1, true
	case TypeTEIDDataI, TypeTEIDControlPlane:
		return 4, true
	case TypeTeardownInd:
		return 1, true
	case TypeNSAPI:
		return 1, true
	default:
		return 0, false
	}
}

// rawIE is one undispatched element of a decoded v1 IE stream: the
// type tag plus its payload bytes, with tag and any length field
// already stripped. Message-layer dispatch switches on Type to
// interpret Payload into a concrete field.
type rawIE struct {
	Type    uint8
	Payload []byte
}

var errV1StreamOrder = fmt.Errorf("gtpv1: information element type codes are not non-decreasing")

// decodeV1IEStream walks a v1 control-plane IE stream, splitting it
// into raw (type, payload) elements. Per spec §4.3 "ordering policy",
// it also enforces that the sequence of type codes is non-decreasing,
// tracking the last-seen code as a watermark; a drop fails the whole
// decode and returns no elements, matching the "negative scenario"
// that ordering violations consume nothing.
func decodeV1IEStream(b []byte) ([]rawIE, error) {
	var out []rawIE
	watermark := uint8(0)

	for len(b) > 0 {
		t := b[0]
		if len(out) > 0 && t < watermark {
			return nil, errV1StreamOrder
		}
		watermark = t

		if t >= tvThreshold {
			if len(b) < 3 {
				return nil, ie.InvalidLength(t)
			}
			length := int(b[1])<<8 | int(b[2])
			if len(b) < 3+length {
				return nil, ie.InvalidLength(t)
			}
			out = append(out, rawIE{Type: t, Payload: b[3 : 3+length]})
			b = b[3+length:]
			continue
		}

		length, known := v1TVLength(t)
		if !known {
			return nil, ie.Incorrect(t)
		}
		if len(b) < 1+length {
			return nil, ie.InvalidLength(t)
		}
		out = append(out, rawIE{Type: t, Payload: b[1 : 1+length]})
		b = b[1+length:]
	}

	return out, nil
}

// marshalTV appends a fixed-length TV IE (tag + payload, no length
// byte) to a freshly allocated buffer.
func marshalTV(t uint8, payload []byte) []byte {
	out := make([]byte, 1+len(payload))
	out[0] = t
	copy(out[1:], payload)
	return out
}

// marshalTLV appends a TLV IE (tag, 2-byte length, payload); the
// length is derived from the payload slice, never precomputed
// (spec §9 "length back-patching").
func marshalTLV(t uint8, payload []byte) []byte {
	out := make([]byte, 3+len(payload))
	out[0] = t
	out[1] = uint8(len(payload) >> 8)
	out[2] = uint8(len(payload))
	copy(out[3:], payload)
	return out
}
