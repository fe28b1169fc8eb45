package gtpv1

import "github.com/mobilecore/gtp/ie"

// Cause is the v1 Cause IE: a single accept/reject/reason byte
// (3GPP TS 29.060 table 7.7, type 1).
type Cause struct {
	Value uint8
}

func (c Cause) Marshal() []byte { return marshalTV(TypeCause, []byte{c.Value}) }

func unmarshalCause(payload []byte) (Cause, error) {
	if len(payload) != 1 {
		return Cause{}, ie.InvalidLength(TypeCause)
	}
	return Cause{Value: payload[0]}, nil
}

// Recovery is the v1 Recovery IE: a restart counter byte (type 14).
type Recovery struct {
	RestartCounter uint8
}

func (r Recovery) Marshal() []byte { return marshalTV(TypeRecovery, []byte{r.RestartCounter}) }

func unmarshalRecovery(payload []byte) (Recovery, error) {
	if len(payload) != 1 {
		return Recovery{}, ie.InvalidLength(TypeRecovery)
	}
	return Recovery{RestartCounter: payload[0]}, nil
}

// TeardownInd is the v1 Teardown Indicator IE (type 19): a single bit
// in the low position of its payload byte.
type TeardownInd struct {
	Indicator bool
}

func (t TeardownInd) Marshal() []byte {
	var v uint8
	if t.Indicator {
		v = 1
	}
	return marshalTV(TypeTeardownInd, []byte{v})
}

func unmarshalTeardownInd(payload []byte) (TeardownInd, error) {
	if len(payload) != 1 {
		return TeardownInd{}, ie.InvalidLength(TypeTeardownInd)
	}
	return TeardownInd{Indicator: payload[0]&0x01 == 1}, nil
}

// NSAPI is the v1 Network layer Service Access Point Identifier IE
// (type 20): the low 4 bits of its payload byte.
type NSAPI struct {
	Value uint8
}

func (n NSAPI) Marshal() []byte { return marshalTV(TypeNSAPI, []byte{n.Value & 0x0F}) }

func unmarshalNSAPI(payload []byte) (NSAPI, error) {
	if len(payload) != 1 {
		return NSAPI{}, ie.InvalidLength(TypeNSAPI)
	}
	return NSAPI{Value: payload[0] & 0x0F}, nil
}

// TEID is shared by the v1 TEID Data I (type 16) and TEID Control
// Plane (type 17) IEs; both are plain 4-byte big-endian values, they
// differ only by tag.
type TEID struct {
	Type  uint8
	Value uint32
}

func (t TEID) Marshal() []byte {
	return marshalTV(t.Type, []byte{
		byte(t.Value >> 24), byte(t.Value >> 16), byte(t.Value >> 8), byte(t.Value),
	})
}

func unmarshalTEID(t uint8, payload []byte) (TEID, error) {
	if len(payload) != 4 {
		return TEID{}, ie.InvalidLength(t)
	}
	v := uint32(payload[0])<<24 | uint32(payload[1])<<16 | uint32(payload[2])<<8 | uint32(payload[3])
	return TEID{Type: t, Value: v}, nil
}

// RAI is the v1 Routeing Area Identity IE (type 3): a PLMN, a 2-byte
// location area code, and a 1-byte routeing area code (spec §8
// scenario 2).
type RAI struct {
	PLMN ie.PLMN
	LAC  uint16
	RAC  uint8
}

func (r RAI) Marshal() []byte {
	plmn := r.PLMN.Encode()
	payload := []byte{
		plmn[0], plmn[1], plmn[2],
		byte(r.LAC >> 8), byte(r.LAC),
		r.RAC,
	}
	return marshalTV(TypeRAI, payload)
}

func unmarshalRAI(payload []byte) (RAI, error) {
	if len(payload) != 6 {
		return RAI{}, ie.InvalidLength(TypeRAI)
	}
	return RAI{
		PLMN: ie.DecodePLMN(payload[0:3]),
		LAC:  uint16(payload[3])<<8 | uint16(payload[4]),
		RAC:  payload[5],
	}, nil
}

// AccessPointName is the v1 APN IE (type 131): a dot-separated network
// name, DNS-label encoded (spec §3.1).
type AccessPointName struct {
	Name string
}

func (a AccessPointName) Marshal() []byte {
	return marshalTLV(TypeAccessPointName, ie.EncodeLabels(a.Name))
}

func unmarshalAccessPointName(payload []byte) (AccessPointName, error) {
	return AccessPointName{Name: ie.DecodeAPNLabels(payload)}, nil
}

// PrivateExtension is the v1 Private Extension IE (type 255): a vendor
// extension identifier followed by opaque vendor-defined bytes. Per
// spec §9 "source bugs to preserve or fix", the extension-id and
// extension-value region is buffer[0:length] of the payload slice
// handed to unmarshal (which already excludes the tag and 2-byte
// length field) — the source's off-by-one in this slicing is not
// reproduced here.
type PrivateExtension struct {
	ExtensionID uint16
	Value       []byte
}

func (p PrivateExtension) Marshal() []byte {
	payload := make([]byte, 2+len(p.Value))
	payload[0] = byte(p.ExtensionID >> 8)
	payload[1] = byte(p.ExtensionID)
	copy(payload[2:], p.Value)
	return marshalTLV(TypePrivateExtension, payload)
}

func unmarshalPrivateExtension(payload []byte) (PrivateExtension, error) {
	if len(payload) < 2 {
		return PrivateExtension{}, ie.InvalidLength(TypePrivateExtension)
	}
	return PrivateExtension{
		ExtensionID: uint16(payload[0])<<8 | uint16(payload[1]),
		Value:       payload[2:],
	}, nil
}
