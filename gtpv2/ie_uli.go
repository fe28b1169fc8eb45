package gtpv2

import "github.com/mobilecore/gtp/ie"

// ULI presence-bitmap bit positions (spec §4.1.1, canonical block
// order {CGI, SAI, RAI, TAI, ECGI, LAI, MacroEnbId, ExtMacroEnbId});
// see DESIGN.md for how bit-position == list-position was resolved.
const (
	uliBitCGI = iota
	uliBitSAI
	uliBitRAI
	uliBitTAI
	uliBitECGI
	uliBitLAI
	uliBitMacroEnbID
	uliBitExtMacroEnbID
)

// CGI identifies a cell by PLMN, location area code, and cell id.
type CGI struct {
	PLMN ie.PLMN
	LAC  uint16
	CI   uint16
}

func (c CGI) marshal() []byte {
	plmn := c.PLMN.Encode()
	return []byte{plmn[0], plmn[1], plmn[2], byte(c.LAC >> 8), byte(c.LAC), byte(c.CI >> 8), byte(c.CI)}
}

func unmarshalCGI(b []byte) CGI {
	return CGI{PLMN: ie.DecodePLMN(b[0:3]), LAC: uint16(b[3])<<8 | uint16(b[4]), CI: uint16(b[5])<<8 | uint16(b[6])}
}

// SAI identifies a service area by PLMN, location area code, and
// service area code.
type SAI struct {
	PLMN ie.PLMN
	LAC  uint16
	SAC  uint16
}

func (s SAI) marshal() []byte {
	plmn := s.PLMN.Encode()
	return []byte{plmn[0], plmn[1], plmn[2], byte(s.LAC >> 8), byte(s.LAC), byte(s.SAC >> 8), byte(s.SAC)}
}

func unmarshalSAI(b []byte) SAI {
	return SAI{PLMN: ie.DecodePLMN(b[0:3]), LAC: uint16(b[3])<<8 | uint16(b[4]), SAC: uint16(b[5])<<8 | uint16(b[6])}
}

// RAI identifies a routeing area by PLMN, location area code, and
// routeing area code.
type RAI struct {
	PLMN ie.PLMN
	LAC  uint16
	RAC  uint16
}

func (r RAI) marshal() []byte {
	plmn := r.PLMN.Encode()
	return []byte{plmn[0], plmn[1], plmn[2], byte(r.LAC >> 8), byte(r.LAC), byte(r.RAC >> 8), byte(r.RAC)}
}

func unmarshalRAI(b []byte) RAI {
	return RAI{PLMN: ie.DecodePLMN(b[0:3]), LAC: uint16(b[3])<<8 | uint16(b[4]), RAC: uint16(b[5])<<8 | uint16(b[6])}
}

// LAI identifies a location area by PLMN and location area code.
type LAI struct {
	PLMN ie.PLMN
	LAC  uint16
}

func (l LAI) marshal() []byte {
	plmn := l.PLMN.Encode()
	return []byte{plmn[0], plmn[1], plmn[2], byte(l.LAC >> 8), byte(l.LAC)}
}

func unmarshalLAI(b []byte) LAI {
	return LAI{PLMN: ie.DecodePLMN(b[0:3]), LAC: uint16(b[3])<<8 | uint16(b[4])}
}

// TAI identifies a tracking area by PLMN and tracking area code (spec
// §8 scenario 3).
type TAI struct {
	PLMN ie.PLMN
	TAC  uint16
}

func (t TAI) marshal() []byte {
	plmn := t.PLMN.Encode()
	return []byte{plmn[0], plmn[1], plmn[2], byte(t.TAC >> 8), byte(t.TAC)}
}

func unmarshalTAI(b []byte) TAI {
	return TAI{PLMN: ie.DecodePLMN(b[0:3]), TAC: uint16(b[3])<<8 | uint16(b[4])}
}

// ECGI identifies an E-UTRAN cell by PLMN and a 28-bit E-UTRAN cell
// identifier, packed with 4 spare high bits (spec §8 scenario 3).
type ECGI struct {
	PLMN ie.PLMN
	ECI  uint32 // 28 bits
}

func (e ECGI) marshal() []byte {
	plmn := e.PLMN.Encode()
	v := e.ECI & 0x0FFFFFFF
	return []byte{plmn[0], plmn[1], plmn[2], byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)}
}

func unmarshalECGI(b []byte) ECGI {
	v := uint32(b[3])<<24 | uint32(b[4])<<16 | uint32(b[5])<<8 | uint32(b[6])
	return ECGI{PLMN: ie.DecodePLMN(b[0:3]), ECI: v & 0x0FFFFFFF}
}

// MacroEnbID identifies an eNodeB by PLMN and a 20-bit id.
type MacroEnbID struct {
	PLMN ie.PLMN
	ID   uint32 // 20 bits
}

func (m MacroEnbID) marshal() []byte {
	plmn := m.PLMN.Encode()
	v := m.ID & 0x000FFFFF
	return []byte{plmn[0], plmn[1], plmn[2], byte(v >> 16), byte(v >> 8), byte(v)}
}

func unmarshalMacroEnbID(b []byte) MacroEnbID {
	v := uint32(b[3])<<16 | uint32(b[4])<<8 | uint32(b[5])
	return MacroEnbID{PLMN: ie.DecodePLMN(b[0:3]), ID: v & 0x000FFFFF}
}

// ULI is the v2 User Location Information IE (type 86): a presence
// bitmap followed by any subset of location blocks, each block present
// iff its bit is set (spec §4.1.1, §8 scenario 3).
type ULI struct {
	Instance uint8

	HasCGI        bool
	CGI           CGI
	HasSAI        bool
	SAI           SAI
	HasRAI        bool
	RAI           RAI
	HasTAI        bool
	TAI           TAI
	HasECGI       bool
	ECGI          ECGI
	HasLAI        bool
	LAI           LAI
	HasMacroEnbID bool
	MacroEnbID    MacroEnbID
}

func (u ULI) Marshal() []byte {
	var flags uint8
	var body []byte

	if u.HasCGI {
		flags |= 1 << uliBitCGI
		body = append(body, u.CGI.marshal()...)
	}
	if u.HasSAI {
		flags |= 1 << uliBitSAI
		body = append(body, u.SAI.marshal()...)
	}
	if u.HasRAI {
		flags |= 1 << uliBitRAI
		body = append(body, u.RAI.marshal()...)
	}
	if u.HasTAI {
		flags |= 1 << uliBitTAI
		body = append(body, u.TAI.marshal()...)
	}
	if u.HasECGI {
		flags |= 1 << uliBitECGI
		body = append(body, u.ECGI.marshal()...)
	}
	if u.HasLAI {
		flags |= 1 << uliBitLAI
		body = append(body, u.LAI.marshal()...)
	}
	if u.HasMacroEnbID {
		flags |= 1 << uliBitMacroEnbID
		body = append(body, u.MacroEnbID.marshal()...)
	}

	payload := append([]byte{flags}, body...)
	return marshalTLIV(TypeULI, u.Instance, payload)
}

func unmarshalULI(instance uint8, payload []byte) (ULI, error) {
	if len(payload) < 1 {
		return ULI{}, ie.InvalidLength(TypeULI)
	}
	flags := payload[0]
	b := payload[1:]
	u := ULI{Instance: instance}

	take := func(n int) ([]byte, error) {
		if len(b) < n {
			return nil, ie.InvalidLength(TypeULI)
		}
		block := b[:n]
		b = b[n:]
		return block, nil
	}

	if flags&(1<<uliBitCGI) != 0 {
		block, err := take(7)
		if err != nil {
			return ULI{}, err
		}
		u.HasCGI, u.CGI = true, unmarshalCGI(block)
	}
	if flags&(1<<uliBitSAI) != 0 {
		block, err := take(7)
		if err != nil {
			return ULI{}, err
		}
		u.HasSAI, u.SAI = true, unmarshalSAI(block)
	}
	if flags&(1<<uliBitRAI) != 0 {
		block, err := take(7)
		if err != nil {
			return ULI{}, err
		}
		u.HasRAI, u.RAI = true, unmarshalRAI(block)
	}
	if flags&(1<<uliBitTAI) != 0 {
		block, err := take(5)
		if err != nil {
			return ULI{}, err
		}
		u.HasTAI, u.TAI = true, unmarshalTAI(block)
	}
	if flags&(1<<uliBitECGI) != 0 {
		block, err := take(7)
		if err != nil {
			return ULI{}, err
		}
		u.HasECGI, u.ECGI = true, unmarshalECGI(block)
	}
	if flags&(1<<uliBitLAI) != 0 {
		block, err := take(5)
		if err != nil {
			return ULI{}, err
		}
		u.HasLAI, u.LAI = true, unmarshalLAI(block)
	}
	if flags&(1<<uliBitMacroEnbID) != 0 {
		block, err := take(6)
		if err != nil {
			return ULI{}, err
		}
		u.HasMacroEnbID, u.MacroEnbID = true, unmarshalMacroEnbID(block)
	}

	return u, nil
}
