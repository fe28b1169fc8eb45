package gtpv2

import "github.com/mobilecore/gtp/ie"

// Cause flag bits packed into the Cause IE's second payload byte
// (spec §4.1.1).
const (
	causeFlagCS  = 0x01
	causeFlagBCE = 0x02
	causeFlagPCE = 0x04
)

// Cause is the v2 Cause IE (type 2): a cause value byte, a byte of
// {PCE, BCE, CS} flags, and an optional offending-IE-type byte present
// only when the cause names a structural rejection (spec §4.1.1).
type Cause struct {
	Instance uint8

	Value uint8
	PCE   bool
	BCE   bool
	CS    bool

	HasOffendingIEType bool
	OffendingIEType    uint8
}

func (c Cause) Marshal() []byte {
	var flags uint8
	if c.CS {
		flags |= causeFlagCS
	}
	if c.BCE {
		flags |= causeFlagBCE
	}
	if c.PCE {
		flags |= causeFlagPCE
	}

	payload := []byte{c.Value, flags}
	if c.HasOffendingIEType {
		payload = append(payload, c.OffendingIEType)
	}
	return marshalTLIV(TypeCause, c.Instance, payload)
}

func unmarshalCause(instance uint8, payload []byte) (Cause, error) {
	if len(payload) != 2 && len(payload) != 3 {
		return Cause{}, ie.InvalidLength(TypeCause)
	}
	c := Cause{
		Instance: instance,
		Value:    payload[0],
		CS:       payload[1]&causeFlagCS != 0,
		BCE:      payload[1]&causeFlagBCE != 0,
		PCE:      payload[1]&causeFlagPCE != 0,
	}
	if len(payload) == 3 {
		c.HasOffendingIEType = true
		c.OffendingIEType = payload[2]
	}
	return c, nil
}
