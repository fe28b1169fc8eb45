package gtpv1

import "github.com/mobilecore/gtp/ie"

// IMSI is the v1 IMSI IE (type 2): a TBCD-packed subscriber identity
// (spec §8 scenario 1).
type IMSI struct {
	Value string
}

func (i IMSI) Marshal() []byte { return marshalTV(TypeIMSI, ie.EncodeTBCD(i.Value)) }

func unmarshalIMSI(payload []byte) (IMSI, error) {
	if len(payload) != 8 {
		return IMSI{}, ie.InvalidLength(TypeIMSI)
	}
	return IMSI{Value: ie.DecodeTBCD(payload)}, nil
}
