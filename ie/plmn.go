package ie

// PLMN is a Mobile Country Code / Mobile Network Code pair, packed on
// the wire into 3 octets (spec §3.1):
//
//	octet 1 = MCC2|MCC1
//	octet 2 = MNC3|MCC3   (MNC3 = 0xF when MNC is two digits)
//	octet 3 = MNC2|MNC1
//
// MCC is always 3 digits. MNC is formatted to ThreeDigitMNC ? 3 : 2
// digits, zero-padded, before packing, so PLMN{MNC: 1} round-trips as
// the two-digit "01" unless ThreeDigitMNC is set.
type PLMN struct {
	MCC           int
	MNC           int
	ThreeDigitMNC bool
}

// Encode packs the PLMN into its 3-octet wire form.
func (p PLMN) Encode() [3]byte {
	mcc := itoaPadded(p.MCC, 3)
	mncWidth := 2
	if p.ThreeDigitMNC {
		mncWidth = 3
	}
	mnc := itoaPadded(p.MNC, mncWidth)

	mcc1, mcc2, mcc3 := mcc[0]-'0', mcc[1]-'0', mcc[2]-'0'

	var mnc3 byte = tbcdFiller
	mnc1, mnc2 := byte(0), byte(0)
	if p.ThreeDigitMNC {
		mnc1, mnc2, mnc3 = mnc[0]-'0', mnc[1]-'0', mnc[2]-'0'
	} else {
		mnc1, mnc2 = mnc[0]-'0', mnc[1]-'0'
	}

	var out [3]byte
	out[0] = mcc2<<4 | mcc1
	out[1] = mnc3<<4 | mcc3
	out[2] = mnc2<<4 | mnc1
	return out
}

// DecodePLMN unpacks a 3-octet PLMN field.
func DecodePLMN(b []byte) PLMN {
	mcc1 := b[0] & 0x0F
	mcc2 := b[0] >> 4
	mcc3 := b[1] & 0x0F
	mnc3 := b[1] >> 4
	mnc1 := b[2] & 0x0F
	mnc2 := b[2] >> 4

	p := PLMN{MCC: int(mcc1)*100 + int(mcc2)*10 + int(mcc3)}
	if mnc3 == tbcdFiller {
		p.MNC = int(mnc1)*10 + int(mnc2)
	} else {
		p.ThreeDigitMNC = true
		p.MNC = int(mnc1)*100 + int(mnc2)*10 + int(mnc3)
	}
	return p
}
