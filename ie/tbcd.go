package ie

import "strconv"

// tbcdFiller is the high-nibble filler used to pad an odd-length
// digit string onto an otherwise unused nibble position (spec §3.1).
const tbcdFiller = 0xF

// EncodeTBCD packs a digit string into Telephony Binary-Coded Decimal:
// digit pairs, low-nibble-first per octet. An odd number of digits ends
// with a 0xF high nibble on the final octet.
func EncodeTBCD(digits string) []byte {
	out := make([]byte, 0, (len(digits)+1)/2)
	for i := 0; i < len(digits); i += 2 {
		lo := digits[i] - '0'
		hi := byte(tbcdFiller)
		if i+1 < len(digits) {
			hi = digits[i+1] - '0'
		}
		out = append(out, hi<<4|lo)
	}
	return out
}

// DecodeTBCD unpacks a TBCD byte slice back into its digit string,
// consuming a trailing 0xF filler nibble if present.
func DecodeTBCD(b []byte) string {
	digits := make([]byte, 0, len(b)*2)
	for _, octet := range b {
		lo := octet & 0x0F
		hi := octet >> 4
		digits = append(digits, '0'+lo)
		if hi == tbcdFiller {
			break
		}
		digits = append(digits, '0'+hi)
	}
	return string(digits)
}

// itoaPadded formats v as a decimal string left-padded with zeros to
// at least width digits. Used by the PLMN and location-area encoders,
// whose sub-fields are fixed-width decimal strings packed as TBCD-like
// nibbles rather than free TBCD digit runs.
func itoaPadded(v, width int) string {
	s := strconv.Itoa(v)
	for len(s) < width {
		s = "0" + s
	}
	return s
}
