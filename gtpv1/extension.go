package gtpv1

import "fmt"

// GTP-U extension header type codes (spec §3.2, "GTP-U extension
// headers"). The chain terminator is extHeaderTypeNone; every other
// code names a link whose content this codec treats as opaque bytes
// (spec §9 "Opaque container extension headers" — delegated to upper
// layers, not interpreted here).
const (
	extHeaderTypeNone                  = 0x00
	ExtHeaderTypeLongPDCPPDUNumberR16  = 0x03
	ExtHeaderTypeServiceClassIndicator = 0x20
	ExtHeaderTypeUDPPort               = 0x40
	ExtHeaderTypeRANContainer          = 0x81
	ExtHeaderTypeLongPDCPPDUNumberR15  = 0x82
	ExtHeaderTypeXwRANContainer        = 0x83
	ExtHeaderTypeNRRANContainer        = 0x84
	ExtHeaderTypePDUSessionContainer   = 0x85
	ExtHeaderTypePDCPPDUNumber         = 0xC0
)

var knownExtHeaderTypes = map[uint8]bool{
	ExtHeaderTypeLongPDCPPDUNumberR16:  true,
	ExtHeaderTypeServiceClassIndicator: true,
	ExtHeaderTypeUDPPort:               true,
	ExtHeaderTypeRANContainer:          true,
	ExtHeaderTypeLongPDCPPDUNumberR15:  true,
	ExtHeaderTypeXwRANContainer:        true,
	ExtHeaderTypeNRRANContainer:        true,
	ExtHeaderTypePDUSessionContainer:   true,
	ExtHeaderTypePDCPPDUNumber:         true,
}

// Extension is one link of the GTP-U extension header chain. Content
// is the link's body, excluding its own type/length/next-type
// framing; it is never interpreted, only round-tripped (spec §9).
type Extension struct {
	Type     uint8
	Content  []byte
	Reserved bool // Type was not one of the codes spec §3.2 defines
}

// marshalSize returns the wire size of this single link's body: 1
// (length) + len(Content) + 1 (next-type). This deliberately excludes
// the link's own type byte — on the wire a link's type is always
// supplied by whatever precedes it (the header's first-extension-type
// byte for the first link, or the previous link's next-type byte for
// every one after), never repeated inside the link itself. Valid
// content lengths are exactly those congruent to 2 mod 4, so that
// length-in-4-byte-units (which covers the length byte, content, and
// next-type byte) comes out exact; see NewExtension.
func (e Extension) marshalSize() int {
	return 2 + len(e.Content)
}

// marshal encodes this link's body only: [length, content,
// next-type-placeholder]. It does not emit e.Type — the caller
// (Header.Marshal) is responsible for placing each link's type byte
// at the position the wire format actually has it: the header's
// first-extension-type byte for link 0, or the previous link's
// trailing next-type byte for every link after.
func (e Extension) marshal() []byte {
	size := e.marshalSize()
	out := make([]byte, size)
	out[0] = uint8(size / 4)
	copy(out[1:], e.Content)
	// out[size-1] is left 0 here; the caller overwrites it with the
	// real next-type byte once the whole chain is known.
	return out
}

var (
	errExtensionChainTooShort = fmt.Errorf("gtpv1: extension header chain too short")
	errExtensionContentLength = fmt.Errorf("gtpv1: extension header content length must be congruent to 2 mod 4")
)

// NewExtension builds a validated extension header link. content's
// length must be congruent to 2 mod 4 (spec §3.2: the length field
// counts whole 4-byte units of length+content+next-type, and length/
// next-type are always exactly one byte each).
func NewExtension(t uint8, content []byte) (Extension, error) {
	if len(content)%4 != 2 {
		return Extension{}, errExtensionContentLength
	}
	return Extension{Type: t, Content: content, Reserved: !knownExtHeaderTypes[t]}, nil
}

// decodeExtensionChain walks the GTP-U extension header chain
// starting at firstType, whose body begins at rest[0] (spec §3.2: a
// chain terminator is the reserved value 0x00; each link's length
// field counts units of 4 bytes covering its length, content, and
// next-type bytes — spec §4.2.1's walker description). Encountering an
// unrecognized type code stops the walk after recording that one
// opaque, reserved link (spec §3.2 "Unknown codes decode as an opaque
// Reserved marker that also terminates the chain").
func decodeExtensionChain(firstType uint8, rest []byte) ([]Extension, int, error) {
	var exts []Extension
	consumed := 0
	t := firstType

	for t != extHeaderTypeNone {
		if len(rest) < 1 {
			return nil, 0, errExtensionChainTooShort
		}
		lengthUnits := int(rest[0])
		total := lengthUnits * 4
		if total < 4 || len(rest) < total {
			return nil, 0, errExtensionChainTooShort
		}

		content := make([]byte, total-2)
		copy(content, rest[1:total-1])
		nextType := rest[total-1]

		exts = append(exts, Extension{
			Type:     t,
			Content:  content,
			Reserved: !knownExtHeaderTypes[t],
		})

		rest = rest[total:]
		consumed += total

		if !knownExtHeaderTypes[t] {
			break
		}
		t = nextType
	}

	return exts, consumed, nil
}
