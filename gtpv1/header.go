// Package gtpv1 implements the GTPv1 header (user-plane and control-
// plane v1, 3GPP TS 29.060 / TS 29.281), its GTP-U extension header
// chain, and the v1 information elements and messages built on top of
// it.
package gtpv1

import (
	"encoding/binary"
	"fmt"

	"github.com/bamiaux/iobit"
)

const (
	version = 1

	// ProtocolTypeGTP and ProtocolTypeGTPPrime distinguish GTP from
	// GTP' in the header's protocol-type bit.
	ProtocolTypeGTP      = 1
	ProtocolTypeGTPPrime = 0

	headerMandatorySize = 8
	headerOptionalSize  = 3 // sequence number (2) + N-PDU number (1)
)

// Header is the GTPv1 8-byte mandatory prefix plus its optional
// sequence-number / N-PDU-number / extension-header area (spec §3.2).
type Header struct {
	ProtocolType uint8 // ProtocolTypeGTP or ProtocolTypeGTPPrime
	E            bool  // extension header chain follows
	S            bool  // sequence number present
	PN           bool  // N-PDU number present
	MessageType  uint8
	TEID         uint32

	SequenceNumber uint16
	NPDUNumber     uint8
	Extensions     []Extension

	// DeclaredLength is the wire length field as parsed by
	// UnmarshalHeader: payload bytes following the mandatory 8-byte
	// prefix. Marshal ignores it and recomputes the field fresh from
	// the caller's payloadLen, so round-tripping a Header value never
	// depends on it; message-layer unmarshal uses it to bound the IE
	// stream (spec §4.3 step 2).
	DeclaredLength uint16
}

var errHeaderSizeTooSmall = fmt.Errorf("gtpv1: header size too small")

// HeaderSizeTooSmall reports that the buffer is too short to hold the
// declared header.
func HeaderSizeTooSmall() error { return errHeaderSizeTooSmall }

func (h Header) hasOptionalArea() bool { return h.E || h.S || h.PN }

// linksSize is the wire size of the Extensions slice's own link
// bodies (length, content, next-type each), plus the one type byte
// that precedes the first link — every later link's type byte is the
// previous link's patched next-type field, not a separate byte. The
// last link's trailing next-type byte doubles as the chain's sentinel
// once it's left un-patched.
func (h Header) linksSize() int {
	size := 1 // first link's type byte
	for _, ext := range h.Extensions {
		size += ext.marshalSize()
	}
	return size
}

// MarshalSize returns the on-wire size of the header. Per spec
// §4.2.1's offset table, the optional area — sequence number and
// N-PDU number — occupies a fixed 3 bytes whenever any of E/S/PN is
// set, regardless of which one; unset sub-fields are zeroed, not
// omitted. The byte that follows is the chain's first extension-type
// byte when E is set and links exist, or the bare no-more-extensions
// sentinel otherwise.
func (h Header) MarshalSize() int {
	size := headerMandatorySize
	if !h.hasOptionalArea() {
		return size
	}
	size += headerOptionalSize
	if h.E && len(h.Extensions) > 0 {
		size += h.linksSize()
	} else {
		size++ // sentinel byte
	}
	return size
}

// Marshal serializes the header. payloadLen is the number of bytes
// that follow the header (the IE stream or T-PDU payload); the wire
// length field (spec §3.2) is payload length not including the
// mandatory 8-byte prefix, so it also counts the optional area and
// any extension chain.
func (h Header) Marshal(payloadLen int) []byte {
	out := make([]byte, h.MarshalSize())

	w := iobit.NewWriter(out[:headerMandatorySize])
	w.PutUint32(3, version)
	w.PutUint32(1, uint32(h.ProtocolType))
	w.PutUint32(1, 0) // reserved
	w.PutBit(h.E)
	w.PutBit(h.S)
	w.PutBit(h.PN)
	w.PutUint32(8, uint32(h.MessageType))
	w.PutUint32(16, uint32(payloadLen+len(out)-headerMandatorySize))
	w.PutUint32(32, h.TEID)
	if err := w.Flush(); err != nil {
		panic(fmt.Sprintf("gtpv1: header encode: %v", err))
	}

	if !h.hasOptionalArea() {
		return out
	}

	binary.BigEndian.PutUint16(out[headerMandatorySize:], h.SequenceNumber)
	out[headerMandatorySize+2] = h.NPDUNumber

	n := headerMandatorySize + headerOptionalSize
	if !h.E || len(h.Extensions) == 0 {
		out[n] = extHeaderTypeNone
		return out
	}

	out[n] = h.Extensions[0].Type
	pos := n + 1

	linkStart := make([]int, len(h.Extensions))
	for i, ext := range h.Extensions {
		linkStart[i] = pos
		pos += copy(out[pos:], ext.marshal())
	}
	// Patch each link's trailing next-type placeholder with the type
	// byte of the link that follows it; the final link's placeholder
	// is left at its zero value, which is the sentinel.
	for i := 0; i < len(h.Extensions)-1; i++ {
		thisLinkEnd := linkStart[i] + h.Extensions[i].marshalSize()
		out[thisLinkEnd-1] = h.Extensions[i+1].Type
	}
	return out
}

// UnmarshalHeader parses a GTPv1 header from the start of b, returning
// the header and the number of bytes consumed.
func UnmarshalHeader(b []byte) (Header, int, error) {
	if len(b) < headerMandatorySize {
		return Header{}, 0, errHeaderSizeTooSmall
	}

	r := iobit.NewReader(b)
	r.Skip(3) // version
	pt := r.Uint32(1)
	r.Skip(1) // reserved
	e := r.Bit()
	s := r.Bit()
	pn := r.Bit()
	msgType := r.Uint32(8)
	length := r.Uint32(16)
	teid := r.Uint32(32)
	if err := r.Error(); err != nil {
		return Header{}, 0, fmt.Errorf("%w: %v", errHeaderSizeTooSmall, err)
	}

	h := Header{
		ProtocolType:   uint8(pt),
		MessageType:    uint8(msgType),
		TEID:           teid,
		E:              e,
		S:              s,
		PN:             pn,
		DeclaredLength: uint16(length),
	}

	n := headerMandatorySize
	if !h.hasOptionalArea() {
		return h, n, nil
	}

	if len(b) < n+headerOptionalSize+1 {
		return Header{}, 0, errHeaderSizeTooSmall
	}
	h.SequenceNumber = binary.BigEndian.Uint16(b[n : n+2])
	h.NPDUNumber = b[n+2]
	n += headerOptionalSize

	// The byte at n is the first extension-header-type byte regardless
	// of which of E/S/PN triggered the optional area (spec §4.2.1's
	// offset table): it always immediately follows the N-PDU number
	// octet, and is the no-more-extensions sentinel when E is clear.
	firstExtType := b[n]
	n++

	if !e {
		return h, n, nil
	}

	exts, consumed, err := decodeExtensionChain(firstExtType, b[n:])
	if err != nil {
		return Header{}, 0, err
	}
	h.Extensions = exts
	n += consumed

	return h, n, nil
}
