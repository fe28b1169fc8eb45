// Package gtpv2 implements the GTPv2-C header (3GPP TS 29.274) and the
// TLIV information elements and messages built on top of it.
package gtpv2

import (
	"encoding/binary"
	"fmt"

	"github.com/bamiaux/iobit"
)

const (
	version = 2

	headerMandatorySize = 8  // version/flags, message type, length, SQN+spare
	headerTEIDSize      = 4
)

var errHeaderSizeTooSmall = fmt.Errorf("gtpv2: header size too small")

// HeaderSizeTooSmall reports that the buffer is too short to hold the
// declared header.
func HeaderSizeTooSmall() error { return errHeaderSizeTooSmall }

// Header is the GTPv2 fixed header: version/piggyback/TEID-present/
// message-priority flags, message type, length, an optional TEID, a
// 24-bit sequence number, and an optional message-priority nibble
// (spec §3.2).
type Header struct {
	P  bool // piggyback: a second message follows in the same datagram
	T  bool // TEID present
	MP bool // message priority present

	MessageType uint8
	TEID        uint32

	SequenceNumber uint32 // 24-bit
	MessagePriority uint8 // 4-bit, valid only when MP is set

	// DeclaredLength is the wire length field as parsed by
	// UnmarshalHeader (payload bytes following the first 4 octets).
	// Marshal ignores it and recomputes the field fresh.
	DeclaredLength uint16
}

// MarshalSize returns the header's on-wire size: 8 bytes, plus 4 more
// when T is set (max 12 bytes per spec §3.2).
func (h Header) MarshalSize() int {
	size := headerMandatorySize
	if h.T {
		size += headerTEIDSize
	}
	return size
}

// Marshal serializes the header. payloadLen is the number of IE-stream
// bytes that follow; the wire length field counts everything after the
// first 4 octets (message-type + length itself excluded, TEID/SQN/
// priority area and payload included).
func (h Header) Marshal(payloadLen int) []byte {
	out := make([]byte, h.MarshalSize())

	w := iobit.NewWriter(out[:4])
	w.PutUint32(3, version)
	w.PutBit(h.P)
	w.PutBit(h.T)
	w.PutBit(h.MP)
	w.PutUint32(2, 0) // spare
	w.PutUint32(8, uint32(h.MessageType))
	length := len(out) - 4 + payloadLen
	w.PutUint32(16, uint32(length))
	if err := w.Flush(); err != nil {
		panic(fmt.Sprintf("gtpv2: header encode: %v", err))
	}

	n := 4
	if h.T {
		binary.BigEndian.PutUint32(out[n:], h.TEID)
		n += headerTEIDSize
	}

	sw := iobit.NewWriter(out[n:])
	sw.PutUint32(24, h.SequenceNumber)
	if h.MP {
		sw.PutUint32(4, uint32(h.MessagePriority))
	} else {
		sw.PutUint32(4, 0)
	}
	sw.PutUint32(4, 0) // spare
	if err := sw.Flush(); err != nil {
		panic(fmt.Sprintf("gtpv2: header encode: %v", err))
	}

	return out
}

// UnmarshalHeader parses a GTPv2 header from the start of b, returning
// the header and the number of bytes consumed.
func UnmarshalHeader(b []byte) (Header, int, error) {
	if len(b) < headerMandatorySize {
		return Header{}, 0, errHeaderSizeTooSmall
	}

	r := iobit.NewReader(b[:4])
	r.Skip(3) // version
	p := r.Bit()
	t := r.Bit()
	mp := r.Bit()
	r.Skip(2) // spare
	msgType := r.Uint32(8)
	length := r.Uint32(16)
	if err := r.Error(); err != nil {
		return Header{}, 0, fmt.Errorf("%w: %v", errHeaderSizeTooSmall, err)
	}

	h := Header{
		P:              p,
		T:              t,
		MP:             mp,
		MessageType:    uint8(msgType),
		DeclaredLength: uint16(length),
	}

	n := 4
	if t {
		if len(b) < n+headerTEIDSize {
			return Header{}, 0, errHeaderSizeTooSmall
		}
		h.TEID = binary.BigEndian.Uint32(b[n:])
		n += headerTEIDSize
	}

	if len(b) < n+4 {
		return Header{}, 0, errHeaderSizeTooSmall
	}
	sr := iobit.NewReader(b[n : n+4])
	h.SequenceNumber = sr.Uint32(24)
	priority := sr.Uint32(4)
	sr.Skip(4) // spare
	if err := sr.Error(); err != nil {
		return Header{}, 0, fmt.Errorf("%w: %v", errHeaderSizeTooSmall, err)
	}
	if mp {
		h.MessagePriority = uint8(priority)
	}
	n += 4

	return h, n, nil
}
