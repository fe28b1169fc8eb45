package gtpv2

// v2 message type codes (3GPP TS 29.274 table 6.1-1).
const (
	MessageTypeCreateBearerRequest         = 95
	MessageTypeCreateBearerResponse        = 96
	MessageTypeDeleteBearerRequest         = 99
	MessageTypeDeleteBearerResponse        = 100
	MessageTypeDeleteSessionRequest        = 36
	MessageTypeDeleteSessionResponse       = 37
	MessageTypeModifyAccessBearersRequest  = 211
	MessageTypeModifyAccessBearersResponse = 212
)

// checkMessageType verifies the parsed header's message type matches
// what the caller's decoder expects (spec §4.3 step 1).
func checkMessageType(h Header, want uint8) error {
	if h.MessageType != want {
		return &ErrIncorrectMessageType{Got: h.MessageType, Want: want}
	}
	return nil
}

// slicePayload bounds the IE stream to the header's declared length,
// verifying the buffer actually holds that many bytes (spec §4.3
// step 2). DeclaredLength counts everything after the header's first
// 4 octets (spec §3.2), so the message's total wire size is 4 + it.
func slicePayload(h Header, consumed int, b []byte) ([]byte, error) {
	end := 4 + int(h.DeclaredLength)
	if len(b) < end {
		return nil, &ErrInvalidMessageFormat{Reason: "buffer shorter than header + declared length"}
	}
	return b[consumed:end], nil
}

// decodeV2Payload runs the shared v2 TLIV stream decoder over the
// message payload, translating stream-level failures into
// ErrInvalidMessageFormat (spec §4.3 step 3).
func decodeV2Payload(payload []byte) ([]rawIE, error) {
	ies, err := decodeV2IEStream(payload)
	if err != nil {
		return nil, &ErrInvalidMessageFormat{Reason: "decoding information element stream: " + err.Error()}
	}
	return ies, nil
}
