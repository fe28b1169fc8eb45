package gtpv1

// v1 message type codes (3GPP TS 29.060 table 6).
const (
	MessageTypeDeletePDPContextRequest  = 20
	MessageTypeDeletePDPContextResponse = 21
	MessageTypePDUNotificationRequest   = 27
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
// step 2).
func slicePayload(h Header, consumed int, b []byte) ([]byte, error) {
	end := headerMandatorySize + int(h.DeclaredLength)
	if len(b) < end {
		return nil, &ErrInvalidMessageFormat{Reason: "buffer shorter than header + declared length"}
	}
	return b[consumed:end], nil
}

// decodeV1Payload runs the shared v1 IE stream decoder over the
// message payload, translating stream-level failures (including the
// non-decreasing type-code violation) into ErrInvalidMessageFormat
// (spec §4.3 step 3, §7).
func decodeV1Payload(payload []byte) ([]rawIE, error) {
	ies, err := decodeV1IEStream(payload)
	if err != nil {
		return nil, &ErrInvalidMessageFormat{Reason: "decoding information element stream: " + err.Error()}
	}
	return ies, nil
}
