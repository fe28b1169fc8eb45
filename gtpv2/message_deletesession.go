package gtpv2

// DeleteSessionRequest tears down a PDN connection and its bearers
// (3GPP TS 29.274 table 7.4.2; SUPPLEMENTED FEATURES from
// original_source/).
type DeleteSessionRequest struct {
	Header Header

	LinkedEBI EBI // mandatory
	ULI       *ULI
	Extensions []PrivateExtension
}

func (m DeleteSessionRequest) Marshal() []byte {
	payload := m.LinkedEBI.Marshal()
	if m.ULI != nil {
		payload = append(payload, m.ULI.Marshal()...)
	}
	for _, ext := range m.Extensions {
		payload = append(payload, ext.Marshal()...)
	}

	h := m.Header
	h.MessageType = MessageTypeDeleteSessionRequest
	return append(h.Marshal(len(payload)), payload...)
}

// UnmarshalDeleteSessionRequest parses a Delete Session Request
// following the common message algorithm (spec §4.3).
func UnmarshalDeleteSessionRequest(b []byte) (DeleteSessionRequest, error) {
	h, n, err := UnmarshalHeader(b)
	if err != nil {
		return DeleteSessionRequest{}, err
	}
	if err := checkMessageType(h, MessageTypeDeleteSessionRequest); err != nil {
		return DeleteSessionRequest{}, err
	}

	payload, err := slicePayload(h, n, b)
	if err != nil {
		return DeleteSessionRequest{}, err
	}
	ies, err := decodeV2Payload(payload)
	if err != nil {
		return DeleteSessionRequest{}, err
	}

	m := DeleteSessionRequest{Header: h}
	haveEBI := false
	for _, raw := range ies {
		switch raw.Type {
		case TypeEBI:
			if haveEBI {
				continue
			}
			v, err := unmarshalEBI(raw.Instance, raw.Payload)
			if err != nil {
				return DeleteSessionRequest{}, err
			}
			m.LinkedEBI = v
			haveEBI = true
		case TypeULI:
			if m.ULI != nil {
				continue
			}
			v, err := unmarshalULI(raw.Instance, raw.Payload)
			if err != nil {
				return DeleteSessionRequest{}, err
			}
			m.ULI = &v
		case TypePrivateExtension:
			v, err := unmarshalPrivateExtension(raw.Instance, raw.Payload)
			if err != nil {
				return DeleteSessionRequest{}, err
			}
			m.Extensions = append(m.Extensions, v)
		default:
		}
	}

	if !haveEBI {
		return DeleteSessionRequest{}, &ErrMandatoryIEMissing{Type: TypeEBI}
	}
	return m, nil
}

// DeleteSessionResponse reports the outcome of a session teardown
// (3GPP TS 29.274 table 7.4.3).
type DeleteSessionResponse struct {
	Header Header

	Cause      Cause // mandatory
	Extensions []PrivateExtension
}

func (m DeleteSessionResponse) Marshal() []byte {
	payload := m.Cause.Marshal()
	for _, ext := range m.Extensions {
		payload = append(payload, ext.Marshal()...)
	}

	h := m.Header
	h.MessageType = MessageTypeDeleteSessionResponse
	return append(h.Marshal(len(payload)), payload...)
}

// UnmarshalDeleteSessionResponse parses a Delete Session Response
// following the common message algorithm (spec §4.3).
func UnmarshalDeleteSessionResponse(b []byte) (DeleteSessionResponse, error) {
	h, n, err := UnmarshalHeader(b)
	if err != nil {
		return DeleteSessionResponse{}, err
	}
	if err := checkMessageType(h, MessageTypeDeleteSessionResponse); err != nil {
		return DeleteSessionResponse{}, err
	}

	payload, err := slicePayload(h, n, b)
	if err != nil {
		return DeleteSessionResponse{}, err
	}
	ies, err := decodeV2Payload(payload)
	if err != nil {
		return DeleteSessionResponse{}, err
	}

	m := DeleteSessionResponse{Header: h}
	haveCause := false
	for _, raw := range ies {
		switch raw.Type {
		case TypeCause:
			if haveCause {
				continue
			}
			v, err := unmarshalCause(raw.Instance, raw.Payload)
			if err != nil {
				return DeleteSessionResponse{}, err
			}
			m.Cause = v
			haveCause = true
		case TypePrivateExtension:
			v, err := unmarshalPrivateExtension(raw.Instance, raw.Payload)
			if err != nil {
				return DeleteSessionResponse{}, err
			}
			m.Extensions = append(m.Extensions, v)
		default:
		}
	}

	if !haveCause {
		return DeleteSessionResponse{}, &ErrMandatoryIEMissing{Type: TypeCause}
	}
	return m, nil
}
