package gtpv2

// DeleteBearerRequest asks a peer to tear down one or more dedicated
// bearers (3GPP TS 29.274 table 7.2.7; SUPPLEMENTED FEATURES from
// original_source/).
type DeleteBearerRequest struct {
	Header Header

	EBIs       []EBI // mandatory: at least one
	Extensions []PrivateExtension
}

func (m DeleteBearerRequest) Marshal() []byte {
	var payload []byte
	for _, ebi := range m.EBIs {
		payload = append(payload, ebi.Marshal()...)
	}
	for _, ext := range m.Extensions {
		payload = append(payload, ext.Marshal()...)
	}

	h := m.Header
	h.MessageType = MessageTypeDeleteBearerRequest
	return append(h.Marshal(len(payload)), payload...)
}

// UnmarshalDeleteBearerRequest parses a Delete Bearer Request
// following the common message algorithm (spec §4.3).
func UnmarshalDeleteBearerRequest(b []byte) (DeleteBearerRequest, error) {
	h, n, err := UnmarshalHeader(b)
	if err != nil {
		return DeleteBearerRequest{}, err
	}
	if err := checkMessageType(h, MessageTypeDeleteBearerRequest); err != nil {
		return DeleteBearerRequest{}, err
	}

	payload, err := slicePayload(h, n, b)
	if err != nil {
		return DeleteBearerRequest{}, err
	}
	ies, err := decodeV2Payload(payload)
	if err != nil {
		return DeleteBearerRequest{}, err
	}

	m := DeleteBearerRequest{Header: h}
	for _, raw := range ies {
		switch raw.Type {
		case TypeEBI:
			v, err := unmarshalEBI(raw.Instance, raw.Payload)
			if err != nil {
				return DeleteBearerRequest{}, err
			}
			m.EBIs = append(m.EBIs, v)
		case TypePrivateExtension:
			v, err := unmarshalPrivateExtension(raw.Instance, raw.Payload)
			if err != nil {
				return DeleteBearerRequest{}, err
			}
			m.Extensions = append(m.Extensions, v)
		default:
		}
	}

	if len(m.EBIs) == 0 {
		return DeleteBearerRequest{}, &ErrMandatoryIEMissing{Type: TypeEBI}
	}
	return m, nil
}

// DeleteBearerResponse reports the outcome per deleted bearer (3GPP TS
// 29.274 table 7.2.8).
type DeleteBearerResponse struct {
	Header Header

	Cause      Cause // mandatory
	EBIs       []EBI
	Extensions []PrivateExtension
}

func (m DeleteBearerResponse) Marshal() []byte {
	payload := m.Cause.Marshal()
	for _, ebi := range m.EBIs {
		payload = append(payload, ebi.Marshal()...)
	}
	for _, ext := range m.Extensions {
		payload = append(payload, ext.Marshal()...)
	}

	h := m.Header
	h.MessageType = MessageTypeDeleteBearerResponse
	return append(h.Marshal(len(payload)), payload...)
}

// UnmarshalDeleteBearerResponse parses a Delete Bearer Response
// following the common message algorithm (spec §4.3).
func UnmarshalDeleteBearerResponse(b []byte) (DeleteBearerResponse, error) {
	h, n, err := UnmarshalHeader(b)
	if err != nil {
		return DeleteBearerResponse{}, err
	}
	if err := checkMessageType(h, MessageTypeDeleteBearerResponse); err != nil {
		return DeleteBearerResponse{}, err
	}

	payload, err := slicePayload(h, n, b)
	if err != nil {
		return DeleteBearerResponse{}, err
	}
	ies, err := decodeV2Payload(payload)
	if err != nil {
		return DeleteBearerResponse{}, err
	}

	m := DeleteBearerResponse{Header: h}
	haveCause := false
	for _, raw := range ies {
		switch raw.Type {
		case TypeCause:
			if haveCause {
				continue
			}
			v, err := unmarshalCause(raw.Instance, raw.Payload)
			if err != nil {
				return DeleteBearerResponse{}, err
			}
			m.Cause = v
			haveCause = true
		case TypeEBI:
			v, err := unmarshalEBI(raw.Instance, raw.Payload)
			if err != nil {
				return DeleteBearerResponse{}, err
			}
			m.EBIs = append(m.EBIs, v)
		case TypePrivateExtension:
			v, err := unmarshalPrivateExtension(raw.Instance, raw.Payload)
			if err != nil {
				return DeleteBearerResponse{}, err
			}
			m.Extensions = append(m.Extensions, v)
		default:
		}
	}

	if !haveCause {
		return DeleteBearerResponse{}, &ErrMandatoryIEMissing{Type: TypeCause}
	}
	return m, nil
}
