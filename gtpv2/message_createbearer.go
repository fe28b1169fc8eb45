package gtpv2

// CreateBearerRequest asks a peer to establish one or more dedicated
// bearers (3GPP TS 29.274 table 7.2.3; SUPPLEMENTED FEATURES from
// original_source/).
type CreateBearerRequest struct {
	Header Header

	LinkedEBI      EBI // mandatory
	BearerContexts []BearerContext
	Extensions     []PrivateExtension
}

func (m CreateBearerRequest) Marshal() []byte {
	payload := m.LinkedEBI.Marshal()
	for _, bc := range m.BearerContexts {
		payload = append(payload, bc.Marshal()...)
	}
	for _, ext := range m.Extensions {
		payload = append(payload, ext.Marshal()...)
	}

	h := m.Header
	h.MessageType = MessageTypeCreateBearerRequest
	return append(h.Marshal(len(payload)), payload...)
}

// UnmarshalCreateBearerRequest parses a Create Bearer Request
// following the common message algorithm (spec §4.3).
func UnmarshalCreateBearerRequest(b []byte) (CreateBearerRequest, error) {
	h, n, err := UnmarshalHeader(b)
	if err != nil {
		return CreateBearerRequest{}, err
	}
	if err := checkMessageType(h, MessageTypeCreateBearerRequest); err != nil {
		return CreateBearerRequest{}, err
	}

	payload, err := slicePayload(h, n, b)
	if err != nil {
		return CreateBearerRequest{}, err
	}
	ies, err := decodeV2Payload(payload)
	if err != nil {
		return CreateBearerRequest{}, err
	}

	m := CreateBearerRequest{Header: h}
	haveEBI := false
	for _, raw := range ies {
		switch raw.Type {
		case TypeEBI:
			if haveEBI {
				continue
			}
			v, err := unmarshalEBI(raw.Instance, raw.Payload)
			if err != nil {
				return CreateBearerRequest{}, err
			}
			m.LinkedEBI = v
			haveEBI = true
		case TypeBearerContext:
			bc, err := unmarshalBearerContext(raw.Instance, raw.Payload)
			if err != nil {
				return CreateBearerRequest{}, err
			}
			m.BearerContexts = append(m.BearerContexts, bc)
		case TypePrivateExtension:
			v, err := unmarshalPrivateExtension(raw.Instance, raw.Payload)
			if err != nil {
				return CreateBearerRequest{}, err
			}
			m.Extensions = append(m.Extensions, v)
		default:
		}
	}

	if !haveEBI {
		return CreateBearerRequest{}, &ErrMandatoryIEMissing{Type: TypeEBI}
	}
	return m, nil
}

// CreateBearerResponse reports the outcome per created bearer (3GPP TS
// 29.274 table 7.2.4).
type CreateBearerResponse struct {
	Header Header

	Cause          Cause // mandatory
	BearerContexts []BearerContext
}

func (m CreateBearerResponse) Marshal() []byte {
	payload := m.Cause.Marshal()
	for _, bc := range m.BearerContexts {
		payload = append(payload, bc.Marshal()...)
	}

	h := m.Header
	h.MessageType = MessageTypeCreateBearerResponse
	return append(h.Marshal(len(payload)), payload...)
}

// UnmarshalCreateBearerResponse parses a Create Bearer Response
// following the common message algorithm (spec §4.3).
func UnmarshalCreateBearerResponse(b []byte) (CreateBearerResponse, error) {
	h, n, err := UnmarshalHeader(b)
	if err != nil {
		return CreateBearerResponse{}, err
	}
	if err := checkMessageType(h, MessageTypeCreateBearerResponse); err != nil {
		return CreateBearerResponse{}, err
	}

	payload, err := slicePayload(h, n, b)
	if err != nil {
		return CreateBearerResponse{}, err
	}
	ies, err := decodeV2Payload(payload)
	if err != nil {
		return CreateBearerResponse{}, err
	}

	m := CreateBearerResponse{Header: h}
	haveCause := false
	for _, raw := range ies {
		switch raw.Type {
		case TypeCause:
			if haveCause {
				continue
			}
			v, err := unmarshalCause(raw.Instance, raw.Payload)
			if err != nil {
				return CreateBearerResponse{}, err
			}
			m.Cause = v
			haveCause = true
		case TypeBearerContext:
			bc, err := unmarshalBearerContext(raw.Instance, raw.Payload)
			if err != nil {
				return CreateBearerResponse{}, err
			}
			m.BearerContexts = append(m.BearerContexts, bc)
		default:
		}
	}

	if !haveCause {
		return CreateBearerResponse{}, &ErrMandatoryIEMissing{Type: TypeCause}
	}
	return m, nil
}
