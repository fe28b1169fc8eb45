package gtpv2

// ModifyAccessBearersRequest carries one or more BearerContext IEs,
// each at a distinct instance, describing bearers whose access-side
// F-TEID is changing (3GPP TS 29.274 table 7.3.1; spec §8 scenario 4).
type ModifyAccessBearersRequest struct {
	Header Header

	BearerContexts []BearerContext // mandatory: at least one
}

func (m ModifyAccessBearersRequest) Marshal() []byte {
	var payload []byte
	for _, bc := range m.BearerContexts {
		payload = append(payload, bc.Marshal()...)
	}

	h := m.Header
	h.MessageType = MessageTypeModifyAccessBearersRequest
	return append(h.Marshal(len(payload)), payload...)
}

// UnmarshalModifyAccessBearersRequest parses a Modify Access Bearers
// Request following the common message algorithm (spec §4.3).
func UnmarshalModifyAccessBearersRequest(b []byte) (ModifyAccessBearersRequest, error) {
	h, n, err := UnmarshalHeader(b)
	if err != nil {
		return ModifyAccessBearersRequest{}, err
	}
	if err := checkMessageType(h, MessageTypeModifyAccessBearersRequest); err != nil {
		return ModifyAccessBearersRequest{}, err
	}

	payload, err := slicePayload(h, n, b)
	if err != nil {
		return ModifyAccessBearersRequest{}, err
	}
	ies, err := decodeV2Payload(payload)
	if err != nil {
		return ModifyAccessBearersRequest{}, err
	}

	m := ModifyAccessBearersRequest{Header: h}
	for _, raw := range ies {
		if raw.Type != TypeBearerContext {
			continue // unknown slot: silently ignored (spec §4.3 step 4)
		}
		bc, err := unmarshalBearerContext(raw.Instance, raw.Payload)
		if err != nil {
			return ModifyAccessBearersRequest{}, err
		}
		m.BearerContexts = append(m.BearerContexts, bc)
	}

	if len(m.BearerContexts) == 0 {
		return ModifyAccessBearersRequest{}, &ErrMandatoryIEMissing{Type: TypeBearerContext}
	}
	return m, nil
}

// ModifyAccessBearersResponse reports the outcome per bearer context
// (3GPP TS 29.274 table 7.3.2).
type ModifyAccessBearersResponse struct {
	Header Header

	Cause          Cause // mandatory
	BearerContexts []BearerContext
}

func (m ModifyAccessBearersResponse) Marshal() []byte {
	payload := m.Cause.Marshal()
	for _, bc := range m.BearerContexts {
		payload = append(payload, bc.Marshal()...)
	}

	h := m.Header
	h.MessageType = MessageTypeModifyAccessBearersResponse
	return append(h.Marshal(len(payload)), payload...)
}

// UnmarshalModifyAccessBearersResponse parses a Modify Access Bearers
// Response following the common message algorithm (spec §4.3).
func UnmarshalModifyAccessBearersResponse(b []byte) (ModifyAccessBearersResponse, error) {
	h, n, err := UnmarshalHeader(b)
	if err != nil {
		return ModifyAccessBearersResponse{}, err
	}
	if err := checkMessageType(h, MessageTypeModifyAccessBearersResponse); err != nil {
		return ModifyAccessBearersResponse{}, err
	}

	payload, err := slicePayload(h, n, b)
	if err != nil {
		return ModifyAccessBearersResponse{}, err
	}
	ies, err := decodeV2Payload(payload)
	if err != nil {
		return ModifyAccessBearersResponse{}, err
	}

	m := ModifyAccessBearersResponse{Header: h}
	haveCause := false
	for _, raw := range ies {
		switch raw.Type {
		case TypeCause:
			if haveCause {
				continue
			}
			v, err := unmarshalCause(raw.Instance, raw.Payload)
			if err != nil {
				return ModifyAccessBearersResponse{}, err
			}
			m.Cause = v
			haveCause = true
		case TypeBearerContext:
			bc, err := unmarshalBearerContext(raw.Instance, raw.Payload)
			if err != nil {
				return ModifyAccessBearersResponse{}, err
			}
			m.BearerContexts = append(m.BearerContexts, bc)
		default:
		}
	}

	if !haveCause {
		return ModifyAccessBearersResponse{}, &ErrMandatoryIEMissing{Type: TypeCause}
	}
	return m, nil
}
