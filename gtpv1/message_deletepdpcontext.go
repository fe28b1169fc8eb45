package gtpv1

import "github.com/pkg/errors"

// DeletePDPContextRequest carries the NSAPI of the PDP context to tear
// down, plus the usual optional teardown indicator and private
// extensions (3GPP TS 29.060 table 35).
type DeletePDPContextRequest struct {
	Header Header

	TeardownInd *TeardownInd // optional
	NSAPI       NSAPI        // mandatory
	Extensions  []PrivateExtension
}

func (m DeletePDPContextRequest) Marshal() []byte {
	var payload []byte
	if m.TeardownInd != nil {
		payload = append(payload, m.TeardownInd.Marshal()...)
	}
	payload = append(payload, m.NSAPI.Marshal()...)
	for _, ext := range m.Extensions {
		payload = append(payload, ext.Marshal()...)
	}

	h := m.Header
	h.MessageType = MessageTypeDeletePDPContextRequest
	return append(h.Marshal(len(payload)), payload...)
}

// UnmarshalDeletePDPContextRequest parses a Delete PDP Context Request
// following the common message algorithm (spec §4.3).
func UnmarshalDeletePDPContextRequest(b []byte) (DeletePDPContextRequest, error) {
	h, n, err := UnmarshalHeader(b)
	if err != nil {
		return DeletePDPContextRequest{}, errors.Wrap(err, "parsing header")
	}
	if err := checkMessageType(h, MessageTypeDeletePDPContextRequest); err != nil {
		return DeletePDPContextRequest{}, err
	}

	payload, err := slicePayload(h, n, b)
	if err != nil {
		return DeletePDPContextRequest{}, err
	}
	ies, err := decodeV1Payload(payload)
	if err != nil {
		return DeletePDPContextRequest{}, err
	}

	m := DeletePDPContextRequest{Header: h}
	haveNSAPI := false
	for _, raw := range ies {
		switch raw.Type {
		case TypeTeardownInd:
			if m.TeardownInd != nil {
				continue
			}
			v, err := unmarshalTeardownInd(raw.Payload)
			if err != nil {
				return DeletePDPContextRequest{}, errors.Wrap(err, "decoding TeardownInd")
			}
			m.TeardownInd = &v
		case TypeNSAPI:
			if haveNSAPI {
				continue
			}
			v, err := unmarshalNSAPI(raw.Payload)
			if err != nil {
				return DeletePDPContextRequest{}, errors.Wrap(err, "decoding NSAPI")
			}
			m.NSAPI = v
			haveNSAPI = true
		case TypePrivateExtension:
			v, err := unmarshalPrivateExtension(raw.Payload)
			if err != nil {
				return DeletePDPContextRequest{}, errors.Wrap(err, "decoding PrivateExtension")
			}
			m.Extensions = append(m.Extensions, v)
		default:
			// unknown slot: silently ignored (spec §4.3 step 4).
		}
	}

	if !haveNSAPI {
		return DeletePDPContextRequest{}, &ErrMandatoryIEMissing{Type: TypeNSAPI}
	}
	return m, nil
}

// DeletePDPContextResponse carries the outcome of the delete (3GPP TS
// 29.060 table 36).
type DeletePDPContextResponse struct {
	Header Header

	Cause      Cause // mandatory
	Extensions []PrivateExtension
}

func (m DeletePDPContextResponse) Marshal() []byte {
	payload := m.Cause.Marshal()
	for _, ext := range m.Extensions {
		payload = append(payload, ext.Marshal()...)
	}

	h := m.Header
	h.MessageType = MessageTypeDeletePDPContextResponse
	return append(h.Marshal(len(payload)), payload...)
}

// UnmarshalDeletePDPContextResponse parses a Delete PDP Context
// Response following the common message algorithm (spec §4.3).
func UnmarshalDeletePDPContextResponse(b []byte) (DeletePDPContextResponse, error) {
	h, n, err := UnmarshalHeader(b)
	if err != nil {
		return DeletePDPContextResponse{}, errors.Wrap(err, "parsing header")
	}
	if err := checkMessageType(h, MessageTypeDeletePDPContextResponse); err != nil {
		return DeletePDPContextResponse{}, err
	}

	payload, err := slicePayload(h, n, b)
	if err != nil {
		return DeletePDPContextResponse{}, err
	}
	ies, err := decodeV1Payload(payload)
	if err != nil {
		return DeletePDPContextResponse{}, err
	}

	m := DeletePDPContextResponse{Header: h}
	haveCause := false
	for _, raw := range ies {
		switch raw.Type {
		case TypeCause:
			if haveCause {
				continue
			}
			v, err := unmarshalCause(raw.Payload)
			if err != nil {
				return DeletePDPContextResponse{}, errors.Wrap(err, "decoding Cause")
			}
			m.Cause = v
			haveCause = true
		case TypePrivateExtension:
			v, err := unmarshalPrivateExtension(raw.Payload)
			if err != nil {
				return DeletePDPContextResponse{}, errors.Wrap(err, "decoding PrivateExtension")
			}
			m.Extensions = append(m.Extensions, v)
		default:
		}
	}

	if !haveCause {
		return DeletePDPContextResponse{}, &ErrMandatoryIEMissing{Type: TypeCause}
	}
	return m, nil
}
