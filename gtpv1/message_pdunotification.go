package gtpv1

import "github.com/pkg/errors"

// PDUNotificationRequest is sent by a GGSN to an SGSN to request that
// a PDP context be re-established for a T-PDU that arrived for a
// dormant subscriber (3GPP TS 29.060 table 42).
type PDUNotificationRequest struct {
	Header Header

	IMSI             IMSI           // mandatory
	TEIDControlPlane TEID           // mandatory
	EndUserAddress   EndUserAddress // mandatory
	APN              AccessPointName // mandatory
	Extensions       []PrivateExtension
}

func (m PDUNotificationRequest) Marshal() []byte {
	payload := m.IMSI.Marshal()
	payload = append(payload, m.TEIDControlPlane.Marshal()...)
	payload = append(payload, m.EndUserAddress.Marshal()...)
	payload = append(payload, m.APN.Marshal()...)
	for _, ext := range m.Extensions {
		payload = append(payload, ext.Marshal()...)
	}

	h := m.Header
	h.MessageType = MessageTypePDUNotificationRequest
	return append(h.Marshal(len(payload)), payload...)
}

// UnmarshalPDUNotificationRequest parses a PDU Notification Request
// following the common message algorithm (spec §4.3).
func UnmarshalPDUNotificationRequest(b []byte) (PDUNotificationRequest, error) {
	h, n, err := UnmarshalHeader(b)
	if err != nil {
		return PDUNotificationRequest{}, errors.Wrap(err, "parsing header")
	}
	if err := checkMessageType(h, MessageTypePDUNotificationRequest); err != nil {
		return PDUNotificationRequest{}, err
	}

	payload, err := slicePayload(h, n, b)
	if err != nil {
		return PDUNotificationRequest{}, err
	}
	ies, err := decodeV1Payload(payload)
	if err != nil {
		return PDUNotificationRequest{}, err
	}

	m := PDUNotificationRequest{Header: h}
	var haveIMSI, haveTEID, haveEUA, haveAPN bool

	for _, raw := range ies {
		switch raw.Type {
		case TypeIMSI:
			if haveIMSI {
				continue
			}
			v, err := unmarshalIMSI(raw.Payload)
			if err != nil {
				return PDUNotificationRequest{}, errors.Wrap(err, "decoding IMSI")
			}
			m.IMSI = v
			haveIMSI = true
		case TypeTEIDControlPlane:
			if haveTEID {
				continue
			}
			v, err := unmarshalTEID(TypeTEIDControlPlane, raw.Payload)
			if err != nil {
				return PDUNotificationRequest{}, errors.Wrap(err, "decoding TEIDControlPlane")
			}
			m.TEIDControlPlane = v
			haveTEID = true
		case TypeEndUserAddress:
			if haveEUA {
				continue
			}
			v, err := unmarshalEndUserAddress(raw.Payload)
			if err != nil {
				return PDUNotificationRequest{}, errors.Wrap(err, "decoding EndUserAddress")
			}
			m.EndUserAddress = v
			haveEUA = true
		case TypeAccessPointName:
			if haveAPN {
				continue
			}
			v, err := unmarshalAccessPointName(raw.Payload)
			if err != nil {
				return PDUNotificationRequest{}, errors.Wrap(err, "decoding AccessPointName")
			}
			m.APN = v
			haveAPN = true
		case TypePrivateExtension:
			v, err := unmarshalPrivateExtension(raw.Payload)
			if err != nil {
				return PDUNotificationRequest{}, errors.Wrap(err, "decoding PrivateExtension")
			}
			m.Extensions = append(m.Extensions, v)
		default:
		}
	}

	switch {
	case !haveIMSI:
		return PDUNotificationRequest{}, &ErrMandatoryIEMissing{Type: TypeIMSI}
	case !haveTEID:
		return PDUNotificationRequest{}, &ErrMandatoryIEMissing{Type: TypeTEIDControlPlane}
	case !haveEUA:
		return PDUNotificationRequest{}, &ErrMandatoryIEMissing{Type: TypeEndUserAddress}
	case !haveAPN:
		return PDUNotificationRequest{}, &ErrMandatoryIEMissing{Type: TypeAccessPointName}
	}
	return m, nil
}
