package gtpv2

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModifyAccessBearersRequestRoundTrip(t *testing.T) {
	// spec §8 scenario 4: two BearerContext IEs at instances 0 and 1,
	// each carrying EBI and BearerQoS.
	ebi0, ebi1 := EBI{Instance: 0, Value: 5}, EBI{Instance: 0, Value: 6}
	qos0 := BearerQoS{QCI: 8, MaxBitrateUL: 1000, MaxBitrateDL: 2000, GuarBitrateUL: 500, GuarBitrateDL: 900}
	qos1 := BearerQoS{QCI: 9, MaxBitrateUL: 1500, MaxBitrateDL: 2500, GuarBitrateUL: 700, GuarBitrateDL: 1100}

	m := ModifyAccessBearersRequest{
		Header: Header{T: true, TEID: 0xCAFEBABE},
		BearerContexts: []BearerContext{
			{Instance: 0, EBI: &ebi0, BearerQoS: &qos0},
			{Instance: 1, EBI: &ebi1, BearerQoS: &qos1},
		},
	}

	got, err := UnmarshalModifyAccessBearersRequest(m.Marshal())
	require.NoError(t, err)
	require.Len(t, got.BearerContexts, 2)
	assert.Equal(t, uint8(0), got.BearerContexts[0].Instance)
	assert.Equal(t, uint8(1), got.BearerContexts[1].Instance)
	assert.Equal(t, ebi0, *got.BearerContexts[0].EBI)
	assert.Equal(t, qos1, *got.BearerContexts[1].BearerQoS)
}

func TestModifyAccessBearersRequestMissingMandatory(t *testing.T) {
	h := Header{MessageType: MessageTypeModifyAccessBearersRequest}
	_, err := UnmarshalModifyAccessBearersRequest(h.Marshal(0))
	var missing *ErrMandatoryIEMissing
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, uint8(TypeBearerContext), missing.Type)
}

func TestModifyAccessBearersResponseRoundTrip(t *testing.T) {
	m := ModifyAccessBearersResponse{Cause: Cause{Value: 16}}
	got, err := UnmarshalModifyAccessBearersResponse(m.Marshal())
	require.NoError(t, err)
	assert.Equal(t, m.Cause, got.Cause)
}

func TestDeleteSessionRoundTrip(t *testing.T) {
	req := DeleteSessionRequest{Header: Header{T: true, TEID: 1}, LinkedEBI: EBI{Value: 5}}
	got, err := UnmarshalDeleteSessionRequest(req.Marshal())
	require.NoError(t, err)
	assert.Equal(t, req.LinkedEBI, got.LinkedEBI)

	resp := DeleteSessionResponse{Cause: Cause{Value: 16}}
	gotResp, err := UnmarshalDeleteSessionResponse(resp.Marshal())
	require.NoError(t, err)
	assert.Equal(t, resp.Cause, gotResp.Cause)
}

func TestCreateBearerRoundTrip(t *testing.T) {
	ebi := EBI{Value: 6}
	req := CreateBearerRequest{LinkedEBI: EBI{Value: 5}, BearerContexts: []BearerContext{{EBI: &ebi}}}
	got, err := UnmarshalCreateBearerRequest(req.Marshal())
	require.NoError(t, err)
	assert.Equal(t, req.LinkedEBI, got.LinkedEBI)
	require.Len(t, got.BearerContexts, 1)

	resp := CreateBearerResponse{Cause: Cause{Value: 16}}
	gotResp, err := UnmarshalCreateBearerResponse(resp.Marshal())
	require.NoError(t, err)
	assert.Equal(t, resp.Cause, gotResp.Cause)
}

func TestDeleteBearerRoundTrip(t *testing.T) {
	req := DeleteBearerRequest{EBIs: []EBI{{Value: 5}, {Value: 6}}}
	got, err := UnmarshalDeleteBearerRequest(req.Marshal())
	require.NoError(t, err)
	assert.Equal(t, req.EBIs, got.EBIs)

	resp := DeleteBearerResponse{Cause: Cause{Value: 16}, EBIs: []EBI{{Value: 5}}}
	gotResp, err := UnmarshalDeleteBearerResponse(resp.Marshal())
	require.NoError(t, err)
	assert.Equal(t, resp.Cause, gotResp.Cause)
	assert.Equal(t, resp.EBIs, gotResp.EBIs)
}

func TestIncorrectMessageType(t *testing.T) {
	resp := DeleteSessionResponse{Cause: Cause{Value: 16}}
	_, err := UnmarshalDeleteSessionRequest(resp.Marshal())
	var wrong *ErrIncorrectMessageType
	require.ErrorAs(t, err, &wrong)
}

func TestBufferShorterThanDeclaredLength(t *testing.T) {
	resp := DeleteSessionResponse{Cause: Cause{Value: 16}}
	wire := resp.Marshal()
	_, err := UnmarshalDeleteSessionResponse(wire[:len(wire)-1])
	var format *ErrInvalidMessageFormat
	require.ErrorAs(t, err, &format)
}
