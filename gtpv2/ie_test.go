package gtpv2

import (
	"testing"

	"github.com/mobilecore/gtp/ie"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCauseRoundTripWithOffendingIE(t *testing.T) {
	c := Cause{Instance: 1, Value: 72, PCE: true, HasOffendingIEType: true, OffendingIEType: 87}
	got, err := unmarshalCause(c.Instance, c.Marshal()[4:])
	require.NoError(t, err)
	assert.Equal(t, c, got)
}

func TestFTEIDRoundTripIPv4Only(t *testing.T) {
	f := FTEID{InterfaceType: 6, TEID: 0xAABBCCDD, HasIPv4: true, IPv4: [4]byte{10, 0, 0, 1}}
	got, err := unmarshalFTEID(0, f.Marshal()[4:])
	require.NoError(t, err)
	assert.Equal(t, f, got)
}

func TestFTEIDRejectsMismatchedAddressLength(t *testing.T) {
	_, err := unmarshalFTEID(0, []byte{0x80, 0, 0, 0, 0, 1, 2, 3})
	assert.True(t, ie.IsIncorrect(err))
}

func TestBearerQoSRoundTrip(t *testing.T) {
	q := BearerQoS{
		PriorityLevel: 9, PCI: true, PVI: true, QCI: 8,
		MaxBitrateUL: 100_000_000, MaxBitrateDL: 200_000_000,
		GuarBitrateUL: 50_000_000, GuarBitrateDL: 90_000_000,
	}
	got, err := unmarshalBearerQoS(0, q.Marshal()[4:])
	require.NoError(t, err)
	assert.Equal(t, q, got)
}

func TestARPRoundTrip(t *testing.T) {
	a := ARP{PCI: true, PriorityLevel: 11, PVI: true}
	got, err := unmarshalARP(0, a.Marshal()[4:])
	require.NoError(t, err)
	assert.Equal(t, a, got)
}

func TestNodeIDRoundTripIPv6(t *testing.T) {
	n := NodeID{IsIPv6: true, IPv6: [16]byte{0x20, 0x01, 0x0d, 0xb8}}
	got, err := unmarshalNodeID(0, n.Marshal()[4:])
	require.NoError(t, err)
	assert.Equal(t, n, got)
}

func TestIndicationMissingTailReadsCleared(t *testing.T) {
	ind := Indication{Bits: []byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00}} // 6 octets, shorter than a full 10+
	assert.False(t, ind.SGWCI())                                        // octet 7 absent: cleared
}

func TestIndicationNamedBits(t *testing.T) {
	var ind Indication
	ind.SetBit(1, 1, true) // DAF
	ind.SetBit(7, 6, true) // SGWCI
	assert.True(t, ind.DAF())
	assert.True(t, ind.SGWCI())
	assert.False(t, ind.DTF())
}

func TestDecodeV2IEStreamInstanceDisambiguation(t *testing.T) {
	f0 := FTEID{Instance: 0, InterfaceType: 1, TEID: 1}.Marshal()
	f1 := FTEID{Instance: 1, InterfaceType: 2, TEID: 2}.Marshal()
	ies, err := decodeV2IEStream(append(append([]byte{}, f0...), f1...))
	require.NoError(t, err)
	require.Len(t, ies, 2)
	assert.Equal(t, uint8(0), ies[0].Instance)
	assert.Equal(t, uint8(1), ies[1].Instance)
}

func TestBearerContextNestedDecode(t *testing.T) {
	ebi := EBI{Value: 5}
	qos := BearerQoS{QCI: 9, MaxBitrateUL: 1, MaxBitrateDL: 1, GuarBitrateUL: 1, GuarBitrateDL: 1}
	bc := BearerContext{EBI: &ebi, BearerQoS: &qos}

	got, err := unmarshalBearerContext(0, bc.Marshal()[4:])
	require.NoError(t, err)
	require.NotNil(t, got.EBI)
	require.NotNil(t, got.BearerQoS)
	assert.Equal(t, ebi, *got.EBI)
	assert.Equal(t, qos, *got.BearerQoS)
}
