package gtpv1

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeaderFixtureOptionalAreaNoExtensions(t *testing.T) {
	// spec §8 scenario 6: optional area present, no extension chain,
	// SQN=0x07E7, N-PDU=0 -> 12-byte header, flags byte 0x32, trailing
	// sentinel 0x00. See DESIGN.md for the flags-byte/label reading.
	h := Header{
		ProtocolType:   ProtocolTypeGTP,
		S:              true,
		MessageType:    0xFF,
		SequenceNumber: 0x07E7,
	}

	out := h.Marshal(0)
	require.Len(t, out, 12)
	assert.Equal(t, byte(0x32), out[0])
	assert.Equal(t, []byte{0x07, 0xE7}, out[8:10])
	assert.Equal(t, byte(0x00), out[10])
	assert.Equal(t, byte(0x00), out[11])

	got, n, err := UnmarshalHeader(out)
	require.NoError(t, err)
	assert.Equal(t, 12, n)
	assert.Equal(t, h.SequenceNumber, got.SequenceNumber)
	assert.True(t, got.S)
	assert.False(t, got.E)
	assert.False(t, got.PN)
	assert.Empty(t, got.Extensions)
}

func TestHeaderNoOptionalArea(t *testing.T) {
	h := Header{ProtocolType: ProtocolTypeGTP, MessageType: 0x10, TEID: 0xAABBCCDD}
	out := h.Marshal(4)
	require.Len(t, out, 8)
	assert.Equal(t, uint16(4), uint16(out[2])<<8|uint16(out[3]))

	got, n, err := UnmarshalHeader(out)
	require.NoError(t, err)
	assert.Equal(t, 8, n)
	assert.Equal(t, h.TEID, got.TEID)
	assert.False(t, got.hasOptionalArea())
}

func TestHeaderRoundTripWithExtensionChain(t *testing.T) {
	ext1, err := NewExtension(ExtHeaderTypeUDPPort, []byte{0x12, 0x34})
	require.NoError(t, err)
	ext2, err := NewExtension(ExtHeaderTypePDUSessionContainer, []byte{0x00, 0x01})
	require.NoError(t, err)

	h := Header{
		ProtocolType: ProtocolTypeGTP,
		E:            true,
		MessageType:  0xFF,
		Extensions:   []Extension{ext1, ext2},
	}

	out := h.Marshal(0)
	got, n, err := UnmarshalHeader(out)
	require.NoError(t, err)
	assert.Equal(t, len(out), n)
	require.Len(t, got.Extensions, 2)
	assert.Equal(t, ExtHeaderTypeUDPPort, int(got.Extensions[0].Type))
	assert.Equal(t, []byte{0x12, 0x34}, got.Extensions[0].Content)
	assert.Equal(t, ExtHeaderTypePDUSessionContainer, int(got.Extensions[1].Type))
	assert.Equal(t, []byte{0x00, 0x01}, got.Extensions[1].Content)
}

func TestHeaderSizeTooSmall(t *testing.T) {
	_, _, err := UnmarshalHeader([]byte{0x30, 0xFF})
	assert.ErrorIs(t, err, HeaderSizeTooSmall())
}
