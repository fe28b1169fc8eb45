package gtpv1

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewExtensionValidatesContentLength(t *testing.T) {
	_, err := NewExtension(ExtHeaderTypeUDPPort, []byte{0x01, 0x02, 0x03})
	assert.ErrorIs(t, err, errExtensionContentLength)

	ext, err := NewExtension(ExtHeaderTypeUDPPort, []byte{0x01, 0x02})
	require.NoError(t, err)
	assert.False(t, ext.Reserved)
	assert.Equal(t, 4, ext.marshalSize())
}

func TestDecodeExtensionChainSingleLink(t *testing.T) {
	ext, err := NewExtension(ExtHeaderTypePDUSessionContainer, []byte{0xAA, 0xBB})
	require.NoError(t, err)
	wire := ext.marshal() // trailing next-type byte left at 0 (sentinel)

	exts, n, err := decodeExtensionChain(ext.Type, wire)
	require.NoError(t, err)
	assert.Equal(t, len(wire), n)
	require.Len(t, exts, 1)
	assert.Equal(t, ext.Type, exts[0].Type)
	assert.Equal(t, ext.Content, exts[0].Content)
	assert.False(t, exts[0].Reserved)
}

func TestDecodeExtensionChainUnknownTypeStopsAndMarksReserved(t *testing.T) {
	// type 0x99 is not in knownExtHeaderTypes; one link's worth of
	// bytes (length unit 1 -> 4 bytes: length byte + 2 content + next).
	wire := []byte{0x01, 0xCA, 0xFE, 0x00}
	exts, n, err := decodeExtensionChain(0x99, wire)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	require.Len(t, exts, 1)
	assert.True(t, exts[0].Reserved)
	assert.Equal(t, []byte{0xCA, 0xFE}, exts[0].Content)
}

func TestDecodeExtensionChainNoneIsEmpty(t *testing.T) {
	exts, n, err := decodeExtensionChain(extHeaderTypeNone, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.Empty(t, exts)
}

func TestDecodeExtensionChainTooShort(t *testing.T) {
	_, _, err := decodeExtensionChain(ExtHeaderTypeUDPPort, []byte{0x02, 0x01})
	assert.ErrorIs(t, err, errExtensionChainTooShort)
}
