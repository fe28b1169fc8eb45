package gtpv2

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/mobilecore/gtp/ie"
	"github.com/pion/randutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// requireEqual dumps both sides with spew on mismatch: the nested IE
// structs here (BearerContext, ULI) are too deep for %+v to read well
// once a property test shrinks to a failing case.
func requireEqual(t *rapid.T, want, got interface{}) {
	if !assert.ObjectsAreEqual(want, got) {
		t.Fatalf("mismatch:\nwant: %s\ngot:  %s", spew.Sdump(want), spew.Sdump(got))
	}
}

// globalMathRandomGenerator seeds non-rapid-driven scalar values
// alongside rapid's own generators below.
var globalMathRandomGenerator = randutil.NewMathRandomGenerator()

func TestEBIRoundTripProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		e := EBI{
			Instance: uint8(rapid.IntRange(0, 15).Draw(t, "instance")),
			Value:    uint8(rapid.IntRange(0, 15).Draw(t, "value")),
		}
		wire := e.Marshal()

		// law 2/3: the 2-byte length field equals the bytes emitted
		// after offset 4.
		length := uint16(wire[1])<<8 | uint16(wire[2])
		assert.EqualValues(t, len(wire)-4, length)

		got, err := unmarshalEBI(e.Instance, wire[4:])
		require.NoError(t, err)
		assert.Equal(t, e, got)
	})
}

func TestCauseRoundTripPropertyWide(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		c := Cause{
			Instance: uint8(rapid.IntRange(0, 15).Draw(t, "instance")),
			Value:    uint8(rapid.IntRange(0, 255).Draw(t, "value")),
			PCE:      rapid.Bool().Draw(t, "pce"),
			BCE:      rapid.Bool().Draw(t, "bce"),
			CS:       rapid.Bool().Draw(t, "cs"),
		}
		if rapid.Bool().Draw(t, "with_offending") {
			c.HasOffendingIEType = true
			c.OffendingIEType = uint8(rapid.IntRange(0, 255).Draw(t, "offending_type"))
		}
		wire := c.Marshal()
		got, err := unmarshalCause(c.Instance, wire[4:])
		require.NoError(t, err)
		assert.Equal(t, c, got)
	})
}

func TestFTEIDRoundTripProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		f := FTEID{
			Instance:      uint8(rapid.IntRange(0, 15).Draw(t, "instance")),
			InterfaceType: uint8(rapid.IntRange(0, 63).Draw(t, "interface_type")),
			TEID:          globalMathRandomGenerator.Uint32(),
			HasIPv4:       rapid.Bool().Draw(t, "has_v4"),
			HasIPv6:       rapid.Bool().Draw(t, "has_v6"),
		}
		if f.HasIPv4 {
			for i := range f.IPv4 {
				f.IPv4[i] = byte(rapid.IntRange(0, 255).Draw(t, "ipv4_byte"))
			}
		}
		if f.HasIPv6 {
			for i := range f.IPv6 {
				f.IPv6[i] = byte(rapid.IntRange(0, 255).Draw(t, "ipv6_byte"))
			}
		}

		wire := f.Marshal()
		got, err := unmarshalFTEID(f.Instance, wire[4:])
		require.NoError(t, err)
		assert.Equal(t, f, got)
	})
}

func TestULIRoundTripPropertyTAIECGI(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		u := ULI{
			HasTAI: true,
			TAI: TAI{
				PLMN: ie.PLMN{MCC: rapid.IntRange(0, 999).Draw(t, "mcc"), MNC: rapid.IntRange(0, 99).Draw(t, "mnc")},
				TAC:  uint16(rapid.IntRange(0, 0xFFFF).Draw(t, "tac")),
			},
			HasECGI: true,
			ECGI: ECGI{
				PLMN: ie.PLMN{MCC: rapid.IntRange(0, 999).Draw(t, "ecgi_mcc"), MNC: rapid.IntRange(0, 99).Draw(t, "ecgi_mnc")},
				ECI:  uint32(rapid.IntRange(0, 0x0FFFFFFF).Draw(t, "eci")),
			},
		}
		wire := u.Marshal()
		got, err := unmarshalULI(u.Instance, wire[4:])
		require.NoError(t, err)
		requireEqual(t, u, got)
	})
}

// TestHeaderRoundTripProperty exercises universal laws 2 and 4: the
// declared length always equals the total emitted size minus the
// 4-byte mandatory prefix.
func TestHeaderRoundTripProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		h := Header{
			T:           rapid.Bool().Draw(t, "t"),
			MessageType: uint8(rapid.IntRange(0, 255).Draw(t, "message_type")),
			TEID:        globalMathRandomGenerator.Uint32(),
		}
		payloadLen := rapid.IntRange(0, 64).Draw(t, "payload_len")
		wire := h.Marshal(payloadLen)

		got, n, err := UnmarshalHeader(wire)
		require.NoError(t, err)
		assert.Equal(t, h.T, got.T)
		if h.T {
			assert.Equal(t, h.TEID, got.TEID)
		}
		assert.EqualValues(t, len(wire)+payloadLen-4, got.DeclaredLength)
		assert.Equal(t, h.MarshalSize(), n)
	})
}

func TestBearerContextRoundTripProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		ebi := EBI{Value: uint8(rapid.IntRange(0, 15).Draw(t, "ebi"))}
		qos := BearerQoS{
			QCI:           uint8(rapid.IntRange(0, 255).Draw(t, "qci")),
			MaxBitrateUL:  uint64(rapid.IntRange(0, 1<<30).Draw(t, "mbr_ul")),
			MaxBitrateDL:  uint64(rapid.IntRange(0, 1<<30).Draw(t, "mbr_dl")),
			GuarBitrateUL: uint64(rapid.IntRange(0, 1<<30).Draw(t, "gbr_ul")),
			GuarBitrateDL: uint64(rapid.IntRange(0, 1<<30).Draw(t, "gbr_dl")),
		}
		bc := BearerContext{EBI: &ebi, BearerQoS: &qos}

		wire := bc.Marshal()
		got, err := unmarshalBearerContext(bc.Instance, wire[4:])
		require.NoError(t, err)
		require.NotNil(t, got.EBI)
		require.NotNil(t, got.BearerQoS)
		requireEqual(t, ebi, *got.EBI)
		requireEqual(t, qos, *got.BearerQoS)
	})
}

func TestModifyAccessBearersRoundTripProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 4).Draw(t, "n")
		m := ModifyAccessBearersRequest{Header: Header{T: true, TEID: globalMathRandomGenerator.Uint32()}}
		for i := 0; i < n; i++ {
			ebi := EBI{Instance: uint8(i), Value: uint8(rapid.IntRange(0, 15).Draw(t, "ebi"))}
			m.BearerContexts = append(m.BearerContexts, BearerContext{Instance: uint8(i), EBI: &ebi})
		}

		wire := m.Marshal()
		got, err := UnmarshalModifyAccessBearersRequest(wire)
		require.NoError(t, err)
		require.Len(t, got.BearerContexts, n)
		for i := 0; i < n; i++ {
			assert.Equal(t, uint8(i), got.BearerContexts[i].Instance)
			assert.Equal(t, *m.BearerContexts[i].EBI, *got.BearerContexts[i].EBI)
		}
	})
}

// TestBufferShorterThanDeclaredLengthProperty exercises the negative
// scenario: truncating any wire message below its declared length must
// fail decode rather than silently under-read.
func TestBufferShorterThanDeclaredLengthProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		resp := ModifyAccessBearersResponse{Cause: Cause{Value: uint8(rapid.IntRange(0, 255).Draw(t, "cause"))}}
		wire := resp.Marshal()
		cut := rapid.IntRange(1, len(wire)-1).Draw(t, "cut")

		_, err := UnmarshalModifyAccessBearersResponse(wire[:len(wire)-cut])
		require.Error(t, err)
	})
}
