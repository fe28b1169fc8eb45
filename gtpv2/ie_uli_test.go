package gtpv2

import (
	"testing"

	"github.com/mobilecore/gtp/ie"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestULIFixture(t *testing.T) {
	// spec §8 scenario 3.
	u := ULI{
		HasTAI:  true,
		TAI:     TAI{PLMN: ie.PLMN{MCC: 262, MNC: 1}, TAC: 0x0BD9},
		HasECGI: true,
		ECGI:    ECGI{PLMN: ie.PLMN{MCC: 262, MNC: 1}, ECI: 28983298},
	}

	want := []byte{
		TypeULI, 0x00, 13, 0x00,
		0x18,
		0x62, 0xF2, 0x10, 0x0B, 0xD9,
		0x62, 0xF2, 0x10, 0x01, 0xBA, 0x40, 0x02,
	}
	assert.Equal(t, want, u.Marshal())

	got, err := unmarshalULI(0, want[4:])
	require.NoError(t, err)
	assert.Equal(t, u, got)
}
