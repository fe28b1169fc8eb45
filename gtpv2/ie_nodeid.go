package gtpv2

import "github.com/mobilecore/gtp/ie"

// Node ID type discriminator values (spec §4.1.4 "variant-style IEs").
const (
	nodeIDTypeIPv4 = 0
	nodeIDTypeIPv6 = 1
)

// NodeID is the v2 Node Identifier IE (type 113): a tagged variant
// over an IPv4 or IPv6 address, the wire discriminator being an
// explicit type byte (spec §4.1.4).
type NodeID struct {
	Instance uint8

	IsIPv6 bool
	IPv4   [4]byte
	IPv6   [16]byte
}

func (n NodeID) Marshal() []byte {
	if n.IsIPv6 {
		payload := append([]byte{nodeIDTypeIPv6}, n.IPv6[:]...)
		return marshalTLIV(TypeNodeID, n.Instance, payload)
	}
	payload := append([]byte{nodeIDTypeIPv4}, n.IPv4[:]...)
	return marshalTLIV(TypeNodeID, n.Instance, payload)
}

func unmarshalNodeID(instance uint8, payload []byte) (NodeID, error) {
	if len(payload) < 1 {
		return NodeID{}, ie.InvalidLength(TypeNodeID)
	}
	switch payload[0] {
	case nodeIDTypeIPv4:
		if len(payload) != 5 {
			return NodeID{}, ie.InvalidLength(TypeNodeID)
		}
		n := NodeID{Instance: instance}
		copy(n.IPv4[:], payload[1:5])
		return n, nil
	case nodeIDTypeIPv6:
		if len(payload) != 17 {
			return NodeID{}, ie.InvalidLength(TypeNodeID)
		}
		n := NodeID{Instance: instance, IsIPv6: true}
		copy(n.IPv6[:], payload[1:17])
		return n, nil
	default:
		return NodeID{}, ie.Incorrect(TypeNodeID)
	}
}
