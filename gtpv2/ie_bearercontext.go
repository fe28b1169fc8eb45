package gtpv2

// BearerContext is the v2 Bearer Context grouped IE (type 93): a TLIV
// whose payload is itself a stream of child IEs (spec §4.1.2). The
// same shared stream decoder parses the payload; children are sorted
// into named fields by type only, and each decoded child keeps its own
// instance in its Instance field. Every F-TEID, whatever its instance,
// is appended to FTEID; for EBI, BearerQoS and Cause the first child of
// that type is kept and later ones are ignored, whatever their instance.
type BearerContext struct {
	Instance uint8

	EBI       *EBI // mandatory in practice, modeled as optional for malformed input tolerance
	BearerQoS *BearerQoS
	FTEID     []FTEID // S1-U/S5/S8 bearer F-TEIDs, distinguished by instance
	Cause     *Cause
}

func (b BearerContext) Marshal() []byte {
	var payload []byte
	if b.EBI != nil {
		payload = append(payload, b.EBI.Marshal()...)
	}
	if b.Cause != nil {
		payload = append(payload, b.Cause.Marshal()...)
	}
	for _, f := range b.FTEID {
		payload = append(payload, f.Marshal()...)
	}
	if b.BearerQoS != nil {
		payload = append(payload, b.BearerQoS.Marshal()...)
	}
	return marshalTLIV(TypeBearerContext, b.Instance, payload)
}

func unmarshalBearerContext(instance uint8, payload []byte) (BearerContext, error) {
	children, err := decodeV2IEStream(payload)
	if err != nil {
		return BearerContext{}, err
	}

	bc := BearerContext{Instance: instance}
	for _, raw := range children {
		switch raw.Type {
		case TypeEBI:
			if bc.EBI != nil {
				continue
			}
			v, err := unmarshalEBI(raw.Instance, raw.Payload)
			if err != nil {
				return BearerContext{}, err
			}
			bc.EBI = &v
		case TypeBearerQoS:
			if bc.BearerQoS != nil {
				continue
			}
			v, err := unmarshalBearerQoS(raw.Instance, raw.Payload)
			if err != nil {
				return BearerContext{}, err
			}
			bc.BearerQoS = &v
		case TypeFTEID:
			v, err := unmarshalFTEID(raw.Instance, raw.Payload)
			if err != nil {
				return BearerContext{}, err
			}
			bc.FTEID = append(bc.FTEID, v)
		case TypeCause:
			if bc.Cause != nil {
				continue
			}
			v, err := unmarshalCause(raw.Instance, raw.Payload)
			if err != nil {
				return BearerContext{}, err
			}
			bc.Cause = &v
		default:
			// unknown child slot: silently ignored (spec §4.3 step 4).
		}
	}

	return bc, nil
}
