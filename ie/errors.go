// Package ie holds the wire-level primitives shared by the GTPv1 and
// GTPv2 information-element codecs: TBCD digit packing, PLMN (MCC/MNC)
// packing, APN/FQDN label encoding, and the two IE-level error classes
// both protocol families raise.
package ie

import (
	"errors"
	"fmt"
)

// errInvalidLength and errIncorrect are the two IE-level error classes
// from spec §7. Callers compare against these with errors.Is; the
// offending type code travels along in the wrapped message so it can
// still be read back out with fmt.Sprintf or logged directly.
var (
	errInvalidLength = errors.New("ie: invalid length")
	errIncorrect     = errors.New("ie: incorrect")
)

// InvalidLength reports that a buffer was shorter than the IE's
// declared or minimum length.
func InvalidLength(ieType uint8) error {
	return fmt.Errorf("%w: type %d", errInvalidLength, ieType)
}

// Incorrect reports that an IE's length and tag were plausible but a
// sub-field failed structural validation (bad discriminator, an
// impossible length/shape combination, ...).
func Incorrect(ieType uint8) error {
	return fmt.Errorf("%w: type %d", errIncorrect, ieType)
}

// IsInvalidLength reports whether err is (or wraps) an InvalidLength error.
func IsInvalidLength(err error) bool { return errors.Is(err, errInvalidLength) }

// IsIncorrect reports whether err is (or wraps) an Incorrect error.
func IsIncorrect(err error) bool { return errors.Is(err, errIncorrect) }
