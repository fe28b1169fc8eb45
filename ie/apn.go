package ie

import "strings"

// EncodeLabels packs a dot-separated name into RFC 1035 length-prefixed
// labels (spec §3.1 "APN encoding" / "FQDN encoding"): each label is
// preceded by a single length byte, no trailing root label.
func EncodeLabels(name string) []byte {
	name = strings.TrimSuffix(name, ".")
	if name == "" {
		return nil
	}
	labels := strings.Split(name, ".")
	out := make([]byte, 0, len(name)+len(labels))
	for _, l := range labels {
		out = append(out, byte(len(l)))
		out = append(out, l...)
	}
	return out
}

// DecodeAPNLabels unpacks length-prefixed labels back into a
// dot-separated APN, with no trailing dot.
func DecodeAPNLabels(b []byte) string {
	return decodeLabels(b, false)
}

// DecodeFQDNLabels unpacks length-prefixed labels back into a
// dot-separated FQDN, preserving the trailing dot the decoded form
// carries per spec §3.1.
func DecodeFQDNLabels(b []byte) string {
	return decodeLabels(b, true)
}

func decodeLabels(b []byte, trailingDot bool) string {
	var sb strings.Builder
	for i := 0; i < len(b); {
		n := int(b[i])
		i++
		if i+n > len(b) {
			n = len(b) - i
		}
		sb.Write(b[i : i+n])
		i += n
		if i < len(b) || trailingDot {
			sb.WriteByte('.')
		}
	}
	return sb.String()
}
