// Command gtpdump decodes a single GTPv1 or GTPv2 message read from a
// file or stdin, as raw bytes or (with --hex) as hex text, and prints
// the decoded structure. It has no
// transport and no session state: it only decodes bytes already read
// from somewhere else.
package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/spf13/pflag"

	"github.com/mobilecore/gtp/gtpv1"
	"github.com/mobilecore/gtp/gtpv2"
)

var (
	flagFile = pflag.StringP("file", "f", "", "path to a file containing the raw message bytes (default: stdin)")
	flagHex  = pflag.BoolP("hex", "x", false, "treat the input as hex text instead of raw binary")
)

func main() {
	pflag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false})

	raw, err := readInput(*flagFile)
	if err != nil {
		logger.Fatal("reading input", "err", err)
	}

	b := raw
	if *flagHex {
		decoded, err := hex.DecodeString(strings.TrimSpace(string(raw)))
		if err != nil {
			logger.Fatal("decoding hex input", "err", err)
		}
		b = decoded
	}

	if len(b) == 0 {
		logger.Fatal("empty input")
	}

	name, summary, err := decode(b)
	if err != nil {
		logger.Error("decode failed", "err", err)
		os.Exit(1)
	}

	fmt.Println(color.GreenString(name))
	fmt.Println(summary)
}

func readInput(path string) ([]byte, error) {
	if path == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

// protocolVersion reads the version out of the first byte without
// committing to either package's header parser: both GTPv1 and GTPv2
// put a 3-bit version field in the top bits of the first octet (spec
// §3.2), so this only needs to look at one byte to route the rest.
func protocolVersion(b []byte) uint8 {
	return b[0] >> 5
}

func decode(b []byte) (name string, summary string, err error) {
	switch protocolVersion(b) {
	case 1:
		return decodeV1(b)
	case 2:
		return decodeV2(b)
	default:
		return "", "", fmt.Errorf("unrecognized protocol version in first byte 0x%02x", b[0])
	}
}

func decodeV1(b []byte) (string, string, error) {
	h, _, err := gtpv1.UnmarshalHeader(b)
	if err != nil {
		return "", "", fmt.Errorf("parsing gtpv1 header: %w", err)
	}

	switch h.MessageType {
	case gtpv1.MessageTypeDeletePDPContextRequest:
		m, err := gtpv1.UnmarshalDeletePDPContextRequest(b)
		return "GTPv1 DeletePDPContextRequest", dump(m), err
	case gtpv1.MessageTypeDeletePDPContextResponse:
		m, err := gtpv1.UnmarshalDeletePDPContextResponse(b)
		return "GTPv1 DeletePDPContextResponse", dump(m), err
	case gtpv1.MessageTypePDUNotificationRequest:
		m, err := gtpv1.UnmarshalPDUNotificationRequest(b)
		return "GTPv1 PDUNotificationRequest", dump(m), err
	default:
		return fmt.Sprintf("GTPv1 message type %d (header only)", h.MessageType), dump(h), nil
	}
}

func decodeV2(b []byte) (string, string, error) {
	h, _, err := gtpv2.UnmarshalHeader(b)
	if err != nil {
		return "", "", fmt.Errorf("parsing gtpv2 header: %w", err)
	}

	switch h.MessageType {
	case gtpv2.MessageTypeModifyAccessBearersRequest:
		m, err := gtpv2.UnmarshalModifyAccessBearersRequest(b)
		return "GTPv2 ModifyAccessBearersRequest", dump(m), err
	case gtpv2.MessageTypeModifyAccessBearersResponse:
		m, err := gtpv2.UnmarshalModifyAccessBearersResponse(b)
		return "GTPv2 ModifyAccessBearersResponse", dump(m), err
	case gtpv2.MessageTypeDeleteSessionRequest:
		m, err := gtpv2.UnmarshalDeleteSessionRequest(b)
		return "GTPv2 DeleteSessionRequest", dump(m), err
	case gtpv2.MessageTypeDeleteSessionResponse:
		m, err := gtpv2.UnmarshalDeleteSessionResponse(b)
		return "GTPv2 DeleteSessionResponse", dump(m), err
	case gtpv2.MessageTypeCreateBearerRequest:
		m, err := gtpv2.UnmarshalCreateBearerRequest(b)
		return "GTPv2 CreateBearerRequest", dump(m), err
	case gtpv2.MessageTypeCreateBearerResponse:
		m, err := gtpv2.UnmarshalCreateBearerResponse(b)
		return "GTPv2 CreateBearerResponse", dump(m), err
	case gtpv2.MessageTypeDeleteBearerRequest:
		m, err := gtpv2.UnmarshalDeleteBearerRequest(b)
		return "GTPv2 DeleteBearerRequest", dump(m), err
	case gtpv2.MessageTypeDeleteBearerResponse:
		m, err := gtpv2.UnmarshalDeleteBearerResponse(b)
		return "GTPv2 DeleteBearerResponse", dump(m), err
	default:
		return fmt.Sprintf("GTPv2 message type %d (header only)", h.MessageType), dump(h), nil
	}
}

func dump(v interface{}) string {
	return fmt.Sprintf("%+v", v)
}
