package generator

import (
	"fmt"
	"strings"
)

// SOAPVersion selects the envelope namespace and prefix.
type SOAPVersion string

const (
	// SOAP11 uses the classic envelope namespace with prefix "soap".
	SOAP11 SOAPVersion = "1.1"
	// SOAP12 uses the 2003 envelope namespace with prefix "soap12".
	SOAP12 SOAPVersion = "1.2"
)

const (
	soap11NS = "http://schemas.xmlsoap.org/soap/envelope/"
	soap12NS = "http://www.w3.org/2003/05/soap-envelope"
)

// Envelope renders the SOAP request body for one operation. Each
// argument becomes an element holding a StepZen named-parameter lookup
// that the @rest execution layer resolves at request time. The
// operation element is namespace-qualified only when ns is non-empty.
func Envelope(operation, ns string, args []string, version SOAPVersion) string {
	prefix, envNS := "soap", soap11NS
	if version == SOAP12 {
		prefix, envNS = "soap12", soap12NS
	}

	opOpen := fmt.Sprintf("<%s>", operation)
	if ns != "" {
		opOpen = fmt.Sprintf(`<%s xmlns="%s">`, operation, ns)
	}

	var b strings.Builder
	b.WriteString("<?xml version=\"1.0\" encoding=\"utf-8\"?>\n")
	fmt.Fprintf(&b, "<%s:Envelope xmlns:%s=\"%s\">\n", prefix, prefix, envNS)
	fmt.Fprintf(&b, "  <%s:Body>\n", prefix)
	b.WriteString("    " + opOpen + "\n")
	for _, arg := range args {
		fmt.Fprintf(&b, "      <%s>{{ .Get \"%s\" }}</%s>\n", arg, arg, arg)
	}
	fmt.Fprintf(&b, "    </%s>\n", operation)
	fmt.Fprintf(&b, "  </%s:Body>\n", prefix)
	fmt.Fprintf(&b, "</%s:Envelope>", prefix)
	return b.String()
}
