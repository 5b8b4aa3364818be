package generator

import (
	"fmt"
	"strings"
)

// Field renders one Query field backed by a SOAP call: the field
// signature followed by a @rest directive carrying the endpoint, the
// templated envelope as the POST body, and an xml2json transform
// rooted at the SOAP Envelope element.
func Field(opName string, argsSignature []string, envelope, endpoint string) string {
	signature := opName
	if len(argsSignature) > 0 {
		signature = fmt.Sprintf("%s(%s)", opName, strings.Join(argsSignature, ", "))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "  %s : JSON\n", signature)
	b.WriteString("    @rest(\n")
	fmt.Fprintf(&b, "      endpoint: %q\n", endpoint)
	b.WriteString("      method: POST\n")
	b.WriteString("      headers: [\n")
	b.WriteString("        {name: \"Content-Type\", value: \"text/xml; charset=utf-8\"}\n")
	b.WriteString("      ]\n")
	b.WriteString("      postbody: \"\"\"\n")
	b.WriteString(indent(envelope, "        "))
	b.WriteString("\n      \"\"\"\n")
	b.WriteString("      transforms: [{pathpattern: \"[]\", editor: \"xml2json\"}]\n")
	b.WriteString("      resultroot: \"Envelope\"\n")
	b.WriteString("    )")
	return b.String()
}

// indent prefixes every non-empty line, keeping blank lines blank so
// the triple-quoted SDL literal stays clean.
func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n")
}
