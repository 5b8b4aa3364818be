package generator

import (
	"strings"
	"testing"
)

func TestEnvelope_SOAP12(t *testing.T) {
	got := Envelope("GetInfo", "http://example.com/ns", []string{"code"}, SOAP12)

	want := `<?xml version="1.0" encoding="utf-8"?>
<soap12:Envelope xmlns:soap12="http://www.w3.org/2003/05/soap-envelope">
  <soap12:Body>
    <GetInfo xmlns="http://example.com/ns">
      <code>{{ .Get "code" }}</code>
    </GetInfo>
  </soap12:Body>
</soap12:Envelope>`

	if got != want {
		t.Errorf("envelope mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestEnvelope_SOAP11(t *testing.T) {
	got := Envelope("Ping", "http://example.com/ns", nil, SOAP11)

	if !strings.Contains(got, `<soap:Envelope xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/">`) {
		t.Errorf("expected SOAP 1.1 envelope namespace, got:\n%s", got)
	}
	if strings.Contains(got, "soap12") {
		t.Errorf("SOAP 1.1 envelope must not use the soap12 prefix:\n%s", got)
	}
}

func TestEnvelope_NoNamespaceLeavesOperationUnqualified(t *testing.T) {
	got := Envelope("Ping", "", []string{"x"}, SOAP12)

	if !strings.Contains(got, "<Ping>\n") {
		t.Errorf("expected unqualified <Ping> element, got:\n%s", got)
	}
	if strings.Contains(got, "xmlns=\"\"") {
		t.Errorf("empty namespace must not render an xmlns attribute:\n%s", got)
	}
}

func TestEnvelope_MultipleArgumentsKeepOrder(t *testing.T) {
	got := Envelope("Create", "http://example.com/ns", []string{"first", "second"}, SOAP12)

	first := strings.Index(got, `<first>{{ .Get "first" }}</first>`)
	second := strings.Index(got, `<second>{{ .Get "second" }}</second>`)
	if first < 0 || second < 0 {
		t.Fatalf("expected both argument placeholders, got:\n%s", got)
	}
	if first > second {
		t.Errorf("argument order not preserved:\n%s", got)
	}
}

func TestEnvelope_ZeroArguments(t *testing.T) {
	got := Envelope("ListAll", "http://example.com/ns", nil, SOAP12)

	if !strings.Contains(got, "<ListAll xmlns=\"http://example.com/ns\">\n    </ListAll>") {
		t.Errorf("expected empty operation element, got:\n%s", got)
	}
}
