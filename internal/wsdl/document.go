// Package wsdl fetches and parses WSDL documents into a resolved
// service → port → operation tree suitable for schema generation.
package wsdl

import "encoding/xml"

// XML-mapped WSDL types. Namespace prefixes are ignored on purpose:
// encoding/xml matches on local names, which is what real-world WSDLs
// need given the zoo of wsdl/wsdl11/soap prefix conventions.
type wsdlDefinitions struct {
	XMLName   xml.Name       `xml:"definitions"`
	Name      string         `xml:"name,attr"`
	TargetNS  string         `xml:"targetNamespace,attr"`
	Types     wsdlTypes      `xml:"types"`
	Messages  []wsdlMessage  `xml:"message"`
	PortTypes []wsdlPortType `xml:"portType"`
	Bindings  []wsdlBinding  `xml:"binding"`
	Services  []wsdlService  `xml:"service"`
}

type wsdlTypes struct {
	Schemas []xsdSchema `xml:"schema"`
}

type xsdSchema struct {
	TargetNS     string           `xml:"targetNamespace,attr"`
	Elements     []xsdElement     `xml:"element"`
	ComplexTypes []xsdComplexType `xml:"complexType"`
	SimpleTypes  []xsdSimpleType  `xml:"simpleType"`
}

type xsdElement struct {
	Name        string          `xml:"name,attr"`
	Type        string          `xml:"type,attr"`
	Ref         string          `xml:"ref,attr"`
	MinOccurs   string          `xml:"minOccurs,attr"`
	MaxOccurs   string          `xml:"maxOccurs,attr"`
	Nillable    string          `xml:"nillable,attr"`
	ComplexType *xsdComplexType `xml:"complexType"`
}

type xsdComplexType struct {
	Name     string       `xml:"name,attr"`
	Sequence *xsdSequence `xml:"sequence"`
	All      *xsdSequence `xml:"all"`
}

type xsdSequence struct {
	Elements []xsdElement `xml:"element"`
}

type xsdSimpleType struct {
	Name        string          `xml:"name,attr"`
	Restriction *xsdRestriction `xml:"restriction"`
}

type xsdRestriction struct {
	Base string `xml:"base,attr"`
}

type wsdlMessage struct {
	Name  string     `xml:"name,attr"`
	Parts []wsdlPart `xml:"part"`
}

type wsdlPart struct {
	Name    string `xml:"name,attr"`
	Element string `xml:"element,attr"`
	Type    string `xml:"type,attr"`
}

type wsdlPortType struct {
	Name       string          `xml:"name,attr"`
	Operations []wsdlOperation `xml:"operation"`
}

type wsdlOperation struct {
	Name  string     `xml:"name,attr"`
	Input *wsdlParam `xml:"input"`
}

type wsdlParam struct {
	Message string `xml:"message,attr"`
}

type wsdlBinding struct {
	Name       string          `xml:"name,attr"`
	Type       string          `xml:"type,attr"`
	Operations []wsdlBindingOp `xml:"operation"`
}

type wsdlBindingOp struct {
	Name          string         `xml:"name,attr"`
	SoapOperation *soapOperation `xml:"operation"`
}

type soapOperation struct {
	SoapAction string `xml:"soapAction,attr"`
}

type wsdlService struct {
	Name  string     `xml:"name,attr"`
	Ports []wsdlPort `xml:"port"`
}

type wsdlPort struct {
	Name    string       `xml:"name,attr"`
	Binding string       `xml:"binding,attr"`
	Address *soapAddress `xml:"address"`
}

type soapAddress struct {
	Location string `xml:"location,attr"`
}

// Document is a resolved WSDL: bindings joined to port types, messages
// expanded into ordered input element lists, endpoints attached to ports.
type Document struct {
	// URL is the location the document was loaded from.
	URL string
	// TargetNS is the definitions target namespace, falling back to the
	// first schema target namespace when the definitions carry none.
	TargetNS string
	Services []Service
}

// Service groups the ports of one WSDL service element.
type Service struct {
	Name  string
	Ports []Port
}

// Port is a bound endpoint exposing a set of operations.
type Port struct {
	Name string
	// Address is the soap:address location, empty when the WSDL omits it.
	Address    string
	Operations []Operation
}

// Operation is one SOAP operation with its resolved input elements.
type Operation struct {
	Name       string
	SOAPAction string
	// Inputs holds the operation's request elements in declaration order.
	Inputs []Element
}

// Element is a named, typed, occurrence-constrained XSD element.
type Element struct {
	Name string
	Type Type
	// MinOccurs defaults to 1; zero marks the element optional.
	MinOccurs int
	// MaxOccurs defaults to 1; Unbounded marks an unlimited repeat.
	MaxOccurs int
}

// Unbounded is the MaxOccurs value for maxOccurs="unbounded".
const Unbounded = -1

// TypeKind discriminates resolved XSD types.
type TypeKind int

const (
	// KindBuiltin is an XSD primitive (xs:string, xs:int, ...) or a
	// simpleType reduced to its restriction base.
	KindBuiltin TypeKind = iota
	// KindComplex is a complexType with child elements.
	KindComplex
	// KindOpaque is anything unresolvable, including recursion cut
	// points. Consumers treat it as a plain string.
	KindOpaque
)

// Type is a resolved XSD type node.
type Type struct {
	Kind TypeKind
	// Name is the local type name, e.g. "int" or "CustomerRecord".
	Name string
	// Elements holds child elements for KindComplex.
	Elements []Element
}
