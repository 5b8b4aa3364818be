package wsdl

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"
)

// Parse unmarshals WSDL content and resolves it into a Document.
// url is recorded on the Document and used by callers as the endpoint
// fallback for ports without a soap:address.
func Parse(content []byte, url string) (*Document, error) {
	var defs wsdlDefinitions
	if err := xml.Unmarshal(content, &defs); err != nil {
		return nil, fmt.Errorf("failed to parse WSDL: %w", err)
	}
	if len(defs.Services) == 0 {
		return nil, fmt.Errorf("WSDL defines no services")
	}

	r := newResolver(&defs)
	doc := &Document{
		URL:      url,
		TargetNS: defs.TargetNS,
	}
	if doc.TargetNS == "" {
		for _, schema := range defs.Types.Schemas {
			if schema.TargetNS != "" {
				doc.TargetNS = schema.TargetNS
				break
			}
		}
	}

	for _, svc := range defs.Services {
		service := Service{Name: svc.Name}
		for _, port := range svc.Ports {
			p := Port{Name: port.Name}
			if port.Address != nil {
				p.Address = port.Address.Location
			}
			p.Operations = r.portOperations(port.Binding)
			service.Ports = append(service.Ports, p)
		}
		doc.Services = append(doc.Services, service)
	}

	return doc, nil
}

// resolver indexes the flat WSDL sections for qname lookups.
type resolver struct {
	defs      *wsdlDefinitions
	messages  map[string]wsdlMessage
	portTypes map[string]wsdlPortType
	bindings  map[string]wsdlBinding
	elements  map[string]xsdElement
	complex   map[string]xsdComplexType
	simple    map[string]xsdSimpleType
	// resolving guards against complexType cycles; a type referenced
	// while it is being expanded resolves to KindOpaque.
	resolving map[string]bool
}

func newResolver(defs *wsdlDefinitions) *resolver {
	r := &resolver{
		defs:      defs,
		messages:  make(map[string]wsdlMessage),
		portTypes: make(map[string]wsdlPortType),
		bindings:  make(map[string]wsdlBinding),
		elements:  make(map[string]xsdElement),
		complex:   make(map[string]xsdComplexType),
		simple:    make(map[string]xsdSimpleType),
		resolving: make(map[string]bool),
	}
	for _, m := range defs.Messages {
		r.messages[m.Name] = m
	}
	for _, pt := range defs.PortTypes {
		r.portTypes[pt.Name] = pt
	}
	for _, b := range defs.Bindings {
		r.bindings[b.Name] = b
	}
	for _, schema := range defs.Types.Schemas {
		for _, el := range schema.Elements {
			r.elements[el.Name] = el
		}
		for _, ct := range schema.ComplexTypes {
			r.complex[ct.Name] = ct
		}
		for _, st := range schema.SimpleTypes {
			r.simple[st.Name] = st
		}
	}
	return r
}

// portOperations resolves the operations reachable through a port's
// binding reference. Operations come from the binding (so HTTP-only
// bindings are skipped naturally) with input elements pulled from the
// matching portType operation's input message.
func (r *resolver) portOperations(bindingRef string) []Operation {
	binding, ok := r.bindings[localName(bindingRef)]
	if !ok {
		return nil
	}
	portType, ok := r.portTypes[localName(binding.Type)]
	if !ok {
		return nil
	}

	inputs := make(map[string]*wsdlParam)
	for _, op := range portType.Operations {
		inputs[op.Name] = op.Input
	}

	var ops []Operation
	for _, bop := range binding.Operations {
		op := Operation{Name: bop.Name}
		if bop.SoapOperation != nil {
			op.SOAPAction = bop.SoapOperation.SoapAction
		}
		if input, ok := inputs[bop.Name]; ok && input != nil {
			op.Inputs = r.messageElements(localName(input.Message))
		}
		ops = append(ops, op)
	}
	return ops
}

// messageElements expands a message into the operation's argument list.
// Document/literal messages carry one part referencing a wrapper
// element whose children are the arguments; RPC-style messages carry
// one typed part per argument.
func (r *resolver) messageElements(messageName string) []Element {
	msg, ok := r.messages[messageName]
	if !ok {
		return nil
	}

	if len(msg.Parts) == 1 && msg.Parts[0].Element != "" {
		wrapper, ok := r.elements[localName(msg.Parts[0].Element)]
		if !ok {
			return nil
		}
		t := r.resolveElementType(wrapper)
		if t.Kind == KindComplex {
			return t.Elements
		}
		// Wrapper resolved to a scalar: the element itself is the
		// single argument.
		return []Element{r.resolveElement(wrapper)}
	}

	var els []Element
	for _, part := range msg.Parts {
		if part.Element != "" {
			if el, ok := r.elements[localName(part.Element)]; ok {
				els = append(els, r.resolveElement(el))
				continue
			}
		}
		els = append(els, Element{
			Name:      part.Name,
			Type:      r.resolveTypeRef(part.Type),
			MinOccurs: 1,
			MaxOccurs: 1,
		})
	}
	return els
}

// resolveElement resolves one xsd:element into the semantic model.
func (r *resolver) resolveElement(el xsdElement) Element {
	if el.Ref != "" {
		if target, ok := r.elements[localName(el.Ref)]; ok {
			resolved := r.resolveElement(target)
			resolved.MinOccurs = parseOccurs(el.MinOccurs, 1)
			resolved.MaxOccurs = parseOccurs(el.MaxOccurs, 1)
			return resolved
		}
	}
	return Element{
		Name:      el.Name,
		Type:      r.resolveElementType(el),
		MinOccurs: parseOccurs(el.MinOccurs, 1),
		MaxOccurs: parseOccurs(el.MaxOccurs, 1),
	}
}

func (r *resolver) resolveElementType(el xsdElement) Type {
	if el.ComplexType != nil {
		return r.resolveComplex("", *el.ComplexType)
	}
	if el.Type != "" {
		return r.resolveTypeRef(el.Type)
	}
	return Type{Kind: KindOpaque, Name: el.Name}
}

// resolveTypeRef resolves a qname type reference. Names not declared in
// the document's schemas are treated as builtins, which covers the xsd
// namespace without tracking prefix declarations.
func (r *resolver) resolveTypeRef(qname string) Type {
	name := localName(qname)
	if name == "" {
		return Type{Kind: KindOpaque}
	}
	if ct, ok := r.complex[name]; ok {
		return r.resolveComplex(name, ct)
	}
	if st, ok := r.simple[name]; ok {
		if st.Restriction != nil && st.Restriction.Base != "" {
			return Type{Kind: KindBuiltin, Name: localName(st.Restriction.Base)}
		}
		return Type{Kind: KindBuiltin, Name: name}
	}
	return Type{Kind: KindBuiltin, Name: name}
}

func (r *resolver) resolveComplex(name string, ct xsdComplexType) Type {
	if name != "" {
		if r.resolving[name] {
			return Type{Kind: KindOpaque, Name: name}
		}
		r.resolving[name] = true
		defer delete(r.resolving, name)
	}

	seq := ct.Sequence
	if seq == nil {
		seq = ct.All
	}

	t := Type{Kind: KindComplex, Name: name}
	if seq != nil {
		for _, el := range seq.Elements {
			t.Elements = append(t.Elements, r.resolveElement(el))
		}
	}
	return t
}

func parseOccurs(s string, def int) int {
	switch s {
	case "":
		return def
	case "unbounded":
		return Unbounded
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

// localName strips any namespace prefix from a qname.
func localName(qname string) string {
	if idx := strings.LastIndex(qname, ":"); idx >= 0 {
		return qname[idx+1:]
	}
	return qname
}
