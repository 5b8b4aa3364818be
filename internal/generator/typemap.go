// Package generator turns resolved WSDL documents into StepZen GraphQL
// schema definitions.
package generator

import (
	"fmt"
	"strings"

	"github.com/shankar0909/stepzen-gql-soap/internal/wsdl"
)

// TypeRegistry accumulates named GraphQL type declarations for one
// schema-generation pass. Declarations keep insertion order so repeated
// runs over the same WSDL produce byte-identical output.
type TypeRegistry struct {
	order []string
	decls map[string]string
}

// NewTypeRegistry creates an empty registry.
func NewTypeRegistry() *TypeRegistry {
	return &TypeRegistry{decls: make(map[string]string)}
}

// MapType converts an XSD type into a GraphQL type expression. Scalars
// map to non-null builtins; complex types are registered under a name
// derived from hint and referenced by that name. The mapper never
// fails: anything unrecognized becomes String!.
func (r *TypeRegistry) MapType(t wsdl.Type, hint string) string {
	switch t.Kind {
	case wsdl.KindBuiltin:
		return mapBuiltin(t.Name)
	case wsdl.KindComplex:
		return r.registerComplex(t, hint)
	default:
		return "String!"
	}
}

func mapBuiltin(xsdName string) string {
	name := strings.ToLower(xsdName)
	switch {
	case strings.Contains(name, "int"):
		return "Int!"
	case strings.Contains(name, "float"), strings.Contains(name, "double"), strings.Contains(name, "decimal"):
		return "Float!"
	case strings.Contains(name, "bool"):
		return "Boolean!"
	}
	return "String!"
}

// registerComplex maps every child element, then stores the composed
// declaration under a collision-free name and returns that name.
func (r *TypeRegistry) registerComplex(t wsdl.Type, hint string) string {
	if hint == "" {
		hint = "AutoType"
	}

	fields := make([]string, 0, len(t.Elements))
	for _, el := range t.Elements {
		fieldType := r.MapType(el.Type, el.Name)
		if el.MinOccurs == 0 {
			fieldType = strings.TrimSuffix(fieldType, "!")
		}
		if el.MaxOccurs == wsdl.Unbounded || el.MaxOccurs > 1 {
			fieldType = "[" + strings.TrimSuffix(fieldType, "!") + "]!"
		}
		fields = append(fields, el.Name+": "+fieldType)
	}

	name := hint
	for counter := 1; ; counter++ {
		if _, exists := r.decls[name]; !exists {
			break
		}
		name = fmt.Sprintf("%s%d", hint, counter)
	}

	r.order = append(r.order, name)
	r.decls[name] = "type " + name + " {\n  " + strings.Join(fields, "\n  ") + "\n}"
	return name
}

// Declarations returns all registered type declarations in insertion
// order.
func (r *TypeRegistry) Declarations() []string {
	decls := make([]string, len(r.order))
	for i, name := range r.order {
		decls[i] = r.decls[name]
	}
	return decls
}
