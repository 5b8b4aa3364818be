package generator

import (
	"strings"
	"testing"

	"github.com/shankar0909/stepzen-gql-soap/internal/wsdl"
)

func TestMapType_Builtins(t *testing.T) {
	tests := []struct {
		xsdName string
		want    string
	}{
		{"int", "Int!"},
		{"integer", "Int!"},
		{"unsignedInt", "Int!"},
		{"long", "String!"},
		{"float", "Float!"},
		{"double", "Float!"},
		{"decimal", "Float!"},
		{"boolean", "Boolean!"},
		{"bool", "Boolean!"},
		{"string", "String!"},
		{"dateTime", "String!"},
		{"base64Binary", "String!"},
	}

	for _, tt := range tests {
		t.Run(tt.xsdName, func(t *testing.T) {
			r := NewTypeRegistry()
			got := r.MapType(wsdl.Type{Kind: wsdl.KindBuiltin, Name: tt.xsdName}, "hint")
			if got != tt.want {
				t.Errorf("MapType(%q) = %q, want %q", tt.xsdName, got, tt.want)
			}
		})
	}
}

func TestMapType_OpaqueFallsBackToString(t *testing.T) {
	r := NewTypeRegistry()
	got := r.MapType(wsdl.Type{Kind: wsdl.KindOpaque, Name: "whatever"}, "hint")
	if got != "String!" {
		t.Errorf("expected String! for opaque type, got %q", got)
	}
}

func TestMapType_ComplexRegistersAndReturnsName(t *testing.T) {
	r := NewTypeRegistry()
	complex := wsdl.Type{
		Kind: wsdl.KindComplex,
		Elements: []wsdl.Element{
			{Name: "id", Type: wsdl.Type{Kind: wsdl.KindBuiltin, Name: "int"}, MinOccurs: 1, MaxOccurs: 1},
			{Name: "label", Type: wsdl.Type{Kind: wsdl.KindBuiltin, Name: "string"}, MinOccurs: 1, MaxOccurs: 1},
		},
	}

	got := r.MapType(complex, "Record")
	if got != "Record" {
		t.Errorf("expected type reference Record, got %q", got)
	}

	decls := r.Declarations()
	if len(decls) != 1 {
		t.Fatalf("expected 1 declaration, got %d", len(decls))
	}
	want := "type Record {\n  id: Int!\n  label: String!\n}"
	if decls[0] != want {
		t.Errorf("declaration mismatch:\ngot:\n%s\nwant:\n%s", decls[0], want)
	}
}

func TestMapType_OptionalStripsNonNull(t *testing.T) {
	r := NewTypeRegistry()
	complex := wsdl.Type{
		Kind: wsdl.KindComplex,
		Elements: []wsdl.Element{
			{Name: "note", Type: wsdl.Type{Kind: wsdl.KindBuiltin, Name: "string"}, MinOccurs: 0, MaxOccurs: 1},
		},
	}

	r.MapType(complex, "Payload")
	decl := r.Declarations()[0]
	want := "type Payload {\n  note: String\n}"
	if decl != want {
		t.Errorf("expected nullable note field:\ngot:\n%s\nwant:\n%s", decl, want)
	}
}

func TestMapType_RepeatedWrapsAsList(t *testing.T) {
	r := NewTypeRegistry()

	t.Run("unbounded", func(t *testing.T) {
		complex := wsdl.Type{
			Kind: wsdl.KindComplex,
			Elements: []wsdl.Element{
				{Name: "items", Type: wsdl.Type{Kind: wsdl.KindBuiltin, Name: "string"}, MinOccurs: 1, MaxOccurs: wsdl.Unbounded},
			},
		}
		r.MapType(complex, "List")
		decl := r.Declarations()[0]
		if !strings.Contains(decl, "items: [String]!") {
			t.Errorf("expected items: [String]!, got:\n%s", decl)
		}
	})

	t.Run("bounded above one", func(t *testing.T) {
		r := NewTypeRegistry()
		complex := wsdl.Type{
			Kind: wsdl.KindComplex,
			Elements: []wsdl.Element{
				{Name: "codes", Type: wsdl.Type{Kind: wsdl.KindBuiltin, Name: "int"}, MinOccurs: 1, MaxOccurs: 5},
			},
		}
		r.MapType(complex, "Codes")
		decl := r.Declarations()[0]
		if !strings.Contains(decl, "codes: [Int]!") {
			t.Errorf("expected codes: [Int]!, got:\n%s", decl)
		}
	})

	t.Run("optional repeated stays list", func(t *testing.T) {
		r := NewTypeRegistry()
		complex := wsdl.Type{
			Kind: wsdl.KindComplex,
			Elements: []wsdl.Element{
				{Name: "tags", Type: wsdl.Type{Kind: wsdl.KindBuiltin, Name: "string"}, MinOccurs: 0, MaxOccurs: wsdl.Unbounded},
			},
		}
		r.MapType(complex, "Tags")
		decl := r.Declarations()[0]
		if !strings.Contains(decl, "tags: [String]!") {
			t.Errorf("expected tags: [String]!, got:\n%s", decl)
		}
	})
}

func TestMapType_CollisionSuffix(t *testing.T) {
	r := NewTypeRegistry()
	complex := wsdl.Type{
		Kind: wsdl.KindComplex,
		Elements: []wsdl.Element{
			{Name: "v", Type: wsdl.Type{Kind: wsdl.KindBuiltin, Name: "string"}, MinOccurs: 1, MaxOccurs: 1},
		},
	}

	first := r.MapType(complex, "Item")
	second := r.MapType(complex, "Item")
	third := r.MapType(complex, "Item")

	if first != "Item" || second != "Item1" || third != "Item2" {
		t.Errorf("expected Item, Item1, Item2; got %q, %q, %q", first, second, third)
	}
	if len(r.Declarations()) != 3 {
		t.Errorf("expected 3 declarations, got %d", len(r.Declarations()))
	}
}

func TestMapType_NestedComplex(t *testing.T) {
	r := NewTypeRegistry()
	complex := wsdl.Type{
		Kind: wsdl.KindComplex,
		Elements: []wsdl.Element{
			{
				Name: "address",
				Type: wsdl.Type{
					Kind: wsdl.KindComplex,
					Elements: []wsdl.Element{
						{Name: "city", Type: wsdl.Type{Kind: wsdl.KindBuiltin, Name: "string"}, MinOccurs: 1, MaxOccurs: 1},
					},
				},
				MinOccurs: 1,
				MaxOccurs: 1,
			},
		},
	}

	got := r.MapType(complex, "Customer")
	if got != "Customer" {
		t.Errorf("expected Customer, got %q", got)
	}

	decls := r.Declarations()
	if len(decls) != 2 {
		t.Fatalf("expected 2 declarations (nested + outer), got %d", len(decls))
	}
	// Nested types register before their parent finishes composing.
	if !strings.Contains(decls[0], "type address {") {
		t.Errorf("expected nested address declaration first, got:\n%s", decls[0])
	}
	if !strings.Contains(decls[1], "address: address") {
		t.Errorf("expected outer field referencing nested type, got:\n%s", decls[1])
	}
}

func TestMapType_EmptyHintGetsDefault(t *testing.T) {
	r := NewTypeRegistry()
	got := r.MapType(wsdl.Type{Kind: wsdl.KindComplex}, "")
	if got != "AutoType" {
		t.Errorf("expected AutoType for empty hint, got %q", got)
	}
}
