package generator

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/shankar0909/stepzen-gql-soap/internal/wsdl"
)

// Artifact filenames the StepZen CLI expects inside a workspace.
const (
	SchemaFileName = "schema.graphql"
	IndexFileName  = "index.graphql"
)

// Assembler walks a resolved WSDL document and produces the schema and
// index artifacts for one API.
type Assembler struct {
	version SOAPVersion
	log     *log.Logger
}

// NewAssembler creates an Assembler targeting the given SOAP version.
func NewAssembler(version SOAPVersion, logger *log.Logger) *Assembler {
	if logger == nil {
		logger = log.Default()
	}
	return &Assembler{version: version, log: logger}
}

// Result holds the generated artifacts for one API.
type Result struct {
	Schema string
	Index  string
	// Operations lists the retained operation names in schema order.
	Operations []string
}

// Assemble enumerates every service, port and bound operation of the
// document and renders the schema. Operations are deduplicated by name
// across all services and ports; the first occurrence wins and later
// ones are dropped with a warning, since silently losing an endpoint
// is worth surfacing.
func (a *Assembler) Assemble(doc *wsdl.Document) *Result {
	registry := NewTypeRegistry()
	seen := make(map[string]string)

	var fields []string
	var opNames []string

	for _, service := range doc.Services {
		for _, port := range service.Ports {
			endpoint := port.Address
			if endpoint == "" {
				endpoint = strings.SplitN(doc.URL, "?", 2)[0]
			}

			for _, op := range port.Operations {
				if first, dup := seen[op.Name]; dup {
					a.log.Warn("dropping duplicate operation",
						"operation", op.Name,
						"port", port.Name,
						"endpoint", endpoint,
						"kept", first)
					continue
				}
				seen[op.Name] = endpoint
				opNames = append(opNames, op.Name)

				argNames := make([]string, 0, len(op.Inputs))
				argsSignature := make([]string, 0, len(op.Inputs))
				for _, el := range op.Inputs {
					argNames = append(argNames, el.Name)
					argsSignature = append(argsSignature,
						fmt.Sprintf("%s: %s", el.Name, registry.MapType(el.Type, el.Name)))
				}

				envelope := Envelope(op.Name, doc.TargetNS, argNames, a.version)
				fields = append(fields, Field(op.Name, argsSignature, envelope, endpoint))
			}
		}
	}

	var b strings.Builder
	if decls := registry.Declarations(); len(decls) > 0 {
		b.WriteString(strings.Join(decls, "\n\n"))
		b.WriteString("\n\n")
	}
	b.WriteString("type Query {\n")
	b.WriteString(strings.Join(fields, "\n\n"))
	b.WriteString("\n}\n")

	return &Result{
		Schema:     b.String(),
		Index:      fmt.Sprintf("schema @sdl(files: [%q]) {\n  query: Query\n}\n", SchemaFileName),
		Operations: opNames,
	}
}

// Write stores both artifacts in dir, creating it as needed and
// overwriting previous output.
func (r *Result) Write(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, SchemaFileName), []byte(r.Schema), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", SchemaFileName, err)
	}
	if err := os.WriteFile(filepath.Join(dir, IndexFileName), []byte(r.Index), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", IndexFileName, err)
	}
	return nil
}
