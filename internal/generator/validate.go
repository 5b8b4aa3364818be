package generator

import (
	"fmt"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
)

// Validate parses a generated schema document and reports templating
// mistakes (unbalanced braces, broken string literals, malformed
// directives) before anything reaches the deploy tool.
//
// This is a syntax check, not full schema validation: StepZen supplies
// the JSON scalar and the @rest directive at deploy time, and the
// generated argument signatures reference the registered complex types
// the same way the deploy tool consumes them.
func Validate(schema string) error {
	_, err := parser.ParseSchema(&ast.Source{
		Name:  SchemaFileName,
		Input: schema,
	})
	if err != nil {
		return fmt.Errorf("generated schema is invalid: %w", err)
	}
	return nil
}
