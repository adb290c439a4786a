package manifest

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed manifest.schema.json
var schemaBytes []byte

const schemaName = "manifest.schema.json"

var manifestSchema = mustCompileSchema()

func mustCompileSchema() *jsonschema.Schema {
	var doc any
	if err := json.Unmarshal(schemaBytes, &doc); err != nil {
		panic(fmt.Sprintf("parse embedded manifest schema: %v", err))
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaName, doc); err != nil {
		panic(fmt.Sprintf("add manifest schema resource: %v", err))
	}
	schema, err := compiler.Compile(schemaName)
	if err != nil {
		panic(fmt.Sprintf("compile manifest schema: %v", err))
	}
	return schema
}

// validateSchema checks raw manifest bytes against the embedded schema
// before any decoding happens.
func validateSchema(data []byte) error {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("not valid JSON: %w", err)
	}
	if err := manifestSchema.Validate(doc); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// formatValidationError flattens a jsonschema validation error into one
// line per offending location.
func formatValidationError(err error) error {
	validationErr, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return fmt.Errorf("validation error: %w", err)
	}
	var lines []string
	collectCauses(validationErr, &lines)
	return fmt.Errorf("schema validation failed: %s", strings.Join(lines, "; "))
}

func collectCauses(err *jsonschema.ValidationError, lines *[]string) {
	if len(err.Causes) == 0 {
		location := "/" + strings.Join(err.InstanceLocation, "/")
		if location == "/" {
			location = "(root)"
		}
		keyword := ""
		if err.ErrorKind != nil {
			if path := err.ErrorKind.KeywordPath(); len(path) > 0 {
				keyword = " (" + strings.Join(path, ".") + ")"
			}
		}
		*lines = append(*lines, fmt.Sprintf("at %s%s", location, keyword))
		return
	}
	for _, cause := range err.Causes {
		collectCauses(cause, lines)
	}
}
