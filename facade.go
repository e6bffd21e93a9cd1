package jsonschema

import "github.com/go-json-experiment/json"

// Validate is the package-level entry point for one-shot validation: compile
// schemaJSON and check instance against it in a single call. The draft is
// detected from the schema's own $schema URI; pass an explicit draft to
// supply one for schemas that omit $schema entirely (an explicit $schema in
// the document always takes precedence over the override, same as it does
// for Compiler.DefaultDraft).
//
// Each call compiles schemaJSON through the package's default compiler,
// which deduplicates identical schema bytes via its content-hash cache
// (Compiler.SetCompiledCacheSize), so repeated calls with the same schema
// are cheap. Callers validating many instances against one schema should
// compile once with a Compiler and call Schema.Validate directly instead.
func Validate(instance any, schemaJSON []byte, draft ...Draft) (*EvaluationResult, error) {
	compiler := GetDefaultCompiler()
	if len(draft) > 0 {
		compiler = NewCompiler()
		compiler.DefaultDraft = draft[0]
	}

	schema, err := compiler.Compile(schemaJSON)
	if err != nil {
		return nil, err
	}

	return schema.Validate(instance), nil
}

// ValidateJSON is Validate for callers holding the instance as raw JSON
// bytes rather than an already-decoded Go value.
func ValidateJSON(instanceJSON []byte, schemaJSON []byte, draft ...Draft) (*EvaluationResult, error) {
	var instance any
	if err := json.Unmarshal(instanceJSON, &instance); err != nil {
		return nil, err
	}
	return Validate(instance, schemaJSON, draft...)
}
