package jsonschema

// evaluateExclusiveMaximum checks that a numeric instance is strictly less
// than the value specified by "exclusiveMaximum". This independent-keyword
// form only applies to draft-06 onward; under draft-04 exclusiveMaximum is a
// boolean modifier handled inside evaluateMaximum, and any numeric value
// sitting in the field there is ignored.
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-validation#name-exclusivemaximum
func evaluateExclusiveMaximum(schema *Schema, value *Rat) *EvaluationError {
	if schema.draft == Draft04 {
		return nil
	}
	if schema.ExclusiveMaximum == nil || schema.ExclusiveMaximum.Numeric == nil {
		return nil
	}

	bound := schema.ExclusiveMaximum.Numeric
	if value.Cmp(bound.Rat) >= 0 {
		return NewEvaluationError("exclusiveMaximum", "exclusive_maximum_mismatch", "{value} should be less than {exclusive_maximum}", map[string]interface{}{
			"exclusive_maximum": FormatRat(bound),
			"value":             FormatRat(value),
		})
	}
	return nil
}
