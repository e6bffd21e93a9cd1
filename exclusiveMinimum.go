package jsonschema

// evaluateExclusiveMinimum checks that a numeric instance is strictly
// greater than the value specified by "exclusiveMinimum". This
// independent-keyword form only applies to draft-06 onward; under draft-04
// exclusiveMinimum is a boolean modifier handled inside evaluateMinimum, and
// any numeric value sitting in the field there is ignored.
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-validation#name-exclusiveminimum
func evaluateExclusiveMinimum(schema *Schema, value *Rat) *EvaluationError {
	if schema.draft == Draft04 {
		return nil
	}
	if schema.ExclusiveMinimum == nil || schema.ExclusiveMinimum.Numeric == nil {
		return nil
	}

	bound := schema.ExclusiveMinimum.Numeric
	if value.Cmp(bound.Rat) <= 0 {
		return NewEvaluationError("exclusiveMinimum", "exclusive_minimum_mismatch", "{value} should be greater than {exclusive_minimum}", map[string]interface{}{
			"exclusive_minimum": FormatRat(bound),
			"value":             FormatRat(value),
		})
	}
	return nil
}
