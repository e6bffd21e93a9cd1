package jsonschema

// evaluateMinimum checks that a numeric instance meets the value specified by
// "minimum". Under draft-04, exclusiveMinimum is a boolean modifier on this
// same keyword: when true, the comparison becomes strict (instance must be
// greater than, not equal to, minimum). Draft-06 onward moves that behavior
// to the independent exclusiveMinimum keyword, evaluated in
// exclusiveMinimum.go, so this function always does the inclusive comparison
// for those drafts.
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-validation#name-minimum
func evaluateMinimum(schema *Schema, value *Rat) *EvaluationError {
	if schema.Minimum == nil {
		return nil
	}

	exclusive := schema.draft == Draft04 &&
		schema.ExclusiveMinimum != nil &&
		schema.ExclusiveMinimum.Boolean != nil &&
		*schema.ExclusiveMinimum.Boolean

	cmp := value.Cmp(schema.Minimum.Rat)
	if exclusive {
		if cmp <= 0 {
			return NewEvaluationError("minimum", "exclusive_minimum_mismatch", "{value} should be greater than {exclusive_minimum}", map[string]interface{}{
				"exclusive_minimum": FormatRat(schema.Minimum),
				"value":             FormatRat(value),
			})
		}
		return nil
	}

	if cmp < 0 {
		return NewEvaluationError("minimum", "value_below_minimum", "{value} should be at least {minimum}", map[string]interface{}{
			"value":   FormatRat(value),
			"minimum": FormatRat(schema.Minimum),
		})
	}
	return nil
}
