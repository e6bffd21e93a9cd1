package jsonschema

// evaluateMaximum checks that a numeric instance does not exceed the value
// specified by "maximum". Under draft-04, exclusiveMaximum is a boolean
// modifier on this same keyword: when true, the comparison becomes strict
// (instance must be less than, not equal to, maximum). Draft-06 onward moves
// that behavior to the independent exclusiveMaximum keyword, evaluated in
// exclusiveMaximum.go, so this function always does the inclusive comparison
// for those drafts.
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-validation#name-maximum
func evaluateMaximum(schema *Schema, value *Rat) *EvaluationError {
	if schema.Maximum == nil {
		return nil
	}

	exclusive := schema.draft == Draft04 &&
		schema.ExclusiveMaximum != nil &&
		schema.ExclusiveMaximum.Boolean != nil &&
		*schema.ExclusiveMaximum.Boolean

	cmp := value.Cmp(schema.Maximum.Rat)
	if exclusive {
		if cmp >= 0 {
			return NewEvaluationError("maximum", "exclusive_maximum_mismatch", "{value} should be less than {exclusive_maximum}", map[string]interface{}{
				"exclusive_maximum": FormatRat(schema.Maximum),
				"value":             FormatRat(value),
			})
		}
		return nil
	}

	if cmp > 0 {
		return NewEvaluationError("maximum", "value_above_maximum", "{value} should be at most {maximum}", map[string]interface{}{
			"value":   FormatRat(value),
			"maximum": FormatRat(schema.Maximum),
		})
	}
	return nil
}
