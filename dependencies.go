package jsonschema

import (
	"fmt"
	"strings"

	"github.com/go-json-experiment/json"
)

// DependencyValue is the draft-04/06/07 "dependencies" keyword's per-property
// value: either a schema the whole instance must satisfy when the property
// is present (schema dependency), or a list of property names that must also
// be present (property dependency). Draft 2019-09 split these two forms into
// dependentSchemas and dependentRequired respectively.
type DependencyValue struct {
	Schema   *Schema
	Required []string
}

// UnmarshalJSON tries the property-dependency array form first, then falls
// back to the schema-dependency form (schema or boolean).
func (d *DependencyValue) UnmarshalJSON(data []byte) error {
	var names []string
	if err := json.Unmarshal(data, &names); err == nil {
		d.Required = names
		return nil
	}

	var schema Schema
	if err := json.Unmarshal(data, &schema); err != nil {
		return err
	}
	d.Schema = &schema
	return nil
}

// MarshalJSON round-trips whichever form was set.
func (d *DependencyValue) MarshalJSON() ([]byte, error) {
	if d == nil {
		return []byte("null"), nil
	}
	if d.Required != nil {
		return json.Marshal(d.Required)
	}
	if d.Schema != nil {
		return json.Marshal(d.Schema)
	}
	return []byte("null"), nil
}

// evaluateDependencies implements the draft-04/06/07 "dependencies" keyword.
// For each key present in the instance, either its required co-properties
// must all be present, or the whole instance must validate against the
// associated schema.
//
// Reference: https://json-schema.org/draft-07/json-schema-validation#rfc.section.6.5.7
func evaluateDependencies(schema *Schema, data interface{}, evaluatedProps map[string]bool, evaluatedItems map[int]bool, dynamicScope *DynamicScope) ([]*EvaluationResult, *EvaluationError) {
	if len(schema.Dependencies) == 0 {
		return nil, nil
	}

	objData, ok := data.(map[string]interface{})
	if !ok {
		return nil, nil
	}

	var results []*EvaluationResult
	var missingPropertyDeps []string
	var invalidSchemaDeps []string

	for propName, dep := range schema.Dependencies {
		if _, exists := objData[propName]; !exists || dep == nil {
			continue
		}

		if dep.Schema != nil {
			path := fmt.Sprintf("/dependencies/%s", propName)
			result, schemaEvaluatedProps, schemaEvaluatedItems := dep.Schema.evaluate(objData, dynamicScope)
			if result != nil {
				result.SetEvaluationPath(path).
					SetSchemaLocation(schema.GetSchemaLocation(path)).
					SetInstanceLocation("")
				results = append(results, result)
			}
			if result.IsValid() {
				mergeStringMaps(evaluatedProps, schemaEvaluatedProps)
				mergeIntMaps(evaluatedItems, schemaEvaluatedItems)
			} else {
				invalidSchemaDeps = append(invalidSchemaDeps, propName)
			}
			continue
		}

		var missing []string
		for _, required := range dep.Required {
			if _, ok := objData[required]; !ok {
				missing = append(missing, required)
			}
		}
		if len(missing) > 0 {
			missingPropertyDeps = append(missingPropertyDeps, missing...)
		}
	}

	if len(missingPropertyDeps) > 0 {
		return results, NewEvaluationError("dependencies", "dependent_required_missing", "Some required property dependencies are missing: {missing_properties}", map[string]interface{}{
			"missing_properties": strings.Join(missingPropertyDeps, ", "),
		})
	}

	if len(invalidSchemaDeps) == 1 {
		return results, NewEvaluationError("dependencies", "dependent_schema_mismatch", "Property {property} does not meet the schema requirements dependent on it", map[string]interface{}{
			"property": fmt.Sprintf("'%s'", invalidSchemaDeps[0]),
		})
	} else if len(invalidSchemaDeps) > 1 {
		quoted := make([]string, len(invalidSchemaDeps))
		for i, prop := range invalidSchemaDeps {
			quoted[i] = fmt.Sprintf("'%s'", prop)
		}
		return results, NewEvaluationError("dependencies", "dependent_schemas_mismatch", "Properties {properties} do not meet the schema requirements dependent on them", map[string]interface{}{
			"properties": strings.Join(quoted, ", "),
		})
	}

	return results, nil
}
