package tests

import (
	"testing"

	"github.com/schemakit/jsonschema"
)

// TestJSONSchemaTestSuite_Draft06 exercises the official test suite's
// draft-06 fixtures, when present (see runJSONSchemaTestSuiteDir).
func TestJSONSchemaTestSuite_Draft06(t *testing.T) {
	runJSONSchemaTestSuiteDir(t, "../testdata/JSON-Schema-Test-Suite/tests/draft6", jsonschema.Draft06)
}
