package jsonschema

import "fmt"

// defaultMaxDepth bounds how deeply schema evaluation may recurse through
// $ref, allOf/anyOf/oneOf, and other applicators before validation gives up.
// It exists to turn a schema that references itself in a way that produces
// unbounded recursion into a reported error instead of a stack overflow.
const defaultMaxDepth = 1000

// SchemaErrorCode identifies the category of a SchemaError.
type SchemaErrorCode string

const (
	ErrCodeInvalidSchema      SchemaErrorCode = "invalid_schema"
	ErrCodeUnsupportedDraft   SchemaErrorCode = "unsupported_draft"
	ErrCodeUnresolvedRef      SchemaErrorCode = "unresolved_reference"
	ErrCodeInvalidPointer     SchemaErrorCode = "invalid_json_pointer"
	ErrCodeDepthExceeded      SchemaErrorCode = "validation_depth_exceeded"
	ErrCodeMissingKeyword     SchemaErrorCode = "missing_schema_keyword"
)

// SchemaError reports a problem with a schema document itself rather than
// with an instance being validated against it: a malformed schema, a
// reference that can never be resolved, a $schema URI naming a draft this
// module doesn't support. These are distinct from EvaluationError/
// ValidationError, which describe why an instance failed validation against
// an otherwise-valid schema. Compile-time callers (Compiler.Compile, the
// facade) surface SchemaError as a Go error; evaluation-time occurrences
// (e.g. exceeding the recursion depth guard) are folded into the
// EvaluationResult as a "schema" keyword error instead of panicking, since
// Schema.evaluate has no error return of its own to propagate one through.
type SchemaError struct {
	Code    SchemaErrorCode
	Message string
	URI     string
}

func (e *SchemaError) Error() string {
	if e.URI != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.URI)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewSchemaError constructs a SchemaError.
func NewSchemaError(code SchemaErrorCode, message string, uri ...string) *SchemaError {
	err := &SchemaError{Code: code, Message: message}
	if len(uri) > 0 {
		err.URI = uri[0]
	}
	return err
}
