package jsonschema

import "strings"

// Draft identifies a published JSON Schema specification version. The
// validation engine dispatches several keyword algorithms (type coercion,
// exclusiveMinimum/exclusiveMaximum shape, $ref sibling policy, the keyword
// allow-list) on this value.
type Draft int

const (
	// DraftUnknown marks a $schema URI that did not match any known draft.
	DraftUnknown Draft = iota
	Draft04
	Draft06
	Draft07
	Draft201909
	Draft202012
)

// DraftLatest is used whenever a schema declares no $schema and the caller
// supplies no explicit override.
const DraftLatest = Draft202012

// String returns a short label for the draft, e.g. "2020-12".
func (d Draft) String() string {
	switch d {
	case Draft04:
		return "draft-04"
	case Draft06:
		return "draft-06"
	case Draft07:
		return "draft-07"
	case Draft201909:
		return "2019-09"
	case Draft202012:
		return "2020-12"
	default:
		return "unknown"
	}
}

// CanonicalURI returns the canonical $schema URI for the draft.
func (d Draft) CanonicalURI() string {
	switch d {
	case Draft04:
		return "http://json-schema.org/draft-04/schema#"
	case Draft06:
		return "http://json-schema.org/draft-06/schema#"
	case Draft07:
		return "http://json-schema.org/draft-07/schema#"
	case Draft201909:
		return "https://json-schema.org/draft/2019-09/schema"
	case Draft202012:
		return "https://json-schema.org/draft/2020-12/schema"
	default:
		return ""
	}
}

// AtLeast reports whether d is the same draft as or newer than other.
// DraftUnknown sorts before every real draft.
func (d Draft) AtLeast(other Draft) bool {
	return d >= other
}

// DetectDraft maps a $schema URI to a Draft by substring match, per the
// bit-exact rule in the component design: unknown URIs produce DraftUnknown
// rather than erroring, leaving the decision of whether that is fatal to the
// caller (the façade defaults to DraftLatest; a strict caller may treat
// DraftUnknown as DraftCannotBeDetected).
func DetectDraft(schemaURI string) Draft {
	switch {
	case schemaURI == "":
		return DraftUnknown
	case strings.Contains(schemaURI, "draft-04"):
		return Draft04
	case strings.Contains(schemaURI, "draft-06"):
		return Draft06
	case strings.Contains(schemaURI, "draft-07"):
		return Draft07
	case strings.Contains(schemaURI, "2019-09"):
		return Draft201909
	case strings.Contains(schemaURI, "2020-12"):
		return Draft202012
	default:
		return DraftUnknown
	}
}

// disallowedKeywords lists, per draft, the keywords that never apply even
// though the Schema struct has a field for them (because a newer or older
// draft introduced them). A keyword present in a schema but disallowed for
// the resolved draft is silently ignored.
var disallowedKeywords = map[Draft]map[string]bool{
	Draft04: {
		"const": true, "contains": true, "propertyNames": true,
		"if": true, "then": true, "else": true,
		"dependentRequired": true, "dependentSchemas": true,
		"prefixItems": true, "$dynamicRef": true, "$dynamicAnchor": true,
		"unevaluatedProperties": true, "unevaluatedItems": true,
		"$recursiveRef": true, "$recursiveAnchor": true,
	},
	Draft06: {
		"dependentRequired": true, "dependentSchemas": true,
		"prefixItems": true, "$dynamicRef": true, "$dynamicAnchor": true,
		"unevaluatedProperties": true, "unevaluatedItems": true,
		"$recursiveRef": true, "$recursiveAnchor": true,
	},
	Draft07: {
		"dependentRequired": true, "dependentSchemas": true,
		"prefixItems": true, "$dynamicRef": true, "$dynamicAnchor": true,
		"unevaluatedProperties": true, "unevaluatedItems": true,
		"$recursiveRef": true, "$recursiveAnchor": true,
	},
	Draft201909: {
		"prefixItems": true, "$dynamicRef": true, "$dynamicAnchor": true,
		"dependencies": true,
	},
	Draft202012: {
		"$recursiveRef": true, "$recursiveAnchor": true,
		"dependencies": true,
	},
}

// IsKeywordAllowed reports whether keyword applies under draft. Keywords not
// mentioned in disallowedKeywords[draft] are allowed (the allow-list is
// expressed as a deny-list here because the vast majority of keywords are
// shared across every draft).
func IsKeywordAllowed(draft Draft, keyword string) bool {
	if draft == DraftUnknown {
		return true
	}
	deny, ok := disallowedKeywords[draft]
	if !ok {
		return true
	}
	return !deny[keyword]
}

// RefReplacesSiblings reports whether $ref, when present on a schema object,
// suppresses evaluation of every sibling keyword (drafts 04, 06 and 07) as
// opposed to being one assertion among siblings (2019-09, 2020-12).
func RefReplacesSiblings(draft Draft) bool {
	switch draft {
	case Draft04, Draft06, Draft07:
		return true
	default:
		return false
	}
}

// FloatWithZeroFractionIsInteger reports whether a Float JSON value whose
// fractional part is zero (e.g. 1.0) counts as the "integer" schema type.
// Draft 04 says no; draft 06 onward says yes. A schema with no resolved
// draft (built via the fluent constructors and validated without ever being
// compiled) behaves like DraftLatest here, matching this module's behavior
// before draft-awareness was added.
func FloatWithZeroFractionIsInteger(draft Draft) bool {
	return draft != Draft04
}

// FormatAssertsByDefault reports whether the "format" keyword asserts
// (rather than merely annotates) by default for draft, absent any vocabulary
// declaration or explicit override. Drafts 04/06/07 have no vocabulary
// mechanism at all, so the compiler's AssertFormat flag is their only lever
// and defaults to false; 2019-09 and 2020-12 derive assertiveness from
// $vocabulary (see vocabulary.go).
func FormatAssertsByDefault(draft Draft) bool {
	return false
}
