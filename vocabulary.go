package jsonschema

// Vocabulary URIs as published by the 2019-09 and 2020-12 meta-schemas.
const (
	VocabCore2019       = "https://json-schema.org/draft/2019-09/vocab/core"
	VocabApplicator2019 = "https://json-schema.org/draft/2019-09/vocab/applicator"
	VocabValidation2019 = "https://json-schema.org/draft/2019-09/vocab/validation"
	VocabMetaData2019   = "https://json-schema.org/draft/2019-09/vocab/meta-data"
	VocabFormat2019     = "https://json-schema.org/draft/2019-09/vocab/format"
	VocabContent2019    = "https://json-schema.org/draft/2019-09/vocab/content"

	VocabCore2020              = "https://json-schema.org/draft/2020-12/vocab/core"
	VocabApplicator2020        = "https://json-schema.org/draft/2020-12/vocab/applicator"
	VocabUnevaluated2020       = "https://json-schema.org/draft/2020-12/vocab/unevaluated"
	VocabValidation2020        = "https://json-schema.org/draft/2020-12/vocab/validation"
	VocabMetaData2020          = "https://json-schema.org/draft/2020-12/vocab/meta-data"
	VocabFormatAnnotation2020  = "https://json-schema.org/draft/2020-12/vocab/format-annotation"
	VocabFormatAssertion2020   = "https://json-schema.org/draft/2020-12/vocab/format-assertion"
	VocabContent2020           = "https://json-schema.org/draft/2020-12/vocab/content"
)

// vocabularyKeywords maps each vocabulary URI to the keyword set it governs.
// This is a static table rather than something derived by fetching and
// parsing the bundled meta-schemas: the vocabulary mechanism exists so a
// dialect can opt in or out of whole keyword families, and those families
// are fixed by the specification, not discovered at runtime.
var vocabularyKeywords = map[string]map[string]bool{
	VocabCore2019: {
		"$schema": true, "$id": true, "$anchor": true, "$ref": true,
		"$recursiveRef": true, "$recursiveAnchor": true, "$vocabulary": true,
		"$comment": true, "$defs": true,
	},
	VocabApplicator2019: {
		"additionalItems": true, "unevaluatedItems": true, "items": true,
		"contains": true, "additionalProperties": true, "unevaluatedProperties": true,
		"properties": true, "patternProperties": true, "dependentSchemas": true,
		"propertyNames": true, "if": true, "then": true, "else": true,
		"allOf": true, "anyOf": true, "oneOf": true, "not": true,
	},
	VocabValidation2019: {
		"multipleOf": true, "maximum": true, "exclusiveMaximum": true,
		"minimum": true, "exclusiveMinimum": true, "maxLength": true,
		"minLength": true, "pattern": true, "maxItems": true, "minItems": true,
		"uniqueItems": true, "maxContains": true, "minContains": true,
		"maxProperties": true, "minProperties": true, "required": true,
		"dependentRequired": true, "const": true, "enum": true, "type": true,
	},
	VocabMetaData2019: {
		"title": true, "description": true, "default": true, "deprecated": true,
		"readOnly": true, "writeOnly": true, "examples": true,
	},
	VocabFormat2019:  {"format": true},
	VocabContent2019: {"contentEncoding": true, "contentMediaType": true, "contentSchema": true},

	VocabCore2020: {
		"$schema": true, "$id": true, "$anchor": true, "$ref": true,
		"$dynamicRef": true, "$dynamicAnchor": true, "$vocabulary": true,
		"$comment": true, "$defs": true,
	},
	VocabApplicator2020: {
		"prefixItems": true, "items": true, "contains": true,
		"additionalProperties": true, "properties": true, "patternProperties": true,
		"dependentSchemas": true, "propertyNames": true, "if": true, "then": true,
		"else": true, "allOf": true, "anyOf": true, "oneOf": true, "not": true,
	},
	VocabUnevaluated2020: {"unevaluatedItems": true, "unevaluatedProperties": true},
	VocabValidation2020: {
		"multipleOf": true, "maximum": true, "exclusiveMaximum": true,
		"minimum": true, "exclusiveMinimum": true, "maxLength": true,
		"minLength": true, "pattern": true, "maxItems": true, "minItems": true,
		"uniqueItems": true, "maxContains": true, "minContains": true,
		"maxProperties": true, "minProperties": true, "required": true,
		"dependentRequired": true, "const": true, "enum": true, "type": true,
	},
	VocabMetaData2020: {
		"title": true, "description": true, "default": true, "deprecated": true,
		"readOnly": true, "writeOnly": true, "examples": true,
	},
	VocabFormatAnnotation2020: {"format": true},
	VocabFormatAssertion2020:  {"format": true},
	VocabContent2020:          {"contentEncoding": true, "contentMediaType": true, "contentSchema": true},
}

// defaultVocabularies2019 and defaultVocabularies2020 are the vocabularies a
// schema is assumed to declare when it omits $vocabulary entirely (legal
// under both drafts; the meta-schema says "absence of $vocabulary is
// equivalent to declaring the default set").
var defaultVocabularies2019 = []string{
	VocabCore2019, VocabApplicator2019, VocabValidation2019,
	VocabMetaData2019, VocabFormat2019, VocabContent2019,
}

var defaultVocabularies2020 = []string{
	VocabCore2020, VocabApplicator2020, VocabUnevaluated2020, VocabValidation2020,
	VocabMetaData2020, VocabFormatAnnotation2020, VocabContent2020,
}

// ActiveVocabularies computes the set of active vocabulary URIs for a
// metaschema declaration. vocabulary is the raw $vocabulary map (uri -> bool
// "required"); an empty/nil map yields the draft's default set.
func ActiveVocabularies(draft Draft, vocabulary map[string]bool) map[string]bool {
	active := make(map[string]bool)

	if len(vocabulary) == 0 {
		var defaults []string
		switch draft {
		case Draft201909:
			defaults = defaultVocabularies2019
		case Draft202012:
			defaults = defaultVocabularies2020
		default:
			return active // pre-2019-09 drafts have no vocabulary concept
		}
		for _, uri := range defaults {
			active[uri] = true
		}
		return active
	}

	for uri, required := range vocabulary {
		if required {
			active[uri] = true
		}
	}
	return active
}

// IsKeywordInVocabulary reports whether keyword belongs to any vocabulary in
// active. An empty active set means vocabularies are not in play for this
// draft (pre-2019-09) and every keyword is allowed.
func IsKeywordInVocabulary(keyword string, active map[string]bool) bool {
	if len(active) == 0 {
		return true
	}
	for uri := range active {
		if vocabularyKeywords[uri][keyword] {
			return true
		}
	}
	return false
}

// keywordActive reports whether keyword should be dispatched at all for s: it
// must both be permitted by the resolved draft (IsKeywordAllowed) and belong
// to one of the schema's active vocabularies (IsKeywordInVocabulary). The two
// checks overlap for 2019-09/2020-12 schemas that omit $vocabulary (the
// default vocabulary set and disallowedKeywords agree on what's available),
// but a schema that explicitly declares a narrower $vocabulary than its
// draft's default can disable a keyword IsKeywordAllowed alone wouldn't catch.
func (s *Schema) keywordActive(keyword string) bool {
	return IsKeywordAllowed(s.draft, keyword) && IsKeywordInVocabulary(keyword, s.activeVocab)
}

// FormatAssertionActive reports whether active declares the format-assertion
// vocabulary (2020-12) or the plain format vocabulary as required (2019-09,
// where declaring it required at all makes format assertive per the
// meta-schema's own convention in the test suite).
func FormatAssertionActive(draft Draft, active map[string]bool) bool {
	switch draft {
	case Draft202012:
		return active[VocabFormatAssertion2020]
	case Draft201909:
		return active[VocabFormat2019]
	default:
		return false
	}
}
