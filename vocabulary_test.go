package jsonschema

import "testing"

func TestActiveVocabulariesDefaults(t *testing.T) {
	active := ActiveVocabularies(Draft202012, nil)
	if !active[VocabApplicator2020] {
		t.Error("expected default 2020-12 vocabulary set to include the applicator vocabulary")
	}
	if active[VocabFormatAssertion2020] {
		t.Error("format-assertion is not part of the default 2020-12 set")
	}

	if got := ActiveVocabularies(Draft07, nil); len(got) != 0 {
		t.Errorf("draft-07 has no vocabulary concept, got %v", got)
	}
}

func TestActiveVocabulariesExplicit(t *testing.T) {
	vocab := map[string]bool{
		VocabCore2020:            true,
		VocabValidation2020:      true,
		VocabFormatAssertion2020: true,
		VocabApplicator2020:      false,
	}
	active := ActiveVocabularies(Draft202012, vocab)
	if !active[VocabFormatAssertion2020] {
		t.Error("expected format-assertion vocabulary to be active")
	}
	if active[VocabApplicator2020] {
		t.Error("a vocabulary declared false must not be active")
	}
}

func TestIsKeywordInVocabulary(t *testing.T) {
	active := ActiveVocabularies(Draft202012, nil)
	if !IsKeywordInVocabulary("properties", active) {
		t.Error("properties should belong to the default applicator vocabulary")
	}
	if IsKeywordInVocabulary("prefixItems", map[string]bool{VocabValidation2020: true}) {
		t.Error("prefixItems should not belong to the validation vocabulary alone")
	}
	if !IsKeywordInVocabulary("anything", nil) {
		t.Error("an empty active set means vocabularies are not in play, so every keyword is allowed")
	}
}

func TestSchemaKeywordActive(t *testing.T) {
	// const is disallowed outright under draft-04, regardless of vocabulary.
	draft04 := &Schema{draft: Draft04}
	if draft04.keywordActive("const") {
		t.Error("const should not be active under draft-04")
	}

	// contains is allowed for 2020-12 by the deny-list but belongs only to
	// the applicator vocabulary; narrowing $vocabulary to exclude it must
	// disable the keyword even though IsKeywordAllowed alone would pass it.
	narrowed := &Schema{
		draft:       Draft202012,
		activeVocab: map[string]bool{VocabCore2020: true, VocabValidation2020: true},
	}
	if narrowed.keywordActive("contains") {
		t.Error("contains should not be active when the applicator vocabulary is not declared")
	}
	if !narrowed.keywordActive("type") {
		t.Error("type belongs to the declared validation vocabulary and should remain active")
	}

	latest := &Schema{draft: Draft202012, activeVocab: ActiveVocabularies(Draft202012, nil)}
	if !latest.keywordActive("contains") {
		t.Error("contains should be active under the default 2020-12 vocabulary set")
	}
}

func TestFormatAssertionActive(t *testing.T) {
	if FormatAssertionActive(Draft202012, map[string]bool{VocabFormatAnnotation2020: true}) {
		t.Error("format-annotation alone must not make format assertive under 2020-12")
	}
	if !FormatAssertionActive(Draft202012, map[string]bool{VocabFormatAssertion2020: true}) {
		t.Error("format-assertion must make format assertive under 2020-12")
	}
	if !FormatAssertionActive(Draft201909, map[string]bool{VocabFormat2019: true}) {
		t.Error("declaring the format vocabulary required under 2019-09 makes format assertive")
	}
	if FormatAssertionActive(Draft07, nil) {
		t.Error("draft-07 has no vocabulary-driven format assertion")
	}
}
