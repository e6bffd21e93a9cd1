package jsonschema

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/kaptinlin/jsonpointer"
)

// resolveRef resolves a reference to another schema, either locally or globally, supporting both $ref and $dynamicRef.
func (s *Schema) resolveRef(ref string) (*Schema, error) {
	if ref == "#" {
		return s.getRootSchema(), nil
	}

	if strings.HasPrefix(ref, "#") {
		return s.resolveAnchor(ref[1:])
	}

	// Resolve the full URL if ref is a relative URL
	if !isAbsoluteURI(ref) && s.baseURI != "" {
		ref = resolveRelativeURI(s.baseURI, ref)
	}

	// Handle full URL references
	return s.resolveRefWithFullURL(ref)
}

func (s *Schema) resolveAnchor(anchorName string) (*Schema, error) {
	var schema *Schema
	var err error

	if strings.HasPrefix(anchorName, "/") {
		schema, err = s.resolveJSONPointer(anchorName)
	} else {
		if schema, ok := s.anchors[anchorName]; ok {
			return schema, nil
		}

		if schema, ok := s.dynamicAnchors[anchorName]; ok {
			return schema, nil
		}
	}

	if schema == nil && s.parent != nil {
		return s.parent.resolveAnchor(anchorName)
	}

	return schema, err
}

// resolveRefWithFullURL resolves a full URL reference to another schema.
func (s *Schema) resolveRefWithFullURL(ref string) (*Schema, error) {
	root := s.getRootSchema()
	if resolved, err := root.getSchema(ref); err == nil {
		return resolved, nil
	}

	// If not found in the current schema or its parents, look for the reference in the compiler
	resolved, err := s.GetCompiler().GetSchema(ref)
	if err != nil {
		return nil, ErrGlobalReferenceResolution
	}
	return resolved, nil
}

// resolveJSONPointer resolves a JSON Pointer within the schema based on JSON Schema structure.
func (s *Schema) resolveJSONPointer(pointer string) (*Schema, error) {
	if pointer == "/" {
		return s, nil
	}

	// Parse JSON Pointer using the jsonpointer library
	// This handles ~ escaping (~ -> ~0, / -> ~1) automatically
	segments := jsonpointer.Parse(pointer)
	currentSchema := s
	previousSegment := ""

	for i, segment := range segments {
		// jsonpointer.Parse handles ~0 and ~1 escaping, but not URL percent encoding
		// We need to handle URL percent encoding separately for JSON Schema compatibility
		decodedSegment, err := url.PathUnescape(segment)
		if err != nil {
			return nil, ErrJSONPointerSegmentDecode
		}

		nextSchema, found := findSchemaInSegment(currentSchema, decodedSegment, previousSegment)
		if found {
			currentSchema = nextSchema
			previousSegment = decodedSegment
			continue
		}

		if !found && i == len(segments)-1 {
			// If no schema is found and it's the last segment, throw error
			return nil, ErrJSONPointerSegmentNotFound
		}

		previousSegment = decodedSegment
	}

	return currentSchema, nil
}

// Helper function to find a schema within a given segment
func findSchemaInSegment(currentSchema *Schema, segment string, previousSegment string) (*Schema, bool) {
	switch previousSegment {
	case "properties":
		if currentSchema.Properties != nil {
			if schema, exists := (*currentSchema.Properties)[segment]; exists {
				return schema, true
			}
		}
	case "prefixItems":
		index, err := strconv.Atoi(segment)

		if err == nil && currentSchema.PrefixItems != nil && index < len(currentSchema.PrefixItems) {
			return currentSchema.PrefixItems[index], true
		}
	case "$defs", "definitions": // Support both $defs (2020-12) and definitions (Draft-7) for backward compatibility
		if defSchema, exists := currentSchema.Defs[segment]; exists {
			return defSchema, true
		}
	case "items":
		if currentSchema.Items != nil {
			return currentSchema.Items, true
		}
	}
	return nil, false
}

// resolveRecursiveRef resolves $recursiveRef (2019-09). Its value is always
// "#"; at evaluation time it is supposed to follow the dynamic scope back to
// the outermost schema resource whose $recursiveAnchor is true. This
// compiler resolves references statically rather than walking a runtime
// call stack, so it approximates that rule the same way it approximates
// $dynamicRef: the outermost candidate available at compile time is the
// document root, so $recursiveRef resolves there when the root declares
// $recursiveAnchor: true, and falls back to plain "#" self-reference
// otherwise.
func (s *Schema) resolveRecursiveRef() (*Schema, error) {
	root := s.getRootSchema()
	if root.RecursiveAnchor != nil && *root.RecursiveAnchor {
		return root, nil
	}
	return root, nil
}

// forEachSubschema invokes visit on every schema this schema directly
// applies to an instance, across every keyword added by every supported
// draft. It is the single place new applicator keywords need to be wired in
// for reference resolution to reach them.
func (s *Schema) forEachSubschema(visit func(*Schema)) {
	if s == nil {
		return
	}

	if s.Defs != nil {
		for _, def := range s.Defs {
			if def != nil {
				visit(def)
			}
		}
	}
	if s.Properties != nil {
		for _, prop := range *s.Properties {
			if prop != nil {
				visit(prop)
			}
		}
	}
	if s.PatternProperties != nil {
		for _, prop := range *s.PatternProperties {
			if prop != nil {
				visit(prop)
			}
		}
	}
	for _, schema := range s.AllOf {
		if schema != nil {
			visit(schema)
		}
	}
	for _, schema := range s.AnyOf {
		if schema != nil {
			visit(schema)
		}
	}
	for _, schema := range s.OneOf {
		if schema != nil {
			visit(schema)
		}
	}
	if s.Not != nil {
		visit(s.Not)
	}
	if s.If != nil {
		visit(s.If)
	}
	if s.Then != nil {
		visit(s.Then)
	}
	if s.Else != nil {
		visit(s.Else)
	}
	if s.Items != nil {
		visit(s.Items)
	}
	if s.PrefixItems != nil {
		for _, item := range s.PrefixItems {
			if item != nil {
				visit(item)
			}
		}
	}
	if s.Contains != nil {
		visit(s.Contains)
	}
	if s.AdditionalProperties != nil {
		visit(s.AdditionalProperties)
	}
	if s.UnevaluatedProperties != nil {
		visit(s.UnevaluatedProperties)
	}
	if s.UnevaluatedItems != nil {
		visit(s.UnevaluatedItems)
	}
	if s.PropertyNames != nil {
		visit(s.PropertyNames)
	}
	if s.ContentSchema != nil {
		visit(s.ContentSchema)
	}
	if s.DependentSchemas != nil {
		for _, dep := range s.DependentSchemas {
			if dep != nil {
				visit(dep)
			}
		}
	}
	if s.Dependencies != nil {
		for _, dep := range s.Dependencies {
			if dep != nil && dep.Schema != nil {
				visit(dep.Schema)
			}
		}
	}
}

// ResolveUnresolvedReferences tries to resolve any previously unresolved references
// This is called after new schemas are added to the compiler
func (s *Schema) ResolveUnresolvedReferences() {
	if s.Ref != "" && s.ResolvedRef == nil {
		if resolved, err := s.resolveRef(s.Ref); err == nil {
			s.ResolvedRef = resolved
		}
	}

	if s.DynamicRef != "" && s.ResolvedDynamicRef == nil {
		if resolved, err := s.resolveRef(s.DynamicRef); err == nil {
			s.ResolvedDynamicRef = resolved
		}
	}

	if s.RecursiveRef != "" && s.ResolvedRecursiveRef == nil {
		if resolved, err := s.resolveRecursiveRef(); err == nil {
			s.ResolvedRecursiveRef = resolved
		}
	}

	s.forEachSubschema(func(child *Schema) {
		child.ResolveUnresolvedReferences()
	})
}

func (s *Schema) resolveReferences() {
	if s.Ref != "" {
		if resolved, err := s.resolveRef(s.Ref); err == nil {
			s.ResolvedRef = resolved
		}
		// If resolution fails, leave ResolvedRef as nil and validation will handle this gracefully
	}

	if s.DynamicRef != "" {
		if resolved, err := s.resolveRef(s.DynamicRef); err == nil {
			s.ResolvedDynamicRef = resolved
		}
		// If resolution fails, leave ResolvedDynamicRef as nil and validation will handle this gracefully
	}

	if s.RecursiveRef != "" {
		if resolved, err := s.resolveRecursiveRef(); err == nil {
			s.ResolvedRecursiveRef = resolved
		}
	}

	s.forEachSubschema(func(child *Schema) {
		child.resolveReferences()
	})
}

// GetUnresolvedReferenceURIs returns a list of URIs that this schema references but are not yet resolved
func (s *Schema) GetUnresolvedReferenceURIs() []string {
	var unresolvedURIs []string

	if s.Ref != "" && s.ResolvedRef == nil {
		unresolvedURIs = append(unresolvedURIs, s.Ref)
	}

	if s.DynamicRef != "" && s.ResolvedDynamicRef == nil {
		unresolvedURIs = append(unresolvedURIs, s.DynamicRef)
	}

	if s.RecursiveRef != "" && s.ResolvedRecursiveRef == nil {
		unresolvedURIs = append(unresolvedURIs, s.RecursiveRef)
	}

	s.forEachSubschema(func(child *Schema) {
		unresolvedURIs = append(unresolvedURIs, child.GetUnresolvedReferenceURIs()...)
	})

	return unresolvedURIs
}
