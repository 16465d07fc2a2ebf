// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// Schema is one definition of a compiled CUE schema.
type Schema struct {
	ctx *cue.Context
	def cue.Value
}

// CompileSchema compiles src and selects the named definition (e.g. "#Config").
func CompileSchema(src, definition string) (*Schema, error) {
	ctx := cuecontext.New()

	schemaValue := ctx.CompileString(src)
	if err := schemaValue.Err(); err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}

	def := schemaValue.LookupPath(cue.ParsePath(definition))
	if err := def.Err(); err != nil {
		return nil, fmt.Errorf("lookup %s: %w", definition, err)
	}
	if !def.Exists() {
		return nil, fmt.Errorf("lookup %s: definition not found", definition)
	}

	return &Schema{ctx: ctx, def: def}, nil
}

// DecodeCUE compiles CUE source, validates it and decodes it to a map.
// Fields the schema marks optional may be absent.
func (s *Schema) DecodeCUE(data []byte, filename string) (map[string]any, error) {
	if err := CheckFileSize(data, DefaultMaxFileSize, filename); err != nil {
		return nil, err
	}

	userValue := s.ctx.CompileBytes(data, cue.Filename(filename))
	if err := userValue.Err(); err != nil {
		return nil, FormatError(err, filename)
	}
	return s.decode(userValue, filename)
}

// DecodeValue validates an already parsed document, such as one read from
// TOML, and returns the decoded map.
func (s *Schema) DecodeValue(doc map[string]any, filename string) (map[string]any, error) {
	userValue := s.ctx.Encode(doc)
	if err := userValue.Err(); err != nil {
		return nil, FormatError(err, filename)
	}
	return s.decode(userValue, filename)
}

func (s *Schema) decode(userValue cue.Value, filename string) (map[string]any, error) {
	unified := s.def.Unify(userValue)
	if err := unified.Validate(cue.Concrete(false)); err != nil {
		return nil, FormatError(err, filename)
	}

	var out map[string]any
	if err := unified.Decode(&out); err != nil {
		return nil, FormatError(err, filename)
	}
	return out, nil
}
