package engine

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Carrier formats are declared as data, not code: each format contributes an
// ordered list of candidate patterns per field in formats.json. The slice
// order is the precedence contract — a later pattern is consulted only when
// every earlier one fails — so format-specific labels beat generic ones.

//go:embed formats.json
var formatsJSON []byte

//go:embed formats_schema.json
var formatsSchemaJSON []byte

// patternSpec is one candidate pattern for a field, contributed by a carrier
// format. Rule overrides the field-level normalization rule when set.
type patternSpec struct {
	Format       string `json:"format"`
	Expr         string `json:"expr"`
	Rule         string `json:"rule,omitempty"`
	Value        string `json:"value,omitempty"`
	MirrorCbm    bool   `json:"mirror_cbm,omitempty"`
	VolumetricKg bool   `json:"volumetric_kg,omitempty"`
}

type fieldSpec struct {
	Name     string        `json:"name"`
	Rule     string        `json:"rule"`
	Patterns []patternSpec `json:"patterns"`
}

type formatsFile struct {
	Version int         `json:"version"`
	Fields  []fieldSpec `json:"fields"`
}

// fieldPattern is a compiled candidate.
type fieldPattern struct {
	format       string
	re           *regexp.Regexp
	rule         string
	value        string
	mirrorCbm    bool
	volumetricKg bool
}

// patternTable maps a field name to its candidates in precedence order.
type patternTable map[string][]fieldPattern

func loadPatternTable() (patternTable, error) {
	if err := validateFormatsConfig(formatsJSON); err != nil {
		return nil, err
	}
	var file formatsFile
	if err := json.Unmarshal(formatsJSON, &file); err != nil {
		return nil, fmt.Errorf("decode formats config: %w", err)
	}

	table := make(patternTable, len(file.Fields))
	for _, f := range file.Fields {
		compiled := make([]fieldPattern, 0, len(f.Patterns))
		for _, p := range f.Patterns {
			re, err := regexp.Compile(p.Expr)
			if err != nil {
				return nil, fmt.Errorf("compile pattern for field %q format %q: %w", f.Name, p.Format, err)
			}
			rule := p.Rule
			if rule == "" {
				rule = f.Rule
			}
			compiled = append(compiled, fieldPattern{
				format:       p.Format,
				re:           re,
				rule:         rule,
				value:        p.Value,
				mirrorCbm:    p.MirrorCbm,
				volumetricKg: p.VolumetricKg,
			})
		}
		table[f.Name] = compiled
	}
	return table, nil
}

// validateFormatsConfig validates the raw config against the embedded JSON
// schema before any pattern is compiled.
func validateFormatsConfig(raw []byte) error {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("formats_schema.json", bytes.NewReader(formatsSchemaJSON)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("formats_schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return fmt.Errorf("decode formats config: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("formats config does not match schema: %w", err)
	}
	return nil
}
