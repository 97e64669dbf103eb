package layout

import (
	_ "embed"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	cuejson "cuelang.org/go/encoding/json"

	oerrors "github.com/opmodel/jproj/internal/errors"
)

//go:embed schema/template.cue
var templateSchemaCUE []byte

// Override is a parsed override file.
type Override struct {
	// Template holds the selected key and its paths.
	Template Template

	// Keys lists every key of the override object in document order.
	Keys []string
}

// ParseOverride parses an override file. The document must be a JSON object
// mapping names to lists of relative paths; it is checked against the
// embedded CUE schema. When key is empty the first key in document order is
// selected.
//
// Every failure is a malformed template error.
func ParseOverride(path string, data []byte, key string) (*Override, error) {
	expr, err := cuejson.Extract(path, data)
	if err != nil {
		return nil, oerrors.NewMalformedTemplateError(
			fmt.Sprintf("not valid JSON: %s", cueerrors.Details(err, nil)), path, "")
	}

	ctx := cuecontext.New()
	v := ctx.BuildExpr(expr)
	if v.Err() != nil {
		return nil, oerrors.NewMalformedTemplateError(cueerrors.Details(v.Err(), nil), path, "")
	}

	if v.Kind() != cue.StructKind {
		return nil, oerrors.NewMalformedTemplateError(
			fmt.Sprintf("expected a JSON object, got %s", v.Kind()), path, "")
	}

	if err := validateOverride(ctx, v); err != nil {
		return nil, oerrors.NewMalformedTemplateError(err.Error(), path, "")
	}

	keys, values, err := orderedFields(v)
	if err != nil {
		return nil, oerrors.NewMalformedTemplateError(err.Error(), path, "")
	}
	if len(keys) == 0 {
		return nil, oerrors.NewMalformedTemplateError("the object has no keys", path, "")
	}

	idx := 0
	if key != "" {
		idx = -1
		for i, k := range keys {
			if k == key {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil, oerrors.NewMalformedTemplateError(
				fmt.Sprintf("key %q not found; available keys: %v", key, keys), path, key)
		}
	}

	var paths []string
	if err := values[idx].Decode(&paths); err != nil {
		return nil, oerrors.NewMalformedTemplateError(
			fmt.Sprintf("decoding paths: %s", cueerrors.Details(err, nil)), path, keys[idx])
	}
	if paths == nil {
		paths = []string{}
	}

	return &Override{
		Template: Template{
			Name:   keys[idx],
			Source: SourceOverride,
			File:   path,
			Paths:  paths,
		},
		Keys: keys,
	}, nil
}

// validateOverride unifies v with the #Template schema definition.
func validateOverride(ctx *cue.Context, v cue.Value) error {
	schema := ctx.CompileBytes(templateSchemaCUE, cue.Filename("template.cue"))
	if schema.Err() != nil {
		return fmt.Errorf("compiling template schema: %w", schema.Err())
	}

	def := schema.LookupPath(cue.ParsePath("#Template"))
	unified := def.Unify(v)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("%s", cueerrors.Details(err, nil))
	}
	return nil
}

// orderedFields returns the regular fields of v in declaration order.
func orderedFields(v cue.Value) ([]string, []cue.Value, error) {
	iter, err := v.Fields()
	if err != nil {
		return nil, nil, fmt.Errorf("reading fields: %w", err)
	}

	var keys []string
	var values []cue.Value
	for iter.Next() {
		keys = append(keys, iter.Selector().Unquoted())
		values = append(values, iter.Value())
	}
	return keys, values, nil
}
