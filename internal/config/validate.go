package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed schema.json
var schemaJSON []byte

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

// Parse validates raw preferences JSON against the embedded schema and
// decodes it over the defaults, so a partial file only overrides the
// fields it names. A file that names availability replaces the whole
// weekly table rather than merging into the default one.
func Parse(raw []byte) (Preferences, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return Preferences{}, fmt.Errorf("preferences: invalid JSON: %w", err)
	}

	schema, err := compiledSchema()
	if err != nil {
		return Preferences{}, err
	}
	if err := schema.Validate(parsed); err != nil {
		return Preferences{}, fmt.Errorf("preferences: %w", err)
	}

	p := Default()
	if obj, ok := parsed.(map[string]any); ok {
		if _, ok := obj["availability"]; ok {
			p.Availability = nil
		}
	}
	if err := json.Unmarshal(raw, &p); err != nil {
		return Preferences{}, fmt.Errorf("preferences: %w", err)
	}
	return p, nil
}

// compiledSchema compiles the embedded schema once and caches it.
func compiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value (any),
		// not raw bytes.
		var def any
		if err := json.Unmarshal(schemaJSON, &def); err != nil {
			compileErr = fmt.Errorf("parse embedded schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://preferences.json"
		if err := c.AddResource(schemaURL, def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
	})
	return compiled, compileErr
}
