package config

import (
	"bytes"
	_ "embed"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// The embedded schemas mirror the DomainDependencies and
// NoPrimitiveObsession types; keep them in sync when a field changes.

//go:embed schemas/domain-dependencies.schema.json
var domainDependenciesSchema []byte

//go:embed schemas/no-primitive-obsession.schema.json
var noPrimitiveObsessionSchema []byte

// validate checks a raw JSON document against one of the embedded schemas.
// Use jsonschema.UnmarshalJSON rather than encoding/json for correct number
// handling during validation.
func validate(schemaJSON []byte, name string, raw []byte) error {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaJSON))
	if err != nil {
		return fmt.Errorf("unmarshal schema %s: %w", name, err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource(name, doc); err != nil {
		return fmt.Errorf("add schema resource %s: %w", name, err)
	}
	schema, err := c.Compile(name)
	if err != nil {
		return fmt.Errorf("compile schema %s: %w", name, err)
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("parse document: %w", err)
	}
	if err := schema.Validate(inst); err != nil {
		return fmt.Errorf("validate document: %w", err)
	}
	return nil
}
