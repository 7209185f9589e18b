// Where: internal/config/validator.go
// What: Schema validator for the workspace config.
// Why: Fail fast with a precise error instead of silently ignoring typos.
package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"sigs.k8s.io/yaml"
)

//go:embed schema/colbuild.schema.json
var schemaSource string

var (
	schemaOnce     sync.Once
	schemaErr      error
	compiledSchema *jsonschema.Schema
)

// Validate checks raw YAML config content against the embedded schema.
func Validate(content []byte) error {
	sch, err := loadSchema()
	if err != nil {
		return err
	}

	jsonData, err := yaml.YAMLToJSON(content)
	if err != nil {
		return fmt.Errorf("convert yaml to json: %w", err)
	}

	var document any
	if err := json.Unmarshal(jsonData, &document); err != nil {
		return fmt.Errorf("unmarshal json: %w", err)
	}
	if document == nil {
		// empty file, defaults apply
		return nil
	}

	if err := sch.Validate(document); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func loadSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("colbuild.schema.json", strings.NewReader(schemaSource)); err != nil {
			schemaErr = err
			return
		}
		compiledSchema, schemaErr = compiler.Compile("colbuild.schema.json")
	})
	return compiledSchema, schemaErr
}
