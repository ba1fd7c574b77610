package todo

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// snapshotSchema describes the tasks file. Hand-edited files are checked
// against it before decoding so a bad field is reported by path.
const snapshotSchema = `{
  "type": "object",
  "properties": {
    "tasks": {
      "type": ["array", "null"],
      "items": {
        "type": "object",
        "required": ["id", "title"],
        "properties": {
          "id": {"type": "string", "minLength": 1},
          "title": {"type": "string"},
          "is_checked": {"type": "boolean"},
          "is_running": {"type": "boolean"},
          "spent": {"type": "integer", "minimum": 0},
          "created_at": {"type": "string"}
        }
      }
    },
    "timer": {
      "type": "object",
      "properties": {
        "task_id": {"type": "string"},
        "started_at": {"type": "string"}
      }
    }
  }
}`

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

func loadSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiledSchema, schemaErr = jsonschema.CompileString("tickit-snapshot.json", snapshotSchema)
	})
	return compiledSchema, schemaErr
}

// ValidationError reports the first schema violation found in a tasks file.
type ValidationError struct {
	Path    string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("tasks file invalid at %s: %s", e.Path, e.Message)
	}
	return fmt.Sprintf("tasks file invalid: %s", e.Message)
}

// validateSnapshot checks raw tasks file bytes against the snapshot schema.
func validateSnapshot(data []byte) error {
	schema, err := loadSchema()
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}

	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to unmarshal tasks: %w", err)
	}

	if err := schema.Validate(doc); err != nil {
		ve, ok := err.(*jsonschema.ValidationError)
		if !ok {
			return &ValidationError{Message: err.Error()}
		}
		return firstCause(ve)
	}
	return nil
}

// firstCause walks down to the innermost schema error.
func firstCause(ve *jsonschema.ValidationError) *ValidationError {
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	return &ValidationError{
		Path:    pointerToPath(ve.InstanceLocation),
		Message: ve.Message,
	}
}

// pointerToPath turns "/tasks/0/id" into "tasks.0.id".
func pointerToPath(ptr string) string {
	ptr = strings.TrimPrefix(ptr, "#")
	ptr = strings.TrimPrefix(ptr, "/")
	return strings.ReplaceAll(ptr, "/", ".")
}
