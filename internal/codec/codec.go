// Package codec converts between the in-memory task sequence and its
// persisted JSON encoding.
//
// The on-disk form is an indented JSON array of field-tagged records, so
// fields added by newer versions stay readable by older ones.
package codec

import (
	"encoding/json"
	"fmt"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/dolist/dolist/internal/domain"
)

// tasksSchema is the structural contract for persisted task files.
// Unknown extra fields are allowed for forward compatibility; missing
// required fields fail decoding.
const tasksSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "array",
	"items": {
		"type": "object",
		"required": ["id", "description", "completed"],
		"properties": {
			"id": {"type": "integer", "minimum": 1},
			"description": {"type": "string"},
			"completed": {"type": "boolean"}
		}
	}
}`

var schema = jsonschema.MustCompileString("tasks.schema.json", tasksSchema)

// record is the wire form of a task.
type record struct {
	ID          int    `json:"id"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

// Encode serializes tasks as an indented JSON array, preserving order and
// every field. Decode(Encode(tasks)) reproduces an equal sequence.
func Encode(tasks []domain.Task) ([]byte, error) {
	records := make([]record, 0, len(tasks))
	for _, t := range tasks {
		records = append(records, record{
			ID:          t.ID,
			Description: t.Description,
			Completed:   t.Completed,
		})
	}

	content, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal tasks: %w", err)
	}
	return content, nil
}

// Decode parses a persisted task file. Input that does not match the
// expected structure fails with a wrapped domain.ErrMalformedFile rather
// than producing a partial list.
func Decode(content []byte) ([]domain.Task, error) {
	var raw any
	if err := json.Unmarshal(content, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedFile, err)
	}
	if err := schema.Validate(raw); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedFile, err)
	}

	var records []record
	if err := json.Unmarshal(content, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedFile, err)
	}

	tasks := make([]domain.Task, 0, len(records))
	seen := make(map[int]bool, len(records))
	for _, r := range records {
		if seen[r.ID] {
			return nil, fmt.Errorf("%w: duplicate task id %d", domain.ErrMalformedFile, r.ID)
		}
		seen[r.ID] = true
		tasks = append(tasks, domain.Task{
			ID:          r.ID,
			Description: r.Description,
			Completed:   r.Completed,
		})
	}
	return tasks, nil
}
