package export

import (
	"encoding/json"
	"os"

	"github.com/azulpractice/engine/pkg/model"
)

// ExportJSON serializes state to JSON with indentation.
// Returns formatted JSON with 2-space indentation for readability.
func ExportJSON(state model.State) ([]byte, error) {
	return json.MarshalIndent(state, "", "  ")
}

// ExportJSONCompact serializes state to JSON without indentation.
// Returns compact JSON suitable for storage or transmission.
func ExportJSONCompact(state model.State) ([]byte, error) {
	return json.Marshal(state)
}

// SaveJSONToFile exports state to a JSON file with indentation.
// The file is created with 0644 permissions (readable by all, writable by owner).
func SaveJSONToFile(state model.State, filepath string) error {
	data, err := ExportJSON(state)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath, data, 0644)
}

// SaveJSONCompactToFile exports state to a compact JSON file.
// The file is created with 0644 permissions (readable by all, writable by owner).
func SaveJSONCompactToFile(state model.State, filepath string) error {
	data, err := ExportJSONCompact(state)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath, data, 0644)
}
