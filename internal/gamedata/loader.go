package gamedata

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate checks catalog entries against their struct tags after decoding.
var validate = validator.New()

// Load reads, unmarshals and validates a JSON file from the embedded filesystem.
func Load[T any](filename string) (T, error) {
	var result T

	content, err := dataFS.ReadFile(filename)
	if err != nil {
		return result, fmt.Errorf("failed to read embedded file %s: %w", filename, err)
	}

	if err := json.Unmarshal(content, &result); err != nil {
		return result, fmt.Errorf("failed to parse JSON from %s: %w", filename, err)
	}

	if err := validate.Struct(result); err != nil {
		return result, fmt.Errorf("invalid catalog %s: %w", filename, err)
	}

	return result, nil
}
