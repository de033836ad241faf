package parse

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kaptinlin/jsonrepair"
)

// As parses a JSON string into the specified type T.
// It attempts a strict [json.Unmarshal] first. If that fails, the content is
// repaired once with jsonrepair (fixing single quotes, unquoted keys,
// trailing commas and similar damage) and unmarshaling is retried.
//
// Example:
//
//	req, err := parse.As[engine.Request](`{a: 10, b: 5, operation: 'suma'}`)
func As[T any](content string) (T, error) {
	var result T

	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return result, fmt.Errorf("calcgo: cannot parse empty content")
	}

	if err := json.Unmarshal([]byte(trimmed), &result); err == nil {
		return result, nil
	}

	repaired, repairErr := jsonrepair.JSONRepair(trimmed)
	if repairErr != nil {
		return result, fmt.Errorf("calcgo: failed to repair JSON: %w", repairErr)
	}

	if err := json.Unmarshal([]byte(repaired), &result); err != nil {
		return result, fmt.Errorf("calcgo: failed to parse JSON after repair: %w", err)
	}
	return result, nil
}
