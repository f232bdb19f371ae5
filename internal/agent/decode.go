package agent

import (
	"encoding/json"
	"fmt"
	"strings"
)

// DecodeObject extracts the first balanced {...} span from raw model output
// and unmarshals it into v. Models routinely wrap the object in markdown code
// fences or surround it with prose; both are tolerated.
func DecodeObject(raw string, v any) error {
	start := strings.IndexByte(raw, '{')
	if start < 0 {
		return fmt.Errorf("no JSON object in response")
	}

	end := -1
	depth := 0
	for i := start; i < len(raw); i++ {
		switch raw[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				end = i
			}
		}
		if end >= 0 {
			break
		}
	}
	if end < 0 {
		return fmt.Errorf("unterminated JSON object in response")
	}

	if err := json.Unmarshal([]byte(raw[start:end+1]), v); err != nil {
		return fmt.Errorf("failed to parse response JSON: %w", err)
	}
	return nil
}
