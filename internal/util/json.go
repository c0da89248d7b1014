package util

import (
	"encoding/json"
	"fmt"
	"strings"
)

// StripCodeFences removes a surrounding ```json / ``` fence from LLM output.
func StripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// ExtractJSON returns the first well-formed JSON object or array embedded in
// free text. Providers often wrap their JSON in prose or code fences; this is
// the single place that digs it out. Returns an error when no balanced
// candidate parses.
func ExtractJSON(s string) (string, error) {
	s = StripCodeFences(s)
	for i := 0; i < len(s); i++ {
		open := s[i]
		if open != '{' && open != '[' {
			continue
		}
		if end, ok := matchBalanced(s, i); ok {
			candidate := s[i : end+1]
			if json.Valid([]byte(candidate)) {
				return candidate, nil
			}
		}
	}
	return "", fmt.Errorf("no valid JSON object or array found in response")
}

// ExtractJSONInto extracts the first embedded JSON value and unmarshals it
// into v.
func ExtractJSONInto(s string, v interface{}) error {
	raw, err := ExtractJSON(s)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return fmt.Errorf("failed to unmarshal extracted JSON: %w", err)
	}
	return nil
}

// matchBalanced scans from the opening bracket at start and returns the index
// of its matching close bracket, honoring string literals and escapes.
func matchBalanced(s string, start int) (int, bool) {
	open := s[start]
	var close byte
	if open == '{' {
		close = '}'
	} else {
		close = ']'
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}
	return 0, false
}
