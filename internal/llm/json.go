package llm

import (
	"encoding/json"
	"strings"
)

// ExtractJSON decodes model output into v. It first tries the whole text as
// strict JSON, then falls back to the first balanced {...} substring, since
// models often wrap JSON in prose or markdown fences. It never panics or
// returns an error; false means the text carried no decodable object.
func ExtractJSON(text string, v any) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}
	if json.Unmarshal([]byte(text), v) == nil {
		return true
	}
	obj, ok := firstObject(text)
	if !ok {
		return false
	}
	return json.Unmarshal([]byte(obj), v) == nil
}

// firstObject scans for the first balanced top-level JSON object, tracking
// string literals and escapes so braces inside strings don't miscount.
func firstObject(text string) (string, bool) {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return "", false
	}
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		ch := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}
		switch ch {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1], true
			}
		}
	}
	return "", false
}
