// Package utils holds small helpers for text coming back from LLMs.
package utils

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// Pre-compiled regexes for repairing common LLM JSON mistakes.
var (
	codeFenceRegex      = regexp.MustCompile("(?s)```(?:json|JSON)?\\s*(.*?)```")
	trailingCommaRegex  = regexp.MustCompile(`,\s*([}\]])`)
	singleQuoteKeyRegex = regexp.MustCompile(`([{,]\s*)'(\w+)'(\s*:)`)
	// : 'value' -> : "value"
	singleQuoteValueRegex = regexp.MustCompile(`(:\s*)'((?:[^'\\]|\\.)*)'(\s*[,}\]])`)
)

// ExtractAndParseJSON finds the first JSON value in an LLM response and
// decodes it into T. Markdown fences and trailing prose are ignored, and a
// repair pass fixes trailing commas, single quotes and raw control
// characters before giving up.
func ExtractAndParseJSON[T any](response string) (T, error) {
	var result T

	cleaned := cleanLLMResponse(response)
	if cleaned == "" {
		return result, fmt.Errorf("no JSON found in response")
	}

	idx := strings.IndexAny(cleaned, "{[")
	if idx == -1 {
		return result, fmt.Errorf("no JSON start ({ or [) found")
	}
	jsonPart := cleaned[idx:]

	err := json.NewDecoder(strings.NewReader(jsonPart)).Decode(&result)
	if err == nil {
		return result, nil
	}

	repaired := repairJSON(jsonPart)
	if repaired != jsonPart {
		var second T
		if err2 := json.NewDecoder(strings.NewReader(repaired)).Decode(&second); err2 == nil {
			return second, nil
		}
	}
	return result, fmt.Errorf("parse JSON: %w", err)
}

// cleanLLMResponse strips markdown code fences and surrounding whitespace.
func cleanLLMResponse(response string) string {
	s := strings.TrimSpace(response)
	if m := codeFenceRegex.FindStringSubmatch(s); m != nil {
		s = m[1]
	}
	return strings.TrimSpace(s)
}

// repairJSON fixes the syntax errors LLMs produce most often.
func repairJSON(input string) string {
	result := sanitizeControlChars(input)
	result = trailingCommaRegex.ReplaceAllString(result, `$1`)
	result = singleQuoteKeyRegex.ReplaceAllString(result, `$1"$2"$3`)
	result = singleQuoteValueRegex.ReplaceAllStringFunc(result, func(match string) string {
		parts := singleQuoteValueRegex.FindStringSubmatch(match)
		if len(parts) != 4 {
			return match
		}
		value := strings.ReplaceAll(parts[2], `\'`, `'`)
		value = strings.ReplaceAll(value, `"`, `\"`)
		return parts[1] + `"` + value + `"` + parts[3]
	})
	return result
}

// sanitizeControlChars escapes literal control characters inside JSON strings.
func sanitizeControlChars(input string) string {
	var sb strings.Builder
	sb.Grow(len(input))

	inString, escaped := false, false
	for i := 0; i < len(input); i++ {
		c := input[i]
		switch {
		case escaped:
			escaped = false
		case c == '\\' && inString:
			escaped = true
		case c == '"':
			inString = !inString
		case inString && c < 0x20:
			switch c {
			case '\n':
				sb.WriteString(`\n`)
			case '\t':
				sb.WriteString(`\t`)
			case '\r':
				sb.WriteString(`\r`)
			default:
				fmt.Fprintf(&sb, `\u%04x`, c)
			}
			continue
		}
		sb.WriteByte(c)
	}
	return sb.String()
}
