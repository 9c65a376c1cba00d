package storage

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

var frontmatterRegex = regexp.MustCompile(`(?s)^---\s*\n(.*?)\n---\s*\n?(.*)`)

// ParseFrontmatter extracts YAML frontmatter and body from markdown content
func ParseFrontmatter(content string) (map[string]interface{}, string, error) {
	matches := frontmatterRegex.FindStringSubmatch(content)
	if matches == nil {
		return nil, strings.TrimSpace(content), nil
	}

	var fm map[string]interface{}
	if err := yaml.Unmarshal([]byte(matches[1]), &fm); err != nil {
		return nil, "", fmt.Errorf("parsing frontmatter: %w", err)
	}

	body := strings.TrimSpace(matches[2])
	return fm, body, nil
}

// CreateFrontmatter creates markdown content with YAML frontmatter
func CreateFrontmatter(data map[string]interface{}, body string) (string, error) {
	yamlBytes, err := yaml.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("marshaling frontmatter: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("---\n")
	sb.Write(yamlBytes)
	sb.WriteString("---\n")
	if body != "" {
		sb.WriteString("\n")
		sb.WriteString(body)
		sb.WriteString("\n")
	}

	return sb.String(), nil
}

// GetString safely extracts a string from a map
func GetString(m map[string]interface{}, key string) string {
	if v, ok := m[key]; ok {
		switch val := v.(type) {
		case string:
			return val
		case int:
			return fmt.Sprintf("%d", val)
		case int64:
			return fmt.Sprintf("%d", val)
		case float64:
			return fmt.Sprintf("%.0f", val)
		case bool:
			return fmt.Sprintf("%t", val)
		case time.Time:
			return val.Format(time.RFC3339)
		}
	}
	return ""
}

// GetInt safely extracts an integer from a map
func GetInt(m map[string]interface{}, key string) int {
	switch val := m[key].(type) {
	case int:
		return val
	case int64:
		return int(val)
	case float64:
		return int(val)
	}
	return 0
}

// GetStringSlice extracts a list of scalars as strings
func GetStringSlice(m map[string]interface{}, key string) []string {
	raw, ok := m[key].([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s := GetString(map[string]interface{}{"v": item}, "v"); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// GetTime parses an RFC 3339 or date-only value; unparsable values are zero
func GetTime(m map[string]interface{}, key string) time.Time {
	if t, ok := m[key].(time.Time); ok {
		return t
	}
	s := GetString(m, key)
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
