package utils

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Encode marshals v as "json" (indented) or "yaml".
func Encode(v any, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case "", "json":
		return PrettyJSON(v)
	case "yaml", "yml":
		b, err := yaml.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("marshal yaml: %w", err)
		}
		return b, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s (use json|yaml)", format)
	}
}

// ContentID derives a stable UUID (v5) from data, so identical output maps to one name.
func ContentID(data []byte) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, data).String()
}
