package base64

import (
	"encoding/base64"
	"fmt"
	"strings"
)

func GetContentType(file string) string {
	start := len("data:")
	end := strings.Index(file, ";base64,")

	if end == -1 || end < start {
		return ""
	}

	return file[start:end]
}

// Decode returns the raw bytes of a base64 data URI.
func Decode(file string) ([]byte, error) {
	marker := ";base64,"

	idx := strings.Index(file, marker)
	if idx == -1 {
		return nil, fmt.Errorf("not a base64 data URI")
	}

	data, err := base64.StdEncoding.DecodeString(file[idx+len(marker):])
	if err != nil {
		return nil, fmt.Errorf("failed to decode base64 data: %w", err)
	}

	return data, nil
}
