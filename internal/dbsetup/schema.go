package dbsetup

import (
	"fmt"
	"os"
	"strings"
)

// SplitStatements splits a script on ";" and drops statements that are
// empty after trimming. File order is kept.
func SplitStatements(content string) []string {
	raw := strings.Split(content, ";")
	statements := make([]string, 0, len(raw))
	for _, stmt := range raw {
		trimmed := strings.TrimSpace(stmt)
		if trimmed == "" {
			continue
		}
		statements = append(statements, trimmed)
	}
	return statements
}

// ReadSchema loads and splits a UTF-8 schema file.
func ReadSchema(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schema file: %w", err)
	}
	return SplitStatements(string(data)), nil
}
