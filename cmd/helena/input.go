package main

import (
	"fmt"
	"io"
	"os"
)

// loadInput returns eval when it is non-empty; otherwise it reads source
// from path, or from stdin when path is "-". An empty path with no eval
// is an error.
func loadInput(path string, eval string) (string, error) {
	if eval != "" {
		return eval, nil
	}
	if path == "" {
		return "", fmt.Errorf("provide a script path, \"-\" for stdin, or -e for an inline expression")
	}
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		return string(data), err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}
