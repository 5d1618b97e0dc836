package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func validateDefinitionPath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", fmt.Errorf("definition file is required")
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve definition path: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("definition file does not exist: %w", err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("definition path %s is a directory", abs)
	}

	return abs, nil
}
