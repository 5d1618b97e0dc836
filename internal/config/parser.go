package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	tealerterrors "github.com/alexisbeaulieu97/tealert/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseFile loads a definition file from disk, validates it, and returns
// the resulting model.
func ParseFile(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, tealerterrors.NewParseError(path, 0, err)
	}
	return Parse(path, data)
}

// Parse decodes and validates a definition. path is used for error
// messages and to resolve a relative image path.
func Parse(path string, data []byte) (*Definition, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, tealerterrors.NewParseError(path, extractLine(err), err)
	}
	def.path = path

	if err := ValidateDefinition(&def); err != nil {
		return nil, err
	}

	return &def, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
