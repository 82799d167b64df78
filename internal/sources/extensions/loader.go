package extensions

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

var templateVariable = regexp.MustCompile(`\{\{\s*([A-Za-z_][A-Za-z0-9_]*)\s*\}\}`)

// Loader reads the extensions file.
type Loader struct {
	filePath string
}

func NewLoader(filePath string) *Loader {
	return &Loader{filePath: filePath}
}

// Path returns the file the loader reads.
func (l *Loader) Path() string { return l.filePath }

// Load reads and parses the extensions file.
// {{VAR}} placeholders are replaced by the matching environment variable.
func (l *Loader) Load() (Config, error) {
	data, err := os.ReadFile(l.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read extensions file: %w", err)
	}

	data = expandTemplateVariables(data)

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse extensions yaml: %w", err)
	}

	return config, nil
}

// expandTemplateVariables replaces {{NAME}} with the value of $NAME, empty when unset.
func expandTemplateVariables(data []byte) []byte {
	return templateVariable.ReplaceAllFunc(data, func(m []byte) []byte {
		name := templateVariable.FindSubmatch(m)[1]
		return []byte(os.Getenv(string(name)))
	})
}
