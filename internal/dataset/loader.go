package dataset

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// defaultDataset is the bundled directory used when no file is configured.
//
//go:embed default.yaml
var defaultDataset []byte

// Loader handles loading and parsing of a dataset yaml file.
type Loader struct {
	filePath string
}

// NewLoader creates a loader for filePath. An empty path loads the bundled dataset.
func NewLoader(filePath string) *Loader {
	return &Loader{
		filePath: filePath,
	}
}

// Source describes where the loader reads from.
func (l *Loader) Source() string {
	if l.filePath == "" {
		return "embedded"
	}
	return l.filePath
}

// Load reads and parses the dataset file.
func (l *Loader) Load() (*File, error) {
	data := defaultDataset
	if l.filePath != "" {
		raw, err := os.ReadFile(l.filePath)
		if err != nil {
			return nil, fmt.Errorf("failed to read dataset file: %w", err)
		}
		data = raw
	}

	return Parse(data)
}

// Parse decodes a dataset yaml document. Unknown keys are rejected so typos
// in hand-edited files surface at load time.
func Parse(data []byte) (*File, error) {
	var file File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("failed to parse dataset yaml: %w", err)
	}
	return &file, nil
}
