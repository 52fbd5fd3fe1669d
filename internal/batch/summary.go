package batch

import (
	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// Summary counts what happened to each data row.
type Summary struct {
	Output   string `yaml:"output"`
	Accuracy string `yaml:"accuracy"`

	Processed int `yaml:"processed"` // rows with input text
	Written   int `yaml:"written"`
	Skipped   int `yaml:"skipped"` // text not recognised
	Kept      int `yaml:"kept"`    // target occupied and overwrite off
	Empty     int `yaml:"empty"`   // recognised but the formula is empty
	Blank     int `yaml:"blank"`   // no input text

	Mismatches []Mismatch `yaml:"mismatches,omitempty"`
}

// Mismatch records one skipped row.
type Mismatch struct {
	Row    int    `yaml:"row"`
	Text   string `yaml:"text"`
	Reason string `yaml:"reason"`
}

// YAML renders the summary.
func (s *Summary) YAML() (string, error) {
	b, err := yaml.Marshal(s)
	if err != nil {
		return "", errors.Wrap(err, "marshal summary")
	}
	return string(b), nil
}
