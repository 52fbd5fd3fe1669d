// Package section builds the cross-section outline of a parsed profile and
// measures it. It is a cross-check on the formulas: the net area of an
// outline times the density is the PRECISELY weight for the families whose
// formulas are exact.
package section

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
)

// Section is a closed outline in a local coordinate system where:
// - Y-axis points upward
// - X-axis points to the right
// - the bottom-left corner of the bounding box sits near the origin
type Section struct {
	Name   string `json:"name"`
	Family string `json:"family,omitempty"`

	// Outer boundary in mm, counter-clockwise
	Outer []Point `json:"outer"`

	// Holes of hollow sections in mm, any orientation
	Holes [][]Point `json:"holes,omitempty"`
}

// Point represents a 2D coordinate
type Point struct {
	X float64 `json:"x"` // mm
	Y float64 `json:"y"` // mm
}

// Properties holds calculated geometric properties
type Properties struct {
	// Overall dimensions
	Width  float64 // mm
	Height float64 // mm
	Area   float64 // net area, holes removed (mm²)

	// Centroid of the net area
	CentroidX float64 // mm
	CentroidY float64 // mm

	// Bounding box
	MinX float64
	MaxX float64
	MinY float64
	MaxY float64

	// Perimeter of every ring, holes included (mm)
	Perimeter float64
}

// MassPerMetre converts the net area to kg/m at the given density (kg/m³).
func (p *Properties) MassPerMetre(density float64) float64 {
	return p.Area * 1e-6 * density
}

// Validate checks if the section definition is valid
func (s *Section) Validate() error {
	if len(s.Outer) < 3 {
		return &ValidationError{"outline must have at least 3 vertices"}
	}
	for i, h := range s.Holes {
		if len(h) < 3 {
			return &ValidationError{msg: fmt.Sprintf("hole %d must have at least 3 vertices", i+1)}
		}
	}
	if s.CalculateProperties().Area <= 0 {
		return &ValidationError{"outline must enclose a positive area"}
	}
	return nil
}

// ValidationError represents a section validation error
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

// LoadFromFile loads an outline from a JSON file
func LoadFromFile(path string) (*Section, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read outline %s", path)
	}

	var s Section
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, errors.Wrapf(err, "decode outline %s", path)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

// Save writes the outline as indented JSON.
func (s *Section) Save(path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode outline")
	}
	return errors.Wrapf(os.WriteFile(path, data, 0o644), "write outline %s", path)
}
