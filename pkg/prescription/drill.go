// Package prescription turns a scored swing into a short, ranked list of
// corrective drills drawn from a read-only catalog.
package prescription

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var (
	// ErrInvalidDrill is returned for a drill record missing required fields.
	ErrInvalidDrill = errors.New("invalid drill")
	// ErrDuplicateDrill is returned when two catalog entries share an ID.
	ErrDuplicateDrill = errors.New("duplicate drill id")
)

// Category is the pillar a drill trains, or multi for integration drills.
type Category string

const (
	CategoryAnchor    Category = "anchor"
	CategoryStability Category = "stability"
	CategoryWhip      Category = "whip"
	CategoryMulti     Category = "multi"
)

// PriorityLevel is the catalog's own ranking of a drill.
type PriorityLevel string

const (
	PriorityVeryHigh PriorityLevel = "very_high"
	PriorityHigh     PriorityLevel = "high"
	PriorityModerate PriorityLevel = "moderate"
	PriorityLow      PriorityLevel = "low"
)

// rank orders priority levels; lower is more urgent. Unknown levels sort last.
func (p PriorityLevel) rank() int {
	switch p {
	case PriorityVeryHigh:
		return 0
	case PriorityHigh:
		return 1
	case PriorityModerate:
		return 2
	case PriorityLow:
		return 3
	default:
		return 4
	}
}

// Drill is one catalog entry. Drills are never mutated by this package.
type Drill struct {
	ID            string        `json:"id" yaml:"id" validate:"required"`
	Title         string        `json:"title" yaml:"title"`
	Category      Category      `json:"category" yaml:"category" validate:"required,oneof=anchor stability whip multi"`
	PriorityLevel PriorityLevel `json:"priority_level" yaml:"priority_level" validate:"required,oneof=very_high high moderate low"`
	Targets       []string      `json:"targets" yaml:"targets" validate:"required,min=1,dive,required"`
	Description   string        `json:"description,omitempty" yaml:"description,omitempty"`
	Equipment     []string      `json:"equipment,omitempty" yaml:"equipment,omitempty"`
	Reps          string        `json:"reps,omitempty" yaml:"reps,omitempty"`
	VideoURL      string        `json:"video_url,omitempty" yaml:"video_url,omitempty"`
}

// targets reports whether the drill addresses a checklist code.
func (d Drill) targets(code ChecklistCode) bool {
	for _, t := range d.Targets {
		if t == string(code) {
			return true
		}
	}
	return false
}

var validate = validator.New()

// Validate checks the drill's required fields.
func (d Drill) Validate() error {
	if err := validate.Struct(d); err != nil {
		return fmt.Errorf("%w %q: %v", ErrInvalidDrill, d.ID, err)
	}
	return nil
}

// ValidateCatalog checks every drill and rejects duplicate IDs.
func ValidateCatalog(drills []Drill) error {
	seen := make(map[string]bool, len(drills))
	for i, d := range drills {
		if err := d.Validate(); err != nil {
			return fmt.Errorf("catalog entry %d: %w", i, err)
		}
		if seen[d.ID] {
			return fmt.Errorf("catalog entry %d: %w: %s", i, ErrDuplicateDrill, d.ID)
		}
		seen[d.ID] = true
	}
	return nil
}

// catalogFile is the on-disk shape of a catalog.
type catalogFile struct {
	Drills []Drill `json:"drills" yaml:"drills"`
}

// LoadCatalog reads and validates a drill catalog. Files ending in .json
// are parsed as JSON, everything else as YAML.
func LoadCatalog(path string) ([]Drill, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}

	format := "yaml"
	if strings.EqualFold(filepath.Ext(path), ".json") {
		format = "json"
	}
	return DecodeCatalog(data, format)
}

// DecodeCatalog parses a catalog of the given format ("json" or "yaml")
// and validates it.
func DecodeCatalog(data []byte, format string) ([]Drill, error) {
	var f catalogFile
	var err error
	switch format {
	case "json":
		err = json.Unmarshal(data, &f)
	case "yaml":
		err = yaml.Unmarshal(data, &f)
	default:
		return nil, fmt.Errorf("unsupported catalog format %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}

	if err := ValidateCatalog(f.Drills); err != nil {
		return nil, err
	}
	return f.Drills, nil
}
