package extract

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Profile describes which parts of a document the extractor reads.
// The zero value is not usable; start from Default or FromFile.
type Profile struct {
	// TitleSelector matches the heading emitted as the title fragment.
	TitleSelector string `json:"title_selector" yaml:"title_selector" validate:"required"`

	// ContentSelector matches the container whose direct children are scanned.
	ContentSelector string `json:"content_selector" yaml:"content_selector" validate:"required"`

	// ParagraphTags are element names treated as paragraphs.
	ParagraphTags []string `json:"paragraph_tags" yaml:"paragraph_tags" validate:"required,min=1,dive,required"`

	// SeparatorTags are element names treated as section separators.
	SeparatorTags []string `json:"separator_tags" yaml:"separator_tags" validate:"required,min=1,dive,required"`
}

// Default returns the profile for the document layout both tools were
// written for: an h1.title heading above a div.show-content body.
func Default() Profile {
	return Profile{
		TitleSelector:   "h1.title",
		ContentSelector: "div.show-content",
		ParagraphTags:   []string{"p"},
		SeparatorTags:   []string{"hr"},
	}
}

// FromFile loads a profile from a JSON or YAML file.
func FromFile(path string) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("failed to read profile file: %w", err)
	}

	var p Profile
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		if err := json.Unmarshal(data, &p); err != nil {
			return Profile{}, fmt.Errorf("failed to parse JSON profile: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &p); err != nil {
			return Profile{}, fmt.Errorf("failed to parse YAML profile: %w", err)
		}
	default:
		return Profile{}, fmt.Errorf("unsupported profile file format: %s", ext)
	}

	if err := p.Validate(); err != nil {
		return Profile{}, err
	}
	return p, nil
}

// Validate checks that every selector and tag list is filled in and that
// the selectors compile. Scanning assumes valid selectors; goquery panics
// on ones that don't parse.
func (p Profile) Validate() error {
	if err := validator.New().Struct(p); err != nil {
		return fmt.Errorf("invalid profile: %w", err)
	}
	for _, sel := range []string{p.TitleSelector, p.ContentSelector} {
		if _, err := cascadia.Compile(sel); err != nil {
			return fmt.Errorf("invalid profile selector %q: %w", sel, err)
		}
	}
	return nil
}

func (p Profile) isParagraph(tag string) bool {
	return containsFold(p.ParagraphTags, tag)
}

func (p Profile) isSeparator(tag string) bool {
	return containsFold(p.SeparatorTags, tag)
}

func containsFold(tags []string, tag string) bool {
	for _, t := range tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}
