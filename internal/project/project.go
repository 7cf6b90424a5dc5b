package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/piwi3910/garageplan/internal/model"
)

// Project bundles a garage, how it will be used, optional settings
// overrides and the last recommendation computed for it.
type Project struct {
	Name     string                      `json:"name" yaml:"name"`
	Garage   model.GarageSpace           `json:"garage" yaml:"garage"`
	Profile  model.UsageProfile          `json:"profile" yaml:"profile"`
	Settings *model.LayoutSettings       `json:"settings,omitempty" yaml:"settings,omitempty"`
	Result   *model.LayoutRecommendation `json:"result,omitempty" yaml:"result,omitempty"`
}

// Format is a project file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatForPath picks the encoding from the file extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported project file extension %q (use .json, .yaml or .yml)", filepath.Ext(path))
	}
}

// LoadProject reads a project file. Features without a type or width get
// the defaults for their name, and a missing name falls back to the file
// name.
func LoadProject(path string) (Project, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return Project{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Project{}, fmt.Errorf("failed to read project: %w", err)
	}

	var p Project
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &p)
	default:
		err = json.Unmarshal(data, &p)
	}
	if err != nil {
		return Project{}, fmt.Errorf("failed to parse project %s: %w", filepath.Base(path), err)
	}

	if p.Name == "" {
		p.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	p.Garage = normalizeFeatures(p.Garage)
	return p, nil
}

// SaveProject writes p in the format implied by the path extension,
// creating parent directories as needed.
func SaveProject(path string, p Project) error {
	format, err := FormatForPath(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create project directory: %w", err)
	}

	var data []byte
	switch format {
	case FormatYAML:
		data, err = yaml.Marshal(p)
	default:
		data, err = json.MarshalIndent(p, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to encode project: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write project: %w", err)
	}
	return nil
}

// EffectiveSettings layers the project's own overrides on top of base.
func (p Project) EffectiveSettings(base model.LayoutSettings) model.LayoutSettings {
	if p.Settings == nil {
		return base
	}
	return base.Merge(*p.Settings)
}

func normalizeFeatures(g model.GarageSpace) model.GarageSpace {
	fix := func(fs []model.Feature) []model.Feature {
		if fs == nil {
			return nil
		}
		out := make([]model.Feature, len(fs))
		for i, f := range fs {
			out[i] = model.NewFeature(f.Name, f.Type, f.Position, f.Width)
		}
		return out
	}
	g.North = fix(g.North)
	g.East = fix(g.East)
	g.South = fix(g.South)
	g.West = fix(g.West)
	g.Floor = fix(g.Floor)
	return g
}
