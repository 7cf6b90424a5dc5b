package project

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/piwi3910/garageplan/internal/model"
)

// LoadSettings reads a TOML override file and applies it on top of
// model.DefaultSettings. Keys the file sets to zero keep their default.
// Unknown keys are an error so typos do not go unnoticed.
func LoadSettings(path string) (model.LayoutSettings, error) {
	var override model.LayoutSettings
	md, err := toml.DecodeFile(path, &override)
	if err != nil {
		return model.LayoutSettings{}, fmt.Errorf("failed to load settings %s: %w", filepath.Base(path), err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return model.LayoutSettings{}, fmt.Errorf("unknown settings keys in %s: %s", filepath.Base(path), strings.Join(keys, ", "))
	}

	return model.DefaultSettings().Merge(override), nil
}

// SaveSettings writes settings as TOML, creating parent directories.
func SaveSettings(path string, settings model.LayoutSettings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create settings file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(settings); err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	return nil
}
