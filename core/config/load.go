package config

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"
)

// Load loads the configuration from the directory.
func Load(path string) (*Configuration, error) {
	return LoadFs(afero.NewOsFs(), path)
}

// LoadFs loads the configuration from a directory on the given filesystem.
// The file may only contain the fields in Overrides, fields missing from it
// keep their default values.
func LoadFs(fsys afero.Fs, path string) (*Configuration, error) {
	// If given the path to a config.yaml file, move back up a level.
	if filepath.Base(path) == ConfigurationName {
		path = filepath.Dir(path)
	}

	configContents, err := afero.ReadFile(fsys, filepath.Join(path, ConfigurationName))
	if err != nil {
		return nil, err
	}

	out := Default()
	overrides := Overrides{BannerWidth: out.BannerWidth, UsageHint: out.UsageHint}
	if err := yaml.UnmarshalStrict(configContents, &overrides); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", ConfigurationName, err)
	}
	overrides.Apply(out)
	if err := out.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return out, nil
}

// FromEnv loads the configuration named by $HOSTREPORT_CONFIG, falling back
// to the built-in configuration if it isn't set.
func FromEnv(lookupEnv func(string) (string, bool)) (*Configuration, error) {
	path, ok := lookupEnv(EnvConfigPath)
	if !ok || path == "" {
		return Default(), nil
	}
	return Load(path)
}
