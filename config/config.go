// Package config holds the platform profile that fills the general settings block of a
// scatter file. The defaults describe the MT6765 reference project, so a missing
// profile produces the stock MT6765_Android_scatter.txt.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/moffa90/go-mtkscatter/gpt"
)

// Platform describes the target chip and project of a scatter file.
type Platform struct {
	// ConfigVersion is the scatter format version understood by the flashing tool
	ConfigVersion string `yaml:"config_version"`

	// Platform is the chip name, e.g. MT6765
	Platform string `yaml:"platform"`

	// Project is the board project name
	Project string `yaml:"project"`

	// BootChannel is the storage controller the boot ROM reads from
	BootChannel string `yaml:"boot_channel"`

	// BlockSize is the erase block size as a hex literal
	BlockSize string `yaml:"block_size"`

	// Output overrides the scatter file name (optional)
	Output string `yaml:"output,omitempty"`
}

// Default returns the MT6765 reference profile.
func Default() *Platform {
	return &Platform{
		ConfigVersion: "V1.1.2",
		Platform:      "MT6765",
		Project:       "k65",
		BootChannel:   "MSDC_0",
		BlockSize:     "0x20000",
	}
}

// Load loads a profile from a YAML file. Fields missing from the file keep their
// default values, and a missing file yields Default().
func Load(path string) (*Platform, error) {
	p := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return p, nil
		}
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}

	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("failed to parse profile: %w", err)
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	return p, nil
}

// Save writes the profile to a YAML file.
func (p *Platform) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create profile directory: %w", err)
		}
	}

	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write profile: %w", err)
	}

	return nil
}

// Validate checks that every header field is set and normalizes BlockSize.
func (p *Platform) Validate() error {
	required := []struct {
		key   string
		value string
	}{
		{"config_version", p.ConfigVersion},
		{"platform", p.Platform},
		{"project", p.Project},
		{"boot_channel", p.BootChannel},
		{"block_size", p.BlockSize},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("invalid profile: %s is empty", f.key)
		}
	}

	blockSize, err := gpt.TrimHex(p.BlockSize)
	if err != nil {
		return fmt.Errorf("invalid profile: block_size: %w", err)
	}
	p.BlockSize = blockSize

	return nil
}

// ScatterFileName returns the output file name, "<platform>_Android_scatter.txt" unless
// Output is set.
func (p *Platform) ScatterFileName() string {
	if p.Output != "" {
		return p.Output
	}
	return p.Platform + "_Android_scatter.txt"
}
