package theme

import (
	"fmt"
	"os"

	gotheme "github.com/goliatone/go-theme"
	"gopkg.in/yaml.v3"
)

type manifestFile struct {
	Name     string                 `yaml:"name"`
	Version  string                 `yaml:"version"`
	Tokens   map[string]string      `yaml:"tokens"`
	Assets   assetsFile             `yaml:"assets"`
	Variants map[string]variantFile `yaml:"variants"`
}

type assetsFile struct {
	Prefix string            `yaml:"prefix"`
	Files  map[string]string `yaml:"files"`
}

type variantFile struct {
	Tokens map[string]string `yaml:"tokens"`
	Assets assetsFile        `yaml:"assets"`
}

// LoadManifest decodes a YAML theme manifest.
func LoadManifest(data []byte) (*gotheme.Manifest, error) {
	var file manifestFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("theme: decode manifest: %w", err)
	}
	if file.Name == "" {
		return nil, fmt.Errorf("theme: manifest has no name")
	}

	manifest := &gotheme.Manifest{
		Name:    file.Name,
		Version: file.Version,
		Tokens:  file.Tokens,
		Assets: gotheme.Assets{
			Prefix: file.Assets.Prefix,
			Files:  file.Assets.Files,
		},
	}
	if len(file.Variants) > 0 {
		manifest.Variants = make(map[string]gotheme.Variant, len(file.Variants))
		for name, variant := range file.Variants {
			manifest.Variants[name] = gotheme.Variant{
				Tokens: variant.Tokens,
				Assets: gotheme.Assets{
					Prefix: variant.Assets.Prefix,
					Files:  variant.Assets.Files,
				},
			}
		}
	}
	return manifest, nil
}

// LoadManifestFile reads and decodes a YAML theme manifest from disk.
func LoadManifestFile(path string) (*gotheme.Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("theme: read manifest %s: %w", path, err)
	}
	return LoadManifest(data)
}
