// Package catalog supplies the initial photo list: a TOML or YAML manifest on
// disk, or the built-in sample photos when no manifest is configured.
package catalog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/jask/photogrid/internal/photo"
)

var (
	ErrNoPhotos          = errors.New("manifest has no photos")
	ErrUnsupportedFormat = errors.New("unsupported manifest format")
)

// manifest is the on-disk shape shared by both encodings.
type manifest struct {
	Photo  []photo.Photo `toml:"photo" yaml:"-"`
	Photos []photo.Photo `toml:"-" yaml:"photos"`
}

func (m manifest) list() []photo.Photo {
	return append(append([]photo.Photo(nil), m.Photo...), m.Photos...)
}

// Defaults returns the built-in sample photos.
func Defaults() []photo.Photo {
	return []photo.Photo{
		{Src: "https://picsum.photos/id/1018/400/300", Width: 400, Height: 300, Alt: "mountain valley"},
		{Src: "https://picsum.photos/id/1015/400/300", Width: 400, Height: 300, Alt: "river canyon"},
		{Src: "https://picsum.photos/id/1019/400/300", Width: 400, Height: 300, Alt: "coastline"},
	}
}

// Load reads the manifest at path. An empty path returns Defaults.
func Load(path string) ([]photo.Photo, error) {
	if strings.TrimSpace(path) == "" {
		return Defaults(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	return Parse(data, filepath.Ext(path))
}

// Parse decodes manifest bytes. ext selects the encoding (".toml", ".yaml"
// or ".yml").
func Parse(data []byte, ext string) ([]photo.Photo, error) {
	var m manifest
	switch strings.ToLower(ext) {
	case ".toml":
		if _, err := toml.Decode(string(data), &m); err != nil {
			return nil, fmt.Errorf("parse manifest toml: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("parse manifest yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	list := m.list()
	if err := Validate(list); err != nil {
		return nil, err
	}
	return list, nil
}

// Validate rejects empty lists, missing sources and non-positive dimensions.
func Validate(list []photo.Photo) error {
	if len(list) == 0 {
		return ErrNoPhotos
	}
	for i, p := range list {
		if strings.TrimSpace(p.Src) == "" {
			return fmt.Errorf("photo[%d]: src is required", i)
		}
		if p.Width <= 0 || p.Height <= 0 {
			return fmt.Errorf("photo[%d] %q: width and height must be positive", i, p.Src)
		}
	}
	return nil
}
