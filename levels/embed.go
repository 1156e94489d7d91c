package levels

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed *.yaml
var LevelsFS embed.FS

// Dir is the on-disk directory whose level files take precedence over the
// embedded ones.
var Dir = "levels"

var (
	ErrNoPlayerSpawn = errors.New("levels: no player spawn")
	ErrInvalidSize   = errors.New("levels: invalid size")
)

// Load reads a level by name ("tutorial" or "tutorial.yaml").
func Load(name string) (*Level, error) {
	file := fileName(name)
	data, err := os.ReadFile(filepath.Join(Dir, file))
	if err != nil {
		data, err = LevelsFS.ReadFile(file)
	}
	if err != nil {
		return nil, fmt.Errorf("levels: load %s: %w", file, err)
	}
	return Parse(file, data)
}

// Parse decodes a level document.
func Parse(name string, data []byte) (*Level, error) {
	var lvl Level
	if err := yaml.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("levels: unmarshal %s: %w", name, err)
	}
	if lvl.Name == "" {
		lvl.Name = strings.TrimSuffix(name, filepath.Ext(name))
	}
	return &lvl, nil
}

func fileName(name string) string {
	s := filepath.ToSlash(name)
	s = strings.TrimPrefix(s, "levels/")
	if filepath.Ext(s) == "" {
		s += ".yaml"
	}
	return s
}
