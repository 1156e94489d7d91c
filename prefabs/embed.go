package prefabs

import (
	"embed"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

//go:embed *.yaml scripts/*.tengo
var embedded embed.FS

// Dir is the on-disk directory whose files take precedence over the embedded
// copies. It is relative to the working directory.
var Dir = "prefabs"

// Load returns a prefab file, preferring the copy under Dir.
func Load(name string) ([]byte, error) {
	return read(specPath(name))
}

// LoadScript returns a tengo script by name, preferring the copy under Dir.
func LoadScript(name string) ([]byte, error) {
	return read(scriptPath(name))
}

// Overridden reports whether the spec file name is served from Dir rather than
// from the embedded set.
func Overridden(name string) bool {
	info, err := os.Stat(diskPath(specPath(name)))
	return err == nil && !info.IsDir()
}

func read(clean string) ([]byte, error) {
	if data, err := os.ReadFile(diskPath(clean)); err == nil {
		return data, nil
	}
	return fs.ReadFile(embedded, clean)
}

// specPath accepts "enemy.yaml" and "prefabs/enemy.yaml".
func specPath(name string) string {
	s := filepath.ToSlash(name)
	s = strings.TrimPrefix(s, "prefabs/")
	return path.Clean(s)
}

// scriptPath maps "patrol.tengo", "scripts/patrol.tengo" and
// "prefabs/scripts/patrol.tengo" to "scripts/patrol.tengo".
func scriptPath(name string) string {
	s := strings.TrimPrefix(specPath(name), "scripts/")
	return path.Join("scripts", s)
}

func diskPath(clean string) string {
	return filepath.Join(Dir, filepath.FromSlash(clean))
}
