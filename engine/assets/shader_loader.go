package assets

import (
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
)

//go:embed shaders themes
var builtin embed.FS

// ErrNotFound is returned when an asset is neither on disk nor built in.
var ErrNotFound = errors.New("asset not found")

// Dir is the on-disk asset root checked before the built-in assets.
var Dir = "assets"

// open looks for kind/name under Dir first, then in the embedded assets.
func open(kind, name string) (fs.File, error) {
	f, err := os.DirFS(Dir).Open(path.Join(kind, name))
	if err == nil {
		return f, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("open %s %q: %w", kind, name, err)
	}
	f, err = builtin.Open(path.Join(kind, name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s %q: %w", kind, name, ErrNotFound)
	}
	return f, err
}

// LoadShader reads a GLSL file into a null-terminated string for OpenGL.
func LoadShader(name string) (string, error) {
	f, err := open("shaders", name)
	if err != nil {
		return "", err
	}
	defer f.Close()
	b, err := io.ReadAll(f)
	if err != nil {
		return "", fmt.Errorf("load shader %q: %w", name, err)
	}
	// Ensure null termination for gl.Str
	if len(b) == 0 || b[len(b)-1] != 0 {
		b = append(b, 0)
	}
	return string(b), nil
}
