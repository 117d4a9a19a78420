package project

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ManifestName is the project configuration file name.
const ManifestName = "lunar.toml"

// FindManifest looks for lunar.toml in startDir and its parents. The
// search gives up after a directory holding .git, so a checkout never
// picks up a manifest from outside itself.
func FindManifest(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("resolve %q: %w", startDir, err)
	}
	for {
		path = filepath.Join(dir, ManifestName)
		found, err := exists(path)
		if err != nil || found {
			return path, found, err
		}
		if repo, _ := exists(filepath.Join(dir, ".git")); repo {
			return "", false, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}
		dir = parent
	}
}

func exists(path string) (bool, error) {
	_, err := os.Stat(path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	}
	return false, fmt.Errorf("stat %q: %w", path, err)
}
