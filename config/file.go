package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// FindConfigFile walks from path toward the filesystem root looking for
// the closest match among cfgFilenames.
func FindConfigFile(path string, cfgFilenames []string) (string, error) {
	var err error

	var dir string
	if path == "." {
		dir, err = os.Getwd()
	} else {
		dir = path
		_, err = os.Stat(dir)
	}

	if err != nil {
		return "", fmt.Errorf("unable to get directory %q to find config: %w", dir, err)
	}

	cfg := findConfigInDir(dir, cfgFilenames)

	for cfg == "" && dir != filepath.Dir(dir) {
		dir = filepath.Dir(dir)
		cfg = findConfigInDir(dir, cfgFilenames)
	}

	if cfg == "" {
		return "", fmt.Errorf("config not found under %s: %w", dir, os.ErrNotExist)
	}

	return cfg, nil
}

func findConfigInDir(dir string, cfgFilenames []string) string {
	for _, cfgName := range cfgFilenames {
		path := filepath.Join(dir, cfgName)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}
