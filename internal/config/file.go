package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	configDirName  = "vaultchat"
	configFileName = "config.toml"
)

// File holds the optional defaults read from the TOML config file. The vault
// token is never read from the file.
type File struct {
	PangeaDomain string `toml:"pangea_domain"`
	Model        string `toml:"model"`
}

func DefaultFilePath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config directory: %w", err)
	}

	return filepath.Join(dir, configDirName, configFileName), nil
}

// LoadFile decodes the config file at path. A missing file yields a zero File
// unless explicit is set.
func LoadFile(path string, explicit bool) (File, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return File{}, nil
		}
		return File{}, fmt.Errorf("open config file %s: %w", path, err)
	}
	defer f.Close()

	var file File
	decoder := toml.NewDecoder(f)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&file); err != nil {
		return File{}, fmt.Errorf("decode config file %s: %w", path, err)
	}

	return file, nil
}
