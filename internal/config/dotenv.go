package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

const DefaultEnvFile = ".env"

// LoadDotEnv loads path into the process environment, overriding variables
// that are already set. A missing file is ignored unless explicit is set.
func LoadDotEnv(path string, explicit bool) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return nil
		}
		return fmt.Errorf("stat env file %s: %w", path, err)
	}

	if err := godotenv.Overload(path); err != nil {
		return fmt.Errorf("load env file %s: %w", path, err)
	}

	return nil
}
