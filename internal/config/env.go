package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// EnvFileName picks the environment file for the given GO_ENV value.
func EnvFileName(env string) string {
	if env == "test" {
		return ".env.test"
	}
	return ".env"
}

// LoadEnvFile loads the environment file matching GO_ENV from dir.
// Variables already present in the process environment are not overridden.
func LoadEnvFile(dir string, log logrus.FieldLogger) (string, error) {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("could not get working directory: %w", err)
		}
		dir = wd
	}

	envFile := filepath.Join(dir, EnvFileName(os.Getenv("GO_ENV")))
	if err := godotenv.Load(envFile); err != nil {
		log.WithError(err).Warnf("Could not load environment file %s", envFile)
		return envFile, err
	}

	log.Infof("Environment loaded from file %s", envFile)
	return envFile, nil
}
