package envsource

import (
	"fmt"

	"github.com/joho/godotenv"
)

// FromDotEnv reads the given .env files into a [Map]. When a variable appears
// in several files the first file wins, matching godotenv.Load semantics.
// With no paths it reads ".env" in the working directory.
func FromDotEnv(paths ...string) (Map, error) {
	if len(paths) == 0 {
		paths = []string{".env"}
	}

	out := make(Map)
	for _, path := range paths {
		vars, err := godotenv.Read(path)
		if err != nil {
			return nil, fmt.Errorf("error reading dotenv file %q: %w", path, err)
		}
		for name, value := range vars {
			if _, exists := out[name]; !exists {
				out[name] = value
			}
		}
	}

	return out, nil
}
