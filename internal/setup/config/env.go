package config

import (
	"bufio"
	"log"
	"os"
	"strings"
)

// LoadEnvFile reads KEY=VALUE pairs into the process environment.
// Variables already set in the environment win over file values, so
// deployments can override the checked-in defaults.
func LoadEnvFile(path string) {
	file, err := os.Open(path)
	if err != nil {
		log.Printf("no env file at %s, relying on process environment", path)
		return
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}

		key = strings.TrimSpace(key)
		value = strings.Trim(strings.TrimSpace(value), `"`)
		if os.Getenv(key) == "" {
			os.Setenv(key, value)
		}
	}
}
