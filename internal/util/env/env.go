package env

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

// ProjectRootVar is the environment variable supplying the project root
// directory to lint. Hook callers export it before invoking the gate.
const ProjectRootVar = "LINTGATE_PROJECT_DIR"

// ProjectRoot returns the project root to lint: the value of
// LINTGATE_PROJECT_DIR when set, otherwise the current directory.
func ProjectRoot() string {
	if root := Get(ProjectRootVar); root != "" {
		return root
	}
	return "."
}

// Get retrieves a value from the environment or .lintgate/.env
// It checks the system environment variable first, then the .env file.
func Get(keyName string) string {
	// 1. Check system environment variable first
	if v := os.Getenv(keyName); v != "" {
		return v
	}

	// 2. Check .lintgate/.env file
	return LoadKeyFromEnvFile(filepath.Join(".lintgate", ".env"), keyName)
}

// LoadKeyFromEnvFile reads a specific key from a .env file.
func LoadKeyFromEnvFile(envPath, key string) string {
	file, err := os.Open(envPath)
	if err != nil {
		return ""
	}
	defer func() {
		_ = file.Close()
	}()

	scanner := bufio.NewScanner(file)
	prefix := key + "="

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		// Skip comments and empty lines
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		if strings.HasPrefix(line, prefix) {
			return strings.TrimSpace(line[len(prefix):])
		}
	}

	return ""
}
