package runner

import (
	"fmt"
	"log"
	"sort"
	"sync"
)

// ===== Errors =====

// errRunnerNotFound is returned when no runner is found for the given tool name.
type errRunnerNotFound struct {
	ToolName string
}

func (e *errRunnerNotFound) Error() string {
	return fmt.Sprintf("runner not found: %s", e.ToolName)
}

// errNilRunner is returned when trying to register a nil runner.
var errNilRunner = fmt.Errorf("cannot register nil runner")

// ===== Registry =====

// ToolRegistration contains all metadata for a registered tool.
type ToolRegistration struct {
	Runner     Runner // Runner instance
	ConfigFile string // Tool config filename (e.g., "ruff.toml"), optional
}

// Registry manages runner registrations.
type Registry struct {
	mu    sync.RWMutex
	tools map[string]*ToolRegistration
}

var (
	globalRegistry *Registry
	once           sync.Once
)

// Global returns the singleton registry instance.
func Global() *Registry {
	once.Do(func() {
		globalRegistry = &Registry{
			tools: make(map[string]*ToolRegistration),
		}
	})
	return globalRegistry
}

// RegisterTool registers a runner with its config filename.
func (r *Registry) RegisterTool(run Runner, configFile string) error {
	if run == nil {
		return errNilRunner
	}

	name := run.Name()

	r.mu.Lock()
	defer r.mu.Unlock()

	// Warn on duplicate registration (init order issues)
	if _, exists := r.tools[name]; exists {
		log.Printf("warning: runner already registered: %s (ignoring duplicate)", name)
		return nil
	}

	r.tools[name] = &ToolRegistration{
		Runner:     run,
		ConfigFile: configFile,
	}

	return nil
}

// GetRunner finds a runner by tool name (e.g., "ruff", "golangci-lint").
func (r *Registry) GetRunner(toolName string) (Runner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if reg, ok := r.tools[toolName]; ok {
		return reg.Runner, nil
	}

	return nil, &errRunnerNotFound{ToolName: toolName}
}

// GetConfigFile returns the config filename by tool name.
func (r *Registry) GetConfigFile(name string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if reg, ok := r.tools[name]; ok {
		return reg.ConfigFile
	}
	return ""
}

// BuildPatternMapping dynamically builds pattern->tools mapping from
// runner capabilities (e.g., "*.py" -> ["ruff"]).
func (r *Registry) BuildPatternMapping() map[string][]string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	mapping := make(map[string][]string)
	for name, reg := range r.tools {
		caps := reg.Runner.Capabilities()
		if caps.FilePattern != "" {
			mapping[caps.FilePattern] = append(mapping[caps.FilePattern], name)
		}
	}
	return mapping
}

// GetAllToolNames returns all registered tool names, sorted.
func (r *Registry) GetAllToolNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
