package loader

import (
	"os"
	"strconv"
	"strings"
)

// EnvLoader loads configuration from prefixed environment variables.
// XXCMD_DISPLAY_LABEL_PADDING=3 becomes display.label_padding = 3.
type EnvLoader struct {
	prefix  string // Environment variable prefix (e.g., "XXCMD_")
	environ func() []string
}

// NewEnvLoader creates a loader over the process environment.
// The prefix should include the trailing underscore (e.g., "XXCMD_").
func NewEnvLoader(prefix string) *EnvLoader {
	return &EnvLoader{prefix: prefix, environ: os.Environ}
}

// NewEnvLoaderFrom creates a loader over a fixed list of KEY=value pairs.
func NewEnvLoaderFrom(prefix string, environ []string) *EnvLoader {
	return &EnvLoader{
		prefix:  prefix,
		environ: func() []string { return environ },
	}
}

// Load reads environment variables and returns a configuration map.
// Variables without a section and setting part are ignored.
func (l *EnvLoader) Load() (map[string]any, error) {
	config := make(map[string]any)
	for _, env := range l.environ() {
		name, value, ok := strings.Cut(env, "=")
		if !ok || !strings.HasPrefix(name, l.prefix) {
			continue
		}
		section, setting, ok := l.envToPath(name)
		if !ok {
			continue
		}
		values, _ := config[section].(map[string]any)
		if values == nil {
			values = make(map[string]any)
			config[section] = values
		}
		values[setting] = parseValue(value)
	}
	return config, nil
}

// envToPath converts XXCMD_EXEC_ECHO_COMMANDS to ("exec", "echo_commands").
func (l *EnvLoader) envToPath(env string) (section, setting string, ok bool) {
	name := strings.ToLower(strings.TrimPrefix(env, l.prefix))
	section, setting, ok = strings.Cut(name, "_")
	if !ok || section == "" || setting == "" {
		return "", "", false
	}
	return section, setting, true
}

// parseValue attempts to parse the string value into an appropriate type.
// Anything that is not a boolean word or an integer stays a string and is
// coerced by the typed decoder.
func parseValue(s string) any {
	switch strings.ToLower(s) {
	case "true", "yes", "on":
		return true
	case "false", "no", "off":
		return false
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	return s
}
