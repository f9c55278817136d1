package loader

import "testing"

func TestEnvLoader_Load(t *testing.T) {
	l := NewEnvLoaderFrom("XXCMD_", []string{
		"XXCMD_DISPLAY_LABEL_PADDING=3",
		"XXCMD_EXEC_ECHO_COMMANDS=off",
		"XXCMD_SEARCH_MODE=both",
		"XXCMD_LOGGING_FILE=/tmp/xx.log",
		"XXCMD_NOSECTION=1",
		"HOME=/home/user",
		"MALFORMED",
	})

	config, err := l.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	tests := []struct {
		section, key string
		want         any
	}{
		{"display", "label_padding", int64(3)},
		{"exec", "echo_commands", false},
		{"search", "mode", "both"},
		{"logging", "file", "/tmp/xx.log"},
	}
	for _, tt := range tests {
		values, ok := config[tt.section].(map[string]any)
		if !ok {
			t.Errorf("section %s missing", tt.section)
			continue
		}
		if got := values[tt.key]; got != tt.want {
			t.Errorf("%s.%s = %v (%T), want %v", tt.section, tt.key, got, got, tt.want)
		}
	}
	if len(config) != 4 {
		t.Errorf("got %d sections, want 4: %v", len(config), config)
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		in   string
		want any
	}{
		{"true", true},
		{"Yes", true},
		{"ON", true},
		{"false", false},
		{"no", false},
		{"off", false},
		{"42", int64(42)},
		{"-1", int64(-1)},
		{"1", int64(1)},
		{"2s", "2s"},
		{"", ""},
		{"labels-first", "labels-first"},
	}
	for _, tt := range tests {
		if got := parseValue(tt.in); got != tt.want {
			t.Errorf("parseValue(%q) = %v (%T), want %v", tt.in, got, got, tt.want)
		}
	}
}
