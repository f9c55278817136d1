package config

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/dshills/xxcmd/internal/controller"
)

// decode applies raw settings onto cfg. Sections and keys that xx does
// not know are ignored.
func decode(raw map[string]any, cfg *Config) error {
	d := &decoder{raw: raw}

	d.section("display")
	d.boolean("show_labels", &cfg.Display.ShowLabels)
	d.boolean("show_commands", &cfg.Display.ShowCommands)
	d.boolean("align_commands", &cfg.Display.AlignCommands)
	d.boolean("bracket_labels", &cfg.Display.BracketLabels)
	d.boolean("bold_labels", &cfg.Display.BoldLabels)
	d.boolean("whole_line_selection", &cfg.Display.WholeLineSelection)
	d.boolean("draw_window_border", &cfg.Display.DrawWindowBorder)
	d.boolean("display_help_footer", &cfg.Display.DisplayHelpFooter)
	d.count("label_padding", &cfg.Display.LabelPadding)
	d.duration("flash_duration", &cfg.Display.FlashDuration)

	d.section("search")
	d.choice("mode", &cfg.Search.Mode, "labels-first, labels-only or both", func(s string) error {
		_, err := controller.ParseSearchPolicy(s)
		return err
	})
	d.choice("sort", &cfg.Search.Sort, "none, label or command", func(s string) error {
		_, err := controller.ParseSortPolicy(s)
		return err
	})
	d.boolean("case_sensitive", &cfg.Search.CaseSensitive)

	d.section("database")
	d.str("file", &cfg.Database.File)
	d.str("global_file", &cfg.Database.GlobalFile)
	d.boolean("load_global", &cfg.Database.LoadGlobal)

	d.section("exec")
	d.str("shell", &cfg.Exec.Shell)
	d.boolean("echo_commands", &cfg.Exec.EchoCommands)

	d.section("logging")
	d.str("level", &cfg.Logging.Level)
	d.str("file", &cfg.Logging.File)

	return d.err
}

// decoder walks one section at a time and keeps the first error.
type decoder struct {
	raw    map[string]any
	name   string
	values map[string]any
	err    error
}

func (d *decoder) section(name string) {
	d.name = name
	d.values = nil
	if d.err != nil {
		return
	}
	switch v := d.raw[name].(type) {
	case nil:
	case map[string]any:
		d.values = v
	default:
		d.err = &TypeError{Key: name, Value: v, Want: "table"}
	}
}

// lookup returns the raw value for key when decoding should continue.
func (d *decoder) lookup(key string) (any, bool) {
	if d.err != nil || d.values == nil {
		return nil, false
	}
	v, ok := d.values[key]
	return v, ok
}

func (d *decoder) fail(key string, v any, want string) {
	d.err = &TypeError{Key: d.name + "." + key, Value: v, Want: want}
}

func (d *decoder) boolean(key string, dst *bool) {
	v, ok := d.lookup(key)
	if !ok {
		return
	}
	b, ok := parseBool(v)
	if !ok {
		d.fail(key, v, "true/false, yes/no or on/off")
		return
	}
	*dst = b
}

// count decodes a non-negative integer.
func (d *decoder) count(key string, dst *int) {
	v, ok := d.lookup(key)
	if !ok {
		return
	}
	n, ok := parseInt(v)
	if !ok || n < 0 {
		d.fail(key, v, "non-negative integer")
		return
	}
	*dst = n
}

func (d *decoder) duration(key string, dst *Duration) {
	v, ok := d.lookup(key)
	if !ok {
		return
	}
	var dur time.Duration
	switch x := v.(type) {
	case time.Duration:
		dur = x
	case string:
		parsed, err := time.ParseDuration(strings.TrimSpace(x))
		if err != nil {
			d.fail(key, v, "duration such as 1s or 500ms")
			return
		}
		dur = parsed
	default:
		d.fail(key, v, "duration such as 1s or 500ms")
		return
	}
	if dur < 0 {
		d.fail(key, v, "non-negative duration")
		return
	}
	*dst = Duration(dur)
}

func (d *decoder) str(key string, dst *string) {
	v, ok := d.lookup(key)
	if !ok {
		return
	}
	switch x := v.(type) {
	case string:
		*dst = x
	case int64:
		*dst = strconv.FormatInt(x, 10)
	default:
		d.fail(key, v, "string")
	}
}

// choice decodes a string accepted by valid.
func (d *decoder) choice(key string, dst *string, want string, valid func(string) error) {
	v, ok := d.lookup(key)
	if !ok {
		return
	}
	s, ok := v.(string)
	if !ok || valid(s) != nil {
		d.fail(key, v, want)
		return
	}
	*dst = strings.ToLower(s)
}

func parseBool(v any) (bool, bool) {
	switch x := v.(type) {
	case bool:
		return x, true
	case string:
		switch strings.ToLower(strings.TrimSpace(x)) {
		case "true", "yes", "on":
			return true, true
		case "false", "no", "off":
			return false, true
		}
	}
	return false, false
}

func parseInt(v any) (int, bool) {
	switch x := v.(type) {
	case int:
		return x, true
	case int64:
		if x < math.MinInt || x > math.MaxInt {
			return 0, false
		}
		return int(x), true
	case float64:
		if x != math.Trunc(x) || math.IsInf(x, 0) {
			return 0, false
		}
		return int(x), true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(x))
		return n, err == nil
	}
	return 0, false
}
