package config

import (
	"errors"
	"fmt"

	"github.com/dshills/xxcmd/internal/config/loader"
)

// ErrConfigExists is returned by WriteDefault when the file is already
// present.
var ErrConfigExists = errors.New("config file already exists")

// ParseError is returned when the configuration file is not valid TOML.
type ParseError = loader.ParseError

// TypeError describes a setting whose value cannot be used.
type TypeError struct {
	// Key is the dotted setting name, e.g. "display.show_labels".
	Key string
	// Value is the offending raw value.
	Value any
	// Want describes the accepted values.
	Want string
}

// Error implements the error interface.
func (e *TypeError) Error() string {
	return fmt.Sprintf("config %s: cannot use %v (%T) as %s", e.Key, e.Value, e.Value, e.Want)
}
