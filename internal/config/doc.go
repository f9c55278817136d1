// Package config provides the typed configuration for xx.
//
// Settings are read from a TOML file and XXCMD_* environment variables,
// merged, and decoded into a Config once at startup:
//
//	┌─────────────────────────────┐
//	│  4. Command Line Flags      │  ← Highest priority (applied by cmd/xx)
//	├─────────────────────────────┤
//	│  3. Environment Variables   │  ← XXCMD_DISPLAY_LABEL_PADDING=3
//	├─────────────────────────────┤
//	│  2. User Settings           │  ← ~/.config/xxcmd/config.toml
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// Boolean settings accept true/false, yes/no and on/off, in any case.
// Durations use Go syntax ("1s", "750ms"). A value of the wrong type
// fails the load with a *TypeError naming the setting.
//
// Example file:
//
//	[display]
//	bracket_labels = "yes"
//	label_padding = 3
//
//	[search]
//	mode = "both"
//	sort = "label"
package config
