package key

import (
	"testing"
)

func TestKeyString(t *testing.T) {
	tests := []struct {
		key  Key
		want string
	}{
		{KeyNone, "None"},
		{KeyEscape, "Escape"},
		{KeyEnter, "Enter"},
		{KeyTab, "Tab"},
		{KeyBackspace, "Backspace"},
		{KeyDelete, "Delete"},
		{KeyUp, "Up"},
		{KeyDown, "Down"},
		{KeyLeft, "Left"},
		{KeyRight, "Right"},
		{KeyF1, "F1"},
		{KeyF12, "F12"},
		{KeyRune, "Rune"},
		{Key(999), "Key(999)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.key.String(); got != tt.want {
				t.Errorf("Key.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestKeyClassification(t *testing.T) {
	if KeyRune.IsSpecial() || KeyNone.IsSpecial() {
		t.Error("KeyRune and KeyNone are not special")
	}
	if !KeyEscape.IsSpecial() {
		t.Error("KeyEscape should be special")
	}
	if !KeyF3.IsFunctionKey() || KeyEnter.IsFunctionKey() {
		t.Error("IsFunctionKey misclassified")
	}
	if !KeyLeft.IsArrowKey() || KeyHome.IsArrowKey() {
		t.Error("IsArrowKey misclassified")
	}
}
