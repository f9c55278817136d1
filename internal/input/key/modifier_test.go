package key

import "testing"

func TestModifierString(t *testing.T) {
	tests := []struct {
		mod  Modifier
		want string
	}{
		{ModNone, ""},
		{ModCtrl, "Ctrl"},
		{ModCtrl | ModAlt, "Ctrl+Alt"},
		{ModShift | ModMeta, "Shift+Meta"},
	}
	for _, tt := range tests {
		if got := tt.mod.String(); got != tt.want {
			t.Errorf("Modifier.String() = %q, want %q", got, tt.want)
		}
	}
}

func TestModifierWithWithout(t *testing.T) {
	m := ModNone.With(ModCtrl).With(ModAlt)
	if !m.Has(ModCtrl) || !m.Has(ModAlt) {
		t.Errorf("expected Ctrl+Alt, got %s", m)
	}
	m = m.Without(ModCtrl)
	if m.Has(ModCtrl) || !m.Has(ModAlt) {
		t.Errorf("expected Alt, got %s", m)
	}
}
