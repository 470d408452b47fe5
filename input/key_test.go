package input

import "testing"

func TestKeyFromCodeRoundTrip(t *testing.T) {
	// Every defined key survives a trip through its raw SDL code.
	for k := range keyNames {
		got := KeyFromCode(k.Code())
		if got != k {
			t.Errorf("KeyFromCode(%#x) = %v, want %v", k.Code(), got, k)
		}
	}
}

func TestKeyFromCodeUnknown(t *testing.T) {
	tests := []uint32{
		0x01,       // SOH, no key assigned
		0x07,       // BEL, no key assigned
		0x41,       // 'A'; SDL letter codes are lowercase ASCII
		0x3FFFFFFF, // outside the scancode-derived range
		0x400001FF, // scancode bit set, no such key
	}

	for _, code := range tests {
		if got := KeyFromCode(code); got != KeyUnknown {
			t.Errorf("KeyFromCode(%#x) = %v, want KeyUnknown", code, got)
		}
	}
}

func TestKeyCodes(t *testing.T) {
	tests := []struct {
		key  Key
		code uint32
	}{
		{KeyUnknown, 0x00},
		{KeyBackspace, 0x08},
		{KeyReturn, 0x0D},
		{KeySpace, 0x20},
		{Key0, 0x30},
		{Key9, 0x39},
		{KeyA, 0x61},
		{KeyZ, 0x7A},
		{KeyDelete, 0x7F},
		{KeyF12, 0x40000045},
		{KeyLCtrl, 0x400000E0},
		{KeyRGui, 0x400000E7},
	}

	for _, tt := range tests {
		if got := tt.key.Code(); got != tt.code {
			t.Errorf("%v.Code() = %#x, want %#x", tt.key, got, tt.code)
		}
	}
}

func TestKeyIsDefined(t *testing.T) {
	if !KeyUnknown.IsDefined() {
		t.Errorf("KeyUnknown.IsDefined() = false, want true")
	}
	if !KeyA.IsDefined() {
		t.Errorf("KeyA.IsDefined() = false, want true")
	}
	if Key(0x41).IsDefined() {
		t.Errorf("Key(0x41).IsDefined() = true, want false")
	}
}

func TestKeyString(t *testing.T) {
	tests := []struct {
		key  Key
		want string
	}{
		{KeyA, "A"},
		{KeySpace, "Space"},
		{KeyF1, "F1"},
		{KeyLCtrl, "LCtrl"},
		{KeyUnknown, "Unknown"},
		{Key(0xDEAD), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.key.String(); got != tt.want {
			t.Errorf("Key(%#x).String() = %q, want %q", tt.key.Code(), got, tt.want)
		}
	}
}

func TestKeyFromName(t *testing.T) {
	tests := []struct {
		name string
		want Key
	}{
		{"A", KeyA},
		{"a", KeyA},
		{"space", KeySpace},
		{"LCTRL", KeyLCtrl},
		{"PageDown", KeyPageDown},
		{"Return", KeyReturn},
		{"Enter", KeyReturn},
		{"Escape", KeyEscape},
		{"esc", KeyEscape},
		{"Del", KeyDelete},
		{"PgUp", KeyPageUp},
		{"pgdn", KeyPageDown},
		{"no such key", KeyUnknown},
	}

	for _, tt := range tests {
		if got := KeyFromName(tt.name); got != tt.want {
			t.Errorf("KeyFromName(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestKeyNamesUnique(t *testing.T) {
	seen := make(map[string]Key, len(keyNames))
	for k, name := range keyNames {
		if prev, ok := seen[name]; ok {
			t.Errorf("name %q assigned to both %#x and %#x", name, prev.Code(), k.Code())
		}
		seen[name] = k
	}
}
